package catalog

import (
	"sort"

	"lerian-claude-advisor/internal/textutil"
)

// Search match weights. Name matches dominate so that a feature named after
// the query always outranks one that only mentions it in prose.
const (
	searchNameScore        = 30
	searchDescriptionScore = 20
	searchKeywordScore     = 15
	searchWhenToUseScore   = 10

	maxSearchResults = 20
)

// SearchResult pairs a feature with its search score and type.
type SearchResult struct {
	Feature Feature     `json:"feature"`
	Type    FeatureType `json:"type"`
	Score   int         `json:"score"`
}

// Search scores every feature against the query and returns matches sorted
// descending by score, capped at 20. Name and description use substring
// matching; keywords use whole-word matching, consistent with the analyzer.
func (s *Store) Search(query string) []SearchResult {
	q := textutil.Normalize(query)
	results := []SearchResult{}
	if q == "" {
		return results
	}
	for _, t := range FeatureTypes {
		for _, f := range s.features[t] {
			score := searchScore(&f, q)
			if score == 0 {
				continue
			}
			results = append(results, SearchResult{Feature: f, Type: t, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

func searchScore(f *Feature, query string) int {
	score := 0
	if textutil.ContainsFold(f.Name, query) {
		score += searchNameScore
	}
	if textutil.ContainsFold(f.Description, query) {
		score += searchDescriptionScore
	}
	for _, kw := range f.Keywords {
		if textutil.ContainsWholeWord(query, kw) {
			score += searchKeywordScore
			break
		}
	}
	if f.WhenToUse != "" && textutil.ContainsFold(f.WhenToUse, query) {
		score += searchWhenToUseScore
	}
	return score
}
