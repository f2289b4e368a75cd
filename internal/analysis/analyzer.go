// Package analysis turns a free-text task description into a structured
// analysis: extracted keywords, matched categories, detected action
// patterns, and a complexity estimate. Everything here is a pure function of
// (task text, catalog); the package performs no I/O and keeps no state
// between calls, so one Analyzer is safely shared by concurrent requests.
package analysis

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/textutil"
)

// Complexity buckets a task lands in after the indicator-word vote.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// Category matcher weights.
const (
	keywordOverlapScore = 10 // extracted keyword also in the category's list
	directKeywordScore  = 5  // category keyword found in text but missed by extraction
	nameMentionScore    = 15 // category name or id appears in the task
	minCategoryScore    = 10 // categories below this are dropped
)

// Complexity vote weights.
const (
	simpleWeight   = 1.0
	moderateWeight = 1.5
	complexWeight  = 2.0
)

// MinTaskLength is the minimum number of non-whitespace characters a task
// description must contain before the engine runs.
const MinTaskLength = 3

// ErrTaskTooShort is returned by ValidateTask for empty or too-short input.
var ErrTaskTooShort = errors.New("task description must be at least 3 characters")

// ValidateTask enforces the engine precondition at every boundary (HTTP,
// MCP, CLI). The engine itself assumes a validated task.
func ValidateTask(task string) error {
	if utf8.RuneCountInString(strings.Join(strings.Fields(task), "")) < MinTaskLength {
		return ErrTaskTooShort
	}
	return nil
}

// CategoryMatch is one matched category with its score and the keywords
// that produced it.
type CategoryMatch struct {
	Category        catalog.Category `json:"category"`
	Score           int              `json:"score"`
	MatchedKeywords []string         `json:"matchedKeywords"`
}

// Result is the full analysis of one task description.
type Result struct {
	OriginalTask   string                `json:"originalTask"`
	NormalizedTask string                `json:"normalizedTask"`
	Keywords       []string              `json:"keywords"`
	Categories     []CategoryMatch       `json:"categories"`
	Patterns       []catalog.TaskPattern `json:"patterns"`
	Complexity     Complexity            `json:"complexity"`
	// BoostFeatureTypes is the union of matched patterns' boost lists
	// (plural feature-type names, deduplicated, in pattern order).
	BoostFeatureTypes []string `json:"boostFeatureTypes"`
	// PriorityAgents is the union of matched patterns' priority feature ids.
	PriorityAgents []string `json:"priorityAgents"`
}

// TopCategoryID returns the id of the highest-scoring category, or "".
func (r *Result) TopCategoryID() string {
	if len(r.Categories) == 0 {
		return ""
	}
	return r.Categories[0].Category.ID
}

// QuickResult is the truncated analysis shape returned for incremental
// feedback while a user is still typing.
type QuickResult struct {
	Keywords      []string   `json:"keywords"`
	TopCategories []string   `json:"topCategories"`
	Complexity    Complexity `json:"complexity"`
}

const (
	quickMaxKeywords   = 10
	quickMaxCategories = 3
)

// Analyzer runs task analysis against one immutable catalog store.
type Analyzer struct {
	store *catalog.Store
}

// NewAnalyzer creates an analyzer bound to the given catalog store.
func NewAnalyzer(store *catalog.Store) *Analyzer {
	return &Analyzer{store: store}
}

// Analyze produces the full analysis for a task description. Degenerate
// output (no keywords, no categories) is valid, not an error.
func (a *Analyzer) Analyze(task string) *Result {
	normalized := textutil.Normalize(task)
	keywords := a.extractKeywords(normalized)
	categories := a.matchCategories(normalized, keywords)
	patterns := a.detectPatterns(normalized)

	boost := []string{}
	priority := []string{}
	boostSeen := make(map[string]bool)
	prioritySeen := make(map[string]bool)
	for i := range patterns {
		for _, b := range patterns[i].Boost {
			if !boostSeen[b] {
				boostSeen[b] = true
				boost = append(boost, b)
			}
		}
		for _, id := range patterns[i].PriorityAgents {
			if !prioritySeen[id] {
				prioritySeen[id] = true
				priority = append(priority, id)
			}
		}
	}

	return &Result{
		OriginalTask:      task,
		NormalizedTask:    normalized,
		Keywords:          keywords,
		Categories:        categories,
		Patterns:          patterns,
		Complexity:        a.estimateComplexity(normalized),
		BoostFeatureTypes: boost,
		PriorityAgents:    priority,
	}
}

// Quick runs the same analysis and truncates the output to the low-latency
// shape: at most 10 keywords, the top 3 category ids, and the complexity.
func (a *Analyzer) Quick(task string) *QuickResult {
	full := a.Analyze(task)

	keywords := full.Keywords
	if len(keywords) > quickMaxKeywords {
		keywords = keywords[:quickMaxKeywords]
	}

	topCategories := make([]string, 0, quickMaxCategories)
	for i := range full.Categories {
		if i == quickMaxCategories {
			break
		}
		topCategories = append(topCategories, full.Categories[i].Category.ID)
	}

	return &QuickResult{
		Keywords:      keywords,
		TopCategories: topCategories,
		Complexity:    full.Complexity,
	}
}

// extractKeywords returns every distinct category-catalog keyword that
// appears as a whole word in the normalized task. Iteration follows catalog
// order so output is deterministic.
// Degenerate output is an empty slice, never nil, so it serializes as [].
func (a *Analyzer) extractKeywords(normalized string) []string {
	matched := []string{}
	seen := make(map[string]bool)
	for _, c := range a.store.Categories() {
		for _, kw := range c.Keywords {
			kw = strings.ToLower(kw)
			if seen[kw] {
				continue
			}
			seen[kw] = true
			if textutil.ContainsWholeWord(normalized, kw) {
				matched = append(matched, kw)
			}
		}
	}
	return matched
}

// matchCategories scores every category against the task. A keyword counted
// through the extracted-keyword overlap is never recounted through the
// direct whole-word rule; each matched keyword appears once per category.
func (a *Analyzer) matchCategories(normalized string, keywords []string) []CategoryMatch {
	extracted := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		extracted[kw] = true
	}

	matches := []CategoryMatch{}
	for _, c := range a.store.Categories() {
		score := 0
		var matchedKeywords []string
		counted := make(map[string]bool)

		for _, kw := range c.Keywords {
			kw = strings.ToLower(kw)
			if counted[kw] {
				continue
			}
			switch {
			case extracted[kw]:
				score += keywordOverlapScore
				counted[kw] = true
				matchedKeywords = append(matchedKeywords, kw)
			case textutil.ContainsWholeWord(normalized, kw):
				score += directKeywordScore
				counted[kw] = true
				matchedKeywords = append(matchedKeywords, kw)
			}
		}

		if textutil.ContainsWholeWord(normalized, c.Name) ||
			textutil.ContainsWholeWord(normalized, c.ID) {
			score += nameMentionScore
		}

		if score >= minCategoryScore {
			matches = append(matches, CategoryMatch{
				Category:        c,
				Score:           score,
				MatchedKeywords: matchedKeywords,
			})
		}
	}

	// Stable sort keeps catalog order for equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// detectPatterns returns every catalog pattern whose expression matches the
// normalized task as a whole word. A task may match several patterns.
func (a *Analyzer) detectPatterns(normalized string) []catalog.TaskPattern {
	matched := []catalog.TaskPattern{}
	for _, p := range a.store.Patterns() {
		if textutil.ContainsWholeWord(normalized, p.Pattern) {
			matched = append(matched, p)
		}
	}
	return matched
}

// estimateComplexity runs the weighted indicator-word vote. The comparison
// order is deliberate: ties fall toward the more complex bucket, and an
// all-zero vote yields simple.
func (a *Analyzer) estimateComplexity(normalized string) Complexity {
	ind := a.store.Indicators()

	simple := float64(countWholeWordHits(normalized, ind.Simple)) * simpleWeight
	moderate := float64(countWholeWordHits(normalized, ind.Moderate)) * moderateWeight
	complexScore := float64(countWholeWordHits(normalized, ind.Complex)) * complexWeight

	switch {
	case complexScore >= moderate && complexScore >= simple && complexScore > 0:
		return ComplexityComplex
	case moderate >= simple && moderate > 0:
		return ComplexityModerate
	default:
		return ComplexitySimple
	}
}

func countWholeWordHits(text string, words []string) int {
	hits := 0
	for _, w := range words {
		if textutil.ContainsWholeWord(text, w) {
			hits++
		}
	}
	return hits
}
