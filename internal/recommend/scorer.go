// Package recommend scores catalog features against a task analysis and
// assembles the ranked recommendation response. Like the analyzer it is a
// pure function of its inputs and safe for concurrent use.
package recommend

import (
	"fmt"
	"strings"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/textutil"
)

// Scoring weights and thresholds. All five signals are additive and may
// fire together; each fired signal contributes one human-readable reason.
const (
	keywordMatchScore    = 25 // extracted task keyword equals a feature keyword
	topCategoryScore     = 20 // feature is a default of the top-ranked category
	otherCategoryScore   = 10 // feature is a default of another matched category
	patternBoostScore    = 10 // feature's type is boosted by a detected pattern
	priorityFeatureScore = 30 // feature id is force-prioritized by a pattern
	mentionScore         = 10 // feature keyword appears in the task text

	// Feature keywords shorter than this are ignored by the mention signal
	// to suppress noise from two-letter keywords.
	minMentionKeywordLen = 3

	// MinScore is the inclusion threshold; features scoring below it never
	// appear in recommendation output.
	MinScore = 15
	// PriorityScore marks a scored feature as a priority recommendation.
	PriorityScore = 40
)

// ScoredFeature is one feature that passed the inclusion threshold,
// with the signals that put it there.
type ScoredFeature struct {
	Feature      catalog.Feature     `json:"feature"`
	Type         catalog.FeatureType `json:"type"`
	Score        int                 `json:"score"`
	MatchReasons []string            `json:"matchReasons"`
	IsPriority   bool                `json:"isPriority"`
}

// ScoreFeature applies the five additive signals to one feature. The
// returned reasons list holds one entry per fired signal instance.
func ScoreFeature(f *catalog.Feature, t catalog.FeatureType, res *analysis.Result) (int, []string) {
	score := 0
	var reasons []string

	// Signal 1: exact overlap between extracted task keywords and the
	// feature's own keywords.
	counted := make(map[string]bool)
	featureKeywords := make(map[string]bool, len(f.Keywords))
	for _, kw := range f.Keywords {
		featureKeywords[strings.ToLower(kw)] = true
	}
	for _, kw := range res.Keywords {
		if featureKeywords[kw] {
			score += keywordMatchScore
			counted[kw] = true
			reasons = append(reasons, "Matches keyword: "+kw)
		}
	}

	// Signal 2: the feature is a default for a matched category. The
	// top-ranked category pays more; bonuses from multiple categories stack.
	plural := t.Plural()
	for i := range res.Categories {
		cat := &res.Categories[i].Category
		if !containsString(cat.DefaultFeatures[plural], f.ID) {
			continue
		}
		if i == 0 {
			score += topCategoryScore
		} else {
			score += otherCategoryScore
		}
		reasons = append(reasons, "Recommended for "+cat.Name)
	}

	// Signal 3: a detected pattern boosts this feature type.
	if containsString(res.BoostFeatureTypes, plural) {
		score += patternBoostScore
		reasons = append(reasons, "Matches task pattern")
	}

	// Signal 4: a detected pattern names this feature id directly.
	if containsString(res.PriorityAgents, f.ID) {
		score += priorityFeatureScore
		reasons = append(reasons, "Priority for this task type")
	}

	// Signal 5: feature keywords mentioned in the task but not already
	// counted under signal 1.
	for _, kw := range f.Keywords {
		kw = strings.ToLower(kw)
		if len(kw) < minMentionKeywordLen || counted[kw] {
			continue
		}
		if textutil.ContainsWholeWord(res.NormalizedTask, kw) {
			score += mentionScore
			counted[kw] = true
			reasons = append(reasons, "Task mentions: "+kw)
		}
	}

	return score, reasons
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer for log output.
func (sf *ScoredFeature) String() string {
	return fmt.Sprintf("%s/%s score=%d priority=%t", sf.Type, sf.Feature.ID, sf.Score, sf.IsPriority)
}
