package recommend

import (
	"sort"
	"strings"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/catalog"
)

// Output caps.
const (
	maxPerType       = 5
	maxTopPriority   = 5
	maxQuickWins     = 3
	maxTopCategories = 3
	maxKeywords      = 10

	// QuickWinScore is the minimum score for the low-friction shortlist.
	QuickWinScore = 30
)

// AnalysisSummary is the condensed analysis echoed in the response.
type AnalysisSummary struct {
	Task             string              `json:"task"`
	Complexity       analysis.Complexity `json:"complexity"`
	TopCategories    []string            `json:"topCategories"`
	DetectedKeywords []string            `json:"detectedKeywords"`
}

// Recommendations holds the per-type ranked feature lists, each capped at 5.
type Recommendations struct {
	Skills   []ScoredFeature `json:"skills"`
	Agents   []ScoredFeature `json:"agents"`
	MCPs     []ScoredFeature `json:"mcps"`
	Hooks    []ScoredFeature `json:"hooks"`
	Commands []ScoredFeature `json:"commands"`
	Settings []ScoredFeature `json:"settings"`
	ClaudeMD []ScoredFeature `json:"claudemd"`
}

// ByType returns the slice for one feature type.
func (r *Recommendations) ByType(t catalog.FeatureType) []ScoredFeature {
	switch t {
	case catalog.FeatureTypeSkill:
		return r.Skills
	case catalog.FeatureTypeAgent:
		return r.Agents
	case catalog.FeatureTypeMCP:
		return r.MCPs
	case catalog.FeatureTypeHook:
		return r.Hooks
	case catalog.FeatureTypeCommand:
		return r.Commands
	case catalog.FeatureTypeSetting:
		return r.Settings
	case catalog.FeatureTypeClaudeMD:
		return r.ClaudeMD
	default:
		return nil
	}
}

func (r *Recommendations) setByType(t catalog.FeatureType, list []ScoredFeature) {
	switch t {
	case catalog.FeatureTypeSkill:
		r.Skills = list
	case catalog.FeatureTypeAgent:
		r.Agents = list
	case catalog.FeatureTypeMCP:
		r.MCPs = list
	case catalog.FeatureTypeHook:
		r.Hooks = list
	case catalog.FeatureTypeCommand:
		r.Commands = list
	case catalog.FeatureTypeSetting:
		r.Settings = list
	case catalog.FeatureTypeClaudeMD:
		r.ClaudeMD = list
	}
}

// Summary aggregates the headline numbers and shortlists.
type Summary struct {
	TotalRecommendations int             `json:"totalRecommendations"`
	TopPriority          []ScoredFeature `json:"topPriority"`
	QuickWins            []ScoredFeature `json:"quickWins"`
}

// Result is the full recommendation response body.
type Result struct {
	Analysis        AnalysisSummary `json:"analysis"`
	Recommendations Recommendations `json:"recommendations"`
	Summary         Summary         `json:"summary"`
}

// Generator scores the feature catalog against task analyses.
type Generator struct {
	store    *catalog.Store
	analyzer *analysis.Analyzer
}

// NewGenerator creates a generator over the given catalog store.
func NewGenerator(store *catalog.Store) *Generator {
	return &Generator{
		store:    store,
		analyzer: analysis.NewAnalyzer(store),
	}
}

// Analyzer exposes the underlying analyzer for callers that need the quick
// analysis shape without recommendations.
func (g *Generator) Analyzer() *analysis.Analyzer {
	return g.analyzer
}

// Recommend analyzes the task and scores every catalog feature against the
// analysis. Zero recommendations is a valid outcome for unrecognized tasks.
func (g *Generator) Recommend(task string) *Result {
	res := g.analyzer.Analyze(task)
	return g.FromAnalysis(res)
}

// FromAnalysis builds recommendations from an existing analysis result.
func (g *Generator) FromAnalysis(res *analysis.Result) *Result {
	out := &Result{
		Analysis: summarizeAnalysis(res),
	}

	var all []ScoredFeature
	for _, t := range catalog.FeatureTypes {
		kept := g.scoreType(t, res)
		out.Recommendations.setByType(t, kept)
		all = append(all, kept...)
	}

	out.Summary = summarize(all)
	return out
}

// scoreType scores one type's catalog slice, keeps features at or above the
// inclusion threshold, and returns the top 5 sorted descending by score.
func (g *Generator) scoreType(t catalog.FeatureType, res *analysis.Result) []ScoredFeature {
	features := g.store.FeaturesByType(t)
	kept := make([]ScoredFeature, 0, len(features))
	for i := range features {
		f := features[i]
		score, reasons := ScoreFeature(&f, t, res)
		if score < MinScore {
			continue
		}
		kept = append(kept, ScoredFeature{
			Feature:      f,
			Type:         t,
			Score:        score,
			MatchReasons: reasons,
			IsPriority:   score >= PriorityScore,
		})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	if len(kept) > maxPerType {
		kept = kept[:maxPerType]
	}
	return kept
}

func summarizeAnalysis(res *analysis.Result) AnalysisSummary {
	topCategories := make([]string, 0, maxTopCategories)
	for i := range res.Categories {
		if i == maxTopCategories {
			break
		}
		topCategories = append(topCategories, res.Categories[i].Category.Name)
	}

	keywords := res.Keywords
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return AnalysisSummary{
		Task:             res.OriginalTask,
		Complexity:       res.Complexity,
		TopCategories:    topCategories,
		DetectedKeywords: keywords,
	}
}

func summarize(all []ScoredFeature) Summary {
	s := Summary{
		TotalRecommendations: len(all),
		TopPriority:          []ScoredFeature{},
		QuickWins:            []ScoredFeature{},
	}

	sorted := make([]ScoredFeature, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	for i := range sorted {
		if sorted[i].IsPriority && len(s.TopPriority) < maxTopPriority {
			s.TopPriority = append(s.TopPriority, sorted[i])
		}
		if len(s.QuickWins) < maxQuickWins && isQuickWin(&sorted[i]) {
			s.QuickWins = append(s.QuickWins, sorted[i])
		}
	}
	return s
}

// isQuickWin reports whether a recommendation is low-friction to adopt:
// high score plus either no installation (built-in source, or the install
// text says so) or a slash command.
func isQuickWin(sf *ScoredFeature) bool {
	if sf.Score < QuickWinScore {
		return false
	}
	return sf.Feature.Source == catalog.SourceBuiltIn ||
		sf.Type == catalog.FeatureTypeCommand ||
		strings.Contains(sf.Feature.InstallCommand, "Built-in")
}
