package mcp

import (
	"context"

	"github.com/go-viper/mapstructure/v2"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/catalog"
)

// AnalyzeTaskRequest represents the analyze_task and quick_analyze arguments.
type AnalyzeTaskRequest struct {
	Task string `json:"task" mapstructure:"task"`
}

// SearchFeaturesRequest represents the search_features arguments.
type SearchFeaturesRequest struct {
	Query string `json:"query" mapstructure:"query"`
	Type  string `json:"type,omitempty" mapstructure:"type"`
}

// errorResult is the uniform tool-level failure shape. Tool handlers return
// it instead of a Go error so the assistant sees an explanation rather than
// a protocol fault.
type errorResult struct {
	Error string `json:"error"`
}

func (s *AdvisorServer) handleAnalyzeTask(ctx context.Context, arguments map[string]interface{}) (interface{}, error) {
	req, errRes := decodeTaskRequest(arguments)
	if errRes != nil {
		return errRes, nil
	}

	result := s.generator.Recommend(req.Task)
	s.logger.InfoContext(ctx, "analyze_task served",
		"complexity", result.Analysis.Complexity,
		"recommendations", result.Summary.TotalRecommendations,
	)
	return result, nil
}

func (s *AdvisorServer) handleQuickAnalyze(_ context.Context, arguments map[string]interface{}) (interface{}, error) {
	req, errRes := decodeTaskRequest(arguments)
	if errRes != nil {
		return errRes, nil
	}
	return s.generator.Analyzer().Quick(req.Task), nil
}

func (s *AdvisorServer) handleListCategories(_ context.Context, _ map[string]interface{}) (interface{}, error) {
	return map[string]interface{}{
		"categories": s.store.Categories(),
	}, nil
}

func (s *AdvisorServer) handleSearchFeatures(_ context.Context, arguments map[string]interface{}) (interface{}, error) {
	var req SearchFeaturesRequest
	if err := mapstructure.Decode(arguments, &req); err != nil {
		return errorResult{Error: "invalid request parameters: " + err.Error()}, nil
	}
	if req.Query == "" {
		return errorResult{Error: "query is required"}, nil
	}

	results := s.store.Search(req.Query)

	if req.Type != "" {
		t, err := catalog.ParseFeatureType(req.Type)
		if err != nil {
			return errorResult{Error: err.Error()}, nil
		}
		filtered := results[:0]
		for _, r := range results {
			if r.Type == t {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	return map[string]interface{}{
		"query":   req.Query,
		"results": results,
	}, nil
}

func decodeTaskRequest(arguments map[string]interface{}) (*AnalyzeTaskRequest, *errorResult) {
	var req AnalyzeTaskRequest
	if err := mapstructure.Decode(arguments, &req); err != nil {
		return nil, &errorResult{Error: "invalid request parameters: " + err.Error()}
	}
	if err := analysis.ValidateTask(req.Task); err != nil {
		return nil, &errorResult{Error: err.Error()}
	}
	return &req, nil
}
