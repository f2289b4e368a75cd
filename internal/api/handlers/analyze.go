// Package handlers provides HTTP request handlers for the advisor API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/api/response"
	"lerian-claude-advisor/internal/logging"
	"lerian-claude-advisor/internal/recommend"
)

// AnalyzeRequest is the body accepted by both analyze endpoints.
type AnalyzeRequest struct {
	Task string `json:"task"`
}

// AnalyzeHandler serves full and quick task analysis.
type AnalyzeHandler struct {
	generator *recommend.Generator
	logger    logging.Logger
}

// NewAnalyzeHandler creates an analyze handler over the given generator.
func NewAnalyzeHandler(generator *recommend.Generator, logger logging.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		generator: generator,
		logger:    logger.WithComponent("analyze"),
	}
}

// HandleAnalyze runs the full analysis pipeline and returns the complete
// recommendation result. Tasks under the minimum length are rejected before
// the engine runs.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	task, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	result := h.generator.Recommend(task)
	h.logger.InfoContext(r.Context(), "task analyzed",
		"complexity", result.Analysis.Complexity,
		"recommendations", result.Summary.TotalRecommendations,
	)
	response.WriteSuccess(w, result)
}

// HandleQuickAnalyze returns the truncated analysis shape for incremental
// feedback while the user is still typing.
func (h *AnalyzeHandler) HandleQuickAnalyze(w http.ResponseWriter, r *http.Request) {
	task, ok := h.decodeTask(w, r)
	if !ok {
		return
	}

	response.WriteSuccess(w, h.generator.Analyzer().Quick(task))
}

func (h *AnalyzeHandler) decodeTask(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON body", err.Error())
		return "", false
	}

	if err := analysis.ValidateTask(req.Task); err != nil {
		if errors.Is(err, analysis.ErrTaskTooShort) {
			response.WriteValidationError(w, err.Error())
		} else {
			response.WriteBadRequest(w, err.Error())
		}
		return "", false
	}
	return req.Task, true
}
