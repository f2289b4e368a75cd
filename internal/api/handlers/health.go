package handlers

import (
	"net/http"
	"runtime"
	"time"

	"lerian-claude-advisor/internal/api/response"
	"lerian-claude-advisor/internal/catalog"
)

// HealthHandler provides health check functionality
type HealthHandler struct {
	store     *catalog.Store
	version   string
	startTime time.Time
}

// HealthStatus represents the health check response structure
type HealthStatus struct {
	Status    string      `json:"status"`
	Server    string      `json:"server"`
	Version   string      `json:"version"`
	Uptime    string      `json:"uptime"`
	Timestamp string      `json:"timestamp"`
	Catalog   CatalogInfo `json:"catalog"`
	System    SystemInfo  `json:"system"`
}

// CatalogInfo reports what the loaded catalogs contain.
type CatalogInfo struct {
	Categories int `json:"categories"`
	Features   int `json:"features"`
	Patterns   int `json:"patterns"`
}

// SystemInfo represents system information
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(store *catalog.Store, version string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		version:   version,
		startTime: time.Now(),
	}
}

// Handle processes health check requests. The advisor has no external
// backends, so health reduces to "catalogs loaded".
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Server:    "claude-advisor",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Catalog: CatalogInfo{
			Categories: len(h.store.Categories()),
			Features:   h.store.FeatureCount(),
			Patterns:   len(h.store.Patterns()),
		},
		System: SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}

	if status.Catalog.Categories == 0 || status.Catalog.Features == 0 {
		status.Status = "degraded"
		response.WriteError(w, http.StatusServiceUnavailable, response.ErrorCodeInternalError, "catalogs are empty")
		return
	}
	response.WriteSuccess(w, status)
}
