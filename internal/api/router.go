// Package api provides the HTTP API layer for the Claude Setup Advisor.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"lerian-claude-advisor/internal/api/handlers"
	"lerian-claude-advisor/internal/api/middleware"
	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/config"
	"lerian-claude-advisor/internal/logging"
	"lerian-claude-advisor/internal/recommend"
)

// Version is the advisor API version reported by the health endpoint.
const Version = "1.0.0"

// Router represents the main API router
type Router struct {
	config *config.Config
	mux    *chi.Mux
	logger logging.Logger

	analyzeHandler *handlers.AnalyzeHandler
	catalogHandler *handlers.CatalogHandler
	healthHandler  *handlers.HealthHandler
	wsHandler      *handlers.WSQuickHandler
}

// NewRouter creates the API router with middleware and routes wired to the
// given catalog store.
func NewRouter(cfg *config.Config, store *catalog.Store, logger logging.Logger) *Router {
	generator := recommend.NewGenerator(store)

	r := &Router{
		config:         cfg,
		mux:            chi.NewRouter(),
		logger:         logger,
		analyzeHandler: handlers.NewAnalyzeHandler(generator, logger),
		catalogHandler: handlers.NewCatalogHandler(store),
		healthHandler:  handlers.NewHealthHandler(store, Version),
		wsHandler:      handlers.NewWSQuickHandler(generator.Analyzer(), logger),
	}

	r.setupMiddleware()
	r.setupRoutes()
	return r
}

// Handler returns the HTTP handler
func (r *Router) Handler() http.Handler {
	return r.mux
}

// setupMiddleware configures the middleware stack
func (r *Router) setupMiddleware() {
	// Recovery first so panics in any later layer become 500s.
	r.mux.Use(chimiddleware.Recoverer)

	r.mux.Use(middleware.NewLoggingMiddleware(r.logger).Handler())

	cors := middleware.NewCORSMiddleware(&middleware.CORSConfig{
		AllowedOrigins: r.config.Server.AllowedOrigins,
	})
	r.mux.Use(cors.Handler())
}

// setupRoutes configures the API routes
func (r *Router) setupRoutes() {
	r.mux.Get("/health", r.healthHandler.Handle)

	r.mux.Route("/api/v1", func(api chi.Router) {
		// Analysis runs a bounded computation; the timeout guards against
		// pathological request bodies, not the engine itself.
		api.Use(chimiddleware.Timeout(10 * time.Second))

		api.Post("/analyze", r.analyzeHandler.HandleAnalyze)
		api.Post("/analyze/quick", r.analyzeHandler.HandleQuickAnalyze)

		api.Get("/categories", r.catalogHandler.HandleListCategories)

		api.Get("/features", r.catalogHandler.HandleListFeatures)
		api.Get("/features/search", r.catalogHandler.HandleSearchFeatures)
		api.Get("/features/category/{id}", r.catalogHandler.HandleFeaturesByCategory)
		api.Get("/features/{type}", r.catalogHandler.HandleListFeaturesByType)
		api.Get("/features/{type}/{id}", r.catalogHandler.HandleGetFeature)
	})

	// WebSocket endpoint sits outside the timeout group: connections are
	// long-lived by design.
	r.mux.Get("/api/v1/ws/quick", r.wsHandler.Handle)
}
