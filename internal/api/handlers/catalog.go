package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lerian-claude-advisor/internal/api/response"
	"lerian-claude-advisor/internal/catalog"
)

// CatalogHandler serves the read-only category and feature catalogs.
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler creates a catalog handler over the given store.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// categoryView is the listing shape: keywords are truncated to 10 and the
// defaultFeatures map is omitted.
type categoryView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

const maxListedKeywords = 10

// HandleListCategories returns the full category catalog.
func (h *CatalogHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.store.Categories()
	views := make([]categoryView, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		keywords := c.Keywords
		if len(keywords) > maxListedKeywords {
			keywords = keywords[:maxListedKeywords]
		}
		views = append(views, categoryView{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Keywords:    keywords,
		})
	}
	response.WriteSuccess(w, map[string]interface{}{"categories": views})
}

// HandleListFeatures returns every feature grouped by plural type name.
func (h *CatalogHandler) HandleListFeatures(w http.ResponseWriter, r *http.Request) {
	grouped := make(map[string][]catalog.Feature, len(catalog.FeatureTypes))
	for _, t := range catalog.FeatureTypes {
		grouped[t.Plural()] = h.store.FeaturesByType(t)
	}
	response.WriteSuccess(w, map[string]interface{}{
		"features": grouped,
		"total":    h.store.FeatureCount(),
	})
}

// HandleListFeaturesByType returns one type's catalog slice.
func (h *CatalogHandler) HandleListFeaturesByType(w http.ResponseWriter, r *http.Request) {
	t, ok := h.featureType(w, r)
	if !ok {
		return
	}
	response.WriteSuccess(w, map[string]interface{}{
		"type":     t,
		"features": h.store.FeaturesByType(t),
	})
}

// HandleGetFeature looks one feature up by type and id.
func (h *CatalogHandler) HandleGetFeature(w http.ResponseWriter, r *http.Request) {
	t, ok := h.featureType(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	feature, found := h.store.Feature(t, id)
	if !found {
		response.WriteNotFound(w, "Feature not found", string(t)+"/"+id)
		return
	}
	response.WriteSuccess(w, feature)
}

// HandleSearchFeatures runs the weighted catalog search for ?q=.
func (h *CatalogHandler) HandleSearchFeatures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.WriteBadRequest(w, "Missing query parameter: q")
		return
	}
	results := h.store.Search(query)
	response.WriteSuccess(w, map[string]interface{}{
		"query":   query,
		"results": results,
	})
}

// HandleFeaturesByCategory returns the features belonging to one category.
func (h *CatalogHandler) HandleFeaturesByCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, found := h.store.Category(id); !found {
		response.WriteNotFound(w, "Category not found", id)
		return
	}
	response.WriteSuccess(w, map[string]interface{}{
		"category": id,
		"features": h.store.FeaturesByCategory(id),
	})
}

func (h *CatalogHandler) featureType(w http.ResponseWriter, r *http.Request) (catalog.FeatureType, bool) {
	t, err := catalog.ParseFeatureType(chi.URLParam(r, "type"))
	if err != nil {
		response.WriteBadRequest(w, err.Error())
		return "", false
	}
	return t, true
}
