package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed data/*.json
var defaultData embed.FS

const (
	categoriesFile = "categories.json"
	featuresFile   = "features.json"
	patternsFile   = "patterns.json"
)

// Store holds the loaded catalogs. It is constructed once at startup and
// read-only afterwards, so it is safe to share across concurrent requests
// without locking.
type Store struct {
	categories []Category
	features   map[FeatureType][]Feature
	patterns   []TaskPattern
	indicators ComplexityIndicators
}

type categoriesDoc struct {
	Categories []Category `json:"categories"`
}

type featuresDoc struct {
	Features map[string][]Feature `json:"features"`
}

type patternsDoc struct {
	Patterns             []TaskPattern        `json:"patterns"`
	ComplexityIndicators ComplexityIndicators `json:"complexityIndicators"`
}

// Load builds a Store from the embedded default catalogs, overridden by any
// same-named files found in dir (empty dir means embedded data only).
// Malformed catalog data is a startup-time failure, never a per-request one.
func Load(dir string) (*Store, error) {
	var cats categoriesDoc
	if err := loadJSON(dir, categoriesFile, &cats); err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	var feats featuresDoc
	if err := loadJSON(dir, featuresFile, &feats); err != nil {
		return nil, fmt.Errorf("loading features: %w", err)
	}

	var pats patternsDoc
	if err := loadJSON(dir, patternsFile, &pats); err != nil {
		return nil, fmt.Errorf("loading patterns: %w", err)
	}

	s := &Store{
		categories: cats.Categories,
		features:   make(map[FeatureType][]Feature, len(feats.Features)),
		patterns:   pats.Patterns,
		indicators: pats.ComplexityIndicators,
	}

	for plural, list := range feats.Features {
		t, err := ParseFeatureType(plural)
		if err != nil {
			return nil, fmt.Errorf("features catalog: %w", err)
		}
		s.features[t] = list
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStore builds a Store directly from in-memory catalogs. Intended for
// tests that need synthetic data without touching the filesystem.
func NewStore(categories []Category, features map[FeatureType][]Feature, patterns []TaskPattern, indicators ComplexityIndicators) *Store {
	return &Store{
		categories: categories,
		features:   features,
		patterns:   patterns,
		indicators: indicators,
	}
}

func loadJSON(dir, name string, v interface{}) error {
	if dir != "" {
		path := filepath.Join(dir, name)
		if data, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	data, err := defaultData.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("embedded %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("embedded %s: %w", name, err)
	}
	return nil
}

func (s *Store) validate() error {
	seen := make(map[string]bool, len(s.categories))
	for i := range s.categories {
		c := &s.categories[i]
		if err := c.Validate(); err != nil {
			return err
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate category id: %s", c.ID)
		}
		seen[c.ID] = true
	}

	for t, list := range s.features {
		ids := make(map[string]bool, len(list))
		for i := range list {
			f := &list[i]
			if f.ID == "" {
				return fmt.Errorf("%s catalog: feature with empty id", t)
			}
			if ids[f.ID] {
				return fmt.Errorf("%s catalog: duplicate feature id %s", t, f.ID)
			}
			ids[f.ID] = true
		}
	}

	for i := range s.patterns {
		if s.patterns[i].Pattern == "" {
			return fmt.Errorf("pattern %d has an empty pattern expression", i)
		}
	}
	return nil
}

// Categories returns every category in catalog order.
func (s *Store) Categories() []Category {
	return s.categories
}

// Category returns the category with the given id, if present.
func (s *Store) Category(id string) (Category, bool) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return s.categories[i], true
		}
	}
	return Category{}, false
}

// FeaturesByType returns the catalog slice for one feature type.
func (s *Store) FeaturesByType(t FeatureType) []Feature {
	return s.features[t]
}

// Feature looks a feature up by type and id.
func (s *Store) Feature(t FeatureType, id string) (Feature, bool) {
	for _, f := range s.features[t] {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}

// FeaturesByCategory returns every feature, across all types, whose Category
// field matches the given category id.
func (s *Store) FeaturesByCategory(categoryID string) map[string][]Feature {
	out := make(map[string][]Feature)
	for _, t := range FeatureTypes {
		for _, f := range s.features[t] {
			if f.Category == categoryID {
				out[t.Plural()] = append(out[t.Plural()], f)
			}
		}
	}
	return out
}

// Patterns returns the task pattern catalog.
func (s *Store) Patterns() []TaskPattern {
	return s.patterns
}

// Indicators returns the complexity indicator word lists.
func (s *Store) Indicators() ComplexityIndicators {
	return s.indicators
}

// FeatureCount returns the total number of features across all types.
func (s *Store) FeatureCount() int {
	n := 0
	for _, list := range s.features {
		n += len(list)
	}
	return n
}
