// Package catalog provides the static category, feature, and pattern
// catalogs the advisor engine scores against. Catalogs are loaded once at
// startup and treated as immutable for the process lifetime.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// FeatureType identifies one of the seven feature kinds the advisor knows.
type FeatureType string

const (
	FeatureTypeAgent    FeatureType = "agent"
	FeatureTypeSkill    FeatureType = "skill"
	FeatureTypeMCP      FeatureType = "mcp"
	FeatureTypeHook     FeatureType = "hook"
	FeatureTypeCommand  FeatureType = "command"
	FeatureTypeSetting  FeatureType = "setting"
	FeatureTypeClaudeMD FeatureType = "claudemd"
)

// FeatureTypes lists every feature type in catalog order. Recommendation
// output iterates this slice so response shape is stable across calls.
var FeatureTypes = []FeatureType{
	FeatureTypeSkill,
	FeatureTypeAgent,
	FeatureTypeMCP,
	FeatureTypeHook,
	FeatureTypeCommand,
	FeatureTypeSetting,
	FeatureTypeClaudeMD,
}

// Plural returns the plural catalog key for the type ("agent" -> "agents").
// Category defaultFeatures maps and pattern boost lists use plural keys.
func (t FeatureType) Plural() string {
	if t == FeatureTypeClaudeMD {
		return "claudemd"
	}
	return string(t) + "s"
}

// ParseFeatureType converts a singular or plural type name into a
// FeatureType. Returns an error for unknown names.
func ParseFeatureType(s string) (FeatureType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range FeatureTypes {
		if name == string(t) || name == t.Plural() {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown feature type: %q", s)
}

// Category represents a task domain with associated keywords and the
// features recommended by default when the domain matches.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	// DefaultFeatures maps plural feature-type names to feature ids.
	DefaultFeatures map[string][]string `json:"defaultFeatures"`
}

// Validate checks structural invariants of a catalog category.
func (c *Category) Validate() error {
	if c.ID == "" {
		return errors.New("category id cannot be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("category %s: name cannot be empty", c.ID)
	}
	for plural := range c.DefaultFeatures {
		if _, err := ParseFeatureType(plural); err != nil {
			return fmt.Errorf("category %s: %w", c.ID, err)
		}
	}
	return nil
}

// Feature is one catalog entry: an agent, skill, MCP server, hook, command,
// setting, or CLAUDE.md template. IDs are unique within a type, not globally.
type Feature struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	WhenToUse       string   `json:"whenToUse,omitempty"`
	InstallCommand  string   `json:"installCommand,omitempty"`
	Source          string   `json:"source,omitempty"`
	Category        string   `json:"category,omitempty"`
	Keywords        []string `json:"keywords"`
	ConfigExample   string   `json:"configExample,omitempty"`
	FileContent     string   `json:"fileContent,omitempty"`
	TemplateExample string   `json:"templateExample,omitempty"`
}

// SourceBuiltIn marks features that ship with Claude Code itself and need
// no installation. Such features qualify as quick wins.
const SourceBuiltIn = "built-in"

// TaskPattern describes an action/intent signal detected in task text.
// Pattern may be a single word or a regex alternation ("fix|debug|resolve").
type TaskPattern struct {
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
	// Boost lists plural feature-type names favored when the pattern fires.
	Boost []string `json:"boost"`
	// PriorityAgents lists feature ids force-prioritized by this pattern.
	PriorityAgents []string `json:"priorityAgents,omitempty"`
}

// ComplexityIndicators holds the indicator word lists the complexity
// estimator votes over.
type ComplexityIndicators struct {
	Simple   []string `json:"simple"`
	Moderate []string `json:"moderate"`
	Complex  []string `json:"complex"`
}
