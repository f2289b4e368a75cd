package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Build A React App", "build a react app"},
		{"strips punctuation", "fix: the bug!!! (now)", "fix the bug now"},
		{"keeps hyphens", "add rate-limiting", "add rate-limiting"},
		{"collapses whitespace", "  too \t many \n spaces  ", "too many spaces"},
		{"empty input", "", ""},
		{"whitespace only", "   \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestContainsWholeWord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		candidate string
		expected  bool
	}{
		{"exact word", "build a react dashboard", "react", true},
		{"word at start", "react dashboard", "react", true},
		{"word at end", "migrate to react", "react", true},
		{"substring rejected", "rapid development", "api", false},
		{"substring rejected mid-word", "scapular", "api", false},
		{"case-insensitive", "Build with React", "react", true},
		{"alternation matches first", "debug the crash", "fix|debug|resolve", true},
		{"alternation matches none", "write the docs", "fix|debug|resolve", false},
		{"hyphenated candidate", "add rate-limiting to the api", "rate-limiting", true},
		{"metacharacters escaped", "deploy the node.js service", "node.js", true},
		{"empty candidate", "anything", "", false},
		{"empty text", "", "react", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsWholeWord(tt.text, tt.candidate))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("React Specialist", "react"))
	assert.True(t, ContainsFold("deep react expertise", "REACT"))
	assert.False(t, ContainsFold("angular only", "react"))
}
