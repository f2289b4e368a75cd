// Package textutil provides the text normalization and whole-word matching
// primitives shared by the task analyzer and the catalog search.
package textutil

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// nonWordRe matches every character that is not a word character,
	// whitespace, or hyphen. Hyphens survive normalization because catalog
	// keywords use them ("rate-limiting", "root-cause").
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)
	spaceRe   = regexp.MustCompile(`\s+`)

	lowerCaser = cases.Lower(language.English)
)

// Normalize lowercases s, replaces punctuation (except hyphens) with spaces,
// and collapses runs of whitespace. Empty output is valid for empty or
// whitespace-only input.
func Normalize(s string) string {
	s = lowerCaser.String(s)
	s = nonWordRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// WholeWordPattern compiles a case-insensitive word-boundary regexp for the
// candidate word or alternation. Alternations ("fix|debug|resolve") keep
// their pipes; every other regex metacharacter is escaped so catalog data
// cannot inject arbitrary patterns.
func WholeWordPattern(candidate string) (*regexp.Regexp, error) {
	parts := strings.Split(candidate, "|")
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		escaped = append(escaped, regexp.QuoteMeta(p))
	}
	if len(escaped) == 0 {
		return nil, errors.New("empty candidate")
	}
	return regexp.Compile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

// ContainsWholeWord reports whether candidate appears as a whole word in
// text. Substring-only occurrences are rejected: "api" does not match inside
// "rapid". Invalid candidates (empty, or producing an uncompilable pattern)
// never match.
func ContainsWholeWord(text, candidate string) bool {
	if candidate == "" || text == "" {
		return false
	}
	re, err := WholeWordPattern(candidate)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// ContainsFold reports whether substr occurs in s, case-insensitively.
// Used by the catalog search where substring semantics are intended.
func ContainsFold(s, substr string) bool {
	return strings.Contains(lowerCaser.String(s), lowerCaser.String(substr))
}
