// Package globset matches computed output paths against a fixed set of
// glob patterns, backing the -skip flag of the extraction walk.
package globset

import (
	"strings"

	"github.com/bmatcuk/doublestar"
)

// Matcher reports whether a path matches any of a fixed set of glob
// patterns.
type Matcher struct {
	patterns []string
}

// New builds a Matcher from a list of glob expressions. Empty or
// whitespace-only patterns are ignored, mirroring embed's comma-split
// "-exclude" flag.
func New(patterns []string) *Matcher {
	m := &Matcher{}
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
	}
	return m
}

// Match reports whether path matches any configured pattern.
func (m *Matcher) Match(path string) bool {
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// Empty reports whether the Matcher has no patterns, letting a caller
// skip building a Skip closure entirely when -skip was not given.
func (m *Matcher) Empty() bool { return len(m.patterns) == 0 }
