package watch

import (
	"path/filepath"
	"strings"
)

// DefaultExcludes are the exclude patterns every document watcher starts
// with: the strategist workspace itself, version control internals, and
// editor scratch files. Without these an assessment writing to
// .strategist/ would retrigger the watch loop it came from.
var DefaultExcludes = []string{".strategist", ".git", "node_modules", "*.tmp", "*~"}

// PatternFilter filters file paths based on include/exclude glob patterns.
type PatternFilter struct {
	Include []string
	Exclude []string
}

// NewPatternFilter creates a new pattern filter.
func NewPatternFilter(include, exclude []string) *PatternFilter {
	return &PatternFilter{
		Include: include,
		Exclude: exclude,
	}
}

// Matches returns true if the path passes the filter.
// Exclude patterns are checked first and also tested against every path
// segment, so a directory name like ".strategist" excludes its whole
// subtree. If include patterns are set, at least one must match the
// path or its base name.
func (f *PatternFilter) Matches(path string) bool {
	segments := strings.Split(filepath.ToSlash(path), "/")

	for _, pattern := range f.Exclude {
		for _, seg := range segments {
			if matched, _ := filepath.Match(pattern, seg); matched {
				return false
			}
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return false
		}
	}

	// No include patterns means everything passes
	if len(f.Include) == 0 {
		return true
	}

	base := filepath.Base(path)
	for _, pattern := range f.Include {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}

	return false
}
