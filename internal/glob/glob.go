// Package glob provides exclude pattern matching for walked paths.
//
// Patterns use doublestar syntax (*, ?, [..], {a,b} and ** for any number of
// path segments). A pattern without a slash is tested against every segment
// of the path, so "node_modules" prunes that directory at any depth and
// "*.log" skips log files wherever they are. Patterns containing a slash are
// anchored at the search root.
package glob

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Match reports whether the root-relative path rel matches pattern.
// Returns an error if the pattern is malformed.
func Match(pattern, rel string) (bool, error) {
	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	pattern = strings.TrimSuffix(pattern, "/")
	rel = filepath.ToSlash(rel)
	if pattern == "" || rel == "" || rel == "." {
		return false, nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return false, doublestar.ErrBadPattern
	}

	// Anchored pattern: match the full relative path
	if strings.Contains(pattern, "/") {
		return doublestar.Match(strings.TrimPrefix(pattern, "/"), rel)
	}

	// Unanchored: any single segment may match
	for seg := range strings.SplitSeq(rel, "/") {
		m, err := doublestar.Match(pattern, seg)
		if err != nil {
			return false, err
		}
		if m {
			return true, nil
		}
	}
	return false, nil
}

// Excluded reports whether rel matches any of patterns. Malformed patterns
// never match; Validate reports them up front.
func Excluded(patterns []string, rel string) bool {
	for _, p := range patterns {
		if m, err := Match(p, rel); err == nil && m {
			return true
		}
	}
	return false
}

// Validate returns the first malformed pattern, wrapped with
// doublestar.ErrBadPattern.
func Validate(patterns []string) error {
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p != "" && !doublestar.ValidatePattern(p) {
			return &BadPatternError{Pattern: p}
		}
	}
	return nil
}

// BadPatternError names the exclude pattern that failed to parse.
type BadPatternError struct {
	Pattern string
}

func (e *BadPatternError) Error() string {
	return "bad exclude pattern: " + e.Pattern
}

// Unwrap lets callers test with errors.Is(err, doublestar.ErrBadPattern).
func (e *BadPatternError) Unwrap() error {
	return doublestar.ErrBadPattern
}
