// Package pattern compiles user search patterns into matchers.
//
// Content search always goes through the regexp engine: a literal pattern is
// escaped with regexp.QuoteMeta first, so literal and regex searches share one
// matching path and agree exactly for literal strings.
//
// File-name search is different on purpose. In literal mode it is a plain
// substring test on the base name and never touches the regexp engine; in
// regex mode the expression may match anywhere in the name.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalid is returned when a pattern does not compile.
	ErrInvalid = errors.New("invalid pattern")
	// ErrEmpty is returned for an empty pattern.
	ErrEmpty = errors.New("empty pattern")
)

// Options controls how a pattern is interpreted.
type Options struct {
	Regex      bool // Treat the pattern as a regular expression
	IgnoreCase bool // Case-insensitive matching
}

// Matcher reports whether a file name matches.
type Matcher func(name string) bool

// Compile builds the content matcher for pattern.
func Compile(pattern string, opts Options) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, ErrEmpty
	}

	expr := pattern
	if !opts.Regex {
		expr = regexp.QuoteMeta(pattern)
	}
	if opts.IgnoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return re, nil
}

// Name builds the file-name matcher for pattern.
func Name(pattern string, opts Options) (Matcher, error) {
	if pattern == "" {
		return nil, ErrEmpty
	}

	if opts.Regex {
		re, err := Compile(pattern, opts)
		if err != nil {
			return nil, err
		}
		return re.MatchString, nil
	}

	if opts.IgnoreCase {
		lower := strings.ToLower(pattern)
		return func(name string) bool {
			return strings.Contains(strings.ToLower(name), lower)
		}, nil
	}
	return func(name string) bool {
		return strings.Contains(name, pattern)
	}, nil
}
