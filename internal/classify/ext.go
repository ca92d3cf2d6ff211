package classify

import (
	"slices"
	"strings"
)

// Set is an extension allow-list: lowercase extensions without the dot.
// A nil Set means "no filter".
type Set map[string]struct{}

// ParseExtensions turns a comma-separated list such as "rs, .PY,js" into a
// Set. Tokens are trimmed, lowercased and stripped of one leading dot; empty
// tokens are dropped. An empty or blank string returns nil (no filtering).
func ParseExtensions(s string) Set {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	set := make(Set)
	for tok := range strings.SplitSeq(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		tok = strings.TrimPrefix(tok, ".")
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Allowed reports whether path passes the filter. With a nil set every path
// passes; otherwise the path needs an extension that is in the set, so
// extensionless files are always rejected by an active filter.
func Allowed(path string, set Set) bool {
	if set == nil {
		return true
	}
	ext := Ext(path)
	if ext == "" {
		return false
	}
	_, ok := set[ext]
	return ok
}

// Sorted returns the set's members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	slices.Sort(out)
	return out
}

// String renders the set as a comma-separated sorted list.
func (s Set) String() string {
	return strings.Join(s.Sorted(), ",")
}
