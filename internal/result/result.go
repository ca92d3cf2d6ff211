// Package result defines the match records produced by the search engines.
//
// Kept apart from the engines so the presenters in package format and the MCP
// tools can consume results without importing the engines themselves.
package result

import "time"

// File is one file whose base name matched a find pattern.
type File struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	Dir     string    `json:"dir"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`

	// Missing is set when the file was listed but could not be stat'ed;
	// Size and ModTime are then zero.
	Missing bool `json:"missing,omitempty"`
}

// Match is one occurrence of a grep pattern. Start and End are byte offsets
// into Content, half-open. A line with several hits yields several Matches.
type Match struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`    // 1-indexed
	Content string `json:"content"` // full line, newline stripped
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// Text returns the matched span.
func (m Match) Text() string {
	return m.Content[m.Start:m.End]
}

// Group holds every match in one file, in line then column order.
type Group struct {
	Path    string  `json:"path"`
	Matches []Match `json:"matches"`
}

// GroupByFile groups matches by path. Groups appear in the order their
// first match appears; matches keep their relative order.
func GroupByFile(matches []Match) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, m := range matches {
		i, ok := index[m.Path]
		if !ok {
			i = len(groups)
			index[m.Path] = i
			groups = append(groups, Group{Path: m.Path})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}
	return groups
}
