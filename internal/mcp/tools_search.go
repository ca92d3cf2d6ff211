// tools_search.go implements the ffind_find and ffind_grep tools.
//
// Both run the same engines as the CLI with output suppressed and return
// the structured result as JSON. Configuration supplies defaults for any
// option the call leaves out.

package mcp

import (
	"context"
	"io"

	"github.com/jpl-au/ffind/internal/classify"
	"github.com/jpl-au/ffind/internal/find"
	"github.com/jpl-au/ffind/internal/grep"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/result"
	"github.com/mark3labs/mcp-go/mcp"
)

// findResponse is the ffind_find payload.
type findResponse struct {
	Pattern string        `json:"pattern"`
	Root    string        `json:"root"`
	Count   int           `json:"count"`
	Files   []result.File `json:"files,omitempty"`
	Paths   []string      `json:"paths,omitempty"`
}

// grepResponse is the ffind_grep payload.
type grepResponse struct {
	Pattern   string         `json:"pattern"`
	Root      string         `json:"root"`
	Matches   int            `json:"matches"`
	Files     int            `json:"files"`
	Scanned   int            `json:"scanned"`
	Truncated bool           `json:"truncated,omitempty"`
	Groups    []result.Group `json:"groups,omitempty"`
	Paths     []string       `json:"paths,omitempty"`
	Counts    []fileCount    `json:"counts,omitempty"`
}

type fileCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// findFiles handles ffind_find tool calls.
func (h *handlers) findFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	cfg, err := h.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := find.Options{
		Root:       getString(req, "dir", "."),
		IgnoreCase: getBool(req, "ignore_case", cfg.IgnoreCase()),
		Regex:      getBool(req, "regex", cfg.Regex()),
		Exclude:    cfg.Exclusions(getStrings(req, "exclude"), getBool(req, "no_default_excludes", false)),
		Quiet:      true,
	}

	res, err := find.Run(ctx, io.Discard, pattern, opts)

	log.Event("mcp:ffind_find", "search").Root(opts.Root).Pattern(pattern).Matches(len(res.Files)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp := findResponse{Pattern: pattern, Root: opts.Root, Count: len(res.Files)}
	if getBool(req, "paths_only", false) {
		resp.Paths = res.Paths()
	} else {
		resp.Files = res.Files
	}
	return jsonResult(resp)
}

// grepFiles handles ffind_grep tool calls.
func (h *handlers) grepFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}

	cfg, err := h.load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	exts := getString(req, "extensions", cfg.Extensions())
	opts := grep.Options{
		Root:          getString(req, "dir", "."),
		IgnoreCase:    getBool(req, "ignore_case", cfg.IgnoreCase()),
		Regex:         getBool(req, "regex", cfg.Regex()),
		Extensions:    classify.ParseExtensions(exts),
		Exclude:       cfg.Exclusions(getStrings(req, "exclude"), getBool(req, "no_default_excludes", false)),
		Threads:       getInt(req, "threads", cfg.Threads()),
		MaxLineLength: cfg.MaxLineLength(),
		Quiet:         true,
	}

	res, err := grep.Run(ctx, io.Discard, pattern, opts)

	log.Event("mcp:ffind_grep", "search").
		Root(opts.Root).
		Pattern(pattern).
		Matches(len(res.Matches)).
		Detail("scanned", res.Scanned).
		Detail("extensions", exts).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp := grepResponse{
		Pattern: pattern,
		Root:    opts.Root,
		Matches: len(res.Matches),
		Files:   len(res.Groups),
		Scanned: res.Scanned,
	}

	switch {
	case getBool(req, "paths_only", false):
		for _, g := range res.Groups {
			resp.Paths = append(resp.Paths, g.Path)
		}
	case getBool(req, "count_only", false):
		for _, g := range res.Groups {
			resp.Counts = append(resp.Counts, fileCount{Path: g.Path, Count: len(g.Matches)})
		}
	default:
		matches := res.Matches
		if limit := getInt(req, "limit", 0); limit > 0 && len(matches) > limit {
			matches = matches[:limit]
			resp.Truncated = true
		}
		resp.Groups = result.GroupByFile(matches)
	}
	return jsonResult(resp)
}
