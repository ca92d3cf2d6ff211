// Package find searches a directory tree for files by name.
//
// Only the base name of each file is tested; directories are walked but never
// matched themselves. There is no extension or binary filtering here: any
// regular file whose name matches is reported with its size and modification
// time. The search separates walking and matching from presentation, which
// lives in package format.
package find

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jpl-au/ffind/internal/format"
	"github.com/jpl-au/ffind/internal/pattern"
	"github.com/jpl-au/ffind/internal/progress"
	"github.com/jpl-au/ffind/internal/result"
	"github.com/jpl-au/ffind/internal/walk"
)

// Options configures a name search.
type Options struct {
	Root       string   // Directory to search (default ".")
	IgnoreCase bool     // Case-insensitive matching
	Regex      bool     // Treat the pattern as a regular expression
	Exclude    []string // Glob patterns pruned from the walk
	PathsOnly  bool     // Only output paths
	Tree       bool     // Output paths as a directory tree
	Quiet      bool     // Write nothing; the caller renders Result itself

	// Progress, when set, is stepped once per entry visited.
	Progress *progress.Spinner

	Style format.Style
}

// Result contains the outcome of a name search.
type Result struct {
	Files []result.File
}

// Paths returns the path of every matched file.
func (r Result) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}

// Run searches opts.Root for files whose name matches pattern and writes
// output to w.
func Run(ctx context.Context, w io.Writer, pat string, opts Options) (Result, error) {
	var res Result

	match, err := pattern.Name(pat, pattern.Options{Regex: opts.Regex, IgnoreCase: opts.IgnoreCase})
	if err != nil {
		return res, err
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if err := walk.Stat(root); err != nil {
		return res, err
	}

	opts.Progress.Start()
	for e := range walk.Files(root, walk.Options{Exclude: opts.Exclude}) {
		if err := ctx.Err(); err != nil {
			opts.Progress.Stop()
			return res, fmt.Errorf("search interrupted: %w", err)
		}
		opts.Progress.Step()

		if !match(e.Name) {
			continue
		}
		res.Files = append(res.Files, file(e))
	}
	opts.Progress.Stop()

	if opts.Quiet {
		return res, nil
	}

	switch {
	case opts.PathsOnly:
		format.Paths(w, res.Paths())
	case opts.Tree:
		format.Tree(w, root, res.Paths())
	default:
		format.Files(w, res.Files, pat, opts.Style)
	}
	return res, nil
}

func file(e walk.Entry) result.File {
	f := result.File{
		Path: e.Path,
		Name: e.Name,
		Dir:  filepath.Dir(e.Path),
	}
	if e.Info == nil {
		f.Missing = true
		return f
	}
	f.Size = e.Info.Size()
	f.ModTime = e.Info.ModTime()
	return f
}
