// Package grep searches file contents beneath a directory for a pattern.
//
// Every non-overlapping hit on every line is reported with its byte span, so
// a line containing the pattern three times yields three matches. Files are
// filtered before they are opened: the extension allow-list first, then the
// binary check. Only files that pass both count as scanned.
//
// A file that cannot be read, that is not valid UTF-8, or that has a line
// longer than MaxLineLength contributes nothing; matches from other files are
// unaffected.
package grep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/jpl-au/ffind/internal/classify"
	"github.com/jpl-au/ffind/internal/format"
	"github.com/jpl-au/ffind/internal/pattern"
	"github.com/jpl-au/ffind/internal/progress"
	"github.com/jpl-au/ffind/internal/result"
	"github.com/jpl-au/ffind/internal/walk"
)

// DefaultMaxLineLength is used when Options.MaxLineLength is not positive.
const DefaultMaxLineLength = 10 * 1024 * 1024

// initialBuffer is the scanner's starting buffer; it grows up to the limit.
const initialBuffer = 64 * 1024

// Options configures a content search.
type Options struct {
	Root       string   // Directory to search (default ".")
	IgnoreCase bool     // Case insensitive search (-i flag)
	Regex      bool     // Treat the pattern as a regular expression (-r flag)
	Exclude    []string // Glob patterns pruned from the walk

	// Extensions restricts the search to these extensions. Nil searches
	// every file; an empty non-nil set matches nothing.
	Extensions classify.Set

	// Threads above one scans files on a bounded worker pool. Output is
	// identical to the sequential run.
	Threads int

	// MaxLineLength is the maximum line length for scanning (0 = default 10MB).
	// Needed for files with very long lines (minified JS, large JSON).
	MaxLineLength int

	PathsOnly bool // Only output paths of files with matches (-l flag)
	CountOnly bool // Only show count of matches per file (-c flag)
	Quiet     bool // Write nothing; the caller renders Result itself

	// Progress, when set, is stepped once per file scanned.
	Progress *progress.Spinner

	Style format.Style
}

// Result contains the outcome of a content search.
type Result struct {
	Matches []result.Match // Every hit, in walk then line then column order
	Groups  []result.Group // Matches grouped by file, in walk order
	Scanned int            // Files that passed filtering and were opened
}

// Run searches opts.Root for pattern and writes output to w.
func Run(ctx context.Context, w io.Writer, pat string, opts Options) (Result, error) {
	var res Result

	re, err := pattern.Compile(pat, pattern.Options{Regex: opts.Regex, IgnoreCase: opts.IgnoreCase})
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

	s := scanner{re: re, exts: opts.Extensions, maxLine: opts.MaxLineLength, progress: opts.Progress}
	if s.maxLine <= 0 {
		s.maxLine = DefaultMaxLineLength
	}

	var files []fileResult
	opts.Progress.Start()
	if opts.Threads > 1 {
		files, err = s.parallel(ctx, root, opts.Exclude, opts.Threads)
	} else {
		files, err = s.sequential(ctx, root, opts.Exclude)
	}
	opts.Progress.Stop()
	if err != nil {
		return res, fmt.Errorf("search interrupted: %w", err)
	}

	for _, f := range files {
		if f.scanned {
			res.Scanned++
		}
		res.Matches = append(res.Matches, f.matches...)
	}
	res.Groups = result.GroupByFile(res.Matches)

	if opts.Quiet {
		return res, nil
	}

	switch {
	case opts.PathsOnly:
		paths := make([]string, len(res.Groups))
		for i, g := range res.Groups {
			paths[i] = g.Path
		}
		format.Paths(w, paths)
	case opts.CountOnly:
		format.Counts(w, res.Groups)
	default:
		format.Grep(w, res.Groups, format.GrepSummary{
			Pattern: pat,
			Matches: len(res.Matches),
			Scanned: res.Scanned,
		}, opts.Style)
	}
	return res, nil
}

// fileResult is what one walked file contributed.
type fileResult struct {
	scanned bool
	matches []result.Match
}

type scanner struct {
	re       *regexp.Regexp
	exts     classify.Set
	maxLine  int
	progress *progress.Spinner
}

func (s scanner) sequential(ctx context.Context, root string, exclude []string) ([]fileResult, error) {
	var files []fileResult
	for e := range walk.Files(root, walk.Options{Exclude: exclude}) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files = append(files, s.file(e.Path))
	}
	return files, nil
}

// parallel scans files on at most threads goroutines. Each file writes only
// to its own slot, and slots are read back in walk order.
func (s scanner) parallel(ctx context.Context, root string, exclude []string, threads int) ([]fileResult, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var slots []*fileResult
	for e := range walk.Files(root, walk.Options{Exclude: exclude}) {
		if gctx.Err() != nil {
			break
		}
		slot := &fileResult{}
		slots = append(slots, slot)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			*slot = s.file(e.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files := make([]fileResult, len(slots))
	for i, slot := range slots {
		files[i] = *slot
	}
	return files, nil
}

// file filters and scans one file.
func (s scanner) file(path string) fileResult {
	if !classify.Allowed(path, s.exts) || classify.IsBinary(path) {
		return fileResult{}
	}
	s.progress.Step()
	return fileResult{scanned: true, matches: s.lines(path)}
}

// lines returns every match in the file at path. Any read or decoding error
// discards the file's matches, including those on earlier lines.
func (s scanner) lines(path string) []result.Match {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var matches []result.Match
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, min(initialBuffer, s.maxLine)), s.maxLine)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		// ScanLines already drops a trailing \r.
		line := sc.Text()
		if !utf8.ValidString(line) {
			return nil
		}
		for _, loc := range s.re.FindAllStringIndex(line, -1) {
			matches = append(matches, result.Match{
				Path:    path,
				Line:    lineNum,
				Content: line,
				Start:   loc[0],
				End:     loc[1],
			})
		}
	}
	if sc.Err() != nil {
		return nil
	}
	return matches
}
