// Package walk enumerates the files beneath a search root.
//
// Files yields entries lazily in lexical order, the order filepath.WalkDir
// visits them, so an unchanged tree always produces the same sequence. Both
// search engines depend on that for reproducible output.
//
// Entries that cannot be read are skipped rather than failing the walk: a
// permission error on one directory prunes that directory only, and a broken
// symlink is simply not reported. A partial listing is always more useful
// than none.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/jpl-au/ffind/internal/glob"
)

// ErrRoot indicates the search root is missing or not a directory.
var ErrRoot = errors.New("invalid search root")

// Options configures a walk.
type Options struct {
	// Exclude holds glob patterns (see package glob). Matching directories
	// are pruned; matching files are skipped.
	Exclude []string
}

// Entry is a single file reached by the walk.
type Entry struct {
	Path string      // Root joined with Rel, as passed to os.Open
	Rel  string      // Path relative to the root, slash separated
	Name string      // Base name
	Info fs.FileInfo // nil if the file vanished between listing and stat
}

// Stat checks that root exists and is a directory.
func Stat(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoot, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRoot, root)
	}
	return nil
}

// Files returns the regular files beneath root. Directories themselves are
// never yielded. Symlinks are not followed; a symlink to a file is yielded
// only when it resolves to a regular file.
func Files(root string, opts Options) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable directory or entry: skip it, keep walking.
				if d != nil && d.IsDir() && p != root {
					return fs.SkipDir
				}
				return nil
			}

			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if p != root && glob.Excluded(opts.Exclude, rel) {
					return fs.SkipDir
				}
				return nil
			}

			if glob.Excluded(opts.Exclude, rel) {
				return nil
			}

			e, ok := entry(p, rel, d)
			if !ok {
				return nil
			}
			if !yield(e) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// entry builds an Entry for a non-directory, reporting false for anything
// that is not (or does not resolve to) a regular file.
func entry(p, rel string, d fs.DirEntry) (Entry, bool) {
	e := Entry{Path: p, Rel: rel, Name: d.Name()}

	switch t := d.Type(); {
	case t.IsRegular():
		info, err := d.Info()
		if err == nil {
			e.Info = info
		}
		return e, true
	case t&fs.ModeSymlink != 0:
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			return e, false // broken link, or a link to a directory/device
		}
		e.Info = info
		return e, true
	default:
		return e, false
	}
}

// Collect drains Files into a slice.
func Collect(root string, opts Options) []Entry {
	var out []Entry
	for e := range Files(root, opts) {
		out = append(out, e)
	}
	return out
}
