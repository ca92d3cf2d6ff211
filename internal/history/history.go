// Package history lists past searches from the audit log, newest first.
//
// Roots appear as the hash the log stores, so the listing groups runs over
// the same directory without naming it.
package history

import (
	"context"
	"io"

	"github.com/jpl-au/ffind/internal/format"
	"github.com/jpl-au/ffind/internal/log"
)

// Options configures a history listing.
type Options struct {
	Limit  int    // Maximum entries to show (0 = all)
	Source string // Source prefix filter, e.g. "mcp:" or "search:grep"
	Failed bool   // Only failed operations
	Quiet  bool   // Write nothing; the caller renders Result itself
	Style  format.Style
}

// Result contains the entries listed.
type Result struct {
	Entries []log.Entry
}

// Run reads the audit log and writes the listing to w.
func Run(ctx context.Context, w io.Writer, opts Options) (Result, error) {
	var res Result

	entries, err := log.Recent(ctx, log.Query{Limit: opts.Limit, Source: opts.Source, Failed: opts.Failed})
	if err != nil {
		return res, err
	}
	res.Entries = entries

	if !opts.Quiet {
		format.History(w, entries, opts.Style)
	}
	return res, nil
}
