// Package vacuum trims the audit log. Entries older than the retention age
// are deleted permanently; DryRun reports how many would go.
package vacuum

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/progress"
)

// Options configures a vacuum.
type Options struct {
	OlderThan time.Duration // Keep entries younger than this (0 = delete all)
	DryRun    bool          // Count without deleting
	Quiet     bool          // Write nothing; the caller renders Result itself

	// Now is the reference time. Zero means time.Now().
	Now time.Time
}

// Result reports what was, or would be, deleted.
type Result struct {
	Deleted int64     `json:"deleted"`
	Cutoff  time.Time `json:"cutoff"`
	DryRun  bool      `json:"dry_run,omitempty"`
}

// Run deletes audit entries that started before now minus OlderThan.
func Run(ctx context.Context, w io.Writer, opts Options) (Result, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	res := Result{Cutoff: now.Add(-opts.OlderThan), DryRun: opts.DryRun}

	var err error
	if opts.DryRun {
		res.Deleted, err = log.CountBefore(ctx, res.Cutoff)
	} else {
		spin := progress.NewSpinner("Vacuuming", 1)
		spin.Start()
		res.Deleted, err = log.PruneBefore(ctx, res.Cutoff)
		spin.Stop()
	}
	if err != nil {
		return res, err
	}

	if opts.Quiet {
		return res, nil
	}
	noun := "entries"
	if res.Deleted == 1 {
		noun = "entry"
	}
	switch {
	case opts.DryRun:
		fmt.Fprintf(w, "Would delete %d audit %s\n", res.Deleted, noun)
	case res.Deleted == 0:
		fmt.Fprintln(w, "No audit entries to vacuum")
	default:
		fmt.Fprintf(w, "Vacuumed %d audit %s\n", res.Deleted, noun)
	}
	return res, nil
}
