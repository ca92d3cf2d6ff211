// grep.go implements "ffind grep", which searches file contents.

package search

import (
	"fmt"
	"io"

	"github.com/jpl-au/ffind/cmd"
	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/classify"
	"github.com/jpl-au/ffind/internal/config"
	"github.com/jpl-au/ffind/internal/format"
	"github.com/jpl-au/ffind/internal/grep"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/progress"
	"github.com/spf13/cobra"
)

// fileCount is one line of -c output in JSON mode.
type fileCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (e *Extension) newGrepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "grep <pattern>",
		Short: "Search file contents",
		Long: `Search the contents of text files for a substring or regex.

  ffind grep TODO                  # every TODO, with line numbers
  ffind grep -e rs,go 'fn main'    # only .rs and .go files
  ffind grep -ri 'err(or)?\b'      # case-insensitive regex
  ffind grep -l deprecated         # paths of matching files
  ffind grep -t 8 needle           # scan with 8 workers

Binary files are skipped by extension and by sniffing their first bytes.
Every occurrence on a line is reported separately.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runGrep,
	}
	addCommonFlags(c.Flags())
	c.Flags().StringP(extension.FlagExt, "e", "", "Comma-separated extensions to search (e.g. rs,go,py)")
	c.Flags().IntP(extension.FlagThreads, "t", 0, "Worker count (default from config, 1 = sequential)")
	c.Flags().BoolP(extension.FlagFilesWithMatch, "l", false, "Only output paths of matching files")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Only print the match count per file")
	return c
}

func (e *Extension) runGrep(c *cobra.Command, args []string) error {
	ctx := c.Context()
	pat := args[0]
	co, err := e.common(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	pathsOnly, _ := c.Flags().GetBool(extension.FlagFilesWithMatch)
	countOnly, _ := c.Flags().GetBool(extension.FlagCount)

	exts := e.cfg.Extensions()
	if c.Flags().Changed(extension.FlagExt) {
		exts, _ = c.Flags().GetString(extension.FlagExt)
	}
	threads := e.cfg.Threads()
	if c.Flags().Changed(extension.FlagThreads) {
		threads, _ = c.Flags().GetInt(extension.FlagThreads)
	}
	if threads < config.MinThreads || threads > config.MaxThreads {
		return cmd.PrintJSONError(fmt.Errorf("threads (-t) must be between %d and %d, got %d",
			config.MinThreads, config.MaxThreads, threads))
	}

	set := classify.ParseExtensions(exts)
	opts := grep.Options{
		Root:          co.dir,
		IgnoreCase:    co.ignoreCase,
		Regex:         co.regex,
		Exclude:       co.exclude,
		Extensions:    set,
		Threads:       threads,
		MaxLineLength: e.cfg.MaxLineLength(),
		PathsOnly:     pathsOnly,
		CountOnly:     countOnly,
		Quiet:         cmd.JSON(),
		Style:         cmd.Style(),
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	} else {
		opts.Progress = progress.NewSpinner("Scanning", progress.EveryFiles)
		if !pathsOnly && !countOnly {
			format.Header(w, format.Heading{
				Pattern:    pat,
				Root:       co.dir,
				IgnoreCase: co.ignoreCase,
				Regex:      co.regex,
				Extensions: set.String(),
				Content:    true,
			}, opts.Style)
		}
	}

	res, err := grep.Run(ctx, w, pat, opts)

	log.Event("search:grep", "search").
		Root(co.dir).
		Pattern(pat).
		Matches(len(res.Matches)).
		Detail("scanned", res.Scanned).
		Detail("extensions", set.String()).
		Detail("threads", threads).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("grep %q: %w", pat, err))
	}

	if !cmd.JSON() {
		return nil
	}
	switch {
	case pathsOnly:
		paths := make([]string, len(res.Groups))
		for i, g := range res.Groups {
			paths[i] = g.Path
		}
		return cmd.PrintJSON(paths)
	case countOnly:
		counts := make([]fileCount, len(res.Groups))
		for i, g := range res.Groups {
			counts[i] = fileCount{Path: g.Path, Count: len(g.Matches)}
		}
		return cmd.PrintJSON(counts)
	default:
		return cmd.PrintJSON(orEmpty(res.Groups))
	}
}
