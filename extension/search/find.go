// find.go implements "ffind find", which matches file names.

package search

import (
	"fmt"
	"io"

	"github.com/jpl-au/ffind/cmd"
	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/find"
	"github.com/jpl-au/ffind/internal/format"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/progress"
	"github.com/spf13/cobra"
)

func (e *Extension) newFindCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "find <name>",
		Short: "Find files by name",
		Long: `Find files whose name contains a substring or matches a regex.

  ffind find config              # names containing "config"
  ffind find -i readme -d docs   # case-insensitive, under docs/
  ffind find -r '\.ya?ml$'       # regex on the file name
  ffind find main -x 'testdata'  # skip an extra directory

Directories are walked but never matched. Only the base name is tested.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runFind,
	}
	addCommonFlags(c.Flags())
	c.Flags().BoolP(extension.FlagPathsOnly, "l", false, "Only output paths")
	c.Flags().Bool(extension.FlagTree, false, "Output matches as a directory tree")
	return c
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	ctx := c.Context()
	pat := args[0]
	co, err := e.common(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	pathsOnly, _ := c.Flags().GetBool(extension.FlagPathsOnly)
	tree, _ := c.Flags().GetBool(extension.FlagTree)

	opts := find.Options{
		Root:       co.dir,
		IgnoreCase: co.ignoreCase,
		Regex:      co.regex,
		Exclude:    co.exclude,
		PathsOnly:  pathsOnly,
		Tree:       tree,
		Quiet:      cmd.JSON(),
		Style:      cmd.Style(),
	}

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	} else {
		opts.Progress = progress.NewSpinner("Searching", progress.EveryEntries)
		if !pathsOnly && !tree {
			format.Header(w, format.Heading{
				Pattern:    pat,
				Root:       co.dir,
				IgnoreCase: co.ignoreCase,
				Regex:      co.regex,
			}, opts.Style)
		}
	}

	res, err := find.Run(ctx, w, pat, opts)

	log.Event("search:find", "search").
		Root(co.dir).
		Pattern(pat).
		Matches(len(res.Files)).
		Detail("regex", co.regex).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", pat, err))
	}

	if cmd.JSON() {
		if pathsOnly || tree {
			return cmd.PrintJSON(res.Paths())
		}
		return cmd.PrintJSON(orEmpty(res.Files))
	}
	return nil
}
