// options.go resolves the flags find and grep share. A flag the user did
// not pass falls back to the config value, so config sets defaults and the
// command line always wins.

package search

import (
	"fmt"

	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/glob"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// common holds the resolved shared flags.
type common struct {
	dir        string
	ignoreCase bool
	regex      bool
	exclude    []string
}

func addCommonFlags(fs *pflag.FlagSet) {
	fs.StringP(extension.FlagDir, "d", ".", "Directory to search")
	fs.BoolP(extension.FlagIgnoreCase, "i", false, "Ignore case distinctions")
	fs.BoolP(extension.FlagRegex, "r", false, "Treat the pattern as a regular expression")
	fs.StringArrayP(extension.FlagExclude, "x", nil, "Exclude paths matching this glob (repeatable)")
	fs.Bool(extension.FlagNoDefaultExcludes, false, "Do not skip the default excluded directories")
}

func (e *Extension) common(c *cobra.Command) (common, error) {
	fs := c.Flags()
	dir, _ := fs.GetString(extension.FlagDir)
	extra, _ := fs.GetStringArray(extension.FlagExclude)
	noDefaults, _ := fs.GetBool(extension.FlagNoDefaultExcludes)

	if err := glob.Validate(extra); err != nil {
		return common{}, fmt.Errorf("--exclude: %w", err)
	}
	return common{
		dir:        dir,
		ignoreCase: flagOr(fs, extension.FlagIgnoreCase, e.cfg.IgnoreCase()),
		regex:      flagOr(fs, extension.FlagRegex, e.cfg.Regex()),
		exclude:    e.cfg.Exclusions(extra, noDefaults),
	}, nil
}

// flagOr returns the named bool flag if it was set, otherwise def.
func flagOr(fs *pflag.FlagSet, name string, def bool) bool {
	if !fs.Changed(name) {
		return def
	}
	v, _ := fs.GetBool(name)
	return v
}

// orEmpty makes a nil result encode as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
