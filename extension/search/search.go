// Package search provides the find and grep commands.
package search

import (
	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	cfg *config.Config
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init keeps the loaded config, which supplies defaults for unset flags.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the find and grep commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFindCmd(),
		e.newGrepCmd(),
	}
}
