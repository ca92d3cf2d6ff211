// Package core provides the core extension for ffind.
// It registers commands: config, guide, serve, history, vacuum, version.
package core

import (
	"github.com/jpl-au/ffind/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the supporting CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newHistoryCmd(),
		newVacuumCmd(),
		newVersionCmd(),
	}
}

// StandaloneCommands returns every core command: none of them needs the
// shared config. config and serve load it themselves, per call.
func (e *Extension) StandaloneCommands() []string {
	return []string{"config", "serve", "guide", "history", "vacuum", "version"}
}
