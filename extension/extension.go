// Package extension provides the plugin architecture for ffind. Extensions
// group related commands and register at init time, so a new command set
// can be added without touching the root command.
package extension

import "github.com/spf13/cobra"

// Extension defines the contract for ffind extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions receive the loaded configuration before any of
// their commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// must run without extension initialisation. Commands returned by
// StandaloneCommands() skip Init in PersistentPreRunE, so they still work
// when the config file is malformed.
type Standalone interface {
	StandaloneCommands() []string
}
