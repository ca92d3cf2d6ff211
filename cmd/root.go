/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE validates the global flags and then initialises
// extensions, which loads config. Standalone commands skip that step so
// "ffind config" can repair a config file that fails to load.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/charmbracelet/fang"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ffind",
	Short: "Recursive file name and content search",
	Long: `Search a directory tree for files by name (find) or for text inside
files (grep). Common build, dependency and VCS directories are skipped
by default.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		if !slices.Contains(validColourModes, colour) {
			return fmt.Errorf("invalid color mode: %s (valid: %v)", colour, validColourModes)
		}

		if standaloneCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			err = fmt.Errorf("initialise extensions: %w", err)
			_ = PrintJSON(map[string]string{"error": err.Error()})
			return err
		}
		return nil
	},
}

// topLevelCmdName returns the name of the direct child of root that cmd
// belongs to.
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle. An
// interrupt cancels the command's context, so a running search stops at
// the next file. Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	registerExtensions()
	err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithoutManpage(),
	)

	stop()
	log.Close()

	if err != nil || failed {
		os.Exit(1)
	}
}
