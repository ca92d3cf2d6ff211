/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Extensions read these through exported accessors rather than the
// variables, so they never couple to cobra internals.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jpl-au/ffind/internal/format"
	"github.com/spf13/cobra"
)

var (
	validOutputFormats = []string{"json"}
	validColourModes   = []string{"auto", "always", "never"}
)

var (
	output string
	colour string
)

// out is the output writer for commands.
var out io.Writer = os.Stdout

// failed records that an error was reported as JSON. The process still
// exits non-zero even though cobra saw no error.
var failed bool

// Out returns the output writer.
func Out() io.Writer { return out }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Colour reports whether human-readable output should carry ANSI colour.
// In auto mode fatih/color decides from NO_COLOR, TERM and whether stdout
// is a terminal.
func Colour() bool {
	switch colour {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

// Style returns the presentation settings for format.
func Style() format.Style {
	return format.Style{Colour: !JSON() && Colour()}
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed, so cobra does not print it again,
// or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	failed = true
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVar(&colour, "color", "auto", "Colour output: auto, always, never")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validOutputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return validColourModes, cobra.ShellCompDirectiveNoFileComp
	})
}
