// history.go implements the "ffind history" command.

package core

import (
	"fmt"

	"github.com/jpl-au/ffind/cmd"
	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/history"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "List recent searches from the audit log",
		Long: `List recent searches from the audit log, newest first.

  ffind history               # last 20 operations
  ffind history -n 0          # everything
  ffind history --source mcp: # only MCP tool calls
  ffind history --failed      # only operations that failed

Search roots are shown hashed.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Maximum entries to show (0 = all)")
	c.Flags().String(extension.FlagSource, "", "Only sources starting with this prefix")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed operations")
	return c
}

func runHistory(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	source, _ := c.Flags().GetString(extension.FlagSource)
	failed, _ := c.Flags().GetBool(extension.FlagFailed)

	if limit < 0 {
		return cmd.PrintJSONError(fmt.Errorf("limit (-n) must be >= 0, got %d", limit))
	}

	res, err := history.Run(c.Context(), cmd.Out(), history.Options{
		Limit:  limit,
		Source: source,
		Failed: failed,
		Quiet:  cmd.JSON(),
		Style:  cmd.Style(),
	})
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("history: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(historyJSON(res))
	}
	return nil
}

type entryJSON struct {
	ID      string         `json:"id"`
	Source  string         `json:"source"`
	Action  string         `json:"action"`
	Root    string         `json:"root,omitempty"`
	Pattern string         `json:"pattern,omitempty"`
	Matches int            `json:"matches"`
	Start   string         `json:"start"`
	Millis  int64          `json:"duration_ms"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
}

func historyJSON(res history.Result) []entryJSON {
	out := make([]entryJSON, len(res.Entries))
	for i, e := range res.Entries {
		out[i] = entryJSON{
			ID:      e.ID,
			Source:  e.Source,
			Action:  e.Action,
			Root:    e.Root,
			Pattern: e.Pattern,
			Matches: e.Matches,
			Start:   e.Start.Format("2006-01-02T15:04:05.000Z07:00"),
			Millis:  e.End.Sub(e.Start).Milliseconds(),
			Success: e.Success,
			Error:   e.Error,
			Detail:  e.Detail,
		}
	}
	return out
}
