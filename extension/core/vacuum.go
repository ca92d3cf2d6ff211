// vacuum.go implements the "ffind vacuum" command, which trims the audit
// log. Deletion is permanent; --dry-run previews the count.

package core

import (
	"fmt"

	"github.com/jpl-au/ffind/cmd"
	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/duration"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/jpl-au/ffind/internal/vacuum"
	"github.com/spf13/cobra"
)

func newVacuumCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vacuum",
		Short: "Delete old audit log entries",
		Long: `Permanently delete audit log entries older than a retention age.

  ffind vacuum                     # keep the last 30 days
  ffind vacuum --older-than 1w     # keep the last week
  ffind vacuum --older-than 0d     # delete everything
  ffind vacuum --dry-run           # count without deleting

Ages: 12h, 7d, 4w, 3m (30 days), 1y (365 days).`,
		Args: cobra.NoArgs,
		RunE: runVacuum,
	}
	c.Flags().String(extension.FlagOlderThan, "30d", "Delete entries older than this")
	c.Flags().Bool(extension.FlagDryRun, false, "Count entries without deleting")
	return c
}

func runVacuum(c *cobra.Command, _ []string) error {
	age, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	olderThan, err := duration.Parse(age)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	res, err := vacuum.Run(c.Context(), cmd.Out(), vacuum.Options{
		OlderThan: olderThan,
		DryRun:    dryRun,
		Quiet:     cmd.JSON(),
	})

	log.Event("core:vacuum", "vacuum").
		Matches(int(res.Deleted)).
		Detail("older_than", age).
		Detail("dry_run", dryRun).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("vacuum: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	return nil
}
