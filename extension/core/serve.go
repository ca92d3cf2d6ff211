// serve.go implements the "ffind serve" command. Unlike other commands it
// blocks, handling MCP requests over stdio until the client disconnects.

package core

import (
	"github.com/jpl-au/ffind/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools: ffind_find, ffind_grep, ffind_config_get, ffind_config_set, ffind_guide.
Config is re-read on every call, so changes apply without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
