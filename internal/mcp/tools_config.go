// tools_config.go implements the MCP configuration tools. Handlers load
// configuration per call, so a value set here applies to the next search
// without restarting the server.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/ffind/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles ffind_config_get tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	cfg, err := h.load()
	if err != nil {
		log.Event("mcp:ffind_config_get", "config").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:ffind_config_get", "config").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:ffind_config_get", "config").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{key: v})
}

// configSet handles ffind_config_set tool calls.
func (h *handlers) configSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	l := log.Event("mcp:ffind_config_set", "config").Detail("key", key).Detail("value", value)

	cfg, err := h.load()
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := cfg.Set(key, value); err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = cfg.Save()
	l.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s", key, value)), nil
}
