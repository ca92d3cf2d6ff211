// tools_util.go extracts typed parameters from MCP's generic argument map.
//
// Extraction is permissive: a missing or mistyped optional parameter yields
// the default instead of an error, since LLMs often omit optional arguments
// or send them in an unexpected shape. Required parameters are checked by the
// handlers themselves with RequireString, so a missing pattern still fails
// with a message the client can act on.
//
// Defaults come from the caller. The search tools pass the loaded
// configuration's value, which keeps a tool call that omits ignore_case or
// threads consistent with what the CLI would do in the same directory.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString returns the named string parameter, or def.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool returns the named boolean parameter, or def.
//
// mcp-go has no RequireBool, so the raw argument map is read directly. Only a
// JSON boolean counts: a string "true" falls back to def rather than being
// parsed, so a malformed call behaves like one that left the flag out.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt returns the named number parameter truncated to int, or def.
//
// encoding/json decodes every JSON number as float64, so the assertion is on
// float64 and the value is truncated. Range checks belong to the caller:
// grep.Run scans sequentially below two threads and the limit parameter
// treats anything below 1 as unlimited.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// getStrings returns the named string array, skipping non-string elements.
// Returns nil when the parameter is absent.
func getStrings(req mcp.CallToolRequest, name string) []string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// jsonResult serialises v as indented JSON in a text result. Marshalling
// failures become tool errors so the client always gets an MCP result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
