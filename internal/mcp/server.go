// Package mcp implements the Model Context Protocol server, exposing ffind's
// file-name and content search to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/ffind/internal/config"
	"github.com/jpl-au/ffind/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(config.Load)

	slog.Info("ffind MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every ffind tool registered.
// Configuration is loaded through load on each call so that changes made
// with ffind_config_set apply to the next search.
func NewServer(load func() (*config.Config, error)) *server.MCPServer {
	h := &handlers{load: load}

	s := server.NewMCPServer(
		"ffind",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	return s
}

type handlers struct {
	load func() (*config.Config, error)
}

// registerResources adds URI-based access to the guide pages.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"ffind://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read an ffind guide page (find, grep, config)"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// registerTools exposes ffind operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("ffind_find",
			mcp.WithDescription("Find files whose name contains a pattern (literal substring, or regex with regex=true). Directories are never matched."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("File name pattern")),
			mcp.WithString("dir", mcp.Description("Directory to search (default: server working directory)")),
			mcp.WithBoolean("ignore_case", mcp.Description("Case insensitive matching")),
			mcp.WithBoolean("regex", mcp.Description("Treat pattern as a regular expression")),
			mcp.WithArray("exclude", mcp.Description("Extra glob patterns to skip (e.g. 'testdata', '*.min.js')"), mcp.WithStringItems()),
			mcp.WithBoolean("no_default_excludes", mcp.Description("Do not skip node_modules, .git, build output and similar")),
			mcp.WithBoolean("paths_only", mcp.Description("Return only paths")),
		),
		h.findFiles,
	)

	s.AddTool(
		mcp.NewTool("ffind_grep",
			mcp.WithDescription("Search file contents for a pattern. Returns every match with line number and byte span. Binary files are skipped."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Literal text, or a regex with regex=true (e.g. 'TODO|FIXME', 'fn\\s+\\w+')")),
			mcp.WithString("dir", mcp.Description("Directory to search (default: server working directory)")),
			mcp.WithBoolean("ignore_case", mcp.Description("Case insensitive search")),
			mcp.WithBoolean("regex", mcp.Description("Treat pattern as a regular expression")),
			mcp.WithString("extensions", mcp.Description("Comma-separated extensions to search (e.g. 'go,rs'); empty searches all text files")),
			mcp.WithArray("exclude", mcp.Description("Extra glob patterns to skip"), mcp.WithStringItems()),
			mcp.WithBoolean("no_default_excludes", mcp.Description("Do not skip node_modules, .git, build output and similar")),
			mcp.WithNumber("threads", mcp.Description("Worker count (default from config, 1 = sequential)")),
			mcp.WithBoolean("paths_only", mcp.Description("Return only paths of files with matches")),
			mcp.WithBoolean("count_only", mcp.Description("Return match counts per file")),
			mcp.WithNumber("limit", mcp.Description("Maximum matches to return (0 = all); totals are still reported")),
		),
		h.grepFiles,
	)

	s.AddTool(
		mcp.NewTool("ffind_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (e.g. search.exclude, search.threads) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("ffind_config_set",
			mcp.WithDescription("Set a configuration value in the global config"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("ffind_guide",
			mcp.WithDescription("Get help/guide content for ffind commands"),
			mcp.WithString("topic", mcp.Description("Guide topic ('find', 'grep', 'config') or empty for index")),
		),
		h.getGuide,
	)
}
