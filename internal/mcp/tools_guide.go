// tools_guide.go serves the embedded guide pages as a tool and a resource.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/ffind/guide"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

const guidePrefix = "ffind://guide/"

// getGuide handles ffind_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:ffind_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		// Unknown topic: tell the client what exists
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}
	return mcp.NewToolResultText(content), nil
}

// readGuide handles ffind://guide/{topic} resource requests.
func (h *handlers) readGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	uri := req.Params.URI
	topic, ok := strings.CutPrefix(uri, guidePrefix)
	if !ok {
		return nil, fmt.Errorf("invalid URI %q: expected %s{topic}", uri, guidePrefix)
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}
