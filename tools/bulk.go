package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jonzarecki/fast-flights-mcp/log"
)

// CallToolRequest is one entry of a bulk invocation.
type CallToolRequest struct {
	Tool      string                 `json:"tool"`
	Arguments map[string]interface{} `json:"arguments"`
}

// BulkToolCaller exposes bulk invocation of the other registered tools:
// one tool with many argument sets, or many (tool, arguments) pairs.
// A failed call is reported inline; the batch never aborts.
type BulkToolCaller struct {
	Registry *Registry
}

// NewBulkToolCaller initializes and registers the bulk calling tools
func NewBulkToolCaller(registry *Registry) *BulkToolCaller {
	t := &BulkToolCaller{Registry: registry}
	registry.Register(t.callToolBulkDefinition(), t.executeCallToolBulk)
	registry.Register(t.callToolsBulkDefinition(), t.executeCallToolsBulk)
	return t
}

func (t *BulkToolCaller) callToolBulkDefinition() mcp.Tool {
	return mcp.NewTool("call_tool_bulk",
		mcp.WithDescription("Calls one registered tool multiple times with different argument sets, returning all results in order."),
		mcp.WithString("tool", mcp.Required(), mcp.Description("Name of the tool to call")),
		mcp.WithArray("arguments_list", mcp.Required(),
			mcp.Description("One argument object per call"),
			mcp.Items(map[string]interface{}{"type": "object"})),
	)
}

func (t *BulkToolCaller) callToolsBulkDefinition() mcp.Tool {
	return mcp.NewTool("call_tools_bulk",
		mcp.WithDescription("Calls several registered tools in sequence, returning all results in order."),
		mcp.WithArray("requests", mcp.Required(),
			mcp.Description("One {tool, arguments} object per call"),
			mcp.Items(map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tool":      map[string]interface{}{"type": "string"},
					"arguments": map[string]interface{}{"type": "object"},
				},
				"required": []string{"tool"},
			})),
	)
}

func (t *BulkToolCaller) executeCallToolBulk(ctx context.Context, args map[string]interface{}) (string, error) {
	name, ok := args["tool"].(string)
	if !ok || name == "" {
		return "", fmt.Errorf("tool is required")
	}
	list, ok := args["arguments_list"].([]interface{})
	if !ok {
		return "", fmt.Errorf("arguments_list is required")
	}

	requests := make([]CallToolRequest, 0, len(list))
	for _, item := range list {
		callArgs, ok := item.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("arguments_list entries must be objects")
		}
		requests = append(requests, CallToolRequest{Tool: name, Arguments: callArgs})
	}
	return t.run(ctx, requests), nil
}

func (t *BulkToolCaller) executeCallToolsBulk(ctx context.Context, args map[string]interface{}) (string, error) {
	list, ok := args["requests"].([]interface{})
	if !ok {
		return "", fmt.Errorf("requests is required")
	}

	requests := make([]CallToolRequest, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("requests entries must be objects")
		}
		name, ok := entry["tool"].(string)
		if !ok || name == "" {
			return "", fmt.Errorf("each request needs a tool name")
		}
		callArgs, _ := entry["arguments"].(map[string]interface{})
		requests = append(requests, CallToolRequest{Tool: name, Arguments: callArgs})
	}
	return t.run(ctx, requests), nil
}

func (t *BulkToolCaller) run(ctx context.Context, requests []CallToolRequest) string {
	log.Infof(ctx, "Running bulk call with %d request(s)", len(requests))

	var b strings.Builder
	for i, req := range requests {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "--- call %d: %s ---\n", i+1, req.Tool)

		text, err := t.Registry.ExecuteTool(ctx, req.Tool, req.Arguments)
		if err != nil {
			fmt.Fprintf(&b, "Error: %v\n", err)
			continue
		}
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
