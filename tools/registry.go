package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jonzarecki/fast-flights-mcp/log"
)

// ToolExecutor is the function signature for executing a tool
type ToolExecutor func(ctx context.Context, args map[string]interface{}) (string, error)

// Registry manages the registration of MCP tools. Executors stay
// addressable by name so the bulk caller can re-invoke any registered
// tool locally without going back over the wire.
type Registry struct {
	tools     []mcp.Tool
	executors map[string]ToolExecutor
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry with its executor
func (r *Registry) Register(tool mcp.Tool, executor ToolExecutor) {
	r.tools = append(r.tools, tool)
	r.executors[tool.Name] = executor
}

// GetTools returns all registered tools
func (r *Registry) GetTools() []mcp.Tool {
	return r.tools
}

// ExecuteTool runs a registered tool by name
func (r *Registry) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	executor, ok := r.executors[name]
	if !ok {
		return "", fmt.Errorf("tool not found: %s", name)
	}
	return executor(ctx, args)
}

// Attach exposes every registered tool on the MCP server. Each call
// gets a fresh request ID for log correlation, and executor errors are
// rendered as error text: no raw error ever crosses the boundary.
func (r *Registry) Attach(s *server.MCPServer) {
	for _, tool := range r.tools {
		executor := r.executors[tool.Name]
		s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx = log.WithNewRequestID(ctx)

			text, err := executor(ctx, req.GetArguments())
			if err != nil {
				log.Errorf(ctx, "Tool %s failed: %v", req.Params.Name, err)
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(text), nil
		})
	}
}
