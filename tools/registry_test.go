package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) (mcp.Tool, ToolExecutor) {
	tool := mcp.NewTool(name,
		mcp.WithDescription("echoes its message argument"),
		mcp.WithString("message", mcp.Required()),
	)
	return tool, func(ctx context.Context, args map[string]interface{}) (string, error) {
		msg, _ := args["message"].(string)
		if msg == "" {
			return "", errors.New("message is required")
		}
		return fmt.Sprintf("echo: %s", msg), nil
	}
}

func TestRegistry_RegisterAndExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(echoTool("echo"))

	out, err := r.ExecuteTool(context.Background(), "echo", map[string]interface{}{"message": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
}

func TestRegistry_UnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.ExecuteTool(context.Background(), "missing", nil)
	assert.EqualError(t, err, "tool not found: missing")
}

func TestRegistry_GetToolsPreservesOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(echoTool("first"))
	r.Register(echoTool("second"))

	tools := r.GetTools()
	require.Len(t, tools, 2)
	assert.Equal(t, "first", tools[0].Name)
	assert.Equal(t, "second", tools[1].Name)
}

func TestRegistry_ExecutorErrorPropagates(t *testing.T) {
	r := NewRegistry()
	r.Register(echoTool("echo"))

	_, err := r.ExecuteTool(context.Background(), "echo", nil)
	assert.EqualError(t, err, "message is required")
}
