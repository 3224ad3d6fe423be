//go:build mcp

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/actonlabs/acton/pkg/action"
)

// Server wraps an MCP server publishing the action catalog.
type Server struct {
	srv *mcp.Server
}

type Option func(*Server)

// New creates an MCP server backed by the official SDK.
func New(_ ...Option) *Server {
	impl := &mcp.Implementation{Name: "acton", Version: "0.1.0"}
	return &Server{srv: mcp.NewServer(impl, nil)}
}

// ExportCatalog publishes every registered action as an MCP tool. Calls go
// through the executor, so the permission gate and argument validation hold
// for remote callers too.
func (s *Server) ExportCatalog(reg *action.Registry, exec *action.Executor) error {
	for def := range reg.List() {
		schema, err := def.SchemaObject()
		if err != nil {
			return fmt.Errorf("schema for %s: %w", def.Name, err)
		}
		name := def.Name
		s.srv.AddTool(&mcp.Tool{
			Name:        name,
			Description: def.Description,
			InputSchema: schema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var args map[string]any
			if len(req.Params.Arguments) > 0 {
				if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
					return nil, err
				}
			}
			res := exec.Execute(ctx, action.Invocation{
				ID:         uuid.NewString(),
				ActionName: name,
				Actor:      "mcp",
				Args:       args,
			})
			if !res.Success {
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: res.Err.Error()}},
				}, nil
			}
			payload, err := json.Marshal(res.Payload)
			if err != nil {
				return nil, err
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
			}, nil
		})
	}
	return nil
}

// Run serves MCP over stdio until the context ends.
func (s *Server) Run(ctx context.Context) error {
	return s.srv.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to an arbitrary transport. Used by tests.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.srv.Connect(ctx, t, nil)
}
