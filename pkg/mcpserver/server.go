//go:build !mcp

// Package mcpserver exports the action catalog over the Model Context
// Protocol. Without the mcp build tag it compiles to a stub so the rest of
// the repo does not depend on the SDK.
package mcpserver

import (
	"context"
	"errors"

	"github.com/actonlabs/acton/pkg/action"
)

// Server is a placeholder MCP server when the mcp build tag is not set.
type Server struct{}

type Option func(*Server)

// New creates a new MCP server (no-op without the mcp tag).
func New(_ ...Option) *Server { return &Server{} }

// ExportCatalog would publish the registry's actions as MCP tools.
func (s *Server) ExportCatalog(_ *action.Registry, _ *action.Executor) error { return nil }

// Run starts the MCP server over stdio.
func (s *Server) Run(_ context.Context) error {
	return errors.New("mcp server not enabled in this build")
}
