//go:build mcp

package mcpserver

import (
	"context"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/action/file"
)

func TestExportCatalogOverInMemoryTransport(t *testing.T) {
	reg := action.NewRegistry()
	perms := action.NewPermissionSet(file.PermRead)
	for _, a := range file.All(t.TempDir()) {
		if err := reg.Register(a); err != nil {
			t.Fatal(err)
		}
	}
	exec := action.NewExecutor(reg, perms, nil)

	s := New()
	if err := s.ExportCatalog(reg, exec); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	st, ct := mcp.NewInMemoryTransports()
	ss, err := s.Connect(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(tools.Tools) != reg.Len() {
		t.Fatalf("got %d tools, want %d", len(tools.Tools), reg.Len())
	}

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_directory",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("call failed: %+v", res.Content)
	}

	// write_file is not granted, so the gate must reject it.
	res, err = cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "write_file",
		Arguments: map[string]any{"path": "a.txt", "content": "x"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Fatal("expected permission denial")
	}
}
