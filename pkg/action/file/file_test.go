package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/errmodel"
)

func sandboxExecutor(t *testing.T) (*action.Executor, *action.PermissionSet, string) {
	t.Helper()
	root := t.TempDir()
	reg := action.NewRegistry()
	for _, a := range All(root) {
		if err := reg.Register(a); err != nil {
			t.Fatal(err)
		}
	}
	perms := action.NewPermissionSet(PermRead, PermWrite)
	return action.NewExecutor(reg, perms, nil), perms, root
}

func TestReadFile(t *testing.T) {
	ex, _, root := sandboxExecutor(t)
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "read_file",
		Args:       map[string]any{"path": "notes.txt"},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	payload := res.Payload.(map[string]any)
	if payload["content"] != "hello" || payload["size"] != 5 {
		t.Fatalf("payload=%v", payload)
	}
}

func TestReadFilePermissionGate(t *testing.T) {
	ex, perms, root := sandboxExecutor(t)
	perms.Revoke(PermRead)
	p := filepath.Join(root, "secret.txt")
	if err := os.WriteFile(p, []byte("shh"), 0o644); err != nil {
		t.Fatal(err)
	}
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "read_file",
		Args:       map[string]any{"path": "secret.txt"},
	})
	if res.Success || res.ErrKind() != errmodel.CodePermissionDenied {
		t.Fatalf("res=%+v", res)
	}
}

func TestReadFileTraversalRejected(t *testing.T) {
	ex, _, _ := sandboxExecutor(t)
	for _, p := range []string{"../etc/passwd", "/etc/passwd", "a/../../b"} {
		res := ex.Execute(context.Background(), action.Invocation{
			ActionName: "read_file",
			Args:       map[string]any{"path": p},
		})
		if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
			t.Fatalf("path %q: res=%+v", p, res)
		}
	}
}

func TestWriteFileAndOverwrite(t *testing.T) {
	ex, _, root := sandboxExecutor(t)
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "write_file",
		Args:       map[string]any{"path": "out/log.txt", "content": "first"},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	b, err := os.ReadFile(filepath.Join(root, "out", "log.txt"))
	if err != nil || string(b) != "first" {
		t.Fatalf("content=%q err=%v", b, err)
	}

	// default overwrite=false refuses to clobber
	res = ex.Execute(context.Background(), action.Invocation{
		ActionName: "write_file",
		Args:       map[string]any{"path": "out/log.txt", "content": "second"},
	})
	if res.Success || res.ErrKind() != errmodel.CodeExecutionFailed {
		t.Fatalf("res=%+v", res)
	}

	res = ex.Execute(context.Background(), action.Invocation{
		ActionName: "write_file",
		Args:       map[string]any{"path": "out/log.txt", "content": "second", "overwrite": true},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	b, _ = os.ReadFile(filepath.Join(root, "out", "log.txt"))
	if string(b) != "second" {
		t.Fatalf("content=%q", b)
	}
}

func TestListDirectory(t *testing.T) {
	ex, _, root := sandboxExecutor(t)
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		if err := os.WriteFile(filepath.Join(root, p), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	res := ex.Execute(context.Background(), action.Invocation{ActionName: "list_directory", Args: map[string]any{}})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	payload := res.Payload.(map[string]any)
	if files := payload["files"].([]string); len(files) != 1 || files[0] != "a.txt" {
		t.Fatalf("files=%v", files)
	}
	if dirs := payload["directories"].([]string); len(dirs) != 1 || dirs[0] != "sub" {
		t.Fatalf("dirs=%v", dirs)
	}

	res = ex.Execute(context.Background(), action.Invocation{
		ActionName: "list_directory",
		Args:       map[string]any{"recursive": true},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	payload = res.Payload.(map[string]any)
	if files := payload["files"].([]string); len(files) != 2 {
		t.Fatalf("recursive files=%v", files)
	}
}

func TestDeleteFile(t *testing.T) {
	ex, _, root := sandboxExecutor(t)
	p := filepath.Join(root, "tmp.txt")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// confirm is required
	res := ex.Execute(context.Background(), action.Invocation{
		ActionName: "delete_file",
		Args:       map[string]any{"path": "tmp.txt", "confirm": false},
	})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("res=%+v", res)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatal("file removed without confirmation")
	}

	res = ex.Execute(context.Background(), action.Invocation{
		ActionName: "delete_file",
		Args:       map[string]any{"path": "tmp.txt", "confirm": true},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatal("file still present")
	}

	// deleting again reports failure: delete_file is documented non-idempotent
	res = ex.Execute(context.Background(), action.Invocation{
		ActionName: "delete_file",
		Args:       map[string]any{"path": "tmp.txt", "confirm": true},
	})
	if res.Success || res.ErrKind() != errmodel.CodeExecutionFailed {
		t.Fatalf("res=%+v", res)
	}
}
