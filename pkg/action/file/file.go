// Package file provides the file-system action set: read_file, write_file,
// list_directory, delete_file. Every action is sandboxed beneath a root
// directory; absolute paths and traversal outside the root are rejected in
// the Validate hook before any file is touched.
package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/errmodel"
)

// Permission tokens required by the file actions.
const (
	PermRead  = "fs:read"
	PermWrite = "fs:write"
)

// All returns the full file action set rooted at dir, ready to register.
func All(root string) []action.Action {
	return []action.Action{
		ReadFile{Root: root},
		WriteFile{Root: root},
		ListDirectory{Root: root},
		DeleteFile{Root: root},
	}
}

// checkPath rejects paths that could escape the sandbox. Paths must be
// relative, cleaned, and free of parent references.
func checkPath(actionName, field, p string) error {
	if p == "" {
		return errmodel.InvalidArgument(actionName, field, "path is empty")
	}
	if filepath.IsAbs(p) || filepath.Clean(p) != p || strings.Contains(p, "..") {
		return errmodel.InvalidArgument(actionName, field, "path escapes sandbox")
	}
	return nil
}

func argString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func argBool(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// ReadFile reads a text file from the sandbox.
type ReadFile struct{ Root string }

func (ReadFile) Describe() action.Definition {
	return action.Definition{
		Name:        "read_file",
		Description: "Read content from a file",
		Type:        action.TypeRead,
		Permissions: []action.Permission{{Name: PermRead, Description: "read files under the sandbox root"}},
		Params: []action.ParamSpec{
			{Name: "path", Kind: action.KindString, Description: "File path relative to the sandbox root", Required: true},
		},
	}
}

func (a ReadFile) Validate(_ context.Context, inv action.Invocation) error {
	return checkPath("read_file", "path", argString(inv.Args, "path"))
}

func (a ReadFile) Execute(ctx context.Context, inv action.Invocation) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := argString(inv.Args, "path")
	full := filepath.Join(a.Root, p)
	b, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	return map[string]any{"path": p, "content": string(b), "size": len(b)}, nil
}

// WriteFile writes content to a file in the sandbox, creating parent
// directories as needed. Refuses to replace an existing file unless
// overwrite is set.
type WriteFile struct{ Root string }

func (WriteFile) Describe() action.Definition {
	return action.Definition{
		Name:        "write_file",
		Description: "Write content to a file",
		Type:        action.TypeWrite,
		Permissions: []action.Permission{{Name: PermWrite, Description: "create and modify files under the sandbox root"}},
		Params: []action.ParamSpec{
			{Name: "path", Kind: action.KindString, Description: "File path relative to the sandbox root", Required: true},
			{Name: "content", Kind: action.KindString, Description: "Content to write", Required: true},
			{Name: "overwrite", Kind: action.KindBoolean, Description: "Replace the file if it already exists", Required: false, Default: false},
		},
	}
}

func (a WriteFile) Validate(_ context.Context, inv action.Invocation) error {
	return checkPath("write_file", "path", argString(inv.Args, "path"))
}

func (a WriteFile) Execute(ctx context.Context, inv action.Invocation) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := argString(inv.Args, "path")
	content := argString(inv.Args, "content")
	full := filepath.Join(a.Root, p)
	if !argBool(inv.Args, "overwrite") {
		if _, err := os.Stat(full); err == nil {
			return nil, fmt.Errorf("file %q already exists and overwrite is false", p)
		}
	}
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return nil, err
	}
	return map[string]any{"path": p, "bytes_written": len(content)}, nil
}

// ListDirectory lists files and directories under a sandbox path.
type ListDirectory struct{ Root string }

func (ListDirectory) Describe() action.Definition {
	return action.Definition{
		Name:        "list_directory",
		Description: "List files and directories in a path",
		Type:        action.TypeRead,
		Permissions: []action.Permission{{Name: PermRead, Description: "read files under the sandbox root"}},
		Params: []action.ParamSpec{
			{Name: "path", Kind: action.KindString, Description: "Directory path relative to the sandbox root", Required: false, Default: "."},
			{Name: "recursive", Kind: action.KindBoolean, Description: "Descend into subdirectories", Required: false, Default: false},
		},
	}
}

func (a ListDirectory) Validate(_ context.Context, inv action.Invocation) error {
	return checkPath("list_directory", "path", argString(inv.Args, "path"))
}

func (a ListDirectory) Execute(ctx context.Context, inv action.Invocation) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := argString(inv.Args, "path")
	full := filepath.Join(a.Root, p)
	info, err := os.Stat(full)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", p)
	}

	files := []string{}
	dirs := []string{}
	if argBool(inv.Args, "recursive") {
		err = filepath.WalkDir(full, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			rel, rerr := filepath.Rel(full, path)
			if rerr != nil {
				return rerr
			}
			if rel == "." {
				return nil
			}
			if d.IsDir() {
				dirs = append(dirs, rel)
			} else {
				files = append(files, rel)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(full)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				dirs = append(dirs, e.Name())
			} else {
				files = append(files, e.Name())
			}
		}
	}
	return map[string]any{"path": p, "files": files, "directories": dirs}, nil
}

// DeleteFile removes a single file from the sandbox. It requires an explicit
// confirm flag and is deliberately not idempotent: deleting a path that does
// not exist reports a failed result so the caller learns nothing was removed.
type DeleteFile struct{ Root string }

func (DeleteFile) Describe() action.Definition {
	return action.Definition{
		Name:        "delete_file",
		Description: "Delete a file",
		Type:        action.TypeWrite,
		Permissions: []action.Permission{{Name: PermWrite, Description: "create and modify files under the sandbox root"}},
		Params: []action.ParamSpec{
			{Name: "path", Kind: action.KindString, Description: "File path relative to the sandbox root", Required: true},
			{Name: "confirm", Kind: action.KindBoolean, Description: "Must be true to delete", Required: true},
		},
	}
}

func (a DeleteFile) Validate(_ context.Context, inv action.Invocation) error {
	if err := checkPath("delete_file", "path", argString(inv.Args, "path")); err != nil {
		return err
	}
	if !argBool(inv.Args, "confirm") {
		return errmodel.InvalidArgument("delete_file", "confirm", "confirmation required to delete files")
	}
	return nil
}

func (a DeleteFile) Execute(ctx context.Context, inv action.Invocation) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := argString(inv.Args, "path")
	full := filepath.Join(a.Root, p)
	info, err := os.Stat(full)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory, not a file", p)
	}
	if err := os.Remove(full); err != nil {
		return nil, err
	}
	return map[string]any{"path": p, "deleted": true}, nil
}
