package eval

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/actonlabs/acton/pkg/action/file"
	"github.com/actonlabs/acton/pkg/agent"
)

func fileAgent(t *testing.T, root string) *agent.Agent {
	t.Helper()
	a := agent.New("eval")
	for _, act := range file.All(root) {
		if err := a.RegisterAction(act); err != nil {
			t.Fatal(err)
		}
	}
	a.Grant(file.PermRead)
	return a
}

func TestCaptureAndReplayMatches(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := fileAgent(t, root)

	turn, err := a.HandleTurn(context.Background(), "read the file notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	cap := CaptureTurn(turn)
	if len(cap.Steps) != 1 || cap.Steps[0].Action != "read_file" || !cap.Steps[0].Success {
		t.Fatalf("capture=%+v", cap)
	}

	diffs, err := ReplayTurn(context.Background(), a, cap)
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 0 {
		t.Fatalf("diffs=%v", diffs)
	}
}

func TestReplayDetectsDivergence(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := fileAgent(t, root)

	turn, err := a.HandleTurn(context.Background(), "read the file notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	cap := CaptureTurn(turn)

	// The file disappears between capture and replay.
	if err := os.Remove(filepath.Join(root, "notes.txt")); err != nil {
		t.Fatal(err)
	}
	diffs, err := ReplayTurn(context.Background(), a, cap)
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) == 0 {
		t.Fatal("expected divergence after deleting the file")
	}
}
