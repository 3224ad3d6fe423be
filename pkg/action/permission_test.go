package action

import (
	"sync"
	"testing"
)

func TestPermissionSetGrantRevoke(t *testing.T) {
	ps := NewPermissionSet("fs:read")
	if !ps.Has("fs:read") {
		t.Fatal("seeded token missing")
	}
	if ps.Has("fs:write") {
		t.Fatal("absent token must mean denial")
	}
	ps.Grant("fs:write")
	ps.Grant("fs:write") // idempotent
	if !ps.Has("fs:write") {
		t.Fatal("granted token missing")
	}
	ps.Revoke("fs:write")
	ps.Revoke("fs:write") // idempotent
	if ps.Has("fs:write") {
		t.Fatal("revoked token still present")
	}
}

func TestPermissionSetSnapshotSorted(t *testing.T) {
	ps := NewPermissionSet("network:outbound", "fs:read", "fs:write")
	got := ps.Snapshot()
	want := []string{"fs:read", "fs:write", "network:outbound"}
	if len(got) != len(want) {
		t.Fatalf("snapshot=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot=%v want %v", got, want)
		}
	}
}

func TestPermissionSetConcurrentReadsDuringMutation(t *testing.T) {
	ps := NewPermissionSet()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ps.Grant("fs:read")
				ps.Revoke("fs:read")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = ps.Has("fs:read")
				_ = ps.Snapshot()
			}
		}()
	}
	wg.Wait()
}
