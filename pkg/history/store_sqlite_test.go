package history

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func openStore(t *testing.T, name string) *Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:"+name+"?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, "hist_roundtrip")

	payload, _ := json.Marshal(map[string]any{"path": "notes.txt"})
	rec := Record{
		ID:         "inv-1",
		TurnID:     "turn-1",
		Actor:      "demo",
		Action:     "read_file",
		Success:    true,
		Payload:    payload,
		DurationMS: 12,
		CreatedAt:  time.Now().UTC(),
	}
	if err := st.Record(ctx, rec); err != nil {
		t.Fatal(err)
	}

	got, err := st.ListByActor(ctx, "demo", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d want 1", len(got))
	}
	if got[0].ID != "inv-1" || got[0].Action != "read_file" || !got[0].Success {
		t.Fatalf("unexpected record: %+v", got[0])
	}
	var decoded map[string]any
	if err := json.Unmarshal(got[0].Payload, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["path"] != "notes.txt" {
		t.Fatalf("payload=%v", decoded)
	}
}

func TestListByActorNewestFirstAndLimit(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, "hist_order")

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		rec := Record{
			ID:        fmt.Sprintf("inv-%d", i),
			Actor:     "demo",
			Action:    "list_dir",
			Success:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := st.Record(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	got, err := st.ListByActor(ctx, "demo", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d want 3", len(got))
	}
	if got[0].ID != "inv-4" || got[2].ID != "inv-2" {
		t.Fatalf("order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestRecordRejectsEmptyID(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, "hist_emptyid")
	if err := st.Record(ctx, Record{Actor: "demo", Action: "read_file"}); err == nil {
		t.Fatal("expected error for empty record id")
	}
}

func TestOpenRejectsUnsupportedDSN(t *testing.T) {
	if _, err := Open(context.Background(), "mysql://root@localhost/db"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
	if _, err := Open(context.Background(), "not a dsn"); err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}

func TestOpenSQLiteSchemeIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, "SQLite:file:hist_scheme?mode=memory&cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	if err := st.Record(ctx, Record{ID: "inv-1", Actor: "demo", Action: "read_file", Success: true}); err != nil {
		t.Fatal(err)
	}
}
