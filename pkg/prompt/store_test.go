package prompt

import (
	"errors"
	"strings"
	"testing"
)

const validBody = "Respond with a JSON array of action invocations."

func TestSaveAndVersioning(t *testing.T) {
	s := NewStore()
	p1, issues, err := s.Save(Prompt{Name: "resolver", Body: validBody})
	if err != nil || len(issues) != 0 {
		t.Fatalf("err=%v issues=%v", err, issues)
	}
	if p1.Version != 1 {
		t.Fatalf("version=%d", p1.Version)
	}
	p2, _, err := s.Save(Prompt{Name: "resolver", Body: validBody + " Use only catalog names."})
	if err != nil {
		t.Fatal(err)
	}
	if p2.Version != 2 {
		t.Fatalf("version=%d", p2.Version)
	}
	latest, ok := s.Get("resolver", 0)
	if !ok || latest.Version != 2 {
		t.Fatalf("latest=%+v ok=%v", latest, ok)
	}
	old, ok := s.Get("resolver", 1)
	if !ok || old.Body != validBody {
		t.Fatalf("old=%+v ok=%v", old, ok)
	}
	if len(s.List("resolver")) != 2 {
		t.Fatal("list length")
	}
}

func TestLintRejects(t *testing.T) {
	s := NewStore()
	cases := []Prompt{
		{Name: "", Body: validBody},
		{Name: "resolver", Body: ""},
		{Name: "resolver", Body: "Respond in JSON. key=sk-abc123"},
		{Name: "resolver", Body: "Respond with plain prose."},
	}
	for _, p := range cases {
		if _, issues, err := s.Save(p); !errors.Is(err, ErrLintFailed) || len(issues) == 0 {
			t.Fatalf("prompt %+v: err=%v issues=%v", p, err, issues)
		}
	}
}

func TestDiff(t *testing.T) {
	s := NewStore()
	if _, _, err := s.Save(Prompt{Name: "resolver", Body: validBody + "\nline two"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Save(Prompt{Name: "resolver", Body: validBody + "\nline three"}); err != nil {
		t.Fatal(err)
	}
	d := s.Diff("resolver", 1, 2)
	if !strings.Contains(d, "-line two") || !strings.Contains(d, "+line three") {
		t.Fatalf("diff=%q", d)
	}
	if !strings.Contains(d, "--- resolver@v1") || !strings.Contains(d, "+++ resolver@v2") {
		t.Fatalf("diff headers missing labels: %q", d)
	}
	if s.Diff("resolver", 1, 9) != "" {
		t.Fatal("missing version should yield empty diff")
	}
	if UnifiedDiff("x", "y", "same", "same") != "" {
		t.Fatal("identical strings should yield empty diff")
	}
}
