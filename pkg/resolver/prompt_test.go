package resolver

import (
	"strings"
	"testing"

	"github.com/actonlabs/acton/pkg/action"
)

func catalogFixture() []action.Definition {
	return []action.Definition{
		{
			Name:        "read_file",
			Description: "Read content from a file",
			Params:      []action.ParamSpec{{Name: "path", Kind: action.KindString, Required: true}},
		},
		{
			Name:        "write_file",
			Description: "Write content to a file",
			Params: []action.ParamSpec{
				{Name: "path", Kind: action.KindString, Required: true},
				{Name: "content", Kind: action.KindString, Required: true},
			},
		},
	}
}

func TestUserPromptContainsCatalogVerbatim(t *testing.T) {
	b := NewPromptBuilder()
	user, log := b.User("show me notes.txt", catalogFixture())
	for _, want := range []string{"read_file", "Read content from a file", "write_file", `"path"`, "show me notes.txt"} {
		if !strings.Contains(user, want) {
			t.Fatalf("prompt missing %q:\n%s", want, user)
		}
	}
	if log.DroppedCount != 0 || log.CatalogTokens == 0 {
		t.Fatalf("log=%+v", log)
	}
}

func TestUserPromptDeterministic(t *testing.T) {
	b := NewPromptBuilder()
	first, _ := b.User("list files", catalogFixture())
	second, _ := b.User("list files", catalogFixture())
	if first != second {
		t.Fatal("prompt must be deterministic for identical input")
	}
}

func TestUserPromptRespectsBudget(t *testing.T) {
	// Budget admits the first entry but not the second; entries are dropped
	// whole, never truncated.
	b := NewPromptBuilder(WithMaxTokens(1), WithTokenEstimator(func(s string) int { return 1 }))
	user, log := b.User("x", catalogFixture())
	if log.DroppedCount != 1 {
		t.Fatalf("log=%+v", log)
	}
	if !strings.Contains(user, "read_file") || strings.Contains(user, "write_file") {
		t.Fatalf("prompt=%s", user)
	}
}

func TestSystemPromptOverride(t *testing.T) {
	custom := "Respond with a JSON array of invocations, nothing else."
	b := NewPromptBuilder(WithSystemPrompt(custom))
	if b.System() != custom {
		t.Fatalf("system=%q", b.System())
	}
	if NewPromptBuilder(WithSystemPrompt("")).System() != DefaultSystemPrompt() {
		t.Fatal("empty override must keep the default")
	}
}

func TestSystemPromptStatesContract(t *testing.T) {
	b := NewPromptBuilder()
	sys := b.System()
	for _, want := range []string{"JSON array", "action_name", "[]"} {
		if !strings.Contains(sys, want) {
			t.Fatalf("system prompt missing %q", want)
		}
	}
}
