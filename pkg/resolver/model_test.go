package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/actonlabs/acton/pkg/adapters/llm"
	"github.com/actonlabs/acton/pkg/errmodel"
)

type fakeLLM struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeLLM) Name() string { return "fake" }

func (f *fakeLLM) Generate(_ context.Context, messages []llm.Message, _ map[string]any) (llm.GenerateResult, error) {
	for _, m := range messages {
		if m.Role == "user" {
			f.lastPrompt = m.Content
		}
	}
	if f.err != nil {
		return llm.GenerateResult{}, f.err
	}
	return llm.GenerateResult{Text: f.reply, Model: "fake-1"}, nil
}

func TestModelResolverParsesReply(t *testing.T) {
	fake := &fakeLLM{reply: `[{"action_name":"read_file","arguments":{"path":"notes.txt"}}]`}
	r := NewModelResolver(fake, nil, nil)
	got, err := r.Resolve(context.Background(), "show me notes.txt", catalogFixture())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ActionName != "read_file" {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(fake.lastPrompt, "read_file") {
		t.Fatal("catalog not included in prompt")
	}
}

func TestModelResolverGenerateFailure(t *testing.T) {
	fake := &fakeLLM{err: errors.New("connection refused")}
	r := NewModelResolver(fake, nil, nil)
	_, err := r.Resolve(context.Background(), "show me notes.txt", catalogFixture())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errmodel.IsCategory(err, errmodel.CategoryModel) {
		t.Fatalf("want model category, got %v", err)
	}
}

func TestModelResolverGarbageReplyYieldsZeroCandidates(t *testing.T) {
	fake := &fakeLLM{reply: "I am not sure what you mean."}
	r := NewModelResolver(fake, nil, nil)
	got, err := r.Resolve(context.Background(), "do something", catalogFixture())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
