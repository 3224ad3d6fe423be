package resolver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"

	"github.com/actonlabs/acton/pkg/action"
)

const systemPrompt = `You translate user requests into invocations of a fixed action catalog.
Respond with a JSON array only, no prose and no code fences:
[{"action_name": "<name from the catalog>", "arguments": {<argument object>}, "reason": "<why>"}]
Use only action names and argument names that appear in the catalog.
If nothing in the request maps to a catalog action, respond with [].`

// DefaultSystemPrompt returns the built-in instruction prompt.
func DefaultSystemPrompt() string { return systemPrompt }

// TokenEstimator estimates the token usage of text content.
type TokenEstimator func(text string) int

// NewTikTokenEstimator returns a TokenEstimator backed by tiktoken-go for
// the given model. If the model is unknown, EncodingForModel returns an
// error.
func NewTikTokenEstimator(model string) (TokenEstimator, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, err
	}
	return func(text string) int {
		return len(enc.Encode(text, nil, nil))
	}, nil
}

// BuildLog summarizes a prompt build decision.
type BuildLog struct {
	CatalogTokens int // tokens spent on included catalog entries
	DroppedCount  int // catalog entries excluded by the token budget
}

// PromptBuilder renders the action catalog into the resolver prompt
// deterministically, respecting a token budget. Entries are emitted in
// catalog order; an entry that would exceed the budget is dropped, never
// truncated, so the model only ever sees complete schemas.
type PromptBuilder struct {
	system    string
	estimate  TokenEstimator
	maxTokens int
}

// Option configures the PromptBuilder.
type Option func(*PromptBuilder)

// WithTokenEstimator sets the token estimator. Defaults to rune length.
func WithTokenEstimator(est TokenEstimator) Option {
	return func(b *PromptBuilder) {
		if est != nil {
			b.estimate = est
		}
	}
}

// WithSystemPrompt replaces the built-in instruction prompt. The override
// must keep the JSON array output contract; resolver output parsing depends
// on it.
func WithSystemPrompt(s string) Option {
	return func(b *PromptBuilder) {
		if s != "" {
			b.system = s
		}
	}
}

// WithMaxTokens sets the catalog token budget. Defaults to a large value.
func WithMaxTokens(n int) Option {
	return func(b *PromptBuilder) {
		if n > 0 {
			b.maxTokens = n
		}
	}
}

// NewPromptBuilder creates a PromptBuilder.
func NewPromptBuilder(opts ...Option) *PromptBuilder {
	b := &PromptBuilder{
		system:    systemPrompt,
		estimate:  func(s string) int { return len([]rune(s)) },
		maxTokens: 1_000_000_000,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// System returns the instruction prompt.
func (b *PromptBuilder) System() string { return b.system }

// User renders the catalog and the utterance into the user prompt. The
// catalog text includes name, description, and parameter schema verbatim;
// this is the only vocabulary the model is allowed to use.
func (b *PromptBuilder) User(utterance string, catalog []action.Definition) (string, BuildLog) {
	var sb strings.Builder
	sb.WriteString("Available actions:\n")
	var log BuildLog
	for _, d := range catalog {
		entry, err := renderEntry(d)
		if err != nil {
			log.DroppedCount++
			continue
		}
		cost := b.estimate(entry)
		if log.CatalogTokens+cost > b.maxTokens {
			log.DroppedCount++
			continue
		}
		log.CatalogTokens += cost
		sb.WriteString(entry)
	}
	sb.WriteString("\nUser request: ")
	sb.WriteString(utterance)
	sb.WriteString("\n")
	return sb.String(), log
}

func renderEntry(d action.Definition) (string, error) {
	schema, err := d.InputSchema()
	if err != nil {
		return "", err
	}
	// compact the schema for the prompt
	var buf bytes.Buffer
	if err := json.Compact(&buf, schema); err != nil {
		return "", err
	}
	return fmt.Sprintf("- %s: %s\n  arguments schema: %s\n", d.Name, d.Description, buf.String()), nil
}
