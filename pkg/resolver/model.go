package resolver

import (
	"context"
	"log/slog"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/adapters/llm"
	"github.com/actonlabs/acton/pkg/errmodel"
)

// ModelResolver resolves intents by prompting a language model with the
// action catalog and parsing its JSON reply.
type ModelResolver struct {
	client  llm.LLM
	prompts *PromptBuilder
	opts    map[string]any
	logger  *slog.Logger
}

// NewModelResolver creates a resolver over the given provider client.
// opts are passed through to LLM.Generate on every call.
func NewModelResolver(client llm.LLM, prompts *PromptBuilder, opts map[string]any) *ModelResolver {
	if prompts == nil {
		prompts = NewPromptBuilder()
	}
	return &ModelResolver{
		client:  client,
		prompts: prompts,
		opts:    opts,
		logger:  slog.Default().With("component", "resolver"),
	}
}

// Resolve prompts the model and parses candidates from its reply. A model
// transport failure is returned as a model-category error so the caller can
// fall back; unparseable model output is zero candidates, not an error.
func (r *ModelResolver) Resolve(ctx context.Context, utterance string, catalog []action.Definition) ([]Candidate, error) {
	user, log := r.prompts.User(utterance, catalog)
	if log.DroppedCount > 0 {
		r.logger.Warn("catalog truncated for prompt budget",
			"dropped", log.DroppedCount, "tokens", log.CatalogTokens)
	}
	res, err := r.client.Generate(ctx, []llm.Message{
		{Role: "system", Content: r.prompts.System()},
		{Role: "user", Content: user},
	}, r.opts)
	if err != nil {
		return nil, errmodel.New(errmodel.CategoryModel, "generate_failed", "intent resolution call failed",
			map[string]any{"provider": r.client.Name()}, err)
	}
	candidates := ParseCandidates(res.Text)
	r.logger.Debug("resolved candidates", "count", len(candidates), "model", res.Model)
	return candidates, nil
}
