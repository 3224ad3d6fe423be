// Package agent coordinates one user turn: it asks the intent resolver for
// candidate invocations, feeds each candidate to the executor in order, and
// aggregates every result. The agent owns one registry and one permission
// set, created at construction; there is no process-wide singleton.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/history"
	"github.com/actonlabs/acton/pkg/resolver"
)

// Agent executes natural-language requests against a registered action
// catalog on behalf of one actor.
type Agent struct {
	actor       string
	registry    *action.Registry
	perms       *action.PermissionSet
	exec        *action.Executor
	resolver    resolver.Resolver
	fallback    resolver.Resolver
	sink        history.Sink
	concurrency int
	logger      *slog.Logger
}

// Option configures the Agent at construction time.
type Option func(*Agent)

// WithResolver sets the primary intent resolver. Without one the agent
// resolves with the keyword fallback only.
func WithResolver(r resolver.Resolver) Option {
	return func(a *Agent) { a.resolver = r }
}

// WithFallbackResolver sets the resolver used when the primary one fails.
func WithFallbackResolver(r resolver.Resolver) Option {
	return func(a *Agent) { a.fallback = r }
}

// WithHistory attaches a result sink. Sink failures are logged, never
// surfaced; history must not affect turn outcomes.
func WithHistory(s history.Sink) Option {
	return func(a *Agent) { a.sink = s }
}

// WithConcurrency allows up to n candidates of a turn to execute
// concurrently. Result order always matches candidate order. n <= 1 keeps
// strictly sequential execution, which is the default.
func WithConcurrency(n int) Option {
	return func(a *Agent) {
		if n > 1 {
			a.concurrency = n
		}
	}
}

// WithValidator overrides the argument schema validator.
func WithValidator(v action.ValidateFunc) Option {
	return func(a *Agent) {
		a.exec = action.NewExecutor(a.registry, a.perms, v)
	}
}

// New constructs an agent for the given actor identity.
func New(actor string, opts ...Option) *Agent {
	reg := action.NewRegistry()
	perms := action.NewPermissionSet()
	a := &Agent{
		actor:    actor,
		registry: reg,
		perms:    perms,
		exec:     action.NewExecutor(reg, perms, nil),
		fallback: resolver.KeywordResolver{},
		logger:   slog.Default().With("component", "agent", "actor", actor),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterAction adds an action to the agent's catalog. This is the
// framework's extension point: new action variants plug in here without
// touching the executor or the agent.
func (a *Agent) RegisterAction(act action.Action) error {
	return a.registry.Register(act)
}

// Grant adds a permission token to the agent's actor.
func (a *Agent) Grant(token string) { a.perms.Grant(token) }

// Revoke removes a permission token from the agent's actor.
func (a *Agent) Revoke(token string) { a.perms.Revoke(token) }

// HasPermission reports whether the actor holds a token.
func (a *Agent) HasPermission(token string) bool { return a.perms.Has(token) }

// Catalog returns the definitions of every registered action in
// registration order.
func (a *Agent) Catalog() []action.Definition { return a.registry.Definitions() }

// Registry exposes the underlying action registry, for surfaces that
// publish the catalog themselves.
func (a *Agent) Registry() *action.Registry { return a.registry }

// Executor exposes the underlying executor. Invocations through it pass
// the same permission gate and validation as agent turns.
func (a *Agent) Executor() *action.Executor { return a.exec }

// Turn is the aggregated outcome of one user request: the candidates the
// resolver proposed, and one result per candidate in the same order.
// Partial success is a first-class outcome.
type Turn struct {
	ID         string               `json:"id"`
	Utterance  string               `json:"utterance"`
	Candidates []resolver.Candidate `json:"candidates,omitempty"`
	Results    []action.Result      `json:"results,omitempty"`
}

// Summary renders the results as short human-readable lines.
func (t Turn) Summary() string {
	if len(t.Results) == 0 {
		return "no actions were executed"
	}
	lines := make([]string, 0, len(t.Results))
	for _, r := range t.Results {
		if r.Success {
			lines = append(lines, fmt.Sprintf("%s: ok", r.Action))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s failed: %s", r.Action, r.Err.Error()))
	}
	return strings.Join(lines, "\n")
}

// HandleTurn resolves the utterance and executes every candidate. A failed
// candidate never aborts the rest; the result sequence always has one entry
// per candidate, in candidate order. The returned error is non-nil only when
// resolution itself failed with no fallback available.
func (a *Agent) HandleTurn(ctx context.Context, utterance string) (Turn, error) {
	tr := otel.Tracer("agent")
	turnID := uuid.NewString()
	ctx, span := tr.Start(ctx, "Agent.HandleTurn", trace.WithAttributes(
		attribute.String("turn.id", turnID),
		attribute.String("turn.actor", a.actor),
	))
	defer span.End()

	turn := Turn{ID: turnID, Utterance: utterance}
	candidates, err := a.resolve(ctx, utterance)
	if err != nil {
		span.RecordError(err)
		return turn, err
	}
	turn.Candidates = candidates
	span.SetAttributes(attribute.Int("turn.candidates", len(candidates)))
	if len(candidates) == 0 {
		return turn, nil
	}

	turn.Results = a.executeAll(ctx, turnID, candidates)
	a.record(ctx, turnID, turn.Results)
	return turn, nil
}

// ExecuteDirect runs one action immediately, bypassing intent resolution.
// The invocation still goes through the full permission and validation
// pipeline.
func (a *Agent) ExecuteDirect(ctx context.Context, name string, args map[string]any) action.Result {
	res := a.exec.Execute(ctx, action.Invocation{
		ID:         uuid.NewString(),
		ActionName: name,
		Actor:      a.actor,
		Args:       args,
	})
	a.record(ctx, "", []action.Result{res})
	return res
}

func (a *Agent) resolve(ctx context.Context, utterance string) ([]resolver.Candidate, error) {
	catalog := a.registry.Definitions()
	if a.resolver == nil {
		if a.fallback == nil {
			return nil, fmt.Errorf("no resolver configured")
		}
		return a.fallback.Resolve(ctx, utterance, catalog)
	}
	candidates, err := a.resolver.Resolve(ctx, utterance, catalog)
	if err != nil {
		if a.fallback == nil {
			return nil, err
		}
		a.logger.Warn("resolver failed, using fallback", "err", err)
		return a.fallback.Resolve(ctx, utterance, catalog)
	}
	return candidates, nil
}

func (a *Agent) executeAll(ctx context.Context, turnID string, candidates []resolver.Candidate) []action.Result {
	results := make([]action.Result, len(candidates))
	run := func(i int, c resolver.Candidate) {
		results[i] = a.exec.Execute(ctx, action.Invocation{
			ID:         turnID + "-" + fmt.Sprint(i),
			ActionName: c.ActionName,
			Actor:      a.actor,
			Args:       c.Arguments,
			Reason:     c.Reason,
		})
	}
	if a.concurrency <= 1 {
		for i, c := range candidates {
			run(i, c)
		}
		return results
	}
	g := new(errgroup.Group)
	g.SetLimit(a.concurrency)
	for i, c := range candidates {
		g.Go(func() error {
			run(i, c)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (a *Agent) record(ctx context.Context, turnID string, results []action.Result) {
	if a.sink == nil {
		return
	}
	for _, r := range results {
		if err := a.sink.Record(ctx, history.FromResult(turnID, r)); err != nil {
			a.logger.Warn("history sink write failed", "action", r.Action, "err", err)
		}
	}
}
