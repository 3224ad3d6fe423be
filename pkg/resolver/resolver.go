// Package resolver turns free-form user text into candidate action
// invocations. Resolution is inherently non-deterministic when a language
// model backs it, so everything a Resolver emits is untrusted: the executor
// re-validates every candidate in full, and a hallucinated action name is an
// ordinary unknown_action result, not a crash.
package resolver

import (
	"context"

	"github.com/actonlabs/acton/pkg/action"
)

// Candidate is one proposed invocation: syntactically well-formed, not yet
// validated or permission-checked.
type Candidate struct {
	ActionName string         `json:"action_name"`
	Arguments  map[string]any `json:"arguments,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}

// Resolver converts an utterance plus the legal action vocabulary into an
// ordered sequence of candidates. Zero candidates means nothing actionable
// was found; that is a normal outcome, not an error.
type Resolver interface {
	Resolve(ctx context.Context, utterance string, catalog []action.Definition) ([]Candidate, error)
}
