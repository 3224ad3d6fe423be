// Package history is an external sink receiving the stream of invocation
// results. The executor does not depend on it; the agent writes to it when
// one is configured. Nothing in the core reads history back on the hot path.
package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/actonlabs/acton/pkg/action"
)

// Record is the persisted form of one invocation result.
type Record struct {
	ID         string
	TurnID     string
	Actor      string
	Action     string
	Success    bool
	ErrCode    string
	Payload    json.RawMessage
	DurationMS int64
	CreatedAt  time.Time
}

// Sink persists invocation results.
type Sink interface {
	Record(ctx context.Context, rec Record) error
	ListByActor(ctx context.Context, actor string, limit int) ([]Record, error)
	Close() error
}

// FromResult converts an executor result into a Record. Payload marshal
// failures degrade to a null payload; history must never fail a turn.
func FromResult(turnID string, r action.Result) Record {
	var payload json.RawMessage
	if r.Payload != nil {
		if b, err := json.Marshal(r.Payload); err == nil {
			payload = b
		}
	}
	return Record{
		ID:         r.InvocationID,
		TurnID:     turnID,
		Actor:      r.Actor,
		Action:     r.Action,
		Success:    r.Success,
		ErrCode:    r.ErrKind(),
		Payload:    payload,
		DurationMS: r.Duration.Milliseconds(),
		CreatedAt:  r.StartedAt.UTC(),
	}
}
