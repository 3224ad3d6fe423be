package eval

import (
	"context"
	"fmt"

	"github.com/actonlabs/acton/pkg/agent"
)

// Capture is a recorded turn: the utterance and the outcome of each
// executed candidate, in order.
type Capture struct {
	Utterance string `json:"utterance"`
	Steps     []Step `json:"steps"`
}

// Step is the recorded outcome of one candidate.
type Step struct {
	Action  string `json:"action"`
	Success bool   `json:"success"`
	ErrCode string `json:"err_code,omitempty"`
}

// CaptureTurn records a completed turn for later replay.
func CaptureTurn(t agent.Turn) Capture {
	c := Capture{Utterance: t.Utterance}
	for _, r := range t.Results {
		c.Steps = append(c.Steps, Step{Action: r.Action, Success: r.Success, ErrCode: r.ErrKind()})
	}
	return c
}

// ReplayTurn runs the captured utterance through the agent again and
// returns one line per divergence from the recorded outcome. An empty
// slice means the replay matched. Only meaningful with a deterministic
// resolver.
func ReplayTurn(ctx context.Context, a *agent.Agent, cap Capture) ([]string, error) {
	turn, err := a.HandleTurn(ctx, cap.Utterance)
	if err != nil {
		return nil, err
	}
	var diffs []string
	if len(turn.Results) != len(cap.Steps) {
		diffs = append(diffs, fmt.Sprintf("step count: got %d want %d", len(turn.Results), len(cap.Steps)))
	}
	for i := 0; i < len(turn.Results) && i < len(cap.Steps); i++ {
		got, want := turn.Results[i], cap.Steps[i]
		if got.Action != want.Action {
			diffs = append(diffs, fmt.Sprintf("step %d action: got %s want %s", i, got.Action, want.Action))
		}
		if got.Success != want.Success {
			diffs = append(diffs, fmt.Sprintf("step %d success: got %v want %v", i, got.Success, want.Success))
		}
		if got.ErrKind() != want.ErrCode {
			diffs = append(diffs, fmt.Sprintf("step %d error: got %q want %q", i, got.ErrKind(), want.ErrCode))
		}
	}
	return diffs, nil
}
