package action

import (
	"context"
	"errors"
	"testing"

	"github.com/actonlabs/acton/pkg/errmodel"
)

// spyAction records whether its hooks ran so tests can assert the executor
// short-circuits before the action body.
type spyAction struct {
	def          Definition
	validateErr  error
	execErr      error
	panicOnExec  bool
	payload      any
	validateRuns int
	execRuns     int
}

func (a *spyAction) Describe() Definition { return a.def }

func (a *spyAction) Validate(context.Context, Invocation) error {
	a.validateRuns++
	return a.validateErr
}

func (a *spyAction) Execute(ctx context.Context, inv Invocation) (any, error) {
	a.execRuns++
	if a.panicOnExec {
		panic("boom")
	}
	if a.execErr != nil {
		return nil, a.execErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.payload != nil {
		return a.payload, nil
	}
	return inv.Args, nil
}

func gatedDef() Definition {
	return Definition{
		Name:        "read_file",
		Description: "Read content from a file",
		Type:        TypeRead,
		Permissions: []Permission{{Name: "fs:read"}},
		Params: []ParamSpec{
			{Name: "path", Kind: KindString, Required: true},
			{Name: "max_bytes", Kind: KindInteger, Required: false, Default: float64(1 << 20)},
		},
	}
}

func newExec(t *testing.T, a Action, tokens ...string) *Executor {
	t.Helper()
	r := NewRegistry()
	if err := r.Register(a); err != nil {
		t.Fatal(err)
	}
	return NewExecutor(r, NewPermissionSet(tokens...), nil)
}

func TestExecuteUnknownAction(t *testing.T) {
	r := NewRegistry()
	ex := NewExecutor(r, NewPermissionSet(), nil)
	res := ex.Execute(context.Background(), Invocation{ActionName: "send_email"})
	if res.Success || res.ErrKind() != errmodel.CodeUnknownAction {
		t.Fatalf("res=%+v", res)
	}
}

func TestExecutePermissionGateComesFirst(t *testing.T) {
	spy := &spyAction{def: gatedDef()}
	ex := newExec(t, spy) // no tokens granted
	// Arguments are deliberately malformed: the permission gate must fire
	// before validation ever looks at them.
	res := ex.Execute(context.Background(), Invocation{ActionName: "read_file", Args: map[string]any{"path": 42}})
	if res.Success || res.ErrKind() != errmodel.CodePermissionDenied {
		t.Fatalf("res=%+v", res)
	}
	if res.Err.Context["permission"] != "fs:read" {
		t.Fatalf("missing permission not named: %+v", res.Err)
	}
	if spy.validateRuns != 0 || spy.execRuns != 0 {
		t.Fatal("action hooks must not run when permission is denied")
	}
}

func TestExecuteMissingRequiredArgument(t *testing.T) {
	spy := &spyAction{def: gatedDef()}
	ex := newExec(t, spy, "fs:read")
	res := ex.Execute(context.Background(), Invocation{ActionName: "read_file", Args: map[string]any{}})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("res=%+v", res)
	}
	if res.Err.Context["field"] != "path" {
		t.Fatalf("offending field not named: %+v", res.Err)
	}
	if spy.execRuns != 0 {
		t.Fatal("action body must not run on validation failure")
	}
}

func TestExecuteKindMismatch(t *testing.T) {
	spy := &spyAction{def: gatedDef()}
	ex := newExec(t, spy, "fs:read")
	res := ex.Execute(context.Background(), Invocation{ActionName: "read_file", Args: map[string]any{"path": true}})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("res=%+v", res)
	}
	if res.Err.Context["field"] != "path" {
		t.Fatalf("offending field not named: %+v", res.Err)
	}
}

func TestExecuteUnexpectedArgument(t *testing.T) {
	spy := &spyAction{def: gatedDef()}
	ex := newExec(t, spy, "fs:read")
	res := ex.Execute(context.Background(), Invocation{
		ActionName: "read_file",
		Args:       map[string]any{"path": "notes.txt", "mode": "fast"},
	})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("res=%+v", res)
	}
	if res.Err.Context["field"] != "mode" {
		t.Fatalf("offending field not named: %+v", res.Err)
	}
}

func TestExecuteAppliesDefaultsBeforeValidation(t *testing.T) {
	spy := &spyAction{def: gatedDef()}
	ex := newExec(t, spy, "fs:read")
	res := ex.Execute(context.Background(), Invocation{ActionName: "read_file", Args: map[string]any{"path": "notes.txt"}})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	args := res.Payload.(map[string]any)
	if args["max_bytes"] != float64(1<<20) {
		t.Fatalf("default not bound: %v", args)
	}
}

func TestExecuteIntegerAcceptsWholeFloat(t *testing.T) {
	spy := &spyAction{def: gatedDef()}
	ex := newExec(t, spy, "fs:read")
	res := ex.Execute(context.Background(), Invocation{
		ActionName: "read_file",
		Args:       map[string]any{"path": "notes.txt", "max_bytes": float64(4096)},
	})
	if !res.Success {
		t.Fatalf("res=%+v", res)
	}
	res = ex.Execute(context.Background(), Invocation{
		ActionName: "read_file",
		Args:       map[string]any{"path": "notes.txt", "max_bytes": 40.5},
	})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("fractional value must not satisfy integer: %+v", res)
	}
}

func TestExecuteDomainValidateHookRuns(t *testing.T) {
	spy := &spyAction{
		def:         Definition{Name: "noop", Type: TypeExecute},
		validateErr: errmodel.InvalidArgument("noop", "path", "path escapes sandbox"),
	}
	ex := newExec(t, spy)
	// Zero parameters, zero permissions: the per-field loop is skipped but
	// the action's own Validate still gates execution.
	res := ex.Execute(context.Background(), Invocation{ActionName: "noop"})
	if res.Success || res.ErrKind() != errmodel.CodeInvalidArgument {
		t.Fatalf("res=%+v", res)
	}
	if spy.validateRuns != 1 || spy.execRuns != 0 {
		t.Fatalf("validate=%d exec=%d", spy.validateRuns, spy.execRuns)
	}
}

func TestExecuteFaultContained(t *testing.T) {
	spy := &spyAction{def: Definition{Name: "buggy"}, execErr: errors.New("unexpected fault")}
	ex := newExec(t, spy)
	res := ex.Execute(context.Background(), Invocation{ActionName: "buggy"})
	if res.Success || res.ErrKind() != errmodel.CodeExecutionFailed {
		t.Fatalf("res=%+v", res)
	}
}

func TestExecutePanicContained(t *testing.T) {
	spy := &spyAction{def: Definition{Name: "panicky"}, panicOnExec: true}
	ex := newExec(t, spy)
	res := ex.Execute(context.Background(), Invocation{ActionName: "panicky"})
	if res.Success || res.ErrKind() != errmodel.CodeExecutionFailed {
		t.Fatalf("panic must surface as execution_failed: %+v", res)
	}
}

func TestExecuteCancelled(t *testing.T) {
	spy := &spyAction{def: Definition{Name: "slow"}}
	ex := newExec(t, spy)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := ex.Execute(ctx, Invocation{ActionName: "slow"})
	if res.Success || res.ErrKind() != errmodel.CodeCancelled {
		t.Fatalf("res=%+v", res)
	}
}

func TestExecuteSuccessTiming(t *testing.T) {
	spy := &spyAction{def: Definition{Name: "ok"}, payload: "hello"}
	ex := newExec(t, spy)
	res := ex.Execute(context.Background(), Invocation{ID: "inv-1", ActionName: "ok", Actor: "alice"})
	if !res.Success || res.Payload != "hello" {
		t.Fatalf("res=%+v", res)
	}
	if res.InvocationID != "inv-1" || res.Actor != "alice" {
		t.Fatalf("identity lost: %+v", res)
	}
	if res.StartedAt.IsZero() || res.Duration < 0 {
		t.Fatalf("timing missing: %+v", res)
	}
}
