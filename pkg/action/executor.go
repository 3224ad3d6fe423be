package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/actonlabs/acton/pkg/errmodel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Executor runs invocations against a registry under an actor's permission
// set. It holds no mutable state of its own; every failure mode is recovered
// at this boundary and returned as a failed Result, never as a Go error or
// an escaping panic.
type Executor struct {
	registry *Registry
	perms    *PermissionSet
	validate ValidateFunc
	logger   *slog.Logger
}

// NewExecutor constructs an executor. A nil validate falls back to
// JSONSchemaValidator.
func NewExecutor(registry *Registry, perms *PermissionSet, validate ValidateFunc) *Executor {
	if validate == nil {
		validate = JSONSchemaValidator
	}
	return &Executor{
		registry: registry,
		perms:    perms,
		validate: validate,
		logger:   slog.Default().With("component", "executor"),
	}
}

// Execute runs one invocation: lookup, permission gate, argument validation,
// the action's own Validate hook, then Execute. The permission check is the
// outermost gate; an unauthorized invocation is rejected before any argument
// is inspected. The returned Result carries timing metadata either way.
func (e *Executor) Execute(ctx context.Context, inv Invocation) Result {
	tr := otel.Tracer("action/executor")
	ctx, span := tr.Start(ctx, "Executor.Execute", trace.WithAttributes(
		attribute.String("action.name", inv.ActionName),
		attribute.String("action.actor", inv.Actor),
		attribute.String("invocation.id", inv.ID),
	))
	defer span.End()

	started := time.Now()
	fail := func(ce *errmodel.Error) Result {
		span.RecordError(ce)
		e.logger.Warn("invocation failed",
			"action", inv.ActionName, "actor", inv.Actor, "code", ce.Code)
		return Result{
			InvocationID: inv.ID,
			Action:       inv.ActionName,
			Actor:        inv.Actor,
			Success:      false,
			Err:          ce,
			StartedAt:    started,
			Duration:     time.Since(started),
		}
	}

	act, err := e.registry.Get(inv.ActionName)
	if err != nil {
		return fail(errmodel.From(err))
	}
	def := act.Describe()

	for _, p := range def.Permissions {
		if !e.perms.Has(p.Name) {
			return fail(errmodel.PermissionDenied(def.Name, p.Name))
		}
	}

	inv.Args = applyDefaults(def.Params, inv.Args)
	if ce := e.checkArgs(def, inv.Args); ce != nil {
		return fail(ce)
	}
	if err := act.Validate(ctx, inv); err != nil {
		ce := errmodel.From(err)
		if ce.Code != errmodel.CodeInvalidArgument {
			ce = errmodel.New(errmodel.CategoryValidation, errmodel.CodeInvalidArgument,
				ce.Message, map[string]any{"action": def.Name})
		}
		return fail(ce)
	}

	payload, err := e.run(ctx, act, inv)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fail(errmodel.Cancelled(def.Name, err))
		}
		return fail(errmodel.ExecutionFailed(def.Name, err))
	}

	span.SetAttributes(attribute.Bool("action.success", true))
	return Result{
		InvocationID: inv.ID,
		Action:       def.Name,
		Actor:        inv.Actor,
		Success:      true,
		Payload:      payload,
		StartedAt:    started,
		Duration:     time.Since(started),
	}
}

// checkArgs verifies presence, unknown fields, and kind conformance per
// parameter, then runs the schema validator over the whole argument object
// as a backstop for nested shapes.
func (e *Executor) checkArgs(def Definition, args map[string]any) *errmodel.Error {
	specs := make(map[string]ParamSpec, len(def.Params))
	for _, p := range def.Params {
		specs[p.Name] = p
	}
	for _, p := range def.Params {
		v, present := args[p.Name]
		if !present {
			if p.Required {
				return errmodel.InvalidArgument(def.Name, p.Name, "required argument missing")
			}
			continue
		}
		if !conformsKind(p.Kind, v) {
			return errmodel.InvalidArgument(def.Name, p.Name,
				fmt.Sprintf("argument must be %s", p.Kind))
		}
	}
	for name := range args {
		if _, ok := specs[name]; !ok {
			return errmodel.InvalidArgument(def.Name, name, "unexpected argument")
		}
	}

	schema, err := def.InputSchema()
	if err != nil {
		return errmodel.System("bad_schema", "action declares an invalid parameter schema",
			map[string]any{"action": def.Name}, err)
	}
	if err := e.validate(schema, args); err != nil {
		return errmodel.InvalidArgument(def.Name, "", err.Error())
	}
	return nil
}

// run invokes the action with panic containment. A panicking action yields
// an ordinary error at this boundary.
func (e *Executor) run(ctx context.Context, act Action, inv Invocation) (payload any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			payload = nil
			err = fmt.Errorf("action panicked: %v", rec)
		}
	}()
	return act.Execute(ctx, inv)
}
