// Package action defines the contracts of the action framework: the static
// definition of an action, the Action capability interface, the registry that
// holds the catalog, the actor-scoped permission set, and the executor that
// turns an untrusted invocation request into a normalized Result.
//
// New action variants are added by implementing Action and calling
// Registry.Register; nothing in the executor is touched. The executor is the
// error-containment wall: no fault from an action implementation escapes it.
package action

import (
	"context"
	"time"

	"github.com/actonlabs/acton/pkg/errmodel"
)

// Type categorizes an action by the class of side effect it performs.
type Type string

const (
	TypeRead      Type = "read"
	TypeWrite     Type = "write"
	TypeExecute   Type = "execute"
	TypeIntegrate Type = "integrate"
)

// Kind is the expected JSON kind of a parameter value.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

// Permission describes a capability an action requires.
// Example: fs:read, fs:write, network:outbound.
type Permission struct {
	// Name is a stable, lower_snake or colon-scoped identifier.
	Name string `json:"name"`
	// Description explains what the permission allows.
	Description string `json:"description,omitempty"`
}

// ParamSpec declares one parameter of an action. Entries are ordered and
// unique by name within a Definition.
type ParamSpec struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	// Default is bound into the arguments before validation when the caller
	// omitted the parameter. Only meaningful for optional parameters.
	Default any `json:"default,omitempty"`
}

// Definition is the immutable static metadata of one action. Name is the
// unique key within a Registry and the only vocabulary the intent resolver
// may use.
type Definition struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        Type         `json:"type"`
	Permissions []Permission `json:"permissions,omitempty"`
	Params      []ParamSpec  `json:"params,omitempty"`
}

// Action is a registered, named operation with a validate/execute contract.
// Implementations are constructed once, registered, and live for the process
// lifetime; they must be safe for concurrent invocations and stateless
// between them unless documented otherwise.
type Action interface {
	// Describe returns the public definition (name, schema, permissions).
	Describe() Definition
	// Validate applies domain rules beyond per-field schema checks, for
	// example path-traversal rejection. Args have defaults applied and
	// conform to the definition's parameter kinds when Validate runs.
	Validate(ctx context.Context, inv Invocation) error
	// Execute runs the action. The returned payload is opaque to the
	// framework. Execute must honor ctx cancellation and release any
	// resource it opened on every exit path.
	Execute(ctx context.Context, inv Invocation) (any, error)
}

// Invocation is one concrete request to run an action: the action name, the
// bound arguments, and the actor on whose behalf it runs. A fresh Invocation
// is created per request and never shared across invocations.
type Invocation struct {
	// ID correlates the invocation across results, traces, and history.
	ID string `json:"id,omitempty"`
	// ActionName is untrusted input; it may not exist in the registry.
	ActionName string `json:"action_name"`
	// Actor identifies who is invoking.
	Actor string `json:"actor,omitempty"`
	// Args are the candidate arguments, untrusted until validated.
	Args map[string]any `json:"arguments,omitempty"`
	// Reason optionally carries the resolver's stated rationale.
	Reason string `json:"reason,omitempty"`
}

// Result is the normalized outcome of one invocation, immutable once
// produced. Exactly one of Payload and Err is meaningful.
type Result struct {
	InvocationID string          `json:"invocation_id,omitempty"`
	Action       string          `json:"action"`
	Actor        string          `json:"actor,omitempty"`
	Success      bool            `json:"success"`
	Payload      any             `json:"payload,omitempty"`
	Err          *errmodel.Error `json:"error,omitempty"`
	StartedAt    time.Time       `json:"started_at"`
	Duration     time.Duration   `json:"duration"`
}

// ErrKind returns the taxonomy code of a failed result, or "" on success.
func (r Result) ErrKind() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Code
}
