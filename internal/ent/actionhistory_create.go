// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/actonlabs/acton/internal/ent/actionhistory"
)

// ActionHistoryCreate is the builder for creating a ActionHistory entity.
type ActionHistoryCreate struct {
	config
	mutation *ActionHistoryMutation
	hooks    []Hook
}

// SetRecordID sets the "record_id" field.
func (_c *ActionHistoryCreate) SetRecordID(v string) *ActionHistoryCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetTurnID sets the "turn_id" field.
func (_c *ActionHistoryCreate) SetTurnID(v string) *ActionHistoryCreate {
	_c.mutation.SetTurnID(v)
	return _c
}

// SetNillableTurnID sets the "turn_id" field if the given value is not nil.
func (_c *ActionHistoryCreate) SetNillableTurnID(v *string) *ActionHistoryCreate {
	if v != nil {
		_c.SetTurnID(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *ActionHistoryCreate) SetActor(v string) *ActionHistoryCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ActionHistoryCreate) SetAction(v string) *ActionHistoryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *ActionHistoryCreate) SetSuccess(v bool) *ActionHistoryCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrCode sets the "err_code" field.
func (_c *ActionHistoryCreate) SetErrCode(v string) *ActionHistoryCreate {
	_c.mutation.SetErrCode(v)
	return _c
}

// SetNillableErrCode sets the "err_code" field if the given value is not nil.
func (_c *ActionHistoryCreate) SetNillableErrCode(v *string) *ActionHistoryCreate {
	if v != nil {
		_c.SetErrCode(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ActionHistoryCreate) SetPayload(v json.RawMessage) *ActionHistoryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ActionHistoryCreate) SetDurationMs(v int64) *ActionHistoryCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActionHistoryCreate) SetCreatedAt(v time.Time) *ActionHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActionHistoryCreate) SetNillableCreatedAt(v *time.Time) *ActionHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ActionHistoryMutation object of the builder.
func (_c *ActionHistoryCreate) Mutation() *ActionHistoryMutation {
	return _c.mutation
}

// Save creates the ActionHistory in the database.
func (_c *ActionHistoryCreate) Save(ctx context.Context) (*ActionHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionHistoryCreate) SaveX(ctx context.Context) *ActionHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := actionhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionHistoryCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "ActionHistory.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := actionhistory.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "ActionHistory.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := actionhistory.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ActionHistory.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := actionhistory.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "ActionHistory.success"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ActionHistory.duration_ms"`)}
	}
	if v, ok := _c.mutation.DurationMs(); ok {
		if err := actionhistory.DurationMsValidator(v); err != nil {
			return &ValidationError{Name: "duration_ms", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.duration_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActionHistory.created_at"`)}
	}
	return nil
}

func (_c *ActionHistoryCreate) sqlSave(ctx context.Context) (*ActionHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionHistoryCreate) createSpec() (*ActionHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionhistory.Table, sqlgraph.NewFieldSpec(actionhistory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(actionhistory.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.TurnID(); ok {
		_spec.SetField(actionhistory.FieldTurnID, field.TypeString, value)
		_node.TurnID = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(actionhistory.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(actionhistory.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(actionhistory.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrCode(); ok {
		_spec.SetField(actionhistory.FieldErrCode, field.TypeString, value)
		_node.ErrCode = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(actionhistory.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(actionhistory.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(actionhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ActionHistoryCreateBulk is the builder for creating many ActionHistory entities in bulk.
type ActionHistoryCreateBulk struct {
	config
	err      error
	builders []*ActionHistoryCreate
}

// Save creates the ActionHistory entities in the database.
func (_c *ActionHistoryCreateBulk) Save(ctx context.Context) ([]*ActionHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActionHistoryCreateBulk) SaveX(ctx context.Context) []*ActionHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
