// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/actonlabs/acton/internal/ent/actionhistory"
	"github.com/actonlabs/acton/internal/ent/predicate"
)

// ActionHistoryUpdate is the builder for updating ActionHistory entities.
type ActionHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ActionHistoryMutation
}

// Where appends a list predicates to the ActionHistoryUpdate builder.
func (_u *ActionHistoryUpdate) Where(ps ...predicate.ActionHistory) *ActionHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *ActionHistoryUpdate) SetRecordID(v string) *ActionHistoryUpdate {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableRecordID(v *string) *ActionHistoryUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetTurnID sets the "turn_id" field.
func (_u *ActionHistoryUpdate) SetTurnID(v string) *ActionHistoryUpdate {
	_u.mutation.SetTurnID(v)
	return _u
}

// SetNillableTurnID sets the "turn_id" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableTurnID(v *string) *ActionHistoryUpdate {
	if v != nil {
		_u.SetTurnID(*v)
	}
	return _u
}

// ClearTurnID clears the value of the "turn_id" field.
func (_u *ActionHistoryUpdate) ClearTurnID() *ActionHistoryUpdate {
	_u.mutation.ClearTurnID()
	return _u
}

// SetActor sets the "actor" field.
func (_u *ActionHistoryUpdate) SetActor(v string) *ActionHistoryUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableActor(v *string) *ActionHistoryUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ActionHistoryUpdate) SetAction(v string) *ActionHistoryUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableAction(v *string) *ActionHistoryUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ActionHistoryUpdate) SetSuccess(v bool) *ActionHistoryUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableSuccess(v *bool) *ActionHistoryUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrCode sets the "err_code" field.
func (_u *ActionHistoryUpdate) SetErrCode(v string) *ActionHistoryUpdate {
	_u.mutation.SetErrCode(v)
	return _u
}

// SetNillableErrCode sets the "err_code" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableErrCode(v *string) *ActionHistoryUpdate {
	if v != nil {
		_u.SetErrCode(*v)
	}
	return _u
}

// ClearErrCode clears the value of the "err_code" field.
func (_u *ActionHistoryUpdate) ClearErrCode() *ActionHistoryUpdate {
	_u.mutation.ClearErrCode()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ActionHistoryUpdate) SetPayload(v json.RawMessage) *ActionHistoryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ActionHistoryUpdate) AppendPayload(v json.RawMessage) *ActionHistoryUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ActionHistoryUpdate) ClearPayload() *ActionHistoryUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ActionHistoryUpdate) SetDurationMs(v int64) *ActionHistoryUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ActionHistoryUpdate) SetNillableDurationMs(v *int64) *ActionHistoryUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ActionHistoryUpdate) AddDurationMs(v int64) *ActionHistoryUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ActionHistoryMutation object of the builder.
func (_u *ActionHistoryUpdate) Mutation() *ActionHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionHistoryUpdate) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := actionhistory.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Actor(); ok {
		if err := actionhistory.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.actor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := actionhistory.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMs(); ok {
		if err := actionhistory.DurationMsValidator(v); err != nil {
			return &ValidationError{Name: "duration_ms", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.duration_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionhistory.Table, actionhistory.Columns, sqlgraph.NewFieldSpec(actionhistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(actionhistory.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnID(); ok {
		_spec.SetField(actionhistory.FieldTurnID, field.TypeString, value)
	}
	if _u.mutation.TurnIDCleared() {
		_spec.ClearField(actionhistory.FieldTurnID, field.TypeString)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(actionhistory.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(actionhistory.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(actionhistory.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrCode(); ok {
		_spec.SetField(actionhistory.FieldErrCode, field.TypeString, value)
	}
	if _u.mutation.ErrCodeCleared() {
		_spec.ClearField(actionhistory.FieldErrCode, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(actionhistory.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, actionhistory.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(actionhistory.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(actionhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(actionhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionHistoryUpdateOne is the builder for updating a single ActionHistory entity.
type ActionHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionHistoryMutation
}

// SetRecordID sets the "record_id" field.
func (_u *ActionHistoryUpdateOne) SetRecordID(v string) *ActionHistoryUpdateOne {
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableRecordID(v *string) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// SetTurnID sets the "turn_id" field.
func (_u *ActionHistoryUpdateOne) SetTurnID(v string) *ActionHistoryUpdateOne {
	_u.mutation.SetTurnID(v)
	return _u
}

// SetNillableTurnID sets the "turn_id" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableTurnID(v *string) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetTurnID(*v)
	}
	return _u
}

// ClearTurnID clears the value of the "turn_id" field.
func (_u *ActionHistoryUpdateOne) ClearTurnID() *ActionHistoryUpdateOne {
	_u.mutation.ClearTurnID()
	return _u
}

// SetActor sets the "actor" field.
func (_u *ActionHistoryUpdateOne) SetActor(v string) *ActionHistoryUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableActor(v *string) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ActionHistoryUpdateOne) SetAction(v string) *ActionHistoryUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableAction(v *string) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *ActionHistoryUpdateOne) SetSuccess(v bool) *ActionHistoryUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableSuccess(v *bool) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrCode sets the "err_code" field.
func (_u *ActionHistoryUpdateOne) SetErrCode(v string) *ActionHistoryUpdateOne {
	_u.mutation.SetErrCode(v)
	return _u
}

// SetNillableErrCode sets the "err_code" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableErrCode(v *string) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetErrCode(*v)
	}
	return _u
}

// ClearErrCode clears the value of the "err_code" field.
func (_u *ActionHistoryUpdateOne) ClearErrCode() *ActionHistoryUpdateOne {
	_u.mutation.ClearErrCode()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ActionHistoryUpdateOne) SetPayload(v json.RawMessage) *ActionHistoryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ActionHistoryUpdateOne) AppendPayload(v json.RawMessage) *ActionHistoryUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *ActionHistoryUpdateOne) ClearPayload() *ActionHistoryUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ActionHistoryUpdateOne) SetDurationMs(v int64) *ActionHistoryUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ActionHistoryUpdateOne) SetNillableDurationMs(v *int64) *ActionHistoryUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ActionHistoryUpdateOne) AddDurationMs(v int64) *ActionHistoryUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the ActionHistoryMutation object of the builder.
func (_u *ActionHistoryUpdateOne) Mutation() *ActionHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionHistoryUpdate builder.
func (_u *ActionHistoryUpdateOne) Where(ps ...predicate.ActionHistory) *ActionHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionHistoryUpdateOne) Select(field string, fields ...string) *ActionHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionHistory entity.
func (_u *ActionHistoryUpdateOne) Save(ctx context.Context) (*ActionHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionHistoryUpdateOne) SaveX(ctx context.Context) *ActionHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.RecordID(); ok {
		if err := actionhistory.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.record_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Actor(); ok {
		if err := actionhistory.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.actor": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := actionhistory.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMs(); ok {
		if err := actionhistory.DurationMsValidator(v); err != nil {
			return &ValidationError{Name: "duration_ms", err: fmt.Errorf(`ent: validator failed for field "ActionHistory.duration_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ActionHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionhistory.Table, actionhistory.Columns, sqlgraph.NewFieldSpec(actionhistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionhistory.FieldID)
		for _, f := range fields {
			if !actionhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(actionhistory.FieldRecordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnID(); ok {
		_spec.SetField(actionhistory.FieldTurnID, field.TypeString, value)
	}
	if _u.mutation.TurnIDCleared() {
		_spec.ClearField(actionhistory.FieldTurnID, field.TypeString)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(actionhistory.FieldActor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(actionhistory.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(actionhistory.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrCode(); ok {
		_spec.SetField(actionhistory.FieldErrCode, field.TypeString, value)
	}
	if _u.mutation.ErrCodeCleared() {
		_spec.ClearField(actionhistory.FieldErrCode, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(actionhistory.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, actionhistory.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(actionhistory.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(actionhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(actionhistory.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &ActionHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
