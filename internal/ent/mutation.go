// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/actonlabs/acton/internal/ent/actionhistory"
	"github.com/actonlabs/acton/internal/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActionHistory = "ActionHistory"
)

// ActionHistoryMutation represents an operation that mutates the ActionHistory nodes in the graph.
type ActionHistoryMutation struct {
	config
	op             Op
	typ            string
	id             *int
	record_id      *string
	turn_id        *string
	actor          *string
	action         *string
	success        *bool
	err_code       *string
	payload        *json.RawMessage
	appendpayload  json.RawMessage
	duration_ms    *int64
	addduration_ms *int64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ActionHistory, error)
	predicates     []predicate.ActionHistory
}

var _ ent.Mutation = (*ActionHistoryMutation)(nil)

// actionhistoryOption allows management of the mutation configuration using functional options.
type actionhistoryOption func(*ActionHistoryMutation)

// newActionHistoryMutation creates new mutation for the ActionHistory entity.
func newActionHistoryMutation(c config, op Op, opts ...actionhistoryOption) *ActionHistoryMutation {
	m := &ActionHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeActionHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionHistoryID sets the ID field of the mutation.
func withActionHistoryID(id int) actionhistoryOption {
	return func(m *ActionHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionHistory
		)
		m.oldValue = func(ctx context.Context) (*ActionHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionHistory sets the old ActionHistory of the mutation.
func withActionHistory(node *ActionHistory) actionhistoryOption {
	return func(m *ActionHistoryMutation) {
		m.oldValue = func(context.Context) (*ActionHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *ActionHistoryMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *ActionHistoryMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *ActionHistoryMutation) ResetRecordID() {
	m.record_id = nil
}

// SetTurnID sets the "turn_id" field.
func (m *ActionHistoryMutation) SetTurnID(s string) {
	m.turn_id = &s
}

// TurnID returns the value of the "turn_id" field in the mutation.
func (m *ActionHistoryMutation) TurnID() (r string, exists bool) {
	v := m.turn_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnID returns the old "turn_id" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldTurnID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnID: %w", err)
	}
	return oldValue.TurnID, nil
}

// ClearTurnID clears the value of the "turn_id" field.
func (m *ActionHistoryMutation) ClearTurnID() {
	m.turn_id = nil
	m.clearedFields[actionhistory.FieldTurnID] = struct{}{}
}

// TurnIDCleared returns if the "turn_id" field was cleared in this mutation.
func (m *ActionHistoryMutation) TurnIDCleared() bool {
	_, ok := m.clearedFields[actionhistory.FieldTurnID]
	return ok
}

// ResetTurnID resets all changes to the "turn_id" field.
func (m *ActionHistoryMutation) ResetTurnID() {
	m.turn_id = nil
	delete(m.clearedFields, actionhistory.FieldTurnID)
}

// SetActor sets the "actor" field.
func (m *ActionHistoryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *ActionHistoryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *ActionHistoryMutation) ResetActor() {
	m.actor = nil
}

// SetAction sets the "action" field.
func (m *ActionHistoryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ActionHistoryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ActionHistoryMutation) ResetAction() {
	m.action = nil
}

// SetSuccess sets the "success" field.
func (m *ActionHistoryMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ActionHistoryMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ActionHistoryMutation) ResetSuccess() {
	m.success = nil
}

// SetErrCode sets the "err_code" field.
func (m *ActionHistoryMutation) SetErrCode(s string) {
	m.err_code = &s
}

// ErrCode returns the value of the "err_code" field in the mutation.
func (m *ActionHistoryMutation) ErrCode() (r string, exists bool) {
	v := m.err_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrCode returns the old "err_code" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldErrCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrCode: %w", err)
	}
	return oldValue.ErrCode, nil
}

// ClearErrCode clears the value of the "err_code" field.
func (m *ActionHistoryMutation) ClearErrCode() {
	m.err_code = nil
	m.clearedFields[actionhistory.FieldErrCode] = struct{}{}
}

// ErrCodeCleared returns if the "err_code" field was cleared in this mutation.
func (m *ActionHistoryMutation) ErrCodeCleared() bool {
	_, ok := m.clearedFields[actionhistory.FieldErrCode]
	return ok
}

// ResetErrCode resets all changes to the "err_code" field.
func (m *ActionHistoryMutation) ResetErrCode() {
	m.err_code = nil
	delete(m.clearedFields, actionhistory.FieldErrCode)
}

// SetPayload sets the "payload" field.
func (m *ActionHistoryMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ActionHistoryMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *ActionHistoryMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *ActionHistoryMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *ActionHistoryMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[actionhistory.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *ActionHistoryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[actionhistory.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *ActionHistoryMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, actionhistory.FieldPayload)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ActionHistoryMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ActionHistoryMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ActionHistoryMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ActionHistoryMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ActionHistoryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActionHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActionHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActionHistory entity.
// If the ActionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActionHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActionHistoryMutation builder.
func (m *ActionHistoryMutation) Where(ps ...predicate.ActionHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionHistory).
func (m *ActionHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionHistoryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.record_id != nil {
		fields = append(fields, actionhistory.FieldRecordID)
	}
	if m.turn_id != nil {
		fields = append(fields, actionhistory.FieldTurnID)
	}
	if m.actor != nil {
		fields = append(fields, actionhistory.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, actionhistory.FieldAction)
	}
	if m.success != nil {
		fields = append(fields, actionhistory.FieldSuccess)
	}
	if m.err_code != nil {
		fields = append(fields, actionhistory.FieldErrCode)
	}
	if m.payload != nil {
		fields = append(fields, actionhistory.FieldPayload)
	}
	if m.duration_ms != nil {
		fields = append(fields, actionhistory.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, actionhistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionhistory.FieldRecordID:
		return m.RecordID()
	case actionhistory.FieldTurnID:
		return m.TurnID()
	case actionhistory.FieldActor:
		return m.Actor()
	case actionhistory.FieldAction:
		return m.Action()
	case actionhistory.FieldSuccess:
		return m.Success()
	case actionhistory.FieldErrCode:
		return m.ErrCode()
	case actionhistory.FieldPayload:
		return m.Payload()
	case actionhistory.FieldDurationMs:
		return m.DurationMs()
	case actionhistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionhistory.FieldRecordID:
		return m.OldRecordID(ctx)
	case actionhistory.FieldTurnID:
		return m.OldTurnID(ctx)
	case actionhistory.FieldActor:
		return m.OldActor(ctx)
	case actionhistory.FieldAction:
		return m.OldAction(ctx)
	case actionhistory.FieldSuccess:
		return m.OldSuccess(ctx)
	case actionhistory.FieldErrCode:
		return m.OldErrCode(ctx)
	case actionhistory.FieldPayload:
		return m.OldPayload(ctx)
	case actionhistory.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case actionhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActionHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionhistory.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case actionhistory.FieldTurnID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnID(v)
		return nil
	case actionhistory.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case actionhistory.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case actionhistory.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case actionhistory.FieldErrCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrCode(v)
		return nil
	case actionhistory.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case actionhistory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case actionhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActionHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, actionhistory.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actionhistory.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actionhistory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ActionHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionhistory.FieldTurnID) {
		fields = append(fields, actionhistory.FieldTurnID)
	}
	if m.FieldCleared(actionhistory.FieldErrCode) {
		fields = append(fields, actionhistory.FieldErrCode)
	}
	if m.FieldCleared(actionhistory.FieldPayload) {
		fields = append(fields, actionhistory.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionHistoryMutation) ClearField(name string) error {
	switch name {
	case actionhistory.FieldTurnID:
		m.ClearTurnID()
		return nil
	case actionhistory.FieldErrCode:
		m.ClearErrCode()
		return nil
	case actionhistory.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown ActionHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionHistoryMutation) ResetField(name string) error {
	switch name {
	case actionhistory.FieldRecordID:
		m.ResetRecordID()
		return nil
	case actionhistory.FieldTurnID:
		m.ResetTurnID()
		return nil
	case actionhistory.FieldActor:
		m.ResetActor()
		return nil
	case actionhistory.FieldAction:
		m.ResetAction()
		return nil
	case actionhistory.FieldSuccess:
		m.ResetSuccess()
		return nil
	case actionhistory.FieldErrCode:
		m.ResetErrCode()
		return nil
	case actionhistory.FieldPayload:
		m.ResetPayload()
		return nil
	case actionhistory.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case actionhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActionHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActionHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActionHistory edge %s", name)
}
