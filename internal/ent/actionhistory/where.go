// Code generated by ent, DO NOT EDIT.

package actionhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/actonlabs/acton/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldID, id))
}

// RecordID applies equality check predicate on the "record_id" field. It's identical to RecordIDEQ.
func RecordID(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldRecordID, v))
}

// TurnID applies equality check predicate on the "turn_id" field. It's identical to TurnIDEQ.
func TurnID(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldTurnID, v))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldActor, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldAction, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldSuccess, v))
}

// ErrCode applies equality check predicate on the "err_code" field. It's identical to ErrCodeEQ.
func ErrCode(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldErrCode, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// RecordIDEQ applies the EQ predicate on the "record_id" field.
func RecordIDEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldRecordID, v))
}

// RecordIDNEQ applies the NEQ predicate on the "record_id" field.
func RecordIDNEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldRecordID, v))
}

// RecordIDIn applies the In predicate on the "record_id" field.
func RecordIDIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldRecordID, vs...))
}

// RecordIDNotIn applies the NotIn predicate on the "record_id" field.
func RecordIDNotIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldRecordID, vs...))
}

// RecordIDGT applies the GT predicate on the "record_id" field.
func RecordIDGT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldRecordID, v))
}

// RecordIDGTE applies the GTE predicate on the "record_id" field.
func RecordIDGTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldRecordID, v))
}

// RecordIDLT applies the LT predicate on the "record_id" field.
func RecordIDLT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldRecordID, v))
}

// RecordIDLTE applies the LTE predicate on the "record_id" field.
func RecordIDLTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldRecordID, v))
}

// RecordIDContains applies the Contains predicate on the "record_id" field.
func RecordIDContains(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContains(FieldRecordID, v))
}

// RecordIDHasPrefix applies the HasPrefix predicate on the "record_id" field.
func RecordIDHasPrefix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasPrefix(FieldRecordID, v))
}

// RecordIDHasSuffix applies the HasSuffix predicate on the "record_id" field.
func RecordIDHasSuffix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasSuffix(FieldRecordID, v))
}

// RecordIDEqualFold applies the EqualFold predicate on the "record_id" field.
func RecordIDEqualFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEqualFold(FieldRecordID, v))
}

// RecordIDContainsFold applies the ContainsFold predicate on the "record_id" field.
func RecordIDContainsFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContainsFold(FieldRecordID, v))
}

// TurnIDEQ applies the EQ predicate on the "turn_id" field.
func TurnIDEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldTurnID, v))
}

// TurnIDNEQ applies the NEQ predicate on the "turn_id" field.
func TurnIDNEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldTurnID, v))
}

// TurnIDIn applies the In predicate on the "turn_id" field.
func TurnIDIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldTurnID, vs...))
}

// TurnIDNotIn applies the NotIn predicate on the "turn_id" field.
func TurnIDNotIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldTurnID, vs...))
}

// TurnIDGT applies the GT predicate on the "turn_id" field.
func TurnIDGT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldTurnID, v))
}

// TurnIDGTE applies the GTE predicate on the "turn_id" field.
func TurnIDGTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldTurnID, v))
}

// TurnIDLT applies the LT predicate on the "turn_id" field.
func TurnIDLT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldTurnID, v))
}

// TurnIDLTE applies the LTE predicate on the "turn_id" field.
func TurnIDLTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldTurnID, v))
}

// TurnIDContains applies the Contains predicate on the "turn_id" field.
func TurnIDContains(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContains(FieldTurnID, v))
}

// TurnIDHasPrefix applies the HasPrefix predicate on the "turn_id" field.
func TurnIDHasPrefix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasPrefix(FieldTurnID, v))
}

// TurnIDHasSuffix applies the HasSuffix predicate on the "turn_id" field.
func TurnIDHasSuffix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasSuffix(FieldTurnID, v))
}

// TurnIDIsNil applies the IsNil predicate on the "turn_id" field.
func TurnIDIsNil() predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIsNull(FieldTurnID))
}

// TurnIDNotNil applies the NotNil predicate on the "turn_id" field.
func TurnIDNotNil() predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotNull(FieldTurnID))
}

// TurnIDEqualFold applies the EqualFold predicate on the "turn_id" field.
func TurnIDEqualFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEqualFold(FieldTurnID, v))
}

// TurnIDContainsFold applies the ContainsFold predicate on the "turn_id" field.
func TurnIDContainsFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContainsFold(FieldTurnID, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasSuffix(FieldActor, v))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContainsFold(FieldActor, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContainsFold(FieldAction, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldSuccess, v))
}

// ErrCodeEQ applies the EQ predicate on the "err_code" field.
func ErrCodeEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldErrCode, v))
}

// ErrCodeNEQ applies the NEQ predicate on the "err_code" field.
func ErrCodeNEQ(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldErrCode, v))
}

// ErrCodeIn applies the In predicate on the "err_code" field.
func ErrCodeIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldErrCode, vs...))
}

// ErrCodeNotIn applies the NotIn predicate on the "err_code" field.
func ErrCodeNotIn(vs ...string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldErrCode, vs...))
}

// ErrCodeGT applies the GT predicate on the "err_code" field.
func ErrCodeGT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldErrCode, v))
}

// ErrCodeGTE applies the GTE predicate on the "err_code" field.
func ErrCodeGTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldErrCode, v))
}

// ErrCodeLT applies the LT predicate on the "err_code" field.
func ErrCodeLT(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldErrCode, v))
}

// ErrCodeLTE applies the LTE predicate on the "err_code" field.
func ErrCodeLTE(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldErrCode, v))
}

// ErrCodeContains applies the Contains predicate on the "err_code" field.
func ErrCodeContains(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContains(FieldErrCode, v))
}

// ErrCodeHasPrefix applies the HasPrefix predicate on the "err_code" field.
func ErrCodeHasPrefix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasPrefix(FieldErrCode, v))
}

// ErrCodeHasSuffix applies the HasSuffix predicate on the "err_code" field.
func ErrCodeHasSuffix(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldHasSuffix(FieldErrCode, v))
}

// ErrCodeIsNil applies the IsNil predicate on the "err_code" field.
func ErrCodeIsNil() predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIsNull(FieldErrCode))
}

// ErrCodeNotNil applies the NotNil predicate on the "err_code" field.
func ErrCodeNotNil() predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotNull(FieldErrCode))
}

// ErrCodeEqualFold applies the EqualFold predicate on the "err_code" field.
func ErrCodeEqualFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEqualFold(FieldErrCode, v))
}

// ErrCodeContainsFold applies the ContainsFold predicate on the "err_code" field.
func ErrCodeContainsFold(v string) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldContainsFold(FieldErrCode, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotNull(FieldPayload))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ActionHistory {
	return predicate.ActionHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionHistory) predicate.ActionHistory {
	return predicate.ActionHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionHistory) predicate.ActionHistory {
	return predicate.ActionHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionHistory) predicate.ActionHistory {
	return predicate.ActionHistory(sql.NotPredicates(p))
}
