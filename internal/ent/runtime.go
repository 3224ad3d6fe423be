// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/actonlabs/acton/internal/ent/actionhistory"
	"github.com/actonlabs/acton/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionhistoryFields := schema.ActionHistory{}.Fields()
	_ = actionhistoryFields
	// actionhistoryDescRecordID is the schema descriptor for record_id field.
	actionhistoryDescRecordID := actionhistoryFields[0].Descriptor()
	// actionhistory.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	actionhistory.RecordIDValidator = actionhistoryDescRecordID.Validators[0].(func(string) error)
	// actionhistoryDescActor is the schema descriptor for actor field.
	actionhistoryDescActor := actionhistoryFields[2].Descriptor()
	// actionhistory.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	actionhistory.ActorValidator = actionhistoryDescActor.Validators[0].(func(string) error)
	// actionhistoryDescAction is the schema descriptor for action field.
	actionhistoryDescAction := actionhistoryFields[3].Descriptor()
	// actionhistory.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	actionhistory.ActionValidator = actionhistoryDescAction.Validators[0].(func(string) error)
	// actionhistoryDescDurationMs is the schema descriptor for duration_ms field.
	actionhistoryDescDurationMs := actionhistoryFields[7].Descriptor()
	// actionhistory.DurationMsValidator is a validator for the "duration_ms" field. It is called by the builders before save.
	actionhistory.DurationMsValidator = actionhistoryDescDurationMs.Validators[0].(func(int64) error)
	// actionhistoryDescCreatedAt is the schema descriptor for created_at field.
	actionhistoryDescCreatedAt := actionhistoryFields[8].Descriptor()
	// actionhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionhistory.DefaultCreatedAt = actionhistoryDescCreatedAt.Default.(func() time.Time)
}
