package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionHistory holds the schema definition for one persisted invocation
// result.
type ActionHistory struct{ ent.Schema }

// Fields of the ActionHistory.
func (ActionHistory) Fields() []ent.Field {
	return []ent.Field{
		// Invocation id; stable external key for traceability.
		field.String("record_id").NotEmpty().Unique(),
		// Empty for direct executions outside a turn.
		field.String("turn_id").Optional(),
		field.String("actor").NotEmpty(),
		field.String("action").NotEmpty(),
		field.Bool("success"),
		field.String("err_code").Optional(),
		// Raw result payload; compatible with Postgres (JSONB) and SQLite (TEXT/BLOB).
		field.JSON("payload", json.RawMessage{}).Optional(),
		field.Int64("duration_ms").NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the ActionHistory.
func (ActionHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("actor", "created_at"),
		index.Fields("turn_id"),
	}
}
