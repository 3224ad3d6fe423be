// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionHistoriesColumns holds the columns for the "action_histories" table.
	ActionHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "turn_id", Type: field.TypeString, Nullable: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "err_code", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "TIMESTAMPTZ", "sqlite3": "DATETIME"}},
	}
	// ActionHistoriesTable holds the schema information for the "action_histories" table.
	ActionHistoriesTable = &schema.Table{
		Name:       "action_histories",
		Columns:    ActionHistoriesColumns,
		PrimaryKey: []*schema.Column{ActionHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "actionhistory_actor_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActionHistoriesColumns[3], ActionHistoriesColumns[9]},
			},
			{
				Name:    "actionhistory_turn_id",
				Unique:  false,
				Columns: []*schema.Column{ActionHistoriesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionHistoriesTable,
	}
)

func init() {
}
