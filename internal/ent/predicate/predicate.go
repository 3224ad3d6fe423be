// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionHistory is the predicate function for actionhistory builders.
type ActionHistory func(*sql.Selector)
