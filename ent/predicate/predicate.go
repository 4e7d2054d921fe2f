// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// BulkPromotionEvent is the predicate function for bulkpromotionevent builders.
type BulkPromotionEvent func(*sql.Selector)

// ProgressionEvent is the predicate function for progressionevent builders.
type ProgressionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
