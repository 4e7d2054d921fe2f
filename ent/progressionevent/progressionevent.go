// Code generated by ent, DO NOT EDIT.

package progressionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressionevent type in the database.
	Label = "progression_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFactID holds the string denoting the fact_id field in the database.
	FieldFactID = "fact_id"
	// FieldFactSetID holds the string denoting the fact_set_id field in the database.
	FieldFactSetID = "fact_set_id"
	// FieldFromStageID holds the string denoting the from_stage_id field in the database.
	FieldFromStageID = "from_stage_id"
	// FieldToStageID holds the string denoting the to_stage_id field in the database.
	FieldToStageID = "to_stage_id"
	// FieldAnswerType holds the string denoting the answer_type field in the database.
	FieldAnswerType = "answer_type"
	// FieldConsecutiveCount holds the string denoting the consecutive_count field in the database.
	FieldConsecutiveCount = "consecutive_count"
	// Table holds the table name of the progressionevent in the database.
	Table = "progression_events"
)

// Columns holds all SQL columns for progressionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFactID,
	FieldFactSetID,
	FieldFromStageID,
	FieldToStageID,
	FieldAnswerType,
	FieldConsecutiveCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// FactIDValidator is a validator for the "fact_id" field. It is called by the builders before save.
	FactIDValidator func(string) error
	// FactSetIDValidator is a validator for the "fact_set_id" field. It is called by the builders before save.
	FactSetIDValidator func(string) error
	// FromStageIDValidator is a validator for the "from_stage_id" field. It is called by the builders before save.
	FromStageIDValidator func(string) error
	// ToStageIDValidator is a validator for the "to_stage_id" field. It is called by the builders before save.
	ToStageIDValidator func(string) error
	// AnswerTypeValidator is a validator for the "answer_type" field. It is called by the builders before save.
	AnswerTypeValidator func(string) error
)

// OrderOption defines the ordering options for the ProgressionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByFactID orders the results by the fact_id field.
func ByFactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactID, opts...).ToFunc()
}

// ByFactSetID orders the results by the fact_set_id field.
func ByFactSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactSetID, opts...).ToFunc()
}

// ByFromStageID orders the results by the from_stage_id field.
func ByFromStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStageID, opts...).ToFunc()
}

// ByToStageID orders the results by the to_stage_id field.
func ByToStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStageID, opts...).ToFunc()
}

// ByAnswerType orders the results by the answer_type field.
func ByAnswerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerType, opts...).ToFunc()
}

// ByConsecutiveCount orders the results by the consecutive_count field.
func ByConsecutiveCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCount, opts...).ToFunc()
}
