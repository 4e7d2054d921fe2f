// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
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
	// FieldStageID holds the string denoting the stage_id field in the database.
	FieldStageID = "stage_id"
	// FieldAnswerType holds the string denoting the answer_type field in the database.
	FieldAnswerType = "answer_type"
	// FieldWasKnownFact holds the string denoting the was_known_fact field in the database.
	FieldWasKnownFact = "was_known_fact"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFactID,
	FieldFactSetID,
	FieldStageID,
	FieldAnswerType,
	FieldWasKnownFact,
	FieldSessionID,
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
	// StageIDValidator is a validator for the "stage_id" field. It is called by the builders before save.
	StageIDValidator func(string) error
	// AnswerTypeValidator is a validator for the "answer_type" field. It is called by the builders before save.
	AnswerTypeValidator func(string) error
)

// OrderOption defines the ordering options for the AnswerEvent queries.
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

// ByStageID orders the results by the stage_id field.
func ByStageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageID, opts...).ToFunc()
}

// ByAnswerType orders the results by the answer_type field.
func ByAnswerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerType, opts...).ToFunc()
}

// ByWasKnownFact orders the results by the was_known_fact field.
func ByWasKnownFact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWasKnownFact, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}
