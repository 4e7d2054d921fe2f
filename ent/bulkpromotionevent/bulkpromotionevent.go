// Code generated by ent, DO NOT EDIT.

package bulkpromotionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bulkpromotionevent type in the database.
	Label = "bulk_promotion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFactSetID holds the string denoting the fact_set_id field in the database.
	FieldFactSetID = "fact_set_id"
	// FieldPromotedFactsCount holds the string denoting the promoted_facts_count field in the database.
	FieldPromotedFactsCount = "promoted_facts_count"
	// FieldConsecutiveCorrect holds the string denoting the consecutive_correct field in the database.
	FieldConsecutiveCorrect = "consecutive_correct"
	// FieldCoveragePercent holds the string denoting the coverage_percent field in the database.
	FieldCoveragePercent = "coverage_percent"
	// Table holds the table name of the bulkpromotionevent in the database.
	Table = "bulk_promotion_events"
)

// Columns holds all SQL columns for bulkpromotionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFactSetID,
	FieldPromotedFactsCount,
	FieldConsecutiveCorrect,
	FieldCoveragePercent,
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
	// FactSetIDValidator is a validator for the "fact_set_id" field. It is called by the builders before save.
	FactSetIDValidator func(string) error
)

// OrderOption defines the ordering options for the BulkPromotionEvent queries.
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

// ByFactSetID orders the results by the fact_set_id field.
func ByFactSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactSetID, opts...).ToFunc()
}

// ByPromotedFactsCount orders the results by the promoted_facts_count field.
func ByPromotedFactsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromotedFactsCount, opts...).ToFunc()
}

// ByConsecutiveCorrect orders the results by the consecutive_correct field.
func ByConsecutiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCorrect, opts...).ToFunc()
}

// ByCoveragePercent orders the results by the coverage_percent field.
func ByCoveragePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoveragePercent, opts...).ToFunc()
}
