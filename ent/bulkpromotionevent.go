// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abiral/fluency/ent/bulkpromotionevent"
)

// BulkPromotionEvent is the model entity for the BulkPromotionEvent schema.
type BulkPromotionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// FactSetID holds the value of the "fact_set_id" field.
	FactSetID string `json:"fact_set_id,omitempty"`
	// PromotedFactsCount holds the value of the "promoted_facts_count" field.
	PromotedFactsCount int `json:"promoted_facts_count,omitempty"`
	// ConsecutiveCorrect holds the value of the "consecutive_correct" field.
	ConsecutiveCorrect int `json:"consecutive_correct,omitempty"`
	// CoveragePercent holds the value of the "coverage_percent" field.
	CoveragePercent float64 `json:"coverage_percent,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BulkPromotionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bulkpromotionevent.FieldCoveragePercent:
			values[i] = new(sql.NullFloat64)
		case bulkpromotionevent.FieldID, bulkpromotionevent.FieldSequence, bulkpromotionevent.FieldPromotedFactsCount, bulkpromotionevent.FieldConsecutiveCorrect:
			values[i] = new(sql.NullInt64)
		case bulkpromotionevent.FieldFactSetID:
			values[i] = new(sql.NullString)
		case bulkpromotionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BulkPromotionEvent fields.
func (bpe *BulkPromotionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bulkpromotionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			bpe.ID = int(value.Int64)
		case bulkpromotionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				bpe.Sequence = value.Int64
			}
		case bulkpromotionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				bpe.Timestamp = value.Time
			}
		case bulkpromotionevent.FieldFactSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fact_set_id", values[i])
			} else if value.Valid {
				bpe.FactSetID = value.String
			}
		case bulkpromotionevent.FieldPromotedFactsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field promoted_facts_count", values[i])
			} else if value.Valid {
				bpe.PromotedFactsCount = int(value.Int64)
			}
		case bulkpromotionevent.FieldConsecutiveCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_correct", values[i])
			} else if value.Valid {
				bpe.ConsecutiveCorrect = int(value.Int64)
			}
		case bulkpromotionevent.FieldCoveragePercent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coverage_percent", values[i])
			} else if value.Valid {
				bpe.CoveragePercent = value.Float64
			}
		default:
			bpe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BulkPromotionEvent.
// This includes values selected through modifiers, order, etc.
func (bpe *BulkPromotionEvent) Value(name string) (ent.Value, error) {
	return bpe.selectValues.Get(name)
}

// Update returns a builder for updating this BulkPromotionEvent.
// Note that you need to call BulkPromotionEvent.Unwrap() before calling this method if this BulkPromotionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (bpe *BulkPromotionEvent) Update() *BulkPromotionEventUpdateOne {
	return NewBulkPromotionEventClient(bpe.config).UpdateOne(bpe)
}

// Unwrap unwraps the BulkPromotionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (bpe *BulkPromotionEvent) Unwrap() *BulkPromotionEvent {
	_tx, ok := bpe.config.driver.(*txDriver)
	if !ok {
		panic("ent: BulkPromotionEvent is not a transactional entity")
	}
	bpe.config.driver = _tx.drv
	return bpe
}

// String implements the fmt.Stringer.
func (bpe *BulkPromotionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BulkPromotionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", bpe.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", bpe.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(bpe.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fact_set_id=")
	builder.WriteString(bpe.FactSetID)
	builder.WriteString(", ")
	builder.WriteString("promoted_facts_count=")
	builder.WriteString(fmt.Sprintf("%v", bpe.PromotedFactsCount))
	builder.WriteString(", ")
	builder.WriteString("consecutive_correct=")
	builder.WriteString(fmt.Sprintf("%v", bpe.ConsecutiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("coverage_percent=")
	builder.WriteString(fmt.Sprintf("%v", bpe.CoveragePercent))
	builder.WriteByte(')')
	return builder.String()
}

// BulkPromotionEvents is a parsable slice of BulkPromotionEvent.
type BulkPromotionEvents []*BulkPromotionEvent
