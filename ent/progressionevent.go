// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abiral/fluency/ent/progressionevent"
)

// ProgressionEvent is the model entity for the ProgressionEvent schema.
type ProgressionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// FactID holds the value of the "fact_id" field.
	FactID string `json:"fact_id,omitempty"`
	// FactSetID holds the value of the "fact_set_id" field.
	FactSetID string `json:"fact_set_id,omitempty"`
	// FromStageID holds the value of the "from_stage_id" field.
	FromStageID string `json:"from_stage_id,omitempty"`
	// ToStageID holds the value of the "to_stage_id" field.
	ToStageID string `json:"to_stage_id,omitempty"`
	// AnswerType holds the value of the "answer_type" field.
	AnswerType string `json:"answer_type,omitempty"`
	// ConsecutiveCount holds the value of the "consecutive_count" field.
	ConsecutiveCount int `json:"consecutive_count,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressionevent.FieldID, progressionevent.FieldSequence, progressionevent.FieldConsecutiveCount:
			values[i] = new(sql.NullInt64)
		case progressionevent.FieldFactID, progressionevent.FieldFactSetID, progressionevent.FieldFromStageID, progressionevent.FieldToStageID, progressionevent.FieldAnswerType:
			values[i] = new(sql.NullString)
		case progressionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressionEvent fields.
func (pe *ProgressionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pe.ID = int(value.Int64)
		case progressionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				pe.Sequence = value.Int64
			}
		case progressionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				pe.Timestamp = value.Time
			}
		case progressionevent.FieldFactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fact_id", values[i])
			} else if value.Valid {
				pe.FactID = value.String
			}
		case progressionevent.FieldFactSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fact_set_id", values[i])
			} else if value.Valid {
				pe.FactSetID = value.String
			}
		case progressionevent.FieldFromStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_stage_id", values[i])
			} else if value.Valid {
				pe.FromStageID = value.String
			}
		case progressionevent.FieldToStageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_stage_id", values[i])
			} else if value.Valid {
				pe.ToStageID = value.String
			}
		case progressionevent.FieldAnswerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_type", values[i])
			} else if value.Valid {
				pe.AnswerType = value.String
			}
		case progressionevent.FieldConsecutiveCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_count", values[i])
			} else if value.Valid {
				pe.ConsecutiveCount = int(value.Int64)
			}
		default:
			pe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressionEvent.
// This includes values selected through modifiers, order, etc.
func (pe *ProgressionEvent) Value(name string) (ent.Value, error) {
	return pe.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressionEvent.
// Note that you need to call ProgressionEvent.Unwrap() before calling this method if this ProgressionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (pe *ProgressionEvent) Update() *ProgressionEventUpdateOne {
	return NewProgressionEventClient(pe.config).UpdateOne(pe)
}

// Unwrap unwraps the ProgressionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pe *ProgressionEvent) Unwrap() *ProgressionEvent {
	_tx, ok := pe.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressionEvent is not a transactional entity")
	}
	pe.config.driver = _tx.drv
	return pe
}

// String implements the fmt.Stringer.
func (pe *ProgressionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pe.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", pe.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(pe.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fact_id=")
	builder.WriteString(pe.FactID)
	builder.WriteString(", ")
	builder.WriteString("fact_set_id=")
	builder.WriteString(pe.FactSetID)
	builder.WriteString(", ")
	builder.WriteString("from_stage_id=")
	builder.WriteString(pe.FromStageID)
	builder.WriteString(", ")
	builder.WriteString("to_stage_id=")
	builder.WriteString(pe.ToStageID)
	builder.WriteString(", ")
	builder.WriteString("answer_type=")
	builder.WriteString(pe.AnswerType)
	builder.WriteString(", ")
	builder.WriteString("consecutive_count=")
	builder.WriteString(fmt.Sprintf("%v", pe.ConsecutiveCount))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressionEvents is a parsable slice of ProgressionEvent.
type ProgressionEvents []*ProgressionEvent
