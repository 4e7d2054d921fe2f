// Code generated by ent, DO NOT EDIT.

package progressionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abiral/fluency/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// FactID applies equality check predicate on the "fact_id" field. It's identical to FactIDEQ.
func FactID(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldFactID, v))
}

// FactSetID applies equality check predicate on the "fact_set_id" field. It's identical to FactSetIDEQ.
func FactSetID(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldFactSetID, v))
}

// FromStageID applies equality check predicate on the "from_stage_id" field. It's identical to FromStageIDEQ.
func FromStageID(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldFromStageID, v))
}

// ToStageID applies equality check predicate on the "to_stage_id" field. It's identical to ToStageIDEQ.
func ToStageID(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldToStageID, v))
}

// AnswerType applies equality check predicate on the "answer_type" field. It's identical to AnswerTypeEQ.
func AnswerType(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldAnswerType, v))
}

// ConsecutiveCount applies equality check predicate on the "consecutive_count" field. It's identical to ConsecutiveCountEQ.
func ConsecutiveCount(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldConsecutiveCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// FactIDEQ applies the EQ predicate on the "fact_id" field.
func FactIDEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldFactID, v))
}

// FactIDNEQ applies the NEQ predicate on the "fact_id" field.
func FactIDNEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldFactID, v))
}

// FactIDIn applies the In predicate on the "fact_id" field.
func FactIDIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldFactID, vs...))
}

// FactIDNotIn applies the NotIn predicate on the "fact_id" field.
func FactIDNotIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldFactID, vs...))
}

// FactIDGT applies the GT predicate on the "fact_id" field.
func FactIDGT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldFactID, v))
}

// FactIDGTE applies the GTE predicate on the "fact_id" field.
func FactIDGTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldFactID, v))
}

// FactIDLT applies the LT predicate on the "fact_id" field.
func FactIDLT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldFactID, v))
}

// FactIDLTE applies the LTE predicate on the "fact_id" field.
func FactIDLTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldFactID, v))
}

// FactIDContains applies the Contains predicate on the "fact_id" field.
func FactIDContains(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContains(FieldFactID, v))
}

// FactIDHasPrefix applies the HasPrefix predicate on the "fact_id" field.
func FactIDHasPrefix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasPrefix(FieldFactID, v))
}

// FactIDHasSuffix applies the HasSuffix predicate on the "fact_id" field.
func FactIDHasSuffix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasSuffix(FieldFactID, v))
}

// FactIDEqualFold applies the EqualFold predicate on the "fact_id" field.
func FactIDEqualFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEqualFold(FieldFactID, v))
}

// FactIDContainsFold applies the ContainsFold predicate on the "fact_id" field.
func FactIDContainsFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContainsFold(FieldFactID, v))
}

// FactSetIDEQ applies the EQ predicate on the "fact_set_id" field.
func FactSetIDEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldFactSetID, v))
}

// FactSetIDNEQ applies the NEQ predicate on the "fact_set_id" field.
func FactSetIDNEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldFactSetID, v))
}

// FactSetIDIn applies the In predicate on the "fact_set_id" field.
func FactSetIDIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldFactSetID, vs...))
}

// FactSetIDNotIn applies the NotIn predicate on the "fact_set_id" field.
func FactSetIDNotIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldFactSetID, vs...))
}

// FactSetIDGT applies the GT predicate on the "fact_set_id" field.
func FactSetIDGT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldFactSetID, v))
}

// FactSetIDGTE applies the GTE predicate on the "fact_set_id" field.
func FactSetIDGTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldFactSetID, v))
}

// FactSetIDLT applies the LT predicate on the "fact_set_id" field.
func FactSetIDLT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldFactSetID, v))
}

// FactSetIDLTE applies the LTE predicate on the "fact_set_id" field.
func FactSetIDLTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldFactSetID, v))
}

// FactSetIDContains applies the Contains predicate on the "fact_set_id" field.
func FactSetIDContains(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContains(FieldFactSetID, v))
}

// FactSetIDHasPrefix applies the HasPrefix predicate on the "fact_set_id" field.
func FactSetIDHasPrefix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasPrefix(FieldFactSetID, v))
}

// FactSetIDHasSuffix applies the HasSuffix predicate on the "fact_set_id" field.
func FactSetIDHasSuffix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasSuffix(FieldFactSetID, v))
}

// FactSetIDEqualFold applies the EqualFold predicate on the "fact_set_id" field.
func FactSetIDEqualFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEqualFold(FieldFactSetID, v))
}

// FactSetIDContainsFold applies the ContainsFold predicate on the "fact_set_id" field.
func FactSetIDContainsFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContainsFold(FieldFactSetID, v))
}

// FromStageIDEQ applies the EQ predicate on the "from_stage_id" field.
func FromStageIDEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldFromStageID, v))
}

// FromStageIDNEQ applies the NEQ predicate on the "from_stage_id" field.
func FromStageIDNEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldFromStageID, v))
}

// FromStageIDIn applies the In predicate on the "from_stage_id" field.
func FromStageIDIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldFromStageID, vs...))
}

// FromStageIDNotIn applies the NotIn predicate on the "from_stage_id" field.
func FromStageIDNotIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldFromStageID, vs...))
}

// FromStageIDGT applies the GT predicate on the "from_stage_id" field.
func FromStageIDGT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldFromStageID, v))
}

// FromStageIDGTE applies the GTE predicate on the "from_stage_id" field.
func FromStageIDGTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldFromStageID, v))
}

// FromStageIDLT applies the LT predicate on the "from_stage_id" field.
func FromStageIDLT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldFromStageID, v))
}

// FromStageIDLTE applies the LTE predicate on the "from_stage_id" field.
func FromStageIDLTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldFromStageID, v))
}

// FromStageIDContains applies the Contains predicate on the "from_stage_id" field.
func FromStageIDContains(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContains(FieldFromStageID, v))
}

// FromStageIDHasPrefix applies the HasPrefix predicate on the "from_stage_id" field.
func FromStageIDHasPrefix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasPrefix(FieldFromStageID, v))
}

// FromStageIDHasSuffix applies the HasSuffix predicate on the "from_stage_id" field.
func FromStageIDHasSuffix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasSuffix(FieldFromStageID, v))
}

// FromStageIDEqualFold applies the EqualFold predicate on the "from_stage_id" field.
func FromStageIDEqualFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEqualFold(FieldFromStageID, v))
}

// FromStageIDContainsFold applies the ContainsFold predicate on the "from_stage_id" field.
func FromStageIDContainsFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContainsFold(FieldFromStageID, v))
}

// ToStageIDEQ applies the EQ predicate on the "to_stage_id" field.
func ToStageIDEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldToStageID, v))
}

// ToStageIDNEQ applies the NEQ predicate on the "to_stage_id" field.
func ToStageIDNEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldToStageID, v))
}

// ToStageIDIn applies the In predicate on the "to_stage_id" field.
func ToStageIDIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldToStageID, vs...))
}

// ToStageIDNotIn applies the NotIn predicate on the "to_stage_id" field.
func ToStageIDNotIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldToStageID, vs...))
}

// ToStageIDGT applies the GT predicate on the "to_stage_id" field.
func ToStageIDGT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldToStageID, v))
}

// ToStageIDGTE applies the GTE predicate on the "to_stage_id" field.
func ToStageIDGTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldToStageID, v))
}

// ToStageIDLT applies the LT predicate on the "to_stage_id" field.
func ToStageIDLT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldToStageID, v))
}

// ToStageIDLTE applies the LTE predicate on the "to_stage_id" field.
func ToStageIDLTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldToStageID, v))
}

// ToStageIDContains applies the Contains predicate on the "to_stage_id" field.
func ToStageIDContains(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContains(FieldToStageID, v))
}

// ToStageIDHasPrefix applies the HasPrefix predicate on the "to_stage_id" field.
func ToStageIDHasPrefix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasPrefix(FieldToStageID, v))
}

// ToStageIDHasSuffix applies the HasSuffix predicate on the "to_stage_id" field.
func ToStageIDHasSuffix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasSuffix(FieldToStageID, v))
}

// ToStageIDEqualFold applies the EqualFold predicate on the "to_stage_id" field.
func ToStageIDEqualFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEqualFold(FieldToStageID, v))
}

// ToStageIDContainsFold applies the ContainsFold predicate on the "to_stage_id" field.
func ToStageIDContainsFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContainsFold(FieldToStageID, v))
}

// AnswerTypeEQ applies the EQ predicate on the "answer_type" field.
func AnswerTypeEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldAnswerType, v))
}

// AnswerTypeNEQ applies the NEQ predicate on the "answer_type" field.
func AnswerTypeNEQ(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldAnswerType, v))
}

// AnswerTypeIn applies the In predicate on the "answer_type" field.
func AnswerTypeIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldAnswerType, vs...))
}

// AnswerTypeNotIn applies the NotIn predicate on the "answer_type" field.
func AnswerTypeNotIn(vs ...string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldAnswerType, vs...))
}

// AnswerTypeGT applies the GT predicate on the "answer_type" field.
func AnswerTypeGT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldAnswerType, v))
}

// AnswerTypeGTE applies the GTE predicate on the "answer_type" field.
func AnswerTypeGTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldAnswerType, v))
}

// AnswerTypeLT applies the LT predicate on the "answer_type" field.
func AnswerTypeLT(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldAnswerType, v))
}

// AnswerTypeLTE applies the LTE predicate on the "answer_type" field.
func AnswerTypeLTE(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldAnswerType, v))
}

// AnswerTypeContains applies the Contains predicate on the "answer_type" field.
func AnswerTypeContains(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContains(FieldAnswerType, v))
}

// AnswerTypeHasPrefix applies the HasPrefix predicate on the "answer_type" field.
func AnswerTypeHasPrefix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasPrefix(FieldAnswerType, v))
}

// AnswerTypeHasSuffix applies the HasSuffix predicate on the "answer_type" field.
func AnswerTypeHasSuffix(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldHasSuffix(FieldAnswerType, v))
}

// AnswerTypeEqualFold applies the EqualFold predicate on the "answer_type" field.
func AnswerTypeEqualFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEqualFold(FieldAnswerType, v))
}

// AnswerTypeContainsFold applies the ContainsFold predicate on the "answer_type" field.
func AnswerTypeContainsFold(v string) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldContainsFold(FieldAnswerType, v))
}

// ConsecutiveCountEQ applies the EQ predicate on the "consecutive_count" field.
func ConsecutiveCountEQ(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldEQ(FieldConsecutiveCount, v))
}

// ConsecutiveCountNEQ applies the NEQ predicate on the "consecutive_count" field.
func ConsecutiveCountNEQ(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNEQ(FieldConsecutiveCount, v))
}

// ConsecutiveCountIn applies the In predicate on the "consecutive_count" field.
func ConsecutiveCountIn(vs ...int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldIn(FieldConsecutiveCount, vs...))
}

// ConsecutiveCountNotIn applies the NotIn predicate on the "consecutive_count" field.
func ConsecutiveCountNotIn(vs ...int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldNotIn(FieldConsecutiveCount, vs...))
}

// ConsecutiveCountGT applies the GT predicate on the "consecutive_count" field.
func ConsecutiveCountGT(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGT(FieldConsecutiveCount, v))
}

// ConsecutiveCountGTE applies the GTE predicate on the "consecutive_count" field.
func ConsecutiveCountGTE(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldGTE(FieldConsecutiveCount, v))
}

// ConsecutiveCountLT applies the LT predicate on the "consecutive_count" field.
func ConsecutiveCountLT(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLT(FieldConsecutiveCount, v))
}

// ConsecutiveCountLTE applies the LTE predicate on the "consecutive_count" field.
func ConsecutiveCountLTE(v int) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.FieldLTE(FieldConsecutiveCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressionEvent) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressionEvent) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressionEvent) predicate.ProgressionEvent {
	return predicate.ProgressionEvent(sql.NotPredicates(p))
}
