// Code generated by ent, DO NOT EDIT.

package bulkpromotionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abiral/fluency/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// FactSetID applies equality check predicate on the "fact_set_id" field. It's identical to FactSetIDEQ.
func FactSetID(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldFactSetID, v))
}

// PromotedFactsCount applies equality check predicate on the "promoted_facts_count" field. It's identical to PromotedFactsCountEQ.
func PromotedFactsCount(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldPromotedFactsCount, v))
}

// ConsecutiveCorrect applies equality check predicate on the "consecutive_correct" field. It's identical to ConsecutiveCorrectEQ.
func ConsecutiveCorrect(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// CoveragePercent applies equality check predicate on the "coverage_percent" field. It's identical to CoveragePercentEQ.
func CoveragePercent(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldCoveragePercent, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// FactSetIDEQ applies the EQ predicate on the "fact_set_id" field.
func FactSetIDEQ(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldFactSetID, v))
}

// FactSetIDNEQ applies the NEQ predicate on the "fact_set_id" field.
func FactSetIDNEQ(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldFactSetID, v))
}

// FactSetIDIn applies the In predicate on the "fact_set_id" field.
func FactSetIDIn(vs ...string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldFactSetID, vs...))
}

// FactSetIDNotIn applies the NotIn predicate on the "fact_set_id" field.
func FactSetIDNotIn(vs ...string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldFactSetID, vs...))
}

// FactSetIDGT applies the GT predicate on the "fact_set_id" field.
func FactSetIDGT(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldFactSetID, v))
}

// FactSetIDGTE applies the GTE predicate on the "fact_set_id" field.
func FactSetIDGTE(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldFactSetID, v))
}

// FactSetIDLT applies the LT predicate on the "fact_set_id" field.
func FactSetIDLT(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldFactSetID, v))
}

// FactSetIDLTE applies the LTE predicate on the "fact_set_id" field.
func FactSetIDLTE(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldFactSetID, v))
}

// FactSetIDContains applies the Contains predicate on the "fact_set_id" field.
func FactSetIDContains(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldContains(FieldFactSetID, v))
}

// FactSetIDHasPrefix applies the HasPrefix predicate on the "fact_set_id" field.
func FactSetIDHasPrefix(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldHasPrefix(FieldFactSetID, v))
}

// FactSetIDHasSuffix applies the HasSuffix predicate on the "fact_set_id" field.
func FactSetIDHasSuffix(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldHasSuffix(FieldFactSetID, v))
}

// FactSetIDEqualFold applies the EqualFold predicate on the "fact_set_id" field.
func FactSetIDEqualFold(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEqualFold(FieldFactSetID, v))
}

// FactSetIDContainsFold applies the ContainsFold predicate on the "fact_set_id" field.
func FactSetIDContainsFold(v string) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldContainsFold(FieldFactSetID, v))
}

// PromotedFactsCountEQ applies the EQ predicate on the "promoted_facts_count" field.
func PromotedFactsCountEQ(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldPromotedFactsCount, v))
}

// PromotedFactsCountNEQ applies the NEQ predicate on the "promoted_facts_count" field.
func PromotedFactsCountNEQ(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldPromotedFactsCount, v))
}

// PromotedFactsCountIn applies the In predicate on the "promoted_facts_count" field.
func PromotedFactsCountIn(vs ...int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldPromotedFactsCount, vs...))
}

// PromotedFactsCountNotIn applies the NotIn predicate on the "promoted_facts_count" field.
func PromotedFactsCountNotIn(vs ...int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldPromotedFactsCount, vs...))
}

// PromotedFactsCountGT applies the GT predicate on the "promoted_facts_count" field.
func PromotedFactsCountGT(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldPromotedFactsCount, v))
}

// PromotedFactsCountGTE applies the GTE predicate on the "promoted_facts_count" field.
func PromotedFactsCountGTE(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldPromotedFactsCount, v))
}

// PromotedFactsCountLT applies the LT predicate on the "promoted_facts_count" field.
func PromotedFactsCountLT(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldPromotedFactsCount, v))
}

// PromotedFactsCountLTE applies the LTE predicate on the "promoted_facts_count" field.
func PromotedFactsCountLTE(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldPromotedFactsCount, v))
}

// ConsecutiveCorrectEQ applies the EQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectEQ(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectNEQ applies the NEQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNEQ(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectIn applies the In predicate on the "consecutive_correct" field.
func ConsecutiveCorrectIn(vs ...int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectNotIn applies the NotIn predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNotIn(vs ...int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectGT applies the GT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGT(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectGTE applies the GTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGTE(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLT applies the LT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLT(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLTE applies the LTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLTE(v int) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldConsecutiveCorrect, v))
}

// CoveragePercentEQ applies the EQ predicate on the "coverage_percent" field.
func CoveragePercentEQ(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldEQ(FieldCoveragePercent, v))
}

// CoveragePercentNEQ applies the NEQ predicate on the "coverage_percent" field.
func CoveragePercentNEQ(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNEQ(FieldCoveragePercent, v))
}

// CoveragePercentIn applies the In predicate on the "coverage_percent" field.
func CoveragePercentIn(vs ...float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldIn(FieldCoveragePercent, vs...))
}

// CoveragePercentNotIn applies the NotIn predicate on the "coverage_percent" field.
func CoveragePercentNotIn(vs ...float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldNotIn(FieldCoveragePercent, vs...))
}

// CoveragePercentGT applies the GT predicate on the "coverage_percent" field.
func CoveragePercentGT(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGT(FieldCoveragePercent, v))
}

// CoveragePercentGTE applies the GTE predicate on the "coverage_percent" field.
func CoveragePercentGTE(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldGTE(FieldCoveragePercent, v))
}

// CoveragePercentLT applies the LT predicate on the "coverage_percent" field.
func CoveragePercentLT(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLT(FieldCoveragePercent, v))
}

// CoveragePercentLTE applies the LTE predicate on the "coverage_percent" field.
func CoveragePercentLTE(v float64) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.FieldLTE(FieldCoveragePercent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BulkPromotionEvent) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BulkPromotionEvent) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BulkPromotionEvent) predicate.BulkPromotionEvent {
	return predicate.BulkPromotionEvent(sql.NotPredicates(p))
}
