// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abiral/fluency/ent/answerevent"
	"github.com/abiral/fluency/ent/bulkpromotionevent"
	"github.com/abiral/fluency/ent/progressionevent"
	"github.com/abiral/fluency/ent/schema"
	"github.com/abiral/fluency/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescFactID is the schema descriptor for fact_id field.
	answereventDescFactID := answereventFields[0].Descriptor()
	// answerevent.FactIDValidator is a validator for the "fact_id" field. It is called by the builders before save.
	answerevent.FactIDValidator = answereventDescFactID.Validators[0].(func(string) error)
	// answereventDescFactSetID is the schema descriptor for fact_set_id field.
	answereventDescFactSetID := answereventFields[1].Descriptor()
	// answerevent.FactSetIDValidator is a validator for the "fact_set_id" field. It is called by the builders before save.
	answerevent.FactSetIDValidator = answereventDescFactSetID.Validators[0].(func(string) error)
	// answereventDescStageID is the schema descriptor for stage_id field.
	answereventDescStageID := answereventFields[2].Descriptor()
	// answerevent.StageIDValidator is a validator for the "stage_id" field. It is called by the builders before save.
	answerevent.StageIDValidator = answereventDescStageID.Validators[0].(func(string) error)
	// answereventDescAnswerType is the schema descriptor for answer_type field.
	answereventDescAnswerType := answereventFields[3].Descriptor()
	// answerevent.AnswerTypeValidator is a validator for the "answer_type" field. It is called by the builders before save.
	answerevent.AnswerTypeValidator = answereventDescAnswerType.Validators[0].(func(string) error)
	bulkpromotioneventMixin := schema.BulkPromotionEvent{}.Mixin()
	bulkpromotioneventMixinFields0 := bulkpromotioneventMixin[0].Fields()
	_ = bulkpromotioneventMixinFields0
	bulkpromotioneventFields := schema.BulkPromotionEvent{}.Fields()
	_ = bulkpromotioneventFields
	// bulkpromotioneventDescTimestamp is the schema descriptor for timestamp field.
	bulkpromotioneventDescTimestamp := bulkpromotioneventMixinFields0[1].Descriptor()
	// bulkpromotionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	bulkpromotionevent.DefaultTimestamp = bulkpromotioneventDescTimestamp.Default.(func() time.Time)
	// bulkpromotioneventDescFactSetID is the schema descriptor for fact_set_id field.
	bulkpromotioneventDescFactSetID := bulkpromotioneventFields[0].Descriptor()
	// bulkpromotionevent.FactSetIDValidator is a validator for the "fact_set_id" field. It is called by the builders before save.
	bulkpromotionevent.FactSetIDValidator = bulkpromotioneventDescFactSetID.Validators[0].(func(string) error)
	progressioneventMixin := schema.ProgressionEvent{}.Mixin()
	progressioneventMixinFields0 := progressioneventMixin[0].Fields()
	_ = progressioneventMixinFields0
	progressioneventFields := schema.ProgressionEvent{}.Fields()
	_ = progressioneventFields
	// progressioneventDescTimestamp is the schema descriptor for timestamp field.
	progressioneventDescTimestamp := progressioneventMixinFields0[1].Descriptor()
	// progressionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressionevent.DefaultTimestamp = progressioneventDescTimestamp.Default.(func() time.Time)
	// progressioneventDescFactID is the schema descriptor for fact_id field.
	progressioneventDescFactID := progressioneventFields[0].Descriptor()
	// progressionevent.FactIDValidator is a validator for the "fact_id" field. It is called by the builders before save.
	progressionevent.FactIDValidator = progressioneventDescFactID.Validators[0].(func(string) error)
	// progressioneventDescFactSetID is the schema descriptor for fact_set_id field.
	progressioneventDescFactSetID := progressioneventFields[1].Descriptor()
	// progressionevent.FactSetIDValidator is a validator for the "fact_set_id" field. It is called by the builders before save.
	progressionevent.FactSetIDValidator = progressioneventDescFactSetID.Validators[0].(func(string) error)
	// progressioneventDescFromStageID is the schema descriptor for from_stage_id field.
	progressioneventDescFromStageID := progressioneventFields[2].Descriptor()
	// progressionevent.FromStageIDValidator is a validator for the "from_stage_id" field. It is called by the builders before save.
	progressionevent.FromStageIDValidator = progressioneventDescFromStageID.Validators[0].(func(string) error)
	// progressioneventDescToStageID is the schema descriptor for to_stage_id field.
	progressioneventDescToStageID := progressioneventFields[3].Descriptor()
	// progressionevent.ToStageIDValidator is a validator for the "to_stage_id" field. It is called by the builders before save.
	progressionevent.ToStageIDValidator = progressioneventDescToStageID.Validators[0].(func(string) error)
	// progressioneventDescAnswerType is the schema descriptor for answer_type field.
	progressioneventDescAnswerType := progressioneventFields[4].Descriptor()
	// progressionevent.AnswerTypeValidator is a validator for the "answer_type" field. It is called by the builders before save.
	progressionevent.AnswerTypeValidator = progressioneventDescAnswerType.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearner is the schema descriptor for learner field.
	snapshotDescLearner := snapshotFields[0].Descriptor()
	// snapshot.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	snapshot.LearnerValidator = snapshotDescLearner.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
