package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressionEvent records a fact's stage transition.
type ProgressionEvent struct {
	ent.Schema
}

func (ProgressionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("fact_id").NotEmpty(),
		field.String("fact_set_id").NotEmpty(),
		field.String("from_stage_id").NotEmpty(),
		field.String("to_stage_id").NotEmpty(),
		field.String("answer_type").NotEmpty(),
		field.Int("consecutive_count"),
	}
}

func (ProgressionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fact_id"),
		index.Fields("fact_set_id"),
	}
}
