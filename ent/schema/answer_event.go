package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one submitted answer for audit and statistics.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("fact_id").NotEmpty(),
		field.String("fact_set_id").NotEmpty(),
		field.String("stage_id").NotEmpty(),
		field.String("answer_type").NotEmpty(),
		field.Bool("was_known_fact"),
		field.String("session_id").Optional(),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fact_id"),
		index.Fields("session_id"),
	}
}
