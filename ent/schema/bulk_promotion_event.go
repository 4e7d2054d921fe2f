package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BulkPromotionEvent records an aggregate sibling promotion.
type BulkPromotionEvent struct {
	ent.Schema
}

func (BulkPromotionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BulkPromotionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("fact_set_id").NotEmpty(),
		field.Int("promoted_facts_count"),
		field.Int("consecutive_correct"),
		field.Float("coverage_percent"),
	}
}

func (BulkPromotionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fact_set_id"),
	}
}
