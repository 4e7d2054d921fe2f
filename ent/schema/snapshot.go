package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores one revision of a learner's versioned state record.
// Saves append new rows; loads read the newest row for the learner.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").
			NotEmpty().
			Comment("Learner key the record belongs to"),
		field.Int64("sequence").
			Comment("Event sequence number at the time of the save"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the revision was written"),
		field.Text("data").
			Comment("Versioned state record as a JSON envelope"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "sequence"),
		index.Fields("timestamp"),
	}
}
