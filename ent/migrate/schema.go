// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "fact_id", Type: field.TypeString},
		{Name: "fact_set_id", Type: field.TypeString},
		{Name: "stage_id", Type: field.TypeString},
		{Name: "answer_type", Type: field.TypeString},
		{Name: "was_known_fact", Type: field.TypeBool},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_fact_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// BulkPromotionEventsColumns holds the columns for the "bulk_promotion_events" table.
	BulkPromotionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "fact_set_id", Type: field.TypeString},
		{Name: "promoted_facts_count", Type: field.TypeInt},
		{Name: "consecutive_correct", Type: field.TypeInt},
		{Name: "coverage_percent", Type: field.TypeFloat64},
	}
	// BulkPromotionEventsTable holds the schema information for the "bulk_promotion_events" table.
	BulkPromotionEventsTable = &schema.Table{
		Name:       "bulk_promotion_events",
		Columns:    BulkPromotionEventsColumns,
		PrimaryKey: []*schema.Column{BulkPromotionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bulkpromotionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BulkPromotionEventsColumns[1]},
			},
			{
				Name:    "bulkpromotionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BulkPromotionEventsColumns[2]},
			},
			{
				Name:    "bulkpromotionevent_fact_set_id",
				Unique:  false,
				Columns: []*schema.Column{BulkPromotionEventsColumns[3]},
			},
		},
	}
	// ProgressionEventsColumns holds the columns for the "progression_events" table.
	ProgressionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "fact_id", Type: field.TypeString},
		{Name: "fact_set_id", Type: field.TypeString},
		{Name: "from_stage_id", Type: field.TypeString},
		{Name: "to_stage_id", Type: field.TypeString},
		{Name: "answer_type", Type: field.TypeString},
		{Name: "consecutive_count", Type: field.TypeInt},
	}
	// ProgressionEventsTable holds the schema information for the "progression_events" table.
	ProgressionEventsTable = &schema.Table{
		Name:       "progression_events",
		Columns:    ProgressionEventsColumns,
		PrimaryKey: []*schema.Column{ProgressionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressionEventsColumns[1]},
			},
			{
				Name:    "progressionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressionEventsColumns[2]},
			},
			{
				Name:    "progressionevent_fact_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressionEventsColumns[3]},
			},
			{
				Name:    "progressionevent_fact_set_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		BulkPromotionEventsTable,
		ProgressionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
