package student

import "time"

// CurrentVersion is the schema version written by this build.
//
// History:
//
//	1: single signed streak per fact, bool answer log
//	2: split streak counters, typed answers with stage context
//	3: per-fact aggregate stats, known-fact flag on answer records
const CurrentVersion = 3

// stateV1 is the original stored shape. A fact carried one signed
// streak (positive = correct run, negative = incorrect run) and the
// answer log recorded only correctness.
type stateV1 struct {
	CreatedAt time.Time    `json:"created_at"`
	Facts     []factItemV1 `json:"facts"`
	Answers   []answerV1   `json:"answers"`
}

type factItemV1 struct {
	FactID    string     `json:"fact_id"`
	FactSetID string     `json:"fact_set_id"`
	StageID   string     `json:"stage_id"`
	LastAsked *time.Time `json:"last_asked,omitempty"`
	Streak    int        `json:"streak"`
}

type answerV1 struct {
	FactID    string    `json:"fact_id"`
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// stateV2 split the signed streak into two counters, added tie-break
// jitter, and gave answer records their stage and set context.
type stateV2 struct {
	CreatedAt time.Time    `json:"created_at"`
	Facts     []factItemV2 `json:"facts"`
	Answers   []answerV2   `json:"answers"`
}

type factItemV2 struct {
	FactID               string     `json:"fact_id"`
	FactSetID            string     `json:"fact_set_id"`
	StageID              string     `json:"stage_id"`
	LastAsked            *time.Time `json:"last_asked,omitempty"`
	ConsecutiveCorrect   int        `json:"consecutive_correct"`
	ConsecutiveIncorrect int        `json:"consecutive_incorrect"`
	RandomFactor         float64    `json:"random_factor"`
}

type answerV2 struct {
	FactID    string    `json:"fact_id"`
	FactSetID string    `json:"fact_set_id"`
	StageID   string    `json:"stage_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
