// Package student holds the persisted per-learner record and the
// versioned migration chain that upgrades old stored shapes to the
// current one.
package student

import (
	"time"

	"github.com/abiral/fluency/internal/content"
)

// AnswerType classifies the outcome of one presented question.
type AnswerType string

const (
	AnswerCorrect   AnswerType = "correct"
	AnswerIncorrect AnswerType = "incorrect"
	AnswerSkipped   AnswerType = "skipped"
	AnswerTimedOut  AnswerType = "timed_out"
)

// FactItem tracks one learner's progress on one fact.
//
// ConsecutiveCorrect and ConsecutiveIncorrect are never both nonzero:
// every recorded answer resets the opposite counter first.
type FactItem struct {
	FactID    string `json:"fact_id"`
	FactSetID string `json:"fact_set_id"`
	StageID   string `json:"stage_id"`

	// LastAsked is nil while the fact has never been shown.
	LastAsked *time.Time `json:"last_asked,omitempty"`

	ConsecutiveCorrect   int `json:"consecutive_correct"`
	ConsecutiveIncorrect int `json:"consecutive_incorrect"`

	// RandomFactor is tie-break jitter, regenerated each time the fact
	// is asked.
	RandomFactor float64 `json:"random_factor"`
}

// AnswerRecord is an immutable log entry for one submitted answer.
type AnswerRecord struct {
	FactID       string     `json:"fact_id"`
	FactSetID    string     `json:"fact_set_id"`
	StageID      string     `json:"stage_id"`
	Type         AnswerType `json:"type"`
	Timestamp    time.Time  `json:"timestamp"`
	WasKnownFact bool       `json:"was_known_fact"`
}

// FactStats aggregates lifetime per-fact counters.
type FactStats struct {
	TimesShown     int        `json:"times_shown"`
	TimesCorrect   int        `json:"times_correct"`
	TimesIncorrect int        `json:"times_incorrect"`
	LastSeen       *time.Time `json:"last_seen,omitempty"`
}

// State is the versioned per-learner aggregate root.
type State struct {
	Version       int                   `json:"version"`
	CreatedAt     time.Time             `json:"created_at"`
	Facts         []*FactItem           `json:"facts"`
	AnswerHistory []AnswerRecord        `json:"answer_history"`
	Stats         map[string]*FactStats `json:"stats"`
}

// DefaultHistoryLimit bounds the retained answer history used for
// ratio and difficulty calculations.
const DefaultHistoryLimit = 100

// NewState synthesizes a fresh record: one FactItem per fact, all
// seeded at firstStageID, never shown.
func NewState(now time.Time, firstStageID string, facts []content.Fact) *State {
	st := &State{
		Version:   CurrentVersion,
		CreatedAt: now,
		Stats:     make(map[string]*FactStats),
	}
	for _, f := range facts {
		st.Facts = append(st.Facts, &FactItem{
			FactID:    f.ID,
			FactSetID: f.FactSetID,
			StageID:   firstStageID,
		})
	}
	return st
}

// Item returns the FactItem for factID, or nil if untracked.
func (st *State) Item(factID string) *FactItem {
	for _, fi := range st.Facts {
		if fi.FactID == factID {
			return fi
		}
	}
	return nil
}

// ItemsInSet returns the FactItems belonging to a fact set.
func (st *State) ItemsInSet(factSetID string) []*FactItem {
	var out []*FactItem
	for _, fi := range st.Facts {
		if fi.FactSetID == factSetID {
			out = append(out, fi)
		}
	}
	return out
}

// StatsFor returns the stats entry for factID, creating it on demand.
func (st *State) StatsFor(factID string) *FactStats {
	if st.Stats == nil {
		st.Stats = make(map[string]*FactStats)
	}
	fs, ok := st.Stats[factID]
	if !ok {
		fs = &FactStats{}
		st.Stats[factID] = fs
	}
	return fs
}

// RecordAnswer appends rec to the history (trimmed to historyLimit)
// and updates the aggregate stats.
func (st *State) RecordAnswer(rec AnswerRecord, historyLimit int) {
	st.AnswerHistory = append(st.AnswerHistory, rec)
	if historyLimit > 0 && len(st.AnswerHistory) > historyLimit {
		st.AnswerHistory = st.AnswerHistory[len(st.AnswerHistory)-historyLimit:]
	}

	fs := st.StatsFor(rec.FactID)
	fs.TimesShown++
	switch rec.Type {
	case AnswerCorrect:
		fs.TimesCorrect++
	case AnswerIncorrect, AnswerTimedOut:
		fs.TimesIncorrect++
	}
	ts := rec.Timestamp
	fs.LastSeen = &ts
}

// RecentAnswers returns up to the last n answer records, newest last.
func (st *State) RecentAnswers(n int) []AnswerRecord {
	if n <= 0 || len(st.AnswerHistory) <= n {
		return st.AnswerHistory
	}
	return st.AnswerHistory[len(st.AnswerHistory)-n:]
}

// Answered reports whether any answer has been recorded for factID.
// Skipped answers count: they are recorded outcomes even though they
// leave the streak counters alone.
func (st *State) Answered(factID string) bool {
	fs, ok := st.Stats[factID]
	if !ok {
		return false
	}
	return fs.TimesShown > 0
}
