package store

import (
	"context"
	"encoding/json"
	"time"
)

// StateStore is the persistence collaborator for one learner's
// versioned state record. Implementations are asynchronous and
// opaque; the engine never sees how records are stored.
type StateStore interface {
	// Exists reports whether a record is stored.
	Exists(ctx context.Context) (bool, error)

	// Load returns the most recent stored record, or nil if none
	// exists.
	Load(ctx context.Context) (json.RawMessage, error)

	// Save stores a new record revision.
	Save(ctx context.Context, raw json.RawMessage) error
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID    string
	FactID       string
	FactSetID    string
	StageID      string
	AnswerType   string
	WasKnownFact bool
}

// ProgressionEventData captures one fact's stage transition.
type ProgressionEventData struct {
	FactID           string
	FactSetID        string
	FromStageID      string
	ToStageID        string
	AnswerType       string
	ConsecutiveCount int
}

// BulkPromotionEventData captures an aggregate sibling promotion.
type BulkPromotionEventData struct {
	FactSetID          string
	PromotedFactsCount int
	ConsecutiveCorrect int
	CoveragePercent    float64
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// ProgressionEventRecord is a stored progression event.
type ProgressionEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ProgressionEventData
}

// EventRepo provides append and query access to the domain event log.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendProgressionEvent(ctx context.Context, data ProgressionEventData) error
	AppendBulkPromotionEvent(ctx context.Context, data BulkPromotionEventData) error

	// AnswerAccuracy returns the lifetime correct ratio and total
	// answer count.
	AnswerAccuracy(ctx context.Context) (float64, int, error)

	// RecentAnswerEvents returns up to limit most recent answer
	// events, newest first.
	RecentAnswerEvents(ctx context.Context, limit int) ([]AnswerEventRecord, error)

	// RecentProgressions returns up to limit most recent stage
	// transitions, newest first.
	RecentProgressions(ctx context.Context, limit int) ([]ProgressionEventRecord, error)
}
