package promotion

import (
	"time"

	"github.com/abiral/fluency/internal/student"
)

// Event records one fact's stage transition.
type Event struct {
	FactID           string
	FactSetID        string
	FromStageID      string
	ToStageID        string
	AnswerType       student.AnswerType
	ConsecutiveCount int
	Timestamp        time.Time
}

// BulkEvent aggregates a sibling bulk promotion. Individual Events are
// still fired for each promoted fact.
type BulkEvent struct {
	FactSetID          string
	PromotedFactsCount int
	ConsecutiveCorrect int
	CoveragePercent    float64
	Timestamp          time.Time
}

// Sink consumes progression events. Events are fire-and-forget: a nil
// sink is valid and a sink must not fail the caller.
type Sink interface {
	FactProgressed(e Event)
	BulkPromoted(e BulkEvent)
}
