package store

import (
	"context"

	"github.com/abiral/fluency/internal/promotion"
)

// EventSink adapts an EventRepo to the promotion event interface.
// Appends are fire-and-forget: a failed write never fails the answer
// that produced the event.
type EventSink struct {
	Repo EventRepo
}

func (s *EventSink) FactProgressed(e promotion.Event) {
	if s.Repo == nil {
		return
	}
	_ = s.Repo.AppendProgressionEvent(context.Background(), ProgressionEventData{
		FactID:           e.FactID,
		FactSetID:        e.FactSetID,
		FromStageID:      e.FromStageID,
		ToStageID:        e.ToStageID,
		AnswerType:       string(e.AnswerType),
		ConsecutiveCount: e.ConsecutiveCount,
	})
}

func (s *EventSink) BulkPromoted(e promotion.BulkEvent) {
	if s.Repo == nil {
		return
	}
	_ = s.Repo.AppendBulkPromotionEvent(context.Background(), BulkPromotionEventData{
		FactSetID:          e.FactSetID,
		PromotedFactsCount: e.PromotedFactsCount,
		ConsecutiveCorrect: e.ConsecutiveCorrect,
		CoveragePercent:    e.CoveragePercent,
	})
}
