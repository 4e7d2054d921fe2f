package store

import (
	"context"
	"fmt"

	"github.com/abiral/fluency/ent"
	"github.com/abiral/fluency/ent/answerevent"
	"github.com/abiral/fluency/ent/progressionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetFactID(data.FactID).
		SetFactSetID(data.FactSetID).
		SetStageID(data.StageID).
		SetAnswerType(data.AnswerType).
		SetWasKnownFact(data.WasKnownFact)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendProgressionEvent(ctx context.Context, data ProgressionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressionEvent.Create().
		SetSequence(seqNum).
		SetFactID(data.FactID).
		SetFactSetID(data.FactSetID).
		SetFromStageID(data.FromStageID).
		SetToStageID(data.ToStageID).
		SetAnswerType(data.AnswerType).
		SetConsecutiveCount(data.ConsecutiveCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progression event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendBulkPromotionEvent(ctx context.Context, data BulkPromotionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BulkPromotionEvent.Create().
		SetSequence(seqNum).
		SetFactSetID(data.FactSetID).
		SetPromotedFactsCount(data.PromotedFactsCount).
		SetConsecutiveCorrect(data.ConsecutiveCorrect).
		SetCoveragePercent(data.CoveragePercent).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save bulk promotion event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerAccuracy(ctx context.Context) (float64, int, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answers: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.AnswerType("correct")).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}

	return float64(correct) / float64(total), total, nil
}

func (r *eventRepo) RecentAnswerEvents(ctx context.Context, limit int) ([]AnswerEventRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	records := make([]AnswerEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AnswerEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				SessionID:    e.SessionID,
				FactID:       e.FactID,
				FactSetID:    e.FactSetID,
				StageID:      e.StageID,
				AnswerType:   e.AnswerType,
				WasKnownFact: e.WasKnownFact,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) RecentProgressions(ctx context.Context, limit int) ([]ProgressionEventRecord, error) {
	events, err := r.client.ProgressionEvent.Query().
		Order(ent.Desc(progressionevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progression events: %w", err)
	}

	records := make([]ProgressionEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, ProgressionEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ProgressionEventData: ProgressionEventData{
				FactID:           e.FactID,
				FactSetID:        e.FactSetID,
				FromStageID:      e.FromStageID,
				ToStageID:        e.ToStageID,
				AnswerType:       e.AnswerType,
				ConsecutiveCount: e.ConsecutiveCount,
			},
		})
	}
	return records, nil
}
