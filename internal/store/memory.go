package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStateStore is an in-memory StateStore for tests and for
// embedding the engine without a database.
type MemoryStateStore struct {
	mu  sync.Mutex
	raw json.RawMessage
}

func (m *MemoryStateStore) Exists(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw != nil, nil
}

func (m *MemoryStateStore) Load(_ context.Context) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw == nil {
		return nil, nil
	}
	out := make(json.RawMessage, len(m.raw))
	copy(out, m.raw)
	return out, nil
}

func (m *MemoryStateStore) Save(_ context.Context, raw json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = make(json.RawMessage, len(raw))
	copy(m.raw, raw)
	return nil
}

// MemoryEventRepo is an in-memory EventRepo counterpart.
type MemoryEventRepo struct {
	mu           sync.Mutex
	seq          int64
	Answers      []AnswerEventRecord
	Progressions []ProgressionEventRecord
	Bulk         []BulkPromotionEventData
}

func (m *MemoryEventRepo) next() int64 {
	m.seq++
	return m.seq
}

func (m *MemoryEventRepo) AppendAnswerEvent(_ context.Context, data AnswerEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Answers = append(m.Answers, AnswerEventRecord{
		Sequence:        m.next(),
		Timestamp:       time.Now().UTC(),
		AnswerEventData: data,
	})
	return nil
}

func (m *MemoryEventRepo) AppendProgressionEvent(_ context.Context, data ProgressionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Progressions = append(m.Progressions, ProgressionEventRecord{
		Sequence:             m.next(),
		Timestamp:            time.Now().UTC(),
		ProgressionEventData: data,
	})
	return nil
}

func (m *MemoryEventRepo) AppendBulkPromotionEvent(_ context.Context, data BulkPromotionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next()
	m.Bulk = append(m.Bulk, data)
	return nil
}

func (m *MemoryEventRepo) AnswerAccuracy(_ context.Context) (float64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Answers) == 0 {
		return 0, 0, nil
	}
	correct := 0
	for _, a := range m.Answers {
		if a.AnswerType == "correct" {
			correct++
		}
	}
	return float64(correct) / float64(len(m.Answers)), len(m.Answers), nil
}

func (m *MemoryEventRepo) RecentAnswerEvents(_ context.Context, limit int) ([]AnswerEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastN(m.Answers, limit), nil
}

func (m *MemoryEventRepo) RecentProgressions(_ context.Context, limit int) ([]ProgressionEventRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return lastN(m.Progressions, limit), nil
}

// lastN returns up to n trailing elements, newest first.
func lastN[T any](xs []T, n int) []T {
	if n <= 0 || n > len(xs) {
		n = len(xs)
	}
	out := make([]T, 0, n)
	for i := len(xs) - 1; i >= len(xs)-n; i-- {
		out = append(out, xs[i])
	}
	return out
}
