package store

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMemoryStateStore(t *testing.T) {
	m := &MemoryStateStore{}
	ctx := context.Background()

	exists, err := m.Exists(ctx)
	if err != nil || exists {
		t.Fatalf("Exists = %v, %v, want false, nil", exists, err)
	}

	raw := json.RawMessage(`{"version":3}`)
	if err := m.Save(ctx, raw); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("Load = %s, want %s", got, raw)
	}

	// The stored copy is independent of the caller's slice.
	raw[2] = 'X'
	got, _ = m.Load(ctx)
	if string(got) != `{"version":3}` {
		t.Errorf("Load = %s after caller mutation, want the original bytes", got)
	}
}

func TestMemoryEventRepo(t *testing.T) {
	m := &MemoryEventRepo{}
	ctx := context.Background()

	for i, typ := range []string{"correct", "correct", "incorrect", "correct"} {
		err := m.AppendAnswerEvent(ctx, AnswerEventData{
			FactID:     "2x1",
			AnswerType: typ,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	accuracy, total, err := m.AnswerAccuracy(ctx)
	if err != nil {
		t.Fatalf("AnswerAccuracy: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", accuracy)
	}

	recent, err := m.RecentAnswerEvents(ctx, 2)
	if err != nil {
		t.Fatalf("RecentAnswerEvents: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].Sequence != 4 || recent[1].Sequence != 3 {
		t.Errorf("sequences = %d, %d, want 4, 3 (newest first)", recent[0].Sequence, recent[1].Sequence)
	}
}

func TestMemoryEventRepo_EmptyAccuracy(t *testing.T) {
	m := &MemoryEventRepo{}
	accuracy, total, err := m.AnswerAccuracy(context.Background())
	if err != nil {
		t.Fatalf("AnswerAccuracy: %v", err)
	}
	if accuracy != 0 || total != 0 {
		t.Errorf("accuracy, total = %v, %d, want 0, 0", accuracy, total)
	}
}
