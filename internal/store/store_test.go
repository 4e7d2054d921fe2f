package store

import (
	"context"
	"encoding/json"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStateStore_SaveLoad(t *testing.T) {
	s := openTestStore(t)
	states := s.StateStore("default")
	ctx := context.Background()

	exists, err := states.Exists(ctx)
	if err != nil {
		t.Fatalf("exists (empty): %v", err)
	}
	if exists {
		t.Fatal("Exists = true before any save")
	}
	raw, err := states.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if raw != nil {
		t.Fatal("Load returned data before any save, want nil")
	}

	first := json.RawMessage(`{"version":3,"payload":{"n":1}}`)
	if err := states.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := json.RawMessage(`{"version":3,"payload":{"n":2}}`)
	if err := states.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	raw, err = states.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(raw) != string(second) {
		t.Errorf("Load = %s, want the most recent revision", raw)
	}
}

func TestStateStore_LearnersAreIsolated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.StateStore("alpha").Save(ctx, json.RawMessage(`{"a":1}`)); err != nil {
		t.Fatalf("save alpha: %v", err)
	}
	raw, err := s.StateStore("beta").Load(ctx)
	if err != nil {
		t.Fatalf("load beta: %v", err)
	}
	if raw != nil {
		t.Errorf("beta Load = %s, want nil (learner records are keyed)", raw)
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "sess-1", FactID: "2x1", FactSetID: "times-2", StageID: "assessment", AnswerType: "correct"},
		{FactID: "2x2", FactSetID: "times-2", StageID: "assessment", AnswerType: "incorrect"},
		{FactID: "2x1", FactSetID: "times-2", StageID: "grounding", AnswerType: "correct", WasKnownFact: false},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	accuracy, total, err := repo.AnswerAccuracy(ctx)
	if err != nil {
		t.Fatalf("answer accuracy: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if accuracy < 0.66 || accuracy > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", accuracy)
	}

	recent, err := repo.RecentAnswerEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent answers: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].FactID != "2x1" || recent[0].StageID != "grounding" {
		t.Errorf("recent[0] = %+v, want the newest event first", recent[0])
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Errorf("sequences = %d, %d, want strictly descending", recent[0].Sequence, recent[1].Sequence)
	}
}

func TestEventRepo_Progressions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendProgressionEvent(ctx, ProgressionEventData{
		FactID:           "3x4",
		FactSetID:        "times-3",
		FromStageID:      "grounding",
		ToStageID:        "practice-slow",
		AnswerType:       "correct",
		ConsecutiveCount: 2,
	})
	if err != nil {
		t.Fatalf("append progression: %v", err)
	}

	got, err := repo.RecentProgressions(ctx, 10)
	if err != nil {
		t.Fatalf("recent progressions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].FromStageID != "grounding" || got[0].ToStageID != "practice-slow" {
		t.Errorf("got %+v, want grounding -> practice-slow", got[0])
	}
}

func TestSequenceSpansTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{FactID: "2x1", FactSetID: "times-2", StageID: "assessment", AnswerType: "correct"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendProgressionEvent(ctx, ProgressionEventData{FactID: "2x1", FactSetID: "times-2", FromStageID: "assessment", ToStageID: "grounding", AnswerType: "correct", ConsecutiveCount: 1}); err != nil {
		t.Fatal(err)
	}

	answers, _ := repo.RecentAnswerEvents(ctx, 1)
	progs, _ := repo.RecentProgressions(ctx, 1)
	if len(answers) != 1 || len(progs) != 1 {
		t.Fatal("expected one event of each kind")
	}
	if answers[0].Sequence == progs[0].Sequence {
		t.Errorf("sequence %d reused across tables, want a global ordering", answers[0].Sequence)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.StateStore("default").Save(ctx, json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.EventRepo().AppendAnswerEvent(ctx, AnswerEventData{FactID: "2x1", FactSetID: "times-2", StageID: "assessment", AnswerType: "correct"}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	raw, err := s.StateStore("default").Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if raw != nil {
		t.Error("state survived Reset")
	}
	_, total, err := s.EventRepo().AnswerAccuracy(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("total answers = %d after Reset, want 0", total)
	}
}
