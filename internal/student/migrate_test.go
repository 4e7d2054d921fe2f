package student

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/stage"
)

func testRegistry() *Registry {
	return NewRegistry(stage.DefaultLadder())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	st := NewState(now, "assessment", content.DefaultIndex().AllFacts())
	st.Item("2x1").ConsecutiveCorrect = 2

	raw, err := Encode(st)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	got, err := testRegistry().Decode(raw)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", got.Version, CurrentVersion)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %s, want %s", got.CreatedAt, now)
	}
	if len(got.Facts) != len(st.Facts) {
		t.Errorf("len(Facts) = %d, want %d", len(got.Facts), len(st.Facts))
	}
	if got.Item("2x1").ConsecutiveCorrect != 2 {
		t.Errorf("2x1 ConsecutiveCorrect = %d, want 2", got.Item("2x1").ConsecutiveCorrect)
	}
}

func TestDecode_V1Envelope(t *testing.T) {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	asked := created.Add(time.Hour)
	v1 := stateV1{
		CreatedAt: created,
		Facts: []factItemV1{
			{FactID: "3x4", FactSetID: "times-3", StageID: "practice-slow", LastAsked: &asked, Streak: 2},
			{FactID: "3x5", FactSetID: "times-3", StageID: "grounding", Streak: -3},
		},
		Answers: []answerV1{
			{FactID: "3x4", Correct: true, Timestamp: created.Add(30 * time.Minute)},
			{FactID: "3x4", Correct: true, Timestamp: asked},
			{FactID: "3x5", Correct: false, Timestamp: asked},
		},
	}
	payload, err := json.Marshal(v1)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(envelope{Version: 1, Payload: payload})
	if err != nil {
		t.Fatal(err)
	}

	st, err := testRegistry().Decode(raw)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if st.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", st.Version, CurrentVersion)
	}
	if !st.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %s, want %s", st.CreatedAt, created)
	}

	item := st.Item("3x4")
	if item == nil {
		t.Fatal("Item(3x4) = nil")
	}
	if item.ConsecutiveCorrect != 2 || item.ConsecutiveIncorrect != 0 {
		t.Errorf("3x4 streaks = %d/%d, want 2/0", item.ConsecutiveCorrect, item.ConsecutiveIncorrect)
	}
	if item.LastAsked == nil || !item.LastAsked.Equal(asked) {
		t.Errorf("3x4 LastAsked = %v, want %s", item.LastAsked, asked)
	}

	item = st.Item("3x5")
	if item.ConsecutiveCorrect != 0 || item.ConsecutiveIncorrect != 3 {
		t.Errorf("3x5 streaks = %d/%d, want 0/3", item.ConsecutiveCorrect, item.ConsecutiveIncorrect)
	}

	// Stats were rebuilt from the answer log.
	fs := st.Stats["3x4"]
	if fs == nil || fs.TimesShown != 2 || fs.TimesCorrect != 2 {
		t.Errorf("3x4 stats = %+v, want shown 2, correct 2", fs)
	}
	fs = st.Stats["3x5"]
	if fs == nil || fs.TimesIncorrect != 1 {
		t.Errorf("3x5 stats = %+v, want incorrect 1", fs)
	}

	// V1 answers inherit the fact's stage; none of these stages count
	// as known facts.
	for _, rec := range st.AnswerHistory {
		if rec.WasKnownFact {
			t.Errorf("answer for %s at %s WasKnownFact = true, want false", rec.FactID, rec.StageID)
		}
	}
}

func TestDecode_V2Envelope_KnownFactDerivation(t *testing.T) {
	v2 := stateV2{
		CreatedAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Facts: []factItemV2{
			{FactID: "6x7", FactSetID: "times-6", StageID: "review-2m", ConsecutiveCorrect: 1},
		},
		Answers: []answerV2{
			{FactID: "6x7", FactSetID: "times-6", StageID: "review-2m", Type: "correct", Timestamp: time.Now().UTC()},
			{FactID: "6x7", FactSetID: "times-6", StageID: "practice-fast", Type: "correct", Timestamp: time.Now().UTC()},
		},
	}
	payload, _ := json.Marshal(v2)
	raw, _ := json.Marshal(envelope{Version: 2, Payload: payload})

	st, err := testRegistry().Decode(raw)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !st.AnswerHistory[0].WasKnownFact {
		t.Error("review-2m answer WasKnownFact = false, want true")
	}
	if st.AnswerHistory[1].WasKnownFact {
		t.Error("practice-fast answer WasKnownFact = true, want false")
	}
}

func TestMigrate_StreakInvariantRepair(t *testing.T) {
	v2 := &stateV2{
		Facts: []factItemV2{
			{FactID: "2x2", FactSetID: "times-2", StageID: "grounding", ConsecutiveCorrect: 2, ConsecutiveIncorrect: 1},
		},
	}
	m := migrationV2ToV3{ladder: stage.DefaultLadder()}
	out, err := m.Migrate(v2)
	if err != nil {
		t.Fatalf("Migrate error: %v", err)
	}
	st := out.(*State)
	item := st.Item("2x2")
	if item.ConsecutiveCorrect != 2 || item.ConsecutiveIncorrect != 0 {
		t.Errorf("streaks = %d/%d, want 2/0", item.ConsecutiveCorrect, item.ConsecutiveIncorrect)
	}
}

func TestGetMigrationPath(t *testing.T) {
	r := testRegistry()

	path := r.GetMigrationPath(1, 3)
	if len(path) != 2 {
		t.Fatalf("len(path 1->3) = %d, want 2", len(path))
	}
	if path[0].FromVersion() != 1 || path[1].ToVersion() != 3 {
		t.Errorf("path = v%d->...->v%d, want v1->...->v3", path[0].FromVersion(), path[1].ToVersion())
	}

	if got := r.GetMigrationPath(2, 2); got == nil || len(got) != 0 {
		t.Errorf("path 2->2 = %v, want empty non-nil", got)
	}
	if got := r.GetMigrationPath(3, 1); got != nil {
		t.Errorf("path 3->1 = %v, want nil for downgrade", got)
	}
	if got := r.GetMigrationPath(0, 3); got != nil {
		t.Errorf("path 0->3 = %v, want nil for unregistered version", got)
	}
}

func TestMigrateToLatest_CurrentIsNoOp(t *testing.T) {
	st := NewState(time.Now().UTC(), "assessment", nil)
	got, err := testRegistry().MigrateToLatest(st, CurrentVersion)
	if err != nil {
		t.Fatalf("MigrateToLatest error: %v", err)
	}
	if got != st {
		t.Error("MigrateToLatest returned a new state, want the same pointer")
	}
}

func TestDecode_UnsupportedVersion(t *testing.T) {
	raw, _ := json.Marshal(envelope{Version: 99, Payload: []byte("{}")})
	if _, err := testRegistry().Decode(raw); err == nil {
		t.Error("Decode error = nil, want unsupported-version error")
	}
}

func TestRecordAnswer_TrimsHistory(t *testing.T) {
	st := NewState(time.Now().UTC(), "assessment", nil)
	for i := 0; i < 10; i++ {
		st.RecordAnswer(AnswerRecord{FactID: "2x2", Type: AnswerCorrect, Timestamp: time.Now().UTC()}, 5)
	}
	if len(st.AnswerHistory) != 5 {
		t.Errorf("len(AnswerHistory) = %d, want 5", len(st.AnswerHistory))
	}
	if st.Stats["2x2"].TimesShown != 10 {
		t.Errorf("TimesShown = %d, want 10 (stats are not trimmed)", st.Stats["2x2"].TimesShown)
	}
}

func TestAnswered_CountsSkips(t *testing.T) {
	st := NewState(time.Now().UTC(), "assessment", nil)
	if st.Answered("2x4") {
		t.Error("Answered = true before any record, want false")
	}
	st.RecordAnswer(AnswerRecord{FactID: "2x4", Type: AnswerSkipped, Timestamp: time.Now().UTC()}, 0)
	if !st.Answered("2x4") {
		t.Error("Answered = false after a skip, want true (a skip is a recorded answer)")
	}
}

func TestRecordAnswer_TimedOutCountsIncorrect(t *testing.T) {
	st := NewState(time.Now().UTC(), "assessment", nil)
	st.RecordAnswer(AnswerRecord{FactID: "2x3", Type: AnswerTimedOut, Timestamp: time.Now().UTC()}, 0)
	st.RecordAnswer(AnswerRecord{FactID: "2x3", Type: AnswerSkipped, Timestamp: time.Now().UTC()}, 0)

	fs := st.Stats["2x3"]
	if fs.TimesIncorrect != 1 {
		t.Errorf("TimesIncorrect = %d, want 1 (timeouts count, skips do not)", fs.TimesIncorrect)
	}
	if fs.TimesShown != 2 {
		t.Errorf("TimesShown = %d, want 2", fs.TimesShown)
	}
}
