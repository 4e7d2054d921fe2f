package selection

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/difficulty"
	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/student"
)

var t0 = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func testService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		stage.DefaultLadder(),
		content.DefaultIndex(),
		DefaultConfig(),
		rand.New(rand.NewSource(42)),
	)
}

func testState() *student.State {
	return student.NewState(t0, "assessment", content.DefaultIndex().AllFacts())
}

func testDiff() difficulty.Config {
	cfg := difficulty.DefaultDynamicConfig(stage.DefaultLadder())
	return cfg.Configs[0] // easy: MaxFactsBeingLearned 3
}

func askedAt(item *student.FactItem, at time.Time) {
	t := at
	item.LastAsked = &t
}

func TestSelectNextFact_AdmitsNewFactsInSetOrder(t *testing.T) {
	svc := testService(t)
	st := testState()

	fact, stg := svc.SelectNextFact(st, testDiff(), t0)
	if fact == nil {
		t.Fatal("SelectNextFact = nil, want the first never-shown fact")
	}
	if fact.ID != "2x1" {
		t.Errorf("fact.ID = %q, want 2x1 (first fact of the first set)", fact.ID)
	}
	if stg.ID != "assessment" {
		t.Errorf("stage.ID = %q, want assessment", stg.ID)
	}
}

func TestSelectNextFact_WorkingMemoryBound(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()

	// Fill the working set: MaxFactsBeingLearned facts introduced and
	// still unknown, all on cooldown.
	for i := 0; i < diff.MaxFactsBeingLearned; i++ {
		askedAt(st.Facts[i], t0)
	}

	fact, _ := svc.SelectNextFact(st, diff, t0.Add(time.Second))
	if fact != nil {
		t.Errorf("SelectNextFact = %s, want nil (working set full, all on cooldown)", fact.ID)
	}
}

func TestSelectNextFact_CooldownRespected(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 1

	askedAt(st.Item("2x1"), t0)

	if fact, _ := svc.SelectNextFact(st, diff, t0.Add(time.Second)); fact != nil {
		t.Errorf("got %s inside the general cooldown, want nil", fact.ID)
	}
	if fact, _ := svc.SelectNextFact(st, diff, t0.Add(5*time.Second)); fact == nil || fact.ID != "2x1" {
		t.Errorf("got %v after the cooldown, want 2x1", fact)
	}
}

func TestSelectNextFact_ReinforcementDelay(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 0 // no new admissions

	item := st.Item("2x1")
	item.StageID = "review-2m"
	askedAt(item, t0)

	if fact, _ := svc.SelectNextFact(st, diff, t0.Add(time.Minute)); fact != nil {
		t.Errorf("got %s inside the review delay, want nil", fact.ID)
	}
	if fact, _ := svc.SelectNextFact(st, diff, t0.Add(3*time.Minute)); fact == nil || fact.ID != "2x1" {
		t.Errorf("got %v after the review delay, want 2x1", fact)
	}
}

func TestSelectNextFact_OldestFirst(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 0

	askedAt(st.Item("2x1"), t0.Add(-time.Minute))
	askedAt(st.Item("2x2"), t0.Add(-2*time.Minute))
	askedAt(st.Item("2x3"), t0.Add(-30*time.Second))

	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x2" {
		t.Errorf("got %v, want 2x2 (least recently asked)", fact)
	}
}

func TestSelectNextFact_TieBreakByRandomFactor(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 0

	same := t0.Add(-time.Minute)
	a := st.Item("2x1")
	b := st.Item("2x2")
	askedAt(a, same)
	askedAt(b, same)
	a.RandomFactor = 0.9
	b.RandomFactor = 0.1

	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x2" {
		t.Errorf("got %v, want 2x2 (lower random factor wins the tie)", fact)
	}
}

func TestSelectNextFact_RatioSteersTowardKnown(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 0
	diff.KnownFactMinRatio = 0.4
	diff.KnownFactMaxRatio = 0.8

	known := st.Item("2x1")
	known.StageID = "mastered"
	askedAt(known, t0.Add(-time.Minute))

	unknown := st.Item("2x2")
	// Unknown fact is older, so it would win without ratio steering.
	askedAt(unknown, t0.Add(-2*time.Minute))

	// All recent answers on unknown facts: ratio 0 < min, prefer known.
	for i := 0; i < 5; i++ {
		st.RecordAnswer(student.AnswerRecord{
			FactID: "2x2", Type: student.AnswerCorrect,
			WasKnownFact: false, Timestamp: t0,
		}, 0)
	}

	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x1" {
		t.Errorf("got %v, want the known fact 2x1 when ratio is below minimum", fact)
	}
}

func TestSelectNextFact_RatioSteersTowardUnknown(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 0

	known := st.Item("2x1")
	known.StageID = "mastered"
	askedAt(known, t0.Add(-2*time.Minute))

	unknown := st.Item("2x2")
	askedAt(unknown, t0.Add(-time.Minute))

	// All recent answers on known facts: ratio 1 > max, prefer unknown.
	for i := 0; i < 5; i++ {
		st.RecordAnswer(student.AnswerRecord{
			FactID: "2x1", Type: student.AnswerCorrect,
			WasKnownFact: true, Timestamp: t0,
		}, 0)
	}

	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x2" {
		t.Errorf("got %v, want the unknown fact 2x2 when ratio is above maximum", fact)
	}
}

func TestSelectNextFact_FallbackWhenPreferredPoolEmpty(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()
	diff.MaxFactsBeingLearned = 0

	// Ratio says prefer known, but only an unknown fact is eligible.
	unknown := st.Item("2x2")
	askedAt(unknown, t0.Add(-time.Minute))
	for i := 0; i < 5; i++ {
		st.RecordAnswer(student.AnswerRecord{
			FactID: "2x2", Type: student.AnswerCorrect,
			WasKnownFact: false, Timestamp: t0,
		}, 0)
	}

	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x2" {
		t.Errorf("got %v, want 2x2 (selection never starves when something is eligible)", fact)
	}
}

func TestSelectNextFact_NewAdmissionBeatsCooldownWait(t *testing.T) {
	svc := testService(t)
	st := testState()
	diff := testDiff()

	// One review fact deep in cooldown; working set has room, so the
	// next never-shown fact is admitted instead of returning nil.
	item := st.Item("2x1")
	item.StageID = "review-8m"
	askedAt(item, t0)

	fact, stg := svc.SelectNextFact(st, diff, t0.Add(10*time.Second))
	if fact == nil || fact.ID != "2x2" {
		t.Errorf("got %v, want the never-shown 2x2", fact)
	}
	if stg != nil && stg.ID != "assessment" {
		t.Errorf("stage = %q, want assessment for a new fact", stg.ID)
	}
}

func TestSelectNextFact_IgnoresFactsMissingFromIndex(t *testing.T) {
	// State written under the full tables, then the content shrunk to a
	// one-fact pack. The orphaned item is older than everything else
	// and must not win selection and resolve to nothing.
	sets := []content.FactSet{{
		ID:    "mini",
		Name:  "mini pack",
		Facts: []content.Fact{content.NewFact(2, 1, "mini")},
	}}
	idx, err := content.NewIndex(sets)
	if err != nil {
		t.Fatalf("NewIndex error: %v", err)
	}
	svc := NewService(stage.DefaultLadder(), idx, DefaultConfig(), rand.New(rand.NewSource(42)))

	st := student.NewState(t0, "assessment", idx.AllFacts())
	ghost := &student.FactItem{FactID: "9x9", FactSetID: "times-9", StageID: "practice-slow"}
	askedAt(ghost, t0.Add(-time.Hour))
	st.Facts = append(st.Facts, ghost)
	askedAt(st.Item("2x1"), t0.Add(-time.Minute))

	diff := testDiff()
	diff.MaxFactsBeingLearned = 0

	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x1" {
		t.Errorf("got %v, want 2x1 (orphaned item must not starve selection)", fact)
	}
}

func TestSelectNextFact_OrphanedItemDoesNotFillWorkingSet(t *testing.T) {
	sets := []content.FactSet{{
		ID:    "mini",
		Name:  "mini pack",
		Facts: []content.Fact{content.NewFact(2, 1, "mini")},
	}}
	idx, err := content.NewIndex(sets)
	if err != nil {
		t.Fatalf("NewIndex error: %v", err)
	}
	svc := NewService(stage.DefaultLadder(), idx, DefaultConfig(), rand.New(rand.NewSource(42)))

	st := student.NewState(t0, "assessment", idx.AllFacts())
	ghost := &student.FactItem{FactID: "9x9", FactSetID: "times-9", StageID: "grounding"}
	askedAt(ghost, t0.Add(-time.Hour))
	st.Facts = append(st.Facts, ghost)

	diff := testDiff()
	diff.MaxFactsBeingLearned = 1

	if got := svc.BeingLearnedCount(st); got != 0 {
		t.Errorf("BeingLearnedCount = %d, want 0 (orphaned item holds no slot)", got)
	}
	fact, _ := svc.SelectNextFact(st, diff, t0)
	if fact == nil || fact.ID != "2x1" {
		t.Errorf("got %v, want the never-shown 2x1 admitted", fact)
	}
}

func TestUpdateLastAskedTime(t *testing.T) {
	svc := testService(t)
	st := testState()
	item := st.Item("2x1")

	svc.UpdateLastAskedTime(item, t0)
	if item.LastAsked == nil || !item.LastAsked.Equal(t0) {
		t.Errorf("LastAsked = %v, want %s", item.LastAsked, t0)
	}
	first := item.RandomFactor

	svc.UpdateLastAskedTime(item, t0.Add(time.Minute))
	if item.RandomFactor == first {
		t.Error("RandomFactor unchanged after second ask, want regenerated jitter")
	}
}

func TestBeingLearnedCount(t *testing.T) {
	svc := testService(t)
	st := testState()

	askedAt(st.Item("2x1"), t0) // assessment, unknown
	askedAt(st.Item("2x2"), t0)
	st.Item("2x2").StageID = "mastered" // known, not counted
	askedAt(st.Item("2x3"), t0)
	st.Item("2x3").StageID = "grounding"

	if got := svc.BeingLearnedCount(st); got != 2 {
		t.Errorf("BeingLearnedCount = %d, want 2", got)
	}
}
