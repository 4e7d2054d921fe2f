package promotion

import (
	"testing"
	"time"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/difficulty"
	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/student"
)

var t0 = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

// recordingSink captures fired events for assertions.
type recordingSink struct {
	events []Event
	bulk   []BulkEvent
}

func (s *recordingSink) FactProgressed(e Event) { s.events = append(s.events, e) }
func (s *recordingSink) BulkPromoted(e BulkEvent) { s.bulk = append(s.bulk, e) }

func testDiff() difficulty.Config {
	return difficulty.Config{
		Name: "test",
		PromotionThresholds: map[string]int{
			"assessment":    1,
			"grounding":     2,
			"practice-slow": 2,
			"practice-fast": 2,
		},
		DemotionThresholds: map[string]int{
			"assessment":    1,
			"practice-slow": 2,
			"practice-fast": 2,
			"review-2m":     2,
			"review-4m":     2,
			"review-8m":     2,
			"repetition-1d": 2,
			"repetition-2d": 2,
			"repetition-4d": 2,
			"repetition-7d": 2,
		},
	}
}

func testState() *student.State {
	return student.NewState(t0, "assessment", content.DefaultIndex().AllFacts())
}

func answerN(e *Engine, st *student.State, item *student.FactItem, answer student.AnswerType, n int, diff difficulty.Config) {
	for i := 0; i < n; i++ {
		e.PromoteFacts(st, item, answer, diff, t0)
	}
}

func TestPromoteFacts_StreakBelowThresholdStays(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"

	e.PromoteFacts(st, item, student.AnswerCorrect, testDiff(), t0)
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q after 1 of 2 correct, want grounding", item.StageID)
	}
	if item.ConsecutiveCorrect != 1 {
		t.Errorf("ConsecutiveCorrect = %d, want 1", item.ConsecutiveCorrect)
	}
}

func TestPromoteFacts_PromotesAtThresholdAndResets(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"

	answerN(e, st, item, student.AnswerCorrect, 2, testDiff())
	if item.StageID != "practice-slow" {
		t.Errorf("StageID = %q, want practice-slow", item.StageID)
	}
	if item.ConsecutiveCorrect != 0 || item.ConsecutiveIncorrect != 0 {
		t.Errorf("streaks = %d/%d after promotion, want 0/0", item.ConsecutiveCorrect, item.ConsecutiveIncorrect)
	}
}

func TestPromoteFacts_IncorrectBreaksCorrectStreak(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"
	diff := testDiff()

	e.PromoteFacts(st, item, student.AnswerCorrect, diff, t0)
	e.PromoteFacts(st, item, student.AnswerIncorrect, diff, t0)
	if item.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0 after a miss", item.ConsecutiveCorrect)
	}
	if item.ConsecutiveIncorrect != 1 {
		t.Errorf("ConsecutiveIncorrect = %d, want 1", item.ConsecutiveIncorrect)
	}
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q, want grounding (no demotion threshold for grounding)", item.StageID)
	}
}

func TestPromoteFacts_TimedOutCountsAsIncorrect(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "practice-slow"
	diff := testDiff()

	answerN(e, st, item, student.AnswerTimedOut, 2, diff)
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q after 2 timeouts, want grounding", item.StageID)
	}
}

func TestPromoteFacts_SkippedLeavesEverythingUntouched(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"
	item.ConsecutiveCorrect = 1

	e.PromoteFacts(st, item, student.AnswerSkipped, testDiff(), t0)
	if item.ConsecutiveCorrect != 1 || item.ConsecutiveIncorrect != 0 {
		t.Errorf("streaks = %d/%d after skip, want 1/0", item.ConsecutiveCorrect, item.ConsecutiveIncorrect)
	}
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q after skip, want grounding", item.StageID)
	}
}

func TestPromoteFacts_AssessmentFailureLandsInGrounding(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")

	e.PromoteFacts(st, item, student.AnswerIncorrect, testDiff(), t0)
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q after failed assessment, want grounding", item.StageID)
	}
}

func TestPromoteFacts_GroundingNeverDemotes(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"

	diff := testDiff()
	diff.DemotionThresholds["grounding"] = 1

	answerN(e, st, item, student.AnswerIncorrect, 5, diff)
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q, want grounding (the floor)", item.StageID)
	}
}

func TestPromoteFacts_DemotionStopsAboveAssessment(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "practice-slow"

	answerN(e, st, item, student.AnswerIncorrect, 2, testDiff())
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q, want grounding, never back to assessment", item.StageID)
	}
}

func TestPromoteFacts_ZeroThresholdStageIsSkipped(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"

	diff := testDiff()
	diff.PromotionThresholds["grounding"] = 2
	diff.PromotionThresholds["practice-slow"] = 0 // disabled

	answerN(e, st, item, student.AnswerCorrect, 2, diff)
	if item.StageID != "practice-fast" {
		t.Errorf("StageID = %q, want practice-fast (skipping disabled practice-slow)", item.StageID)
	}
}

func TestPromoteFacts_DisabledStageLeavesOnFirstCorrect(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "practice-slow"

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 0

	e.PromoteFacts(st, item, student.AnswerCorrect, diff, t0)
	if item.StageID != "practice-fast" {
		t.Errorf("StageID = %q, want practice-fast on first correct in a disabled stage", item.StageID)
	}
}

func TestPromoteFacts_DemotionSkipsDisabledStage(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "practice-fast"

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 0 // disabled

	answerN(e, st, item, student.AnswerIncorrect, 2, diff)
	if item.StageID != "grounding" {
		t.Errorf("StageID = %q, want grounding (demotion skips disabled practice-slow)", item.StageID)
	}
}

func TestPromoteFacts_ReviewTiersUsePerTierRequirement(t *testing.T) {
	ladder := stage.Build(func() stage.Config {
		cfg := stage.DefaultConfig()
		cfg.ReviewRequiredCorrect = 2
		return cfg
	}())
	e := NewEngine(ladder, nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "review-2m"

	diff := testDiff()

	e.PromoteFacts(st, item, student.AnswerCorrect, diff, t0)
	if item.StageID != "review-2m" {
		t.Errorf("StageID = %q after 1 of 2 correct, want review-2m", item.StageID)
	}
	e.PromoteFacts(st, item, student.AnswerCorrect, diff, t0)
	if item.StageID != "review-4m" {
		t.Errorf("StageID = %q, want review-4m", item.StageID)
	}
}

func TestPromoteFacts_LadderToMastered(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "review-8m"
	diff := testDiff()

	// One correct per reinforcement tier walks through every
	// repetition tier to mastered.
	wantPath := []string{"repetition-1d", "repetition-2d", "repetition-4d", "repetition-7d", "mastered"}
	for _, want := range wantPath {
		e.PromoteFacts(st, item, student.AnswerCorrect, diff, t0)
		if item.StageID != want {
			t.Fatalf("StageID = %q, want %q", item.StageID, want)
		}
	}

	// Mastered is terminal.
	e.PromoteFacts(st, item, student.AnswerCorrect, diff, t0)
	if item.StageID != "mastered" {
		t.Errorf("StageID = %q, want mastered to be terminal", item.StageID)
	}
}

func TestPromoteFacts_ReviewDemotesOneTier(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "review-4m"

	answerN(e, st, item, student.AnswerIncorrect, 2, testDiff())
	if item.StageID != "review-2m" {
		t.Errorf("StageID = %q, want review-2m (one tier down)", item.StageID)
	}
}

func TestPromoteFacts_FiresProgressionEvent(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(stage.DefaultLadder(), sink)
	st := testState()
	item := st.Item("2x1")
	item.StageID = "grounding"
	diff := testDiff()

	answerN(e, st, item, student.AnswerCorrect, 2, diff)
	if len(sink.events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.FactID != "2x1" || ev.FromStageID != "grounding" || ev.ToStageID != "practice-slow" {
		t.Errorf("event = %+v, want 2x1 grounding -> practice-slow", ev)
	}
	if ev.ConsecutiveCount != 2 {
		t.Errorf("ConsecutiveCount = %d, want 2 (streak before the reset)", ev.ConsecutiveCount)
	}
}

func TestBulkPromotion_PromotesSameStageSiblings(t *testing.T) {
	sink := &recordingSink{}
	e := NewEngine(stage.DefaultLadder(), sink)
	st := testState()

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 3
	diff.BulkPromotion = difficulty.BulkPromotionConfig{
		Enabled:               true,
		MinConsecutiveCorrect: 3,
		MinFactSetCoverage:    0.5,
	}

	// Everything in times-2 sits in practice-slow; most of the set has
	// been answered.
	for _, fi := range st.ItemsInSet("times-2") {
		fi.StageID = "practice-slow"
	}
	for i := 1; i <= 6; i++ {
		id := st.ItemsInSet("times-2")[i-1].FactID
		st.RecordAnswer(student.AnswerRecord{FactID: id, Type: student.AnswerCorrect, Timestamp: t0}, 0)
	}

	trigger := st.Item("2x1")
	answerN(e, st, trigger, student.AnswerCorrect, 3, diff)

	if trigger.StageID != "practice-fast" {
		t.Fatalf("trigger StageID = %q, want practice-fast", trigger.StageID)
	}
	for _, fi := range st.ItemsInSet("times-2") {
		if fi.StageID != "practice-fast" {
			t.Errorf("%s StageID = %q, want practice-fast via bulk promotion", fi.FactID, fi.StageID)
		}
	}

	if len(sink.bulk) != 1 {
		t.Fatalf("len(bulk) = %d, want 1", len(sink.bulk))
	}
	be := sink.bulk[0]
	if be.PromotedFactsCount != 9 {
		t.Errorf("PromotedFactsCount = %d, want 9 (set minus the trigger)", be.PromotedFactsCount)
	}
	if be.CoveragePercent != 0.6 {
		t.Errorf("CoveragePercent = %v, want 0.6", be.CoveragePercent)
	}
}

func TestBulkPromotion_SkippedAnswersCountTowardCoverage(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 3
	diff.BulkPromotion = difficulty.BulkPromotionConfig{
		Enabled:               true,
		MinConsecutiveCorrect: 3,
		MinFactSetCoverage:    0.5,
	}

	// The set's coverage comes entirely from skips; skipping a question
	// is still a recorded answer.
	for _, fi := range st.ItemsInSet("times-2") {
		fi.StageID = "practice-slow"
		st.RecordAnswer(student.AnswerRecord{FactID: fi.FactID, Type: student.AnswerSkipped, Timestamp: t0}, 0)
	}

	trigger := st.Item("2x1")
	answerN(e, st, trigger, student.AnswerCorrect, 3, diff)

	if got := st.Item("2x2").StageID; got != "practice-fast" {
		t.Errorf("sibling StageID = %q, want practice-fast (skips satisfy the coverage gate)", got)
	}
}

func TestBulkPromotion_GatedByCoverage(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 3
	diff.BulkPromotion = difficulty.BulkPromotionConfig{
		Enabled:               true,
		MinConsecutiveCorrect: 3,
		MinFactSetCoverage:    0.6,
	}

	for _, fi := range st.ItemsInSet("times-2") {
		fi.StageID = "practice-slow"
	}
	// Only one fact answered: coverage 0.1 stays below the gate.
	st.RecordAnswer(student.AnswerRecord{FactID: "2x1", Type: student.AnswerCorrect, Timestamp: t0}, 0)

	trigger := st.Item("2x1")
	answerN(e, st, trigger, student.AnswerCorrect, 3, diff)

	if trigger.StageID != "practice-fast" {
		t.Errorf("trigger StageID = %q, want practice-fast (individual promotion still happens)", trigger.StageID)
	}
	if got := st.Item("2x2").StageID; got != "practice-slow" {
		t.Errorf("sibling StageID = %q, want practice-slow (coverage gate held)", got)
	}
}

func TestBulkPromotion_GatedByEnabled(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 3
	// BulkPromotion left disabled.

	for _, fi := range st.ItemsInSet("times-2") {
		fi.StageID = "practice-slow"
		st.RecordAnswer(student.AnswerRecord{FactID: fi.FactID, Type: student.AnswerCorrect, Timestamp: t0}, 0)
	}

	trigger := st.Item("2x1")
	answerN(e, st, trigger, student.AnswerCorrect, 3, diff)

	if got := st.Item("2x2").StageID; got != "practice-slow" {
		t.Errorf("sibling StageID = %q, want practice-slow when bulk promotion is disabled", got)
	}
}

func TestBulkPromotion_OnlyLiftsSameStageSiblings(t *testing.T) {
	e := NewEngine(stage.DefaultLadder(), nil)
	st := testState()

	diff := testDiff()
	diff.PromotionThresholds["practice-slow"] = 3
	diff.BulkPromotion = difficulty.BulkPromotionConfig{
		Enabled:               true,
		MinConsecutiveCorrect: 3,
		MinFactSetCoverage:    0.1,
	}

	for _, fi := range st.ItemsInSet("times-2") {
		fi.StageID = "practice-slow"
		st.RecordAnswer(student.AnswerRecord{FactID: fi.FactID, Type: student.AnswerCorrect, Timestamp: t0}, 0)
	}
	ahead := st.Item("2x9")
	ahead.StageID = "review-2m"

	trigger := st.Item("2x1")
	answerN(e, st, trigger, student.AnswerCorrect, 3, diff)

	if ahead.StageID != "review-2m" {
		t.Errorf("2x9 StageID = %q, want review-2m (a fact ahead of the group is untouched)", ahead.StageID)
	}
	if got := st.Item("2x2").StageID; got != "practice-fast" {
		t.Errorf("2x2 StageID = %q, want practice-fast", got)
	}
}
