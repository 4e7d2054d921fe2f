package engine

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abiral/fluency/internal/question"
	"github.com/abiral/fluency/internal/store"
	"github.com/abiral/fluency/internal/student"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type harness struct {
	eng    *Engine
	clock  *ManualClock
	states *store.MemoryStateStore
	events *store.MemoryEventRepo
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:  NewManualClock(t0),
		states: &store.MemoryStateStore{},
		events: &store.MemoryEventRepo{},
	}
	h.eng = New(Options{
		States:    h.states,
		Events:    h.events,
		Clock:     h.clock,
		SessionID: "test-session",
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, h.eng.Initialize(context.Background()))
	return h
}

// ask advances past the cooldown, fetches and starts the next
// question.
func (h *harness) ask(t *testing.T) *question.Question {
	t.Helper()
	h.clock.Advance(5 * time.Second)
	q, err := h.eng.GetNextQuestion()
	require.NoError(t, err)
	require.NotNil(t, q, "expected an eligible question")
	require.NoError(t, h.eng.StartQuestion(context.Background(), q))
	return q
}

func (h *harness) answer(t *testing.T, q *question.Question, sub Submission) *SubmitAnswerResult {
	t.Helper()
	res, err := h.eng.SubmitAnswer(context.Background(), q, sub)
	require.NoError(t, err)
	return res
}

func correct(q *question.Question) Submission {
	return Submission{Answer: itoa(q.Answer)}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

func TestInitialize_FreshState(t *testing.T) {
	h := newHarness(t)

	st := h.eng.State()
	require.NotNil(t, st)
	assert.Equal(t, student.CurrentVersion, st.Version)
	assert.Equal(t, t0, st.CreatedAt)
	assert.Len(t, st.Facts, 90)
	for _, fi := range st.Facts {
		assert.Equal(t, "assessment", fi.StageID)
		assert.Nil(t, fi.LastAsked)
	}

	// Fresh state was persisted immediately.
	raw, err := h.states.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, raw)
}

func TestInitialize_CorruptRecordYieldsFreshState(t *testing.T) {
	states := &store.MemoryStateStore{}
	require.NoError(t, states.Save(context.Background(), json.RawMessage(`{not json`)))

	eng := New(Options{
		States: states,
		Clock:  NewManualClock(t0),
		Rand:   rand.New(rand.NewSource(1)),
	})
	require.NoError(t, eng.Initialize(context.Background()))
	assert.Len(t, eng.State().Facts, 90, "corrupt data falls back to a fresh record")
}

func TestInitialize_LoadsExistingState(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)
	h.answer(t, q, correct(q))

	// A second engine over the same store sees the mutations.
	eng2 := New(Options{
		States: h.states,
		Clock:  h.clock,
		Rand:   rand.New(rand.NewSource(1)),
	})
	require.NoError(t, eng2.Initialize(context.Background()))

	item := eng2.State().Item(q.FactID)
	require.NotNil(t, item)
	assert.NotNil(t, item.LastAsked)
	assert.Len(t, eng2.State().AnswerHistory, 1)
}

func TestGetNextQuestion_BeforeInitialize(t *testing.T) {
	eng := New(Options{States: &store.MemoryStateStore{}})
	_, err := eng.GetNextQuestion()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSubmitAnswer_RequiresStartedQuestion(t *testing.T) {
	h := newHarness(t)

	q, err := h.eng.GetNextQuestion()
	require.NoError(t, err)
	require.NotNil(t, q)

	// Selected but never started.
	_, err = h.eng.SubmitAnswer(context.Background(), q, correct(q))
	assert.ErrorIs(t, err, ErrQuestionNotStarted)
}

func TestSubmitAnswer_CorrectFlow(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)

	res := h.answer(t, q, correct(q))
	assert.True(t, res.IsCorrect)
	assert.Equal(t, student.AnswerCorrect, res.AnswerType)
	assert.False(t, res.ShouldRetry)

	// One correct assessment answer promotes out of placement.
	assert.Equal(t, "assessment", res.FromStageID)
	assert.True(t, res.Promoted())

	// Answer landed in history, stats, and the event log.
	st := h.eng.State()
	assert.Len(t, st.AnswerHistory, 1)
	assert.Equal(t, 1, st.Stats[q.FactID].TimesCorrect)
	require.Len(t, h.events.Answers, 1)
	assert.Equal(t, "test-session", h.events.Answers[0].SessionID)
	assert.Equal(t, "correct", h.events.Answers[0].AnswerType)
}

func TestSubmitAnswer_RepeatedMissesDropToGrounding(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)
	factID := q.FactID

	res := h.answer(t, q, Submission{Answer: "99999"})
	assert.False(t, res.IsCorrect)
	assert.False(t, res.Demoted(), "one miss is below the demotion threshold")

	// Keep missing; when the fact comes back around its second miss
	// drops it to grounding.
	for i := 0; i < 20; i++ {
		q = h.ask(t)
		res = h.answer(t, q, Submission{Answer: "99999"})
		if q.FactID == factID {
			break
		}
	}
	require.Equal(t, factID, q.FactID, "the missed fact should come back around")
	assert.True(t, res.Demoted())
	assert.Equal(t, "grounding", res.ToStageID)
	assert.False(t, res.ShouldRetry, "retry prompt is for grounding misses only")
}

func TestSubmitAnswer_ShouldRetryInGrounding(t *testing.T) {
	h := newHarness(t)

	// Miss everything until a grounding question appears, then miss it.
	for i := 0; i < 40; i++ {
		q := h.ask(t)
		if q.StageID == "grounding" {
			res := h.answer(t, q, Submission{Answer: "99999"})
			assert.True(t, res.ShouldRetry)

			res = h.answer(t, h.ask(t), Submission{Skipped: true})
			assert.False(t, res.ShouldRetry, "skips never prompt a retry")
			return
		}
		h.answer(t, q, Submission{Answer: "99999"})
	}
	t.Fatal("no grounding question within 40 asks")
}

func TestSubmitAnswer_SkippedLeavesStreaksAlone(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)

	item := h.eng.State().Item(q.FactID)
	res := h.answer(t, q, Submission{Skipped: true})

	assert.Equal(t, student.AnswerSkipped, res.AnswerType)
	assert.False(t, res.Promoted())
	assert.False(t, res.Demoted())
	assert.Zero(t, item.ConsecutiveCorrect)
	assert.Zero(t, item.ConsecutiveIncorrect)
	assert.Zero(t, h.eng.State().Stats[q.FactID].TimesIncorrect)
}

func TestSubmitAnswer_TimedOutCountsAsMiss(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)

	res := h.answer(t, q, Submission{Answer: itoa(q.Answer), TimedOut: true})
	assert.Equal(t, student.AnswerTimedOut, res.AnswerType)
	assert.False(t, res.IsCorrect, "a timed out answer is never correct")
	assert.Equal(t, 1, h.eng.State().Stats[q.FactID].TimesIncorrect)
}

func TestSubmitAnswer_ProgressionEventsFlow(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)
	h.answer(t, q, correct(q))

	require.Len(t, h.events.Progressions, 1)
	ev := h.events.Progressions[0]
	assert.Equal(t, q.FactID, ev.FactID)
	assert.Equal(t, "assessment", ev.FromStageID)
}

func TestGetNextQuestion_EvictsAbandonedQuestions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	q1, err := h.eng.GetNextQuestion()
	require.NoError(t, err)
	require.NotNil(t, q1)

	// Selecting again abandons q1.
	q2, err := h.eng.GetNextQuestion()
	require.NoError(t, err)
	require.NotNil(t, q2)

	assert.Len(t, h.eng.pending, 1, "abandoned questions must not accumulate")
	_, ok := h.eng.pending[q2.ID]
	assert.True(t, ok)

	err = h.eng.StartQuestion(ctx, q1)
	assert.ErrorIs(t, err, ErrQuestionNotStarted)
	require.NoError(t, h.eng.StartQuestion(ctx, q2))
}

func TestSubmitAnswer_DoubleSubmitRejected(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)
	h.answer(t, q, correct(q))

	_, err := h.eng.SubmitAnswer(context.Background(), q, correct(q))
	assert.ErrorIs(t, err, ErrQuestionNotStarted)
}

func TestGetNextQuestion_AdmitsNewFactWhileOnCooldown(t *testing.T) {
	h := newHarness(t)
	q := h.ask(t)
	h.answer(t, q, correct(q))

	// Immediately after answering, the only introduced fact is on
	// cooldown; the working set still has room so a new fact arrives.
	q2, err := h.eng.GetNextQuestion()
	require.NoError(t, err)
	require.NotNil(t, q2)
	assert.NotEqual(t, q.FactID, q2.FactID)
}

func TestFullSession_FactReachesPractice(t *testing.T) {
	h := newHarness(t)

	// Drive one fact with repeated correct answers; it must climb out
	// of the teaching stages.
	q := h.ask(t)
	factID := q.FactID
	h.answer(t, q, correct(q))

	for i := 0; i < 200; i++ {
		q = h.ask(t)
		h.answer(t, q, correct(q))
		item := h.eng.State().Item(factID)
		if item.StageID == "review-2m" {
			return
		}
	}
	t.Errorf("fact %s StageID = %q, never reached review-2m", factID, h.eng.State().Item(factID).StageID)
}

func TestDifficultyAdjustsDuringSession(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "easy", h.eng.CurrentDifficulty().Name)

	for i := 0; i < 6; i++ {
		q := h.ask(t)
		h.answer(t, q, correct(q))
	}
	assert.Equal(t, "hard", h.eng.CurrentDifficulty().Name,
		"a clean run of answers raises the tier")
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(t0)
	assert.Equal(t, t0, c.Now())
	c.Advance(time.Minute)
	assert.Equal(t, t0.Add(time.Minute), c.Now())
	c.Set(t0)
	assert.Equal(t, t0, c.Now())
}
