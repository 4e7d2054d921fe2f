// Package engine composes the scheduler: it loads and migrates the
// learner record, picks facts, builds questions, applies answers, and
// persists after every meaningful mutation.
//
// The engine is single-threaded from the caller's perspective:
// GetNextQuestion, StartQuestion, and SubmitAnswer are invoked
// strictly sequentially by one controlling loop, so it carries no
// internal locking.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/difficulty"
	"github.com/abiral/fluency/internal/promotion"
	"github.com/abiral/fluency/internal/question"
	"github.com/abiral/fluency/internal/selection"
	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/store"
	"github.com/abiral/fluency/internal/student"
)

var (
	// ErrNotInitialized is returned when the engine is used before
	// Initialize.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrQuestionNotStarted is returned when an answer arrives for a
	// question that was never started.
	ErrQuestionNotStarted = errors.New("question not started")
)

// Options wires the engine's collaborators. States is required;
// everything else has a default.
type Options struct {
	// States persists the learner record.
	States store.StateStore

	// Events receives the answer log. Optional.
	Events store.EventRepo

	// Sink receives progression events. Defaults to an event-repo
	// backed sink when Events is set, else no events are emitted.
	Sink promotion.Sink

	// Clock defaults to the system clock.
	Clock Clock

	// Ladder defaults to stage.DefaultLadder.
	Ladder *stage.Ladder

	// Index defaults to the built-in multiplication tables.
	Index *content.Index

	// Difficulty defaults to difficulty.DefaultDynamicConfig.
	Difficulty *difficulty.DynamicConfig

	// Selection defaults to selection.DefaultConfig.
	Selection *selection.Config

	// HistoryLimit bounds the retained answer history. Defaults to
	// student.DefaultHistoryLimit.
	HistoryLimit int

	// SessionID tags answer events with the current session. Optional.
	SessionID string

	// Rand seeds jitter and distractor shuffles. Defaults to a
	// time-seeded source.
	Rand *rand.Rand
}

// pendingQuestion tracks a question between GetNextQuestion and
// SubmitAnswer.
type pendingQuestion struct {
	factID    string
	stageID   string
	started   bool
	startedAt time.Time
}

// Engine is the public orchestrator.
type Engine struct {
	states       store.StateStore
	events       store.EventRepo
	clock        Clock
	ladder       *stage.Ladder
	index        *content.Index
	diff         *difficulty.Manager
	sel          *selection.Service
	promo        *promotion.Engine
	factory      *question.Factory
	registry     *student.Registry
	historyLimit int
	sessionID    string

	state   *student.State
	pending map[string]*pendingQuestion
}

// New creates an engine from opts.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Ladder == nil {
		opts.Ladder = stage.DefaultLadder()
	}
	if opts.Index == nil {
		opts.Index = content.DefaultIndex()
	}
	if opts.Difficulty == nil {
		cfg := difficulty.DefaultDynamicConfig(opts.Ladder)
		opts.Difficulty = &cfg
	}
	if opts.Selection == nil {
		cfg := selection.DefaultConfig()
		opts.Selection = &cfg
	}
	if opts.HistoryLimit == 0 {
		opts.HistoryLimit = student.DefaultHistoryLimit
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sink == nil && opts.Events != nil {
		opts.Sink = &store.EventSink{Repo: opts.Events}
	}

	return &Engine{
		states:       opts.States,
		events:       opts.Events,
		clock:        opts.Clock,
		ladder:       opts.Ladder,
		index:        opts.Index,
		diff:         difficulty.NewManager(*opts.Difficulty),
		sel:          selection.NewService(opts.Ladder, opts.Index, *opts.Selection, opts.Rand),
		promo:        promotion.NewEngine(opts.Ladder, opts.Sink),
		factory:      question.NewFactory(opts.Rand),
		registry:     student.NewRegistry(opts.Ladder),
		historyLimit: opts.HistoryLimit,
		sessionID:    opts.SessionID,
		pending:      make(map[string]*pendingQuestion),
	}
}

// Initialize loads the learner record, migrating old versions to the
// current schema. A missing, corrupt, or unmigratable record yields a
// fresh seeded state rather than an error: losing drifted data is
// preferred over refusing to start.
func (e *Engine) Initialize(ctx context.Context) error {
	now := e.clock.Now()

	raw, err := e.states.Load(ctx)
	if err == nil && raw != nil {
		if st, decErr := e.registry.Decode(raw); decErr == nil {
			e.state = st
			e.syncContent()
			e.diff.UpdateDifficulty(e.state.AnswerHistory)
			return nil
		}
	}

	e.state = student.NewState(now, e.ladder.First().ID, e.index.AllFacts())
	if err := e.persist(ctx); err != nil {
		return fmt.Errorf("persist fresh state: %w", err)
	}
	return nil
}

// State exposes the live record for read-only inspection (stats,
// display). Mutation stays inside the engine.
func (e *Engine) State() *student.State {
	return e.state
}

// CurrentDifficulty returns the active tier config.
func (e *Engine) CurrentDifficulty() difficulty.Config {
	return e.diff.Current()
}

// GetNextQuestion picks the next fact and wraps it in a question.
// Returns (nil, nil) when nothing is eligible; callers advance time
// and retry.
func (e *Engine) GetNextQuestion() (*question.Question, error) {
	if e.state == nil {
		return nil, ErrNotInitialized
	}

	now := e.clock.Now()
	fact, stg := e.sel.SelectNextFact(e.state, e.diff.Current(), now)
	if fact == nil || stg == nil {
		return nil, nil
	}

	// Selection is strictly sequential, so anything still pending was
	// abandoned; drop it rather than let the map grow forever.
	for id := range e.pending {
		delete(e.pending, id)
	}

	q := e.factory.CreateQuestionForStage(*fact, *stg)
	e.pending[q.ID] = &pendingQuestion{factID: fact.ID, stageID: stg.ID}
	return q, nil
}

// StartQuestion marks q as presented: the fact's last-asked time is
// stamped and its tie-break jitter regenerated. Selection alone does
// not consume a turn; presentation does.
func (e *Engine) StartQuestion(ctx context.Context, q *question.Question) error {
	if e.state == nil {
		return ErrNotInitialized
	}

	pq, ok := e.pending[q.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrQuestionNotStarted, q.ID)
	}

	now := e.clock.Now()
	if item := e.state.Item(q.FactID); item != nil {
		e.sel.UpdateLastAskedTime(item, now)
	}
	pq.started = true
	pq.startedAt = now

	if err := e.persist(ctx); err != nil {
		return fmt.Errorf("persist after start: %w", err)
	}
	return nil
}

// SubmitAnswer applies the learner's response: records the answer,
// runs promotion/demotion, refreshes the difficulty tier, and
// persists. A wrong answer is a normal outcome, not an error.
func (e *Engine) SubmitAnswer(ctx context.Context, q *question.Question, sub Submission) (*SubmitAnswerResult, error) {
	if e.state == nil {
		return nil, ErrNotInitialized
	}

	pq, ok := e.pending[q.ID]
	if !ok || !pq.started {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotStarted, q.ID)
	}
	delete(e.pending, q.ID)

	item := e.state.Item(q.FactID)
	if item == nil {
		return nil, fmt.Errorf("unknown fact %q", q.FactID)
	}

	now := e.clock.Now()
	askedStage, _ := e.ladder.ByID(pq.stageID)
	answerType := classify(q, sub)

	rec := student.AnswerRecord{
		FactID:       q.FactID,
		FactSetID:    q.FactSetID,
		StageID:      pq.stageID,
		Type:         answerType,
		Timestamp:    now,
		WasKnownFact: askedStage.IsKnownFact(),
	}
	e.state.RecordAnswer(rec, e.historyLimit)

	if e.events != nil {
		// Fire-and-forget, like every event append.
		_ = e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:    e.sessionID,
			FactID:       rec.FactID,
			FactSetID:    rec.FactSetID,
			StageID:      rec.StageID,
			AnswerType:   string(rec.Type),
			WasKnownFact: rec.WasKnownFact,
		})
	}

	fromStageID := item.StageID
	e.promo.PromoteFacts(e.state, item, answerType, e.diff.Current(), now)
	e.diff.UpdateDifficulty(e.state.AnswerHistory)

	if err := e.persist(ctx); err != nil {
		return nil, fmt.Errorf("persist after answer: %w", err)
	}

	return &SubmitAnswerResult{
		IsCorrect:     answerType == student.AnswerCorrect,
		AnswerType:    answerType,
		ShouldRetry:   answerType == student.AnswerIncorrect && askedStage.Kind == stage.KindGrounding,
		CorrectAnswer: q.Answer,
		FromStageID:   fromStageID,
		ToStageID:     item.StageID,
	}, nil
}

func classify(q *question.Question, sub Submission) student.AnswerType {
	switch {
	case sub.Skipped:
		return student.AnswerSkipped
	case sub.TimedOut:
		return student.AnswerTimedOut
	case q.CheckAnswer(sub.Answer):
		return student.AnswerCorrect
	}
	return student.AnswerIncorrect
}

// syncContent seeds items for facts added to the content index after
// the record was created (e.g. a grown content pack).
func (e *Engine) syncContent() {
	first := e.ladder.First().ID
	for _, f := range e.index.AllFacts() {
		if e.state.Item(f.ID) == nil {
			e.state.Facts = append(e.state.Facts, &student.FactItem{
				FactID:    f.ID,
				FactSetID: f.FactSetID,
				StageID:   first,
			})
		}
	}
}

func (e *Engine) persist(ctx context.Context) error {
	raw, err := student.Encode(e.state)
	if err != nil {
		return err
	}
	return e.states.Save(ctx, raw)
}
