package stage

import (
	"fmt"
	"time"
)

// Config holds the tunable parameters of the mastery ladder.
type Config struct {
	// AssessmentTimerSecs is the time limit for the placement stage.
	AssessmentTimerSecs int

	// PracticeSlowTimerSecs and PracticeFastTimerSecs are the practice
	// tier time limits.
	PracticeSlowTimerSecs int
	PracticeFastTimerSecs int

	// ReviewTimerSecs and RepetitionTimerSecs bound reinforcement
	// questions.
	ReviewTimerSecs     int
	RepetitionTimerSecs int

	// ReviewDelays is the ordered cooldown table for Review tiers.
	ReviewDelays []time.Duration

	// RepetitionDelays is the ordered cooldown table for Repetition tiers.
	RepetitionDelays []time.Duration

	// ReviewRequiredCorrect and RepetitionRequiredCorrect are the
	// per-tier correct-answer requirements.
	ReviewRequiredCorrect     int
	RepetitionRequiredCorrect int
}

// DefaultConfig returns the standard ladder parameters.
func DefaultConfig() Config {
	return Config{
		AssessmentTimerSecs:   8,
		PracticeSlowTimerSecs: 12,
		PracticeFastTimerSecs: 6,
		ReviewTimerSecs:       6,
		RepetitionTimerSecs:   6,
		ReviewDelays: []time.Duration{
			2 * time.Minute,
			4 * time.Minute,
			8 * time.Minute,
		},
		RepetitionDelays: []time.Duration{
			24 * time.Hour,
			2 * 24 * time.Hour,
			4 * 24 * time.Hour,
			7 * 24 * time.Hour,
		},
		ReviewRequiredCorrect:     1,
		RepetitionRequiredCorrect: 1,
	}
}

// Ladder is the ordered sequence of stages a fact climbs.
type Ladder struct {
	stages []Stage
	byID   map[string]Stage
}

// Build constructs a ladder from cfg. Assessment comes first, then
// Grounding, the practice tiers, the Review tiers, the Repetition
// tiers, and Mastered.
func Build(cfg Config) *Ladder {
	var stages []Stage
	order := 0
	add := func(s Stage) {
		s.Order = order
		order++
		stages = append(stages, s)
	}

	add(Stage{ID: "assessment", Kind: KindAssessment, TimerSeconds: cfg.AssessmentTimerSecs})
	add(Stage{ID: "grounding", Kind: KindGrounding})
	add(Stage{ID: "practice-slow", Kind: KindPracticeSlow, TimerSeconds: cfg.PracticeSlowTimerSecs})
	add(Stage{ID: "practice-fast", Kind: KindPracticeFast, TimerSeconds: cfg.PracticeFastTimerSecs})

	for i, d := range cfg.ReviewDelays {
		add(Stage{
			ID:              fmt.Sprintf("review-%s", shortDuration(d)),
			Kind:            KindReview,
			TimerSeconds:    cfg.ReviewTimerSecs,
			Delay:           d,
			RequiredCorrect: cfg.ReviewRequiredCorrect,
			Tier:            i,
		})
	}
	for i, d := range cfg.RepetitionDelays {
		add(Stage{
			ID:              fmt.Sprintf("repetition-%s", shortDuration(d)),
			Kind:            KindRepetition,
			TimerSeconds:    cfg.RepetitionTimerSecs,
			Delay:           d,
			RequiredCorrect: cfg.RepetitionRequiredCorrect,
			Tier:            i,
		})
	}

	add(Stage{ID: "mastered", Kind: KindMastered})

	byID := make(map[string]Stage, len(stages))
	for _, s := range stages {
		byID[s.ID] = s
	}
	return &Ladder{stages: stages, byID: byID}
}

// DefaultLadder builds the ladder with DefaultConfig.
func DefaultLadder() *Ladder {
	return Build(DefaultConfig())
}

// Stages returns the stages in ladder order.
func (l *Ladder) Stages() []Stage {
	out := make([]Stage, len(l.stages))
	copy(out, l.stages)
	return out
}

// First returns the lowest stage (where new facts are seeded).
func (l *Ladder) First() Stage {
	return l.stages[0]
}

// ByID looks up a stage by ID.
func (l *Ladder) ByID(id string) (Stage, bool) {
	s, ok := l.byID[id]
	return s, ok
}

// Next returns the stage after id in ladder order.
// ok is false at the top of the ladder or for an unknown id.
func (l *Ladder) Next(id string) (Stage, bool) {
	s, ok := l.byID[id]
	if !ok || s.Order+1 >= len(l.stages) {
		return Stage{}, false
	}
	return l.stages[s.Order+1], true
}

// Prev returns the stage before id in ladder order.
// ok is false at the bottom of the ladder or for an unknown id.
func (l *Ladder) Prev(id string) (Stage, bool) {
	s, ok := l.byID[id]
	if !ok || s.Order == 0 {
		return Stage{}, false
	}
	return l.stages[s.Order-1], true
}

// Grounding returns the untimed teaching stage.
func (l *Ladder) Grounding() Stage {
	for _, s := range l.stages {
		if s.Kind == KindGrounding {
			return s
		}
	}
	return l.stages[0]
}

// shortDuration formats a delay compactly for stage IDs: "2m", "90s",
// "1d", "7d".
func shortDuration(d time.Duration) string {
	if d >= 24*time.Hour && d%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	}
	if d >= time.Minute && d%time.Minute == 0 {
		return fmt.Sprintf("%dm", int(d/time.Minute))
	}
	return fmt.Sprintf("%ds", int(d/time.Second))
}
