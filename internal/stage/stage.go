package stage

import "time"

// Kind identifies the variant of a learning stage. The set of kinds is
// closed; everything that inspects a stage switches exhaustively on it.
type Kind int

const (
	// KindAssessment is the timed placement stage every fact starts in.
	KindAssessment Kind = iota
	// KindGrounding is the untimed teaching stage a fact falls back to.
	KindGrounding
	// KindPracticeSlow is the first timed practice tier.
	KindPracticeSlow
	// KindPracticeFast is the second, tighter timed practice tier.
	KindPracticeFast
	// KindReview is a minute-scale reinforcement tier.
	KindReview
	// KindRepetition is a day-scale reinforcement tier.
	KindRepetition
	// KindMastered is the terminal stage.
	KindMastered
)

func (k Kind) String() string {
	switch k {
	case KindAssessment:
		return "assessment"
	case KindGrounding:
		return "grounding"
	case KindPracticeSlow:
		return "practice-slow"
	case KindPracticeFast:
		return "practice-fast"
	case KindReview:
		return "review"
	case KindRepetition:
		return "repetition"
	case KindMastered:
		return "mastered"
	}
	return "unknown"
}

// Stage is one rung of the mastery ladder. Review and Repetition kinds
// appear as multiple tiers, each carrying its own reinforcement delay
// and per-tier correct-answer requirement.
type Stage struct {
	// ID uniquely names the stage, e.g. "practice-slow" or "review-4m".
	ID string

	// Kind is the stage variant.
	Kind Kind

	// Order is the global position on the ladder, ascending.
	Order int

	// TimerSeconds is the answer time limit. Zero means untimed.
	TimerSeconds int

	// Delay is the reinforcement cooldown before the fact may be asked
	// again. Zero for non-reinforcement stages.
	Delay time.Duration

	// RequiredCorrect is the number of correct answers needed to leave
	// this tier. Only meaningful for Review and Repetition.
	RequiredCorrect int

	// Tier is the index within the Review or Repetition tier list.
	Tier int
}

// IsKnownFact reports whether a fact in this stage counts as "known"
// for ratio mixing and working-memory accounting.
func (s Stage) IsKnownFact() bool {
	switch s.Kind {
	case KindReview, KindRepetition, KindMastered:
		return true
	}
	return false
}

// IsFullyLearned reports whether the stage is terminal.
func (s Stage) IsFullyLearned() bool {
	return s.Kind == KindMastered
}

// Timed reports whether questions in this stage carry a countdown.
func (s Stage) Timed() bool {
	return s.TimerSeconds > 0
}

// Reinforcement reports whether the stage carries a tier-specific
// cooldown delay (Review and Repetition tiers).
func (s Stage) Reinforcement() bool {
	return s.Kind == KindReview || s.Kind == KindRepetition
}
