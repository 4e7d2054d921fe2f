package engine

import "github.com/abiral/fluency/internal/student"

// Submission is the learner's response to a question.
type Submission struct {
	// Answer is the typed value. Ignored when Skipped or TimedOut.
	Answer string

	// TimedOut marks the countdown expiring before an answer.
	TimedOut bool

	// Skipped marks an explicit skip.
	Skipped bool
}

// SubmitAnswerResult reports the outcome of one answer cycle.
type SubmitAnswerResult struct {
	IsCorrect  bool
	AnswerType student.AnswerType

	// ShouldRetry asks the caller to re-present the same question
	// (untimed teaching stages only).
	ShouldRetry bool

	// CorrectAnswer is the product, for feedback display.
	CorrectAnswer int

	// FromStageID and ToStageID describe the fact's stage transition.
	// Equal when no transition happened.
	FromStageID string
	ToStageID   string
}

// Promoted reports whether the answer moved the fact up the ladder.
func (r *SubmitAnswerResult) Promoted() bool {
	return r.FromStageID != r.ToStageID && r.IsCorrect
}

// Demoted reports whether the answer moved the fact down the ladder.
func (r *SubmitAnswerResult) Demoted() bool {
	return r.FromStageID != r.ToStageID && !r.IsCorrect
}
