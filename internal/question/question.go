// Package question turns a (fact, stage) pair into a presentable
// question with choices and a timer.
package question

import (
	"strconv"
	"strings"
)

// Mode is how the question is framed to the learner.
type Mode string

const (
	// ModeAssessment is the timed placement framing.
	ModeAssessment Mode = "assessment"
	// ModeGrounding is the untimed teaching framing.
	ModeGrounding Mode = "grounding"
	// ModePractice covers every other stage.
	ModePractice Mode = "practice"
)

// Question is a presentable item. It is immutable once created.
type Question struct {
	// ID is a unique identifier for this presentation.
	ID string

	FactID    string
	FactSetID string
	StageID   string

	// Text is the prompt, e.g. "3 × 4".
	Text string

	// Answer is the correct product.
	Answer int

	// Choices holds the options with exactly one equal to Answer.
	Choices []int

	Mode Mode

	// TimerSeconds is the countdown. Zero means untimed.
	TimerSeconds int
}

// CheckAnswer compares a learner's input against the correct answer.
// Whitespace is trimmed and leading zeros are ignored; a 1-based
// choice index is also accepted when it denotes the matching option.
func (q *Question) CheckAnswer(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return false
	}
	if n == q.Answer {
		return true
	}
	// Choice index form, only when the index cannot itself be an
	// option value.
	if n >= 1 && n <= len(q.Choices) && !containsInt(q.Choices, n) {
		return q.Choices[n-1] == q.Answer
	}
	return false
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
