package question

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/stage"
)

// NumChoices is the option count for every generated question.
const NumChoices = 4

// Factory builds questions. Creation has no side effects on learner
// state; calling it repeatedly for the same (fact, stage) is safe.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory. A nil rng falls back to a time-seeded
// source; tests pass a fixed seed.
func NewFactory(rng *rand.Rand) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Factory{rng: rng}
}

// CreateQuestionForStage maps the stage onto a mode and timer and
// generates a distractor set around the fact's answer.
func (f *Factory) CreateQuestionForStage(fact content.Fact, stg stage.Stage) *Question {
	q := &Question{
		ID:           uuid.New().String(),
		FactID:       fact.ID,
		FactSetID:    fact.FactSetID,
		StageID:      stg.ID,
		Text:         fact.Text,
		Answer:       fact.Answer(),
		Mode:         modeForStage(stg),
		TimerSeconds: stg.TimerSeconds,
	}
	q.Choices = f.choices(fact)
	return q
}

func modeForStage(stg stage.Stage) Mode {
	switch stg.Kind {
	case stage.KindAssessment:
		return ModeAssessment
	case stage.KindGrounding:
		return ModeGrounding
	}
	return ModePractice
}

// choices builds NumChoices options containing the correct answer
// exactly once, drawn from near-miss products.
func (f *Factory) choices(fact content.Fact) []int {
	correct := fact.Answer()
	seen := map[int]bool{correct: true}

	candidates := []int{
		(fact.FactorA + 1) * fact.FactorB,
		(fact.FactorA - 1) * fact.FactorB,
		fact.FactorA * (fact.FactorB + 1),
		fact.FactorA * (fact.FactorB - 1),
		correct + fact.FactorA,
		correct - fact.FactorA,
		correct + fact.FactorB,
		correct - fact.FactorB,
		correct + 1,
		correct - 1,
	}
	f.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	choices := []int{correct}
	for _, c := range candidates {
		if len(choices) == NumChoices {
			break
		}
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		choices = append(choices, c)
	}

	// Tiny factors can exhaust the near-miss pool; pad outward.
	for next := correct + 2; len(choices) < NumChoices; next++ {
		if !seen[next] {
			seen[next] = true
			choices = append(choices, next)
		}
	}

	f.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}
