// Package promotion is the stage-transition state machine: it turns an
// answer outcome into streak updates, promotions, demotions, and the
// optional bulk promotion of same-stage siblings.
package promotion

import (
	"time"

	"github.com/abiral/fluency/internal/difficulty"
	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/student"
)

// Engine applies answer outcomes to one learner's fact items.
type Engine struct {
	ladder *stage.Ladder
	sink   Sink
}

// NewEngine creates a promotion engine. sink may be nil.
func NewEngine(ladder *stage.Ladder, sink Sink) *Engine {
	return &Engine{ladder: ladder, sink: sink}
}

// PromoteFacts updates item's streak counters for the answer and
// applies any promotion or demotion the active difficulty allows.
// Skipped answers leave the streaks untouched.
//
// Missing threshold entries read as 0 ("skip"); nothing here fails on
// configuration gaps.
func (e *Engine) PromoteFacts(st *student.State, item *student.FactItem, answer student.AnswerType, diff difficulty.Config, now time.Time) {
	cur, ok := e.ladder.ByID(item.StageID)
	if !ok {
		return
	}

	switch answer {
	case student.AnswerCorrect:
		item.ConsecutiveIncorrect = 0
		item.ConsecutiveCorrect++
		e.maybePromote(st, item, cur, answer, diff, now)

	case student.AnswerIncorrect, student.AnswerTimedOut:
		item.ConsecutiveCorrect = 0
		item.ConsecutiveIncorrect++
		e.maybeDemote(item, cur, answer, diff, now)
	}
}

func (e *Engine) maybePromote(st *student.State, item *student.FactItem, cur stage.Stage, answer student.AnswerType, diff difficulty.Config, now time.Time) {
	required := e.promotionRequirement(cur, diff)
	if item.ConsecutiveCorrect < required {
		return
	}

	target := e.nextStage(cur, diff)
	if target.ID == cur.ID {
		return // already terminal
	}

	streak := item.ConsecutiveCorrect
	e.transition(item, cur, target, answer, streak, now)
	e.maybeBulkPromote(st, item, cur, target, answer, streak, diff, now)
}

// promotionRequirement is the per-tier requirement for reinforcement
// stages and the difficulty threshold map elsewhere. A zero requirement
// outside reinforcement means the stage is disabled: any correct answer
// moves on.
func (e *Engine) promotionRequirement(cur stage.Stage, diff difficulty.Config) int {
	if cur.Reinforcement() {
		if cur.RequiredCorrect > 0 {
			return cur.RequiredCorrect
		}
		return 1
	}
	if t := diff.PromotionThreshold(cur.ID); t > 0 {
		return t
	}
	return 1 // disabled stage: first correct answer leaves it
}

// nextStage walks upward past disabled stages. Reinforcement tiers and
// Mastered are never skipped; their pacing lives in the tier payload.
func (e *Engine) nextStage(cur stage.Stage, diff difficulty.Config) stage.Stage {
	at := cur
	for {
		nxt, ok := e.ladder.Next(at.ID)
		if !ok {
			return at
		}
		if skippable(nxt) && diff.PromotionThreshold(nxt.ID) == 0 {
			at = nxt
			continue
		}
		return nxt
	}
}

func (e *Engine) maybeDemote(item *student.FactItem, cur stage.Stage, answer student.AnswerType, diff difficulty.Config, now time.Time) {
	threshold := diff.DemotionThreshold(cur.ID)
	if threshold <= 0 || item.ConsecutiveIncorrect < threshold {
		return
	}

	target, ok := e.prevStage(cur, diff)
	if !ok {
		return
	}
	e.transition(item, cur, target, answer, item.ConsecutiveIncorrect, now)
}

// prevStage resolves the demotion target. Grounding is the floor:
// Assessment failures land there, Grounding itself never demotes, and
// a downward walk past disabled stages stops there rather than
// re-entering Assessment.
func (e *Engine) prevStage(cur stage.Stage, diff difficulty.Config) (stage.Stage, bool) {
	switch cur.Kind {
	case stage.KindGrounding:
		return stage.Stage{}, false
	case stage.KindAssessment:
		return e.ladder.Grounding(), true
	}

	at := cur
	for {
		prv, ok := e.ladder.Prev(at.ID)
		if !ok || prv.Kind == stage.KindAssessment {
			return e.ladder.Grounding(), true
		}
		if skippable(prv) && prv.Kind != stage.KindGrounding && diff.PromotionThreshold(prv.ID) == 0 {
			at = prv
			continue
		}
		return prv, true
	}
}

// transition moves the item and fires the per-fact event. Both streak
// counters reset on a stage change.
func (e *Engine) transition(item *student.FactItem, from, to stage.Stage, answer student.AnswerType, count int, now time.Time) {
	item.StageID = to.ID
	item.ConsecutiveCorrect = 0
	item.ConsecutiveIncorrect = 0

	if e.sink != nil {
		e.sink.FactProgressed(Event{
			FactID:           item.FactID,
			FactSetID:        item.FactSetID,
			FromStageID:      from.ID,
			ToStageID:        to.ID,
			AnswerType:       answer,
			ConsecutiveCount: count,
			Timestamp:        now,
		})
	}
}

// maybeBulkPromote lifts every other fact of the same set sitting in
// the trigger's old stage, when the difficulty enables it, the trigger
// streak is long enough, and enough of the set has been answered.
func (e *Engine) maybeBulkPromote(st *student.State, trigger *student.FactItem, from, to stage.Stage, answer student.AnswerType, streak int, diff difficulty.Config, now time.Time) {
	bp := diff.BulkPromotion
	if !bp.Enabled || streak < bp.MinConsecutiveCorrect {
		return
	}

	siblings := st.ItemsInSet(trigger.FactSetID)
	if len(siblings) == 0 {
		return
	}

	answered := 0
	for _, fi := range siblings {
		if st.Answered(fi.FactID) {
			answered++
		}
	}
	coverage := float64(answered) / float64(len(siblings))
	if coverage < bp.MinFactSetCoverage {
		return
	}

	promoted := 0
	for _, fi := range siblings {
		if fi.FactID == trigger.FactID || fi.StageID != from.ID {
			continue
		}
		e.transition(fi, from, to, answer, fi.ConsecutiveCorrect, now)
		promoted++
	}
	if promoted == 0 {
		return
	}

	if e.sink != nil {
		e.sink.BulkPromoted(BulkEvent{
			FactSetID:          trigger.FactSetID,
			PromotedFactsCount: promoted,
			ConsecutiveCorrect: streak,
			CoveragePercent:    coverage,
			Timestamp:          now,
		})
	}
}

// skippable stages are the ones whose pacing comes from the difficulty
// threshold map.
func skippable(s stage.Stage) bool {
	switch s.Kind {
	case stage.KindAssessment, stage.KindGrounding, stage.KindPracticeSlow, stage.KindPracticeFast:
		return true
	}
	return false
}
