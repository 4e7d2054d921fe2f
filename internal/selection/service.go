// Package selection picks the next fact to ask about, balancing new
// fact introduction, known/unknown mixing, and per-stage cooldowns.
package selection

import (
	"math/rand"
	"sort"
	"time"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/difficulty"
	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/student"
)

// Config holds the selection tunables.
type Config struct {
	// MinQuestionInterval is the general cooldown applied to every
	// fact regardless of stage.
	MinQuestionInterval time.Duration

	// RecentHistorySize is how many trailing answers feed the
	// known/unknown ratio.
	RecentHistorySize int
}

// DefaultConfig returns the standard selection tunables.
func DefaultConfig() Config {
	return Config{
		MinQuestionInterval: 3 * time.Second,
		RecentHistorySize:   10,
	}
}

// Service implements the fact selection algorithm. It is stateless
// with respect to the learner; the state is passed into each call so
// every decision is a pure function of (state, config, now).
type Service struct {
	ladder *stage.Ladder
	index  *content.Index
	cfg    Config
	rng    *rand.Rand
}

// NewService creates a selection service. A nil rng falls back to a
// time-seeded source; tests pass a fixed seed.
func NewService(ladder *stage.Ladder, index *content.Index, cfg Config, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{ladder: ladder, index: index, cfg: cfg, rng: rng}
}

// SelectNextFact returns the next fact and its stage, or (nil, nil)
// when nothing is eligible right now. Callers advance time and retry;
// an empty result is not an error.
func (s *Service) SelectNextFact(st *student.State, diff difficulty.Config, now time.Time) (*content.Fact, *stage.Stage) {
	// Admit a never-shown fact while the working set has room.
	if s.BeingLearnedCount(st) < diff.MaxFactsBeingLearned {
		if item := s.nextNewItem(st); item != nil {
			return s.resolve(item)
		}
	}

	// Partition the already-introduced facts that are off cooldown.
	// Items referencing facts absent from the index (state written
	// under a larger content pack) are invisible here; they must never
	// win selection and then resolve to nothing.
	var known, unknown []*student.FactItem
	for _, fi := range st.Facts {
		if fi.LastAsked == nil {
			continue
		}
		if _, err := s.index.Fact(fi.FactID); err != nil {
			continue
		}
		stg, ok := s.ladder.ByID(fi.StageID)
		if !ok {
			continue
		}
		if !s.offCooldown(fi, stg, now) {
			continue
		}
		if stg.IsKnownFact() {
			known = append(known, fi)
		} else {
			unknown = append(unknown, fi)
		}
	}
	if len(known) == 0 && len(unknown) == 0 {
		return nil, nil
	}

	ratio := knownRatio(st.RecentAnswers(s.cfg.RecentHistorySize))

	// Steer toward the preferred pool; fall back to the globally
	// oldest eligible fact so Review facts can never monopolize
	// selection, nor be starved by it.
	var preferred []*student.FactItem
	switch {
	case ratio < diff.KnownFactMinRatio && len(known) > 0:
		preferred = known
	case ratio > diff.KnownFactMaxRatio && len(unknown) > 0:
		preferred = unknown
	default:
		preferred = append(append([]*student.FactItem{}, known...), unknown...)
	}

	return s.resolve(oldestFirst(preferred))
}

// UpdateLastAskedTime marks the fact as asked now and regenerates its
// tie-break jitter. Called when a question is actually presented, not
// merely selected.
func (s *Service) UpdateLastAskedTime(item *student.FactItem, now time.Time) {
	t := now
	item.LastAsked = &t
	item.RandomFactor = s.rng.Float64()
}

// BeingLearnedCount is the size of the working set: introduced facts
// whose stage does not yet count as known. Facts absent from the index
// cannot be asked, so they do not occupy a slot.
func (s *Service) BeingLearnedCount(st *student.State) int {
	count := 0
	for _, fi := range st.Facts {
		if fi.LastAsked == nil {
			continue
		}
		if _, err := s.index.Fact(fi.FactID); err != nil {
			continue
		}
		if stg, ok := s.ladder.ByID(fi.StageID); ok && !stg.IsKnownFact() {
			count++
		}
	}
	return count
}

// nextNewItem finds the first never-shown fact, honoring fact set
// introduction order: the earliest not-yet-fully-introduced set wins,
// ties broken by in-set order.
func (s *Service) nextNewItem(st *student.State) *student.FactItem {
	itemByFact := make(map[string]*student.FactItem, len(st.Facts))
	for _, fi := range st.Facts {
		itemByFact[fi.FactID] = fi
	}
	for _, set := range s.index.FactSets() {
		for _, f := range set.Facts {
			fi, ok := itemByFact[f.ID]
			if ok && fi.LastAsked == nil {
				return fi
			}
		}
	}
	return nil
}

// offCooldown applies the general interval plus, for reinforcement
// stages, the tier's own delay.
func (s *Service) offCooldown(fi *student.FactItem, stg stage.Stage, now time.Time) bool {
	elapsed := now.Sub(*fi.LastAsked)
	if elapsed < s.cfg.MinQuestionInterval {
		return false
	}
	if stg.Reinforcement() && elapsed < stg.Delay {
		return false
	}
	return true
}

func (s *Service) resolve(item *student.FactItem) (*content.Fact, *stage.Stage) {
	fact, err := s.index.Fact(item.FactID)
	if err != nil {
		return nil, nil
	}
	stg, ok := s.ladder.ByID(item.StageID)
	if !ok {
		return nil, nil
	}
	return &fact, &stg
}

// knownRatio is the fraction of recent answers that were on known
// facts. No history reads as 0.
func knownRatio(recent []student.AnswerRecord) float64 {
	if len(recent) == 0 {
		return 0
	}
	known := 0
	for _, a := range recent {
		if a.WasKnownFact {
			known++
		}
	}
	return float64(known) / float64(len(recent))
}

// oldestFirst picks the least recently asked item; ties fall to the
// lower random factor. The jitter exists precisely so ties never need
// a secondary queue or pure random choice.
func oldestFirst(items []*student.FactItem) *student.FactItem {
	sorted := make([]*student.FactItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.LastAsked.Equal(*b.LastAsked) {
			return a.LastAsked.Before(*b.LastAsked)
		}
		return a.RandomFactor < b.RandomFactor
	})
	return sorted[0]
}
