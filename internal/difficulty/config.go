// Package difficulty maps recent answer accuracy onto a named tier of
// thresholds and limits that the rest of the engine reads.
package difficulty

import (
	"sort"

	"github.com/abiral/fluency/internal/stage"
)

// BulkPromotionConfig gates the sibling-fact bulk promotion feature.
type BulkPromotionConfig struct {
	Enabled bool

	// MinConsecutiveCorrect is the trigger fact's required streak
	// (measured before the promotion reset).
	MinConsecutiveCorrect int

	// MinFactSetCoverage is the required fraction of the fact set with
	// at least one recorded answer, in [0,1].
	MinFactSetCoverage float64
}

// Config is one difficulty tier: the full bundle of thresholds and
// limits active while the tier is selected.
type Config struct {
	Name string

	// MinAccuracy is the lowest recent accuracy at which this tier
	// qualifies.
	MinAccuracy float64

	// MaxFactsBeingLearned bounds the working set of not-yet-known
	// facts that have been introduced.
	MaxFactsBeingLearned int

	// PromotionThresholds and DemotionThresholds map stage IDs to
	// consecutive-answer counts. A missing entry or explicit zero
	// means the stage is skipped.
	PromotionThresholds map[string]int
	DemotionThresholds  map[string]int

	// KnownFactMinRatio and KnownFactMaxRatio steer the known/unknown
	// mix of recently asked questions.
	KnownFactMinRatio float64
	KnownFactMaxRatio float64

	BulkPromotion BulkPromotionConfig
}

// PromotionThreshold returns the promotion threshold for a stage.
// Missing entries read as 0 (skip).
func (c Config) PromotionThreshold(stageID string) int {
	return c.PromotionThresholds[stageID]
}

// DemotionThreshold returns the demotion threshold for a stage.
// Missing entries read as 0 (skip).
func (c Config) DemotionThreshold(stageID string) int {
	return c.DemotionThresholds[stageID]
}

// DynamicConfig is the ordered tier ladder plus the answer-window
// parameters for tier selection.
type DynamicConfig struct {
	// Configs are the tiers, kept sorted ascending by MinAccuracy.
	Configs []Config

	// MinAnswersForChange is the minimum total answers before the tier
	// may move off its initial value.
	MinAnswersForChange int

	// RecentAnswerWindow is how many trailing answers the accuracy is
	// computed over.
	RecentAnswerWindow int
}

// DefaultDynamicConfig returns the standard three-tier ladder with
// thresholds for every non-reinforcement stage of ladder.
func DefaultDynamicConfig(l *stage.Ladder) DynamicConfig {
	promo := func(assessment, grounding, practice int) map[string]int {
		m := make(map[string]int)
		for _, s := range l.Stages() {
			switch s.Kind {
			case stage.KindAssessment:
				m[s.ID] = assessment
			case stage.KindGrounding:
				m[s.ID] = grounding
			case stage.KindPracticeSlow, stage.KindPracticeFast:
				m[s.ID] = practice
			}
		}
		return m
	}
	demo := func(n int) map[string]int {
		m := make(map[string]int)
		for _, s := range l.Stages() {
			if s.Kind == stage.KindMastered {
				continue
			}
			m[s.ID] = n
		}
		return m
	}

	return DynamicConfig{
		MinAnswersForChange: 3,
		RecentAnswerWindow:  10,
		Configs: []Config{
			{
				Name:                 "easy",
				MinAccuracy:          0.0,
				MaxFactsBeingLearned: 3,
				PromotionThresholds:  promo(1, 2, 3),
				DemotionThresholds:   demo(2),
				KnownFactMinRatio:    0.4,
				KnownFactMaxRatio:    0.8,
				BulkPromotion:        BulkPromotionConfig{},
			},
			{
				Name:                 "medium",
				MinAccuracy:          0.5,
				MaxFactsBeingLearned: 5,
				PromotionThresholds:  promo(1, 2, 2),
				DemotionThresholds:   demo(2),
				KnownFactMinRatio:    0.3,
				KnownFactMaxRatio:    0.7,
				BulkPromotion: BulkPromotionConfig{
					Enabled:               true,
					MinConsecutiveCorrect: 3,
					MinFactSetCoverage:    0.6,
				},
			},
			{
				Name:                 "hard",
				MinAccuracy:          0.8,
				MaxFactsBeingLearned: 8,
				PromotionThresholds:  promo(1, 1, 2),
				DemotionThresholds:   demo(3),
				KnownFactMinRatio:    0.2,
				KnownFactMaxRatio:    0.6,
				BulkPromotion: BulkPromotionConfig{
					Enabled:               true,
					MinConsecutiveCorrect: 3,
					MinFactSetCoverage:    0.5,
				},
			},
		},
	}
}

// sortConfigs orders tiers ascending by MinAccuracy, preserving the
// relative order of equal thresholds.
func sortConfigs(configs []Config) []Config {
	out := make([]Config, len(configs))
	copy(out, configs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinAccuracy < out[j].MinAccuracy
	})
	return out
}
