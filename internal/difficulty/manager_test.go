package difficulty

import (
	"testing"
	"time"

	"github.com/abiral/fluency/internal/stage"
	"github.com/abiral/fluency/internal/student"
)

func answers(correct, total int) []student.AnswerRecord {
	recs := make([]student.AnswerRecord, total)
	for i := range recs {
		recs[i] = student.AnswerRecord{
			FactID:    "2x2",
			Type:      student.AnswerIncorrect,
			Timestamp: time.Now().UTC(),
		}
		if i < correct {
			recs[i].Type = student.AnswerCorrect
		}
	}
	return recs
}

func TestNewManager_StartsAtLowestTier(t *testing.T) {
	m := NewManager(DefaultDynamicConfig(stage.DefaultLadder()))
	if got := m.Current().Name; got != "easy" {
		t.Errorf("Current().Name = %q, want easy", got)
	}
}

func TestUpdateDifficulty_TierSelection(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		total   int
		want    string
	}{
		{"perfect", 5, 5, "hard"},
		{"exactly at hard threshold", 4, 5, "hard"},
		{"middling", 3, 5, "medium"},
		{"exactly at medium threshold", 5, 10, "medium"},
		{"struggling", 0, 5, "easy"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewManager(DefaultDynamicConfig(stage.DefaultLadder()))
			m.UpdateDifficulty(answers(c.correct, c.total))
			if got := m.Current().Name; got != c.want {
				t.Errorf("Current().Name = %q, want %q", got, c.want)
			}
		})
	}
}

func TestUpdateDifficulty_BelowMinimumIsNoOp(t *testing.T) {
	m := NewManager(DefaultDynamicConfig(stage.DefaultLadder()))
	m.UpdateDifficulty(answers(2, 2))
	if got := m.Current().Name; got != "easy" {
		t.Errorf("Current().Name = %q, want easy with too few answers", got)
	}
}

func TestUpdateDifficulty_WindowLimitsAccuracy(t *testing.T) {
	cfg := DefaultDynamicConfig(stage.DefaultLadder())
	m := NewManager(cfg)

	// 20 incorrect followed by 10 correct: only the trailing window of
	// 10 counts, so accuracy is 1.0.
	recs := append(answers(0, 20), answers(10, 10)...)
	m.UpdateDifficulty(recs)
	if got := m.Current().Name; got != "hard" {
		t.Errorf("Current().Name = %q, want hard (window ignores old misses)", got)
	}
}

func TestUpdateDifficulty_Idempotent(t *testing.T) {
	m := NewManager(DefaultDynamicConfig(stage.DefaultLadder()))
	recs := answers(3, 5)
	m.UpdateDifficulty(recs)
	first := m.Current().Name
	m.UpdateDifficulty(recs)
	if got := m.Current().Name; got != first {
		t.Errorf("Current().Name = %q after repeat, want %q", got, first)
	}
}

func TestUpdateDifficulty_DemotesOnDecline(t *testing.T) {
	m := NewManager(DefaultDynamicConfig(stage.DefaultLadder()))
	m.UpdateDifficulty(answers(5, 5))
	if m.Current().Name != "hard" {
		t.Fatalf("setup: Current().Name = %q, want hard", m.Current().Name)
	}
	m.UpdateDifficulty(answers(1, 5))
	if got := m.Current().Name; got != "easy" {
		t.Errorf("Current().Name = %q, want easy after decline", got)
	}
}

func TestSortConfigs_StablePreservesEqualThresholds(t *testing.T) {
	configs := []Config{
		{Name: "b", MinAccuracy: 0.5},
		{Name: "a", MinAccuracy: 0.0},
		{Name: "c", MinAccuracy: 0.5},
	}
	sorted := sortConfigs(configs)
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if sorted[i].Name != want {
			t.Errorf("sorted[%d].Name = %q, want %q", i, sorted[i].Name, want)
		}
	}
}

func TestConfig_ThresholdDefaults(t *testing.T) {
	c := Config{PromotionThresholds: map[string]int{"grounding": 2}}
	if got := c.PromotionThreshold("grounding"); got != 2 {
		t.Errorf("PromotionThreshold(grounding) = %d, want 2", got)
	}
	if got := c.PromotionThreshold("unknown"); got != 0 {
		t.Errorf("PromotionThreshold(unknown) = %d, want 0", got)
	}
	if got := c.DemotionThreshold("unknown"); got != 0 {
		t.Errorf("DemotionThreshold(unknown) = %d, want 0", got)
	}
}
