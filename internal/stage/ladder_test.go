package stage

import (
	"testing"
	"time"
)

func TestBuild_Order(t *testing.T) {
	l := DefaultLadder()
	stages := l.Stages()

	wantIDs := []string{
		"assessment", "grounding", "practice-slow", "practice-fast",
		"review-2m", "review-4m", "review-8m",
		"repetition-1d", "repetition-2d", "repetition-4d", "repetition-7d",
		"mastered",
	}
	if len(stages) != len(wantIDs) {
		t.Fatalf("len(stages) = %d, want %d", len(stages), len(wantIDs))
	}
	for i, id := range wantIDs {
		if stages[i].ID != id {
			t.Errorf("stages[%d].ID = %q, want %q", i, stages[i].ID, id)
		}
		if stages[i].Order != i {
			t.Errorf("stages[%d].Order = %d, want %d", i, stages[i].Order, i)
		}
	}
}

func TestLadder_First(t *testing.T) {
	l := DefaultLadder()
	if got := l.First(); got.Kind != KindAssessment {
		t.Errorf("First().Kind = %s, want assessment", got.Kind)
	}
}

func TestLadder_NextPrev(t *testing.T) {
	l := DefaultLadder()

	next, ok := l.Next("practice-fast")
	if !ok || next.ID != "review-2m" {
		t.Errorf("Next(practice-fast) = %q, %v, want review-2m, true", next.ID, ok)
	}
	if _, ok := l.Next("mastered"); ok {
		t.Error("Next(mastered) ok = true, want false at the top")
	}

	prev, ok := l.Prev("review-2m")
	if !ok || prev.ID != "practice-fast" {
		t.Errorf("Prev(review-2m) = %q, %v, want practice-fast, true", prev.ID, ok)
	}
	if _, ok := l.Prev("assessment"); ok {
		t.Error("Prev(assessment) ok = true, want false at the bottom")
	}

	if _, ok := l.Next("nope"); ok {
		t.Error("Next(nope) ok = true, want false for unknown id")
	}
}

func TestLadder_Grounding(t *testing.T) {
	l := DefaultLadder()
	if got := l.Grounding(); got.ID != "grounding" {
		t.Errorf("Grounding().ID = %q, want grounding", got.ID)
	}
}

func TestStage_Classification(t *testing.T) {
	l := DefaultLadder()

	known := map[string]bool{
		"assessment":    false,
		"grounding":     false,
		"practice-slow": false,
		"practice-fast": false,
		"review-2m":     true,
		"repetition-1d": true,
		"mastered":      true,
	}
	for id, want := range known {
		stg, ok := l.ByID(id)
		if !ok {
			t.Fatalf("ByID(%q) not found", id)
		}
		if got := stg.IsKnownFact(); got != want {
			t.Errorf("%s IsKnownFact = %v, want %v", id, got, want)
		}
	}

	if stg, _ := l.ByID("mastered"); !stg.IsFullyLearned() {
		t.Error("mastered IsFullyLearned = false, want true")
	}
	if stg, _ := l.ByID("repetition-7d"); stg.IsFullyLearned() {
		t.Error("repetition-7d IsFullyLearned = true, want false")
	}
}

func TestStage_Reinforcement(t *testing.T) {
	l := DefaultLadder()

	stg, _ := l.ByID("review-4m")
	if !stg.Reinforcement() {
		t.Error("review-4m Reinforcement = false, want true")
	}
	if stg.Delay != 4*time.Minute {
		t.Errorf("review-4m Delay = %s, want 4m", stg.Delay)
	}
	if stg.Tier != 1 {
		t.Errorf("review-4m Tier = %d, want 1", stg.Tier)
	}

	stg, _ = l.ByID("practice-slow")
	if stg.Reinforcement() {
		t.Error("practice-slow Reinforcement = true, want false")
	}
}

func TestStage_Timed(t *testing.T) {
	l := DefaultLadder()
	if stg, _ := l.ByID("grounding"); stg.Timed() {
		t.Error("grounding Timed = true, want false")
	}
	if stg, _ := l.ByID("assessment"); !stg.Timed() {
		t.Error("assessment Timed = false, want true")
	}
}

func TestShortDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{2 * time.Minute, "2m"},
		{24 * time.Hour, "1d"},
		{7 * 24 * time.Hour, "7d"},
		{90 * time.Second, "90s"},
	}
	for _, c := range cases {
		if got := shortDuration(c.d); got != c.want {
			t.Errorf("shortDuration(%s) = %q, want %q", c.d, got, c.want)
		}
	}
}
