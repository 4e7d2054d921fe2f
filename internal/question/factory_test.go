package question

import (
	"math/rand"
	"testing"

	"github.com/abiral/fluency/internal/content"
	"github.com/abiral/fluency/internal/stage"
)

func testFactory() *Factory {
	return NewFactory(rand.New(rand.NewSource(7)))
}

func TestCreateQuestionForStage_Fields(t *testing.T) {
	f := testFactory()
	ladder := stage.DefaultLadder()
	fact := content.NewFact(3, 4, "times-3")

	stg, _ := ladder.ByID("practice-slow")
	q := f.CreateQuestionForStage(fact, stg)

	if q.ID == "" {
		t.Error("ID is empty, want a uuid")
	}
	if q.FactID != "3x4" || q.FactSetID != "times-3" {
		t.Errorf("fact refs = %q/%q, want 3x4/times-3", q.FactID, q.FactSetID)
	}
	if q.Text != "3 × 4" {
		t.Errorf("Text = %q, want 3 × 4", q.Text)
	}
	if q.Answer != 12 {
		t.Errorf("Answer = %d, want 12", q.Answer)
	}
	if q.TimerSeconds != stg.TimerSeconds {
		t.Errorf("TimerSeconds = %d, want %d", q.TimerSeconds, stg.TimerSeconds)
	}
}

func TestCreateQuestionForStage_Mode(t *testing.T) {
	f := testFactory()
	ladder := stage.DefaultLadder()
	fact := content.NewFact(6, 7, "times-6")

	cases := []struct {
		stageID string
		want    Mode
	}{
		{"assessment", ModeAssessment},
		{"grounding", ModeGrounding},
		{"practice-slow", ModePractice},
		{"review-2m", ModePractice},
		{"repetition-1d", ModePractice},
		{"mastered", ModePractice},
	}
	for _, c := range cases {
		stg, ok := ladder.ByID(c.stageID)
		if !ok {
			t.Fatalf("unknown stage %q", c.stageID)
		}
		q := f.CreateQuestionForStage(fact, stg)
		if q.Mode != c.want {
			t.Errorf("%s Mode = %q, want %q", c.stageID, q.Mode, c.want)
		}
	}

	if q := f.CreateQuestionForStage(fact, ladder.Grounding()); q.TimerSeconds != 0 {
		t.Errorf("grounding TimerSeconds = %d, want 0 (untimed)", q.TimerSeconds)
	}
}

func TestChoices_ExactlyOneCorrect(t *testing.T) {
	f := testFactory()
	ladder := stage.DefaultLadder()

	for _, fact := range content.DefaultIndex().AllFacts() {
		q := f.CreateQuestionForStage(fact, ladder.First())
		if len(q.Choices) != NumChoices {
			t.Fatalf("%s: len(Choices) = %d, want %d", fact.ID, len(q.Choices), NumChoices)
		}
		correct := 0
		seen := map[int]bool{}
		for _, c := range q.Choices {
			if c == q.Answer {
				correct++
			}
			if c <= 0 {
				t.Errorf("%s: choice %d is not positive", fact.ID, c)
			}
			if seen[c] {
				t.Errorf("%s: duplicate choice %d", fact.ID, c)
			}
			seen[c] = true
		}
		if correct != 1 {
			t.Errorf("%s: correct answer appears %d times, want 1", fact.ID, correct)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	q := &Question{Answer: 12, Choices: []int{10, 12, 14, 16}}

	cases := []struct {
		input string
		want  bool
	}{
		{"12", true},
		{" 12 ", true},
		{"012", true},
		{"13", false},
		{"", false},
		{"twelve", false},
		// 2 denotes the second choice (12) since 2 is not itself an option.
		{"2", true},
		{"3", false},
	}
	for _, c := range cases {
		if got := q.CheckAnswer(c.input); got != c.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestCheckAnswer_IndexAmbiguityFavorsValue(t *testing.T) {
	// 3 is both a possible index and an actual option value; it must be
	// read as the value.
	q := &Question{Answer: 6, Choices: []int{3, 6, 9, 12}}
	if q.CheckAnswer("3") {
		t.Error("CheckAnswer(3) = true, want false (3 is the option value, not index 3)")
	}
	if !q.CheckAnswer("2") {
		t.Error("CheckAnswer(2) = false, want true (index 2 names the answer)")
	}
}
