package content

import (
	"strings"
	"testing"
)

func TestDefaultSets(t *testing.T) {
	sets := DefaultSets()
	if len(sets) != 9 {
		t.Fatalf("len(sets) = %d, want 9", len(sets))
	}
	if sets[0].ID != "times-2" {
		t.Errorf("sets[0].ID = %q, want times-2", sets[0].ID)
	}
	for _, set := range sets {
		if len(set.Facts) != 10 {
			t.Errorf("set %s has %d facts, want 10", set.ID, len(set.Facts))
		}
		for _, f := range set.Facts {
			if f.FactSetID != set.ID {
				t.Errorf("fact %s FactSetID = %q, want %q", f.ID, f.FactSetID, set.ID)
			}
		}
	}
}

func TestNewFact(t *testing.T) {
	f := NewFact(3, 4, "times-3")
	if f.ID != "3x4" {
		t.Errorf("ID = %q, want 3x4", f.ID)
	}
	if f.Text != "3 × 4" {
		t.Errorf("Text = %q, want 3 × 4", f.Text)
	}
	if f.Answer() != 12 {
		t.Errorf("Answer() = %d, want 12", f.Answer())
	}
}

func TestDefaultIndex(t *testing.T) {
	ix := DefaultIndex()
	if ix.FactCount() != 90 {
		t.Errorf("FactCount() = %d, want 90", ix.FactCount())
	}
	f, err := ix.Fact("7x8")
	if err != nil {
		t.Fatalf("Fact(7x8) error: %v", err)
	}
	if f.Answer() != 56 {
		t.Errorf("7x8 Answer() = %d, want 56", f.Answer())
	}
	if _, err := ix.Fact("99x99"); err == nil {
		t.Error("Fact(99x99) error = nil, want unknown-fact error")
	}
}

func TestNewIndex_Validation(t *testing.T) {
	cases := []struct {
		name    string
		sets    []FactSet
		wantErr string
	}{
		{
			name:    "empty set ID",
			sets:    []FactSet{{ID: ""}},
			wantErr: "empty ID",
		},
		{
			name: "duplicate set ID",
			sets: []FactSet{
				{ID: "s"},
				{ID: "s"},
			},
			wantErr: "duplicate fact set",
		},
		{
			name: "fact in wrong set",
			sets: []FactSet{
				{ID: "a", Facts: []Fact{{ID: "2x2", FactSetID: "b"}}},
			},
			wantErr: "claims set",
		},
		{
			name: "duplicate fact ID",
			sets: []FactSet{
				{ID: "a", Facts: []Fact{
					{ID: "2x2", FactSetID: "a"},
					{ID: "2x2", FactSetID: "a"},
				}},
			},
			wantErr: "duplicate fact ID",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewIndex(c.sets)
			if err == nil {
				t.Fatal("NewIndex error = nil, want error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, c.wantErr)
			}
		})
	}
}

func TestParsePack(t *testing.T) {
	raw := []byte(`{
		"fact_sets": [
			{
				"id": "times-5",
				"name": "5 times table",
				"facts": [
					{"id": "5x1", "factor_a": 5, "factor_b": 1, "fact_set_id": "times-5"},
					{"id": "5x2", "factor_a": 5, "factor_b": 2, "fact_set_id": "times-5"}
				]
			}
		]
	}`)
	sets, err := ParsePack(raw)
	if err != nil {
		t.Fatalf("ParsePack error: %v", err)
	}
	if len(sets) != 1 || len(sets[0].Facts) != 2 {
		t.Fatalf("got %d sets, want 1 set with 2 facts", len(sets))
	}
	// Text was omitted and should be filled with the canonical form.
	if got := sets[0].Facts[1].Text; got != "5 × 2" {
		t.Errorf("Facts[1].Text = %q, want 5 × 2", got)
	}
}

func TestParsePack_InvalidJSON(t *testing.T) {
	if _, err := ParsePack([]byte("{not json")); err == nil {
		t.Error("ParsePack error = nil, want invalid-JSON error")
	}
}

func TestParsePack_SchemaViolation(t *testing.T) {
	// Missing required factor fields.
	raw := []byte(`{
		"fact_sets": [
			{"id": "x", "name": "x", "facts": [{"id": "2x2"}]}
		]
	}`)
	_, err := ParsePack(raw)
	if err == nil {
		t.Fatal("ParsePack error = nil, want schema validation error")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("error = %q, want schema validation failure", err)
	}
}
