// Package content holds the static fact catalogue: the immutable
// arithmetic facts and the fact sets that group them. Nothing here is
// ever mutated after construction; progress records reference facts by
// ID only.
package content

import "fmt"

// Fact is a single arithmetic item to be learned.
type Fact struct {
	// ID uniquely identifies the fact, e.g. "3x4".
	ID string `json:"id"`

	// FactorA and FactorB are the operands.
	FactorA int `json:"factor_a"`
	FactorB int `json:"factor_b"`

	// Text is the display form, e.g. "3 × 4".
	Text string `json:"text"`

	// FactSetID names the set this fact belongs to.
	FactSetID string `json:"fact_set_id"`
}

// Answer returns the product of the fact's factors.
func (f Fact) Answer() int {
	return f.FactorA * f.FactorB
}

// FactSet is an ordered group of facts introduced together.
type FactSet struct {
	// ID uniquely identifies the set, e.g. "times-3".
	ID string `json:"id"`

	// Name is the display name, e.g. "3 times table".
	Name string `json:"name"`

	// Facts is the ordered sequence of facts in this set.
	Facts []Fact `json:"facts"`
}

// NewFact builds a multiplication fact with the canonical ID and text.
func NewFact(a, b int, factSetID string) Fact {
	return Fact{
		ID:        fmt.Sprintf("%dx%d", a, b),
		FactorA:   a,
		FactorB:   b,
		Text:      fmt.Sprintf("%d × %d", a, b),
		FactSetID: factSetID,
	}
}

// DefaultSets returns the built-in multiplication tables, one set per
// table from 2 through 10, each covering factors 1 through 10.
func DefaultSets() []FactSet {
	var sets []FactSet
	for table := 2; table <= 10; table++ {
		id := fmt.Sprintf("times-%d", table)
		set := FactSet{
			ID:   id,
			Name: fmt.Sprintf("%d times table", table),
		}
		for b := 1; b <= 10; b++ {
			set.Facts = append(set.Facts, NewFact(table, b, id))
		}
		sets = append(sets, set)
	}
	return sets
}
