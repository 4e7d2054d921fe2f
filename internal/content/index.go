package content

import "fmt"

// Index is the canonical content lookup: fact sets in introduction
// order plus by-ID resolution for facts and sets.
type Index struct {
	sets      []FactSet
	setsByID  map[string]FactSet
	factsByID map[string]Fact
}

// NewIndex builds an index over the given sets, validating that IDs
// are unique and that every fact references its owning set.
func NewIndex(sets []FactSet) (*Index, error) {
	ix := &Index{
		setsByID:  make(map[string]FactSet),
		factsByID: make(map[string]Fact),
	}
	for _, set := range sets {
		if set.ID == "" {
			return nil, fmt.Errorf("fact set with empty ID")
		}
		if _, dup := ix.setsByID[set.ID]; dup {
			return nil, fmt.Errorf("duplicate fact set ID %q", set.ID)
		}
		for _, f := range set.Facts {
			if f.ID == "" {
				return nil, fmt.Errorf("fact with empty ID in set %q", set.ID)
			}
			if f.FactSetID != set.ID {
				return nil, fmt.Errorf("fact %q claims set %q but lives in %q", f.ID, f.FactSetID, set.ID)
			}
			if _, dup := ix.factsByID[f.ID]; dup {
				return nil, fmt.Errorf("duplicate fact ID %q", f.ID)
			}
			ix.factsByID[f.ID] = f
		}
		ix.setsByID[set.ID] = set
		ix.sets = append(ix.sets, set)
	}
	return ix, nil
}

// DefaultIndex builds an index over the built-in multiplication tables.
func DefaultIndex() *Index {
	ix, err := NewIndex(DefaultSets())
	if err != nil {
		// The built-in content is validated by tests; a failure here is
		// a programmer error.
		panic(err)
	}
	return ix
}

// Fact resolves a fact by ID.
func (ix *Index) Fact(id string) (Fact, error) {
	f, ok := ix.factsByID[id]
	if !ok {
		return Fact{}, fmt.Errorf("unknown fact %q", id)
	}
	return f, nil
}

// FactSet resolves a set by ID.
func (ix *Index) FactSet(id string) (FactSet, error) {
	s, ok := ix.setsByID[id]
	if !ok {
		return FactSet{}, fmt.Errorf("unknown fact set %q", id)
	}
	return s, nil
}

// FactSets returns the sets in introduction order.
func (ix *Index) FactSets() []FactSet {
	out := make([]FactSet, len(ix.sets))
	copy(out, ix.sets)
	return out
}

// AllFacts returns every fact in set order, then in-set order.
func (ix *Index) AllFacts() []Fact {
	var out []Fact
	for _, set := range ix.sets {
		out = append(out, set.Facts...)
	}
	return out
}

// FactCount returns the total number of facts.
func (ix *Index) FactCount() int {
	return len(ix.factsByID)
}
