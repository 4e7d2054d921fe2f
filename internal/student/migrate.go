package student

import (
	"encoding/json"
	"fmt"

	"github.com/abiral/fluency/internal/stage"
)

// Migration upgrades a state from one schema version to the next.
// Migrations are single-step and forward-only; the registry chains
// them into a path.
type Migration interface {
	FromVersion() int
	ToVersion() int

	// CanMigrate reports whether state has the shape this migration
	// expects.
	CanMigrate(state any) bool

	// Migrate converts state to the next version's shape.
	Migrate(state any) (any, error)
}

// envelope is the persisted record format: an explicit version plus
// the payload shaped for that version.
type envelope struct {
	Version int             `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

// Registry resolves migration paths and decodes stored records of any
// supported version into the current State.
type Registry struct {
	byFrom   map[int]Migration
	decoders map[int]func(json.RawMessage) (any, error)
}

// NewRegistry builds the registry with the full migration chain.
// The ladder is needed to derive the known-fact flag for records
// written before it existed.
func NewRegistry(ladder *stage.Ladder) *Registry {
	r := &Registry{
		byFrom:   make(map[int]Migration),
		decoders: make(map[int]func(json.RawMessage) (any, error)),
	}
	r.register(&migrationV1ToV2{})
	r.register(&migrationV2ToV3{ladder: ladder})

	r.decoders[1] = func(raw json.RawMessage) (any, error) {
		var s stateV1
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	r.decoders[2] = func(raw json.RawMessage) (any, error) {
		var s stateV2
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	r.decoders[3] = func(raw json.RawMessage) (any, error) {
		var s State
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		s.Version = CurrentVersion
		return &s, nil
	}
	return r
}

func (r *Registry) register(m Migration) {
	r.byFrom[m.FromVersion()] = m
}

// GetMigrationPath returns the ordered single-step migrations from
// version from to version to. A downgrade request or a path through an
// unregistered version returns nil.
func (r *Registry) GetMigrationPath(from, to int) []Migration {
	if from > to {
		return nil
	}
	if from == to {
		return []Migration{}
	}
	var path []Migration
	for v := from; v < to; {
		m, ok := r.byFrom[v]
		if !ok {
			return nil
		}
		path = append(path, m)
		v = m.ToVersion()
	}
	return path
}

// MigrateToLatest runs state (at the given version) through the chain.
// An already-current *State is returned unchanged.
func (r *Registry) MigrateToLatest(state any, version int) (*State, error) {
	if version == CurrentVersion {
		if st, ok := state.(*State); ok {
			return st, nil
		}
		return nil, fmt.Errorf("state claims version %d but has shape %T", version, state)
	}

	path := r.GetMigrationPath(version, CurrentVersion)
	if path == nil {
		return nil, fmt.Errorf("no migration path from version %d to %d", version, CurrentVersion)
	}

	cur := state
	for _, m := range path {
		if !m.CanMigrate(cur) {
			return nil, fmt.Errorf("migration v%d->v%d cannot handle %T", m.FromVersion(), m.ToVersion(), cur)
		}
		next, err := m.Migrate(cur)
		if err != nil {
			return nil, fmt.Errorf("migration v%d->v%d: %w", m.FromVersion(), m.ToVersion(), err)
		}
		cur = next
	}

	st, ok := cur.(*State)
	if !ok {
		return nil, fmt.Errorf("migration chain ended with %T, want *student.State", cur)
	}
	st.Version = CurrentVersion
	return st, nil
}

// Decode parses a stored envelope and migrates the payload to the
// current version. No caller ever observes an old schema.
func (r *Registry) Decode(raw []byte) (*State, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode state envelope: %w", err)
	}
	dec, ok := r.decoders[env.Version]
	if !ok {
		return nil, fmt.Errorf("unsupported state version %d", env.Version)
	}
	state, err := dec(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode state v%d: %w", env.Version, err)
	}
	return r.MigrateToLatest(state, env.Version)
}

// Encode wraps st in the current-version envelope.
func Encode(st *State) ([]byte, error) {
	payload, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return json.Marshal(envelope{Version: CurrentVersion, Payload: payload})
}

// migrationV1ToV2 splits the signed streak into the two streak
// counters and carries stage/set context onto answer records.
type migrationV1ToV2 struct{}

func (migrationV1ToV2) FromVersion() int { return 1 }
func (migrationV1ToV2) ToVersion() int   { return 2 }

func (migrationV1ToV2) CanMigrate(state any) bool {
	_, ok := state.(*stateV1)
	return ok
}

func (migrationV1ToV2) Migrate(state any) (any, error) {
	old := state.(*stateV1)
	next := &stateV2{CreatedAt: old.CreatedAt}

	itemByFact := make(map[string]factItemV1, len(old.Facts))
	for _, fi := range old.Facts {
		itemByFact[fi.FactID] = fi
		item := factItemV2{
			FactID:    fi.FactID,
			FactSetID: fi.FactSetID,
			StageID:   fi.StageID,
			LastAsked: fi.LastAsked,
		}
		if fi.Streak > 0 {
			item.ConsecutiveCorrect = fi.Streak
		} else if fi.Streak < 0 {
			item.ConsecutiveIncorrect = -fi.Streak
		}
		next.Facts = append(next.Facts, item)
	}

	for _, a := range old.Answers {
		rec := answerV2{
			FactID:    a.FactID,
			Type:      string(AnswerIncorrect),
			Timestamp: a.Timestamp,
		}
		if a.Correct {
			rec.Type = string(AnswerCorrect)
		}
		// V1 never recorded the stage at answer time; the fact's
		// current stage is the best available approximation.
		if fi, ok := itemByFact[a.FactID]; ok {
			rec.FactSetID = fi.FactSetID
			rec.StageID = fi.StageID
		}
		next.Answers = append(next.Answers, rec)
	}
	return next, nil
}

// migrationV2ToV3 rebuilds the aggregate stats from the answer log and
// derives the known-fact flag from each record's stage.
type migrationV2ToV3 struct {
	ladder *stage.Ladder
}

func (migrationV2ToV3) FromVersion() int { return 2 }
func (migrationV2ToV3) ToVersion() int   { return 3 }

func (migrationV2ToV3) CanMigrate(state any) bool {
	_, ok := state.(*stateV2)
	return ok
}

func (m migrationV2ToV3) Migrate(state any) (any, error) {
	old := state.(*stateV2)
	next := &State{
		Version:   3,
		CreatedAt: old.CreatedAt,
		Stats:     make(map[string]*FactStats),
	}

	for _, fi := range old.Facts {
		item := &FactItem{
			FactID:               fi.FactID,
			FactSetID:            fi.FactSetID,
			StageID:              fi.StageID,
			LastAsked:            fi.LastAsked,
			ConsecutiveCorrect:   fi.ConsecutiveCorrect,
			ConsecutiveIncorrect: fi.ConsecutiveIncorrect,
			RandomFactor:         fi.RandomFactor,
		}
		// Both counters nonzero would violate the streak invariant;
		// keep the correct run and drop the stale incorrect one.
		if item.ConsecutiveCorrect > 0 && item.ConsecutiveIncorrect > 0 {
			item.ConsecutiveIncorrect = 0
		}
		next.Facts = append(next.Facts, item)
	}

	for _, a := range old.Answers {
		rec := AnswerRecord{
			FactID:    a.FactID,
			FactSetID: a.FactSetID,
			StageID:   a.StageID,
			Type:      AnswerType(a.Type),
			Timestamp: a.Timestamp,
		}
		if s, ok := m.ladder.ByID(a.StageID); ok {
			rec.WasKnownFact = s.IsKnownFact()
		}
		next.RecordAnswer(rec, 0)
	}

	// RecordAnswer already trimmed nothing; bound the carried history
	// to the configured window now that stats are rebuilt.
	if len(next.AnswerHistory) > DefaultHistoryLimit {
		next.AnswerHistory = next.AnswerHistory[len(next.AnswerHistory)-DefaultHistoryLimit:]
	}
	return next, nil
}
