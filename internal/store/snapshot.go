package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abiral/fluency/ent"
	"github.com/abiral/fluency/ent/snapshot"
)

// keepSnapshots is how many revisions Save retains per learner.
const keepSnapshots = 20

// snapshotStore implements StateStore on the ent Snapshot entity.
// Every Save appends a new revision; Load reads the newest one, so a
// torn write can never corrupt the current record. Old revisions are
// pruned on save.
type snapshotStore struct {
	client  *ent.Client
	seq     *sequenceCounter
	learner string
}

func (s *snapshotStore) Exists(ctx context.Context) (bool, error) {
	exists, err := s.client.Snapshot.Query().
		Where(snapshot.Learner(s.learner)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("query snapshot existence: %w", err)
	}
	return exists, nil
}

func (s *snapshotStore) Load(ctx context.Context) (json.RawMessage, error) {
	rec, err := s.client.Snapshot.Query().
		Where(snapshot.Learner(s.learner)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return json.RawMessage(rec.Data), nil
}

func (s *snapshotStore) Save(ctx context.Context, raw json.RawMessage) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	_, err = s.client.Snapshot.Create().
		SetLearner(s.learner).
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetData(string(raw)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	// Best effort; a failed prune never fails the save.
	_ = s.Prune(ctx, keepSnapshots)
	return nil
}

// Prune deletes all but the keep most recent snapshots for this
// learner.
func (s *snapshotStore) Prune(ctx context.Context, keep int) error {
	older, err := s.client.Snapshot.Query().
		Where(snapshot.Learner(s.learner)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(older) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := older[0].Sequence
	_, err = s.client.Snapshot.Delete().
		Where(
			snapshot.Learner(s.learner),
			snapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
