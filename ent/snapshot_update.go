// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/predicate"
	"github.com/abiral/fluency/ent/snapshot"
)

// SnapshotUpdate is the builder for updating Snapshot entities.
type SnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SnapshotMutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (su *SnapshotUpdate) Where(ps ...predicate.Snapshot) *SnapshotUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetLearner sets the "learner" field.
func (su *SnapshotUpdate) SetLearner(s string) *SnapshotUpdate {
	su.mutation.SetLearner(s)
	return su
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (su *SnapshotUpdate) SetNillableLearner(s *string) *SnapshotUpdate {
	if s != nil {
		su.SetLearner(*s)
	}
	return su
}

// SetSequence sets the "sequence" field.
func (su *SnapshotUpdate) SetSequence(i int64) *SnapshotUpdate {
	su.mutation.ResetSequence()
	su.mutation.SetSequence(i)
	return su
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (su *SnapshotUpdate) SetNillableSequence(i *int64) *SnapshotUpdate {
	if i != nil {
		su.SetSequence(*i)
	}
	return su
}

// AddSequence adds i to the "sequence" field.
func (su *SnapshotUpdate) AddSequence(i int64) *SnapshotUpdate {
	su.mutation.AddSequence(i)
	return su
}

// SetTimestamp sets the "timestamp" field.
func (su *SnapshotUpdate) SetTimestamp(t time.Time) *SnapshotUpdate {
	su.mutation.SetTimestamp(t)
	return su
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (su *SnapshotUpdate) SetNillableTimestamp(t *time.Time) *SnapshotUpdate {
	if t != nil {
		su.SetTimestamp(*t)
	}
	return su
}

// SetData sets the "data" field.
func (su *SnapshotUpdate) SetData(s string) *SnapshotUpdate {
	su.mutation.SetData(s)
	return su
}

// SetNillableData sets the "data" field if the given value is not nil.
func (su *SnapshotUpdate) SetNillableData(s *string) *SnapshotUpdate {
	if s != nil {
		su.SetData(*s)
	}
	return su
}

// Mutation returns the SnapshotMutation object of the builder.
func (su *SnapshotUpdate) Mutation() *SnapshotMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SnapshotUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SnapshotUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SnapshotUpdate) check() error {
	if v, ok := su.mutation.Learner(); ok {
		if err := snapshot.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "Snapshot.learner": %w`, err)}
		}
	}
	return nil
}

func (su *SnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Learner(); ok {
		_spec.SetField(snapshot.FieldLearner, field.TypeString, value)
	}
	if value, ok := su.mutation.Sequence(); ok {
		_spec.SetField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := su.mutation.AddedSequence(); ok {
		_spec.AddField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := su.mutation.Timestamp(); ok {
		_spec.SetField(snapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := su.mutation.Data(); ok {
		_spec.SetField(snapshot.FieldData, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SnapshotUpdateOne is the builder for updating a single Snapshot entity.
type SnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SnapshotMutation
}

// SetLearner sets the "learner" field.
func (suo *SnapshotUpdateOne) SetLearner(s string) *SnapshotUpdateOne {
	suo.mutation.SetLearner(s)
	return suo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (suo *SnapshotUpdateOne) SetNillableLearner(s *string) *SnapshotUpdateOne {
	if s != nil {
		suo.SetLearner(*s)
	}
	return suo
}

// SetSequence sets the "sequence" field.
func (suo *SnapshotUpdateOne) SetSequence(i int64) *SnapshotUpdateOne {
	suo.mutation.ResetSequence()
	suo.mutation.SetSequence(i)
	return suo
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (suo *SnapshotUpdateOne) SetNillableSequence(i *int64) *SnapshotUpdateOne {
	if i != nil {
		suo.SetSequence(*i)
	}
	return suo
}

// AddSequence adds i to the "sequence" field.
func (suo *SnapshotUpdateOne) AddSequence(i int64) *SnapshotUpdateOne {
	suo.mutation.AddSequence(i)
	return suo
}

// SetTimestamp sets the "timestamp" field.
func (suo *SnapshotUpdateOne) SetTimestamp(t time.Time) *SnapshotUpdateOne {
	suo.mutation.SetTimestamp(t)
	return suo
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (suo *SnapshotUpdateOne) SetNillableTimestamp(t *time.Time) *SnapshotUpdateOne {
	if t != nil {
		suo.SetTimestamp(*t)
	}
	return suo
}

// SetData sets the "data" field.
func (suo *SnapshotUpdateOne) SetData(s string) *SnapshotUpdateOne {
	suo.mutation.SetData(s)
	return suo
}

// SetNillableData sets the "data" field if the given value is not nil.
func (suo *SnapshotUpdateOne) SetNillableData(s *string) *SnapshotUpdateOne {
	if s != nil {
		suo.SetData(*s)
	}
	return suo
}

// Mutation returns the SnapshotMutation object of the builder.
func (suo *SnapshotUpdateOne) Mutation() *SnapshotMutation {
	return suo.mutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (suo *SnapshotUpdateOne) Where(ps ...predicate.Snapshot) *SnapshotUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SnapshotUpdateOne) Select(field string, fields ...string) *SnapshotUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Snapshot entity.
func (suo *SnapshotUpdateOne) Save(ctx context.Context) (*Snapshot, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SnapshotUpdateOne) SaveX(ctx context.Context) *Snapshot {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SnapshotUpdateOne) check() error {
	if v, ok := suo.mutation.Learner(); ok {
		if err := snapshot.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "Snapshot.learner": %w`, err)}
		}
	}
	return nil
}

func (suo *SnapshotUpdateOne) sqlSave(ctx context.Context) (_node *Snapshot, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Snapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, snapshot.FieldID)
		for _, f := range fields {
			if !snapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != snapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Learner(); ok {
		_spec.SetField(snapshot.FieldLearner, field.TypeString, value)
	}
	if value, ok := suo.mutation.Sequence(); ok {
		_spec.SetField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := suo.mutation.AddedSequence(); ok {
		_spec.AddField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := suo.mutation.Timestamp(); ok {
		_spec.SetField(snapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := suo.mutation.Data(); ok {
		_spec.SetField(snapshot.FieldData, field.TypeString, value)
	}
	_node = &Snapshot{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
