// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/answerevent"
	"github.com/abiral/fluency/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeu *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetFactID sets the "fact_id" field.
func (aeu *AnswerEventUpdate) SetFactID(s string) *AnswerEventUpdate {
	aeu.mutation.SetFactID(s)
	return aeu
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableFactID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetFactID(*s)
	}
	return aeu
}

// SetFactSetID sets the "fact_set_id" field.
func (aeu *AnswerEventUpdate) SetFactSetID(s string) *AnswerEventUpdate {
	aeu.mutation.SetFactSetID(s)
	return aeu
}

// SetNillableFactSetID sets the "fact_set_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableFactSetID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetFactSetID(*s)
	}
	return aeu
}

// SetStageID sets the "stage_id" field.
func (aeu *AnswerEventUpdate) SetStageID(s string) *AnswerEventUpdate {
	aeu.mutation.SetStageID(s)
	return aeu
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableStageID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetStageID(*s)
	}
	return aeu
}

// SetAnswerType sets the "answer_type" field.
func (aeu *AnswerEventUpdate) SetAnswerType(s string) *AnswerEventUpdate {
	aeu.mutation.SetAnswerType(s)
	return aeu
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableAnswerType(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetAnswerType(*s)
	}
	return aeu
}

// SetWasKnownFact sets the "was_known_fact" field.
func (aeu *AnswerEventUpdate) SetWasKnownFact(b bool) *AnswerEventUpdate {
	aeu.mutation.SetWasKnownFact(b)
	return aeu
}

// SetNillableWasKnownFact sets the "was_known_fact" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableWasKnownFact(b *bool) *AnswerEventUpdate {
	if b != nil {
		aeu.SetWasKnownFact(*b)
	}
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AnswerEventUpdate) SetSessionID(s string) *AnswerEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableSessionID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// ClearSessionID clears the value of the "session_id" field.
func (aeu *AnswerEventUpdate) ClearSessionID() *AnswerEventUpdate {
	aeu.mutation.ClearSessionID()
	return aeu
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeu *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AnswerEventUpdate) check() error {
	if v, ok := aeu.mutation.FactID(); ok {
		if err := answerevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.fact_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.FactSetID(); ok {
		if err := answerevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.fact_set_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.StageID(); ok {
		if err := answerevent.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.stage_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.AnswerType(); ok {
		if err := answerevent.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answer_type": %w`, err)}
		}
	}
	return nil
}

func (aeu *AnswerEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.FactID(); ok {
		_spec.SetField(answerevent.FieldFactID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.FactSetID(); ok {
		_spec.SetField(answerevent.FieldFactSetID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.StageID(); ok {
		_spec.SetField(answerevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.AnswerType(); ok {
		_spec.SetField(answerevent.FieldAnswerType, field.TypeString, value)
	}
	if value, ok := aeu.mutation.WasKnownFact(); ok {
		_spec.SetField(answerevent.FieldWasKnownFact, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if aeu.mutation.SessionIDCleared() {
		_spec.ClearField(answerevent.FieldSessionID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetFactID sets the "fact_id" field.
func (aeuo *AnswerEventUpdateOne) SetFactID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetFactID(s)
	return aeuo
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableFactID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetFactID(*s)
	}
	return aeuo
}

// SetFactSetID sets the "fact_set_id" field.
func (aeuo *AnswerEventUpdateOne) SetFactSetID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetFactSetID(s)
	return aeuo
}

// SetNillableFactSetID sets the "fact_set_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableFactSetID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetFactSetID(*s)
	}
	return aeuo
}

// SetStageID sets the "stage_id" field.
func (aeuo *AnswerEventUpdateOne) SetStageID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetStageID(s)
	return aeuo
}

// SetNillableStageID sets the "stage_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableStageID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetStageID(*s)
	}
	return aeuo
}

// SetAnswerType sets the "answer_type" field.
func (aeuo *AnswerEventUpdateOne) SetAnswerType(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetAnswerType(s)
	return aeuo
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableAnswerType(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetAnswerType(*s)
	}
	return aeuo
}

// SetWasKnownFact sets the "was_known_fact" field.
func (aeuo *AnswerEventUpdateOne) SetWasKnownFact(b bool) *AnswerEventUpdateOne {
	aeuo.mutation.SetWasKnownFact(b)
	return aeuo
}

// SetNillableWasKnownFact sets the "was_known_fact" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableWasKnownFact(b *bool) *AnswerEventUpdateOne {
	if b != nil {
		aeuo.SetWasKnownFact(*b)
	}
	return aeuo
}

// SetSessionID sets the "session_id" field.
func (aeuo *AnswerEventUpdateOne) SetSessionID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableSessionID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// ClearSessionID clears the value of the "session_id" field.
func (aeuo *AnswerEventUpdateOne) ClearSessionID() *AnswerEventUpdateOne {
	aeuo.mutation.ClearSessionID()
	return aeuo
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeuo *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeuo *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AnswerEvent entity.
func (aeuo *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AnswerEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.FactID(); ok {
		if err := answerevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.fact_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.FactSetID(); ok {
		if err := answerevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.fact_set_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.StageID(); ok {
		if err := answerevent.StageIDValidator(v); err != nil {
			return &ValidationError{Name: "stage_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.stage_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.AnswerType(); ok {
		if err := answerevent.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answer_type": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.FactID(); ok {
		_spec.SetField(answerevent.FieldFactID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.FactSetID(); ok {
		_spec.SetField(answerevent.FieldFactSetID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.StageID(); ok {
		_spec.SetField(answerevent.FieldStageID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.AnswerType(); ok {
		_spec.SetField(answerevent.FieldAnswerType, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.WasKnownFact(); ok {
		_spec.SetField(answerevent.FieldWasKnownFact, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if aeuo.mutation.SessionIDCleared() {
		_spec.ClearField(answerevent.FieldSessionID, field.TypeString)
	}
	_node = &AnswerEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
