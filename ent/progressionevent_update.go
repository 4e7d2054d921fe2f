// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/predicate"
	"github.com/abiral/fluency/ent/progressionevent"
)

// ProgressionEventUpdate is the builder for updating ProgressionEvent entities.
type ProgressionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressionEventMutation
}

// Where appends a list predicates to the ProgressionEventUpdate builder.
func (peu *ProgressionEventUpdate) Where(ps ...predicate.ProgressionEvent) *ProgressionEventUpdate {
	peu.mutation.Where(ps...)
	return peu
}

// SetFactID sets the "fact_id" field.
func (peu *ProgressionEventUpdate) SetFactID(s string) *ProgressionEventUpdate {
	peu.mutation.SetFactID(s)
	return peu
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (peu *ProgressionEventUpdate) SetNillableFactID(s *string) *ProgressionEventUpdate {
	if s != nil {
		peu.SetFactID(*s)
	}
	return peu
}

// SetFactSetID sets the "fact_set_id" field.
func (peu *ProgressionEventUpdate) SetFactSetID(s string) *ProgressionEventUpdate {
	peu.mutation.SetFactSetID(s)
	return peu
}

// SetNillableFactSetID sets the "fact_set_id" field if the given value is not nil.
func (peu *ProgressionEventUpdate) SetNillableFactSetID(s *string) *ProgressionEventUpdate {
	if s != nil {
		peu.SetFactSetID(*s)
	}
	return peu
}

// SetFromStageID sets the "from_stage_id" field.
func (peu *ProgressionEventUpdate) SetFromStageID(s string) *ProgressionEventUpdate {
	peu.mutation.SetFromStageID(s)
	return peu
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (peu *ProgressionEventUpdate) SetNillableFromStageID(s *string) *ProgressionEventUpdate {
	if s != nil {
		peu.SetFromStageID(*s)
	}
	return peu
}

// SetToStageID sets the "to_stage_id" field.
func (peu *ProgressionEventUpdate) SetToStageID(s string) *ProgressionEventUpdate {
	peu.mutation.SetToStageID(s)
	return peu
}

// SetNillableToStageID sets the "to_stage_id" field if the given value is not nil.
func (peu *ProgressionEventUpdate) SetNillableToStageID(s *string) *ProgressionEventUpdate {
	if s != nil {
		peu.SetToStageID(*s)
	}
	return peu
}

// SetAnswerType sets the "answer_type" field.
func (peu *ProgressionEventUpdate) SetAnswerType(s string) *ProgressionEventUpdate {
	peu.mutation.SetAnswerType(s)
	return peu
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (peu *ProgressionEventUpdate) SetNillableAnswerType(s *string) *ProgressionEventUpdate {
	if s != nil {
		peu.SetAnswerType(*s)
	}
	return peu
}

// SetConsecutiveCount sets the "consecutive_count" field.
func (peu *ProgressionEventUpdate) SetConsecutiveCount(i int) *ProgressionEventUpdate {
	peu.mutation.ResetConsecutiveCount()
	peu.mutation.SetConsecutiveCount(i)
	return peu
}

// SetNillableConsecutiveCount sets the "consecutive_count" field if the given value is not nil.
func (peu *ProgressionEventUpdate) SetNillableConsecutiveCount(i *int) *ProgressionEventUpdate {
	if i != nil {
		peu.SetConsecutiveCount(*i)
	}
	return peu
}

// AddConsecutiveCount adds i to the "consecutive_count" field.
func (peu *ProgressionEventUpdate) AddConsecutiveCount(i int) *ProgressionEventUpdate {
	peu.mutation.AddConsecutiveCount(i)
	return peu
}

// Mutation returns the ProgressionEventMutation object of the builder.
func (peu *ProgressionEventUpdate) Mutation() *ProgressionEventMutation {
	return peu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (peu *ProgressionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, peu.sqlSave, peu.mutation, peu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (peu *ProgressionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := peu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (peu *ProgressionEventUpdate) Exec(ctx context.Context) error {
	_, err := peu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (peu *ProgressionEventUpdate) ExecX(ctx context.Context) {
	if err := peu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (peu *ProgressionEventUpdate) check() error {
	if v, ok := peu.mutation.FactID(); ok {
		if err := progressionevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.fact_id": %w`, err)}
		}
	}
	if v, ok := peu.mutation.FactSetID(); ok {
		if err := progressionevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.fact_set_id": %w`, err)}
		}
	}
	if v, ok := peu.mutation.FromStageID(); ok {
		if err := progressionevent.FromStageIDValidator(v); err != nil {
			return &ValidationError{Name: "from_stage_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.from_stage_id": %w`, err)}
		}
	}
	if v, ok := peu.mutation.ToStageID(); ok {
		if err := progressionevent.ToStageIDValidator(v); err != nil {
			return &ValidationError{Name: "to_stage_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.to_stage_id": %w`, err)}
		}
	}
	if v, ok := peu.mutation.AnswerType(); ok {
		if err := progressionevent.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.answer_type": %w`, err)}
		}
	}
	return nil
}

func (peu *ProgressionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := peu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressionevent.Table, progressionevent.Columns, sqlgraph.NewFieldSpec(progressionevent.FieldID, field.TypeInt))
	if ps := peu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := peu.mutation.FactID(); ok {
		_spec.SetField(progressionevent.FieldFactID, field.TypeString, value)
	}
	if value, ok := peu.mutation.FactSetID(); ok {
		_spec.SetField(progressionevent.FieldFactSetID, field.TypeString, value)
	}
	if value, ok := peu.mutation.FromStageID(); ok {
		_spec.SetField(progressionevent.FieldFromStageID, field.TypeString, value)
	}
	if value, ok := peu.mutation.ToStageID(); ok {
		_spec.SetField(progressionevent.FieldToStageID, field.TypeString, value)
	}
	if value, ok := peu.mutation.AnswerType(); ok {
		_spec.SetField(progressionevent.FieldAnswerType, field.TypeString, value)
	}
	if value, ok := peu.mutation.ConsecutiveCount(); ok {
		_spec.SetField(progressionevent.FieldConsecutiveCount, field.TypeInt, value)
	}
	if value, ok := peu.mutation.AddedConsecutiveCount(); ok {
		_spec.AddField(progressionevent.FieldConsecutiveCount, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, peu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	peu.mutation.done = true
	return n, nil
}

// ProgressionEventUpdateOne is the builder for updating a single ProgressionEvent entity.
type ProgressionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressionEventMutation
}

// SetFactID sets the "fact_id" field.
func (peuo *ProgressionEventUpdateOne) SetFactID(s string) *ProgressionEventUpdateOne {
	peuo.mutation.SetFactID(s)
	return peuo
}

// SetNillableFactID sets the "fact_id" field if the given value is not nil.
func (peuo *ProgressionEventUpdateOne) SetNillableFactID(s *string) *ProgressionEventUpdateOne {
	if s != nil {
		peuo.SetFactID(*s)
	}
	return peuo
}

// SetFactSetID sets the "fact_set_id" field.
func (peuo *ProgressionEventUpdateOne) SetFactSetID(s string) *ProgressionEventUpdateOne {
	peuo.mutation.SetFactSetID(s)
	return peuo
}

// SetNillableFactSetID sets the "fact_set_id" field if the given value is not nil.
func (peuo *ProgressionEventUpdateOne) SetNillableFactSetID(s *string) *ProgressionEventUpdateOne {
	if s != nil {
		peuo.SetFactSetID(*s)
	}
	return peuo
}

// SetFromStageID sets the "from_stage_id" field.
func (peuo *ProgressionEventUpdateOne) SetFromStageID(s string) *ProgressionEventUpdateOne {
	peuo.mutation.SetFromStageID(s)
	return peuo
}

// SetNillableFromStageID sets the "from_stage_id" field if the given value is not nil.
func (peuo *ProgressionEventUpdateOne) SetNillableFromStageID(s *string) *ProgressionEventUpdateOne {
	if s != nil {
		peuo.SetFromStageID(*s)
	}
	return peuo
}

// SetToStageID sets the "to_stage_id" field.
func (peuo *ProgressionEventUpdateOne) SetToStageID(s string) *ProgressionEventUpdateOne {
	peuo.mutation.SetToStageID(s)
	return peuo
}

// SetNillableToStageID sets the "to_stage_id" field if the given value is not nil.
func (peuo *ProgressionEventUpdateOne) SetNillableToStageID(s *string) *ProgressionEventUpdateOne {
	if s != nil {
		peuo.SetToStageID(*s)
	}
	return peuo
}

// SetAnswerType sets the "answer_type" field.
func (peuo *ProgressionEventUpdateOne) SetAnswerType(s string) *ProgressionEventUpdateOne {
	peuo.mutation.SetAnswerType(s)
	return peuo
}

// SetNillableAnswerType sets the "answer_type" field if the given value is not nil.
func (peuo *ProgressionEventUpdateOne) SetNillableAnswerType(s *string) *ProgressionEventUpdateOne {
	if s != nil {
		peuo.SetAnswerType(*s)
	}
	return peuo
}

// SetConsecutiveCount sets the "consecutive_count" field.
func (peuo *ProgressionEventUpdateOne) SetConsecutiveCount(i int) *ProgressionEventUpdateOne {
	peuo.mutation.ResetConsecutiveCount()
	peuo.mutation.SetConsecutiveCount(i)
	return peuo
}

// SetNillableConsecutiveCount sets the "consecutive_count" field if the given value is not nil.
func (peuo *ProgressionEventUpdateOne) SetNillableConsecutiveCount(i *int) *ProgressionEventUpdateOne {
	if i != nil {
		peuo.SetConsecutiveCount(*i)
	}
	return peuo
}

// AddConsecutiveCount adds i to the "consecutive_count" field.
func (peuo *ProgressionEventUpdateOne) AddConsecutiveCount(i int) *ProgressionEventUpdateOne {
	peuo.mutation.AddConsecutiveCount(i)
	return peuo
}

// Mutation returns the ProgressionEventMutation object of the builder.
func (peuo *ProgressionEventUpdateOne) Mutation() *ProgressionEventMutation {
	return peuo.mutation
}

// Where appends a list predicates to the ProgressionEventUpdate builder.
func (peuo *ProgressionEventUpdateOne) Where(ps ...predicate.ProgressionEvent) *ProgressionEventUpdateOne {
	peuo.mutation.Where(ps...)
	return peuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (peuo *ProgressionEventUpdateOne) Select(field string, fields ...string) *ProgressionEventUpdateOne {
	peuo.fields = append([]string{field}, fields...)
	return peuo
}

// Save executes the query and returns the updated ProgressionEvent entity.
func (peuo *ProgressionEventUpdateOne) Save(ctx context.Context) (*ProgressionEvent, error) {
	return withHooks(ctx, peuo.sqlSave, peuo.mutation, peuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (peuo *ProgressionEventUpdateOne) SaveX(ctx context.Context) *ProgressionEvent {
	node, err := peuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (peuo *ProgressionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := peuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (peuo *ProgressionEventUpdateOne) ExecX(ctx context.Context) {
	if err := peuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (peuo *ProgressionEventUpdateOne) check() error {
	if v, ok := peuo.mutation.FactID(); ok {
		if err := progressionevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.fact_id": %w`, err)}
		}
	}
	if v, ok := peuo.mutation.FactSetID(); ok {
		if err := progressionevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.fact_set_id": %w`, err)}
		}
	}
	if v, ok := peuo.mutation.FromStageID(); ok {
		if err := progressionevent.FromStageIDValidator(v); err != nil {
			return &ValidationError{Name: "from_stage_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.from_stage_id": %w`, err)}
		}
	}
	if v, ok := peuo.mutation.ToStageID(); ok {
		if err := progressionevent.ToStageIDValidator(v); err != nil {
			return &ValidationError{Name: "to_stage_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.to_stage_id": %w`, err)}
		}
	}
	if v, ok := peuo.mutation.AnswerType(); ok {
		if err := progressionevent.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.answer_type": %w`, err)}
		}
	}
	return nil
}

func (peuo *ProgressionEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressionEvent, err error) {
	if err := peuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressionevent.Table, progressionevent.Columns, sqlgraph.NewFieldSpec(progressionevent.FieldID, field.TypeInt))
	id, ok := peuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := peuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressionevent.FieldID)
		for _, f := range fields {
			if !progressionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := peuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := peuo.mutation.FactID(); ok {
		_spec.SetField(progressionevent.FieldFactID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.FactSetID(); ok {
		_spec.SetField(progressionevent.FieldFactSetID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.FromStageID(); ok {
		_spec.SetField(progressionevent.FieldFromStageID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.ToStageID(); ok {
		_spec.SetField(progressionevent.FieldToStageID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.AnswerType(); ok {
		_spec.SetField(progressionevent.FieldAnswerType, field.TypeString, value)
	}
	if value, ok := peuo.mutation.ConsecutiveCount(); ok {
		_spec.SetField(progressionevent.FieldConsecutiveCount, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.AddedConsecutiveCount(); ok {
		_spec.AddField(progressionevent.FieldConsecutiveCount, field.TypeInt, value)
	}
	_node = &ProgressionEvent{config: peuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, peuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	peuo.mutation.done = true
	return _node, nil
}
