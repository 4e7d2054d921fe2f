// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/progressionevent"
)

// ProgressionEventCreate is the builder for creating a ProgressionEvent entity.
type ProgressionEventCreate struct {
	config
	mutation *ProgressionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (pec *ProgressionEventCreate) SetSequence(i int64) *ProgressionEventCreate {
	pec.mutation.SetSequence(i)
	return pec
}

// SetTimestamp sets the "timestamp" field.
func (pec *ProgressionEventCreate) SetTimestamp(t time.Time) *ProgressionEventCreate {
	pec.mutation.SetTimestamp(t)
	return pec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (pec *ProgressionEventCreate) SetNillableTimestamp(t *time.Time) *ProgressionEventCreate {
	if t != nil {
		pec.SetTimestamp(*t)
	}
	return pec
}

// SetFactID sets the "fact_id" field.
func (pec *ProgressionEventCreate) SetFactID(s string) *ProgressionEventCreate {
	pec.mutation.SetFactID(s)
	return pec
}

// SetFactSetID sets the "fact_set_id" field.
func (pec *ProgressionEventCreate) SetFactSetID(s string) *ProgressionEventCreate {
	pec.mutation.SetFactSetID(s)
	return pec
}

// SetFromStageID sets the "from_stage_id" field.
func (pec *ProgressionEventCreate) SetFromStageID(s string) *ProgressionEventCreate {
	pec.mutation.SetFromStageID(s)
	return pec
}

// SetToStageID sets the "to_stage_id" field.
func (pec *ProgressionEventCreate) SetToStageID(s string) *ProgressionEventCreate {
	pec.mutation.SetToStageID(s)
	return pec
}

// SetAnswerType sets the "answer_type" field.
func (pec *ProgressionEventCreate) SetAnswerType(s string) *ProgressionEventCreate {
	pec.mutation.SetAnswerType(s)
	return pec
}

// SetConsecutiveCount sets the "consecutive_count" field.
func (pec *ProgressionEventCreate) SetConsecutiveCount(i int) *ProgressionEventCreate {
	pec.mutation.SetConsecutiveCount(i)
	return pec
}

// Mutation returns the ProgressionEventMutation object of the builder.
func (pec *ProgressionEventCreate) Mutation() *ProgressionEventMutation {
	return pec.mutation
}

// Save creates the ProgressionEvent in the database.
func (pec *ProgressionEventCreate) Save(ctx context.Context) (*ProgressionEvent, error) {
	pec.defaults()
	return withHooks(ctx, pec.sqlSave, pec.mutation, pec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pec *ProgressionEventCreate) SaveX(ctx context.Context) *ProgressionEvent {
	v, err := pec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pec *ProgressionEventCreate) Exec(ctx context.Context) error {
	_, err := pec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pec *ProgressionEventCreate) ExecX(ctx context.Context) {
	if err := pec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pec *ProgressionEventCreate) defaults() {
	if _, ok := pec.mutation.Timestamp(); !ok {
		v := progressionevent.DefaultTimestamp()
		pec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pec *ProgressionEventCreate) check() error {
	if _, ok := pec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProgressionEvent.sequence"`)}
	}
	if _, ok := pec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProgressionEvent.timestamp"`)}
	}
	if _, ok := pec.mutation.FactID(); !ok {
		return &ValidationError{Name: "fact_id", err: errors.New(`ent: missing required field "ProgressionEvent.fact_id"`)}
	}
	if v, ok := pec.mutation.FactID(); ok {
		if err := progressionevent.FactIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.fact_id": %w`, err)}
		}
	}
	if _, ok := pec.mutation.FactSetID(); !ok {
		return &ValidationError{Name: "fact_set_id", err: errors.New(`ent: missing required field "ProgressionEvent.fact_set_id"`)}
	}
	if v, ok := pec.mutation.FactSetID(); ok {
		if err := progressionevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.fact_set_id": %w`, err)}
		}
	}
	if _, ok := pec.mutation.FromStageID(); !ok {
		return &ValidationError{Name: "from_stage_id", err: errors.New(`ent: missing required field "ProgressionEvent.from_stage_id"`)}
	}
	if v, ok := pec.mutation.FromStageID(); ok {
		if err := progressionevent.FromStageIDValidator(v); err != nil {
			return &ValidationError{Name: "from_stage_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.from_stage_id": %w`, err)}
		}
	}
	if _, ok := pec.mutation.ToStageID(); !ok {
		return &ValidationError{Name: "to_stage_id", err: errors.New(`ent: missing required field "ProgressionEvent.to_stage_id"`)}
	}
	if v, ok := pec.mutation.ToStageID(); ok {
		if err := progressionevent.ToStageIDValidator(v); err != nil {
			return &ValidationError{Name: "to_stage_id", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.to_stage_id": %w`, err)}
		}
	}
	if _, ok := pec.mutation.AnswerType(); !ok {
		return &ValidationError{Name: "answer_type", err: errors.New(`ent: missing required field "ProgressionEvent.answer_type"`)}
	}
	if v, ok := pec.mutation.AnswerType(); ok {
		if err := progressionevent.AnswerTypeValidator(v); err != nil {
			return &ValidationError{Name: "answer_type", err: fmt.Errorf(`ent: validator failed for field "ProgressionEvent.answer_type": %w`, err)}
		}
	}
	if _, ok := pec.mutation.ConsecutiveCount(); !ok {
		return &ValidationError{Name: "consecutive_count", err: errors.New(`ent: missing required field "ProgressionEvent.consecutive_count"`)}
	}
	return nil
}

func (pec *ProgressionEventCreate) sqlSave(ctx context.Context) (*ProgressionEvent, error) {
	if err := pec.check(); err != nil {
		return nil, err
	}
	_node, _spec := pec.createSpec()
	if err := sqlgraph.CreateNode(ctx, pec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pec.mutation.id = &_node.ID
	pec.mutation.done = true
	return _node, nil
}

func (pec *ProgressionEventCreate) createSpec() (*ProgressionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressionEvent{config: pec.config}
		_spec = sqlgraph.NewCreateSpec(progressionevent.Table, sqlgraph.NewFieldSpec(progressionevent.FieldID, field.TypeInt))
	)
	if value, ok := pec.mutation.Sequence(); ok {
		_spec.SetField(progressionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := pec.mutation.Timestamp(); ok {
		_spec.SetField(progressionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := pec.mutation.FactID(); ok {
		_spec.SetField(progressionevent.FieldFactID, field.TypeString, value)
		_node.FactID = value
	}
	if value, ok := pec.mutation.FactSetID(); ok {
		_spec.SetField(progressionevent.FieldFactSetID, field.TypeString, value)
		_node.FactSetID = value
	}
	if value, ok := pec.mutation.FromStageID(); ok {
		_spec.SetField(progressionevent.FieldFromStageID, field.TypeString, value)
		_node.FromStageID = value
	}
	if value, ok := pec.mutation.ToStageID(); ok {
		_spec.SetField(progressionevent.FieldToStageID, field.TypeString, value)
		_node.ToStageID = value
	}
	if value, ok := pec.mutation.AnswerType(); ok {
		_spec.SetField(progressionevent.FieldAnswerType, field.TypeString, value)
		_node.AnswerType = value
	}
	if value, ok := pec.mutation.ConsecutiveCount(); ok {
		_spec.SetField(progressionevent.FieldConsecutiveCount, field.TypeInt, value)
		_node.ConsecutiveCount = value
	}
	return _node, _spec
}

// ProgressionEventCreateBulk is the builder for creating many ProgressionEvent entities in bulk.
type ProgressionEventCreateBulk struct {
	config
	err      error
	builders []*ProgressionEventCreate
}

// Save creates the ProgressionEvent entities in the database.
func (pecb *ProgressionEventCreateBulk) Save(ctx context.Context) ([]*ProgressionEvent, error) {
	if pecb.err != nil {
		return nil, pecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pecb.builders))
	nodes := make([]*ProgressionEvent, len(pecb.builders))
	mutators := make([]Mutator, len(pecb.builders))
	for i := range pecb.builders {
		func(i int, root context.Context) {
			builder := pecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, pecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, pecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pecb *ProgressionEventCreateBulk) SaveX(ctx context.Context) []*ProgressionEvent {
	v, err := pecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pecb *ProgressionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := pecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pecb *ProgressionEventCreateBulk) ExecX(ctx context.Context) {
	if err := pecb.Exec(ctx); err != nil {
		panic(err)
	}
}
