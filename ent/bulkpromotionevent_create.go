// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/bulkpromotionevent"
)

// BulkPromotionEventCreate is the builder for creating a BulkPromotionEvent entity.
type BulkPromotionEventCreate struct {
	config
	mutation *BulkPromotionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (bpec *BulkPromotionEventCreate) SetSequence(i int64) *BulkPromotionEventCreate {
	bpec.mutation.SetSequence(i)
	return bpec
}

// SetTimestamp sets the "timestamp" field.
func (bpec *BulkPromotionEventCreate) SetTimestamp(t time.Time) *BulkPromotionEventCreate {
	bpec.mutation.SetTimestamp(t)
	return bpec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (bpec *BulkPromotionEventCreate) SetNillableTimestamp(t *time.Time) *BulkPromotionEventCreate {
	if t != nil {
		bpec.SetTimestamp(*t)
	}
	return bpec
}

// SetFactSetID sets the "fact_set_id" field.
func (bpec *BulkPromotionEventCreate) SetFactSetID(s string) *BulkPromotionEventCreate {
	bpec.mutation.SetFactSetID(s)
	return bpec
}

// SetPromotedFactsCount sets the "promoted_facts_count" field.
func (bpec *BulkPromotionEventCreate) SetPromotedFactsCount(i int) *BulkPromotionEventCreate {
	bpec.mutation.SetPromotedFactsCount(i)
	return bpec
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (bpec *BulkPromotionEventCreate) SetConsecutiveCorrect(i int) *BulkPromotionEventCreate {
	bpec.mutation.SetConsecutiveCorrect(i)
	return bpec
}

// SetCoveragePercent sets the "coverage_percent" field.
func (bpec *BulkPromotionEventCreate) SetCoveragePercent(f float64) *BulkPromotionEventCreate {
	bpec.mutation.SetCoveragePercent(f)
	return bpec
}

// Mutation returns the BulkPromotionEventMutation object of the builder.
func (bpec *BulkPromotionEventCreate) Mutation() *BulkPromotionEventMutation {
	return bpec.mutation
}

// Save creates the BulkPromotionEvent in the database.
func (bpec *BulkPromotionEventCreate) Save(ctx context.Context) (*BulkPromotionEvent, error) {
	bpec.defaults()
	return withHooks(ctx, bpec.sqlSave, bpec.mutation, bpec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bpec *BulkPromotionEventCreate) SaveX(ctx context.Context) *BulkPromotionEvent {
	v, err := bpec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bpec *BulkPromotionEventCreate) Exec(ctx context.Context) error {
	_, err := bpec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpec *BulkPromotionEventCreate) ExecX(ctx context.Context) {
	if err := bpec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bpec *BulkPromotionEventCreate) defaults() {
	if _, ok := bpec.mutation.Timestamp(); !ok {
		v := bulkpromotionevent.DefaultTimestamp()
		bpec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bpec *BulkPromotionEventCreate) check() error {
	if _, ok := bpec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BulkPromotionEvent.sequence"`)}
	}
	if _, ok := bpec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BulkPromotionEvent.timestamp"`)}
	}
	if _, ok := bpec.mutation.FactSetID(); !ok {
		return &ValidationError{Name: "fact_set_id", err: errors.New(`ent: missing required field "BulkPromotionEvent.fact_set_id"`)}
	}
	if v, ok := bpec.mutation.FactSetID(); ok {
		if err := bulkpromotionevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "BulkPromotionEvent.fact_set_id": %w`, err)}
		}
	}
	if _, ok := bpec.mutation.PromotedFactsCount(); !ok {
		return &ValidationError{Name: "promoted_facts_count", err: errors.New(`ent: missing required field "BulkPromotionEvent.promoted_facts_count"`)}
	}
	if _, ok := bpec.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "BulkPromotionEvent.consecutive_correct"`)}
	}
	if _, ok := bpec.mutation.CoveragePercent(); !ok {
		return &ValidationError{Name: "coverage_percent", err: errors.New(`ent: missing required field "BulkPromotionEvent.coverage_percent"`)}
	}
	return nil
}

func (bpec *BulkPromotionEventCreate) sqlSave(ctx context.Context) (*BulkPromotionEvent, error) {
	if err := bpec.check(); err != nil {
		return nil, err
	}
	_node, _spec := bpec.createSpec()
	if err := sqlgraph.CreateNode(ctx, bpec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	bpec.mutation.id = &_node.ID
	bpec.mutation.done = true
	return _node, nil
}

func (bpec *BulkPromotionEventCreate) createSpec() (*BulkPromotionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BulkPromotionEvent{config: bpec.config}
		_spec = sqlgraph.NewCreateSpec(bulkpromotionevent.Table, sqlgraph.NewFieldSpec(bulkpromotionevent.FieldID, field.TypeInt))
	)
	if value, ok := bpec.mutation.Sequence(); ok {
		_spec.SetField(bulkpromotionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := bpec.mutation.Timestamp(); ok {
		_spec.SetField(bulkpromotionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := bpec.mutation.FactSetID(); ok {
		_spec.SetField(bulkpromotionevent.FieldFactSetID, field.TypeString, value)
		_node.FactSetID = value
	}
	if value, ok := bpec.mutation.PromotedFactsCount(); ok {
		_spec.SetField(bulkpromotionevent.FieldPromotedFactsCount, field.TypeInt, value)
		_node.PromotedFactsCount = value
	}
	if value, ok := bpec.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(bulkpromotionevent.FieldConsecutiveCorrect, field.TypeInt, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := bpec.mutation.CoveragePercent(); ok {
		_spec.SetField(bulkpromotionevent.FieldCoveragePercent, field.TypeFloat64, value)
		_node.CoveragePercent = value
	}
	return _node, _spec
}

// BulkPromotionEventCreateBulk is the builder for creating many BulkPromotionEvent entities in bulk.
type BulkPromotionEventCreateBulk struct {
	config
	err      error
	builders []*BulkPromotionEventCreate
}

// Save creates the BulkPromotionEvent entities in the database.
func (bpecb *BulkPromotionEventCreateBulk) Save(ctx context.Context) ([]*BulkPromotionEvent, error) {
	if bpecb.err != nil {
		return nil, bpecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bpecb.builders))
	nodes := make([]*BulkPromotionEvent, len(bpecb.builders))
	mutators := make([]Mutator, len(bpecb.builders))
	for i := range bpecb.builders {
		func(i int, root context.Context) {
			builder := bpecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BulkPromotionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, bpecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bpecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bpecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bpecb *BulkPromotionEventCreateBulk) SaveX(ctx context.Context) []*BulkPromotionEvent {
	v, err := bpecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bpecb *BulkPromotionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := bpecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpecb *BulkPromotionEventCreateBulk) ExecX(ctx context.Context) {
	if err := bpecb.Exec(ctx); err != nil {
		panic(err)
	}
}
