// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/bulkpromotionevent"
	"github.com/abiral/fluency/ent/predicate"
)

// BulkPromotionEventUpdate is the builder for updating BulkPromotionEvent entities.
type BulkPromotionEventUpdate struct {
	config
	hooks    []Hook
	mutation *BulkPromotionEventMutation
}

// Where appends a list predicates to the BulkPromotionEventUpdate builder.
func (bpeu *BulkPromotionEventUpdate) Where(ps ...predicate.BulkPromotionEvent) *BulkPromotionEventUpdate {
	bpeu.mutation.Where(ps...)
	return bpeu
}

// SetFactSetID sets the "fact_set_id" field.
func (bpeu *BulkPromotionEventUpdate) SetFactSetID(s string) *BulkPromotionEventUpdate {
	bpeu.mutation.SetFactSetID(s)
	return bpeu
}

// SetNillableFactSetID sets the "fact_set_id" field if the given value is not nil.
func (bpeu *BulkPromotionEventUpdate) SetNillableFactSetID(s *string) *BulkPromotionEventUpdate {
	if s != nil {
		bpeu.SetFactSetID(*s)
	}
	return bpeu
}

// SetPromotedFactsCount sets the "promoted_facts_count" field.
func (bpeu *BulkPromotionEventUpdate) SetPromotedFactsCount(i int) *BulkPromotionEventUpdate {
	bpeu.mutation.ResetPromotedFactsCount()
	bpeu.mutation.SetPromotedFactsCount(i)
	return bpeu
}

// SetNillablePromotedFactsCount sets the "promoted_facts_count" field if the given value is not nil.
func (bpeu *BulkPromotionEventUpdate) SetNillablePromotedFactsCount(i *int) *BulkPromotionEventUpdate {
	if i != nil {
		bpeu.SetPromotedFactsCount(*i)
	}
	return bpeu
}

// AddPromotedFactsCount adds i to the "promoted_facts_count" field.
func (bpeu *BulkPromotionEventUpdate) AddPromotedFactsCount(i int) *BulkPromotionEventUpdate {
	bpeu.mutation.AddPromotedFactsCount(i)
	return bpeu
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (bpeu *BulkPromotionEventUpdate) SetConsecutiveCorrect(i int) *BulkPromotionEventUpdate {
	bpeu.mutation.ResetConsecutiveCorrect()
	bpeu.mutation.SetConsecutiveCorrect(i)
	return bpeu
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (bpeu *BulkPromotionEventUpdate) SetNillableConsecutiveCorrect(i *int) *BulkPromotionEventUpdate {
	if i != nil {
		bpeu.SetConsecutiveCorrect(*i)
	}
	return bpeu
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (bpeu *BulkPromotionEventUpdate) AddConsecutiveCorrect(i int) *BulkPromotionEventUpdate {
	bpeu.mutation.AddConsecutiveCorrect(i)
	return bpeu
}

// SetCoveragePercent sets the "coverage_percent" field.
func (bpeu *BulkPromotionEventUpdate) SetCoveragePercent(f float64) *BulkPromotionEventUpdate {
	bpeu.mutation.ResetCoveragePercent()
	bpeu.mutation.SetCoveragePercent(f)
	return bpeu
}

// SetNillableCoveragePercent sets the "coverage_percent" field if the given value is not nil.
func (bpeu *BulkPromotionEventUpdate) SetNillableCoveragePercent(f *float64) *BulkPromotionEventUpdate {
	if f != nil {
		bpeu.SetCoveragePercent(*f)
	}
	return bpeu
}

// AddCoveragePercent adds f to the "coverage_percent" field.
func (bpeu *BulkPromotionEventUpdate) AddCoveragePercent(f float64) *BulkPromotionEventUpdate {
	bpeu.mutation.AddCoveragePercent(f)
	return bpeu
}

// Mutation returns the BulkPromotionEventMutation object of the builder.
func (bpeu *BulkPromotionEventUpdate) Mutation() *BulkPromotionEventMutation {
	return bpeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bpeu *BulkPromotionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, bpeu.sqlSave, bpeu.mutation, bpeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bpeu *BulkPromotionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := bpeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bpeu *BulkPromotionEventUpdate) Exec(ctx context.Context) error {
	_, err := bpeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpeu *BulkPromotionEventUpdate) ExecX(ctx context.Context) {
	if err := bpeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bpeu *BulkPromotionEventUpdate) check() error {
	if v, ok := bpeu.mutation.FactSetID(); ok {
		if err := bulkpromotionevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "BulkPromotionEvent.fact_set_id": %w`, err)}
		}
	}
	return nil
}

func (bpeu *BulkPromotionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bpeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(bulkpromotionevent.Table, bulkpromotionevent.Columns, sqlgraph.NewFieldSpec(bulkpromotionevent.FieldID, field.TypeInt))
	if ps := bpeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bpeu.mutation.FactSetID(); ok {
		_spec.SetField(bulkpromotionevent.FieldFactSetID, field.TypeString, value)
	}
	if value, ok := bpeu.mutation.PromotedFactsCount(); ok {
		_spec.SetField(bulkpromotionevent.FieldPromotedFactsCount, field.TypeInt, value)
	}
	if value, ok := bpeu.mutation.AddedPromotedFactsCount(); ok {
		_spec.AddField(bulkpromotionevent.FieldPromotedFactsCount, field.TypeInt, value)
	}
	if value, ok := bpeu.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(bulkpromotionevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := bpeu.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(bulkpromotionevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := bpeu.mutation.CoveragePercent(); ok {
		_spec.SetField(bulkpromotionevent.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if value, ok := bpeu.mutation.AddedCoveragePercent(); ok {
		_spec.AddField(bulkpromotionevent.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, bpeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bulkpromotionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bpeu.mutation.done = true
	return n, nil
}

// BulkPromotionEventUpdateOne is the builder for updating a single BulkPromotionEvent entity.
type BulkPromotionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BulkPromotionEventMutation
}

// SetFactSetID sets the "fact_set_id" field.
func (bpeuo *BulkPromotionEventUpdateOne) SetFactSetID(s string) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.SetFactSetID(s)
	return bpeuo
}

// SetNillableFactSetID sets the "fact_set_id" field if the given value is not nil.
func (bpeuo *BulkPromotionEventUpdateOne) SetNillableFactSetID(s *string) *BulkPromotionEventUpdateOne {
	if s != nil {
		bpeuo.SetFactSetID(*s)
	}
	return bpeuo
}

// SetPromotedFactsCount sets the "promoted_facts_count" field.
func (bpeuo *BulkPromotionEventUpdateOne) SetPromotedFactsCount(i int) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.ResetPromotedFactsCount()
	bpeuo.mutation.SetPromotedFactsCount(i)
	return bpeuo
}

// SetNillablePromotedFactsCount sets the "promoted_facts_count" field if the given value is not nil.
func (bpeuo *BulkPromotionEventUpdateOne) SetNillablePromotedFactsCount(i *int) *BulkPromotionEventUpdateOne {
	if i != nil {
		bpeuo.SetPromotedFactsCount(*i)
	}
	return bpeuo
}

// AddPromotedFactsCount adds i to the "promoted_facts_count" field.
func (bpeuo *BulkPromotionEventUpdateOne) AddPromotedFactsCount(i int) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.AddPromotedFactsCount(i)
	return bpeuo
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (bpeuo *BulkPromotionEventUpdateOne) SetConsecutiveCorrect(i int) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.ResetConsecutiveCorrect()
	bpeuo.mutation.SetConsecutiveCorrect(i)
	return bpeuo
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (bpeuo *BulkPromotionEventUpdateOne) SetNillableConsecutiveCorrect(i *int) *BulkPromotionEventUpdateOne {
	if i != nil {
		bpeuo.SetConsecutiveCorrect(*i)
	}
	return bpeuo
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (bpeuo *BulkPromotionEventUpdateOne) AddConsecutiveCorrect(i int) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.AddConsecutiveCorrect(i)
	return bpeuo
}

// SetCoveragePercent sets the "coverage_percent" field.
func (bpeuo *BulkPromotionEventUpdateOne) SetCoveragePercent(f float64) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.ResetCoveragePercent()
	bpeuo.mutation.SetCoveragePercent(f)
	return bpeuo
}

// SetNillableCoveragePercent sets the "coverage_percent" field if the given value is not nil.
func (bpeuo *BulkPromotionEventUpdateOne) SetNillableCoveragePercent(f *float64) *BulkPromotionEventUpdateOne {
	if f != nil {
		bpeuo.SetCoveragePercent(*f)
	}
	return bpeuo
}

// AddCoveragePercent adds f to the "coverage_percent" field.
func (bpeuo *BulkPromotionEventUpdateOne) AddCoveragePercent(f float64) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.AddCoveragePercent(f)
	return bpeuo
}

// Mutation returns the BulkPromotionEventMutation object of the builder.
func (bpeuo *BulkPromotionEventUpdateOne) Mutation() *BulkPromotionEventMutation {
	return bpeuo.mutation
}

// Where appends a list predicates to the BulkPromotionEventUpdate builder.
func (bpeuo *BulkPromotionEventUpdateOne) Where(ps ...predicate.BulkPromotionEvent) *BulkPromotionEventUpdateOne {
	bpeuo.mutation.Where(ps...)
	return bpeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bpeuo *BulkPromotionEventUpdateOne) Select(field string, fields ...string) *BulkPromotionEventUpdateOne {
	bpeuo.fields = append([]string{field}, fields...)
	return bpeuo
}

// Save executes the query and returns the updated BulkPromotionEvent entity.
func (bpeuo *BulkPromotionEventUpdateOne) Save(ctx context.Context) (*BulkPromotionEvent, error) {
	return withHooks(ctx, bpeuo.sqlSave, bpeuo.mutation, bpeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bpeuo *BulkPromotionEventUpdateOne) SaveX(ctx context.Context) *BulkPromotionEvent {
	node, err := bpeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bpeuo *BulkPromotionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := bpeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpeuo *BulkPromotionEventUpdateOne) ExecX(ctx context.Context) {
	if err := bpeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bpeuo *BulkPromotionEventUpdateOne) check() error {
	if v, ok := bpeuo.mutation.FactSetID(); ok {
		if err := bulkpromotionevent.FactSetIDValidator(v); err != nil {
			return &ValidationError{Name: "fact_set_id", err: fmt.Errorf(`ent: validator failed for field "BulkPromotionEvent.fact_set_id": %w`, err)}
		}
	}
	return nil
}

func (bpeuo *BulkPromotionEventUpdateOne) sqlSave(ctx context.Context) (_node *BulkPromotionEvent, err error) {
	if err := bpeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bulkpromotionevent.Table, bulkpromotionevent.Columns, sqlgraph.NewFieldSpec(bulkpromotionevent.FieldID, field.TypeInt))
	id, ok := bpeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BulkPromotionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bpeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bulkpromotionevent.FieldID)
		for _, f := range fields {
			if !bulkpromotionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bulkpromotionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bpeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bpeuo.mutation.FactSetID(); ok {
		_spec.SetField(bulkpromotionevent.FieldFactSetID, field.TypeString, value)
	}
	if value, ok := bpeuo.mutation.PromotedFactsCount(); ok {
		_spec.SetField(bulkpromotionevent.FieldPromotedFactsCount, field.TypeInt, value)
	}
	if value, ok := bpeuo.mutation.AddedPromotedFactsCount(); ok {
		_spec.AddField(bulkpromotionevent.FieldPromotedFactsCount, field.TypeInt, value)
	}
	if value, ok := bpeuo.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(bulkpromotionevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := bpeuo.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(bulkpromotionevent.FieldConsecutiveCorrect, field.TypeInt, value)
	}
	if value, ok := bpeuo.mutation.CoveragePercent(); ok {
		_spec.SetField(bulkpromotionevent.FieldCoveragePercent, field.TypeFloat64, value)
	}
	if value, ok := bpeuo.mutation.AddedCoveragePercent(); ok {
		_spec.AddField(bulkpromotionevent.FieldCoveragePercent, field.TypeFloat64, value)
	}
	_node = &BulkPromotionEvent{config: bpeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bpeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bulkpromotionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bpeuo.mutation.done = true
	return _node, nil
}
