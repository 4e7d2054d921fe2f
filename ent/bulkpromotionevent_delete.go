// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/bulkpromotionevent"
	"github.com/abiral/fluency/ent/predicate"
)

// BulkPromotionEventDelete is the builder for deleting a BulkPromotionEvent entity.
type BulkPromotionEventDelete struct {
	config
	hooks    []Hook
	mutation *BulkPromotionEventMutation
}

// Where appends a list predicates to the BulkPromotionEventDelete builder.
func (bped *BulkPromotionEventDelete) Where(ps ...predicate.BulkPromotionEvent) *BulkPromotionEventDelete {
	bped.mutation.Where(ps...)
	return bped
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (bped *BulkPromotionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, bped.sqlExec, bped.mutation, bped.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (bped *BulkPromotionEventDelete) ExecX(ctx context.Context) int {
	n, err := bped.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (bped *BulkPromotionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(bulkpromotionevent.Table, sqlgraph.NewFieldSpec(bulkpromotionevent.FieldID, field.TypeInt))
	if ps := bped.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, bped.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	bped.mutation.done = true
	return affected, err
}

// BulkPromotionEventDeleteOne is the builder for deleting a single BulkPromotionEvent entity.
type BulkPromotionEventDeleteOne struct {
	bped *BulkPromotionEventDelete
}

// Where appends a list predicates to the BulkPromotionEventDelete builder.
func (bpedo *BulkPromotionEventDeleteOne) Where(ps ...predicate.BulkPromotionEvent) *BulkPromotionEventDeleteOne {
	bpedo.bped.mutation.Where(ps...)
	return bpedo
}

// Exec executes the deletion query.
func (bpedo *BulkPromotionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := bpedo.bped.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{bulkpromotionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (bpedo *BulkPromotionEventDeleteOne) ExecX(ctx context.Context) {
	if err := bpedo.Exec(ctx); err != nil {
		panic(err)
	}
}
