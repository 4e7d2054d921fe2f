// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/fluency/ent/predicate"
	"github.com/abiral/fluency/ent/progressionevent"
)

// ProgressionEventDelete is the builder for deleting a ProgressionEvent entity.
type ProgressionEventDelete struct {
	config
	hooks    []Hook
	mutation *ProgressionEventMutation
}

// Where appends a list predicates to the ProgressionEventDelete builder.
func (ped *ProgressionEventDelete) Where(ps ...predicate.ProgressionEvent) *ProgressionEventDelete {
	ped.mutation.Where(ps...)
	return ped
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ped *ProgressionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ped.sqlExec, ped.mutation, ped.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ped *ProgressionEventDelete) ExecX(ctx context.Context) int {
	n, err := ped.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ped *ProgressionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(progressionevent.Table, sqlgraph.NewFieldSpec(progressionevent.FieldID, field.TypeInt))
	if ps := ped.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ped.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ped.mutation.done = true
	return affected, err
}

// ProgressionEventDeleteOne is the builder for deleting a single ProgressionEvent entity.
type ProgressionEventDeleteOne struct {
	ped *ProgressionEventDelete
}

// Where appends a list predicates to the ProgressionEventDelete builder.
func (pedo *ProgressionEventDeleteOne) Where(ps ...predicate.ProgressionEvent) *ProgressionEventDeleteOne {
	pedo.ped.mutation.Where(ps...)
	return pedo
}

// Exec executes the deletion query.
func (pedo *ProgressionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := pedo.ped.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{progressionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (pedo *ProgressionEventDeleteOne) ExecX(ctx context.Context) {
	if err := pedo.Exec(ctx); err != nil {
		panic(err)
	}
}
