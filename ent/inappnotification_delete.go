// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/inappnotification"
	"github.com/stridehq/cadenza/ent/predicate"
)

// InAppNotificationDelete is the builder for deleting a InAppNotification entity.
type InAppNotificationDelete struct {
	config
	hooks    []Hook
	mutation *InAppNotificationMutation
}

// Where appends a list predicates to the InAppNotificationDelete builder.
func (_d *InAppNotificationDelete) Where(ps ...predicate.InAppNotification) *InAppNotificationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InAppNotificationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InAppNotificationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InAppNotificationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(inappnotification.Table, sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InAppNotificationDeleteOne is the builder for deleting a single InAppNotification entity.
type InAppNotificationDeleteOne struct {
	_d *InAppNotificationDelete
}

// Where appends a list predicates to the InAppNotificationDelete builder.
func (_d *InAppNotificationDeleteOne) Where(ps ...predicate.InAppNotification) *InAppNotificationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InAppNotificationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{inappnotification.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InAppNotificationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
