// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/predicate"
)

// NotificationQueueItemDelete is the builder for deleting a NotificationQueueItem entity.
type NotificationQueueItemDelete struct {
	config
	hooks    []Hook
	mutation *NotificationQueueItemMutation
}

// Where appends a list predicates to the NotificationQueueItemDelete builder.
func (_d *NotificationQueueItemDelete) Where(ps ...predicate.NotificationQueueItem) *NotificationQueueItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *NotificationQueueItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NotificationQueueItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *NotificationQueueItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(notificationqueueitem.Table, sqlgraph.NewFieldSpec(notificationqueueitem.FieldID, field.TypeString))
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

// NotificationQueueItemDeleteOne is the builder for deleting a single NotificationQueueItem entity.
type NotificationQueueItemDeleteOne struct {
	_d *NotificationQueueItemDelete
}

// Where appends a list predicates to the NotificationQueueItemDelete builder.
func (_d *NotificationQueueItemDeleteOne) Where(ps ...predicate.NotificationQueueItem) *NotificationQueueItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *NotificationQueueItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{notificationqueueitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *NotificationQueueItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
