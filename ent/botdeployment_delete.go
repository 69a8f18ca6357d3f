// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/predicate"
)

// BotDeploymentDelete is the builder for deleting a BotDeployment entity.
type BotDeploymentDelete struct {
	config
	hooks    []Hook
	mutation *BotDeploymentMutation
}

// Where appends a list predicates to the BotDeploymentDelete builder.
func (_d *BotDeploymentDelete) Where(ps ...predicate.BotDeployment) *BotDeploymentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BotDeploymentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BotDeploymentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BotDeploymentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(botdeployment.Table, sqlgraph.NewFieldSpec(botdeployment.FieldID, field.TypeString))
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

// BotDeploymentDeleteOne is the builder for deleting a single BotDeployment entity.
type BotDeploymentDeleteOne struct {
	_d *BotDeploymentDelete
}

// Where appends a list predicates to the BotDeploymentDelete builder.
func (_d *BotDeploymentDeleteOne) Where(ps ...predicate.BotDeployment) *BotDeploymentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BotDeploymentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{botdeployment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BotDeploymentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
