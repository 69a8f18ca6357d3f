// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/predicate"
	"github.com/stridehq/cadenza/ent/retryjob"
)

// RetryJobUpdate is the builder for updating RetryJob entities.
type RetryJobUpdate struct {
	config
	hooks    []Hook
	mutation *RetryJobMutation
}

// Where appends a list predicates to the RetryJobUpdate builder.
func (_u *RetryJobUpdate) Where(ps ...predicate.RetryJob) *RetryJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *RetryJobUpdate) SetNextAttemptAt(v time.Time) *RetryJobUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *RetryJobUpdate) SetNillableNextAttemptAt(v *time.Time) *RetryJobUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *RetryJobUpdate) SetAttempts(v int) *RetryJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *RetryJobUpdate) SetNillableAttempts(v *int) *RetryJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *RetryJobUpdate) AddAttempts(v int) *RetryJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *RetryJobUpdate) SetMaxAttempts(v int) *RetryJobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *RetryJobUpdate) SetNillableMaxAttempts(v *int) *RetryJobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *RetryJobUpdate) AddMaxAttempts(v int) *RetryJobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffBaseSeconds sets the "backoff_base_seconds" field.
func (_u *RetryJobUpdate) SetBackoffBaseSeconds(v int) *RetryJobUpdate {
	_u.mutation.ResetBackoffBaseSeconds()
	_u.mutation.SetBackoffBaseSeconds(v)
	return _u
}

// SetNillableBackoffBaseSeconds sets the "backoff_base_seconds" field if the given value is not nil.
func (_u *RetryJobUpdate) SetNillableBackoffBaseSeconds(v *int) *RetryJobUpdate {
	if v != nil {
		_u.SetBackoffBaseSeconds(*v)
	}
	return _u
}

// AddBackoffBaseSeconds adds value to the "backoff_base_seconds" field.
func (_u *RetryJobUpdate) AddBackoffBaseSeconds(v int) *RetryJobUpdate {
	_u.mutation.AddBackoffBaseSeconds(v)
	return _u
}

// SetBackoffCapSeconds sets the "backoff_cap_seconds" field.
func (_u *RetryJobUpdate) SetBackoffCapSeconds(v int) *RetryJobUpdate {
	_u.mutation.ResetBackoffCapSeconds()
	_u.mutation.SetBackoffCapSeconds(v)
	return _u
}

// SetNillableBackoffCapSeconds sets the "backoff_cap_seconds" field if the given value is not nil.
func (_u *RetryJobUpdate) SetNillableBackoffCapSeconds(v *int) *RetryJobUpdate {
	if v != nil {
		_u.SetBackoffCapSeconds(*v)
	}
	return _u
}

// AddBackoffCapSeconds adds value to the "backoff_cap_seconds" field.
func (_u *RetryJobUpdate) AddBackoffCapSeconds(v int) *RetryJobUpdate {
	_u.mutation.AddBackoffCapSeconds(v)
	return _u
}

// Mutation returns the RetryJobMutation object of the builder.
func (_u *RetryJobUpdate) Mutation() *RetryJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RetryJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetryJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RetryJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetryJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RetryJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(retryjob.Table, retryjob.Columns, sqlgraph.NewFieldSpec(retryjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(retryjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(retryjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(retryjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(retryjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(retryjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffBaseSeconds(); ok {
		_spec.SetField(retryjob.FieldBackoffBaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackoffBaseSeconds(); ok {
		_spec.AddField(retryjob.FieldBackoffBaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffCapSeconds(); ok {
		_spec.SetField(retryjob.FieldBackoffCapSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackoffCapSeconds(); ok {
		_spec.AddField(retryjob.FieldBackoffCapSeconds, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retryjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RetryJobUpdateOne is the builder for updating a single RetryJob entity.
type RetryJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RetryJobMutation
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *RetryJobUpdateOne) SetNextAttemptAt(v time.Time) *RetryJobUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *RetryJobUpdateOne) SetNillableNextAttemptAt(v *time.Time) *RetryJobUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *RetryJobUpdateOne) SetAttempts(v int) *RetryJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *RetryJobUpdateOne) SetNillableAttempts(v *int) *RetryJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *RetryJobUpdateOne) AddAttempts(v int) *RetryJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *RetryJobUpdateOne) SetMaxAttempts(v int) *RetryJobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *RetryJobUpdateOne) SetNillableMaxAttempts(v *int) *RetryJobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *RetryJobUpdateOne) AddMaxAttempts(v int) *RetryJobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffBaseSeconds sets the "backoff_base_seconds" field.
func (_u *RetryJobUpdateOne) SetBackoffBaseSeconds(v int) *RetryJobUpdateOne {
	_u.mutation.ResetBackoffBaseSeconds()
	_u.mutation.SetBackoffBaseSeconds(v)
	return _u
}

// SetNillableBackoffBaseSeconds sets the "backoff_base_seconds" field if the given value is not nil.
func (_u *RetryJobUpdateOne) SetNillableBackoffBaseSeconds(v *int) *RetryJobUpdateOne {
	if v != nil {
		_u.SetBackoffBaseSeconds(*v)
	}
	return _u
}

// AddBackoffBaseSeconds adds value to the "backoff_base_seconds" field.
func (_u *RetryJobUpdateOne) AddBackoffBaseSeconds(v int) *RetryJobUpdateOne {
	_u.mutation.AddBackoffBaseSeconds(v)
	return _u
}

// SetBackoffCapSeconds sets the "backoff_cap_seconds" field.
func (_u *RetryJobUpdateOne) SetBackoffCapSeconds(v int) *RetryJobUpdateOne {
	_u.mutation.ResetBackoffCapSeconds()
	_u.mutation.SetBackoffCapSeconds(v)
	return _u
}

// SetNillableBackoffCapSeconds sets the "backoff_cap_seconds" field if the given value is not nil.
func (_u *RetryJobUpdateOne) SetNillableBackoffCapSeconds(v *int) *RetryJobUpdateOne {
	if v != nil {
		_u.SetBackoffCapSeconds(*v)
	}
	return _u
}

// AddBackoffCapSeconds adds value to the "backoff_cap_seconds" field.
func (_u *RetryJobUpdateOne) AddBackoffCapSeconds(v int) *RetryJobUpdateOne {
	_u.mutation.AddBackoffCapSeconds(v)
	return _u
}

// Mutation returns the RetryJobMutation object of the builder.
func (_u *RetryJobUpdateOne) Mutation() *RetryJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the RetryJobUpdate builder.
func (_u *RetryJobUpdateOne) Where(ps ...predicate.RetryJob) *RetryJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RetryJobUpdateOne) Select(field string, fields ...string) *RetryJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RetryJob entity.
func (_u *RetryJobUpdateOne) Save(ctx context.Context) (*RetryJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RetryJobUpdateOne) SaveX(ctx context.Context) *RetryJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RetryJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RetryJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RetryJobUpdateOne) sqlSave(ctx context.Context) (_node *RetryJob, err error) {
	_spec := sqlgraph.NewUpdateSpec(retryjob.Table, retryjob.Columns, sqlgraph.NewFieldSpec(retryjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RetryJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, retryjob.FieldID)
		for _, f := range fields {
			if !retryjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != retryjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(retryjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(retryjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(retryjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(retryjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(retryjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffBaseSeconds(); ok {
		_spec.SetField(retryjob.FieldBackoffBaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackoffBaseSeconds(); ok {
		_spec.AddField(retryjob.FieldBackoffBaseSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffCapSeconds(); ok {
		_spec.SetField(retryjob.FieldBackoffCapSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBackoffCapSeconds(); ok {
		_spec.AddField(retryjob.FieldBackoffCapSeconds, field.TypeInt, value)
	}
	_node = &RetryJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{retryjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
