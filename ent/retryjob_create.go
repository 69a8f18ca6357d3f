// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/retryjob"
)

// RetryJobCreate is the builder for creating a RetryJob entity.
type RetryJobCreate struct {
	config
	mutation *RetryJobMutation
	hooks    []Hook
}

// SetJobType sets the "job_type" field.
func (_c *RetryJobCreate) SetJobType(v string) *RetryJobCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetTargetEntityRef sets the "target_entity_ref" field.
func (_c *RetryJobCreate) SetTargetEntityRef(v string) *RetryJobCreate {
	_c.mutation.SetTargetEntityRef(v)
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *RetryJobCreate) SetNextAttemptAt(v time.Time) *RetryJobCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *RetryJobCreate) SetAttempts(v int) *RetryJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *RetryJobCreate) SetNillableAttempts(v *int) *RetryJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *RetryJobCreate) SetMaxAttempts(v int) *RetryJobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *RetryJobCreate) SetNillableMaxAttempts(v *int) *RetryJobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetBackoffBaseSeconds sets the "backoff_base_seconds" field.
func (_c *RetryJobCreate) SetBackoffBaseSeconds(v int) *RetryJobCreate {
	_c.mutation.SetBackoffBaseSeconds(v)
	return _c
}

// SetNillableBackoffBaseSeconds sets the "backoff_base_seconds" field if the given value is not nil.
func (_c *RetryJobCreate) SetNillableBackoffBaseSeconds(v *int) *RetryJobCreate {
	if v != nil {
		_c.SetBackoffBaseSeconds(*v)
	}
	return _c
}

// SetBackoffCapSeconds sets the "backoff_cap_seconds" field.
func (_c *RetryJobCreate) SetBackoffCapSeconds(v int) *RetryJobCreate {
	_c.mutation.SetBackoffCapSeconds(v)
	return _c
}

// SetNillableBackoffCapSeconds sets the "backoff_cap_seconds" field if the given value is not nil.
func (_c *RetryJobCreate) SetNillableBackoffCapSeconds(v *int) *RetryJobCreate {
	if v != nil {
		_c.SetBackoffCapSeconds(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RetryJobCreate) SetCreatedAt(v time.Time) *RetryJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RetryJobCreate) SetNillableCreatedAt(v *time.Time) *RetryJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RetryJobCreate) SetID(v string) *RetryJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RetryJobMutation object of the builder.
func (_c *RetryJobCreate) Mutation() *RetryJobMutation {
	return _c.mutation
}

// Save creates the RetryJob in the database.
func (_c *RetryJobCreate) Save(ctx context.Context) (*RetryJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RetryJobCreate) SaveX(ctx context.Context) *RetryJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RetryJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RetryJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RetryJobCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := retryjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := retryjob.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.BackoffBaseSeconds(); !ok {
		v := retryjob.DefaultBackoffBaseSeconds
		_c.mutation.SetBackoffBaseSeconds(v)
	}
	if _, ok := _c.mutation.BackoffCapSeconds(); !ok {
		v := retryjob.DefaultBackoffCapSeconds
		_c.mutation.SetBackoffCapSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := retryjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RetryJobCreate) check() error {
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "RetryJob.job_type"`)}
	}
	if _, ok := _c.mutation.TargetEntityRef(); !ok {
		return &ValidationError{Name: "target_entity_ref", err: errors.New(`ent: missing required field "RetryJob.target_entity_ref"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "RetryJob.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "RetryJob.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "RetryJob.max_attempts"`)}
	}
	if _, ok := _c.mutation.BackoffBaseSeconds(); !ok {
		return &ValidationError{Name: "backoff_base_seconds", err: errors.New(`ent: missing required field "RetryJob.backoff_base_seconds"`)}
	}
	if _, ok := _c.mutation.BackoffCapSeconds(); !ok {
		return &ValidationError{Name: "backoff_cap_seconds", err: errors.New(`ent: missing required field "RetryJob.backoff_cap_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RetryJob.created_at"`)}
	}
	return nil
}

func (_c *RetryJobCreate) sqlSave(ctx context.Context) (*RetryJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RetryJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RetryJobCreate) createSpec() (*RetryJob, *sqlgraph.CreateSpec) {
	var (
		_node = &RetryJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(retryjob.Table, sqlgraph.NewFieldSpec(retryjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(retryjob.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.TargetEntityRef(); ok {
		_spec.SetField(retryjob.FieldTargetEntityRef, field.TypeString, value)
		_node.TargetEntityRef = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(retryjob.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(retryjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(retryjob.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.BackoffBaseSeconds(); ok {
		_spec.SetField(retryjob.FieldBackoffBaseSeconds, field.TypeInt, value)
		_node.BackoffBaseSeconds = value
	}
	if value, ok := _c.mutation.BackoffCapSeconds(); ok {
		_spec.SetField(retryjob.FieldBackoffCapSeconds, field.TypeInt, value)
		_node.BackoffCapSeconds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(retryjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RetryJobCreateBulk is the builder for creating many RetryJob entities in bulk.
type RetryJobCreateBulk struct {
	config
	err      error
	builders []*RetryJobCreate
}

// Save creates the RetryJob entities in the database.
func (_c *RetryJobCreateBulk) Save(ctx context.Context) ([]*RetryJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RetryJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RetryJobMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RetryJobCreateBulk) SaveX(ctx context.Context) []*RetryJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RetryJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RetryJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
