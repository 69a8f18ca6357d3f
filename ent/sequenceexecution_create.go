// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
)

// SequenceExecutionCreate is the builder for creating a SequenceExecution entity.
type SequenceExecutionCreate struct {
	config
	mutation *SequenceExecutionMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *SequenceExecutionCreate) SetOrgID(v string) *SequenceExecutionCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SequenceExecutionCreate) SetUserID(v string) *SequenceExecutionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSequenceKey sets the "sequence_key" field.
func (_c *SequenceExecutionCreate) SetSequenceKey(v string) *SequenceExecutionCreate {
	_c.mutation.SetSequenceKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SequenceExecutionCreate) SetStatus(v sequenceexecution.Status) *SequenceExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SequenceExecutionCreate) SetNillableStatus(v *sequenceexecution.Status) *SequenceExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInputTrigger sets the "input_trigger" field.
func (_c *SequenceExecutionCreate) SetInputTrigger(v map[string]interface{}) *SequenceExecutionCreate {
	_c.mutation.SetInputTrigger(v)
	return _c
}

// SetInputContext sets the "input_context" field.
func (_c *SequenceExecutionCreate) SetInputContext(v map[string]interface{}) *SequenceExecutionCreate {
	_c.mutation.SetInputContext(v)
	return _c
}

// SetStepResults sets the "step_results" field.
func (_c *SequenceExecutionCreate) SetStepResults(v []map[string]interface{}) *SequenceExecutionCreate {
	_c.mutation.SetStepResults(v)
	return _c
}

// SetFailedStepIndex sets the "failed_step_index" field.
func (_c *SequenceExecutionCreate) SetFailedStepIndex(v int) *SequenceExecutionCreate {
	_c.mutation.SetFailedStepIndex(v)
	return _c
}

// SetNillableFailedStepIndex sets the "failed_step_index" field if the given value is not nil.
func (_c *SequenceExecutionCreate) SetNillableFailedStepIndex(v *int) *SequenceExecutionCreate {
	if v != nil {
		_c.SetFailedStepIndex(*v)
	}
	return _c
}

// SetIsSimulation sets the "is_simulation" field.
func (_c *SequenceExecutionCreate) SetIsSimulation(v bool) *SequenceExecutionCreate {
	_c.mutation.SetIsSimulation(v)
	return _c
}

// SetNillableIsSimulation sets the "is_simulation" field if the given value is not nil.
func (_c *SequenceExecutionCreate) SetNillableIsSimulation(v *bool) *SequenceExecutionCreate {
	if v != nil {
		_c.SetIsSimulation(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SequenceExecutionCreate) SetStartedAt(v time.Time) *SequenceExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SequenceExecutionCreate) SetNillableStartedAt(v *time.Time) *SequenceExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *SequenceExecutionCreate) SetFinishedAt(v time.Time) *SequenceExecutionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *SequenceExecutionCreate) SetNillableFinishedAt(v *time.Time) *SequenceExecutionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SequenceExecutionCreate) SetID(v string) *SequenceExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SequenceExecutionMutation object of the builder.
func (_c *SequenceExecutionCreate) Mutation() *SequenceExecutionMutation {
	return _c.mutation
}

// Save creates the SequenceExecution in the database.
func (_c *SequenceExecutionCreate) Save(ctx context.Context) (*SequenceExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SequenceExecutionCreate) SaveX(ctx context.Context) *SequenceExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SequenceExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SequenceExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SequenceExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sequenceexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsSimulation(); !ok {
		v := sequenceexecution.DefaultIsSimulation
		_c.mutation.SetIsSimulation(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := sequenceexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SequenceExecutionCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "SequenceExecution.org_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SequenceExecution.user_id"`)}
	}
	if _, ok := _c.mutation.SequenceKey(); !ok {
		return &ValidationError{Name: "sequence_key", err: errors.New(`ent: missing required field "SequenceExecution.sequence_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SequenceExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sequenceexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SequenceExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsSimulation(); !ok {
		return &ValidationError{Name: "is_simulation", err: errors.New(`ent: missing required field "SequenceExecution.is_simulation"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SequenceExecution.started_at"`)}
	}
	return nil
}

func (_c *SequenceExecutionCreate) sqlSave(ctx context.Context) (*SequenceExecution, error) {
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
			return nil, fmt.Errorf("unexpected SequenceExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SequenceExecutionCreate) createSpec() (*SequenceExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &SequenceExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sequenceexecution.Table, sqlgraph.NewFieldSpec(sequenceexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(sequenceexecution.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sequenceexecution.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SequenceKey(); ok {
		_spec.SetField(sequenceexecution.FieldSequenceKey, field.TypeString, value)
		_node.SequenceKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sequenceexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputTrigger(); ok {
		_spec.SetField(sequenceexecution.FieldInputTrigger, field.TypeJSON, value)
		_node.InputTrigger = value
	}
	if value, ok := _c.mutation.InputContext(); ok {
		_spec.SetField(sequenceexecution.FieldInputContext, field.TypeJSON, value)
		_node.InputContext = value
	}
	if value, ok := _c.mutation.StepResults(); ok {
		_spec.SetField(sequenceexecution.FieldStepResults, field.TypeJSON, value)
		_node.StepResults = value
	}
	if value, ok := _c.mutation.FailedStepIndex(); ok {
		_spec.SetField(sequenceexecution.FieldFailedStepIndex, field.TypeInt, value)
		_node.FailedStepIndex = &value
	}
	if value, ok := _c.mutation.IsSimulation(); ok {
		_spec.SetField(sequenceexecution.FieldIsSimulation, field.TypeBool, value)
		_node.IsSimulation = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sequenceexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(sequenceexecution.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// SequenceExecutionCreateBulk is the builder for creating many SequenceExecution entities in bulk.
type SequenceExecutionCreateBulk struct {
	config
	err      error
	builders []*SequenceExecutionCreate
}

// Save creates the SequenceExecution entities in the database.
func (_c *SequenceExecutionCreateBulk) Save(ctx context.Context) ([]*SequenceExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SequenceExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SequenceExecutionMutation)
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
func (_c *SequenceExecutionCreateBulk) SaveX(ctx context.Context) []*SequenceExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SequenceExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SequenceExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
