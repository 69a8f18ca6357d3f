// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/predicate"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
)

// SequenceExecutionUpdate is the builder for updating SequenceExecution entities.
type SequenceExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *SequenceExecutionMutation
}

// Where appends a list predicates to the SequenceExecutionUpdate builder.
func (_u *SequenceExecutionUpdate) Where(ps ...predicate.SequenceExecution) *SequenceExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SequenceExecutionUpdate) SetStatus(v sequenceexecution.Status) *SequenceExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SequenceExecutionUpdate) SetNillableStatus(v *sequenceexecution.Status) *SequenceExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputTrigger sets the "input_trigger" field.
func (_u *SequenceExecutionUpdate) SetInputTrigger(v map[string]interface{}) *SequenceExecutionUpdate {
	_u.mutation.SetInputTrigger(v)
	return _u
}

// ClearInputTrigger clears the value of the "input_trigger" field.
func (_u *SequenceExecutionUpdate) ClearInputTrigger() *SequenceExecutionUpdate {
	_u.mutation.ClearInputTrigger()
	return _u
}

// SetInputContext sets the "input_context" field.
func (_u *SequenceExecutionUpdate) SetInputContext(v map[string]interface{}) *SequenceExecutionUpdate {
	_u.mutation.SetInputContext(v)
	return _u
}

// ClearInputContext clears the value of the "input_context" field.
func (_u *SequenceExecutionUpdate) ClearInputContext() *SequenceExecutionUpdate {
	_u.mutation.ClearInputContext()
	return _u
}

// SetStepResults sets the "step_results" field.
func (_u *SequenceExecutionUpdate) SetStepResults(v []map[string]interface{}) *SequenceExecutionUpdate {
	_u.mutation.SetStepResults(v)
	return _u
}

// AppendStepResults appends value to the "step_results" field.
func (_u *SequenceExecutionUpdate) AppendStepResults(v []map[string]interface{}) *SequenceExecutionUpdate {
	_u.mutation.AppendStepResults(v)
	return _u
}

// ClearStepResults clears the value of the "step_results" field.
func (_u *SequenceExecutionUpdate) ClearStepResults() *SequenceExecutionUpdate {
	_u.mutation.ClearStepResults()
	return _u
}

// SetFailedStepIndex sets the "failed_step_index" field.
func (_u *SequenceExecutionUpdate) SetFailedStepIndex(v int) *SequenceExecutionUpdate {
	_u.mutation.ResetFailedStepIndex()
	_u.mutation.SetFailedStepIndex(v)
	return _u
}

// SetNillableFailedStepIndex sets the "failed_step_index" field if the given value is not nil.
func (_u *SequenceExecutionUpdate) SetNillableFailedStepIndex(v *int) *SequenceExecutionUpdate {
	if v != nil {
		_u.SetFailedStepIndex(*v)
	}
	return _u
}

// AddFailedStepIndex adds value to the "failed_step_index" field.
func (_u *SequenceExecutionUpdate) AddFailedStepIndex(v int) *SequenceExecutionUpdate {
	_u.mutation.AddFailedStepIndex(v)
	return _u
}

// ClearFailedStepIndex clears the value of the "failed_step_index" field.
func (_u *SequenceExecutionUpdate) ClearFailedStepIndex() *SequenceExecutionUpdate {
	_u.mutation.ClearFailedStepIndex()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SequenceExecutionUpdate) SetFinishedAt(v time.Time) *SequenceExecutionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SequenceExecutionUpdate) SetNillableFinishedAt(v *time.Time) *SequenceExecutionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *SequenceExecutionUpdate) ClearFinishedAt() *SequenceExecutionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the SequenceExecutionMutation object of the builder.
func (_u *SequenceExecutionUpdate) Mutation() *SequenceExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SequenceExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SequenceExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SequenceExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sequenceexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SequenceExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SequenceExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sequenceexecution.Table, sequenceexecution.Columns, sqlgraph.NewFieldSpec(sequenceexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sequenceexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputTrigger(); ok {
		_spec.SetField(sequenceexecution.FieldInputTrigger, field.TypeJSON, value)
	}
	if _u.mutation.InputTriggerCleared() {
		_spec.ClearField(sequenceexecution.FieldInputTrigger, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputContext(); ok {
		_spec.SetField(sequenceexecution.FieldInputContext, field.TypeJSON, value)
	}
	if _u.mutation.InputContextCleared() {
		_spec.ClearField(sequenceexecution.FieldInputContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepResults(); ok {
		_spec.SetField(sequenceexecution.FieldStepResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sequenceexecution.FieldStepResults, value)
		})
	}
	if _u.mutation.StepResultsCleared() {
		_spec.ClearField(sequenceexecution.FieldStepResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailedStepIndex(); ok {
		_spec.SetField(sequenceexecution.FieldFailedStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedStepIndex(); ok {
		_spec.AddField(sequenceexecution.FieldFailedStepIndex, field.TypeInt, value)
	}
	if _u.mutation.FailedStepIndexCleared() {
		_spec.ClearField(sequenceexecution.FieldFailedStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(sequenceexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(sequenceexecution.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequenceexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SequenceExecutionUpdateOne is the builder for updating a single SequenceExecution entity.
type SequenceExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SequenceExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *SequenceExecutionUpdateOne) SetStatus(v sequenceexecution.Status) *SequenceExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SequenceExecutionUpdateOne) SetNillableStatus(v *sequenceexecution.Status) *SequenceExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetInputTrigger sets the "input_trigger" field.
func (_u *SequenceExecutionUpdateOne) SetInputTrigger(v map[string]interface{}) *SequenceExecutionUpdateOne {
	_u.mutation.SetInputTrigger(v)
	return _u
}

// ClearInputTrigger clears the value of the "input_trigger" field.
func (_u *SequenceExecutionUpdateOne) ClearInputTrigger() *SequenceExecutionUpdateOne {
	_u.mutation.ClearInputTrigger()
	return _u
}

// SetInputContext sets the "input_context" field.
func (_u *SequenceExecutionUpdateOne) SetInputContext(v map[string]interface{}) *SequenceExecutionUpdateOne {
	_u.mutation.SetInputContext(v)
	return _u
}

// ClearInputContext clears the value of the "input_context" field.
func (_u *SequenceExecutionUpdateOne) ClearInputContext() *SequenceExecutionUpdateOne {
	_u.mutation.ClearInputContext()
	return _u
}

// SetStepResults sets the "step_results" field.
func (_u *SequenceExecutionUpdateOne) SetStepResults(v []map[string]interface{}) *SequenceExecutionUpdateOne {
	_u.mutation.SetStepResults(v)
	return _u
}

// AppendStepResults appends value to the "step_results" field.
func (_u *SequenceExecutionUpdateOne) AppendStepResults(v []map[string]interface{}) *SequenceExecutionUpdateOne {
	_u.mutation.AppendStepResults(v)
	return _u
}

// ClearStepResults clears the value of the "step_results" field.
func (_u *SequenceExecutionUpdateOne) ClearStepResults() *SequenceExecutionUpdateOne {
	_u.mutation.ClearStepResults()
	return _u
}

// SetFailedStepIndex sets the "failed_step_index" field.
func (_u *SequenceExecutionUpdateOne) SetFailedStepIndex(v int) *SequenceExecutionUpdateOne {
	_u.mutation.ResetFailedStepIndex()
	_u.mutation.SetFailedStepIndex(v)
	return _u
}

// SetNillableFailedStepIndex sets the "failed_step_index" field if the given value is not nil.
func (_u *SequenceExecutionUpdateOne) SetNillableFailedStepIndex(v *int) *SequenceExecutionUpdateOne {
	if v != nil {
		_u.SetFailedStepIndex(*v)
	}
	return _u
}

// AddFailedStepIndex adds value to the "failed_step_index" field.
func (_u *SequenceExecutionUpdateOne) AddFailedStepIndex(v int) *SequenceExecutionUpdateOne {
	_u.mutation.AddFailedStepIndex(v)
	return _u
}

// ClearFailedStepIndex clears the value of the "failed_step_index" field.
func (_u *SequenceExecutionUpdateOne) ClearFailedStepIndex() *SequenceExecutionUpdateOne {
	_u.mutation.ClearFailedStepIndex()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SequenceExecutionUpdateOne) SetFinishedAt(v time.Time) *SequenceExecutionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SequenceExecutionUpdateOne) SetNillableFinishedAt(v *time.Time) *SequenceExecutionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *SequenceExecutionUpdateOne) ClearFinishedAt() *SequenceExecutionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the SequenceExecutionMutation object of the builder.
func (_u *SequenceExecutionUpdateOne) Mutation() *SequenceExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SequenceExecutionUpdate builder.
func (_u *SequenceExecutionUpdateOne) Where(ps ...predicate.SequenceExecution) *SequenceExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SequenceExecutionUpdateOne) Select(field string, fields ...string) *SequenceExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SequenceExecution entity.
func (_u *SequenceExecutionUpdateOne) Save(ctx context.Context) (*SequenceExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SequenceExecutionUpdateOne) SaveX(ctx context.Context) *SequenceExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SequenceExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SequenceExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SequenceExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sequenceexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SequenceExecution.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SequenceExecutionUpdateOne) sqlSave(ctx context.Context) (_node *SequenceExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sequenceexecution.Table, sequenceexecution.Columns, sqlgraph.NewFieldSpec(sequenceexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SequenceExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sequenceexecution.FieldID)
		for _, f := range fields {
			if !sequenceexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sequenceexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sequenceexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InputTrigger(); ok {
		_spec.SetField(sequenceexecution.FieldInputTrigger, field.TypeJSON, value)
	}
	if _u.mutation.InputTriggerCleared() {
		_spec.ClearField(sequenceexecution.FieldInputTrigger, field.TypeJSON)
	}
	if value, ok := _u.mutation.InputContext(); ok {
		_spec.SetField(sequenceexecution.FieldInputContext, field.TypeJSON, value)
	}
	if _u.mutation.InputContextCleared() {
		_spec.ClearField(sequenceexecution.FieldInputContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepResults(); ok {
		_spec.SetField(sequenceexecution.FieldStepResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStepResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sequenceexecution.FieldStepResults, value)
		})
	}
	if _u.mutation.StepResultsCleared() {
		_spec.ClearField(sequenceexecution.FieldStepResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailedStepIndex(); ok {
		_spec.SetField(sequenceexecution.FieldFailedStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedStepIndex(); ok {
		_spec.AddField(sequenceexecution.FieldFailedStepIndex, field.TypeInt, value)
	}
	if _u.mutation.FailedStepIndexCleared() {
		_spec.ClearField(sequenceexecution.FieldFailedStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(sequenceexecution.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(sequenceexecution.FieldFinishedAt, field.TypeTime)
	}
	_node = &SequenceExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sequenceexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
