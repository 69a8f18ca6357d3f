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
	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/predicate"
)

// BotDeploymentUpdate is the builder for updating BotDeployment entities.
type BotDeploymentUpdate struct {
	config
	hooks    []Hook
	mutation *BotDeploymentMutation
}

// Where appends a list predicates to the BotDeploymentUpdate builder.
func (_u *BotDeploymentUpdate) Where(ps ...predicate.BotDeployment) *BotDeploymentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotID sets the "bot_id" field.
func (_u *BotDeploymentUpdate) SetBotID(v string) *BotDeploymentUpdate {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableBotID(v *string) *BotDeploymentUpdate {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BotDeploymentUpdate) SetStatus(v botdeployment.Status) *BotDeploymentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableStatus(v *botdeployment.Status) *BotDeploymentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *BotDeploymentUpdate) SetStatusHistory(v []map[string]interface{}) *BotDeploymentUpdate {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *BotDeploymentUpdate) AppendStatusHistory(v []map[string]interface{}) *BotDeploymentUpdate {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// ClearStatusHistory clears the value of the "status_history" field.
func (_u *BotDeploymentUpdate) ClearStatusHistory() *BotDeploymentUpdate {
	_u.mutation.ClearStatusHistory()
	return _u
}

// SetScheduledJoinTime sets the "scheduled_join_time" field.
func (_u *BotDeploymentUpdate) SetScheduledJoinTime(v time.Time) *BotDeploymentUpdate {
	_u.mutation.SetScheduledJoinTime(v)
	return _u
}

// SetNillableScheduledJoinTime sets the "scheduled_join_time" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableScheduledJoinTime(v *time.Time) *BotDeploymentUpdate {
	if v != nil {
		_u.SetScheduledJoinTime(*v)
	}
	return _u
}

// SetActualJoinTime sets the "actual_join_time" field.
func (_u *BotDeploymentUpdate) SetActualJoinTime(v time.Time) *BotDeploymentUpdate {
	_u.mutation.SetActualJoinTime(v)
	return _u
}

// SetNillableActualJoinTime sets the "actual_join_time" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableActualJoinTime(v *time.Time) *BotDeploymentUpdate {
	if v != nil {
		_u.SetActualJoinTime(*v)
	}
	return _u
}

// ClearActualJoinTime clears the value of the "actual_join_time" field.
func (_u *BotDeploymentUpdate) ClearActualJoinTime() *BotDeploymentUpdate {
	_u.mutation.ClearActualJoinTime()
	return _u
}

// SetLeaveTime sets the "leave_time" field.
func (_u *BotDeploymentUpdate) SetLeaveTime(v time.Time) *BotDeploymentUpdate {
	_u.mutation.SetLeaveTime(v)
	return _u
}

// SetNillableLeaveTime sets the "leave_time" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableLeaveTime(v *time.Time) *BotDeploymentUpdate {
	if v != nil {
		_u.SetLeaveTime(*v)
	}
	return _u
}

// ClearLeaveTime clears the value of the "leave_time" field.
func (_u *BotDeploymentUpdate) ClearLeaveTime() *BotDeploymentUpdate {
	_u.mutation.ClearLeaveTime()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *BotDeploymentUpdate) SetErrorCode(v string) *BotDeploymentUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableErrorCode(v *string) *BotDeploymentUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *BotDeploymentUpdate) ClearErrorCode() *BotDeploymentUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BotDeploymentUpdate) SetErrorMessage(v string) *BotDeploymentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableErrorMessage(v *string) *BotDeploymentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BotDeploymentUpdate) ClearErrorMessage() *BotDeploymentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BotDeploymentUpdate) SetVersion(v int) *BotDeploymentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BotDeploymentUpdate) SetNillableVersion(v *int) *BotDeploymentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BotDeploymentUpdate) AddVersion(v int) *BotDeploymentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotDeploymentUpdate) SetUpdatedAt(v time.Time) *BotDeploymentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BotDeploymentMutation object of the builder.
func (_u *BotDeploymentUpdate) Mutation() *BotDeploymentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotDeploymentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotDeploymentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotDeploymentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotDeploymentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotDeploymentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := botdeployment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotDeploymentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := botdeployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BotDeployment.status": %w`, err)}
		}
	}
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BotDeployment.recording"`)
	}
	return nil
}

func (_u *BotDeploymentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botdeployment.Table, botdeployment.Columns, sqlgraph.NewFieldSpec(botdeployment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(botdeployment.FieldBotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(botdeployment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(botdeployment.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, botdeployment.FieldStatusHistory, value)
		})
	}
	if _u.mutation.StatusHistoryCleared() {
		_spec.ClearField(botdeployment.FieldStatusHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledJoinTime(); ok {
		_spec.SetField(botdeployment.FieldScheduledJoinTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActualJoinTime(); ok {
		_spec.SetField(botdeployment.FieldActualJoinTime, field.TypeTime, value)
	}
	if _u.mutation.ActualJoinTimeCleared() {
		_spec.ClearField(botdeployment.FieldActualJoinTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaveTime(); ok {
		_spec.SetField(botdeployment.FieldLeaveTime, field.TypeTime, value)
	}
	if _u.mutation.LeaveTimeCleared() {
		_spec.ClearField(botdeployment.FieldLeaveTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(botdeployment.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(botdeployment.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(botdeployment.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(botdeployment.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(botdeployment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(botdeployment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(botdeployment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botdeployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotDeploymentUpdateOne is the builder for updating a single BotDeployment entity.
type BotDeploymentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotDeploymentMutation
}

// SetBotID sets the "bot_id" field.
func (_u *BotDeploymentUpdateOne) SetBotID(v string) *BotDeploymentUpdateOne {
	_u.mutation.SetBotID(v)
	return _u
}

// SetNillableBotID sets the "bot_id" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableBotID(v *string) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetBotID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BotDeploymentUpdateOne) SetStatus(v botdeployment.Status) *BotDeploymentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableStatus(v *botdeployment.Status) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStatusHistory sets the "status_history" field.
func (_u *BotDeploymentUpdateOne) SetStatusHistory(v []map[string]interface{}) *BotDeploymentUpdateOne {
	_u.mutation.SetStatusHistory(v)
	return _u
}

// AppendStatusHistory appends value to the "status_history" field.
func (_u *BotDeploymentUpdateOne) AppendStatusHistory(v []map[string]interface{}) *BotDeploymentUpdateOne {
	_u.mutation.AppendStatusHistory(v)
	return _u
}

// ClearStatusHistory clears the value of the "status_history" field.
func (_u *BotDeploymentUpdateOne) ClearStatusHistory() *BotDeploymentUpdateOne {
	_u.mutation.ClearStatusHistory()
	return _u
}

// SetScheduledJoinTime sets the "scheduled_join_time" field.
func (_u *BotDeploymentUpdateOne) SetScheduledJoinTime(v time.Time) *BotDeploymentUpdateOne {
	_u.mutation.SetScheduledJoinTime(v)
	return _u
}

// SetNillableScheduledJoinTime sets the "scheduled_join_time" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableScheduledJoinTime(v *time.Time) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetScheduledJoinTime(*v)
	}
	return _u
}

// SetActualJoinTime sets the "actual_join_time" field.
func (_u *BotDeploymentUpdateOne) SetActualJoinTime(v time.Time) *BotDeploymentUpdateOne {
	_u.mutation.SetActualJoinTime(v)
	return _u
}

// SetNillableActualJoinTime sets the "actual_join_time" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableActualJoinTime(v *time.Time) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetActualJoinTime(*v)
	}
	return _u
}

// ClearActualJoinTime clears the value of the "actual_join_time" field.
func (_u *BotDeploymentUpdateOne) ClearActualJoinTime() *BotDeploymentUpdateOne {
	_u.mutation.ClearActualJoinTime()
	return _u
}

// SetLeaveTime sets the "leave_time" field.
func (_u *BotDeploymentUpdateOne) SetLeaveTime(v time.Time) *BotDeploymentUpdateOne {
	_u.mutation.SetLeaveTime(v)
	return _u
}

// SetNillableLeaveTime sets the "leave_time" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableLeaveTime(v *time.Time) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetLeaveTime(*v)
	}
	return _u
}

// ClearLeaveTime clears the value of the "leave_time" field.
func (_u *BotDeploymentUpdateOne) ClearLeaveTime() *BotDeploymentUpdateOne {
	_u.mutation.ClearLeaveTime()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *BotDeploymentUpdateOne) SetErrorCode(v string) *BotDeploymentUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableErrorCode(v *string) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *BotDeploymentUpdateOne) ClearErrorCode() *BotDeploymentUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BotDeploymentUpdateOne) SetErrorMessage(v string) *BotDeploymentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableErrorMessage(v *string) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BotDeploymentUpdateOne) ClearErrorMessage() *BotDeploymentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetVersion sets the "version" field.
func (_u *BotDeploymentUpdateOne) SetVersion(v int) *BotDeploymentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *BotDeploymentUpdateOne) SetNillableVersion(v *int) *BotDeploymentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *BotDeploymentUpdateOne) AddVersion(v int) *BotDeploymentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotDeploymentUpdateOne) SetUpdatedAt(v time.Time) *BotDeploymentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BotDeploymentMutation object of the builder.
func (_u *BotDeploymentUpdateOne) Mutation() *BotDeploymentMutation {
	return _u.mutation
}

// Where appends a list predicates to the BotDeploymentUpdate builder.
func (_u *BotDeploymentUpdateOne) Where(ps ...predicate.BotDeployment) *BotDeploymentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotDeploymentUpdateOne) Select(field string, fields ...string) *BotDeploymentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BotDeployment entity.
func (_u *BotDeploymentUpdateOne) Save(ctx context.Context) (*BotDeployment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotDeploymentUpdateOne) SaveX(ctx context.Context) *BotDeployment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotDeploymentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotDeploymentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotDeploymentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := botdeployment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotDeploymentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := botdeployment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BotDeployment.status": %w`, err)}
		}
	}
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BotDeployment.recording"`)
	}
	return nil
}

func (_u *BotDeploymentUpdateOne) sqlSave(ctx context.Context) (_node *BotDeployment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botdeployment.Table, botdeployment.Columns, sqlgraph.NewFieldSpec(botdeployment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BotDeployment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botdeployment.FieldID)
		for _, f := range fields {
			if !botdeployment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != botdeployment.FieldID {
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
	if value, ok := _u.mutation.BotID(); ok {
		_spec.SetField(botdeployment.FieldBotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(botdeployment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusHistory(); ok {
		_spec.SetField(botdeployment.FieldStatusHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStatusHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, botdeployment.FieldStatusHistory, value)
		})
	}
	if _u.mutation.StatusHistoryCleared() {
		_spec.ClearField(botdeployment.FieldStatusHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ScheduledJoinTime(); ok {
		_spec.SetField(botdeployment.FieldScheduledJoinTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ActualJoinTime(); ok {
		_spec.SetField(botdeployment.FieldActualJoinTime, field.TypeTime, value)
	}
	if _u.mutation.ActualJoinTimeCleared() {
		_spec.ClearField(botdeployment.FieldActualJoinTime, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaveTime(); ok {
		_spec.SetField(botdeployment.FieldLeaveTime, field.TypeTime, value)
	}
	if _u.mutation.LeaveTimeCleared() {
		_spec.ClearField(botdeployment.FieldLeaveTime, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(botdeployment.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(botdeployment.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(botdeployment.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(botdeployment.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(botdeployment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(botdeployment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(botdeployment.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BotDeployment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botdeployment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
