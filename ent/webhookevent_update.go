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
	"github.com/stridehq/cadenza/ent/webhookevent"
)

// WebhookEventUpdate is the builder for updating WebhookEvent entities.
type WebhookEventUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEventMutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdate) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdate) SetEventType(v string) *WebhookEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableEventType(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetExternalEventID sets the "external_event_id" field.
func (_u *WebhookEventUpdate) SetExternalEventID(v string) *WebhookEventUpdate {
	_u.mutation.SetExternalEventID(v)
	return _u
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableExternalEventID(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetExternalEventID(*v)
	}
	return _u
}

// ClearExternalEventID clears the value of the "external_event_id" field.
func (_u *WebhookEventUpdate) ClearExternalEventID() *WebhookEventUpdate {
	_u.mutation.ClearExternalEventID()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *WebhookEventUpdate) SetOrgID(v string) *WebhookEventUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableOrgID(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// ClearOrgID clears the value of the "org_id" field.
func (_u *WebhookEventUpdate) ClearOrgID() *WebhookEventUpdate {
	_u.mutation.ClearOrgID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdate) SetPayload(v map[string]interface{}) *WebhookEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *WebhookEventUpdate) SetHeaders(v map[string]interface{}) *WebhookEventUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *WebhookEventUpdate) ClearHeaders() *WebhookEventUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookEventUpdate) SetStatus(v webhookevent.Status) *WebhookEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableStatus(v *webhookevent.Status) *WebhookEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WebhookEventUpdate) SetErrorMessage(v string) *WebhookEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableErrorMessage(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WebhookEventUpdate) ClearErrorMessage() *WebhookEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdate) SetProcessedAt(v time.Time) *WebhookEventUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdate) ClearProcessedAt() *WebhookEventUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdate) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalEventID(); ok {
		_spec.SetField(webhookevent.FieldExternalEventID, field.TypeString, value)
	}
	if _u.mutation.ExternalEventIDCleared() {
		_spec.ClearField(webhookevent.FieldExternalEventID, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(webhookevent.FieldOrgID, field.TypeString, value)
	}
	if _u.mutation.OrgIDCleared() {
		_spec.ClearField(webhookevent.FieldOrgID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(webhookevent.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(webhookevent.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(webhookevent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEventUpdateOne is the builder for updating a single WebhookEvent entity.
type WebhookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdateOne) SetEventType(v string) *WebhookEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableEventType(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetExternalEventID sets the "external_event_id" field.
func (_u *WebhookEventUpdateOne) SetExternalEventID(v string) *WebhookEventUpdateOne {
	_u.mutation.SetExternalEventID(v)
	return _u
}

// SetNillableExternalEventID sets the "external_event_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableExternalEventID(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetExternalEventID(*v)
	}
	return _u
}

// ClearExternalEventID clears the value of the "external_event_id" field.
func (_u *WebhookEventUpdateOne) ClearExternalEventID() *WebhookEventUpdateOne {
	_u.mutation.ClearExternalEventID()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *WebhookEventUpdateOne) SetOrgID(v string) *WebhookEventUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableOrgID(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// ClearOrgID clears the value of the "org_id" field.
func (_u *WebhookEventUpdateOne) ClearOrgID() *WebhookEventUpdateOne {
	_u.mutation.ClearOrgID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdateOne) SetPayload(v map[string]interface{}) *WebhookEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *WebhookEventUpdateOne) SetHeaders(v map[string]interface{}) *WebhookEventUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *WebhookEventUpdateOne) ClearHeaders() *WebhookEventUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookEventUpdateOne) SetStatus(v webhookevent.Status) *WebhookEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableStatus(v *webhookevent.Status) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WebhookEventUpdateOne) SetErrorMessage(v string) *WebhookEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableErrorMessage(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WebhookEventUpdateOne) ClearErrorMessage() *WebhookEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *WebhookEventUpdateOne) SetProcessedAt(v time.Time) *WebhookEventUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessedAt(v *time.Time) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *WebhookEventUpdateOne) ClearProcessedAt() *WebhookEventUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdateOne) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdateOne) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEventUpdateOne) Select(field string, fields ...string) *WebhookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEvent entity.
func (_u *WebhookEventUpdateOne) Save(ctx context.Context) (*WebhookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) SaveX(ctx context.Context) *WebhookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookevent.FieldID)
		for _, f := range fields {
			if !webhookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalEventID(); ok {
		_spec.SetField(webhookevent.FieldExternalEventID, field.TypeString, value)
	}
	if _u.mutation.ExternalEventIDCleared() {
		_spec.ClearField(webhookevent.FieldExternalEventID, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(webhookevent.FieldOrgID, field.TypeString, value)
	}
	if _u.mutation.OrgIDCleared() {
		_spec.ClearField(webhookevent.FieldOrgID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(webhookevent.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(webhookevent.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(webhookevent.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(webhookevent.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(webhookevent.FieldProcessedAt, field.TypeTime)
	}
	_node = &WebhookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
