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
	"github.com/stridehq/cadenza/ent/inappnotification"
	"github.com/stridehq/cadenza/ent/predicate"
)

// InAppNotificationUpdate is the builder for updating InAppNotification entities.
type InAppNotificationUpdate struct {
	config
	hooks    []Hook
	mutation *InAppNotificationMutation
}

// Where appends a list predicates to the InAppNotificationUpdate builder.
func (_u *InAppNotificationUpdate) Where(ps ...predicate.InAppNotification) *InAppNotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *InAppNotificationUpdate) SetTitle(v string) *InAppNotificationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InAppNotificationUpdate) SetNillableTitle(v *string) *InAppNotificationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *InAppNotificationUpdate) SetBody(v string) *InAppNotificationUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InAppNotificationUpdate) SetNillableBody(v *string) *InAppNotificationUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *InAppNotificationUpdate) ClearBody() *InAppNotificationUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InAppNotificationUpdate) SetPayload(v map[string]interface{}) *InAppNotificationUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *InAppNotificationUpdate) ClearPayload() *InAppNotificationUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *InAppNotificationUpdate) SetReadAt(v time.Time) *InAppNotificationUpdate {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *InAppNotificationUpdate) SetNillableReadAt(v *time.Time) *InAppNotificationUpdate {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *InAppNotificationUpdate) ClearReadAt() *InAppNotificationUpdate {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the InAppNotificationMutation object of the builder.
func (_u *InAppNotificationUpdate) Mutation() *InAppNotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InAppNotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InAppNotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InAppNotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InAppNotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InAppNotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(inappnotification.Table, inappnotification.Columns, sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(inappnotification.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(inappnotification.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(inappnotification.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(inappnotification.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inappnotification.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(inappnotification.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(inappnotification.FieldReadAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inappnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InAppNotificationUpdateOne is the builder for updating a single InAppNotification entity.
type InAppNotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InAppNotificationMutation
}

// SetTitle sets the "title" field.
func (_u *InAppNotificationUpdateOne) SetTitle(v string) *InAppNotificationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InAppNotificationUpdateOne) SetNillableTitle(v *string) *InAppNotificationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *InAppNotificationUpdateOne) SetBody(v string) *InAppNotificationUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InAppNotificationUpdateOne) SetNillableBody(v *string) *InAppNotificationUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *InAppNotificationUpdateOne) ClearBody() *InAppNotificationUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *InAppNotificationUpdateOne) SetPayload(v map[string]interface{}) *InAppNotificationUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *InAppNotificationUpdateOne) ClearPayload() *InAppNotificationUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetReadAt sets the "read_at" field.
func (_u *InAppNotificationUpdateOne) SetReadAt(v time.Time) *InAppNotificationUpdateOne {
	_u.mutation.SetReadAt(v)
	return _u
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_u *InAppNotificationUpdateOne) SetNillableReadAt(v *time.Time) *InAppNotificationUpdateOne {
	if v != nil {
		_u.SetReadAt(*v)
	}
	return _u
}

// ClearReadAt clears the value of the "read_at" field.
func (_u *InAppNotificationUpdateOne) ClearReadAt() *InAppNotificationUpdateOne {
	_u.mutation.ClearReadAt()
	return _u
}

// Mutation returns the InAppNotificationMutation object of the builder.
func (_u *InAppNotificationUpdateOne) Mutation() *InAppNotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the InAppNotificationUpdate builder.
func (_u *InAppNotificationUpdateOne) Where(ps ...predicate.InAppNotification) *InAppNotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InAppNotificationUpdateOne) Select(field string, fields ...string) *InAppNotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InAppNotification entity.
func (_u *InAppNotificationUpdateOne) Save(ctx context.Context) (*InAppNotification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InAppNotificationUpdateOne) SaveX(ctx context.Context) *InAppNotification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InAppNotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InAppNotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InAppNotificationUpdateOne) sqlSave(ctx context.Context) (_node *InAppNotification, err error) {
	_spec := sqlgraph.NewUpdateSpec(inappnotification.Table, inappnotification.Columns, sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InAppNotification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inappnotification.FieldID)
		for _, f := range fields {
			if !inappnotification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inappnotification.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(inappnotification.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(inappnotification.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(inappnotification.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(inappnotification.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(inappnotification.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReadAt(); ok {
		_spec.SetField(inappnotification.FieldReadAt, field.TypeTime, value)
	}
	if _u.mutation.ReadAtCleared() {
		_spec.ClearField(inappnotification.FieldReadAt, field.TypeTime)
	}
	_node = &InAppNotification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inappnotification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
