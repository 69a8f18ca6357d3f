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
	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/predicate"
)

// NotificationInteractionUpdate is the builder for updating NotificationInteraction entities.
type NotificationInteractionUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationInteractionMutation
}

// Where appends a list predicates to the NotificationInteractionUpdate builder.
func (_u *NotificationInteractionUpdate) Where(ps ...predicate.NotificationInteraction) *NotificationInteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *NotificationInteractionUpdate) SetOpenedAt(v time.Time) *NotificationInteractionUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *NotificationInteractionUpdate) SetNillableOpenedAt(v *time.Time) *NotificationInteractionUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *NotificationInteractionUpdate) ClearOpenedAt() *NotificationInteractionUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetClickedAt sets the "clicked_at" field.
func (_u *NotificationInteractionUpdate) SetClickedAt(v time.Time) *NotificationInteractionUpdate {
	_u.mutation.SetClickedAt(v)
	return _u
}

// SetNillableClickedAt sets the "clicked_at" field if the given value is not nil.
func (_u *NotificationInteractionUpdate) SetNillableClickedAt(v *time.Time) *NotificationInteractionUpdate {
	if v != nil {
		_u.SetClickedAt(*v)
	}
	return _u
}

// ClearClickedAt clears the value of the "clicked_at" field.
func (_u *NotificationInteractionUpdate) ClearClickedAt() *NotificationInteractionUpdate {
	_u.mutation.ClearClickedAt()
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *NotificationInteractionUpdate) SetDismissedAt(v time.Time) *NotificationInteractionUpdate {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *NotificationInteractionUpdate) SetNillableDismissedAt(v *time.Time) *NotificationInteractionUpdate {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (_u *NotificationInteractionUpdate) ClearDismissedAt() *NotificationInteractionUpdate {
	_u.mutation.ClearDismissedAt()
	return _u
}

// Mutation returns the NotificationInteractionMutation object of the builder.
func (_u *NotificationInteractionUpdate) Mutation() *NotificationInteractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationInteractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationInteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationInteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationInteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NotificationInteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(notificationinteraction.Table, notificationinteraction.Columns, sqlgraph.NewFieldSpec(notificationinteraction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(notificationinteraction.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(notificationinteraction.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClickedAt(); ok {
		_spec.SetField(notificationinteraction.FieldClickedAt, field.TypeTime, value)
	}
	if _u.mutation.ClickedAtCleared() {
		_spec.ClearField(notificationinteraction.FieldClickedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(notificationinteraction.FieldDismissedAt, field.TypeTime, value)
	}
	if _u.mutation.DismissedAtCleared() {
		_spec.ClearField(notificationinteraction.FieldDismissedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationInteractionUpdateOne is the builder for updating a single NotificationInteraction entity.
type NotificationInteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationInteractionMutation
}

// SetOpenedAt sets the "opened_at" field.
func (_u *NotificationInteractionUpdateOne) SetOpenedAt(v time.Time) *NotificationInteractionUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *NotificationInteractionUpdateOne) SetNillableOpenedAt(v *time.Time) *NotificationInteractionUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *NotificationInteractionUpdateOne) ClearOpenedAt() *NotificationInteractionUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetClickedAt sets the "clicked_at" field.
func (_u *NotificationInteractionUpdateOne) SetClickedAt(v time.Time) *NotificationInteractionUpdateOne {
	_u.mutation.SetClickedAt(v)
	return _u
}

// SetNillableClickedAt sets the "clicked_at" field if the given value is not nil.
func (_u *NotificationInteractionUpdateOne) SetNillableClickedAt(v *time.Time) *NotificationInteractionUpdateOne {
	if v != nil {
		_u.SetClickedAt(*v)
	}
	return _u
}

// ClearClickedAt clears the value of the "clicked_at" field.
func (_u *NotificationInteractionUpdateOne) ClearClickedAt() *NotificationInteractionUpdateOne {
	_u.mutation.ClearClickedAt()
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *NotificationInteractionUpdateOne) SetDismissedAt(v time.Time) *NotificationInteractionUpdateOne {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *NotificationInteractionUpdateOne) SetNillableDismissedAt(v *time.Time) *NotificationInteractionUpdateOne {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (_u *NotificationInteractionUpdateOne) ClearDismissedAt() *NotificationInteractionUpdateOne {
	_u.mutation.ClearDismissedAt()
	return _u
}

// Mutation returns the NotificationInteractionMutation object of the builder.
func (_u *NotificationInteractionUpdateOne) Mutation() *NotificationInteractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationInteractionUpdate builder.
func (_u *NotificationInteractionUpdateOne) Where(ps ...predicate.NotificationInteraction) *NotificationInteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationInteractionUpdateOne) Select(field string, fields ...string) *NotificationInteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationInteraction entity.
func (_u *NotificationInteractionUpdateOne) Save(ctx context.Context) (*NotificationInteraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationInteractionUpdateOne) SaveX(ctx context.Context) *NotificationInteraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationInteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationInteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *NotificationInteractionUpdateOne) sqlSave(ctx context.Context) (_node *NotificationInteraction, err error) {
	_spec := sqlgraph.NewUpdateSpec(notificationinteraction.Table, notificationinteraction.Columns, sqlgraph.NewFieldSpec(notificationinteraction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationInteraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationinteraction.FieldID)
		for _, f := range fields {
			if !notificationinteraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationinteraction.FieldID {
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
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(notificationinteraction.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(notificationinteraction.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClickedAt(); ok {
		_spec.SetField(notificationinteraction.FieldClickedAt, field.TypeTime, value)
	}
	if _u.mutation.ClickedAtCleared() {
		_spec.ClearField(notificationinteraction.FieldClickedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(notificationinteraction.FieldDismissedAt, field.TypeTime, value)
	}
	if _u.mutation.DismissedAtCleared() {
		_spec.ClearField(notificationinteraction.FieldDismissedAt, field.TypeTime)
	}
	_node = &NotificationInteraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationinteraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
