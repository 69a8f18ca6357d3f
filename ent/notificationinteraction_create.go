// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
)

// NotificationInteractionCreate is the builder for creating a NotificationInteraction entity.
type NotificationInteractionCreate struct {
	config
	mutation *NotificationInteractionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *NotificationInteractionCreate) SetUserID(v string) *NotificationInteractionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *NotificationInteractionCreate) SetOrgID(v string) *NotificationInteractionCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetNotificationType sets the "notification_type" field.
func (_c *NotificationInteractionCreate) SetNotificationType(v string) *NotificationInteractionCreate {
	_c.mutation.SetNotificationType(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *NotificationInteractionCreate) SetPriority(v string) *NotificationInteractionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *NotificationInteractionCreate) SetNillablePriority(v *string) *NotificationInteractionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *NotificationInteractionCreate) SetDeliveredAt(v time.Time) *NotificationInteractionCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetDeliveredVia sets the "delivered_via" field.
func (_c *NotificationInteractionCreate) SetDeliveredVia(v string) *NotificationInteractionCreate {
	_c.mutation.SetDeliveredVia(v)
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *NotificationInteractionCreate) SetOpenedAt(v time.Time) *NotificationInteractionCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *NotificationInteractionCreate) SetNillableOpenedAt(v *time.Time) *NotificationInteractionCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetClickedAt sets the "clicked_at" field.
func (_c *NotificationInteractionCreate) SetClickedAt(v time.Time) *NotificationInteractionCreate {
	_c.mutation.SetClickedAt(v)
	return _c
}

// SetNillableClickedAt sets the "clicked_at" field if the given value is not nil.
func (_c *NotificationInteractionCreate) SetNillableClickedAt(v *time.Time) *NotificationInteractionCreate {
	if v != nil {
		_c.SetClickedAt(*v)
	}
	return _c
}

// SetDismissedAt sets the "dismissed_at" field.
func (_c *NotificationInteractionCreate) SetDismissedAt(v time.Time) *NotificationInteractionCreate {
	_c.mutation.SetDismissedAt(v)
	return _c
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_c *NotificationInteractionCreate) SetNillableDismissedAt(v *time.Time) *NotificationInteractionCreate {
	if v != nil {
		_c.SetDismissedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationInteractionCreate) SetID(v string) *NotificationInteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NotificationInteractionMutation object of the builder.
func (_c *NotificationInteractionCreate) Mutation() *NotificationInteractionMutation {
	return _c.mutation
}

// Save creates the NotificationInteraction in the database.
func (_c *NotificationInteractionCreate) Save(ctx context.Context) (*NotificationInteraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationInteractionCreate) SaveX(ctx context.Context) *NotificationInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationInteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationInteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationInteractionCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := notificationinteraction.DefaultPriority
		_c.mutation.SetPriority(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationInteractionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NotificationInteraction.user_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "NotificationInteraction.org_id"`)}
	}
	if _, ok := _c.mutation.NotificationType(); !ok {
		return &ValidationError{Name: "notification_type", err: errors.New(`ent: missing required field "NotificationInteraction.notification_type"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "NotificationInteraction.priority"`)}
	}
	if _, ok := _c.mutation.DeliveredAt(); !ok {
		return &ValidationError{Name: "delivered_at", err: errors.New(`ent: missing required field "NotificationInteraction.delivered_at"`)}
	}
	if _, ok := _c.mutation.DeliveredVia(); !ok {
		return &ValidationError{Name: "delivered_via", err: errors.New(`ent: missing required field "NotificationInteraction.delivered_via"`)}
	}
	return nil
}

func (_c *NotificationInteractionCreate) sqlSave(ctx context.Context) (*NotificationInteraction, error) {
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
			return nil, fmt.Errorf("unexpected NotificationInteraction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationInteractionCreate) createSpec() (*NotificationInteraction, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationInteraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationinteraction.Table, sqlgraph.NewFieldSpec(notificationinteraction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationinteraction.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(notificationinteraction.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.NotificationType(); ok {
		_spec.SetField(notificationinteraction.FieldNotificationType, field.TypeString, value)
		_node.NotificationType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(notificationinteraction.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(notificationinteraction.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = value
	}
	if value, ok := _c.mutation.DeliveredVia(); ok {
		_spec.SetField(notificationinteraction.FieldDeliveredVia, field.TypeString, value)
		_node.DeliveredVia = value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(notificationinteraction.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.ClickedAt(); ok {
		_spec.SetField(notificationinteraction.FieldClickedAt, field.TypeTime, value)
		_node.ClickedAt = &value
	}
	if value, ok := _c.mutation.DismissedAt(); ok {
		_spec.SetField(notificationinteraction.FieldDismissedAt, field.TypeTime, value)
		_node.DismissedAt = &value
	}
	return _node, _spec
}

// NotificationInteractionCreateBulk is the builder for creating many NotificationInteraction entities in bulk.
type NotificationInteractionCreateBulk struct {
	config
	err      error
	builders []*NotificationInteractionCreate
}

// Save creates the NotificationInteraction entities in the database.
func (_c *NotificationInteractionCreateBulk) Save(ctx context.Context) ([]*NotificationInteraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationInteraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationInteractionMutation)
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
func (_c *NotificationInteractionCreateBulk) SaveX(ctx context.Context) []*NotificationInteraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationInteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationInteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
