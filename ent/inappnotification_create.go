// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/inappnotification"
)

// InAppNotificationCreate is the builder for creating a InAppNotification entity.
type InAppNotificationCreate struct {
	config
	mutation *InAppNotificationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InAppNotificationCreate) SetUserID(v string) *InAppNotificationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *InAppNotificationCreate) SetOrgID(v string) *InAppNotificationCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetNotificationType sets the "notification_type" field.
func (_c *InAppNotificationCreate) SetNotificationType(v string) *InAppNotificationCreate {
	_c.mutation.SetNotificationType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InAppNotificationCreate) SetTitle(v string) *InAppNotificationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *InAppNotificationCreate) SetBody(v string) *InAppNotificationCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *InAppNotificationCreate) SetNillableBody(v *string) *InAppNotificationCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *InAppNotificationCreate) SetPayload(v map[string]interface{}) *InAppNotificationCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetReadAt sets the "read_at" field.
func (_c *InAppNotificationCreate) SetReadAt(v time.Time) *InAppNotificationCreate {
	_c.mutation.SetReadAt(v)
	return _c
}

// SetNillableReadAt sets the "read_at" field if the given value is not nil.
func (_c *InAppNotificationCreate) SetNillableReadAt(v *time.Time) *InAppNotificationCreate {
	if v != nil {
		_c.SetReadAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InAppNotificationCreate) SetCreatedAt(v time.Time) *InAppNotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InAppNotificationCreate) SetNillableCreatedAt(v *time.Time) *InAppNotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InAppNotificationCreate) SetID(v string) *InAppNotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the InAppNotificationMutation object of the builder.
func (_c *InAppNotificationCreate) Mutation() *InAppNotificationMutation {
	return _c.mutation
}

// Save creates the InAppNotification in the database.
func (_c *InAppNotificationCreate) Save(ctx context.Context) (*InAppNotification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InAppNotificationCreate) SaveX(ctx context.Context) *InAppNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InAppNotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InAppNotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InAppNotificationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inappnotification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InAppNotificationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InAppNotification.user_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "InAppNotification.org_id"`)}
	}
	if _, ok := _c.mutation.NotificationType(); !ok {
		return &ValidationError{Name: "notification_type", err: errors.New(`ent: missing required field "InAppNotification.notification_type"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "InAppNotification.title"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InAppNotification.created_at"`)}
	}
	return nil
}

func (_c *InAppNotificationCreate) sqlSave(ctx context.Context) (*InAppNotification, error) {
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
			return nil, fmt.Errorf("unexpected InAppNotification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InAppNotificationCreate) createSpec() (*InAppNotification, *sqlgraph.CreateSpec) {
	var (
		_node = &InAppNotification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inappnotification.Table, sqlgraph.NewFieldSpec(inappnotification.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(inappnotification.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(inappnotification.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.NotificationType(); ok {
		_spec.SetField(inappnotification.FieldNotificationType, field.TypeString, value)
		_node.NotificationType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(inappnotification.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(inappnotification.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(inappnotification.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ReadAt(); ok {
		_spec.SetField(inappnotification.FieldReadAt, field.TypeTime, value)
		_node.ReadAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inappnotification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// InAppNotificationCreateBulk is the builder for creating many InAppNotification entities in bulk.
type InAppNotificationCreateBulk struct {
	config
	err      error
	builders []*InAppNotificationCreate
}

// Save creates the InAppNotification entities in the database.
func (_c *InAppNotificationCreateBulk) Save(ctx context.Context) ([]*InAppNotification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InAppNotification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InAppNotificationMutation)
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
func (_c *InAppNotificationCreateBulk) SaveX(ctx context.Context) []*InAppNotification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InAppNotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InAppNotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
