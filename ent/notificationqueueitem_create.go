// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
)

// NotificationQueueItemCreate is the builder for creating a NotificationQueueItem entity.
type NotificationQueueItemCreate struct {
	config
	mutation *NotificationQueueItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *NotificationQueueItemCreate) SetUserID(v string) *NotificationQueueItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *NotificationQueueItemCreate) SetOrgID(v string) *NotificationQueueItemCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetNotificationType sets the "notification_type" field.
func (_c *NotificationQueueItemCreate) SetNotificationType(v string) *NotificationQueueItemCreate {
	_c.mutation.SetNotificationType(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *NotificationQueueItemCreate) SetChannel(v notificationqueueitem.Channel) *NotificationQueueItemCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *NotificationQueueItemCreate) SetPriority(v notificationqueueitem.Priority) *NotificationQueueItemCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillablePriority(v *notificationqueueitem.Priority) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *NotificationQueueItemCreate) SetPayload(v map[string]interface{}) *NotificationQueueItemCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *NotificationQueueItemCreate) SetScheduledFor(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetOptimalSendTime sets the "optimal_send_time" field.
func (_c *NotificationQueueItemCreate) SetOptimalSendTime(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetOptimalSendTime(v)
	return _c
}

// SetNillableOptimalSendTime sets the "optimal_send_time" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableOptimalSendTime(v *time.Time) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetOptimalSendTime(*v)
	}
	return _c
}

// SetNextAllowedAt sets the "next_allowed_at" field.
func (_c *NotificationQueueItemCreate) SetNextAllowedAt(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetNextAllowedAt(v)
	return _c
}

// SetNillableNextAllowedAt sets the "next_allowed_at" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableNextAllowedAt(v *time.Time) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetNextAllowedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *NotificationQueueItemCreate) SetStatus(v notificationqueueitem.Status) *NotificationQueueItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableStatus(v *notificationqueueitem.Status) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *NotificationQueueItemCreate) SetAttemptCount(v int) *NotificationQueueItemCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableAttemptCount(v *int) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *NotificationQueueItemCreate) SetMaxAttempts(v int) *NotificationQueueItemCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableMaxAttempts(v *int) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *NotificationQueueItemCreate) SetLockedBy(v string) *NotificationQueueItemCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableLockedBy(v *string) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *NotificationQueueItemCreate) SetLockedAt(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableLockedAt(v *time.Time) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *NotificationQueueItemCreate) SetLastError(v string) *NotificationQueueItemCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableLastError(v *string) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *NotificationQueueItemCreate) SetSentAt(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableSentAt(v *time.Time) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationQueueItemCreate) SetCreatedAt(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableCreatedAt(v *time.Time) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NotificationQueueItemCreate) SetUpdatedAt(v time.Time) *NotificationQueueItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NotificationQueueItemCreate) SetNillableUpdatedAt(v *time.Time) *NotificationQueueItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationQueueItemCreate) SetID(v string) *NotificationQueueItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NotificationQueueItemMutation object of the builder.
func (_c *NotificationQueueItemCreate) Mutation() *NotificationQueueItemMutation {
	return _c.mutation
}

// Save creates the NotificationQueueItem in the database.
func (_c *NotificationQueueItemCreate) Save(ctx context.Context) (*NotificationQueueItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationQueueItemCreate) SaveX(ctx context.Context) *NotificationQueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationQueueItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationQueueItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationQueueItemCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := notificationqueueitem.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := notificationqueueitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := notificationqueueitem.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := notificationqueueitem.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationqueueitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notificationqueueitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationQueueItemCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "NotificationQueueItem.user_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "NotificationQueueItem.org_id"`)}
	}
	if _, ok := _c.mutation.NotificationType(); !ok {
		return &ValidationError{Name: "notification_type", err: errors.New(`ent: missing required field "NotificationQueueItem.notification_type"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "NotificationQueueItem.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := notificationqueueitem.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "NotificationQueueItem.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := notificationqueueitem.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "NotificationQueueItem.payload"`)}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`ent: missing required field "NotificationQueueItem.scheduled_for"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "NotificationQueueItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := notificationqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "NotificationQueueItem.attempt_count"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "NotificationQueueItem.max_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationQueueItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "NotificationQueueItem.updated_at"`)}
	}
	return nil
}

func (_c *NotificationQueueItemCreate) sqlSave(ctx context.Context) (*NotificationQueueItem, error) {
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
			return nil, fmt.Errorf("unexpected NotificationQueueItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationQueueItemCreate) createSpec() (*NotificationQueueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationQueueItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationqueueitem.Table, sqlgraph.NewFieldSpec(notificationqueueitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(notificationqueueitem.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(notificationqueueitem.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.NotificationType(); ok {
		_spec.SetField(notificationqueueitem.FieldNotificationType, field.TypeString, value)
		_node.NotificationType = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(notificationqueueitem.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(notificationqueueitem.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(notificationqueueitem.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(notificationqueueitem.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.OptimalSendTime(); ok {
		_spec.SetField(notificationqueueitem.FieldOptimalSendTime, field.TypeTime, value)
		_node.OptimalSendTime = &value
	}
	if value, ok := _c.mutation.NextAllowedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldNextAllowedAt, field.TypeTime, value)
		_node.NextAllowedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(notificationqueueitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(notificationqueueitem.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(notificationqueueitem.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(notificationqueueitem.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(notificationqueueitem.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(notificationqueueitem.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// NotificationQueueItemCreateBulk is the builder for creating many NotificationQueueItem entities in bulk.
type NotificationQueueItemCreateBulk struct {
	config
	err      error
	builders []*NotificationQueueItemCreate
}

// Save creates the NotificationQueueItem entities in the database.
func (_c *NotificationQueueItemCreateBulk) Save(ctx context.Context) ([]*NotificationQueueItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationQueueItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationQueueItemMutation)
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
func (_c *NotificationQueueItemCreateBulk) SaveX(ctx context.Context) []*NotificationQueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationQueueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationQueueItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
