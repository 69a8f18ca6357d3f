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
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/predicate"
)

// NotificationQueueItemUpdate is the builder for updating NotificationQueueItem entities.
type NotificationQueueItemUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationQueueItemMutation
}

// Where appends a list predicates to the NotificationQueueItemUpdate builder.
func (_u *NotificationQueueItemUpdate) Where(ps ...predicate.NotificationQueueItem) *NotificationQueueItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNotificationType sets the "notification_type" field.
func (_u *NotificationQueueItemUpdate) SetNotificationType(v string) *NotificationQueueItemUpdate {
	_u.mutation.SetNotificationType(v)
	return _u
}

// SetNillableNotificationType sets the "notification_type" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableNotificationType(v *string) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetNotificationType(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationQueueItemUpdate) SetChannel(v notificationqueueitem.Channel) *NotificationQueueItemUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableChannel(v *notificationqueueitem.Channel) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationQueueItemUpdate) SetPriority(v notificationqueueitem.Priority) *NotificationQueueItemUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillablePriority(v *notificationqueueitem.Priority) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NotificationQueueItemUpdate) SetPayload(v map[string]interface{}) *NotificationQueueItemUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *NotificationQueueItemUpdate) SetScheduledFor(v time.Time) *NotificationQueueItemUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableScheduledFor(v *time.Time) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetOptimalSendTime sets the "optimal_send_time" field.
func (_u *NotificationQueueItemUpdate) SetOptimalSendTime(v time.Time) *NotificationQueueItemUpdate {
	_u.mutation.SetOptimalSendTime(v)
	return _u
}

// SetNillableOptimalSendTime sets the "optimal_send_time" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableOptimalSendTime(v *time.Time) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetOptimalSendTime(*v)
	}
	return _u
}

// ClearOptimalSendTime clears the value of the "optimal_send_time" field.
func (_u *NotificationQueueItemUpdate) ClearOptimalSendTime() *NotificationQueueItemUpdate {
	_u.mutation.ClearOptimalSendTime()
	return _u
}

// SetNextAllowedAt sets the "next_allowed_at" field.
func (_u *NotificationQueueItemUpdate) SetNextAllowedAt(v time.Time) *NotificationQueueItemUpdate {
	_u.mutation.SetNextAllowedAt(v)
	return _u
}

// SetNillableNextAllowedAt sets the "next_allowed_at" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableNextAllowedAt(v *time.Time) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetNextAllowedAt(*v)
	}
	return _u
}

// ClearNextAllowedAt clears the value of the "next_allowed_at" field.
func (_u *NotificationQueueItemUpdate) ClearNextAllowedAt() *NotificationQueueItemUpdate {
	_u.mutation.ClearNextAllowedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationQueueItemUpdate) SetStatus(v notificationqueueitem.Status) *NotificationQueueItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableStatus(v *notificationqueueitem.Status) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *NotificationQueueItemUpdate) SetAttemptCount(v int) *NotificationQueueItemUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableAttemptCount(v *int) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *NotificationQueueItemUpdate) AddAttemptCount(v int) *NotificationQueueItemUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *NotificationQueueItemUpdate) SetMaxAttempts(v int) *NotificationQueueItemUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableMaxAttempts(v *int) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *NotificationQueueItemUpdate) AddMaxAttempts(v int) *NotificationQueueItemUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *NotificationQueueItemUpdate) SetLockedBy(v string) *NotificationQueueItemUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableLockedBy(v *string) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *NotificationQueueItemUpdate) ClearLockedBy() *NotificationQueueItemUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *NotificationQueueItemUpdate) SetLockedAt(v time.Time) *NotificationQueueItemUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableLockedAt(v *time.Time) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *NotificationQueueItemUpdate) ClearLockedAt() *NotificationQueueItemUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *NotificationQueueItemUpdate) SetLastError(v string) *NotificationQueueItemUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableLastError(v *string) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *NotificationQueueItemUpdate) ClearLastError() *NotificationQueueItemUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationQueueItemUpdate) SetSentAt(v time.Time) *NotificationQueueItemUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationQueueItemUpdate) SetNillableSentAt(v *time.Time) *NotificationQueueItemUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NotificationQueueItemUpdate) ClearSentAt() *NotificationQueueItemUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationQueueItemUpdate) SetUpdatedAt(v time.Time) *NotificationQueueItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationQueueItemMutation object of the builder.
func (_u *NotificationQueueItemUpdate) Mutation() *NotificationQueueItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationQueueItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationQueueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationQueueItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationQueueItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationQueueItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationqueueitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationQueueItemUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := notificationqueueitem.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notificationqueueitem.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notificationqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationQueueItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationqueueitem.Table, notificationqueueitem.Columns, sqlgraph.NewFieldSpec(notificationqueueitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NotificationType(); ok {
		_spec.SetField(notificationqueueitem.FieldNotificationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notificationqueueitem.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notificationqueueitem.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(notificationqueueitem.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(notificationqueueitem.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OptimalSendTime(); ok {
		_spec.SetField(notificationqueueitem.FieldOptimalSendTime, field.TypeTime, value)
	}
	if _u.mutation.OptimalSendTimeCleared() {
		_spec.ClearField(notificationqueueitem.FieldOptimalSendTime, field.TypeTime)
	}
	if value, ok := _u.mutation.NextAllowedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldNextAllowedAt, field.TypeTime, value)
	}
	if _u.mutation.NextAllowedAtCleared() {
		_spec.ClearField(notificationqueueitem.FieldNextAllowedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notificationqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(notificationqueueitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(notificationqueueitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(notificationqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(notificationqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(notificationqueueitem.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(notificationqueueitem.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(notificationqueueitem.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(notificationqueueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(notificationqueueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notificationqueueitem.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(notificationqueueitem.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationQueueItemUpdateOne is the builder for updating a single NotificationQueueItem entity.
type NotificationQueueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationQueueItemMutation
}

// SetNotificationType sets the "notification_type" field.
func (_u *NotificationQueueItemUpdateOne) SetNotificationType(v string) *NotificationQueueItemUpdateOne {
	_u.mutation.SetNotificationType(v)
	return _u
}

// SetNillableNotificationType sets the "notification_type" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableNotificationType(v *string) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetNotificationType(*v)
	}
	return _u
}

// SetChannel sets the "channel" field.
func (_u *NotificationQueueItemUpdateOne) SetChannel(v notificationqueueitem.Channel) *NotificationQueueItemUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableChannel(v *notificationqueueitem.Channel) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *NotificationQueueItemUpdateOne) SetPriority(v notificationqueueitem.Priority) *NotificationQueueItemUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillablePriority(v *notificationqueueitem.Priority) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NotificationQueueItemUpdateOne) SetPayload(v map[string]interface{}) *NotificationQueueItemUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *NotificationQueueItemUpdateOne) SetScheduledFor(v time.Time) *NotificationQueueItemUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableScheduledFor(v *time.Time) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetOptimalSendTime sets the "optimal_send_time" field.
func (_u *NotificationQueueItemUpdateOne) SetOptimalSendTime(v time.Time) *NotificationQueueItemUpdateOne {
	_u.mutation.SetOptimalSendTime(v)
	return _u
}

// SetNillableOptimalSendTime sets the "optimal_send_time" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableOptimalSendTime(v *time.Time) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetOptimalSendTime(*v)
	}
	return _u
}

// ClearOptimalSendTime clears the value of the "optimal_send_time" field.
func (_u *NotificationQueueItemUpdateOne) ClearOptimalSendTime() *NotificationQueueItemUpdateOne {
	_u.mutation.ClearOptimalSendTime()
	return _u
}

// SetNextAllowedAt sets the "next_allowed_at" field.
func (_u *NotificationQueueItemUpdateOne) SetNextAllowedAt(v time.Time) *NotificationQueueItemUpdateOne {
	_u.mutation.SetNextAllowedAt(v)
	return _u
}

// SetNillableNextAllowedAt sets the "next_allowed_at" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableNextAllowedAt(v *time.Time) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetNextAllowedAt(*v)
	}
	return _u
}

// ClearNextAllowedAt clears the value of the "next_allowed_at" field.
func (_u *NotificationQueueItemUpdateOne) ClearNextAllowedAt() *NotificationQueueItemUpdateOne {
	_u.mutation.ClearNextAllowedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationQueueItemUpdateOne) SetStatus(v notificationqueueitem.Status) *NotificationQueueItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableStatus(v *notificationqueueitem.Status) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *NotificationQueueItemUpdateOne) SetAttemptCount(v int) *NotificationQueueItemUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableAttemptCount(v *int) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *NotificationQueueItemUpdateOne) AddAttemptCount(v int) *NotificationQueueItemUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *NotificationQueueItemUpdateOne) SetMaxAttempts(v int) *NotificationQueueItemUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableMaxAttempts(v *int) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *NotificationQueueItemUpdateOne) AddMaxAttempts(v int) *NotificationQueueItemUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *NotificationQueueItemUpdateOne) SetLockedBy(v string) *NotificationQueueItemUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableLockedBy(v *string) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *NotificationQueueItemUpdateOne) ClearLockedBy() *NotificationQueueItemUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *NotificationQueueItemUpdateOne) SetLockedAt(v time.Time) *NotificationQueueItemUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableLockedAt(v *time.Time) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *NotificationQueueItemUpdateOne) ClearLockedAt() *NotificationQueueItemUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *NotificationQueueItemUpdateOne) SetLastError(v string) *NotificationQueueItemUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableLastError(v *string) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *NotificationQueueItemUpdateOne) ClearLastError() *NotificationQueueItemUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationQueueItemUpdateOne) SetSentAt(v time.Time) *NotificationQueueItemUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationQueueItemUpdateOne) SetNillableSentAt(v *time.Time) *NotificationQueueItemUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NotificationQueueItemUpdateOne) ClearSentAt() *NotificationQueueItemUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NotificationQueueItemUpdateOne) SetUpdatedAt(v time.Time) *NotificationQueueItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the NotificationQueueItemMutation object of the builder.
func (_u *NotificationQueueItemUpdateOne) Mutation() *NotificationQueueItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationQueueItemUpdate builder.
func (_u *NotificationQueueItemUpdateOne) Where(ps ...predicate.NotificationQueueItem) *NotificationQueueItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationQueueItemUpdateOne) Select(field string, fields ...string) *NotificationQueueItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NotificationQueueItem entity.
func (_u *NotificationQueueItemUpdateOne) Save(ctx context.Context) (*NotificationQueueItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationQueueItemUpdateOne) SaveX(ctx context.Context) *NotificationQueueItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationQueueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationQueueItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NotificationQueueItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notificationqueueitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationQueueItemUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := notificationqueueitem.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := notificationqueueitem.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notificationqueueitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "NotificationQueueItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationQueueItemUpdateOne) sqlSave(ctx context.Context) (_node *NotificationQueueItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notificationqueueitem.Table, notificationqueueitem.Columns, sqlgraph.NewFieldSpec(notificationqueueitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NotificationQueueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notificationqueueitem.FieldID)
		for _, f := range fields {
			if !notificationqueueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notificationqueueitem.FieldID {
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
	if value, ok := _u.mutation.NotificationType(); ok {
		_spec.SetField(notificationqueueitem.FieldNotificationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(notificationqueueitem.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(notificationqueueitem.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(notificationqueueitem.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(notificationqueueitem.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OptimalSendTime(); ok {
		_spec.SetField(notificationqueueitem.FieldOptimalSendTime, field.TypeTime, value)
	}
	if _u.mutation.OptimalSendTimeCleared() {
		_spec.ClearField(notificationqueueitem.FieldOptimalSendTime, field.TypeTime)
	}
	if value, ok := _u.mutation.NextAllowedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldNextAllowedAt, field.TypeTime, value)
	}
	if _u.mutation.NextAllowedAtCleared() {
		_spec.ClearField(notificationqueueitem.FieldNextAllowedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notificationqueueitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(notificationqueueitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(notificationqueueitem.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(notificationqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(notificationqueueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(notificationqueueitem.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(notificationqueueitem.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(notificationqueueitem.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(notificationqueueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(notificationqueueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notificationqueueitem.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(notificationqueueitem.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notificationqueueitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &NotificationQueueItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notificationqueueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
