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
	"github.com/stridehq/cadenza/ent/usermetrics"
)

// UserMetricsUpdate is the builder for updating UserMetrics entities.
type UserMetricsUpdate struct {
	config
	hooks    []Hook
	mutation *UserMetricsMutation
}

// Where appends a list predicates to the UserMetricsUpdate builder.
func (_u *UserMetricsUpdate) Where(ps ...predicate.UserMetrics) *UserMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastAppActiveAt sets the "last_app_active_at" field.
func (_u *UserMetricsUpdate) SetLastAppActiveAt(v time.Time) *UserMetricsUpdate {
	_u.mutation.SetLastAppActiveAt(v)
	return _u
}

// SetNillableLastAppActiveAt sets the "last_app_active_at" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillableLastAppActiveAt(v *time.Time) *UserMetricsUpdate {
	if v != nil {
		_u.SetLastAppActiveAt(*v)
	}
	return _u
}

// ClearLastAppActiveAt clears the value of the "last_app_active_at" field.
func (_u *UserMetricsUpdate) ClearLastAppActiveAt() *UserMetricsUpdate {
	_u.mutation.ClearLastAppActiveAt()
	return _u
}

// SetLastSlackActiveAt sets the "last_slack_active_at" field.
func (_u *UserMetricsUpdate) SetLastSlackActiveAt(v time.Time) *UserMetricsUpdate {
	_u.mutation.SetLastSlackActiveAt(v)
	return _u
}

// SetNillableLastSlackActiveAt sets the "last_slack_active_at" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillableLastSlackActiveAt(v *time.Time) *UserMetricsUpdate {
	if v != nil {
		_u.SetLastSlackActiveAt(*v)
	}
	return _u
}

// ClearLastSlackActiveAt clears the value of the "last_slack_active_at" field.
func (_u *UserMetricsUpdate) ClearLastSlackActiveAt() *UserMetricsUpdate {
	_u.mutation.ClearLastSlackActiveAt()
	return _u
}

// SetPreferredNotificationFrequency sets the "preferred_notification_frequency" field.
func (_u *UserMetricsUpdate) SetPreferredNotificationFrequency(v usermetrics.PreferredNotificationFrequency) *UserMetricsUpdate {
	_u.mutation.SetPreferredNotificationFrequency(v)
	return _u
}

// SetNillablePreferredNotificationFrequency sets the "preferred_notification_frequency" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillablePreferredNotificationFrequency(v *usermetrics.PreferredNotificationFrequency) *UserMetricsUpdate {
	if v != nil {
		_u.SetPreferredNotificationFrequency(*v)
	}
	return _u
}

// SetNotificationFatigueLevel sets the "notification_fatigue_level" field.
func (_u *UserMetricsUpdate) SetNotificationFatigueLevel(v int) *UserMetricsUpdate {
	_u.mutation.ResetNotificationFatigueLevel()
	_u.mutation.SetNotificationFatigueLevel(v)
	return _u
}

// SetNillableNotificationFatigueLevel sets the "notification_fatigue_level" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillableNotificationFatigueLevel(v *int) *UserMetricsUpdate {
	if v != nil {
		_u.SetNotificationFatigueLevel(*v)
	}
	return _u
}

// AddNotificationFatigueLevel adds value to the "notification_fatigue_level" field.
func (_u *UserMetricsUpdate) AddNotificationFatigueLevel(v int) *UserMetricsUpdate {
	_u.mutation.AddNotificationFatigueLevel(v)
	return _u
}

// SetOverallEngagementScore sets the "overall_engagement_score" field.
func (_u *UserMetricsUpdate) SetOverallEngagementScore(v int) *UserMetricsUpdate {
	_u.mutation.ResetOverallEngagementScore()
	_u.mutation.SetOverallEngagementScore(v)
	return _u
}

// SetNillableOverallEngagementScore sets the "overall_engagement_score" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillableOverallEngagementScore(v *int) *UserMetricsUpdate {
	if v != nil {
		_u.SetOverallEngagementScore(*v)
	}
	return _u
}

// AddOverallEngagementScore adds value to the "overall_engagement_score" field.
func (_u *UserMetricsUpdate) AddOverallEngagementScore(v int) *UserMetricsUpdate {
	_u.mutation.AddOverallEngagementScore(v)
	return _u
}

// SetNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field.
func (_u *UserMetricsUpdate) SetNotificationsSinceLastFeedback(v int) *UserMetricsUpdate {
	_u.mutation.ResetNotificationsSinceLastFeedback()
	_u.mutation.SetNotificationsSinceLastFeedback(v)
	return _u
}

// SetNillableNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillableNotificationsSinceLastFeedback(v *int) *UserMetricsUpdate {
	if v != nil {
		_u.SetNotificationsSinceLastFeedback(*v)
	}
	return _u
}

// AddNotificationsSinceLastFeedback adds value to the "notifications_since_last_feedback" field.
func (_u *UserMetricsUpdate) AddNotificationsSinceLastFeedback(v int) *UserMetricsUpdate {
	_u.mutation.AddNotificationsSinceLastFeedback(v)
	return _u
}

// SetLastFeedbackRequestedAt sets the "last_feedback_requested_at" field.
func (_u *UserMetricsUpdate) SetLastFeedbackRequestedAt(v time.Time) *UserMetricsUpdate {
	_u.mutation.SetLastFeedbackRequestedAt(v)
	return _u
}

// SetNillableLastFeedbackRequestedAt sets the "last_feedback_requested_at" field if the given value is not nil.
func (_u *UserMetricsUpdate) SetNillableLastFeedbackRequestedAt(v *time.Time) *UserMetricsUpdate {
	if v != nil {
		_u.SetLastFeedbackRequestedAt(*v)
	}
	return _u
}

// ClearLastFeedbackRequestedAt clears the value of the "last_feedback_requested_at" field.
func (_u *UserMetricsUpdate) ClearLastFeedbackRequestedAt() *UserMetricsUpdate {
	_u.mutation.ClearLastFeedbackRequestedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserMetricsUpdate) SetUpdatedAt(v time.Time) *UserMetricsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMetricsMutation object of the builder.
func (_u *UserMetricsUpdate) Mutation() *UserMetricsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserMetricsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserMetricsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usermetrics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserMetricsUpdate) check() error {
	if v, ok := _u.mutation.PreferredNotificationFrequency(); ok {
		if err := usermetrics.PreferredNotificationFrequencyValidator(v); err != nil {
			return &ValidationError{Name: "preferred_notification_frequency", err: fmt.Errorf(`ent: validator failed for field "UserMetrics.preferred_notification_frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *UserMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usermetrics.Table, usermetrics.Columns, sqlgraph.NewFieldSpec(usermetrics.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastAppActiveAt(); ok {
		_spec.SetField(usermetrics.FieldLastAppActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastAppActiveAtCleared() {
		_spec.ClearField(usermetrics.FieldLastAppActiveAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSlackActiveAt(); ok {
		_spec.SetField(usermetrics.FieldLastSlackActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastSlackActiveAtCleared() {
		_spec.ClearField(usermetrics.FieldLastSlackActiveAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PreferredNotificationFrequency(); ok {
		_spec.SetField(usermetrics.FieldPreferredNotificationFrequency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NotificationFatigueLevel(); ok {
		_spec.SetField(usermetrics.FieldNotificationFatigueLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNotificationFatigueLevel(); ok {
		_spec.AddField(usermetrics.FieldNotificationFatigueLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallEngagementScore(); ok {
		_spec.SetField(usermetrics.FieldOverallEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallEngagementScore(); ok {
		_spec.AddField(usermetrics.FieldOverallEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotificationsSinceLastFeedback(); ok {
		_spec.SetField(usermetrics.FieldNotificationsSinceLastFeedback, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNotificationsSinceLastFeedback(); ok {
		_spec.AddField(usermetrics.FieldNotificationsSinceLastFeedback, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFeedbackRequestedAt(); ok {
		_spec.SetField(usermetrics.FieldLastFeedbackRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.LastFeedbackRequestedAtCleared() {
		_spec.ClearField(usermetrics.FieldLastFeedbackRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usermetrics.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserMetricsUpdateOne is the builder for updating a single UserMetrics entity.
type UserMetricsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMetricsMutation
}

// SetLastAppActiveAt sets the "last_app_active_at" field.
func (_u *UserMetricsUpdateOne) SetLastAppActiveAt(v time.Time) *UserMetricsUpdateOne {
	_u.mutation.SetLastAppActiveAt(v)
	return _u
}

// SetNillableLastAppActiveAt sets the "last_app_active_at" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillableLastAppActiveAt(v *time.Time) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetLastAppActiveAt(*v)
	}
	return _u
}

// ClearLastAppActiveAt clears the value of the "last_app_active_at" field.
func (_u *UserMetricsUpdateOne) ClearLastAppActiveAt() *UserMetricsUpdateOne {
	_u.mutation.ClearLastAppActiveAt()
	return _u
}

// SetLastSlackActiveAt sets the "last_slack_active_at" field.
func (_u *UserMetricsUpdateOne) SetLastSlackActiveAt(v time.Time) *UserMetricsUpdateOne {
	_u.mutation.SetLastSlackActiveAt(v)
	return _u
}

// SetNillableLastSlackActiveAt sets the "last_slack_active_at" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillableLastSlackActiveAt(v *time.Time) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetLastSlackActiveAt(*v)
	}
	return _u
}

// ClearLastSlackActiveAt clears the value of the "last_slack_active_at" field.
func (_u *UserMetricsUpdateOne) ClearLastSlackActiveAt() *UserMetricsUpdateOne {
	_u.mutation.ClearLastSlackActiveAt()
	return _u
}

// SetPreferredNotificationFrequency sets the "preferred_notification_frequency" field.
func (_u *UserMetricsUpdateOne) SetPreferredNotificationFrequency(v usermetrics.PreferredNotificationFrequency) *UserMetricsUpdateOne {
	_u.mutation.SetPreferredNotificationFrequency(v)
	return _u
}

// SetNillablePreferredNotificationFrequency sets the "preferred_notification_frequency" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillablePreferredNotificationFrequency(v *usermetrics.PreferredNotificationFrequency) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetPreferredNotificationFrequency(*v)
	}
	return _u
}

// SetNotificationFatigueLevel sets the "notification_fatigue_level" field.
func (_u *UserMetricsUpdateOne) SetNotificationFatigueLevel(v int) *UserMetricsUpdateOne {
	_u.mutation.ResetNotificationFatigueLevel()
	_u.mutation.SetNotificationFatigueLevel(v)
	return _u
}

// SetNillableNotificationFatigueLevel sets the "notification_fatigue_level" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillableNotificationFatigueLevel(v *int) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetNotificationFatigueLevel(*v)
	}
	return _u
}

// AddNotificationFatigueLevel adds value to the "notification_fatigue_level" field.
func (_u *UserMetricsUpdateOne) AddNotificationFatigueLevel(v int) *UserMetricsUpdateOne {
	_u.mutation.AddNotificationFatigueLevel(v)
	return _u
}

// SetOverallEngagementScore sets the "overall_engagement_score" field.
func (_u *UserMetricsUpdateOne) SetOverallEngagementScore(v int) *UserMetricsUpdateOne {
	_u.mutation.ResetOverallEngagementScore()
	_u.mutation.SetOverallEngagementScore(v)
	return _u
}

// SetNillableOverallEngagementScore sets the "overall_engagement_score" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillableOverallEngagementScore(v *int) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetOverallEngagementScore(*v)
	}
	return _u
}

// AddOverallEngagementScore adds value to the "overall_engagement_score" field.
func (_u *UserMetricsUpdateOne) AddOverallEngagementScore(v int) *UserMetricsUpdateOne {
	_u.mutation.AddOverallEngagementScore(v)
	return _u
}

// SetNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field.
func (_u *UserMetricsUpdateOne) SetNotificationsSinceLastFeedback(v int) *UserMetricsUpdateOne {
	_u.mutation.ResetNotificationsSinceLastFeedback()
	_u.mutation.SetNotificationsSinceLastFeedback(v)
	return _u
}

// SetNillableNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillableNotificationsSinceLastFeedback(v *int) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetNotificationsSinceLastFeedback(*v)
	}
	return _u
}

// AddNotificationsSinceLastFeedback adds value to the "notifications_since_last_feedback" field.
func (_u *UserMetricsUpdateOne) AddNotificationsSinceLastFeedback(v int) *UserMetricsUpdateOne {
	_u.mutation.AddNotificationsSinceLastFeedback(v)
	return _u
}

// SetLastFeedbackRequestedAt sets the "last_feedback_requested_at" field.
func (_u *UserMetricsUpdateOne) SetLastFeedbackRequestedAt(v time.Time) *UserMetricsUpdateOne {
	_u.mutation.SetLastFeedbackRequestedAt(v)
	return _u
}

// SetNillableLastFeedbackRequestedAt sets the "last_feedback_requested_at" field if the given value is not nil.
func (_u *UserMetricsUpdateOne) SetNillableLastFeedbackRequestedAt(v *time.Time) *UserMetricsUpdateOne {
	if v != nil {
		_u.SetLastFeedbackRequestedAt(*v)
	}
	return _u
}

// ClearLastFeedbackRequestedAt clears the value of the "last_feedback_requested_at" field.
func (_u *UserMetricsUpdateOne) ClearLastFeedbackRequestedAt() *UserMetricsUpdateOne {
	_u.mutation.ClearLastFeedbackRequestedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserMetricsUpdateOne) SetUpdatedAt(v time.Time) *UserMetricsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMetricsMutation object of the builder.
func (_u *UserMetricsUpdateOne) Mutation() *UserMetricsMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserMetricsUpdate builder.
func (_u *UserMetricsUpdateOne) Where(ps ...predicate.UserMetrics) *UserMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserMetricsUpdateOne) Select(field string, fields ...string) *UserMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserMetrics entity.
func (_u *UserMetricsUpdateOne) Save(ctx context.Context) (*UserMetrics, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserMetricsUpdateOne) SaveX(ctx context.Context) *UserMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserMetricsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usermetrics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserMetricsUpdateOne) check() error {
	if v, ok := _u.mutation.PreferredNotificationFrequency(); ok {
		if err := usermetrics.PreferredNotificationFrequencyValidator(v); err != nil {
			return &ValidationError{Name: "preferred_notification_frequency", err: fmt.Errorf(`ent: validator failed for field "UserMetrics.preferred_notification_frequency": %w`, err)}
		}
	}
	return nil
}

func (_u *UserMetricsUpdateOne) sqlSave(ctx context.Context) (_node *UserMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usermetrics.Table, usermetrics.Columns, sqlgraph.NewFieldSpec(usermetrics.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usermetrics.FieldID)
		for _, f := range fields {
			if !usermetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usermetrics.FieldID {
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
	if value, ok := _u.mutation.LastAppActiveAt(); ok {
		_spec.SetField(usermetrics.FieldLastAppActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastAppActiveAtCleared() {
		_spec.ClearField(usermetrics.FieldLastAppActiveAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSlackActiveAt(); ok {
		_spec.SetField(usermetrics.FieldLastSlackActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastSlackActiveAtCleared() {
		_spec.ClearField(usermetrics.FieldLastSlackActiveAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PreferredNotificationFrequency(); ok {
		_spec.SetField(usermetrics.FieldPreferredNotificationFrequency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NotificationFatigueLevel(); ok {
		_spec.SetField(usermetrics.FieldNotificationFatigueLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNotificationFatigueLevel(); ok {
		_spec.AddField(usermetrics.FieldNotificationFatigueLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallEngagementScore(); ok {
		_spec.SetField(usermetrics.FieldOverallEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallEngagementScore(); ok {
		_spec.AddField(usermetrics.FieldOverallEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NotificationsSinceLastFeedback(); ok {
		_spec.SetField(usermetrics.FieldNotificationsSinceLastFeedback, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNotificationsSinceLastFeedback(); ok {
		_spec.AddField(usermetrics.FieldNotificationsSinceLastFeedback, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFeedbackRequestedAt(); ok {
		_spec.SetField(usermetrics.FieldLastFeedbackRequestedAt, field.TypeTime, value)
	}
	if _u.mutation.LastFeedbackRequestedAtCleared() {
		_spec.ClearField(usermetrics.FieldLastFeedbackRequestedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usermetrics.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
