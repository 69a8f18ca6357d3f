// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/usermetrics"
)

// UserMetricsCreate is the builder for creating a UserMetrics entity.
type UserMetricsCreate struct {
	config
	mutation *UserMetricsMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserMetricsCreate) SetUserID(v string) *UserMetricsCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *UserMetricsCreate) SetOrgID(v string) *UserMetricsCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetLastAppActiveAt sets the "last_app_active_at" field.
func (_c *UserMetricsCreate) SetLastAppActiveAt(v time.Time) *UserMetricsCreate {
	_c.mutation.SetLastAppActiveAt(v)
	return _c
}

// SetNillableLastAppActiveAt sets the "last_app_active_at" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableLastAppActiveAt(v *time.Time) *UserMetricsCreate {
	if v != nil {
		_c.SetLastAppActiveAt(*v)
	}
	return _c
}

// SetLastSlackActiveAt sets the "last_slack_active_at" field.
func (_c *UserMetricsCreate) SetLastSlackActiveAt(v time.Time) *UserMetricsCreate {
	_c.mutation.SetLastSlackActiveAt(v)
	return _c
}

// SetNillableLastSlackActiveAt sets the "last_slack_active_at" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableLastSlackActiveAt(v *time.Time) *UserMetricsCreate {
	if v != nil {
		_c.SetLastSlackActiveAt(*v)
	}
	return _c
}

// SetPreferredNotificationFrequency sets the "preferred_notification_frequency" field.
func (_c *UserMetricsCreate) SetPreferredNotificationFrequency(v usermetrics.PreferredNotificationFrequency) *UserMetricsCreate {
	_c.mutation.SetPreferredNotificationFrequency(v)
	return _c
}

// SetNillablePreferredNotificationFrequency sets the "preferred_notification_frequency" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillablePreferredNotificationFrequency(v *usermetrics.PreferredNotificationFrequency) *UserMetricsCreate {
	if v != nil {
		_c.SetPreferredNotificationFrequency(*v)
	}
	return _c
}

// SetNotificationFatigueLevel sets the "notification_fatigue_level" field.
func (_c *UserMetricsCreate) SetNotificationFatigueLevel(v int) *UserMetricsCreate {
	_c.mutation.SetNotificationFatigueLevel(v)
	return _c
}

// SetNillableNotificationFatigueLevel sets the "notification_fatigue_level" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableNotificationFatigueLevel(v *int) *UserMetricsCreate {
	if v != nil {
		_c.SetNotificationFatigueLevel(*v)
	}
	return _c
}

// SetOverallEngagementScore sets the "overall_engagement_score" field.
func (_c *UserMetricsCreate) SetOverallEngagementScore(v int) *UserMetricsCreate {
	_c.mutation.SetOverallEngagementScore(v)
	return _c
}

// SetNillableOverallEngagementScore sets the "overall_engagement_score" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableOverallEngagementScore(v *int) *UserMetricsCreate {
	if v != nil {
		_c.SetOverallEngagementScore(*v)
	}
	return _c
}

// SetNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field.
func (_c *UserMetricsCreate) SetNotificationsSinceLastFeedback(v int) *UserMetricsCreate {
	_c.mutation.SetNotificationsSinceLastFeedback(v)
	return _c
}

// SetNillableNotificationsSinceLastFeedback sets the "notifications_since_last_feedback" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableNotificationsSinceLastFeedback(v *int) *UserMetricsCreate {
	if v != nil {
		_c.SetNotificationsSinceLastFeedback(*v)
	}
	return _c
}

// SetLastFeedbackRequestedAt sets the "last_feedback_requested_at" field.
func (_c *UserMetricsCreate) SetLastFeedbackRequestedAt(v time.Time) *UserMetricsCreate {
	_c.mutation.SetLastFeedbackRequestedAt(v)
	return _c
}

// SetNillableLastFeedbackRequestedAt sets the "last_feedback_requested_at" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableLastFeedbackRequestedAt(v *time.Time) *UserMetricsCreate {
	if v != nil {
		_c.SetLastFeedbackRequestedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserMetricsCreate) SetUpdatedAt(v time.Time) *UserMetricsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserMetricsCreate) SetNillableUpdatedAt(v *time.Time) *UserMetricsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserMetricsCreate) SetID(v string) *UserMetricsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserMetricsMutation object of the builder.
func (_c *UserMetricsCreate) Mutation() *UserMetricsMutation {
	return _c.mutation
}

// Save creates the UserMetrics in the database.
func (_c *UserMetricsCreate) Save(ctx context.Context) (*UserMetrics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserMetricsCreate) SaveX(ctx context.Context) *UserMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserMetricsCreate) defaults() {
	if _, ok := _c.mutation.PreferredNotificationFrequency(); !ok {
		v := usermetrics.DefaultPreferredNotificationFrequency
		_c.mutation.SetPreferredNotificationFrequency(v)
	}
	if _, ok := _c.mutation.NotificationFatigueLevel(); !ok {
		v := usermetrics.DefaultNotificationFatigueLevel
		_c.mutation.SetNotificationFatigueLevel(v)
	}
	if _, ok := _c.mutation.OverallEngagementScore(); !ok {
		v := usermetrics.DefaultOverallEngagementScore
		_c.mutation.SetOverallEngagementScore(v)
	}
	if _, ok := _c.mutation.NotificationsSinceLastFeedback(); !ok {
		v := usermetrics.DefaultNotificationsSinceLastFeedback
		_c.mutation.SetNotificationsSinceLastFeedback(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usermetrics.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserMetricsCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserMetrics.user_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "UserMetrics.org_id"`)}
	}
	if _, ok := _c.mutation.PreferredNotificationFrequency(); !ok {
		return &ValidationError{Name: "preferred_notification_frequency", err: errors.New(`ent: missing required field "UserMetrics.preferred_notification_frequency"`)}
	}
	if v, ok := _c.mutation.PreferredNotificationFrequency(); ok {
		if err := usermetrics.PreferredNotificationFrequencyValidator(v); err != nil {
			return &ValidationError{Name: "preferred_notification_frequency", err: fmt.Errorf(`ent: validator failed for field "UserMetrics.preferred_notification_frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NotificationFatigueLevel(); !ok {
		return &ValidationError{Name: "notification_fatigue_level", err: errors.New(`ent: missing required field "UserMetrics.notification_fatigue_level"`)}
	}
	if _, ok := _c.mutation.OverallEngagementScore(); !ok {
		return &ValidationError{Name: "overall_engagement_score", err: errors.New(`ent: missing required field "UserMetrics.overall_engagement_score"`)}
	}
	if _, ok := _c.mutation.NotificationsSinceLastFeedback(); !ok {
		return &ValidationError{Name: "notifications_since_last_feedback", err: errors.New(`ent: missing required field "UserMetrics.notifications_since_last_feedback"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserMetrics.updated_at"`)}
	}
	return nil
}

func (_c *UserMetricsCreate) sqlSave(ctx context.Context) (*UserMetrics, error) {
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
			return nil, fmt.Errorf("unexpected UserMetrics.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserMetricsCreate) createSpec() (*UserMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &UserMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usermetrics.Table, sqlgraph.NewFieldSpec(usermetrics.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usermetrics.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(usermetrics.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.LastAppActiveAt(); ok {
		_spec.SetField(usermetrics.FieldLastAppActiveAt, field.TypeTime, value)
		_node.LastAppActiveAt = &value
	}
	if value, ok := _c.mutation.LastSlackActiveAt(); ok {
		_spec.SetField(usermetrics.FieldLastSlackActiveAt, field.TypeTime, value)
		_node.LastSlackActiveAt = &value
	}
	if value, ok := _c.mutation.PreferredNotificationFrequency(); ok {
		_spec.SetField(usermetrics.FieldPreferredNotificationFrequency, field.TypeEnum, value)
		_node.PreferredNotificationFrequency = value
	}
	if value, ok := _c.mutation.NotificationFatigueLevel(); ok {
		_spec.SetField(usermetrics.FieldNotificationFatigueLevel, field.TypeInt, value)
		_node.NotificationFatigueLevel = value
	}
	if value, ok := _c.mutation.OverallEngagementScore(); ok {
		_spec.SetField(usermetrics.FieldOverallEngagementScore, field.TypeInt, value)
		_node.OverallEngagementScore = value
	}
	if value, ok := _c.mutation.NotificationsSinceLastFeedback(); ok {
		_spec.SetField(usermetrics.FieldNotificationsSinceLastFeedback, field.TypeInt, value)
		_node.NotificationsSinceLastFeedback = value
	}
	if value, ok := _c.mutation.LastFeedbackRequestedAt(); ok {
		_spec.SetField(usermetrics.FieldLastFeedbackRequestedAt, field.TypeTime, value)
		_node.LastFeedbackRequestedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usermetrics.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserMetricsCreateBulk is the builder for creating many UserMetrics entities in bulk.
type UserMetricsCreateBulk struct {
	config
	err      error
	builders []*UserMetricsCreate
}

// Save creates the UserMetrics entities in the database.
func (_c *UserMetricsCreateBulk) Save(ctx context.Context) ([]*UserMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMetricsMutation)
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
func (_c *UserMetricsCreateBulk) SaveX(ctx context.Context) []*UserMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
