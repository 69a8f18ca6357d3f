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
	"github.com/stridehq/cadenza/ent/slackworkspace"
)

// SlackWorkspaceUpdate is the builder for updating SlackWorkspace entities.
type SlackWorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *SlackWorkspaceMutation
}

// Where appends a list predicates to the SlackWorkspaceUpdate builder.
func (_u *SlackWorkspaceUpdate) Where(ps ...predicate.SlackWorkspace) *SlackWorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTeamID sets the "team_id" field.
func (_u *SlackWorkspaceUpdate) SetTeamID(v string) *SlackWorkspaceUpdate {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *SlackWorkspaceUpdate) SetNillableTeamID(v *string) *SlackWorkspaceUpdate {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetBotToken sets the "bot_token" field.
func (_u *SlackWorkspaceUpdate) SetBotToken(v string) *SlackWorkspaceUpdate {
	_u.mutation.SetBotToken(v)
	return _u
}

// SetNillableBotToken sets the "bot_token" field if the given value is not nil.
func (_u *SlackWorkspaceUpdate) SetNillableBotToken(v *string) *SlackWorkspaceUpdate {
	if v != nil {
		_u.SetBotToken(*v)
	}
	return _u
}

// SetDefaultChannelID sets the "default_channel_id" field.
func (_u *SlackWorkspaceUpdate) SetDefaultChannelID(v string) *SlackWorkspaceUpdate {
	_u.mutation.SetDefaultChannelID(v)
	return _u
}

// SetNillableDefaultChannelID sets the "default_channel_id" field if the given value is not nil.
func (_u *SlackWorkspaceUpdate) SetNillableDefaultChannelID(v *string) *SlackWorkspaceUpdate {
	if v != nil {
		_u.SetDefaultChannelID(*v)
	}
	return _u
}

// ClearDefaultChannelID clears the value of the "default_channel_id" field.
func (_u *SlackWorkspaceUpdate) ClearDefaultChannelID() *SlackWorkspaceUpdate {
	_u.mutation.ClearDefaultChannelID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlackWorkspaceUpdate) SetUpdatedAt(v time.Time) *SlackWorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlackWorkspaceMutation object of the builder.
func (_u *SlackWorkspaceUpdate) Mutation() *SlackWorkspaceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlackWorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlackWorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlackWorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlackWorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlackWorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slackworkspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlackWorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(slackworkspace.Table, slackworkspace.Columns, sqlgraph.NewFieldSpec(slackworkspace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(slackworkspace.FieldTeamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BotToken(); ok {
		_spec.SetField(slackworkspace.FieldBotToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultChannelID(); ok {
		_spec.SetField(slackworkspace.FieldDefaultChannelID, field.TypeString, value)
	}
	if _u.mutation.DefaultChannelIDCleared() {
		_spec.ClearField(slackworkspace.FieldDefaultChannelID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slackworkspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slackworkspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlackWorkspaceUpdateOne is the builder for updating a single SlackWorkspace entity.
type SlackWorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlackWorkspaceMutation
}

// SetTeamID sets the "team_id" field.
func (_u *SlackWorkspaceUpdateOne) SetTeamID(v string) *SlackWorkspaceUpdateOne {
	_u.mutation.SetTeamID(v)
	return _u
}

// SetNillableTeamID sets the "team_id" field if the given value is not nil.
func (_u *SlackWorkspaceUpdateOne) SetNillableTeamID(v *string) *SlackWorkspaceUpdateOne {
	if v != nil {
		_u.SetTeamID(*v)
	}
	return _u
}

// SetBotToken sets the "bot_token" field.
func (_u *SlackWorkspaceUpdateOne) SetBotToken(v string) *SlackWorkspaceUpdateOne {
	_u.mutation.SetBotToken(v)
	return _u
}

// SetNillableBotToken sets the "bot_token" field if the given value is not nil.
func (_u *SlackWorkspaceUpdateOne) SetNillableBotToken(v *string) *SlackWorkspaceUpdateOne {
	if v != nil {
		_u.SetBotToken(*v)
	}
	return _u
}

// SetDefaultChannelID sets the "default_channel_id" field.
func (_u *SlackWorkspaceUpdateOne) SetDefaultChannelID(v string) *SlackWorkspaceUpdateOne {
	_u.mutation.SetDefaultChannelID(v)
	return _u
}

// SetNillableDefaultChannelID sets the "default_channel_id" field if the given value is not nil.
func (_u *SlackWorkspaceUpdateOne) SetNillableDefaultChannelID(v *string) *SlackWorkspaceUpdateOne {
	if v != nil {
		_u.SetDefaultChannelID(*v)
	}
	return _u
}

// ClearDefaultChannelID clears the value of the "default_channel_id" field.
func (_u *SlackWorkspaceUpdateOne) ClearDefaultChannelID() *SlackWorkspaceUpdateOne {
	_u.mutation.ClearDefaultChannelID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlackWorkspaceUpdateOne) SetUpdatedAt(v time.Time) *SlackWorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlackWorkspaceMutation object of the builder.
func (_u *SlackWorkspaceUpdateOne) Mutation() *SlackWorkspaceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlackWorkspaceUpdate builder.
func (_u *SlackWorkspaceUpdateOne) Where(ps ...predicate.SlackWorkspace) *SlackWorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlackWorkspaceUpdateOne) Select(field string, fields ...string) *SlackWorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SlackWorkspace entity.
func (_u *SlackWorkspaceUpdateOne) Save(ctx context.Context) (*SlackWorkspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlackWorkspaceUpdateOne) SaveX(ctx context.Context) *SlackWorkspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlackWorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlackWorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlackWorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slackworkspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SlackWorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *SlackWorkspace, err error) {
	_spec := sqlgraph.NewUpdateSpec(slackworkspace.Table, slackworkspace.Columns, sqlgraph.NewFieldSpec(slackworkspace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SlackWorkspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slackworkspace.FieldID)
		for _, f := range fields {
			if !slackworkspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slackworkspace.FieldID {
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
	if value, ok := _u.mutation.TeamID(); ok {
		_spec.SetField(slackworkspace.FieldTeamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BotToken(); ok {
		_spec.SetField(slackworkspace.FieldBotToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultChannelID(); ok {
		_spec.SetField(slackworkspace.FieldDefaultChannelID, field.TypeString, value)
	}
	if _u.mutation.DefaultChannelIDCleared() {
		_spec.ClearField(slackworkspace.FieldDefaultChannelID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slackworkspace.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SlackWorkspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slackworkspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
