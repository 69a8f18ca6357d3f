// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/slackworkspace"
)

// SlackWorkspaceCreate is the builder for creating a SlackWorkspace entity.
type SlackWorkspaceCreate struct {
	config
	mutation *SlackWorkspaceMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *SlackWorkspaceCreate) SetOrgID(v string) *SlackWorkspaceCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetTeamID sets the "team_id" field.
func (_c *SlackWorkspaceCreate) SetTeamID(v string) *SlackWorkspaceCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetBotToken sets the "bot_token" field.
func (_c *SlackWorkspaceCreate) SetBotToken(v string) *SlackWorkspaceCreate {
	_c.mutation.SetBotToken(v)
	return _c
}

// SetDefaultChannelID sets the "default_channel_id" field.
func (_c *SlackWorkspaceCreate) SetDefaultChannelID(v string) *SlackWorkspaceCreate {
	_c.mutation.SetDefaultChannelID(v)
	return _c
}

// SetNillableDefaultChannelID sets the "default_channel_id" field if the given value is not nil.
func (_c *SlackWorkspaceCreate) SetNillableDefaultChannelID(v *string) *SlackWorkspaceCreate {
	if v != nil {
		_c.SetDefaultChannelID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlackWorkspaceCreate) SetCreatedAt(v time.Time) *SlackWorkspaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlackWorkspaceCreate) SetNillableCreatedAt(v *time.Time) *SlackWorkspaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlackWorkspaceCreate) SetUpdatedAt(v time.Time) *SlackWorkspaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlackWorkspaceCreate) SetNillableUpdatedAt(v *time.Time) *SlackWorkspaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SlackWorkspaceCreate) SetID(v string) *SlackWorkspaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SlackWorkspaceMutation object of the builder.
func (_c *SlackWorkspaceCreate) Mutation() *SlackWorkspaceMutation {
	return _c.mutation
}

// Save creates the SlackWorkspace in the database.
func (_c *SlackWorkspaceCreate) Save(ctx context.Context) (*SlackWorkspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlackWorkspaceCreate) SaveX(ctx context.Context) *SlackWorkspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlackWorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlackWorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlackWorkspaceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slackworkspace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slackworkspace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlackWorkspaceCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "SlackWorkspace.org_id"`)}
	}
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "SlackWorkspace.team_id"`)}
	}
	if _, ok := _c.mutation.BotToken(); !ok {
		return &ValidationError{Name: "bot_token", err: errors.New(`ent: missing required field "SlackWorkspace.bot_token"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SlackWorkspace.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SlackWorkspace.updated_at"`)}
	}
	return nil
}

func (_c *SlackWorkspaceCreate) sqlSave(ctx context.Context) (*SlackWorkspace, error) {
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
			return nil, fmt.Errorf("unexpected SlackWorkspace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SlackWorkspaceCreate) createSpec() (*SlackWorkspace, *sqlgraph.CreateSpec) {
	var (
		_node = &SlackWorkspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slackworkspace.Table, sqlgraph.NewFieldSpec(slackworkspace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(slackworkspace.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.TeamID(); ok {
		_spec.SetField(slackworkspace.FieldTeamID, field.TypeString, value)
		_node.TeamID = value
	}
	if value, ok := _c.mutation.BotToken(); ok {
		_spec.SetField(slackworkspace.FieldBotToken, field.TypeString, value)
		_node.BotToken = value
	}
	if value, ok := _c.mutation.DefaultChannelID(); ok {
		_spec.SetField(slackworkspace.FieldDefaultChannelID, field.TypeString, value)
		_node.DefaultChannelID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slackworkspace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slackworkspace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SlackWorkspaceCreateBulk is the builder for creating many SlackWorkspace entities in bulk.
type SlackWorkspaceCreateBulk struct {
	config
	err      error
	builders []*SlackWorkspaceCreate
}

// Save creates the SlackWorkspace entities in the database.
func (_c *SlackWorkspaceCreateBulk) Save(ctx context.Context) ([]*SlackWorkspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SlackWorkspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlackWorkspaceMutation)
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
func (_c *SlackWorkspaceCreateBulk) SaveX(ctx context.Context) []*SlackWorkspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlackWorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlackWorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
