// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/orgmember"
)

// OrgMemberCreate is the builder for creating a OrgMember entity.
type OrgMemberCreate struct {
	config
	mutation *OrgMemberMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *OrgMemberCreate) SetOrgID(v string) *OrgMemberCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *OrgMemberCreate) SetUserID(v string) *OrgMemberCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *OrgMemberCreate) SetRole(v orgmember.Role) *OrgMemberCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *OrgMemberCreate) SetNillableRole(v *orgmember.Role) *OrgMemberCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSlackUserID sets the "slack_user_id" field.
func (_c *OrgMemberCreate) SetSlackUserID(v string) *OrgMemberCreate {
	_c.mutation.SetSlackUserID(v)
	return _c
}

// SetNillableSlackUserID sets the "slack_user_id" field if the given value is not nil.
func (_c *OrgMemberCreate) SetNillableSlackUserID(v *string) *OrgMemberCreate {
	if v != nil {
		_c.SetSlackUserID(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *OrgMemberCreate) SetEmail(v string) *OrgMemberCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *OrgMemberCreate) SetNillableEmail(v *string) *OrgMemberCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrgMemberCreate) SetCreatedAt(v time.Time) *OrgMemberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrgMemberCreate) SetNillableCreatedAt(v *time.Time) *OrgMemberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrgMemberCreate) SetID(v string) *OrgMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrgMemberMutation object of the builder.
func (_c *OrgMemberCreate) Mutation() *OrgMemberMutation {
	return _c.mutation
}

// Save creates the OrgMember in the database.
func (_c *OrgMemberCreate) Save(ctx context.Context) (*OrgMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrgMemberCreate) SaveX(ctx context.Context) *OrgMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrgMemberCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := orgmember.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := orgmember.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrgMemberCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "OrgMember.org_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OrgMember.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "OrgMember.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := orgmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "OrgMember.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OrgMember.created_at"`)}
	}
	return nil
}

func (_c *OrgMemberCreate) sqlSave(ctx context.Context) (*OrgMember, error) {
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
			return nil, fmt.Errorf("unexpected OrgMember.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrgMemberCreate) createSpec() (*OrgMember, *sqlgraph.CreateSpec) {
	var (
		_node = &OrgMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orgmember.Table, sqlgraph.NewFieldSpec(orgmember.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(orgmember.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(orgmember.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(orgmember.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.SlackUserID(); ok {
		_spec.SetField(orgmember.FieldSlackUserID, field.TypeString, value)
		_node.SlackUserID = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(orgmember.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(orgmember.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OrgMemberCreateBulk is the builder for creating many OrgMember entities in bulk.
type OrgMemberCreateBulk struct {
	config
	err      error
	builders []*OrgMemberCreate
}

// Save creates the OrgMember entities in the database.
func (_c *OrgMemberCreateBulk) Save(ctx context.Context) ([]*OrgMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrgMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrgMemberMutation)
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
func (_c *OrgMemberCreateBulk) SaveX(ctx context.Context) []*OrgMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
