// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/oauthconnection"
)

// OAuthConnectionCreate is the builder for creating a OAuthConnection entity.
type OAuthConnectionCreate struct {
	config
	mutation *OAuthConnectionMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *OAuthConnectionCreate) SetOrgID(v string) *OAuthConnectionCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *OAuthConnectionCreate) SetProvider(v string) *OAuthConnectionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *OAuthConnectionCreate) SetAccessToken(v string) *OAuthConnectionCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetRefreshToken sets the "refresh_token" field.
func (_c *OAuthConnectionCreate) SetRefreshToken(v string) *OAuthConnectionCreate {
	_c.mutation.SetRefreshToken(v)
	return _c
}

// SetTokenType sets the "token_type" field.
func (_c *OAuthConnectionCreate) SetTokenType(v string) *OAuthConnectionCreate {
	_c.mutation.SetTokenType(v)
	return _c
}

// SetNillableTokenType sets the "token_type" field if the given value is not nil.
func (_c *OAuthConnectionCreate) SetNillableTokenType(v *string) *OAuthConnectionCreate {
	if v != nil {
		_c.SetTokenType(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *OAuthConnectionCreate) SetExpiresAt(v time.Time) *OAuthConnectionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetScopes sets the "scopes" field.
func (_c *OAuthConnectionCreate) SetScopes(v []string) *OAuthConnectionCreate {
	_c.mutation.SetScopes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OAuthConnectionCreate) SetStatus(v oauthconnection.Status) *OAuthConnectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OAuthConnectionCreate) SetNillableStatus(v *oauthconnection.Status) *OAuthConnectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OAuthConnectionCreate) SetCreatedAt(v time.Time) *OAuthConnectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OAuthConnectionCreate) SetNillableCreatedAt(v *time.Time) *OAuthConnectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OAuthConnectionCreate) SetUpdatedAt(v time.Time) *OAuthConnectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OAuthConnectionCreate) SetNillableUpdatedAt(v *time.Time) *OAuthConnectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OAuthConnectionCreate) SetID(v string) *OAuthConnectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OAuthConnectionMutation object of the builder.
func (_c *OAuthConnectionCreate) Mutation() *OAuthConnectionMutation {
	return _c.mutation
}

// Save creates the OAuthConnection in the database.
func (_c *OAuthConnectionCreate) Save(ctx context.Context) (*OAuthConnection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OAuthConnectionCreate) SaveX(ctx context.Context) *OAuthConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthConnectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthConnectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OAuthConnectionCreate) defaults() {
	if _, ok := _c.mutation.TokenType(); !ok {
		v := oauthconnection.DefaultTokenType
		_c.mutation.SetTokenType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := oauthconnection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := oauthconnection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := oauthconnection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OAuthConnectionCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "OAuthConnection.org_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "OAuthConnection.provider"`)}
	}
	if _, ok := _c.mutation.AccessToken(); !ok {
		return &ValidationError{Name: "access_token", err: errors.New(`ent: missing required field "OAuthConnection.access_token"`)}
	}
	if _, ok := _c.mutation.RefreshToken(); !ok {
		return &ValidationError{Name: "refresh_token", err: errors.New(`ent: missing required field "OAuthConnection.refresh_token"`)}
	}
	if _, ok := _c.mutation.TokenType(); !ok {
		return &ValidationError{Name: "token_type", err: errors.New(`ent: missing required field "OAuthConnection.token_type"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "OAuthConnection.expires_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OAuthConnection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := oauthconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OAuthConnection.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OAuthConnection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OAuthConnection.updated_at"`)}
	}
	return nil
}

func (_c *OAuthConnectionCreate) sqlSave(ctx context.Context) (*OAuthConnection, error) {
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
			return nil, fmt.Errorf("unexpected OAuthConnection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OAuthConnectionCreate) createSpec() (*OAuthConnection, *sqlgraph.CreateSpec) {
	var (
		_node = &OAuthConnection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oauthconnection.Table, sqlgraph.NewFieldSpec(oauthconnection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(oauthconnection.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(oauthconnection.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(oauthconnection.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.RefreshToken(); ok {
		_spec.SetField(oauthconnection.FieldRefreshToken, field.TypeString, value)
		_node.RefreshToken = value
	}
	if value, ok := _c.mutation.TokenType(); ok {
		_spec.SetField(oauthconnection.FieldTokenType, field.TypeString, value)
		_node.TokenType = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(oauthconnection.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Scopes(); ok {
		_spec.SetField(oauthconnection.FieldScopes, field.TypeJSON, value)
		_node.Scopes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(oauthconnection.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(oauthconnection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthconnection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OAuthConnectionCreateBulk is the builder for creating many OAuthConnection entities in bulk.
type OAuthConnectionCreateBulk struct {
	config
	err      error
	builders []*OAuthConnectionCreate
}

// Save creates the OAuthConnection entities in the database.
func (_c *OAuthConnectionCreateBulk) Save(ctx context.Context) ([]*OAuthConnection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OAuthConnection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OAuthConnectionMutation)
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
func (_c *OAuthConnectionCreateBulk) SaveX(ctx context.Context) []*OAuthConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OAuthConnectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OAuthConnectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
