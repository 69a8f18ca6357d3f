// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/oauthconnection"
	"github.com/stridehq/cadenza/ent/predicate"
)

// OAuthConnectionUpdate is the builder for updating OAuthConnection entities.
type OAuthConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *OAuthConnectionMutation
}

// Where appends a list predicates to the OAuthConnectionUpdate builder.
func (_u *OAuthConnectionUpdate) Where(ps ...predicate.OAuthConnection) *OAuthConnectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *OAuthConnectionUpdate) SetAccessToken(v string) *OAuthConnectionUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *OAuthConnectionUpdate) SetNillableAccessToken(v *string) *OAuthConnectionUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *OAuthConnectionUpdate) SetRefreshToken(v string) *OAuthConnectionUpdate {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *OAuthConnectionUpdate) SetNillableRefreshToken(v *string) *OAuthConnectionUpdate {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// SetTokenType sets the "token_type" field.
func (_u *OAuthConnectionUpdate) SetTokenType(v string) *OAuthConnectionUpdate {
	_u.mutation.SetTokenType(v)
	return _u
}

// SetNillableTokenType sets the "token_type" field if the given value is not nil.
func (_u *OAuthConnectionUpdate) SetNillableTokenType(v *string) *OAuthConnectionUpdate {
	if v != nil {
		_u.SetTokenType(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OAuthConnectionUpdate) SetExpiresAt(v time.Time) *OAuthConnectionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OAuthConnectionUpdate) SetNillableExpiresAt(v *time.Time) *OAuthConnectionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *OAuthConnectionUpdate) SetScopes(v []string) *OAuthConnectionUpdate {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *OAuthConnectionUpdate) AppendScopes(v []string) *OAuthConnectionUpdate {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *OAuthConnectionUpdate) ClearScopes() *OAuthConnectionUpdate {
	_u.mutation.ClearScopes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OAuthConnectionUpdate) SetStatus(v oauthconnection.Status) *OAuthConnectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OAuthConnectionUpdate) SetNillableStatus(v *oauthconnection.Status) *OAuthConnectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OAuthConnectionUpdate) SetUpdatedAt(v time.Time) *OAuthConnectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OAuthConnectionMutation object of the builder.
func (_u *OAuthConnectionUpdate) Mutation() *OAuthConnectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OAuthConnectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OAuthConnectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthConnectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OAuthConnectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oauthconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OAuthConnectionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := oauthconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OAuthConnection.status": %w`, err)}
		}
	}
	return nil
}

func (_u *OAuthConnectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oauthconnection.Table, oauthconnection.Columns, sqlgraph.NewFieldSpec(oauthconnection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(oauthconnection.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(oauthconnection.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenType(); ok {
		_spec.SetField(oauthconnection.FieldTokenType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(oauthconnection.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(oauthconnection.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthconnection.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(oauthconnection.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(oauthconnection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OAuthConnectionUpdateOne is the builder for updating a single OAuthConnection entity.
type OAuthConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OAuthConnectionMutation
}

// SetAccessToken sets the "access_token" field.
func (_u *OAuthConnectionUpdateOne) SetAccessToken(v string) *OAuthConnectionUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *OAuthConnectionUpdateOne) SetNillableAccessToken(v *string) *OAuthConnectionUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// SetRefreshToken sets the "refresh_token" field.
func (_u *OAuthConnectionUpdateOne) SetRefreshToken(v string) *OAuthConnectionUpdateOne {
	_u.mutation.SetRefreshToken(v)
	return _u
}

// SetNillableRefreshToken sets the "refresh_token" field if the given value is not nil.
func (_u *OAuthConnectionUpdateOne) SetNillableRefreshToken(v *string) *OAuthConnectionUpdateOne {
	if v != nil {
		_u.SetRefreshToken(*v)
	}
	return _u
}

// SetTokenType sets the "token_type" field.
func (_u *OAuthConnectionUpdateOne) SetTokenType(v string) *OAuthConnectionUpdateOne {
	_u.mutation.SetTokenType(v)
	return _u
}

// SetNillableTokenType sets the "token_type" field if the given value is not nil.
func (_u *OAuthConnectionUpdateOne) SetNillableTokenType(v *string) *OAuthConnectionUpdateOne {
	if v != nil {
		_u.SetTokenType(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *OAuthConnectionUpdateOne) SetExpiresAt(v time.Time) *OAuthConnectionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *OAuthConnectionUpdateOne) SetNillableExpiresAt(v *time.Time) *OAuthConnectionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetScopes sets the "scopes" field.
func (_u *OAuthConnectionUpdateOne) SetScopes(v []string) *OAuthConnectionUpdateOne {
	_u.mutation.SetScopes(v)
	return _u
}

// AppendScopes appends value to the "scopes" field.
func (_u *OAuthConnectionUpdateOne) AppendScopes(v []string) *OAuthConnectionUpdateOne {
	_u.mutation.AppendScopes(v)
	return _u
}

// ClearScopes clears the value of the "scopes" field.
func (_u *OAuthConnectionUpdateOne) ClearScopes() *OAuthConnectionUpdateOne {
	_u.mutation.ClearScopes()
	return _u
}

// SetStatus sets the "status" field.
func (_u *OAuthConnectionUpdateOne) SetStatus(v oauthconnection.Status) *OAuthConnectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OAuthConnectionUpdateOne) SetNillableStatus(v *oauthconnection.Status) *OAuthConnectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OAuthConnectionUpdateOne) SetUpdatedAt(v time.Time) *OAuthConnectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the OAuthConnectionMutation object of the builder.
func (_u *OAuthConnectionUpdateOne) Mutation() *OAuthConnectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the OAuthConnectionUpdate builder.
func (_u *OAuthConnectionUpdateOne) Where(ps ...predicate.OAuthConnection) *OAuthConnectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OAuthConnectionUpdateOne) Select(field string, fields ...string) *OAuthConnectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OAuthConnection entity.
func (_u *OAuthConnectionUpdateOne) Save(ctx context.Context) (*OAuthConnection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OAuthConnectionUpdateOne) SaveX(ctx context.Context) *OAuthConnection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OAuthConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OAuthConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OAuthConnectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := oauthconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OAuthConnectionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := oauthconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OAuthConnection.status": %w`, err)}
		}
	}
	return nil
}

func (_u *OAuthConnectionUpdateOne) sqlSave(ctx context.Context) (_node *OAuthConnection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oauthconnection.Table, oauthconnection.Columns, sqlgraph.NewFieldSpec(oauthconnection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OAuthConnection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oauthconnection.FieldID)
		for _, f := range fields {
			if !oauthconnection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != oauthconnection.FieldID {
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
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(oauthconnection.FieldAccessToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefreshToken(); ok {
		_spec.SetField(oauthconnection.FieldRefreshToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokenType(); ok {
		_spec.SetField(oauthconnection.FieldTokenType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(oauthconnection.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Scopes(); ok {
		_spec.SetField(oauthconnection.FieldScopes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScopes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, oauthconnection.FieldScopes, value)
		})
	}
	if _u.mutation.ScopesCleared() {
		_spec.ClearField(oauthconnection.FieldScopes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(oauthconnection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(oauthconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &OAuthConnection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oauthconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
