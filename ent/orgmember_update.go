// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/ent/predicate"
)

// OrgMemberUpdate is the builder for updating OrgMember entities.
type OrgMemberUpdate struct {
	config
	hooks    []Hook
	mutation *OrgMemberMutation
}

// Where appends a list predicates to the OrgMemberUpdate builder.
func (_u *OrgMemberUpdate) Where(ps ...predicate.OrgMember) *OrgMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *OrgMemberUpdate) SetRole(v orgmember.Role) *OrgMemberUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableRole(v *orgmember.Role) *OrgMemberUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSlackUserID sets the "slack_user_id" field.
func (_u *OrgMemberUpdate) SetSlackUserID(v string) *OrgMemberUpdate {
	_u.mutation.SetSlackUserID(v)
	return _u
}

// SetNillableSlackUserID sets the "slack_user_id" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableSlackUserID(v *string) *OrgMemberUpdate {
	if v != nil {
		_u.SetSlackUserID(*v)
	}
	return _u
}

// ClearSlackUserID clears the value of the "slack_user_id" field.
func (_u *OrgMemberUpdate) ClearSlackUserID() *OrgMemberUpdate {
	_u.mutation.ClearSlackUserID()
	return _u
}

// SetEmail sets the "email" field.
func (_u *OrgMemberUpdate) SetEmail(v string) *OrgMemberUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *OrgMemberUpdate) SetNillableEmail(v *string) *OrgMemberUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *OrgMemberUpdate) ClearEmail() *OrgMemberUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// Mutation returns the OrgMemberMutation object of the builder.
func (_u *OrgMemberUpdate) Mutation() *OrgMemberMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrgMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrgMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgMemberUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := orgmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "OrgMember.role": %w`, err)}
		}
	}
	return nil
}

func (_u *OrgMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgmember.Table, orgmember.Columns, sqlgraph.NewFieldSpec(orgmember.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(orgmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SlackUserID(); ok {
		_spec.SetField(orgmember.FieldSlackUserID, field.TypeString, value)
	}
	if _u.mutation.SlackUserIDCleared() {
		_spec.ClearField(orgmember.FieldSlackUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(orgmember.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(orgmember.FieldEmail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrgMemberUpdateOne is the builder for updating a single OrgMember entity.
type OrgMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrgMemberMutation
}

// SetRole sets the "role" field.
func (_u *OrgMemberUpdateOne) SetRole(v orgmember.Role) *OrgMemberUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableRole(v *orgmember.Role) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetSlackUserID sets the "slack_user_id" field.
func (_u *OrgMemberUpdateOne) SetSlackUserID(v string) *OrgMemberUpdateOne {
	_u.mutation.SetSlackUserID(v)
	return _u
}

// SetNillableSlackUserID sets the "slack_user_id" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableSlackUserID(v *string) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetSlackUserID(*v)
	}
	return _u
}

// ClearSlackUserID clears the value of the "slack_user_id" field.
func (_u *OrgMemberUpdateOne) ClearSlackUserID() *OrgMemberUpdateOne {
	_u.mutation.ClearSlackUserID()
	return _u
}

// SetEmail sets the "email" field.
func (_u *OrgMemberUpdateOne) SetEmail(v string) *OrgMemberUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *OrgMemberUpdateOne) SetNillableEmail(v *string) *OrgMemberUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *OrgMemberUpdateOne) ClearEmail() *OrgMemberUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// Mutation returns the OrgMemberMutation object of the builder.
func (_u *OrgMemberUpdateOne) Mutation() *OrgMemberMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrgMemberUpdate builder.
func (_u *OrgMemberUpdateOne) Where(ps ...predicate.OrgMember) *OrgMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrgMemberUpdateOne) Select(field string, fields ...string) *OrgMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrgMember entity.
func (_u *OrgMemberUpdateOne) Save(ctx context.Context) (*OrgMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgMemberUpdateOne) SaveX(ctx context.Context) *OrgMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrgMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrgMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := orgmember.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "OrgMember.role": %w`, err)}
		}
	}
	return nil
}

func (_u *OrgMemberUpdateOne) sqlSave(ctx context.Context) (_node *OrgMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orgmember.Table, orgmember.Columns, sqlgraph.NewFieldSpec(orgmember.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrgMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgmember.FieldID)
		for _, f := range fields {
			if !orgmember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orgmember.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(orgmember.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SlackUserID(); ok {
		_spec.SetField(orgmember.FieldSlackUserID, field.TypeString, value)
	}
	if _u.mutation.SlackUserIDCleared() {
		_spec.ClearField(orgmember.FieldSlackUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(orgmember.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(orgmember.FieldEmail, field.TypeString)
	}
	_node = &OrgMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgmember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
