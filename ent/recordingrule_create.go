// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/stridehq/cadenza/ent/recordingrule"
)

// RecordingRuleCreate is the builder for creating a RecordingRule entity.
type RecordingRuleCreate struct {
	config
	mutation *RecordingRuleMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *RecordingRuleCreate) SetOrgID(v string) *RecordingRuleCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RecordingRuleCreate) SetName(v string) *RecordingRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RecordingRuleCreate) SetPriority(v int) *RecordingRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillablePriority(v *int) *RecordingRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *RecordingRuleCreate) SetEnabled(v bool) *RecordingRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableEnabled(v *bool) *RecordingRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetTestMode sets the "test_mode" field.
func (_c *RecordingRuleCreate) SetTestMode(v bool) *RecordingRuleCreate {
	_c.mutation.SetTestMode(v)
	return _c
}

// SetNillableTestMode sets the "test_mode" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableTestMode(v *bool) *RecordingRuleCreate {
	if v != nil {
		_c.SetTestMode(*v)
	}
	return _c
}

// SetTitleExcludeKeywords sets the "title_exclude_keywords" field.
func (_c *RecordingRuleCreate) SetTitleExcludeKeywords(v []string) *RecordingRuleCreate {
	_c.mutation.SetTitleExcludeKeywords(v)
	return _c
}

// SetTitleIncludeKeywords sets the "title_include_keywords" field.
func (_c *RecordingRuleCreate) SetTitleIncludeKeywords(v []string) *RecordingRuleCreate {
	_c.mutation.SetTitleIncludeKeywords(v)
	return _c
}

// SetMinAttendees sets the "min_attendees" field.
func (_c *RecordingRuleCreate) SetMinAttendees(v int) *RecordingRuleCreate {
	_c.mutation.SetMinAttendees(v)
	return _c
}

// SetNillableMinAttendees sets the "min_attendees" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableMinAttendees(v *int) *RecordingRuleCreate {
	if v != nil {
		_c.SetMinAttendees(*v)
	}
	return _c
}

// SetMaxAttendees sets the "max_attendees" field.
func (_c *RecordingRuleCreate) SetMaxAttendees(v int) *RecordingRuleCreate {
	_c.mutation.SetMaxAttendees(v)
	return _c
}

// SetNillableMaxAttendees sets the "max_attendees" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableMaxAttendees(v *int) *RecordingRuleCreate {
	if v != nil {
		_c.SetMaxAttendees(*v)
	}
	return _c
}

// SetDomainMode sets the "domain_mode" field.
func (_c *RecordingRuleCreate) SetDomainMode(v recordingrule.DomainMode) *RecordingRuleCreate {
	_c.mutation.SetDomainMode(v)
	return _c
}

// SetNillableDomainMode sets the "domain_mode" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableDomainMode(v *recordingrule.DomainMode) *RecordingRuleCreate {
	if v != nil {
		_c.SetDomainMode(*v)
	}
	return _c
}

// SetSpecificDomains sets the "specific_domains" field.
func (_c *RecordingRuleCreate) SetSpecificDomains(v []string) *RecordingRuleCreate {
	_c.mutation.SetSpecificDomains(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *RecordingRuleCreate) SetTarget(v map[string]interface{}) *RecordingRuleCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordingRuleCreate) SetCreatedAt(v time.Time) *RecordingRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableCreatedAt(v *time.Time) *RecordingRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecordingRuleCreate) SetUpdatedAt(v time.Time) *RecordingRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecordingRuleCreate) SetNillableUpdatedAt(v *time.Time) *RecordingRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecordingRuleCreate) SetID(v string) *RecordingRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RecordingRuleMutation object of the builder.
func (_c *RecordingRuleCreate) Mutation() *RecordingRuleMutation {
	return _c.mutation
}

// Save creates the RecordingRule in the database.
func (_c *RecordingRuleCreate) Save(ctx context.Context) (*RecordingRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordingRuleCreate) SaveX(ctx context.Context) *RecordingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordingRuleCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := recordingrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := recordingrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.TestMode(); !ok {
		v := recordingrule.DefaultTestMode
		_c.mutation.SetTestMode(v)
	}
	if _, ok := _c.mutation.DomainMode(); !ok {
		v := recordingrule.DefaultDomainMode
		_c.mutation.SetDomainMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recordingrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recordingrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordingRuleCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "RecordingRule.org_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RecordingRule.name"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "RecordingRule.priority"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "RecordingRule.enabled"`)}
	}
	if _, ok := _c.mutation.TestMode(); !ok {
		return &ValidationError{Name: "test_mode", err: errors.New(`ent: missing required field "RecordingRule.test_mode"`)}
	}
	if _, ok := _c.mutation.DomainMode(); !ok {
		return &ValidationError{Name: "domain_mode", err: errors.New(`ent: missing required field "RecordingRule.domain_mode"`)}
	}
	if v, ok := _c.mutation.DomainMode(); ok {
		if err := recordingrule.DomainModeValidator(v); err != nil {
			return &ValidationError{Name: "domain_mode", err: fmt.Errorf(`ent: validator failed for field "RecordingRule.domain_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecordingRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RecordingRule.updated_at"`)}
	}
	return nil
}

func (_c *RecordingRuleCreate) sqlSave(ctx context.Context) (*RecordingRule, error) {
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
			return nil, fmt.Errorf("unexpected RecordingRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecordingRuleCreate) createSpec() (*RecordingRule, *sqlgraph.CreateSpec) {
	var (
		_node = &RecordingRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recordingrule.Table, sqlgraph.NewFieldSpec(recordingrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(recordingrule.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recordingrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(recordingrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(recordingrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.TestMode(); ok {
		_spec.SetField(recordingrule.FieldTestMode, field.TypeBool, value)
		_node.TestMode = value
	}
	if value, ok := _c.mutation.TitleExcludeKeywords(); ok {
		_spec.SetField(recordingrule.FieldTitleExcludeKeywords, field.TypeJSON, value)
		_node.TitleExcludeKeywords = value
	}
	if value, ok := _c.mutation.TitleIncludeKeywords(); ok {
		_spec.SetField(recordingrule.FieldTitleIncludeKeywords, field.TypeJSON, value)
		_node.TitleIncludeKeywords = value
	}
	if value, ok := _c.mutation.MinAttendees(); ok {
		_spec.SetField(recordingrule.FieldMinAttendees, field.TypeInt, value)
		_node.MinAttendees = &value
	}
	if value, ok := _c.mutation.MaxAttendees(); ok {
		_spec.SetField(recordingrule.FieldMaxAttendees, field.TypeInt, value)
		_node.MaxAttendees = &value
	}
	if value, ok := _c.mutation.DomainMode(); ok {
		_spec.SetField(recordingrule.FieldDomainMode, field.TypeEnum, value)
		_node.DomainMode = value
	}
	if value, ok := _c.mutation.SpecificDomains(); ok {
		_spec.SetField(recordingrule.FieldSpecificDomains, field.TypeJSON, value)
		_node.SpecificDomains = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(recordingrule.FieldTarget, field.TypeJSON, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recordingrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recordingrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RecordingRuleCreateBulk is the builder for creating many RecordingRule entities in bulk.
type RecordingRuleCreateBulk struct {
	config
	err      error
	builders []*RecordingRuleCreate
}

// Save creates the RecordingRule entities in the database.
func (_c *RecordingRuleCreateBulk) Save(ctx context.Context) ([]*RecordingRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecordingRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordingRuleMutation)
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
func (_c *RecordingRuleCreateBulk) SaveX(ctx context.Context) []*RecordingRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
