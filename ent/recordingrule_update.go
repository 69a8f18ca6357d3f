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
	"github.com/stridehq/cadenza/ent/predicate"
	"github.com/stridehq/cadenza/ent/recordingrule"
)

// RecordingRuleUpdate is the builder for updating RecordingRule entities.
type RecordingRuleUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingRuleMutation
}

// Where appends a list predicates to the RecordingRuleUpdate builder.
func (_u *RecordingRuleUpdate) Where(ps ...predicate.RecordingRule) *RecordingRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RecordingRuleUpdate) SetName(v string) *RecordingRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillableName(v *string) *RecordingRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecordingRuleUpdate) SetPriority(v int) *RecordingRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillablePriority(v *int) *RecordingRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RecordingRuleUpdate) AddPriority(v int) *RecordingRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *RecordingRuleUpdate) SetEnabled(v bool) *RecordingRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillableEnabled(v *bool) *RecordingRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTestMode sets the "test_mode" field.
func (_u *RecordingRuleUpdate) SetTestMode(v bool) *RecordingRuleUpdate {
	_u.mutation.SetTestMode(v)
	return _u
}

// SetNillableTestMode sets the "test_mode" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillableTestMode(v *bool) *RecordingRuleUpdate {
	if v != nil {
		_u.SetTestMode(*v)
	}
	return _u
}

// SetTitleExcludeKeywords sets the "title_exclude_keywords" field.
func (_u *RecordingRuleUpdate) SetTitleExcludeKeywords(v []string) *RecordingRuleUpdate {
	_u.mutation.SetTitleExcludeKeywords(v)
	return _u
}

// AppendTitleExcludeKeywords appends value to the "title_exclude_keywords" field.
func (_u *RecordingRuleUpdate) AppendTitleExcludeKeywords(v []string) *RecordingRuleUpdate {
	_u.mutation.AppendTitleExcludeKeywords(v)
	return _u
}

// ClearTitleExcludeKeywords clears the value of the "title_exclude_keywords" field.
func (_u *RecordingRuleUpdate) ClearTitleExcludeKeywords() *RecordingRuleUpdate {
	_u.mutation.ClearTitleExcludeKeywords()
	return _u
}

// SetTitleIncludeKeywords sets the "title_include_keywords" field.
func (_u *RecordingRuleUpdate) SetTitleIncludeKeywords(v []string) *RecordingRuleUpdate {
	_u.mutation.SetTitleIncludeKeywords(v)
	return _u
}

// AppendTitleIncludeKeywords appends value to the "title_include_keywords" field.
func (_u *RecordingRuleUpdate) AppendTitleIncludeKeywords(v []string) *RecordingRuleUpdate {
	_u.mutation.AppendTitleIncludeKeywords(v)
	return _u
}

// ClearTitleIncludeKeywords clears the value of the "title_include_keywords" field.
func (_u *RecordingRuleUpdate) ClearTitleIncludeKeywords() *RecordingRuleUpdate {
	_u.mutation.ClearTitleIncludeKeywords()
	return _u
}

// SetMinAttendees sets the "min_attendees" field.
func (_u *RecordingRuleUpdate) SetMinAttendees(v int) *RecordingRuleUpdate {
	_u.mutation.ResetMinAttendees()
	_u.mutation.SetMinAttendees(v)
	return _u
}

// SetNillableMinAttendees sets the "min_attendees" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillableMinAttendees(v *int) *RecordingRuleUpdate {
	if v != nil {
		_u.SetMinAttendees(*v)
	}
	return _u
}

// AddMinAttendees adds value to the "min_attendees" field.
func (_u *RecordingRuleUpdate) AddMinAttendees(v int) *RecordingRuleUpdate {
	_u.mutation.AddMinAttendees(v)
	return _u
}

// ClearMinAttendees clears the value of the "min_attendees" field.
func (_u *RecordingRuleUpdate) ClearMinAttendees() *RecordingRuleUpdate {
	_u.mutation.ClearMinAttendees()
	return _u
}

// SetMaxAttendees sets the "max_attendees" field.
func (_u *RecordingRuleUpdate) SetMaxAttendees(v int) *RecordingRuleUpdate {
	_u.mutation.ResetMaxAttendees()
	_u.mutation.SetMaxAttendees(v)
	return _u
}

// SetNillableMaxAttendees sets the "max_attendees" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillableMaxAttendees(v *int) *RecordingRuleUpdate {
	if v != nil {
		_u.SetMaxAttendees(*v)
	}
	return _u
}

// AddMaxAttendees adds value to the "max_attendees" field.
func (_u *RecordingRuleUpdate) AddMaxAttendees(v int) *RecordingRuleUpdate {
	_u.mutation.AddMaxAttendees(v)
	return _u
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (_u *RecordingRuleUpdate) ClearMaxAttendees() *RecordingRuleUpdate {
	_u.mutation.ClearMaxAttendees()
	return _u
}

// SetDomainMode sets the "domain_mode" field.
func (_u *RecordingRuleUpdate) SetDomainMode(v recordingrule.DomainMode) *RecordingRuleUpdate {
	_u.mutation.SetDomainMode(v)
	return _u
}

// SetNillableDomainMode sets the "domain_mode" field if the given value is not nil.
func (_u *RecordingRuleUpdate) SetNillableDomainMode(v *recordingrule.DomainMode) *RecordingRuleUpdate {
	if v != nil {
		_u.SetDomainMode(*v)
	}
	return _u
}

// SetSpecificDomains sets the "specific_domains" field.
func (_u *RecordingRuleUpdate) SetSpecificDomains(v []string) *RecordingRuleUpdate {
	_u.mutation.SetSpecificDomains(v)
	return _u
}

// AppendSpecificDomains appends value to the "specific_domains" field.
func (_u *RecordingRuleUpdate) AppendSpecificDomains(v []string) *RecordingRuleUpdate {
	_u.mutation.AppendSpecificDomains(v)
	return _u
}

// ClearSpecificDomains clears the value of the "specific_domains" field.
func (_u *RecordingRuleUpdate) ClearSpecificDomains() *RecordingRuleUpdate {
	_u.mutation.ClearSpecificDomains()
	return _u
}

// SetTarget sets the "target" field.
func (_u *RecordingRuleUpdate) SetTarget(v map[string]interface{}) *RecordingRuleUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// ClearTarget clears the value of the "target" field.
func (_u *RecordingRuleUpdate) ClearTarget() *RecordingRuleUpdate {
	_u.mutation.ClearTarget()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordingRuleUpdate) SetUpdatedAt(v time.Time) *RecordingRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecordingRuleMutation object of the builder.
func (_u *RecordingRuleUpdate) Mutation() *RecordingRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordingRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recordingrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingRuleUpdate) check() error {
	if v, ok := _u.mutation.DomainMode(); ok {
		if err := recordingrule.DomainModeValidator(v); err != nil {
			return &ValidationError{Name: "domain_mode", err: fmt.Errorf(`ent: validator failed for field "RecordingRule.domain_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordingRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recordingrule.Table, recordingrule.Columns, sqlgraph.NewFieldSpec(recordingrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recordingrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recordingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(recordingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(recordingrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestMode(); ok {
		_spec.SetField(recordingrule.FieldTestMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TitleExcludeKeywords(); ok {
		_spec.SetField(recordingrule.FieldTitleExcludeKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitleExcludeKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recordingrule.FieldTitleExcludeKeywords, value)
		})
	}
	if _u.mutation.TitleExcludeKeywordsCleared() {
		_spec.ClearField(recordingrule.FieldTitleExcludeKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.TitleIncludeKeywords(); ok {
		_spec.SetField(recordingrule.FieldTitleIncludeKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitleIncludeKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recordingrule.FieldTitleIncludeKeywords, value)
		})
	}
	if _u.mutation.TitleIncludeKeywordsCleared() {
		_spec.ClearField(recordingrule.FieldTitleIncludeKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinAttendees(); ok {
		_spec.SetField(recordingrule.FieldMinAttendees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAttendees(); ok {
		_spec.AddField(recordingrule.FieldMinAttendees, field.TypeInt, value)
	}
	if _u.mutation.MinAttendeesCleared() {
		_spec.ClearField(recordingrule.FieldMinAttendees, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxAttendees(); ok {
		_spec.SetField(recordingrule.FieldMaxAttendees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttendees(); ok {
		_spec.AddField(recordingrule.FieldMaxAttendees, field.TypeInt, value)
	}
	if _u.mutation.MaxAttendeesCleared() {
		_spec.ClearField(recordingrule.FieldMaxAttendees, field.TypeInt)
	}
	if value, ok := _u.mutation.DomainMode(); ok {
		_spec.SetField(recordingrule.FieldDomainMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecificDomains(); ok {
		_spec.SetField(recordingrule.FieldSpecificDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecificDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recordingrule.FieldSpecificDomains, value)
		})
	}
	if _u.mutation.SpecificDomainsCleared() {
		_spec.ClearField(recordingrule.FieldSpecificDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(recordingrule.FieldTarget, field.TypeJSON, value)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(recordingrule.FieldTarget, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recordingrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recordingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingRuleUpdateOne is the builder for updating a single RecordingRule entity.
type RecordingRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingRuleMutation
}

// SetName sets the "name" field.
func (_u *RecordingRuleUpdateOne) SetName(v string) *RecordingRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillableName(v *string) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecordingRuleUpdateOne) SetPriority(v int) *RecordingRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillablePriority(v *int) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RecordingRuleUpdateOne) AddPriority(v int) *RecordingRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *RecordingRuleUpdateOne) SetEnabled(v bool) *RecordingRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillableEnabled(v *bool) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTestMode sets the "test_mode" field.
func (_u *RecordingRuleUpdateOne) SetTestMode(v bool) *RecordingRuleUpdateOne {
	_u.mutation.SetTestMode(v)
	return _u
}

// SetNillableTestMode sets the "test_mode" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillableTestMode(v *bool) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetTestMode(*v)
	}
	return _u
}

// SetTitleExcludeKeywords sets the "title_exclude_keywords" field.
func (_u *RecordingRuleUpdateOne) SetTitleExcludeKeywords(v []string) *RecordingRuleUpdateOne {
	_u.mutation.SetTitleExcludeKeywords(v)
	return _u
}

// AppendTitleExcludeKeywords appends value to the "title_exclude_keywords" field.
func (_u *RecordingRuleUpdateOne) AppendTitleExcludeKeywords(v []string) *RecordingRuleUpdateOne {
	_u.mutation.AppendTitleExcludeKeywords(v)
	return _u
}

// ClearTitleExcludeKeywords clears the value of the "title_exclude_keywords" field.
func (_u *RecordingRuleUpdateOne) ClearTitleExcludeKeywords() *RecordingRuleUpdateOne {
	_u.mutation.ClearTitleExcludeKeywords()
	return _u
}

// SetTitleIncludeKeywords sets the "title_include_keywords" field.
func (_u *RecordingRuleUpdateOne) SetTitleIncludeKeywords(v []string) *RecordingRuleUpdateOne {
	_u.mutation.SetTitleIncludeKeywords(v)
	return _u
}

// AppendTitleIncludeKeywords appends value to the "title_include_keywords" field.
func (_u *RecordingRuleUpdateOne) AppendTitleIncludeKeywords(v []string) *RecordingRuleUpdateOne {
	_u.mutation.AppendTitleIncludeKeywords(v)
	return _u
}

// ClearTitleIncludeKeywords clears the value of the "title_include_keywords" field.
func (_u *RecordingRuleUpdateOne) ClearTitleIncludeKeywords() *RecordingRuleUpdateOne {
	_u.mutation.ClearTitleIncludeKeywords()
	return _u
}

// SetMinAttendees sets the "min_attendees" field.
func (_u *RecordingRuleUpdateOne) SetMinAttendees(v int) *RecordingRuleUpdateOne {
	_u.mutation.ResetMinAttendees()
	_u.mutation.SetMinAttendees(v)
	return _u
}

// SetNillableMinAttendees sets the "min_attendees" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillableMinAttendees(v *int) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetMinAttendees(*v)
	}
	return _u
}

// AddMinAttendees adds value to the "min_attendees" field.
func (_u *RecordingRuleUpdateOne) AddMinAttendees(v int) *RecordingRuleUpdateOne {
	_u.mutation.AddMinAttendees(v)
	return _u
}

// ClearMinAttendees clears the value of the "min_attendees" field.
func (_u *RecordingRuleUpdateOne) ClearMinAttendees() *RecordingRuleUpdateOne {
	_u.mutation.ClearMinAttendees()
	return _u
}

// SetMaxAttendees sets the "max_attendees" field.
func (_u *RecordingRuleUpdateOne) SetMaxAttendees(v int) *RecordingRuleUpdateOne {
	_u.mutation.ResetMaxAttendees()
	_u.mutation.SetMaxAttendees(v)
	return _u
}

// SetNillableMaxAttendees sets the "max_attendees" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillableMaxAttendees(v *int) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetMaxAttendees(*v)
	}
	return _u
}

// AddMaxAttendees adds value to the "max_attendees" field.
func (_u *RecordingRuleUpdateOne) AddMaxAttendees(v int) *RecordingRuleUpdateOne {
	_u.mutation.AddMaxAttendees(v)
	return _u
}

// ClearMaxAttendees clears the value of the "max_attendees" field.
func (_u *RecordingRuleUpdateOne) ClearMaxAttendees() *RecordingRuleUpdateOne {
	_u.mutation.ClearMaxAttendees()
	return _u
}

// SetDomainMode sets the "domain_mode" field.
func (_u *RecordingRuleUpdateOne) SetDomainMode(v recordingrule.DomainMode) *RecordingRuleUpdateOne {
	_u.mutation.SetDomainMode(v)
	return _u
}

// SetNillableDomainMode sets the "domain_mode" field if the given value is not nil.
func (_u *RecordingRuleUpdateOne) SetNillableDomainMode(v *recordingrule.DomainMode) *RecordingRuleUpdateOne {
	if v != nil {
		_u.SetDomainMode(*v)
	}
	return _u
}

// SetSpecificDomains sets the "specific_domains" field.
func (_u *RecordingRuleUpdateOne) SetSpecificDomains(v []string) *RecordingRuleUpdateOne {
	_u.mutation.SetSpecificDomains(v)
	return _u
}

// AppendSpecificDomains appends value to the "specific_domains" field.
func (_u *RecordingRuleUpdateOne) AppendSpecificDomains(v []string) *RecordingRuleUpdateOne {
	_u.mutation.AppendSpecificDomains(v)
	return _u
}

// ClearSpecificDomains clears the value of the "specific_domains" field.
func (_u *RecordingRuleUpdateOne) ClearSpecificDomains() *RecordingRuleUpdateOne {
	_u.mutation.ClearSpecificDomains()
	return _u
}

// SetTarget sets the "target" field.
func (_u *RecordingRuleUpdateOne) SetTarget(v map[string]interface{}) *RecordingRuleUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// ClearTarget clears the value of the "target" field.
func (_u *RecordingRuleUpdateOne) ClearTarget() *RecordingRuleUpdateOne {
	_u.mutation.ClearTarget()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordingRuleUpdateOne) SetUpdatedAt(v time.Time) *RecordingRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecordingRuleMutation object of the builder.
func (_u *RecordingRuleUpdateOne) Mutation() *RecordingRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecordingRuleUpdate builder.
func (_u *RecordingRuleUpdateOne) Where(ps ...predicate.RecordingRule) *RecordingRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingRuleUpdateOne) Select(field string, fields ...string) *RecordingRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecordingRule entity.
func (_u *RecordingRuleUpdateOne) Save(ctx context.Context) (*RecordingRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingRuleUpdateOne) SaveX(ctx context.Context) *RecordingRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordingRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recordingrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingRuleUpdateOne) check() error {
	if v, ok := _u.mutation.DomainMode(); ok {
		if err := recordingrule.DomainModeValidator(v); err != nil {
			return &ValidationError{Name: "domain_mode", err: fmt.Errorf(`ent: validator failed for field "RecordingRule.domain_mode": %w`, err)}
		}
	}
	return nil
}

func (_u *RecordingRuleUpdateOne) sqlSave(ctx context.Context) (_node *RecordingRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recordingrule.Table, recordingrule.Columns, sqlgraph.NewFieldSpec(recordingrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecordingRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recordingrule.FieldID)
		for _, f := range fields {
			if !recordingrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recordingrule.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recordingrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recordingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(recordingrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(recordingrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TestMode(); ok {
		_spec.SetField(recordingrule.FieldTestMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TitleExcludeKeywords(); ok {
		_spec.SetField(recordingrule.FieldTitleExcludeKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitleExcludeKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recordingrule.FieldTitleExcludeKeywords, value)
		})
	}
	if _u.mutation.TitleExcludeKeywordsCleared() {
		_spec.ClearField(recordingrule.FieldTitleExcludeKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.TitleIncludeKeywords(); ok {
		_spec.SetField(recordingrule.FieldTitleIncludeKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitleIncludeKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recordingrule.FieldTitleIncludeKeywords, value)
		})
	}
	if _u.mutation.TitleIncludeKeywordsCleared() {
		_spec.ClearField(recordingrule.FieldTitleIncludeKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinAttendees(); ok {
		_spec.SetField(recordingrule.FieldMinAttendees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinAttendees(); ok {
		_spec.AddField(recordingrule.FieldMinAttendees, field.TypeInt, value)
	}
	if _u.mutation.MinAttendeesCleared() {
		_spec.ClearField(recordingrule.FieldMinAttendees, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxAttendees(); ok {
		_spec.SetField(recordingrule.FieldMaxAttendees, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttendees(); ok {
		_spec.AddField(recordingrule.FieldMaxAttendees, field.TypeInt, value)
	}
	if _u.mutation.MaxAttendeesCleared() {
		_spec.ClearField(recordingrule.FieldMaxAttendees, field.TypeInt)
	}
	if value, ok := _u.mutation.DomainMode(); ok {
		_spec.SetField(recordingrule.FieldDomainMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecificDomains(); ok {
		_spec.SetField(recordingrule.FieldSpecificDomains, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecificDomains(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recordingrule.FieldSpecificDomains, value)
		})
	}
	if _u.mutation.SpecificDomainsCleared() {
		_spec.ClearField(recordingrule.FieldSpecificDomains, field.TypeJSON)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(recordingrule.FieldTarget, field.TypeJSON, value)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(recordingrule.FieldTarget, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recordingrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RecordingRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recordingrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
