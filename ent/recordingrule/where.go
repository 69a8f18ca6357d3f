// Code generated by ent, DO NOT EDIT.

package recordingrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldOrgID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldPriority, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldEnabled, v))
}

// TestMode applies equality check predicate on the "test_mode" field. It's identical to TestModeEQ.
func TestMode(v bool) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldTestMode, v))
}

// MinAttendees applies equality check predicate on the "min_attendees" field. It's identical to MinAttendeesEQ.
func MinAttendees(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldMinAttendees, v))
}

// MaxAttendees applies equality check predicate on the "max_attendees" field. It's identical to MaxAttendeesEQ.
func MaxAttendees(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldMaxAttendees, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldContainsFold(FieldOrgID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldContainsFold(FieldName, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldPriority, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldEnabled, v))
}

// TestModeEQ applies the EQ predicate on the "test_mode" field.
func TestModeEQ(v bool) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldTestMode, v))
}

// TestModeNEQ applies the NEQ predicate on the "test_mode" field.
func TestModeNEQ(v bool) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldTestMode, v))
}

// TitleExcludeKeywordsIsNil applies the IsNil predicate on the "title_exclude_keywords" field.
func TitleExcludeKeywordsIsNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIsNull(FieldTitleExcludeKeywords))
}

// TitleExcludeKeywordsNotNil applies the NotNil predicate on the "title_exclude_keywords" field.
func TitleExcludeKeywordsNotNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotNull(FieldTitleExcludeKeywords))
}

// TitleIncludeKeywordsIsNil applies the IsNil predicate on the "title_include_keywords" field.
func TitleIncludeKeywordsIsNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIsNull(FieldTitleIncludeKeywords))
}

// TitleIncludeKeywordsNotNil applies the NotNil predicate on the "title_include_keywords" field.
func TitleIncludeKeywordsNotNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotNull(FieldTitleIncludeKeywords))
}

// MinAttendeesEQ applies the EQ predicate on the "min_attendees" field.
func MinAttendeesEQ(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldMinAttendees, v))
}

// MinAttendeesNEQ applies the NEQ predicate on the "min_attendees" field.
func MinAttendeesNEQ(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldMinAttendees, v))
}

// MinAttendeesIn applies the In predicate on the "min_attendees" field.
func MinAttendeesIn(vs ...int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldMinAttendees, vs...))
}

// MinAttendeesNotIn applies the NotIn predicate on the "min_attendees" field.
func MinAttendeesNotIn(vs ...int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldMinAttendees, vs...))
}

// MinAttendeesGT applies the GT predicate on the "min_attendees" field.
func MinAttendeesGT(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldMinAttendees, v))
}

// MinAttendeesGTE applies the GTE predicate on the "min_attendees" field.
func MinAttendeesGTE(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldMinAttendees, v))
}

// MinAttendeesLT applies the LT predicate on the "min_attendees" field.
func MinAttendeesLT(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldMinAttendees, v))
}

// MinAttendeesLTE applies the LTE predicate on the "min_attendees" field.
func MinAttendeesLTE(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldMinAttendees, v))
}

// MinAttendeesIsNil applies the IsNil predicate on the "min_attendees" field.
func MinAttendeesIsNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIsNull(FieldMinAttendees))
}

// MinAttendeesNotNil applies the NotNil predicate on the "min_attendees" field.
func MinAttendeesNotNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotNull(FieldMinAttendees))
}

// MaxAttendeesEQ applies the EQ predicate on the "max_attendees" field.
func MaxAttendeesEQ(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldMaxAttendees, v))
}

// MaxAttendeesNEQ applies the NEQ predicate on the "max_attendees" field.
func MaxAttendeesNEQ(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldMaxAttendees, v))
}

// MaxAttendeesIn applies the In predicate on the "max_attendees" field.
func MaxAttendeesIn(vs ...int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldMaxAttendees, vs...))
}

// MaxAttendeesNotIn applies the NotIn predicate on the "max_attendees" field.
func MaxAttendeesNotIn(vs ...int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldMaxAttendees, vs...))
}

// MaxAttendeesGT applies the GT predicate on the "max_attendees" field.
func MaxAttendeesGT(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldMaxAttendees, v))
}

// MaxAttendeesGTE applies the GTE predicate on the "max_attendees" field.
func MaxAttendeesGTE(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldMaxAttendees, v))
}

// MaxAttendeesLT applies the LT predicate on the "max_attendees" field.
func MaxAttendeesLT(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldMaxAttendees, v))
}

// MaxAttendeesLTE applies the LTE predicate on the "max_attendees" field.
func MaxAttendeesLTE(v int) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldMaxAttendees, v))
}

// MaxAttendeesIsNil applies the IsNil predicate on the "max_attendees" field.
func MaxAttendeesIsNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIsNull(FieldMaxAttendees))
}

// MaxAttendeesNotNil applies the NotNil predicate on the "max_attendees" field.
func MaxAttendeesNotNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotNull(FieldMaxAttendees))
}

// DomainModeEQ applies the EQ predicate on the "domain_mode" field.
func DomainModeEQ(v DomainMode) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldDomainMode, v))
}

// DomainModeNEQ applies the NEQ predicate on the "domain_mode" field.
func DomainModeNEQ(v DomainMode) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldDomainMode, v))
}

// DomainModeIn applies the In predicate on the "domain_mode" field.
func DomainModeIn(vs ...DomainMode) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldDomainMode, vs...))
}

// DomainModeNotIn applies the NotIn predicate on the "domain_mode" field.
func DomainModeNotIn(vs ...DomainMode) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldDomainMode, vs...))
}

// SpecificDomainsIsNil applies the IsNil predicate on the "specific_domains" field.
func SpecificDomainsIsNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIsNull(FieldSpecificDomains))
}

// SpecificDomainsNotNil applies the NotNil predicate on the "specific_domains" field.
func SpecificDomainsNotNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotNull(FieldSpecificDomains))
}

// TargetIsNil applies the IsNil predicate on the "target" field.
func TargetIsNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIsNull(FieldTarget))
}

// TargetNotNil applies the NotNil predicate on the "target" field.
func TargetNotNil() predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotNull(FieldTarget))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecordingRule {
	return predicate.RecordingRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecordingRule) predicate.RecordingRule {
	return predicate.RecordingRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecordingRule) predicate.RecordingRule {
	return predicate.RecordingRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecordingRule) predicate.RecordingRule {
	return predicate.RecordingRule(sql.NotPredicates(p))
}
