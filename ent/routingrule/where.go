// Code generated by ent, DO NOT EDIT.

package routingrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldOrgID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldPriority, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldEnabled, v))
}

// TestMode applies equality check predicate on the "test_mode" field. It's identical to TestModeEQ.
func TestMode(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldTestMode, v))
}

// MatchLevel applies equality check predicate on the "match_level" field. It's identical to MatchLevelEQ.
func MatchLevel(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchLevel, v))
}

// MatchEnvironment applies equality check predicate on the "match_environment" field. It's identical to MatchEnvironmentEQ.
func MatchEnvironment(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchEnvironment, v))
}

// MatchReleasePattern applies equality check predicate on the "match_release_pattern" field. It's identical to MatchReleasePatternEQ.
func MatchReleasePattern(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchReleasePattern, v))
}

// MatchTitlePattern applies equality check predicate on the "match_title_pattern" field. It's identical to MatchTitlePatternEQ.
func MatchTitlePattern(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchTitlePattern, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldOrgID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldName, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldPriority, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldEnabled, v))
}

// TestModeEQ applies the EQ predicate on the "test_mode" field.
func TestModeEQ(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldTestMode, v))
}

// TestModeNEQ applies the NEQ predicate on the "test_mode" field.
func TestModeNEQ(v bool) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldTestMode, v))
}

// MatchLevelEQ applies the EQ predicate on the "match_level" field.
func MatchLevelEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchLevel, v))
}

// MatchLevelNEQ applies the NEQ predicate on the "match_level" field.
func MatchLevelNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldMatchLevel, v))
}

// MatchLevelIn applies the In predicate on the "match_level" field.
func MatchLevelIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldMatchLevel, vs...))
}

// MatchLevelNotIn applies the NotIn predicate on the "match_level" field.
func MatchLevelNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldMatchLevel, vs...))
}

// MatchLevelGT applies the GT predicate on the "match_level" field.
func MatchLevelGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldMatchLevel, v))
}

// MatchLevelGTE applies the GTE predicate on the "match_level" field.
func MatchLevelGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldMatchLevel, v))
}

// MatchLevelLT applies the LT predicate on the "match_level" field.
func MatchLevelLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldMatchLevel, v))
}

// MatchLevelLTE applies the LTE predicate on the "match_level" field.
func MatchLevelLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldMatchLevel, v))
}

// MatchLevelContains applies the Contains predicate on the "match_level" field.
func MatchLevelContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldMatchLevel, v))
}

// MatchLevelHasPrefix applies the HasPrefix predicate on the "match_level" field.
func MatchLevelHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldMatchLevel, v))
}

// MatchLevelHasSuffix applies the HasSuffix predicate on the "match_level" field.
func MatchLevelHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldMatchLevel, v))
}

// MatchLevelIsNil applies the IsNil predicate on the "match_level" field.
func MatchLevelIsNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIsNull(FieldMatchLevel))
}

// MatchLevelNotNil applies the NotNil predicate on the "match_level" field.
func MatchLevelNotNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotNull(FieldMatchLevel))
}

// MatchLevelEqualFold applies the EqualFold predicate on the "match_level" field.
func MatchLevelEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldMatchLevel, v))
}

// MatchLevelContainsFold applies the ContainsFold predicate on the "match_level" field.
func MatchLevelContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldMatchLevel, v))
}

// MatchEnvironmentEQ applies the EQ predicate on the "match_environment" field.
func MatchEnvironmentEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchEnvironment, v))
}

// MatchEnvironmentNEQ applies the NEQ predicate on the "match_environment" field.
func MatchEnvironmentNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldMatchEnvironment, v))
}

// MatchEnvironmentIn applies the In predicate on the "match_environment" field.
func MatchEnvironmentIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldMatchEnvironment, vs...))
}

// MatchEnvironmentNotIn applies the NotIn predicate on the "match_environment" field.
func MatchEnvironmentNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldMatchEnvironment, vs...))
}

// MatchEnvironmentGT applies the GT predicate on the "match_environment" field.
func MatchEnvironmentGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldMatchEnvironment, v))
}

// MatchEnvironmentGTE applies the GTE predicate on the "match_environment" field.
func MatchEnvironmentGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldMatchEnvironment, v))
}

// MatchEnvironmentLT applies the LT predicate on the "match_environment" field.
func MatchEnvironmentLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldMatchEnvironment, v))
}

// MatchEnvironmentLTE applies the LTE predicate on the "match_environment" field.
func MatchEnvironmentLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldMatchEnvironment, v))
}

// MatchEnvironmentContains applies the Contains predicate on the "match_environment" field.
func MatchEnvironmentContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldMatchEnvironment, v))
}

// MatchEnvironmentHasPrefix applies the HasPrefix predicate on the "match_environment" field.
func MatchEnvironmentHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldMatchEnvironment, v))
}

// MatchEnvironmentHasSuffix applies the HasSuffix predicate on the "match_environment" field.
func MatchEnvironmentHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldMatchEnvironment, v))
}

// MatchEnvironmentIsNil applies the IsNil predicate on the "match_environment" field.
func MatchEnvironmentIsNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIsNull(FieldMatchEnvironment))
}

// MatchEnvironmentNotNil applies the NotNil predicate on the "match_environment" field.
func MatchEnvironmentNotNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotNull(FieldMatchEnvironment))
}

// MatchEnvironmentEqualFold applies the EqualFold predicate on the "match_environment" field.
func MatchEnvironmentEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldMatchEnvironment, v))
}

// MatchEnvironmentContainsFold applies the ContainsFold predicate on the "match_environment" field.
func MatchEnvironmentContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldMatchEnvironment, v))
}

// MatchReleasePatternEQ applies the EQ predicate on the "match_release_pattern" field.
func MatchReleasePatternEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchReleasePattern, v))
}

// MatchReleasePatternNEQ applies the NEQ predicate on the "match_release_pattern" field.
func MatchReleasePatternNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldMatchReleasePattern, v))
}

// MatchReleasePatternIn applies the In predicate on the "match_release_pattern" field.
func MatchReleasePatternIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldMatchReleasePattern, vs...))
}

// MatchReleasePatternNotIn applies the NotIn predicate on the "match_release_pattern" field.
func MatchReleasePatternNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldMatchReleasePattern, vs...))
}

// MatchReleasePatternGT applies the GT predicate on the "match_release_pattern" field.
func MatchReleasePatternGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldMatchReleasePattern, v))
}

// MatchReleasePatternGTE applies the GTE predicate on the "match_release_pattern" field.
func MatchReleasePatternGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldMatchReleasePattern, v))
}

// MatchReleasePatternLT applies the LT predicate on the "match_release_pattern" field.
func MatchReleasePatternLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldMatchReleasePattern, v))
}

// MatchReleasePatternLTE applies the LTE predicate on the "match_release_pattern" field.
func MatchReleasePatternLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldMatchReleasePattern, v))
}

// MatchReleasePatternContains applies the Contains predicate on the "match_release_pattern" field.
func MatchReleasePatternContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldMatchReleasePattern, v))
}

// MatchReleasePatternHasPrefix applies the HasPrefix predicate on the "match_release_pattern" field.
func MatchReleasePatternHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldMatchReleasePattern, v))
}

// MatchReleasePatternHasSuffix applies the HasSuffix predicate on the "match_release_pattern" field.
func MatchReleasePatternHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldMatchReleasePattern, v))
}

// MatchReleasePatternIsNil applies the IsNil predicate on the "match_release_pattern" field.
func MatchReleasePatternIsNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIsNull(FieldMatchReleasePattern))
}

// MatchReleasePatternNotNil applies the NotNil predicate on the "match_release_pattern" field.
func MatchReleasePatternNotNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotNull(FieldMatchReleasePattern))
}

// MatchReleasePatternEqualFold applies the EqualFold predicate on the "match_release_pattern" field.
func MatchReleasePatternEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldMatchReleasePattern, v))
}

// MatchReleasePatternContainsFold applies the ContainsFold predicate on the "match_release_pattern" field.
func MatchReleasePatternContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldMatchReleasePattern, v))
}

// MatchTitlePatternEQ applies the EQ predicate on the "match_title_pattern" field.
func MatchTitlePatternEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldMatchTitlePattern, v))
}

// MatchTitlePatternNEQ applies the NEQ predicate on the "match_title_pattern" field.
func MatchTitlePatternNEQ(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldMatchTitlePattern, v))
}

// MatchTitlePatternIn applies the In predicate on the "match_title_pattern" field.
func MatchTitlePatternIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldMatchTitlePattern, vs...))
}

// MatchTitlePatternNotIn applies the NotIn predicate on the "match_title_pattern" field.
func MatchTitlePatternNotIn(vs ...string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldMatchTitlePattern, vs...))
}

// MatchTitlePatternGT applies the GT predicate on the "match_title_pattern" field.
func MatchTitlePatternGT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldMatchTitlePattern, v))
}

// MatchTitlePatternGTE applies the GTE predicate on the "match_title_pattern" field.
func MatchTitlePatternGTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldMatchTitlePattern, v))
}

// MatchTitlePatternLT applies the LT predicate on the "match_title_pattern" field.
func MatchTitlePatternLT(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldMatchTitlePattern, v))
}

// MatchTitlePatternLTE applies the LTE predicate on the "match_title_pattern" field.
func MatchTitlePatternLTE(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldMatchTitlePattern, v))
}

// MatchTitlePatternContains applies the Contains predicate on the "match_title_pattern" field.
func MatchTitlePatternContains(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContains(FieldMatchTitlePattern, v))
}

// MatchTitlePatternHasPrefix applies the HasPrefix predicate on the "match_title_pattern" field.
func MatchTitlePatternHasPrefix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasPrefix(FieldMatchTitlePattern, v))
}

// MatchTitlePatternHasSuffix applies the HasSuffix predicate on the "match_title_pattern" field.
func MatchTitlePatternHasSuffix(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldHasSuffix(FieldMatchTitlePattern, v))
}

// MatchTitlePatternIsNil applies the IsNil predicate on the "match_title_pattern" field.
func MatchTitlePatternIsNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIsNull(FieldMatchTitlePattern))
}

// MatchTitlePatternNotNil applies the NotNil predicate on the "match_title_pattern" field.
func MatchTitlePatternNotNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotNull(FieldMatchTitlePattern))
}

// MatchTitlePatternEqualFold applies the EqualFold predicate on the "match_title_pattern" field.
func MatchTitlePatternEqualFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEqualFold(FieldMatchTitlePattern, v))
}

// MatchTitlePatternContainsFold applies the ContainsFold predicate on the "match_title_pattern" field.
func MatchTitlePatternContainsFold(v string) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldContainsFold(FieldMatchTitlePattern, v))
}

// TargetIsNil applies the IsNil predicate on the "target" field.
func TargetIsNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIsNull(FieldTarget))
}

// TargetNotNil applies the NotNil predicate on the "target" field.
func TargetNotNil() predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotNull(FieldTarget))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RoutingRule {
	return predicate.RoutingRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingRule) predicate.RoutingRule {
	return predicate.RoutingRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingRule) predicate.RoutingRule {
	return predicate.RoutingRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingRule) predicate.RoutingRule {
	return predicate.RoutingRule(sql.NotPredicates(p))
}
