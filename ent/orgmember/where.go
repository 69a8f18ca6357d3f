// Code generated by ent, DO NOT EDIT.

package orgmember

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldOrgID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldUserID, v))
}

// SlackUserID applies equality check predicate on the "slack_user_id" field. It's identical to SlackUserIDEQ.
func SlackUserID(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldSlackUserID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldCreatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContainsFold(FieldOrgID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContainsFold(FieldUserID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldRole, vs...))
}

// SlackUserIDEQ applies the EQ predicate on the "slack_user_id" field.
func SlackUserIDEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldSlackUserID, v))
}

// SlackUserIDNEQ applies the NEQ predicate on the "slack_user_id" field.
func SlackUserIDNEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldSlackUserID, v))
}

// SlackUserIDIn applies the In predicate on the "slack_user_id" field.
func SlackUserIDIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldSlackUserID, vs...))
}

// SlackUserIDNotIn applies the NotIn predicate on the "slack_user_id" field.
func SlackUserIDNotIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldSlackUserID, vs...))
}

// SlackUserIDGT applies the GT predicate on the "slack_user_id" field.
func SlackUserIDGT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGT(FieldSlackUserID, v))
}

// SlackUserIDGTE applies the GTE predicate on the "slack_user_id" field.
func SlackUserIDGTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGTE(FieldSlackUserID, v))
}

// SlackUserIDLT applies the LT predicate on the "slack_user_id" field.
func SlackUserIDLT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLT(FieldSlackUserID, v))
}

// SlackUserIDLTE applies the LTE predicate on the "slack_user_id" field.
func SlackUserIDLTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLTE(FieldSlackUserID, v))
}

// SlackUserIDContains applies the Contains predicate on the "slack_user_id" field.
func SlackUserIDContains(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContains(FieldSlackUserID, v))
}

// SlackUserIDHasPrefix applies the HasPrefix predicate on the "slack_user_id" field.
func SlackUserIDHasPrefix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasPrefix(FieldSlackUserID, v))
}

// SlackUserIDHasSuffix applies the HasSuffix predicate on the "slack_user_id" field.
func SlackUserIDHasSuffix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasSuffix(FieldSlackUserID, v))
}

// SlackUserIDIsNil applies the IsNil predicate on the "slack_user_id" field.
func SlackUserIDIsNil() predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIsNull(FieldSlackUserID))
}

// SlackUserIDNotNil applies the NotNil predicate on the "slack_user_id" field.
func SlackUserIDNotNil() predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotNull(FieldSlackUserID))
}

// SlackUserIDEqualFold applies the EqualFold predicate on the "slack_user_id" field.
func SlackUserIDEqualFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEqualFold(FieldSlackUserID, v))
}

// SlackUserIDContainsFold applies the ContainsFold predicate on the "slack_user_id" field.
func SlackUserIDContainsFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContainsFold(FieldSlackUserID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldContainsFold(FieldEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OrgMember {
	return predicate.OrgMember(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrgMember) predicate.OrgMember {
	return predicate.OrgMember(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrgMember) predicate.OrgMember {
	return predicate.OrgMember(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrgMember) predicate.OrgMember {
	return predicate.OrgMember(sql.NotPredicates(p))
}
