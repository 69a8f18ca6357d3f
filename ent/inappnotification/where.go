// Code generated by ent, DO NOT EDIT.

package inappnotification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldUserID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldOrgID, v))
}

// NotificationType applies equality check predicate on the "notification_type" field. It's identical to NotificationTypeEQ.
func NotificationType(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldNotificationType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldBody, v))
}

// ReadAt applies equality check predicate on the "read_at" field. It's identical to ReadAtEQ.
func ReadAt(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldReadAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldUserID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldOrgID, v))
}

// NotificationTypeEQ applies the EQ predicate on the "notification_type" field.
func NotificationTypeEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldNotificationType, v))
}

// NotificationTypeNEQ applies the NEQ predicate on the "notification_type" field.
func NotificationTypeNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldNotificationType, v))
}

// NotificationTypeIn applies the In predicate on the "notification_type" field.
func NotificationTypeIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldNotificationType, vs...))
}

// NotificationTypeNotIn applies the NotIn predicate on the "notification_type" field.
func NotificationTypeNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldNotificationType, vs...))
}

// NotificationTypeGT applies the GT predicate on the "notification_type" field.
func NotificationTypeGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldNotificationType, v))
}

// NotificationTypeGTE applies the GTE predicate on the "notification_type" field.
func NotificationTypeGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldNotificationType, v))
}

// NotificationTypeLT applies the LT predicate on the "notification_type" field.
func NotificationTypeLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldNotificationType, v))
}

// NotificationTypeLTE applies the LTE predicate on the "notification_type" field.
func NotificationTypeLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldNotificationType, v))
}

// NotificationTypeContains applies the Contains predicate on the "notification_type" field.
func NotificationTypeContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldNotificationType, v))
}

// NotificationTypeHasPrefix applies the HasPrefix predicate on the "notification_type" field.
func NotificationTypeHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldNotificationType, v))
}

// NotificationTypeHasSuffix applies the HasSuffix predicate on the "notification_type" field.
func NotificationTypeHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldNotificationType, v))
}

// NotificationTypeEqualFold applies the EqualFold predicate on the "notification_type" field.
func NotificationTypeEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldNotificationType, v))
}

// NotificationTypeContainsFold applies the ContainsFold predicate on the "notification_type" field.
func NotificationTypeContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldNotificationType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldContainsFold(FieldBody, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotNull(FieldPayload))
}

// ReadAtEQ applies the EQ predicate on the "read_at" field.
func ReadAtEQ(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldReadAt, v))
}

// ReadAtNEQ applies the NEQ predicate on the "read_at" field.
func ReadAtNEQ(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldReadAt, v))
}

// ReadAtIn applies the In predicate on the "read_at" field.
func ReadAtIn(vs ...time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldReadAt, vs...))
}

// ReadAtNotIn applies the NotIn predicate on the "read_at" field.
func ReadAtNotIn(vs ...time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldReadAt, vs...))
}

// ReadAtGT applies the GT predicate on the "read_at" field.
func ReadAtGT(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldReadAt, v))
}

// ReadAtGTE applies the GTE predicate on the "read_at" field.
func ReadAtGTE(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldReadAt, v))
}

// ReadAtLT applies the LT predicate on the "read_at" field.
func ReadAtLT(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldReadAt, v))
}

// ReadAtLTE applies the LTE predicate on the "read_at" field.
func ReadAtLTE(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldReadAt, v))
}

// ReadAtIsNil applies the IsNil predicate on the "read_at" field.
func ReadAtIsNil() predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIsNull(FieldReadAt))
}

// ReadAtNotNil applies the NotNil predicate on the "read_at" field.
func ReadAtNotNil() predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotNull(FieldReadAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InAppNotification {
	return predicate.InAppNotification(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InAppNotification) predicate.InAppNotification {
	return predicate.InAppNotification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InAppNotification) predicate.InAppNotification {
	return predicate.InAppNotification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InAppNotification) predicate.InAppNotification {
	return predicate.InAppNotification(sql.NotPredicates(p))
}
