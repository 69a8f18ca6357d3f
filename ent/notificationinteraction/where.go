// Code generated by ent, DO NOT EDIT.

package notificationinteraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldUserID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldOrgID, v))
}

// NotificationType applies equality check predicate on the "notification_type" field. It's identical to NotificationTypeEQ.
func NotificationType(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldNotificationType, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldPriority, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredVia applies equality check predicate on the "delivered_via" field. It's identical to DeliveredViaEQ.
func DeliveredVia(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldDeliveredVia, v))
}

// OpenedAt applies equality check predicate on the "opened_at" field. It's identical to OpenedAtEQ.
func OpenedAt(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldOpenedAt, v))
}

// ClickedAt applies equality check predicate on the "clicked_at" field. It's identical to ClickedAtEQ.
func ClickedAt(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldClickedAt, v))
}

// DismissedAt applies equality check predicate on the "dismissed_at" field. It's identical to DismissedAtEQ.
func DismissedAt(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldDismissedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContainsFold(FieldUserID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContainsFold(FieldOrgID, v))
}

// NotificationTypeEQ applies the EQ predicate on the "notification_type" field.
func NotificationTypeEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldNotificationType, v))
}

// NotificationTypeNEQ applies the NEQ predicate on the "notification_type" field.
func NotificationTypeNEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldNotificationType, v))
}

// NotificationTypeIn applies the In predicate on the "notification_type" field.
func NotificationTypeIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldNotificationType, vs...))
}

// NotificationTypeNotIn applies the NotIn predicate on the "notification_type" field.
func NotificationTypeNotIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldNotificationType, vs...))
}

// NotificationTypeGT applies the GT predicate on the "notification_type" field.
func NotificationTypeGT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldNotificationType, v))
}

// NotificationTypeGTE applies the GTE predicate on the "notification_type" field.
func NotificationTypeGTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldNotificationType, v))
}

// NotificationTypeLT applies the LT predicate on the "notification_type" field.
func NotificationTypeLT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldNotificationType, v))
}

// NotificationTypeLTE applies the LTE predicate on the "notification_type" field.
func NotificationTypeLTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldNotificationType, v))
}

// NotificationTypeContains applies the Contains predicate on the "notification_type" field.
func NotificationTypeContains(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContains(FieldNotificationType, v))
}

// NotificationTypeHasPrefix applies the HasPrefix predicate on the "notification_type" field.
func NotificationTypeHasPrefix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasPrefix(FieldNotificationType, v))
}

// NotificationTypeHasSuffix applies the HasSuffix predicate on the "notification_type" field.
func NotificationTypeHasSuffix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasSuffix(FieldNotificationType, v))
}

// NotificationTypeEqualFold applies the EqualFold predicate on the "notification_type" field.
func NotificationTypeEqualFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEqualFold(FieldNotificationType, v))
}

// NotificationTypeContainsFold applies the ContainsFold predicate on the "notification_type" field.
func NotificationTypeContainsFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContainsFold(FieldNotificationType, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContainsFold(FieldPriority, v))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredViaEQ applies the EQ predicate on the "delivered_via" field.
func DeliveredViaEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldDeliveredVia, v))
}

// DeliveredViaNEQ applies the NEQ predicate on the "delivered_via" field.
func DeliveredViaNEQ(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldDeliveredVia, v))
}

// DeliveredViaIn applies the In predicate on the "delivered_via" field.
func DeliveredViaIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldDeliveredVia, vs...))
}

// DeliveredViaNotIn applies the NotIn predicate on the "delivered_via" field.
func DeliveredViaNotIn(vs ...string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldDeliveredVia, vs...))
}

// DeliveredViaGT applies the GT predicate on the "delivered_via" field.
func DeliveredViaGT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldDeliveredVia, v))
}

// DeliveredViaGTE applies the GTE predicate on the "delivered_via" field.
func DeliveredViaGTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldDeliveredVia, v))
}

// DeliveredViaLT applies the LT predicate on the "delivered_via" field.
func DeliveredViaLT(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldDeliveredVia, v))
}

// DeliveredViaLTE applies the LTE predicate on the "delivered_via" field.
func DeliveredViaLTE(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldDeliveredVia, v))
}

// DeliveredViaContains applies the Contains predicate on the "delivered_via" field.
func DeliveredViaContains(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContains(FieldDeliveredVia, v))
}

// DeliveredViaHasPrefix applies the HasPrefix predicate on the "delivered_via" field.
func DeliveredViaHasPrefix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasPrefix(FieldDeliveredVia, v))
}

// DeliveredViaHasSuffix applies the HasSuffix predicate on the "delivered_via" field.
func DeliveredViaHasSuffix(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldHasSuffix(FieldDeliveredVia, v))
}

// DeliveredViaEqualFold applies the EqualFold predicate on the "delivered_via" field.
func DeliveredViaEqualFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEqualFold(FieldDeliveredVia, v))
}

// DeliveredViaContainsFold applies the ContainsFold predicate on the "delivered_via" field.
func DeliveredViaContainsFold(v string) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldContainsFold(FieldDeliveredVia, v))
}

// OpenedAtEQ applies the EQ predicate on the "opened_at" field.
func OpenedAtEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldOpenedAt, v))
}

// OpenedAtNEQ applies the NEQ predicate on the "opened_at" field.
func OpenedAtNEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldOpenedAt, v))
}

// OpenedAtIn applies the In predicate on the "opened_at" field.
func OpenedAtIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldOpenedAt, vs...))
}

// OpenedAtNotIn applies the NotIn predicate on the "opened_at" field.
func OpenedAtNotIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldOpenedAt, vs...))
}

// OpenedAtGT applies the GT predicate on the "opened_at" field.
func OpenedAtGT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldOpenedAt, v))
}

// OpenedAtGTE applies the GTE predicate on the "opened_at" field.
func OpenedAtGTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldOpenedAt, v))
}

// OpenedAtLT applies the LT predicate on the "opened_at" field.
func OpenedAtLT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldOpenedAt, v))
}

// OpenedAtLTE applies the LTE predicate on the "opened_at" field.
func OpenedAtLTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldOpenedAt, v))
}

// OpenedAtIsNil applies the IsNil predicate on the "opened_at" field.
func OpenedAtIsNil() predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIsNull(FieldOpenedAt))
}

// OpenedAtNotNil applies the NotNil predicate on the "opened_at" field.
func OpenedAtNotNil() predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotNull(FieldOpenedAt))
}

// ClickedAtEQ applies the EQ predicate on the "clicked_at" field.
func ClickedAtEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldClickedAt, v))
}

// ClickedAtNEQ applies the NEQ predicate on the "clicked_at" field.
func ClickedAtNEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldClickedAt, v))
}

// ClickedAtIn applies the In predicate on the "clicked_at" field.
func ClickedAtIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldClickedAt, vs...))
}

// ClickedAtNotIn applies the NotIn predicate on the "clicked_at" field.
func ClickedAtNotIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldClickedAt, vs...))
}

// ClickedAtGT applies the GT predicate on the "clicked_at" field.
func ClickedAtGT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldClickedAt, v))
}

// ClickedAtGTE applies the GTE predicate on the "clicked_at" field.
func ClickedAtGTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldClickedAt, v))
}

// ClickedAtLT applies the LT predicate on the "clicked_at" field.
func ClickedAtLT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldClickedAt, v))
}

// ClickedAtLTE applies the LTE predicate on the "clicked_at" field.
func ClickedAtLTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldClickedAt, v))
}

// ClickedAtIsNil applies the IsNil predicate on the "clicked_at" field.
func ClickedAtIsNil() predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIsNull(FieldClickedAt))
}

// ClickedAtNotNil applies the NotNil predicate on the "clicked_at" field.
func ClickedAtNotNil() predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotNull(FieldClickedAt))
}

// DismissedAtEQ applies the EQ predicate on the "dismissed_at" field.
func DismissedAtEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldEQ(FieldDismissedAt, v))
}

// DismissedAtNEQ applies the NEQ predicate on the "dismissed_at" field.
func DismissedAtNEQ(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNEQ(FieldDismissedAt, v))
}

// DismissedAtIn applies the In predicate on the "dismissed_at" field.
func DismissedAtIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIn(FieldDismissedAt, vs...))
}

// DismissedAtNotIn applies the NotIn predicate on the "dismissed_at" field.
func DismissedAtNotIn(vs ...time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotIn(FieldDismissedAt, vs...))
}

// DismissedAtGT applies the GT predicate on the "dismissed_at" field.
func DismissedAtGT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGT(FieldDismissedAt, v))
}

// DismissedAtGTE applies the GTE predicate on the "dismissed_at" field.
func DismissedAtGTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldGTE(FieldDismissedAt, v))
}

// DismissedAtLT applies the LT predicate on the "dismissed_at" field.
func DismissedAtLT(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLT(FieldDismissedAt, v))
}

// DismissedAtLTE applies the LTE predicate on the "dismissed_at" field.
func DismissedAtLTE(v time.Time) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldLTE(FieldDismissedAt, v))
}

// DismissedAtIsNil applies the IsNil predicate on the "dismissed_at" field.
func DismissedAtIsNil() predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldIsNull(FieldDismissedAt))
}

// DismissedAtNotNil applies the NotNil predicate on the "dismissed_at" field.
func DismissedAtNotNil() predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.FieldNotNull(FieldDismissedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationInteraction) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationInteraction) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationInteraction) predicate.NotificationInteraction {
	return predicate.NotificationInteraction(sql.NotPredicates(p))
}
