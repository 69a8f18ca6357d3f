// Code generated by ent, DO NOT EDIT.

package slackworkspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/stridehq/cadenza/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldOrgID, v))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldTeamID, v))
}

// BotToken applies equality check predicate on the "bot_token" field. It's identical to BotTokenEQ.
func BotToken(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldBotToken, v))
}

// DefaultChannelID applies equality check predicate on the "default_channel_id" field. It's identical to DefaultChannelIDEQ.
func DefaultChannelID(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldDefaultChannelID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContainsFold(FieldOrgID, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContainsFold(FieldTeamID, v))
}

// BotTokenEQ applies the EQ predicate on the "bot_token" field.
func BotTokenEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldBotToken, v))
}

// BotTokenNEQ applies the NEQ predicate on the "bot_token" field.
func BotTokenNEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldBotToken, v))
}

// BotTokenIn applies the In predicate on the "bot_token" field.
func BotTokenIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldBotToken, vs...))
}

// BotTokenNotIn applies the NotIn predicate on the "bot_token" field.
func BotTokenNotIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldBotToken, vs...))
}

// BotTokenGT applies the GT predicate on the "bot_token" field.
func BotTokenGT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldBotToken, v))
}

// BotTokenGTE applies the GTE predicate on the "bot_token" field.
func BotTokenGTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldBotToken, v))
}

// BotTokenLT applies the LT predicate on the "bot_token" field.
func BotTokenLT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldBotToken, v))
}

// BotTokenLTE applies the LTE predicate on the "bot_token" field.
func BotTokenLTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldBotToken, v))
}

// BotTokenContains applies the Contains predicate on the "bot_token" field.
func BotTokenContains(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContains(FieldBotToken, v))
}

// BotTokenHasPrefix applies the HasPrefix predicate on the "bot_token" field.
func BotTokenHasPrefix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasPrefix(FieldBotToken, v))
}

// BotTokenHasSuffix applies the HasSuffix predicate on the "bot_token" field.
func BotTokenHasSuffix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasSuffix(FieldBotToken, v))
}

// BotTokenEqualFold applies the EqualFold predicate on the "bot_token" field.
func BotTokenEqualFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEqualFold(FieldBotToken, v))
}

// BotTokenContainsFold applies the ContainsFold predicate on the "bot_token" field.
func BotTokenContainsFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContainsFold(FieldBotToken, v))
}

// DefaultChannelIDEQ applies the EQ predicate on the "default_channel_id" field.
func DefaultChannelIDEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldDefaultChannelID, v))
}

// DefaultChannelIDNEQ applies the NEQ predicate on the "default_channel_id" field.
func DefaultChannelIDNEQ(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldDefaultChannelID, v))
}

// DefaultChannelIDIn applies the In predicate on the "default_channel_id" field.
func DefaultChannelIDIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldDefaultChannelID, vs...))
}

// DefaultChannelIDNotIn applies the NotIn predicate on the "default_channel_id" field.
func DefaultChannelIDNotIn(vs ...string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldDefaultChannelID, vs...))
}

// DefaultChannelIDGT applies the GT predicate on the "default_channel_id" field.
func DefaultChannelIDGT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldDefaultChannelID, v))
}

// DefaultChannelIDGTE applies the GTE predicate on the "default_channel_id" field.
func DefaultChannelIDGTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldDefaultChannelID, v))
}

// DefaultChannelIDLT applies the LT predicate on the "default_channel_id" field.
func DefaultChannelIDLT(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldDefaultChannelID, v))
}

// DefaultChannelIDLTE applies the LTE predicate on the "default_channel_id" field.
func DefaultChannelIDLTE(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldDefaultChannelID, v))
}

// DefaultChannelIDContains applies the Contains predicate on the "default_channel_id" field.
func DefaultChannelIDContains(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContains(FieldDefaultChannelID, v))
}

// DefaultChannelIDHasPrefix applies the HasPrefix predicate on the "default_channel_id" field.
func DefaultChannelIDHasPrefix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasPrefix(FieldDefaultChannelID, v))
}

// DefaultChannelIDHasSuffix applies the HasSuffix predicate on the "default_channel_id" field.
func DefaultChannelIDHasSuffix(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldHasSuffix(FieldDefaultChannelID, v))
}

// DefaultChannelIDIsNil applies the IsNil predicate on the "default_channel_id" field.
func DefaultChannelIDIsNil() predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIsNull(FieldDefaultChannelID))
}

// DefaultChannelIDNotNil applies the NotNil predicate on the "default_channel_id" field.
func DefaultChannelIDNotNil() predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotNull(FieldDefaultChannelID))
}

// DefaultChannelIDEqualFold applies the EqualFold predicate on the "default_channel_id" field.
func DefaultChannelIDEqualFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEqualFold(FieldDefaultChannelID, v))
}

// DefaultChannelIDContainsFold applies the ContainsFold predicate on the "default_channel_id" field.
func DefaultChannelIDContainsFold(v string) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldContainsFold(FieldDefaultChannelID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SlackWorkspace) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SlackWorkspace) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SlackWorkspace) predicate.SlackWorkspace {
	return predicate.SlackWorkspace(sql.NotPredicates(p))
}
