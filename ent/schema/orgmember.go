package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OrgMember holds the schema definition for the OrgMember entity.
// Backs role checks and the user→Slack-id resolution used by the slack_dm
// channel driver.
type OrgMember struct {
	ent.Schema
}

// Fields of the OrgMember.
func (OrgMember) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("member_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("user_id").
			Immutable(),

		field.Enum("role").
			Values("owner", "admin", "member").
			Default("member"),
		field.String("slack_user_id").
			Optional().
			Nillable(),
		field.String("email").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OrgMember.
func (OrgMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
