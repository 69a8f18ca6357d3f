package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OAuthConnection holds the schema definition for the OAuthConnection
// entity. Per-tenant OAuth token pair for an external provider. Refreshed
// when the access token is within 5 minutes of expiry; a failed refresh
// parks the connection in reauth_required.
type OAuthConnection struct {
	ent.Schema
}

// Fields of the OAuthConnection.
func (OAuthConnection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("connection_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("provider").
			Immutable().
			Comment("e.g., 'fathom', 'hubspot'"),

		field.String("access_token").
			Sensitive(),
		field.String("refresh_token").
			Sensitive(),
		field.String("token_type").
			Default("Bearer"),
		field.Time("expires_at"),
		field.JSON("scopes", []string{}).
			Optional(),

		field.Enum("status").
			Values("active", "reauth_required").
			Default("active"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the OAuthConnection.
func (OAuthConnection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "provider").
			Unique(),
	}
}

// Annotations of the OAuthConnection.
func (OAuthConnection) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "oauth_connections"},
	}
}
