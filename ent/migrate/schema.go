// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BotDeploymentsColumns holds the columns for the "bot_deployments" table.
	BotDeploymentsColumns = []*schema.Column{
		{Name: "deployment_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "bot_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "joining", "in_meeting", "leaving", "completed", "failed", "cancelled"}, Default: "scheduled"},
		{Name: "status_history", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_join_time", Type: field.TypeTime},
		{Name: "actual_join_time", Type: field.TypeTime, Nullable: true},
		{Name: "leave_time", Type: field.TypeTime, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recording_id", Type: field.TypeString, Unique: true},
	}
	// BotDeploymentsTable holds the schema information for the "bot_deployments" table.
	BotDeploymentsTable = &schema.Table{
		Name:       "bot_deployments",
		Columns:    BotDeploymentsColumns,
		PrimaryKey: []*schema.Column{BotDeploymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bot_deployments_recordings_bot_deployment",
				Columns:    []*schema.Column{BotDeploymentsColumns[13]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "botdeployment_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{BotDeploymentsColumns[1], BotDeploymentsColumns[3]},
			},
			{
				Name:    "botdeployment_org_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BotDeploymentsColumns[1], BotDeploymentsColumns[11]},
			},
		},
	}
	// InAppNotificationsColumns holds the columns for the "in_app_notifications" table.
	InAppNotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InAppNotificationsTable holds the schema information for the "in_app_notifications" table.
	InAppNotificationsTable = &schema.Table{
		Name:       "in_app_notifications",
		Columns:    InAppNotificationsColumns,
		PrimaryKey: []*schema.Column{InAppNotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "inappnotification_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InAppNotificationsColumns[1], InAppNotificationsColumns[8]},
			},
			{
				Name:    "inappnotification_user_id_read_at",
				Unique:  false,
				Columns: []*schema.Column{InAppNotificationsColumns[1], InAppNotificationsColumns[7]},
			},
		},
	}
	// NotificationInteractionsColumns holds the columns for the "notification_interactions" table.
	NotificationInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "priority", Type: field.TypeString, Default: "normal"},
		{Name: "delivered_at", Type: field.TypeTime},
		{Name: "delivered_via", Type: field.TypeString},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "clicked_at", Type: field.TypeTime, Nullable: true},
		{Name: "dismissed_at", Type: field.TypeTime, Nullable: true},
	}
	// NotificationInteractionsTable holds the schema information for the "notification_interactions" table.
	NotificationInteractionsTable = &schema.Table{
		Name:       "notification_interactions",
		Columns:    NotificationInteractionsColumns,
		PrimaryKey: []*schema.Column{NotificationInteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationinteraction_user_id_delivered_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationInteractionsColumns[1], NotificationInteractionsColumns[5]},
			},
			{
				Name:    "notificationinteraction_org_id_delivered_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationInteractionsColumns[2], NotificationInteractionsColumns[5]},
			},
		},
	}
	// NotificationQueueItemsColumns holds the columns for the "notification_queue_items" table.
	NotificationQueueItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "notification_type", Type: field.TypeString},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"slack_dm", "slack_channel", "email", "in_app"}},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"urgent", "high", "normal", "low"}, Default: "normal"},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "optimal_send_time", Type: field.TypeTime, Nullable: true},
		{Name: "next_allowed_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "sent", "failed", "cancelled", "delayed"}, Default: "pending"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NotificationQueueItemsTable holds the schema information for the "notification_queue_items" table.
	NotificationQueueItemsTable = &schema.Table{
		Name:       "notification_queue_items",
		Columns:    NotificationQueueItemsColumns,
		PrimaryKey: []*schema.Column{NotificationQueueItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notificationqueueitem_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{NotificationQueueItemsColumns[10], NotificationQueueItemsColumns[7]},
			},
			{
				Name:    "notificationqueueitem_status_next_allowed_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationQueueItemsColumns[10], NotificationQueueItemsColumns[9]},
			},
			{
				Name:    "notificationqueueitem_status_locked_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationQueueItemsColumns[10], NotificationQueueItemsColumns[14]},
			},
			{
				Name:    "notificationqueueitem_user_id_status_sent_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationQueueItemsColumns[1], NotificationQueueItemsColumns[10], NotificationQueueItemsColumns[16]},
			},
			{
				Name:    "notificationqueueitem_org_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationQueueItemsColumns[2], NotificationQueueItemsColumns[17]},
			},
		},
	}
	// OauthConnectionsColumns holds the columns for the "oauth_connections" table.
	OauthConnectionsColumns = []*schema.Column{
		{Name: "connection_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString},
		{Name: "token_type", Type: field.TypeString, Default: "Bearer"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "scopes", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "reauth_required"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OauthConnectionsTable holds the schema information for the "oauth_connections" table.
	OauthConnectionsTable = &schema.Table{
		Name:       "oauth_connections",
		Columns:    OauthConnectionsColumns,
		PrimaryKey: []*schema.Column{OauthConnectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oauthconnection_org_id_provider",
				Unique:  true,
				Columns: []*schema.Column{OauthConnectionsColumns[1], OauthConnectionsColumns[2]},
			},
		},
	}
	// OrgMembersColumns holds the columns for the "org_members" table.
	OrgMembersColumns = []*schema.Column{
		{Name: "member_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "member"}, Default: "member"},
		{Name: "slack_user_id", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrgMembersTable holds the schema information for the "org_members" table.
	OrgMembersTable = &schema.Table{
		Name:       "org_members",
		Columns:    OrgMembersColumns,
		PrimaryKey: []*schema.Column{OrgMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orgmember_org_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{OrgMembersColumns[1], OrgMembersColumns[2]},
			},
			{
				Name:    "orgmember_user_id",
				Unique:  false,
				Columns: []*schema.Column{OrgMembersColumns[2]},
			},
		},
	}
	// RecordingsColumns holds the columns for the "recordings" table.
	RecordingsColumns = []*schema.Column{
		{Name: "recording_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "meeting_platform", Type: field.TypeString},
		{Name: "meeting_url", Type: field.TypeString},
		{Name: "calendar_event_id", Type: field.TypeString, Nullable: true},
		{Name: "provider_recording_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "bot_joining", "recording", "processing", "ready", "failed"}, Default: "pending"},
		{Name: "media_storage_url", Type: field.TypeString, Nullable: true},
		{Name: "media_storage_path", Type: field.TypeString, Nullable: true},
		{Name: "media_upload_status", Type: field.TypeEnum, Enums: []string{"not_started", "pending", "in_progress", "complete", "failed"}, Default: "not_started"},
		{Name: "media_upload_retry_count", Type: field.TypeInt, Default: 0},
		{Name: "media_upload_last_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "media_content_type", Type: field.TypeString, Nullable: true},
		{Name: "transcript", Type: field.TypeJSON, Nullable: true},
		{Name: "transcript_fetch_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_transcript_fetch_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecordingsTable holds the schema information for the "recordings" table.
	RecordingsTable = &schema.Table{
		Name:       "recordings",
		Columns:    RecordingsColumns,
		PrimaryKey: []*schema.Column{RecordingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recording_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[1], RecordingsColumns[7]},
			},
			{
				Name:    "recording_org_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[1], RecordingsColumns[2]},
			},
			{
				Name:    "recording_media_upload_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[10], RecordingsColumns[18]},
			},
			{
				Name:    "recording_provider_recording_id",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[6]},
			},
		},
	}
	// RecordingRulesColumns holds the columns for the "recording_rules" table.
	RecordingRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "test_mode", Type: field.TypeBool, Default: false},
		{Name: "title_exclude_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "title_include_keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "min_attendees", Type: field.TypeInt, Nullable: true},
		{Name: "max_attendees", Type: field.TypeInt, Nullable: true},
		{Name: "domain_mode", Type: field.TypeEnum, Enums: []string{"external_only", "internal_only", "specific_domains", "all"}, Default: "all"},
		{Name: "specific_domains", Type: field.TypeJSON, Nullable: true},
		{Name: "target", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RecordingRulesTable holds the schema information for the "recording_rules" table.
	RecordingRulesTable = &schema.Table{
		Name:       "recording_rules",
		Columns:    RecordingRulesColumns,
		PrimaryKey: []*schema.Column{RecordingRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recordingrule_org_id_enabled_priority",
				Unique:  false,
				Columns: []*schema.Column{RecordingRulesColumns[1], RecordingRulesColumns[4], RecordingRulesColumns[3]},
			},
		},
	}
	// RetryJobsColumns holds the columns for the "retry_jobs" table.
	RetryJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "job_type", Type: field.TypeString},
		{Name: "target_entity_ref", Type: field.TypeString},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "backoff_base_seconds", Type: field.TypeInt, Default: 60},
		{Name: "backoff_cap_seconds", Type: field.TypeInt, Default: 3600},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RetryJobsTable holds the schema information for the "retry_jobs" table.
	RetryJobsTable = &schema.Table{
		Name:       "retry_jobs",
		Columns:    RetryJobsColumns,
		PrimaryKey: []*schema.Column{RetryJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "retryjob_job_type_target_entity_ref",
				Unique:  true,
				Columns: []*schema.Column{RetryJobsColumns[1], RetryJobsColumns[2]},
			},
			{
				Name:    "retryjob_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{RetryJobsColumns[3]},
			},
		},
	}
	// RoutingRulesColumns holds the columns for the "routing_rules" table.
	RoutingRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "test_mode", Type: field.TypeBool, Default: false},
		{Name: "match_level", Type: field.TypeString, Nullable: true},
		{Name: "match_environment", Type: field.TypeString, Nullable: true},
		{Name: "match_release_pattern", Type: field.TypeString, Nullable: true},
		{Name: "match_title_pattern", Type: field.TypeString, Nullable: true},
		{Name: "target", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoutingRulesTable holds the schema information for the "routing_rules" table.
	RoutingRulesTable = &schema.Table{
		Name:       "routing_rules",
		Columns:    RoutingRulesColumns,
		PrimaryKey: []*schema.Column{RoutingRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "routingrule_org_id_enabled_priority",
				Unique:  false,
				Columns: []*schema.Column{RoutingRulesColumns[1], RoutingRulesColumns[4], RoutingRulesColumns[3]},
			},
		},
	}
	// SequenceExecutionsColumns holds the columns for the "sequence_executions" table.
	SequenceExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence_key", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "input_trigger", Type: field.TypeJSON, Nullable: true},
		{Name: "input_context", Type: field.TypeJSON, Nullable: true},
		{Name: "step_results", Type: field.TypeJSON, Nullable: true},
		{Name: "failed_step_index", Type: field.TypeInt, Nullable: true},
		{Name: "is_simulation", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// SequenceExecutionsTable holds the schema information for the "sequence_executions" table.
	SequenceExecutionsTable = &schema.Table{
		Name:       "sequence_executions",
		Columns:    SequenceExecutionsColumns,
		PrimaryKey: []*schema.Column{SequenceExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sequenceexecution_org_id_sequence_key_started_at",
				Unique:  false,
				Columns: []*schema.Column{SequenceExecutionsColumns[1], SequenceExecutionsColumns[3], SequenceExecutionsColumns[10]},
			},
			{
				Name:    "sequenceexecution_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{SequenceExecutionsColumns[1], SequenceExecutionsColumns[4]},
			},
		},
	}
	// SlackWorkspacesColumns holds the columns for the "slack_workspaces" table.
	SlackWorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString, Unique: true},
		{Name: "team_id", Type: field.TypeString},
		{Name: "bot_token", Type: field.TypeString},
		{Name: "default_channel_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SlackWorkspacesTable holds the schema information for the "slack_workspaces" table.
	SlackWorkspacesTable = &schema.Table{
		Name:       "slack_workspaces",
		Columns:    SlackWorkspacesColumns,
		PrimaryKey: []*schema.Column{SlackWorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slackworkspace_team_id",
				Unique:  false,
				Columns: []*schema.Column{SlackWorkspacesColumns[2]},
			},
		},
	}
	// UserMetricsColumns holds the columns for the "user_metrics" table.
	UserMetricsColumns = []*schema.Column{
		{Name: "metrics_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "last_app_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_slack_active_at", Type: field.TypeTime, Nullable: true},
		{Name: "preferred_notification_frequency", Type: field.TypeEnum, Enums: []string{"low", "moderate", "high"}, Default: "moderate"},
		{Name: "notification_fatigue_level", Type: field.TypeInt, Default: 0},
		{Name: "overall_engagement_score", Type: field.TypeInt, Default: 50},
		{Name: "notifications_since_last_feedback", Type: field.TypeInt, Default: 0},
		{Name: "last_feedback_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserMetricsTable holds the schema information for the "user_metrics" table.
	UserMetricsTable = &schema.Table{
		Name:       "user_metrics",
		Columns:    UserMetricsColumns,
		PrimaryKey: []*schema.Column{UserMetricsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usermetrics_user_id_org_id",
				Unique:  true,
				Columns: []*schema.Column{UserMetricsColumns[1], UserMetricsColumns[2]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "source", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "external_event_id", Type: field.TypeString, Nullable: true},
		{Name: "org_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "headers", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"received", "processing", "processed", "failed", "ignored"}, Default: "received"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_source_external_event_id",
				Unique:  true,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "external_event_id IS NOT NULL",
				},
			},
			{
				Name:    "webhookevent_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[7], WebhookEventsColumns[9]},
			},
			{
				Name:    "webhookevent_org_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[4], WebhookEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BotDeploymentsTable,
		InAppNotificationsTable,
		NotificationInteractionsTable,
		NotificationQueueItemsTable,
		OauthConnectionsTable,
		OrgMembersTable,
		RecordingsTable,
		RecordingRulesTable,
		RetryJobsTable,
		RoutingRulesTable,
		SequenceExecutionsTable,
		SlackWorkspacesTable,
		UserMetricsTable,
		WebhookEventsTable,
	}
)

func init() {
	BotDeploymentsTable.ForeignKeys[0].RefTable = RecordingsTable
	OauthConnectionsTable.Annotation = &entsql.Annotation{
		Table: "oauth_connections",
	}
	UserMetricsTable.Annotation = &entsql.Annotation{
		Table: "user_metrics",
	}
}
