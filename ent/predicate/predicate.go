// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BotDeployment is the predicate function for botdeployment builders.
type BotDeployment func(*sql.Selector)

// InAppNotification is the predicate function for inappnotification builders.
type InAppNotification func(*sql.Selector)

// NotificationInteraction is the predicate function for notificationinteraction builders.
type NotificationInteraction func(*sql.Selector)

// NotificationQueueItem is the predicate function for notificationqueueitem builders.
type NotificationQueueItem func(*sql.Selector)

// OAuthConnection is the predicate function for oauthconnection builders.
type OAuthConnection func(*sql.Selector)

// OrgMember is the predicate function for orgmember builders.
type OrgMember func(*sql.Selector)

// Recording is the predicate function for recording builders.
type Recording func(*sql.Selector)

// RecordingRule is the predicate function for recordingrule builders.
type RecordingRule func(*sql.Selector)

// RetryJob is the predicate function for retryjob builders.
type RetryJob func(*sql.Selector)

// RoutingRule is the predicate function for routingrule builders.
type RoutingRule func(*sql.Selector)

// SequenceExecution is the predicate function for sequenceexecution builders.
type SequenceExecution func(*sql.Selector)

// SlackWorkspace is the predicate function for slackworkspace builders.
type SlackWorkspace func(*sql.Selector)

// UserMetrics is the predicate function for usermetrics builders.
type UserMetrics func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
