// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stridehq/cadenza/ent/botdeployment"
	"github.com/stridehq/cadenza/ent/inappnotification"
	"github.com/stridehq/cadenza/ent/notificationinteraction"
	"github.com/stridehq/cadenza/ent/notificationqueueitem"
	"github.com/stridehq/cadenza/ent/oauthconnection"
	"github.com/stridehq/cadenza/ent/orgmember"
	"github.com/stridehq/cadenza/ent/recording"
	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/ent/retryjob"
	"github.com/stridehq/cadenza/ent/routingrule"
	"github.com/stridehq/cadenza/ent/schema"
	"github.com/stridehq/cadenza/ent/sequenceexecution"
	"github.com/stridehq/cadenza/ent/slackworkspace"
	"github.com/stridehq/cadenza/ent/usermetrics"
	"github.com/stridehq/cadenza/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	botdeploymentFields := schema.BotDeployment{}.Fields()
	_ = botdeploymentFields
	// botdeploymentDescVersion is the schema descriptor for version field.
	botdeploymentDescVersion := botdeploymentFields[11].Descriptor()
	// botdeployment.DefaultVersion holds the default value on creation for the version field.
	botdeployment.DefaultVersion = botdeploymentDescVersion.Default.(int)
	// botdeploymentDescCreatedAt is the schema descriptor for created_at field.
	botdeploymentDescCreatedAt := botdeploymentFields[12].Descriptor()
	// botdeployment.DefaultCreatedAt holds the default value on creation for the created_at field.
	botdeployment.DefaultCreatedAt = botdeploymentDescCreatedAt.Default.(func() time.Time)
	// botdeploymentDescUpdatedAt is the schema descriptor for updated_at field.
	botdeploymentDescUpdatedAt := botdeploymentFields[13].Descriptor()
	// botdeployment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	botdeployment.DefaultUpdatedAt = botdeploymentDescUpdatedAt.Default.(func() time.Time)
	// botdeployment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	botdeployment.UpdateDefaultUpdatedAt = botdeploymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	inappnotificationFields := schema.InAppNotification{}.Fields()
	_ = inappnotificationFields
	// inappnotificationDescCreatedAt is the schema descriptor for created_at field.
	inappnotificationDescCreatedAt := inappnotificationFields[8].Descriptor()
	// inappnotification.DefaultCreatedAt holds the default value on creation for the created_at field.
	inappnotification.DefaultCreatedAt = inappnotificationDescCreatedAt.Default.(func() time.Time)
	notificationinteractionFields := schema.NotificationInteraction{}.Fields()
	_ = notificationinteractionFields
	// notificationinteractionDescPriority is the schema descriptor for priority field.
	notificationinteractionDescPriority := notificationinteractionFields[4].Descriptor()
	// notificationinteraction.DefaultPriority holds the default value on creation for the priority field.
	notificationinteraction.DefaultPriority = notificationinteractionDescPriority.Default.(string)
	notificationqueueitemFields := schema.NotificationQueueItem{}.Fields()
	_ = notificationqueueitemFields
	// notificationqueueitemDescAttemptCount is the schema descriptor for attempt_count field.
	notificationqueueitemDescAttemptCount := notificationqueueitemFields[11].Descriptor()
	// notificationqueueitem.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	notificationqueueitem.DefaultAttemptCount = notificationqueueitemDescAttemptCount.Default.(int)
	// notificationqueueitemDescMaxAttempts is the schema descriptor for max_attempts field.
	notificationqueueitemDescMaxAttempts := notificationqueueitemFields[12].Descriptor()
	// notificationqueueitem.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	notificationqueueitem.DefaultMaxAttempts = notificationqueueitemDescMaxAttempts.Default.(int)
	// notificationqueueitemDescCreatedAt is the schema descriptor for created_at field.
	notificationqueueitemDescCreatedAt := notificationqueueitemFields[17].Descriptor()
	// notificationqueueitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationqueueitem.DefaultCreatedAt = notificationqueueitemDescCreatedAt.Default.(func() time.Time)
	// notificationqueueitemDescUpdatedAt is the schema descriptor for updated_at field.
	notificationqueueitemDescUpdatedAt := notificationqueueitemFields[18].Descriptor()
	// notificationqueueitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationqueueitem.DefaultUpdatedAt = notificationqueueitemDescUpdatedAt.Default.(func() time.Time)
	// notificationqueueitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationqueueitem.UpdateDefaultUpdatedAt = notificationqueueitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	oauthconnectionFields := schema.OAuthConnection{}.Fields()
	_ = oauthconnectionFields
	// oauthconnectionDescTokenType is the schema descriptor for token_type field.
	oauthconnectionDescTokenType := oauthconnectionFields[5].Descriptor()
	// oauthconnection.DefaultTokenType holds the default value on creation for the token_type field.
	oauthconnection.DefaultTokenType = oauthconnectionDescTokenType.Default.(string)
	// oauthconnectionDescCreatedAt is the schema descriptor for created_at field.
	oauthconnectionDescCreatedAt := oauthconnectionFields[9].Descriptor()
	// oauthconnection.DefaultCreatedAt holds the default value on creation for the created_at field.
	oauthconnection.DefaultCreatedAt = oauthconnectionDescCreatedAt.Default.(func() time.Time)
	// oauthconnectionDescUpdatedAt is the schema descriptor for updated_at field.
	oauthconnectionDescUpdatedAt := oauthconnectionFields[10].Descriptor()
	// oauthconnection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	oauthconnection.DefaultUpdatedAt = oauthconnectionDescUpdatedAt.Default.(func() time.Time)
	// oauthconnection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	oauthconnection.UpdateDefaultUpdatedAt = oauthconnectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	orgmemberFields := schema.OrgMember{}.Fields()
	_ = orgmemberFields
	// orgmemberDescCreatedAt is the schema descriptor for created_at field.
	orgmemberDescCreatedAt := orgmemberFields[6].Descriptor()
	// orgmember.DefaultCreatedAt holds the default value on creation for the created_at field.
	orgmember.DefaultCreatedAt = orgmemberDescCreatedAt.Default.(func() time.Time)
	recordingFields := schema.Recording{}.Fields()
	_ = recordingFields
	// recordingDescMediaUploadRetryCount is the schema descriptor for media_upload_retry_count field.
	recordingDescMediaUploadRetryCount := recordingFields[11].Descriptor()
	// recording.DefaultMediaUploadRetryCount holds the default value on creation for the media_upload_retry_count field.
	recording.DefaultMediaUploadRetryCount = recordingDescMediaUploadRetryCount.Default.(int)
	// recordingDescTranscriptFetchAttempts is the schema descriptor for transcript_fetch_attempts field.
	recordingDescTranscriptFetchAttempts := recordingFields[15].Descriptor()
	// recording.DefaultTranscriptFetchAttempts holds the default value on creation for the transcript_fetch_attempts field.
	recording.DefaultTranscriptFetchAttempts = recordingDescTranscriptFetchAttempts.Default.(int)
	// recordingDescCreatedAt is the schema descriptor for created_at field.
	recordingDescCreatedAt := recordingFields[18].Descriptor()
	// recording.DefaultCreatedAt holds the default value on creation for the created_at field.
	recording.DefaultCreatedAt = recordingDescCreatedAt.Default.(func() time.Time)
	// recordingDescUpdatedAt is the schema descriptor for updated_at field.
	recordingDescUpdatedAt := recordingFields[19].Descriptor()
	// recording.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recording.DefaultUpdatedAt = recordingDescUpdatedAt.Default.(func() time.Time)
	// recording.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recording.UpdateDefaultUpdatedAt = recordingDescUpdatedAt.UpdateDefault.(func() time.Time)
	recordingruleFields := schema.RecordingRule{}.Fields()
	_ = recordingruleFields
	// recordingruleDescPriority is the schema descriptor for priority field.
	recordingruleDescPriority := recordingruleFields[3].Descriptor()
	// recordingrule.DefaultPriority holds the default value on creation for the priority field.
	recordingrule.DefaultPriority = recordingruleDescPriority.Default.(int)
	// recordingruleDescEnabled is the schema descriptor for enabled field.
	recordingruleDescEnabled := recordingruleFields[4].Descriptor()
	// recordingrule.DefaultEnabled holds the default value on creation for the enabled field.
	recordingrule.DefaultEnabled = recordingruleDescEnabled.Default.(bool)
	// recordingruleDescTestMode is the schema descriptor for test_mode field.
	recordingruleDescTestMode := recordingruleFields[5].Descriptor()
	// recordingrule.DefaultTestMode holds the default value on creation for the test_mode field.
	recordingrule.DefaultTestMode = recordingruleDescTestMode.Default.(bool)
	// recordingruleDescCreatedAt is the schema descriptor for created_at field.
	recordingruleDescCreatedAt := recordingruleFields[13].Descriptor()
	// recordingrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	recordingrule.DefaultCreatedAt = recordingruleDescCreatedAt.Default.(func() time.Time)
	// recordingruleDescUpdatedAt is the schema descriptor for updated_at field.
	recordingruleDescUpdatedAt := recordingruleFields[14].Descriptor()
	// recordingrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recordingrule.DefaultUpdatedAt = recordingruleDescUpdatedAt.Default.(func() time.Time)
	// recordingrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recordingrule.UpdateDefaultUpdatedAt = recordingruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	retryjobFields := schema.RetryJob{}.Fields()
	_ = retryjobFields
	// retryjobDescAttempts is the schema descriptor for attempts field.
	retryjobDescAttempts := retryjobFields[4].Descriptor()
	// retryjob.DefaultAttempts holds the default value on creation for the attempts field.
	retryjob.DefaultAttempts = retryjobDescAttempts.Default.(int)
	// retryjobDescMaxAttempts is the schema descriptor for max_attempts field.
	retryjobDescMaxAttempts := retryjobFields[5].Descriptor()
	// retryjob.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	retryjob.DefaultMaxAttempts = retryjobDescMaxAttempts.Default.(int)
	// retryjobDescBackoffBaseSeconds is the schema descriptor for backoff_base_seconds field.
	retryjobDescBackoffBaseSeconds := retryjobFields[6].Descriptor()
	// retryjob.DefaultBackoffBaseSeconds holds the default value on creation for the backoff_base_seconds field.
	retryjob.DefaultBackoffBaseSeconds = retryjobDescBackoffBaseSeconds.Default.(int)
	// retryjobDescBackoffCapSeconds is the schema descriptor for backoff_cap_seconds field.
	retryjobDescBackoffCapSeconds := retryjobFields[7].Descriptor()
	// retryjob.DefaultBackoffCapSeconds holds the default value on creation for the backoff_cap_seconds field.
	retryjob.DefaultBackoffCapSeconds = retryjobDescBackoffCapSeconds.Default.(int)
	// retryjobDescCreatedAt is the schema descriptor for created_at field.
	retryjobDescCreatedAt := retryjobFields[8].Descriptor()
	// retryjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	retryjob.DefaultCreatedAt = retryjobDescCreatedAt.Default.(func() time.Time)
	routingruleFields := schema.RoutingRule{}.Fields()
	_ = routingruleFields
	// routingruleDescPriority is the schema descriptor for priority field.
	routingruleDescPriority := routingruleFields[3].Descriptor()
	// routingrule.DefaultPriority holds the default value on creation for the priority field.
	routingrule.DefaultPriority = routingruleDescPriority.Default.(int)
	// routingruleDescEnabled is the schema descriptor for enabled field.
	routingruleDescEnabled := routingruleFields[4].Descriptor()
	// routingrule.DefaultEnabled holds the default value on creation for the enabled field.
	routingrule.DefaultEnabled = routingruleDescEnabled.Default.(bool)
	// routingruleDescTestMode is the schema descriptor for test_mode field.
	routingruleDescTestMode := routingruleFields[5].Descriptor()
	// routingrule.DefaultTestMode holds the default value on creation for the test_mode field.
	routingrule.DefaultTestMode = routingruleDescTestMode.Default.(bool)
	// routingruleDescCreatedAt is the schema descriptor for created_at field.
	routingruleDescCreatedAt := routingruleFields[11].Descriptor()
	// routingrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	routingrule.DefaultCreatedAt = routingruleDescCreatedAt.Default.(func() time.Time)
	// routingruleDescUpdatedAt is the schema descriptor for updated_at field.
	routingruleDescUpdatedAt := routingruleFields[12].Descriptor()
	// routingrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	routingrule.DefaultUpdatedAt = routingruleDescUpdatedAt.Default.(func() time.Time)
	// routingrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	routingrule.UpdateDefaultUpdatedAt = routingruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	sequenceexecutionFields := schema.SequenceExecution{}.Fields()
	_ = sequenceexecutionFields
	// sequenceexecutionDescIsSimulation is the schema descriptor for is_simulation field.
	sequenceexecutionDescIsSimulation := sequenceexecutionFields[9].Descriptor()
	// sequenceexecution.DefaultIsSimulation holds the default value on creation for the is_simulation field.
	sequenceexecution.DefaultIsSimulation = sequenceexecutionDescIsSimulation.Default.(bool)
	// sequenceexecutionDescStartedAt is the schema descriptor for started_at field.
	sequenceexecutionDescStartedAt := sequenceexecutionFields[10].Descriptor()
	// sequenceexecution.DefaultStartedAt holds the default value on creation for the started_at field.
	sequenceexecution.DefaultStartedAt = sequenceexecutionDescStartedAt.Default.(func() time.Time)
	slackworkspaceFields := schema.SlackWorkspace{}.Fields()
	_ = slackworkspaceFields
	// slackworkspaceDescCreatedAt is the schema descriptor for created_at field.
	slackworkspaceDescCreatedAt := slackworkspaceFields[5].Descriptor()
	// slackworkspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	slackworkspace.DefaultCreatedAt = slackworkspaceDescCreatedAt.Default.(func() time.Time)
	// slackworkspaceDescUpdatedAt is the schema descriptor for updated_at field.
	slackworkspaceDescUpdatedAt := slackworkspaceFields[6].Descriptor()
	// slackworkspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slackworkspace.DefaultUpdatedAt = slackworkspaceDescUpdatedAt.Default.(func() time.Time)
	// slackworkspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slackworkspace.UpdateDefaultUpdatedAt = slackworkspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	usermetricsFields := schema.UserMetrics{}.Fields()
	_ = usermetricsFields
	// usermetricsDescNotificationFatigueLevel is the schema descriptor for notification_fatigue_level field.
	usermetricsDescNotificationFatigueLevel := usermetricsFields[6].Descriptor()
	// usermetrics.DefaultNotificationFatigueLevel holds the default value on creation for the notification_fatigue_level field.
	usermetrics.DefaultNotificationFatigueLevel = usermetricsDescNotificationFatigueLevel.Default.(int)
	// usermetricsDescOverallEngagementScore is the schema descriptor for overall_engagement_score field.
	usermetricsDescOverallEngagementScore := usermetricsFields[7].Descriptor()
	// usermetrics.DefaultOverallEngagementScore holds the default value on creation for the overall_engagement_score field.
	usermetrics.DefaultOverallEngagementScore = usermetricsDescOverallEngagementScore.Default.(int)
	// usermetricsDescNotificationsSinceLastFeedback is the schema descriptor for notifications_since_last_feedback field.
	usermetricsDescNotificationsSinceLastFeedback := usermetricsFields[8].Descriptor()
	// usermetrics.DefaultNotificationsSinceLastFeedback holds the default value on creation for the notifications_since_last_feedback field.
	usermetrics.DefaultNotificationsSinceLastFeedback = usermetricsDescNotificationsSinceLastFeedback.Default.(int)
	// usermetricsDescUpdatedAt is the schema descriptor for updated_at field.
	usermetricsDescUpdatedAt := usermetricsFields[10].Descriptor()
	// usermetrics.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usermetrics.DefaultUpdatedAt = usermetricsDescUpdatedAt.Default.(func() time.Time)
	// usermetrics.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usermetrics.UpdateDefaultUpdatedAt = usermetricsDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[9].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
}
