package config

// BuiltinConfig contains the sequence definitions shipped with the
// binary. Deployments extend or override them in cadenza.yaml; a
// user-defined sequence with the same key replaces the built-in one.
type BuiltinConfig struct {
	SequenceDefinitions map[string]SequenceConfig
}

// GetBuiltinConfig returns the built-in configuration
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		SequenceDefinitions: builtinSequences(),
	}
}

func builtinSequences() map[string]SequenceConfig {
	return map[string]SequenceConfig{
		"meeting_followup": {
			Description: "Summarize a finished meeting, draft the follow-up email, and stage CRM tasks",
			Steps: []StepConfig{
				{
					Order:     1,
					SkillKey:  "summarize_meeting",
					OutputKey: "summary",
					InputMapping: map[string]string{
						"transcript":    "${trigger.transcript}",
						"meeting_title": "${trigger.meeting_title}",
					},
					OnFailure: OnFailureStop,
				},
				{
					Order:     2,
					SkillKey:  "extract_action_items",
					OutputKey: "action_items",
					InputMapping: map[string]string{
						"transcript": "${trigger.transcript}",
						"summary":    "${outputs.summary.text}",
					},
					OnFailure: OnFailureContinue,
				},
				{
					Order:     3,
					SkillKey:  "draft_followup_email",
					OutputKey: "draft",
					InputMapping: map[string]string{
						"summary":      "${outputs.summary.text}",
						"action_items": "${outputs.action_items.items}",
						"recipient":    "${context.recipient_email}",
					},
					OnFailure:        OnFailureFallback,
					FallbackSkillKey: "draft_followup_template",
				},
				{
					Order:  4,
					Action: "create_crm_tasks",
					InputMapping: map[string]string{
						"items":    "${outputs.action_items.items}",
						"owner_id": "${context.user_id}",
					},
					OutputKey:        "crm_tasks",
					OnFailure:        OnFailureContinue,
					RequiresApproval: true,
				},
				{
					Order:  5,
					Action: "send_followup_email",
					InputMapping: map[string]string{
						"draft":     "${outputs.draft}",
						"recipient": "${context.recipient_email}",
					},
					OnFailure:        OnFailureStop,
					RequiresApproval: true,
				},
			},
		},
		"no_show_followup": {
			Description: "Draft and send a reschedule email after a meeting no-show",
			Steps: []StepConfig{
				{
					Order:     1,
					SkillKey:  "draft_reschedule_email",
					OutputKey: "draft",
					InputMapping: map[string]string{
						"meeting_title": "${trigger.meeting_title}",
						"recipient":     "${context.recipient_email}",
					},
					OnFailure: OnFailureStop,
				},
				{
					Order:  2,
					Action: "send_followup_email",
					InputMapping: map[string]string{
						"draft":     "${outputs.draft}",
						"recipient": "${context.recipient_email}",
					},
					OnFailure:        OnFailureStop,
					RequiresApproval: true,
				},
				{
					Order:  3,
					Action: "notify_owner",
					InputMapping: map[string]string{
						"user_id": "${context.user_id}",
						"message": "Reschedule email staged for ${trigger.meeting_title}",
					},
					OnFailure: OnFailureContinue,
				},
			},
		},
	}
}

// mergeSequences merges built-in and user-defined sequence definitions.
// User-defined sequences override built-in sequences with the same key.
func mergeSequences(builtin map[string]SequenceConfig, user map[string]SequenceConfig) map[string]*SequenceConfig {
	result := make(map[string]*SequenceConfig)

	for key, seq := range builtin {
		seqCopy := seq
		result[key] = &seqCopy
	}

	for key, userSeq := range user {
		seqCopy := userSeq
		result[key] = &seqCopy
	}

	return result
}
