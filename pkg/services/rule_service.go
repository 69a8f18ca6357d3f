package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/stridehq/cadenza/ent"
	"github.com/stridehq/cadenza/ent/recordingrule"
	"github.com/stridehq/cadenza/ent/routingrule"
	"github.com/stridehq/cadenza/pkg/models"
)

// RuleService manages the two declarative rule sets: recording rules
// (should this meeting be recorded) and routing rules (where does this
// error event file a ticket). Evaluation lives in pkg/recording and
// pkg/routing; this service owns storage and validation.
type RuleService struct {
	client *ent.Client
}

// NewRuleService creates a new RuleService
func NewRuleService(client *ent.Client) *RuleService {
	return &RuleService{client: client}
}

// ─────────────────────────────────────────────────────────────────────
// Recording rules
// ─────────────────────────────────────────────────────────────────────

// CreateRecordingRule validates and stores a recording rule
func (s *RuleService) CreateRecordingRule(httpCtx context.Context, req models.CreateRecordingRuleRequest) (*ent.RecordingRule, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.MinAttendees != nil && *req.MinAttendees < 0 {
		return nil, NewValidationError("min_attendees", "must not be negative")
	}
	if req.MaxAttendees != nil && *req.MaxAttendees < 0 {
		return nil, NewValidationError("max_attendees", "must not be negative")
	}
	if req.MinAttendees != nil && req.MaxAttendees != nil && *req.MinAttendees > *req.MaxAttendees {
		return nil, NewValidationError("max_attendees", "must not be less than min_attendees")
	}

	domainMode := recordingrule.DomainModeAll
	if req.DomainMode != "" {
		domainMode = recordingrule.DomainMode(req.DomainMode)
		if err := recordingrule.DomainModeValidator(domainMode); err != nil {
			return nil, NewValidationError("domain_mode", fmt.Sprintf("invalid: %q", req.DomainMode))
		}
	}
	if domainMode == recordingrule.DomainModeSpecificDomains && len(req.SpecificDomains) == 0 {
		return nil, NewValidationError("specific_domains", "required when domain_mode is specific_domains")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.RecordingRule.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetName(req.Name).
		SetPriority(req.Priority).
		SetTestMode(req.TestMode).
		SetDomainMode(domainMode)
	if req.Enabled != nil {
		create = create.SetEnabled(*req.Enabled)
	}
	if len(req.TitleExcludeKeywords) > 0 {
		create = create.SetTitleExcludeKeywords(req.TitleExcludeKeywords)
	}
	if len(req.TitleIncludeKeywords) > 0 {
		create = create.SetTitleIncludeKeywords(req.TitleIncludeKeywords)
	}
	if req.MinAttendees != nil {
		create = create.SetMinAttendees(*req.MinAttendees)
	}
	if req.MaxAttendees != nil {
		create = create.SetMaxAttendees(*req.MaxAttendees)
	}
	if len(req.SpecificDomains) > 0 {
		create = create.SetSpecificDomains(req.SpecificDomains)
	}
	if req.Target != nil {
		create = create.SetTarget(req.Target.ToMap())
	}

	rule, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording rule: %w", err)
	}
	return rule, nil
}

// GetRecordingRule retrieves a recording rule by ID
func (s *RuleService) GetRecordingRule(ctx context.Context, ruleID string) (*ent.RecordingRule, error) {
	rule, err := s.client.RecordingRule.Get(ctx, ruleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recording rule: %w", err)
	}
	return rule, nil
}

// ListRecordingRules returns an org's enabled rules in evaluation order:
// priority descending, then oldest first for stable ties
func (s *RuleService) ListRecordingRules(ctx context.Context, orgID string, includeDisabled bool) ([]*ent.RecordingRule, error) {
	query := s.client.RecordingRule.Query().
		Where(recordingrule.OrgIDEQ(orgID))
	if !includeDisabled {
		query = query.Where(recordingrule.EnabledEQ(true))
	}

	rules, err := query.
		Order(
			ent.Desc(recordingrule.FieldPriority),
			ent.Asc(recordingrule.FieldCreatedAt),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recording rules: %w", err)
	}
	return rules, nil
}

// SetRecordingRuleEnabled flips a rule on or off
func (s *RuleService) SetRecordingRuleEnabled(ctx context.Context, ruleID string, enabled bool) (*ent.RecordingRule, error) {
	rule, err := s.client.RecordingRule.UpdateOneID(ruleID).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update recording rule: %w", err)
	}
	return rule, nil
}

// DeleteRecordingRule removes a rule
func (s *RuleService) DeleteRecordingRule(ctx context.Context, ruleID string) error {
	err := s.client.RecordingRule.DeleteOneID(ruleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete recording rule: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────
// Routing rules
// ─────────────────────────────────────────────────────────────────────

// CreateRoutingRule validates and stores a routing rule. Regex patterns
// must compile; broken patterns are rejected here rather than failing
// every evaluation later.
func (s *RuleService) CreateRoutingRule(httpCtx context.Context, req models.CreateRoutingRuleRequest) (*ent.RoutingRule, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("org_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Target == nil || req.Target.ProjectID == "" {
		return nil, NewValidationError("target", "project_id is required")
	}
	if req.MatchReleasePattern != "" {
		if _, err := regexp.Compile(req.MatchReleasePattern); err != nil {
			return nil, NewValidationError("match_release_pattern", fmt.Sprintf("invalid regex: %v", err))
		}
	}
	if req.MatchTitlePattern != "" {
		if _, err := regexp.Compile(req.MatchTitlePattern); err != nil {
			return nil, NewValidationError("match_title_pattern", fmt.Sprintf("invalid regex: %v", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.RoutingRule.Create().
		SetID(uuid.New().String()).
		SetOrgID(req.OrgID).
		SetName(req.Name).
		SetPriority(req.Priority).
		SetTestMode(req.TestMode).
		SetTarget(req.Target.ToMap())
	if req.Enabled != nil {
		create = create.SetEnabled(*req.Enabled)
	}
	if req.MatchLevel != "" {
		create = create.SetMatchLevel(req.MatchLevel)
	}
	if req.MatchEnvironment != "" {
		create = create.SetMatchEnvironment(req.MatchEnvironment)
	}
	if req.MatchReleasePattern != "" {
		create = create.SetMatchReleasePattern(req.MatchReleasePattern)
	}
	if req.MatchTitlePattern != "" {
		create = create.SetMatchTitlePattern(req.MatchTitlePattern)
	}

	rule, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing rule: %w", err)
	}
	return rule, nil
}

// GetRoutingRule retrieves a routing rule by ID
func (s *RuleService) GetRoutingRule(ctx context.Context, ruleID string) (*ent.RoutingRule, error) {
	rule, err := s.client.RoutingRule.Get(ctx, ruleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get routing rule: %w", err)
	}
	return rule, nil
}

// ListRoutingRules returns an org's enabled rules in evaluation order:
// priority ascending, then oldest first for stable ties
func (s *RuleService) ListRoutingRules(ctx context.Context, orgID string, includeDisabled bool) ([]*ent.RoutingRule, error) {
	query := s.client.RoutingRule.Query().
		Where(routingrule.OrgIDEQ(orgID))
	if !includeDisabled {
		query = query.Where(routingrule.EnabledEQ(true))
	}

	rules, err := query.
		Order(
			ent.Asc(routingrule.FieldPriority),
			ent.Asc(routingrule.FieldCreatedAt),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list routing rules: %w", err)
	}
	return rules, nil
}

// SetRoutingRuleEnabled flips a rule on or off
func (s *RuleService) SetRoutingRuleEnabled(ctx context.Context, ruleID string, enabled bool) (*ent.RoutingRule, error) {
	rule, err := s.client.RoutingRule.UpdateOneID(ruleID).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update routing rule: %w", err)
	}
	return rule, nil
}

// DeleteRoutingRule removes a rule
func (s *RuleService) DeleteRoutingRule(ctx context.Context, ruleID string) error {
	err := s.client.RoutingRule.DeleteOneID(ruleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete routing rule: %w", err)
	}
	return nil
}
