package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/llm"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/repository"
	"taxpro-backend/internal/seo"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignService manages email campaigns to CRM audiences
type CampaignService struct {
	repo      repository.CampaignRepositoryInterface
	contacts  repository.CRMContactRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	generator ContentGenerator
	mailer    Mailer
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	repo repository.CampaignRepositoryInterface,
	contacts repository.CRMContactRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	generator ContentGenerator,
	mailer Mailer,
	m *metrics.Metrics,
	validator *validator.Validate,
) *CampaignService {
	return &CampaignService{
		repo:      repo,
		contacts:  contacts,
		profiles:  profiles,
		generator: generator,
		mailer:    mailer,
		metrics:   m,
		validator: validator,
	}
}

// CreateCampaignRequest represents a new campaign draft
type CreateCampaignRequest struct {
	Name     string                  `json:"name" validate:"required,max=200" example:"Spring filing reminder"`
	Audience models.CampaignAudience `json:"audience" validate:"required,oneof=all_contacts customers leads affiliates" example:"leads"`
	Subject  string                  `json:"subject,omitempty" validate:"max=200"`
	BodyHTML string                  `json:"body_html,omitempty" validate:"max=100000"`
}

// UpdateCampaignRequest represents edits to a draft
type UpdateCampaignRequest struct {
	Name     string                  `json:"name" validate:"required,max=200"`
	Audience models.CampaignAudience `json:"audience" validate:"required,oneof=all_contacts customers leads affiliates"`
	Subject  string                  `json:"subject,omitempty" validate:"max=200"`
	BodyHTML string                  `json:"body_html,omitempty" validate:"max=100000"`
}

// GenerateCampaignContentRequest describes what the generated email should say
type GenerateCampaignContentRequest struct {
	Brief string `json:"brief" validate:"required,max=2000" example:"Remind leads the filing deadline is April 15 and offer a free review"`
}

// CampaignResponse represents a campaign as returned by the API
type CampaignResponse struct {
	ID          uuid.UUID               `json:"id"`
	Name        string                  `json:"name"`
	Audience    models.CampaignAudience `json:"audience"`
	Subject     string                  `json:"subject"`
	BodyHTML    string                  `json:"body_html"`
	Status      models.CampaignStatus   `json:"status"`
	SentCount   int                     `json:"sent_count"`
	FailedCount int                     `json:"failed_count"`
	SentAt      string                  `json:"sent_at,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// CampaignListResponse represents a paginated list of campaigns
type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create stores a new draft
func (s *CampaignService) Create(ctx context.Context, req *CreateCampaignRequest, actor string) (*CampaignResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	c := &models.Campaign{
		Name:     strings.TrimSpace(req.Name),
		Audience: req.Audience,
		Subject:  seo.StripTags(req.Subject),
		BodyHTML: seo.SanitizeHTML(req.BodyHTML),
		Status:   models.CampaignStatusDraft,
	}
	c.CreatedBy = actor
	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return toCampaignResponse(c), nil
}

// List returns campaigns newest first
func (s *CampaignService) List(ctx context.Context, page, pageSize int) (*CampaignListResponse, error) {
	p := NewPagination(page, pageSize)
	rows, total, err := s.repo.GetAll(p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	out := make([]CampaignResponse, len(rows))
	for i := range rows {
		out[i] = *toCampaignResponse(&rows[i])
	}
	return &CampaignListResponse{
		Campaigns: out,
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}

// Get returns one campaign
func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*CampaignResponse, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// Update edits a draft
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, req *UpdateCampaignRequest, actor string) (*CampaignResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	c, err := s.getDraft(id)
	if err != nil {
		return nil, err
	}

	c.Name = strings.TrimSpace(req.Name)
	c.Audience = req.Audience
	c.Subject = seo.StripTags(req.Subject)
	c.BodyHTML = seo.SanitizeHTML(req.BodyHTML)
	c.UpdatedBy = actor
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return toCampaignResponse(c), nil
}

// Delete removes a draft
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getDraft(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// GenerateContent fills a draft's subject and body from a brief
func (s *CampaignService) GenerateContent(ctx context.Context, id uuid.UUID, req *GenerateCampaignContentRequest, actor string) (*CampaignResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	c, err := s.getDraft(id)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.GenerateJSON(ctx, seo.CampaignPrompt(string(c.Audience), req.Brief))
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign content: %w", err)
	}

	var content seo.CampaignContent
	if err := llm.DecodeJSON(raw, &content); err != nil {
		return nil, fmt.Errorf("failed to decode campaign content: %w", err)
	}
	subject := seo.StripTags(content.Subject)
	body := seo.SanitizeHTML(content.BodyHTML)
	if subject == "" || body == "" {
		return nil, apperrors.ErrEmptyGeneration
	}

	c.Subject = subject
	c.BodyHTML = body
	c.UpdatedBy = actor
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"campaign_id": c.ID,
		"model":       s.generator.Model(),
	}).Info("Campaign content generated")
	return toCampaignResponse(c), nil
}

// Send emails a draft to its audience. Recipients are sent to one at a time and individual
// failures are counted rather than aborting the run.
func (s *CampaignService) Send(ctx context.Context, id uuid.UUID, actor string) (*CampaignResponse, error) {
	c, err := s.getDraft(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.Subject) == "" || strings.TrimSpace(c.BodyHTML) == "" {
		return nil, apperrors.NewValidationError("body_html", "subject and body are required before sending")
	}

	claimed, err := s.repo.MarkSending(id)
	if err != nil {
		return nil, fmt.Errorf("failed to start campaign: %w", err)
	}
	if !claimed {
		return nil, apperrors.ErrCampaignNotDraft
	}
	c.Status = models.CampaignStatusSending

	log := logger.WithContext(ctx).WithField("campaign_id", c.ID)

	recipients, err := s.recipients(c.Audience)
	if err != nil {
		c.Status = models.CampaignStatusFailed
		c.UpdatedBy = actor
		if uerr := s.repo.Update(c); uerr != nil {
			log.WithError(uerr).Error("Failed to mark campaign failed")
		}
		return nil, fmt.Errorf("failed to resolve campaign audience: %w", err)
	}

	sent, failed := 0, 0
	for _, to := range recipients {
		if ctx.Err() != nil {
			failed += len(recipients) - sent - failed
			break
		}
		err := s.mailer.Send(ctx, to, c.Subject, c.BodyHTML)
		s.metrics.Notifications.WithLabelValues("campaign", metrics.Result(err)).Inc()
		if err != nil {
			failed++
			log.WithError(err).Debug("Campaign email failed")
			continue
		}
		sent++
	}

	now := time.Now()
	c.SentCount = sent
	c.FailedCount = failed
	c.SentAt = &now
	c.UpdatedBy = actor
	c.Status = models.CampaignStatusSent
	if sent == 0 && failed > 0 {
		c.Status = models.CampaignStatusFailed
	}
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to record campaign results: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"sent":   sent,
		"failed": failed,
	}).Info("Campaign sent")
	return toCampaignResponse(c), nil
}

func withoutEmails(emails, excluded []string) []string {
	if len(excluded) == 0 {
		return emails
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		skip[NormalizeEmail(e)] = struct{}{}
	}
	out := emails[:0]
	for _, e := range emails {
		if _, ok := skip[NormalizeEmail(e)]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// recipients returns the de-duplicated email addresses of an audience
func (s *CampaignService) recipients(audience models.CampaignAudience) ([]string, error) {
	var emails []string

	switch audience {
	case models.AudienceAffiliates:
		profiles, err := s.profiles.GetActiveByRole(models.RoleAffiliate)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			emails = append(emails, p.Email)
		}
		// affiliates who also opted out as CRM contacts stay opted out
		optedOut, err := s.contacts.UnsubscribedEmails(emails)
		if err != nil {
			return nil, err
		}
		emails = withoutEmails(emails, optedOut)
	default:
		var stages []models.ContactStage
		switch audience {
		case models.AudienceCustomers:
			stages = []models.ContactStage{models.ContactStageCustomer}
		case models.AudienceLeads:
			stages = []models.ContactStage{models.ContactStageLead}
		default:
			stages = []models.ContactStage{models.ContactStageLead, models.ContactStageCustomer}
		}
		contacts, err := s.contacts.GetSubscribedByStages(stages)
		if err != nil {
			return nil, err
		}
		for _, c := range contacts {
			emails = append(emails, c.Email)
		}
	}

	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = NormalizeEmail(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}

func (s *CampaignService) get(id uuid.UUID) (*models.Campaign, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

func (s *CampaignService) getDraft(id uuid.UUID) (*models.Campaign, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if c.Status != models.CampaignStatusDraft {
		return nil, apperrors.ErrCampaignNotDraft
	}
	return c, nil
}

func toCampaignResponse(c *models.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Audience:    c.Audience,
		Subject:     c.Subject,
		BodyHTML:    c.BodyHTML,
		Status:      c.Status,
		SentCount:   c.SentCount,
		FailedCount: c.FailedCount,
		SentAt:      formatTimePtr(c.SentAt),
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}
