package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/notify"
	"taxpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadService captures leads, attributes them to referrers and moves them through the pipeline
type LeadService struct {
	leads        repository.LeadRepositoryInterface
	referralRepo repository.ReferralRepositoryInterface
	profiles     repository.ProfileRepositoryInterface
	referrals    CodeResolver
	crm          ContactSyncer
	commissions  CommissionCreator
	mailer       Mailer
	sms          SMSSender
	metrics      *metrics.Metrics
	validator    *validator.Validate
	adminEmail   string
}

// LeadServiceDeps groups the collaborators of LeadService
type LeadServiceDeps struct {
	Leads       repository.LeadRepositoryInterface
	Referrals   repository.ReferralRepositoryInterface
	Profiles    repository.ProfileRepositoryInterface
	Codes       CodeResolver
	CRM         ContactSyncer
	Commissions CommissionCreator
	Mailer      Mailer
	SMS         SMSSender
	Metrics     *metrics.Metrics
	Validator   *validator.Validate
	AdminEmail  string
}

// NewLeadService creates a new lead service
func NewLeadService(deps LeadServiceDeps) *LeadService {
	return &LeadService{
		leads:        deps.Leads,
		referralRepo: deps.Referrals,
		profiles:     deps.Profiles,
		referrals:    deps.Codes,
		crm:          deps.CRM,
		commissions:  deps.Commissions,
		mailer:       deps.Mailer,
		sms:          deps.SMS,
		metrics:      deps.Metrics,
		validator:    deps.Validator,
		adminEmail:   deps.AdminEmail,
	}
}

// CreateLeadRequest represents a public intake form submission
type CreateLeadRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100" example:"Maria"`
	LastName    string `json:"last_name" validate:"max=100" example:"Garcia"`
	Email       string `json:"email" validate:"required,email,max=255" example:"maria@example.com"`
	Phone       string `json:"phone" validate:"omitempty,max=20" example:"408-555-0142"`
	ServiceType string `json:"service_type" validate:"omitempty,max=100" example:"individual tax return"`
	City        string `json:"city" validate:"omitempty,max=100" example:"San Jose"`
	State       string `json:"state" validate:"omitempty,len=2,alpha" example:"CA"`
	Message     string `json:"message" validate:"max=5000"`
	Ref         string `json:"ref,omitempty" validate:"omitempty,max=32"`
	UTMSource   string `json:"utm_source,omitempty" validate:"max=100"`
	UTMMedium   string `json:"utm_medium,omitempty" validate:"max=100"`
	UTMCampaign string `json:"utm_campaign,omitempty" validate:"max=100"`
}

// UpdateLeadStatusRequest represents a pipeline move
type UpdateLeadStatusRequest struct {
	Status         models.LeadStatus `json:"status" validate:"required,oneof=new contacted qualified converted lost" example:"converted"`
	FeeAmountCents int64             `json:"fee_amount_cents,omitempty" validate:"gte=0" example:"25000"`
}

// AssignLeadRequest represents assigning a lead to a tax preparer
type AssignLeadRequest struct {
	PreparerID uuid.UUID `json:"preparer_id" validate:"required"`
}

// LeadListParams narrows a lead listing
type LeadListParams struct {
	Status       models.LeadStatus
	Search       string
	AssignedToMe bool
	Page         int
	PageSize     int
}

// LeadResponse represents a lead as returned by the API
type LeadResponse struct {
	ID                 uuid.UUID                `json:"id"`
	FirstName          string                   `json:"first_name"`
	LastName           string                   `json:"last_name"`
	Email              string                   `json:"email"`
	Phone              string                   `json:"phone"`
	ServiceType        string                   `json:"service_type"`
	City               string                   `json:"city"`
	State              string                   `json:"state"`
	Message            string                   `json:"message,omitempty"`
	Status             models.LeadStatus        `json:"status"`
	ReferrerID         *uuid.UUID               `json:"referrer_id,omitempty"`
	AttributionMethod  models.AttributionMethod `json:"attribution_method"`
	AttributionCode    string                   `json:"attribution_code,omitempty"`
	UTMSource          string                   `json:"utm_source,omitempty"`
	UTMMedium          string                   `json:"utm_medium,omitempty"`
	UTMCampaign        string                   `json:"utm_campaign,omitempty"`
	AssignedPreparerID *uuid.UUID               `json:"assigned_preparer_id,omitempty"`
	FeeAmountCents     int64                    `json:"fee_amount_cents"`
	ConvertedAt        string                   `json:"converted_at,omitempty"`
	CreatedAt          string                   `json:"created_at"`
	UpdatedAt          string                   `json:"updated_at"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Leads    []LeadResponse `json:"leads"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreateLead validates and stores an intake submission. The referral cookie takes priority
// over the form's ref field. CRM sync and notifications are best effort.
func (s *LeadService) CreateLead(ctx context.Context, req *CreateLeadRequest, cookieCode string) (*LeadResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	code := cookieCode
	if strings.TrimSpace(code) == "" {
		code = req.Ref
	}

	attr, err := s.Attribute(ctx, AttributionInput{CookieCode: code, Email: req.Email, Phone: req.Phone})
	if err != nil {
		return nil, fmt.Errorf("failed to attribute lead: %w", err)
	}

	lead := &models.Lead{
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Email:             NormalizeEmail(req.Email),
		Phone:             NormalizePhone(req.Phone),
		ServiceType:       strings.TrimSpace(req.ServiceType),
		City:              strings.TrimSpace(req.City),
		State:             strings.ToUpper(strings.TrimSpace(req.State)),
		Message:           strings.TrimSpace(req.Message),
		Status:            models.LeadStatusNew,
		ReferrerID:        attr.ReferrerID,
		AttributionMethod: attr.Method,
		AttributionCode:   attr.Code,
		UTMSource:         req.UTMSource,
		UTMMedium:         req.UTMMedium,
		UTMCampaign:       req.UTMCampaign,
	}
	lead.CreatedBy = lead.Email

	if err := s.leads.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id":     lead.ID,
		"attribution": lead.AttributionMethod,
	})
	log.Info("Lead created")
	s.metrics.LeadsCreated.WithLabelValues(string(lead.AttributionMethod)).Inc()

	if attr.ReferralID != nil {
		if err := s.referralRepo.LinkLead(*attr.ReferralID, lead.ID); err != nil {
			log.WithError(err).Warn("Failed to link referral to lead")
		}
	}

	if err := s.crm.UpsertFromLead(ctx, lead); err != nil {
		log.WithError(err).Warn("CRM sync failed")
	}

	s.notifyNewLead(ctx, lead, attr)

	return toLeadResponse(lead), nil
}

func (s *LeadService) notifyNewLead(ctx context.Context, lead *models.Lead, attr *Attribution) {
	log := logger.WithContext(ctx).WithField("lead_id", lead.ID)

	if s.adminEmail != "" {
		name := strings.TrimSpace(lead.FirstName + " " + lead.LastName)
		content := notify.NewLeadEmail(name, lead.Email, lead.Phone, lead.ServiceType, string(lead.AttributionMethod))
		err := s.mailer.Send(ctx, s.adminEmail, content.Subject, content.Body)
		s.metrics.Notifications.WithLabelValues("email", metrics.Result(err)).Inc()
		if err != nil {
			log.WithError(err).Warn("Failed to send new lead email")
		}
	}

	if attr.Referrer != nil && attr.Referrer.Phone != "" {
		msg := notify.ReferralLeadSMS(attr.Referrer.FirstName, lead.FirstName)
		err := s.sms.Send(ctx, attr.Referrer.Phone, msg)
		s.metrics.Notifications.WithLabelValues("sms", metrics.Result(err)).Inc()
		if err != nil {
			log.WithError(err).Warn("Failed to send referral SMS")
		}
	}
}

// List returns the leads visible to the caller. Staff see every lead, everyone else sees
// the leads credited to them.
func (s *LeadService) List(ctx context.Context, who auth.Identity, params LeadListParams) (*LeadListResponse, error) {
	if params.Status != "" && !params.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown lead status")
	}

	filter := repository.LeadFilter{
		Status: params.Status,
		Search: strings.TrimSpace(params.Search),
	}
	if !who.IsStaff() {
		id := who.ProfileID
		filter.ReferrerID = &id
	} else if params.AssignedToMe {
		id := who.ProfileID
		filter.AssignedPreparerID = &id
	}

	p := NewPagination(params.Page, params.PageSize)
	leads, total, err := s.leads.List(filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	out := make([]LeadResponse, len(leads))
	for i := range leads {
		out[i] = *toLeadResponse(&leads[i])
	}
	return &LeadListResponse{
		Leads:    out,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// Get returns one lead if the caller may see it
func (s *LeadService) Get(ctx context.Context, who auth.Identity, id uuid.UUID) (*LeadResponse, error) {
	lead, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if !canSeeLead(who, lead) {
		// hide existence from non-owners
		return nil, apperrors.ErrLeadNotFound
	}
	return toLeadResponse(lead), nil
}

// UpdateStatus moves a lead through the pipeline. Converting requires a fee and creates the
// referrer's commission.
func (s *LeadService) UpdateStatus(ctx context.Context, who auth.Identity, id uuid.UUID, req *UpdateLeadStatusRequest) (*LeadResponse, error) {
	if !who.IsStaff() {
		return nil, apperrors.ErrStaffOnly
	}
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lead, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Status == models.LeadStatusConverted {
		if err := s.convert(ctx, lead, req.FeeAmountCents, who.Email); err != nil {
			return nil, err
		}
		return toLeadResponse(lead), nil
	}

	if !lead.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("lead %s -> %s: %w", lead.Status, req.Status, apperrors.ErrInvalidStatusTransition)
	}

	lead.Status = req.Status
	lead.UpdatedBy = who.Email
	if req.FeeAmountCents > 0 {
		lead.FeeAmountCents = req.FeeAmountCents
	}
	if err := s.leads.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id": lead.ID,
		"status":  lead.Status,
	}).Info("Lead status updated")
	return toLeadResponse(lead), nil
}

// ConvertLead marks a lead converted after payment. Converting an already converted lead is a no-op.
func (s *LeadService) ConvertLead(ctx context.Context, id uuid.UUID, feeCents int64, actor string) (*LeadResponse, error) {
	lead, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if lead.Status == models.LeadStatusConverted {
		return toLeadResponse(lead), nil
	}
	if err := s.convert(ctx, lead, feeCents, actor); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

func (s *LeadService) convert(ctx context.Context, lead *models.Lead, feeCents int64, actor string) error {
	if !lead.Status.CanTransitionTo(models.LeadStatusConverted) {
		return fmt.Errorf("lead %s -> %s: %w", lead.Status, models.LeadStatusConverted, apperrors.ErrInvalidStatusTransition)
	}
	if feeCents > 0 {
		lead.FeeAmountCents = feeCents
	}
	if lead.FeeAmountCents <= 0 {
		return apperrors.NewValidationError("fee_amount_cents", "a fee is required to convert a lead")
	}

	now := time.Now()
	lead.Status = models.LeadStatusConverted
	lead.ConvertedAt = &now
	lead.UpdatedBy = actor
	if err := s.leads.Update(lead); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id":   lead.ID,
		"fee_cents": lead.FeeAmountCents,
	})
	log.Info("Lead converted")

	if _, err := s.commissions.CreateForConversion(ctx, lead); err != nil {
		// the lead stays converted; CreateForConversion is idempotent and can be replayed
		log.WithError(err).Error("Failed to create commission for converted lead")
	}
	if err := s.crm.MarkCustomer(ctx, lead.Email); err != nil {
		log.WithError(err).Warn("CRM stage update failed")
	}
	return nil
}

// AssignPreparer assigns a lead to a tax preparer
func (s *LeadService) AssignPreparer(ctx context.Context, id uuid.UUID, req *AssignLeadRequest) (*LeadResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	preparer, err := s.profiles.GetByID(req.PreparerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get preparer: %w", err)
	}
	if preparer.Role != models.RoleTaxPreparer || !preparer.IsActive {
		return nil, apperrors.ErrAssigneeNotPreparer
	}

	lead, err := s.get(id)
	if err != nil {
		return nil, err
	}

	lead.AssignedPreparerID = &preparer.ID
	if err := s.leads.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to assign lead: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"lead_id":     lead.ID,
		"preparer_id": preparer.ID,
	}).Info("Lead assigned")
	return toLeadResponse(lead), nil
}

func (s *LeadService) get(id uuid.UUID) (*models.Lead, error) {
	lead, err := s.leads.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

func canSeeLead(who auth.Identity, lead *models.Lead) bool {
	if who.IsStaff() {
		return true
	}
	return lead.ReferrerID != nil && *lead.ReferrerID == who.ProfileID
}

func toLeadResponse(l *models.Lead) *LeadResponse {
	return &LeadResponse{
		ID:                 l.ID,
		FirstName:          l.FirstName,
		LastName:           l.LastName,
		Email:              l.Email,
		Phone:              l.Phone,
		ServiceType:        l.ServiceType,
		City:               l.City,
		State:              l.State,
		Message:            l.Message,
		Status:             l.Status,
		ReferrerID:         l.ReferrerID,
		AttributionMethod:  l.AttributionMethod,
		AttributionCode:    l.AttributionCode,
		UTMSource:          l.UTMSource,
		UTMMedium:          l.UTMMedium,
		UTMCampaign:        l.UTMCampaign,
		AssignedPreparerID: l.AssignedPreparerID,
		FeeAmountCents:     l.FeeAmountCents,
		ConvertedAt:        formatTimePtr(l.ConvertedAt),
		CreatedAt:          formatTime(l.CreatedAt),
		UpdatedAt:          formatTime(l.UpdatedAt),
	}
}
