package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/commission"
	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/export"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/notify"
	"taxpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommissionService computes referral commissions and manages their payout lifecycle
type CommissionService struct {
	repo      repository.CommissionRepositoryInterface
	leads     repository.LeadRepositoryInterface
	profiles  repository.ProfileRepositoryInterface
	tiers     commission.Table
	mailer    Mailer
	validator *validator.Validate
}

// NewCommissionService creates a new commission service
func NewCommissionService(
	repo repository.CommissionRepositoryInterface,
	leads repository.LeadRepositoryInterface,
	profiles repository.ProfileRepositoryInterface,
	tiers commission.Table,
	mailer Mailer,
	validator *validator.Validate,
) *CommissionService {
	if tiers == nil {
		tiers = commission.DefaultTable()
	}
	return &CommissionService{
		repo:      repo,
		leads:     leads,
		profiles:  profiles,
		tiers:     tiers,
		mailer:    mailer,
		validator: validator,
	}
}

// UpdateCommissionStatusRequest represents a payout lifecycle move
type UpdateCommissionStatusRequest struct {
	Status models.CommissionStatus `json:"status" validate:"required,oneof=approved paid void" example:"approved"`
}

// CommissionResponse represents a commission as returned by the API
type CommissionResponse struct {
	ID              uuid.UUID               `json:"id"`
	ReferrerID      uuid.UUID               `json:"referrer_id"`
	LeadID          uuid.UUID               `json:"lead_id"`
	BaseAmountCents int64                   `json:"base_amount_cents"`
	RateBPS         int                     `json:"rate_bps"`
	AmountCents     int64                   `json:"amount_cents"`
	Tier            string                  `json:"tier"`
	Status          models.CommissionStatus `json:"status"`
	PaidAt          string                  `json:"paid_at,omitempty"`
	CreatedAt       string                  `json:"created_at"`
}

// CommissionListResponse represents a paginated list of commissions
type CommissionListResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// CommissionSummary totals commission amounts by status
type CommissionSummary struct {
	PendingCents  int64 `json:"pending_cents"`
	ApprovedCents int64 `json:"approved_cents"`
	PaidCents     int64 `json:"paid_cents"`
	VoidCents     int64 `json:"void_cents"`
}

// CreateForConversion creates the commission owed for a converted lead. It returns the
// existing commission when one was already created, and nil when the lead earns none.
func (s *CommissionService) CreateForConversion(ctx context.Context, lead *models.Lead) (*models.Commission, error) {
	log := logger.WithContext(ctx).WithField("lead_id", lead.ID)

	if lead.ReferrerID == nil || lead.AttributionMethod == models.AttributionDirect {
		log.Debug("Direct lead, no commission")
		return nil, nil
	}
	if lead.FeeAmountCents <= 0 {
		return nil, apperrors.NewValidationError("fee_amount_cents", "lead has no fee")
	}

	existing, err := s.repo.GetByLeadID(lead.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing commission: %w", err)
	}

	referrer, err := s.profiles.GetByID(*lead.ReferrerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get referrer: %w", err)
	}

	converted, err := s.leads.CountConvertedByReferrer(referrer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversions: %w", err)
	}
	// the lead being converted is already counted
	prior := converted - 1
	if prior < 0 {
		prior = 0
	}

	tier, ok := s.tiers.Lookup(referrer.Role, prior)
	if !ok {
		log.WithField("role", referrer.Role).Debug("Referrer role earns no commission")
		return nil, nil
	}

	c := &models.Commission{
		ReferrerID:      referrer.ID,
		LeadID:          lead.ID,
		BaseAmountCents: lead.FeeAmountCents,
		RateBPS:         tier.RateBPS,
		AmountCents:     commission.Calculate(lead.FeeAmountCents, tier.RateBPS),
		Tier:            tier.Name,
		Status:          models.CommissionStatusPending,
	}
	if err := s.repo.Create(c); err != nil {
		// a concurrent conversion may have won the unique lead_id race
		if again, getErr := s.repo.GetByLeadID(lead.ID); getErr == nil {
			return again, nil
		}
		return nil, fmt.Errorf("failed to create commission: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"commission_id": c.ID,
		"tier":          c.Tier,
		"amount_cents":  c.AmountCents,
	}).Info("Commission created")
	return c, nil
}

// List returns commissions. Admins see all of them, everyone else sees their own.
func (s *CommissionService) List(ctx context.Context, who auth.Identity, status models.CommissionStatus, page, pageSize int) (*CommissionListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown commission status")
	}

	filter := repository.CommissionFilter{Status: status}
	if !who.IsAdmin() {
		id := who.ProfileID
		filter.ReferrerID = &id
	}

	p := NewPagination(page, pageSize)
	rows, total, err := s.repo.List(filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	out := make([]CommissionResponse, len(rows))
	for i := range rows {
		out[i] = *toCommissionResponse(&rows[i])
	}
	return &CommissionListResponse{
		Commissions: out,
		Total:       total,
		Page:        p.Page,
		PageSize:    p.PageSize,
	}, nil
}

// Get returns one commission if the caller owns it or is an admin
func (s *CommissionService) Get(ctx context.Context, who auth.Identity, id uuid.UUID) (*CommissionResponse, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if !who.IsAdmin() && c.ReferrerID != who.ProfileID {
		return nil, apperrors.ErrCommissionNotFound
	}
	return toCommissionResponse(c), nil
}

// UpdateStatus approves, pays or voids a commission. Approval emails the referrer.
func (s *CommissionService) UpdateStatus(ctx context.Context, id uuid.UUID, req *UpdateCommissionStatusRequest, actor string) (*CommissionResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("commission %s -> %s: %w", c.Status, req.Status, apperrors.ErrInvalidStatusTransition)
	}

	c.Status = req.Status
	c.UpdatedBy = actor
	if req.Status == models.CommissionStatusPaid {
		now := time.Now()
		c.PaidAt = &now
	}
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update commission: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"commission_id": c.ID,
		"status":        c.Status,
	})
	log.Info("Commission status updated")

	if c.Status == models.CommissionStatusApproved {
		s.notifyApproved(ctx, c)
	}
	return toCommissionResponse(c), nil
}

func (s *CommissionService) notifyApproved(ctx context.Context, c *models.Commission) {
	referrer, err := s.profiles.GetByID(c.ReferrerID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to load referrer for approval email")
		return
	}
	content := notify.CommissionApprovedEmail(referrer.FirstName, c.AmountCents)
	if err := s.mailer.Send(ctx, referrer.Email, content.Subject, content.Body); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to send commission approval email")
	}
}

// Summary totals commissions by status, for one referrer or (nil) for everyone
func (s *CommissionService) Summary(ctx context.Context, referrerID *uuid.UUID) (*CommissionSummary, error) {
	sums, err := s.repo.SumByStatus(referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum commissions: %w", err)
	}
	return &CommissionSummary{
		PendingCents:  sums[models.CommissionStatusPending],
		ApprovedCents: sums[models.CommissionStatusApproved],
		PaidCents:     sums[models.CommissionStatusPaid],
		VoidCents:     sums[models.CommissionStatusVoid],
	}, nil
}

// Export renders every commission with the given status (all when empty) as an xlsx workbook
func (s *CommissionService) Export(ctx context.Context, status models.CommissionStatus) ([]byte, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown commission status")
	}

	rows, _, err := s.repo.List(repository.CommissionFilter{Status: status}, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	referrers := make(map[uuid.UUID]*models.Profile)
	out := make([]export.CommissionRow, 0, len(rows))
	for _, c := range rows {
		referrer, ok := referrers[c.ReferrerID]
		if !ok {
			referrer, err = s.profiles.GetByID(c.ReferrerID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to get referrer: %w", err)
			}
			referrers[c.ReferrerID] = referrer
		}

		row := export.CommissionRow{
			ID:              c.ID.String(),
			LeadID:          c.LeadID.String(),
			Tier:            c.Tier,
			BaseAmountCents: c.BaseAmountCents,
			RateBPS:         c.RateBPS,
			AmountCents:     c.AmountCents,
			Status:          string(c.Status),
			CreatedAt:       c.CreatedAt,
			PaidAt:          c.PaidAt,
		}
		if referrer != nil {
			row.ReferrerName = referrer.FullName()
			row.ReferrerEmail = referrer.Email
		}
		out = append(out, row)
	}

	data, err := export.CommissionWorkbook(out)
	if err != nil {
		return nil, fmt.Errorf("failed to render commission workbook: %w", err)
	}

	logger.WithContext(ctx).WithField("rows", len(out)).Info("Commission export generated")
	return data, nil
}

func (s *CommissionService) get(id uuid.UUID) (*models.Commission, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommissionNotFound
		}
		return nil, fmt.Errorf("failed to get commission: %w", err)
	}
	return c, nil
}

func toCommissionResponse(c *models.Commission) *CommissionResponse {
	return &CommissionResponse{
		ID:              c.ID,
		ReferrerID:      c.ReferrerID,
		LeadID:          c.LeadID,
		BaseAmountCents: c.BaseAmountCents,
		RateBPS:         c.RateBPS,
		AmountCents:     c.AmountCents,
		Tier:            c.Tier,
		Status:          c.Status,
		PaidAt:          formatTimePtr(c.PaidAt),
		CreatedAt:       formatTime(c.CreatedAt),
	}
}
