package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/metrics"
	"taxpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferralService resolves referral codes, records link clicks and manages pre-registered referrals
type ReferralService struct {
	profiles    repository.ProfileRepositoryInterface
	referrals   repository.ReferralRepositoryInterface
	clicks      repository.ReferralClickRepositoryInterface
	leads       repository.LeadRepositoryInterface
	commissions repository.CommissionRepositoryInterface
	cache       ReferralCache
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewReferralService creates a new referral service
func NewReferralService(
	profiles repository.ProfileRepositoryInterface,
	referrals repository.ReferralRepositoryInterface,
	clicks repository.ReferralClickRepositoryInterface,
	leads repository.LeadRepositoryInterface,
	commissions repository.CommissionRepositoryInterface,
	cache ReferralCache,
	m *metrics.Metrics,
	validator *validator.Validate,
) *ReferralService {
	return &ReferralService{
		profiles:    profiles,
		referrals:   referrals,
		clicks:      clicks,
		leads:       leads,
		commissions: commissions,
		cache:       cache,
		metrics:     m,
		validator:   validator,
	}
}

// ClickInput describes one visit through a referral link
type ClickInput struct {
	Code        string
	IP          string
	UserAgent   string
	LandingPath string
}

// SubmitReferralRequest represents a friend pre-registered by a referrer
type SubmitReferralRequest struct {
	Name  string `json:"name" validate:"required,max=200" example:"John Smith"`
	Email string `json:"email" validate:"required_without=Phone,omitempty,email,max=255" example:"john.smith@example.com"`
	Phone string `json:"phone" validate:"required_without=Email,omitempty,max=20" example:"(408) 555-0199"`
}

// ReferralResponse represents a pre-registered referral
type ReferralResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReferredName  string     `json:"referred_name"`
	ReferredEmail string     `json:"referred_email"`
	ReferredPhone string     `json:"referred_phone"`
	LeadID        *uuid.UUID `json:"lead_id,omitempty"`
	CreatedAt     string     `json:"created_at"`
}

// ReferralListResponse represents a paginated list of referrals
type ReferralListResponse struct {
	Referrals []ReferralResponse `json:"referrals"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// ReferralStatsResponse summarizes a referrer's funnel and earnings
type ReferralStatsResponse struct {
	Clicks                  int64 `json:"clicks"`
	Referrals               int64 `json:"referrals"`
	Leads                   int64 `json:"leads"`
	ConvertedLeads          int64 `json:"converted_leads"`
	PendingCommissionCents  int64 `json:"pending_commission_cents"`
	ApprovedCommissionCents int64 `json:"approved_commission_cents"`
	PaidCommissionCents     int64 `json:"paid_commission_cents"`
}

// ResolveCode returns the active profile owning a vanity or tracking code
func (s *ReferralService) ResolveCode(ctx context.Context, code string) (*models.Profile, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, apperrors.ErrTrackingCodeNotFound
	}

	if id, ok, err := s.cache.GetProfileID(ctx, code); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Referral cache lookup failed")
	} else if ok {
		profile, err := s.profiles.GetByID(id)
		if err == nil && profile.IsActive {
			return profile, nil
		}
		// stale entry, fall through to the database
		_ = s.cache.Invalidate(ctx, code)
	}

	profile, err := s.profiles.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackingCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve referral code: %w", err)
	}

	if err := s.cache.SetProfileID(ctx, code, profile.ID); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to cache referral code")
	}
	return profile, nil
}

// RecordClick resolves the code of a referral link visit and stores the click once per
// visitor per window. It reports whether the code belongs to an active profile; recording
// failures are logged and never surface to the caller.
func (s *ReferralService) RecordClick(ctx context.Context, in ClickInput) bool {
	log := logger.WithContext(ctx).WithField("code", in.Code)

	profile, err := s.ResolveCode(ctx, in.Code)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			log.WithError(err).Error("Failed to resolve referral code")
		}
		s.metrics.ReferralClick.WithLabelValues("unknown_code").Inc()
		return false
	}

	code := strings.ToLower(strings.TrimSpace(in.Code))
	ipHash := HashIP(in.IP)

	first, err := s.cache.FirstClick(ctx, code, ipHash)
	if err != nil {
		log.WithError(err).Warn("Click dedupe failed, recording anyway")
		first = true
	}
	if !first {
		s.metrics.ReferralClick.WithLabelValues("duplicate").Inc()
		return true
	}

	click := &models.ReferralClick{
		ReferrerID:   profile.ID,
		TrackingCode: code,
		IPHash:       ipHash,
		UserAgent:    truncateString(in.UserAgent, 500),
		LandingPath:  truncateString(in.LandingPath, 500),
	}
	if err := s.clicks.Create(click); err != nil {
		log.WithError(err).Warn("Failed to record referral click")
		s.metrics.ReferralClick.WithLabelValues("error").Inc()
		return true
	}

	s.metrics.ReferralClick.WithLabelValues("recorded").Inc()
	return true
}

// SubmitReferral pre-registers a friend so a later lead with the same email or phone is credited
func (s *ReferralService) SubmitReferral(ctx context.Context, referrerID uuid.UUID, req *SubmitReferralRequest) (*ReferralResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := NormalizeEmail(req.Email)
	phone := NormalizePhone(req.Phone)
	if email == "" && phone == "" {
		return nil, apperrors.NewValidationError("phone", "must contain digits")
	}

	referrer, err := s.profiles.GetByID(referrerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get referrer: %w", err)
	}
	if email != "" && email == referrer.Email {
		return nil, apperrors.NewValidationError("email", "you cannot refer yourself")
	}

	if email != "" {
		existing, err := s.referrals.GetByReferrerAndEmail(referrerID, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing referral: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrReferralExists
		}
	}

	referral := &models.Referral{
		ReferrerID:    referrerID,
		ReferredName:  strings.TrimSpace(req.Name),
		ReferredEmail: email,
		ReferredPhone: phone,
	}
	referral.CreatedBy = referrer.Email

	if err := s.referrals.Create(referral); err != nil {
		// lost a race with a concurrent submission for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrReferralExists
		}
		return nil, fmt.Errorf("failed to create referral: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"referral_id": referral.ID,
		"referrer_id": referrerID,
	}).Info("Referral submitted")

	return toReferralResponse(referral), nil
}

// ListMine returns the referrals submitted by a referrer
func (s *ReferralService) ListMine(ctx context.Context, referrerID uuid.UUID, page, pageSize int) (*ReferralListResponse, error) {
	p := NewPagination(page, pageSize)
	referrals, total, err := s.referrals.GetByReferrer(referrerID, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}

	out := make([]ReferralResponse, len(referrals))
	for i := range referrals {
		out[i] = *toReferralResponse(&referrals[i])
	}
	return &ReferralListResponse{
		Referrals: out,
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}

// Stats summarizes clicks, referrals, leads and commissions for a referrer
func (s *ReferralService) Stats(ctx context.Context, referrerID uuid.UUID) (*ReferralStatsResponse, error) {
	clicks, err := s.clicks.CountByReferrer(referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count clicks: %w", err)
	}
	referrals, err := s.referrals.CountByReferrer(referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count referrals: %w", err)
	}
	leads, err := s.leads.CountByReferrer(referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	converted, err := s.leads.CountConvertedByReferrer(referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count converted leads: %w", err)
	}
	sums, err := s.commissions.SumByStatus(&referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum commissions: %w", err)
	}

	return &ReferralStatsResponse{
		Clicks:                  clicks,
		Referrals:               referrals,
		Leads:                   leads,
		ConvertedLeads:          converted,
		PendingCommissionCents:  sums[models.CommissionStatusPending],
		ApprovedCommissionCents: sums[models.CommissionStatusApproved],
		PaidCommissionCents:     sums[models.CommissionStatusPaid],
	}, nil
}

// HashIP returns the hex sha256 of a client IP so raw addresses are never stored
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(ip)))
	return hex.EncodeToString(sum[:])
}

// truncateString keeps at most n characters; columns are varchar(n), which counts characters
func truncateString(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

func toReferralResponse(r *models.Referral) *ReferralResponse {
	return &ReferralResponse{
		ID:            r.ID,
		ReferredName:  r.ReferredName,
		ReferredEmail: r.ReferredEmail,
		ReferredPhone: r.ReferredPhone,
		LeadID:        r.LeadID,
		CreatedAt:     formatTime(r.CreatedAt),
	}
}
