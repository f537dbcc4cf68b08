package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttributionInput carries everything the attribution chain looks at
type AttributionInput struct {
	CookieCode string
	Email      string
	Phone      string
}

// Attribution is the outcome of the attribution chain
type Attribution struct {
	Method     models.AttributionMethod
	ReferrerID *uuid.UUID
	Code       string
	// ReferralID is set for email and phone matches so the referral can be linked to the lead
	ReferralID *uuid.UUID
	Referrer   *models.Profile
}

// Attribute credits a lead to a referrer. Cookie, email match and phone match are tried in
// that order and the first hit wins. A referrer whose own email equals the lead's is skipped.
func (s *LeadService) Attribute(ctx context.Context, in AttributionInput) (*Attribution, error) {
	email := NormalizeEmail(in.Email)
	phone := NormalizePhone(in.Phone)
	log := logger.WithContext(ctx)

	if code := strings.ToLower(strings.TrimSpace(in.CookieCode)); code != "" {
		profile, err := s.referrals.ResolveCode(ctx, code)
		switch {
		case err == nil && profile.Email != email:
			return &Attribution{
				Method:     models.AttributionCookie,
				ReferrerID: &profile.ID,
				Code:       code,
				Referrer:   profile,
			}, nil
		case err == nil:
			log.WithField("code", code).Info("Ignoring self-referral cookie")
		case apperrors.IsNotFound(err):
			log.WithField("code", code).Debug("Referral cookie does not resolve")
		default:
			return nil, err
		}
	}

	if email != "" {
		attr, err := s.matchReferral(email, email, models.AttributionEmailMatch, s.referralRepo.FindOldestByEmail)
		if err != nil || attr != nil {
			return attr, err
		}
	}

	if phone != "" {
		attr, err := s.matchReferral(phone, email, models.AttributionPhoneMatch, s.referralRepo.FindOldestByPhone)
		if err != nil || attr != nil {
			return attr, err
		}
	}

	return &Attribution{Method: models.AttributionDirect}, nil
}

func (s *LeadService) matchReferral(value, leadEmail string, method models.AttributionMethod, find func(string) (*models.Referral, error)) (*Attribution, error) {
	referral, err := find(value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to match referral by %s: %w", method, err)
	}

	referrer, err := s.profiles.GetByID(referral.ReferrerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referrer: %w", err)
	}
	if !referrer.IsActive || referrer.Email == leadEmail {
		return nil, nil
	}

	referralID := referral.ID
	return &Attribution{
		Method:     method,
		ReferrerID: &referrer.ID,
		Code:       referrer.ReferralCode(),
		ReferralID: &referralID,
		Referrer:   referrer,
	}, nil
}
