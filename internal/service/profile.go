package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	trackingCodeLength   = 8
	trackingCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	trackingCodeAttempts = 5
)

var vanityCodePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// reservedCodes collide with site routes or would be misleading as referral links
var reservedCodes = map[string]struct{}{
	"admin": {}, "api": {}, "www": {}, "r": {}, "app": {}, "login": {}, "logout": {},
	"signup": {}, "register": {}, "dashboard": {}, "support": {}, "help": {},
	"health": {}, "metrics": {}, "swagger": {}, "static": {}, "media": {}, "taxpro": {},
}

// ProfileService handles accounts, login and referral codes
type ProfileService struct {
	repo      repository.ProfileRepositoryInterface
	tokens    TokenIssuer
	cache     ReferralCache
	validator *validator.Validate
	baseURL   string
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepositoryInterface, tokens TokenIssuer, cache ReferralCache, validator *validator.Validate, publicBaseURL string) *ProfileService {
	return &ProfileService{
		repo:      repo,
		tokens:    tokens,
		cache:     cache,
		validator: validator,
		baseURL:   strings.TrimRight(publicBaseURL, "/"),
	}
}

// RegisterRequest represents a self-service signup
type RegisterRequest struct {
	Email     string      `json:"email" validate:"required,email,max=255" example:"jane.doe@example.com"`
	Password  string      `json:"password" validate:"required,min=8,max=72" example:"s3cure-passw0rd"`
	FirstName string      `json:"first_name" validate:"required,max=100" example:"Jane"`
	LastName  string      `json:"last_name" validate:"required,max=100" example:"Doe"`
	Phone     string      `json:"phone,omitempty" validate:"omitempty,max=20" example:"+1 (408) 555-0100"`
	Role      models.Role `json:"role,omitempty" validate:"omitempty,oneof=client affiliate" example:"affiliate"`
}

// LoginRequest represents an email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jane.doe@example.com"`
	Password string `json:"password" validate:"required" example:"s3cure-passw0rd"`
}

// UpdateProfileRequest represents the editable fields of the caller's own profile
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// SetVanityCodeRequest represents the one-time vanity code choice
type SetVanityCodeRequest struct {
	Code string `json:"code" validate:"required,min=3,max=32" example:"jane-taxes"`
}

// ProfileResponse represents a profile as returned by the API
type ProfileResponse struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Phone        string      `json:"phone"`
	Role         models.Role `json:"role"`
	TrackingCode string      `json:"tracking_code"`
	VanityCode   string      `json:"vanity_code,omitempty"`
	ReferralLink string      `json:"referral_link"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// ProfileListResponse represents a paginated list of profiles
type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expires_in"`
	Profile   ProfileResponse `json:"profile"`
}

// Register creates a client or affiliate profile and signs the caller in
func (s *ProfileService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := NormalizeEmail(req.Email)
	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProfileExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	code, err := s.newTrackingCode()
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        NormalizePhone(req.Phone),
		Role:         role,
		TrackingCode: code,
		IsActive:     true,
	}
	profile.CreatedBy = email

	if err := s.repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"profile_id": profile.ID,
		"role":       profile.Role,
	}).Info("Profile registered")

	return s.authResponse(profile)
}

// Login verifies credentials and issues a token. Unknown, inactive and wrong-password
// attempts all fail the same way.
func (s *ProfileService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.repo.GetByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if !profile.IsActive || !auth.CheckPassword(profile.PasswordHash, req.Password) {
		logger.WithContext(ctx).WithField("profile_id", profile.ID).Warn("Rejected login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(profile)
}

// GetByID retrieves a profile by ID
func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(profile), nil
}

// Account loads the stored profile behind a token so the auth middleware sees current role and status
func (s *ProfileService) Account(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.get(id)
}

// UpdateMe updates the caller's own name and phone
func (s *ProfileService) UpdateMe(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.get(id)
	if err != nil {
		return nil, err
	}

	profile.FirstName = strings.TrimSpace(req.FirstName)
	profile.LastName = strings.TrimSpace(req.LastName)
	profile.Phone = NormalizePhone(req.Phone)
	profile.UpdatedBy = profile.Email

	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.toResponse(profile), nil
}

// SetVanityCode assigns the caller's vanity code. It can be set only once.
func (s *ProfileService) SetVanityCode(ctx context.Context, id uuid.UUID, req *SetVanityCodeRequest) (*ProfileResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	code := strings.ToLower(strings.TrimSpace(req.Code))
	if err := ValidateVanityCode(code); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if profile.VanityCode != nil {
		return nil, apperrors.ErrVanityCodeAlreadySet
	}

	taken, err := s.repo.CodeExists(code)
	if err != nil {
		return nil, fmt.Errorf("failed to check vanity code: %w", err)
	}
	if taken {
		return nil, apperrors.ErrVanityCodeTaken
	}

	updated, err := s.repo.SetVanityCode(id, code)
	if err != nil {
		return nil, fmt.Errorf("failed to set vanity code: %w", err)
	}
	if !updated {
		// lost a race with a concurrent request for the same profile
		return nil, apperrors.ErrVanityCodeAlreadySet
	}

	if err := s.cache.Invalidate(ctx, code); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate referral code cache")
	}

	profile.VanityCode = &code
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"profile_id":  id,
		"vanity_code": code,
	}).Info("Vanity code set")

	return s.toResponse(profile), nil
}

// List returns profiles, optionally filtered by role
func (s *ProfileService) List(ctx context.Context, role models.Role, page, pageSize int) (*ProfileListResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	p := NewPagination(page, pageSize)
	profiles, total, err := s.repo.GetAll(role, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	out := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		out[i] = *s.toResponse(&profiles[i])
	}

	return &ProfileListResponse{
		Profiles: out,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// SetRole changes a profile's role
func (s *ProfileService) SetRole(ctx context.Context, id uuid.UUID, role models.Role) (*ProfileResponse, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	profile, err := s.get(id)
	if err != nil {
		return nil, err
	}

	profile.Role = role
	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile role: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"profile_id": id,
		"role":       role,
	}).Info("Profile role changed")
	return s.toResponse(profile), nil
}

// SetActive enables or disables a profile. Disabled profiles cannot log in and their codes stop resolving.
func (s *ProfileService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*ProfileResponse, error) {
	profile, err := s.get(id)
	if err != nil {
		return nil, err
	}

	profile.IsActive = active
	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	for _, code := range []string{profile.TrackingCode, profile.ReferralCode()} {
		if err := s.cache.Invalidate(ctx, code); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate referral code cache")
		}
	}
	return s.toResponse(profile), nil
}

// ReferralLink builds the public referral URL for a profile
func (s *ProfileService) ReferralLink(profile *models.Profile) string {
	return fmt.Sprintf("%s/r/%s", s.baseURL, profile.ReferralCode())
}

// ValidateVanityCode checks the format and reserved words of a lower-cased vanity code
func ValidateVanityCode(code string) error {
	if len(code) < 3 || len(code) > 32 {
		return apperrors.NewValidationError("code", "must be between 3 and 32 characters")
	}
	if !vanityCodePattern.MatchString(code) {
		return apperrors.NewValidationError("code", "may contain only lowercase letters, digits and inner hyphens")
	}
	if strings.Contains(code, "--") {
		return apperrors.NewValidationError("code", "may not contain consecutive hyphens")
	}
	if _, reserved := reservedCodes[code]; reserved {
		return apperrors.NewValidationError("code", "is reserved")
	}
	return nil
}

func (s *ProfileService) get(id uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) newTrackingCode() (string, error) {
	for i := 0; i < trackingCodeAttempts; i++ {
		code, err := randomCode(trackingCodeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate tracking code: %w", err)
		}
		exists, err := s.repo.CodeExists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique tracking code after %d attempts", trackingCodeAttempts)
}

func randomCode(n int) (string, error) {
	max := big.NewInt(int64(len(trackingCodeAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = trackingCodeAlphabet[idx.Int64()]
	}
	return string(b), nil
}

func (s *ProfileService) authResponse(profile *models.Profile) (*AuthResponse, error) {
	token, err := s.tokens.GenerateJWT(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.TokenTTL().Seconds()),
		Profile:   *s.toResponse(profile),
	}, nil
}

func (s *ProfileService) toResponse(profile *models.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:           profile.ID,
		Email:        profile.Email,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Phone:        profile.Phone,
		Role:         profile.Role,
		TrackingCode: profile.TrackingCode,
		ReferralLink: s.ReferralLink(profile),
		IsActive:     profile.IsActive,
		CreatedAt:    formatTime(profile.CreatedAt),
		UpdatedAt:    formatTime(profile.UpdatedAt),
	}
	if profile.VanityCode != nil {
		resp.VanityCode = *profile.VanityCode
	}
	return resp
}
