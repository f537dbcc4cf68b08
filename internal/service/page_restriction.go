package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const wildcardSuffix = "/*"

// PageRestrictionService manages role rules for site paths and evaluates access to them
type PageRestrictionService struct {
	repo      repository.PageRestrictionRepositoryInterface
	validator *validator.Validate
}

// NewPageRestrictionService creates a new page restriction service
func NewPageRestrictionService(repo repository.PageRestrictionRepositoryInterface, validator *validator.Validate) *PageRestrictionService {
	return &PageRestrictionService{repo: repo, validator: validator}
}

// PageRestrictionRequest represents a restriction to create or replace
type PageRestrictionRequest struct {
	PathPattern  string        `json:"path_pattern" validate:"required,max=300,startswith=/" example:"/dashboard/*"`
	AllowedRoles []models.Role `json:"allowed_roles" validate:"required,min=1,dive,oneof=client affiliate tax_preparer admin" example:"affiliate,admin"`
	RedirectTo   string        `json:"redirect_to,omitempty" validate:"omitempty,max=300,startswith=/" example:"/login"`
	IsActive     *bool         `json:"is_active,omitempty"`
}

// PageRestrictionResponse represents a restriction as returned by the API
type PageRestrictionResponse struct {
	ID           uuid.UUID     `json:"id"`
	PathPattern  string        `json:"path_pattern"`
	AllowedRoles []models.Role `json:"allowed_roles"`
	RedirectTo   string        `json:"redirect_to,omitempty"`
	IsActive     bool          `json:"is_active"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

// AccessDecision is the result of checking a path for a role
type AccessDecision struct {
	Allowed        bool   `json:"allowed"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
	RedirectTo     string `json:"redirect_to,omitempty"`
}

// Create adds a restriction
func (s *PageRestrictionService) Create(ctx context.Context, req *PageRestrictionRequest, actor string) (*PageRestrictionResponse, error) {
	pattern, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByPattern(pattern)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing restriction: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPageRestrictionExists
	}

	r := &models.PageRestriction{
		PathPattern:  pattern,
		AllowedRoles: joinRoles(req.AllowedRoles),
		RedirectTo:   req.RedirectTo,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	r.CreatedBy = actor
	if err := s.repo.Create(r); err != nil {
		return nil, fmt.Errorf("failed to create restriction: %w", err)
	}

	logger.WithContext(ctx).WithField("pattern", pattern).Info("Page restriction created")
	return toPageRestrictionResponse(r), nil
}

// List returns every restriction
func (s *PageRestrictionService) List(ctx context.Context) ([]PageRestrictionResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list restrictions: %w", err)
	}
	out := make([]PageRestrictionResponse, len(rows))
	for i := range rows {
		out[i] = *toPageRestrictionResponse(&rows[i])
	}
	return out, nil
}

// Get returns one restriction
func (s *PageRestrictionService) Get(ctx context.Context, id uuid.UUID) (*PageRestrictionResponse, error) {
	r, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return toPageRestrictionResponse(r), nil
}

// Update replaces a restriction
func (s *PageRestrictionService) Update(ctx context.Context, id uuid.UUID, req *PageRestrictionRequest, actor string) (*PageRestrictionResponse, error) {
	pattern, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	r, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if pattern != r.PathPattern {
		other, err := s.repo.GetByPattern(pattern)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing restriction: %w", err)
		}
		if other != nil && other.ID != r.ID {
			return nil, apperrors.ErrPageRestrictionExists
		}
	}

	r.PathPattern = pattern
	r.AllowedRoles = joinRoles(req.AllowedRoles)
	r.RedirectTo = req.RedirectTo
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	r.UpdatedBy = actor
	if err := s.repo.Update(r); err != nil {
		return nil, fmt.Errorf("failed to update restriction: %w", err)
	}
	return toPageRestrictionResponse(r), nil
}

// Delete removes a restriction
func (s *PageRestrictionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete restriction: %w", err)
	}
	return nil
}

// Check decides whether a role (nil for anonymous visitors) may open a path. The most
// specific active rule decides; paths without a rule are open to everyone and admins are
// never blocked.
func (s *PageRestrictionService) Check(ctx context.Context, rawPath string, role *models.Role) (*AccessDecision, error) {
	p := NormalizePath(rawPath)

	rules, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load restrictions: %w", err)
	}

	var best *models.PageRestriction
	bestScore := -1
	for i := range rules {
		if score := MatchPattern(rules[i].PathPattern, p); score > bestScore {
			best = &rules[i]
			bestScore = score
		}
	}

	if best == nil {
		return &AccessDecision{Allowed: true}, nil
	}

	decision := &AccessDecision{MatchedPattern: best.PathPattern}
	switch {
	case role == nil:
	case *role == models.RoleAdmin:
		decision.Allowed = true
	default:
		for _, allowed := range best.Roles() {
			if allowed == *role {
				decision.Allowed = true
				break
			}
		}
	}
	if !decision.Allowed {
		decision.RedirectTo = best.RedirectTo
	}
	return decision, nil
}

// MatchPattern scores how specifically pattern matches a normalized path, or returns -1.
// An exact pattern outranks a wildcard with the same prefix.
func MatchPattern(pattern, p string) int {
	if strings.HasSuffix(pattern, wildcardSuffix) {
		base := strings.TrimSuffix(pattern, wildcardSuffix)
		if base == "" {
			return 0
		}
		if p == base || strings.HasPrefix(p, base+"/") {
			return 2 * len(base)
		}
		return -1
	}
	if p == NormalizePath(pattern) {
		return 2*len(p) + 1
	}
	return -1
}

// NormalizePath cleans a request path and drops query strings and trailing slashes
func NormalizePath(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return path.Clean(raw)
}

func (s *PageRestrictionService) validateRequest(req *PageRestrictionRequest) (string, error) {
	if err := validate(s.validator, req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	pattern := strings.TrimSpace(req.PathPattern)
	wildcard := strings.HasSuffix(pattern, wildcardSuffix)
	base := strings.TrimSuffix(pattern, wildcardSuffix)
	if strings.Contains(base, "*") {
		return "", apperrors.NewValidationError("path_pattern", "wildcards are only allowed as a trailing /*")
	}
	base = NormalizePath(base)
	if wildcard {
		if base == "/" {
			return wildcardSuffix, nil
		}
		return base + wildcardSuffix, nil
	}
	return base, nil
}

func (s *PageRestrictionService) get(id uuid.UUID) (*models.PageRestriction, error) {
	r, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPageRestrictionNotFound
		}
		return nil, fmt.Errorf("failed to get restriction: %w", err)
	}
	return r, nil
}

func joinRoles(roles []models.Role) string {
	seen := make(map[models.Role]struct{}, len(roles))
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

func toPageRestrictionResponse(r *models.PageRestriction) *PageRestrictionResponse {
	return &PageRestrictionResponse{
		ID:           r.ID,
		PathPattern:  r.PathPattern,
		AllowedRoles: r.Roles(),
		RedirectTo:   r.RedirectTo,
		IsActive:     r.IsActive,
		CreatedAt:    formatTime(r.CreatedAt),
		UpdatedAt:    formatTime(r.UpdatedAt),
	}
}
