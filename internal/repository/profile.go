package repository

import (
	"errors"
	"strings"

	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// Ensure ProfileRepository implements ProfileRepositoryInterface
var _ ProfileRepositoryInterface = (*ProfileRepository)(nil)

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by its lower-cased email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByCode resolves an active profile by vanity code first, then tracking code
func (r *ProfileRepository) GetByCode(code string) (*models.Profile, error) {
	code = strings.ToLower(strings.TrimSpace(code))

	var profile models.Profile
	err := r.db.Where("vanity_code = ? AND is_active = ?", code, true).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.Where("tracking_code = ? AND is_active = ?", code, true).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CodeExists reports whether code is already used as a tracking or vanity code
func (r *ProfileRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).
		Where("tracking_code = ? OR vanity_code = ?", code, code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAll retrieves profiles with pagination, optionally filtered by role
func (r *ProfileRepository) GetAll(role models.Role, limit, offset int) ([]models.Profile, int64, error) {
	var profiles []models.Profile
	var total int64

	query := r.db.Model(&models.Profile{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// GetActiveByRole retrieves every active profile with the given role
func (r *ProfileRepository) GetActiveByRole(role models.Role) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("role = ? AND is_active = ?", role, true).Order("email ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// SetVanityCode stores the vanity code only if the profile has none yet.
// It returns false when the profile already carries a vanity code.
func (r *ProfileRepository) SetVanityCode(id uuid.UUID, code string) (bool, error) {
	res := r.db.Model(&models.Profile{}).
		Where("id = ? AND vanity_code IS NULL", id).
		Update("vanity_code", code)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Update updates a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
