package repository

import (
	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageRestrictionRepository handles database operations for page restrictions
type PageRestrictionRepository struct {
	db *gorm.DB
}

// Ensure PageRestrictionRepository implements PageRestrictionRepositoryInterface
var _ PageRestrictionRepositoryInterface = (*PageRestrictionRepository)(nil)

// NewPageRestrictionRepository creates a new page restriction repository
func NewPageRestrictionRepository(db *gorm.DB) *PageRestrictionRepository {
	return &PageRestrictionRepository{db: db}
}

// Create creates a new restriction
func (r *PageRestrictionRepository) Create(restriction *models.PageRestriction) error {
	return r.db.Create(restriction).Error
}

// GetByID retrieves a restriction by ID
func (r *PageRestrictionRepository) GetByID(id uuid.UUID) (*models.PageRestriction, error) {
	var restriction models.PageRestriction
	err := r.db.First(&restriction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &restriction, nil
}

// GetByPattern retrieves a restriction by its path pattern
func (r *PageRestrictionRepository) GetByPattern(pattern string) (*models.PageRestriction, error) {
	var restriction models.PageRestriction
	err := r.db.First(&restriction, "path_pattern = ?", pattern).Error
	if err != nil {
		return nil, err
	}
	return &restriction, nil
}

// GetAll retrieves every restriction ordered by pattern
func (r *PageRestrictionRepository) GetAll() ([]models.PageRestriction, error) {
	var restrictions []models.PageRestriction
	if err := r.db.Order("path_pattern ASC").Find(&restrictions).Error; err != nil {
		return nil, err
	}
	return restrictions, nil
}

// GetActive retrieves active restrictions
func (r *PageRestrictionRepository) GetActive() ([]models.PageRestriction, error) {
	var restrictions []models.PageRestriction
	if err := r.db.Where("is_active = ?", true).Order("path_pattern ASC").Find(&restrictions).Error; err != nil {
		return nil, err
	}
	return restrictions, nil
}

// Update updates a restriction
func (r *PageRestrictionRepository) Update(restriction *models.PageRestriction) error {
	return r.db.Save(restriction).Error
}

// Delete deletes a restriction
func (r *PageRestrictionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PageRestriction{}, "id = ?", id).Error
}
