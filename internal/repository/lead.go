package repository

import (
	"strings"

	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// Ensure LeadRepository implements LeadRepositoryInterface
var _ LeadRepositoryInterface = (*LeadRepository)(nil)

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// List retrieves leads matching filter, newest first
func (r *LeadRepository) List(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := r.db.Model(&models.Lead{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ReferrerID != nil {
		query = query.Where("referrer_id = ?", *filter.ReferrerID)
	}
	if filter.AssignedPreparerID != nil {
		query = query.Where("assigned_preparer_id = ?", *filter.AssignedPreparerID)
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}

// CountByReferrer counts all leads attributed to a referrer
func (r *LeadRepository) CountByReferrer(referrerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).Where("referrer_id = ?", referrerID).Count(&count).Error
	return count, err
}

// CountConvertedByReferrer counts converted leads attributed to a referrer
func (r *LeadRepository) CountConvertedByReferrer(referrerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Lead{}).
		Where("referrer_id = ? AND status = ?", referrerID, models.LeadStatusConverted).
		Count(&count).Error
	return count, err
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}
