package repository

import (
	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommissionRepository handles database operations for commissions
type CommissionRepository struct {
	db *gorm.DB
}

// Ensure CommissionRepository implements CommissionRepositoryInterface
var _ CommissionRepositoryInterface = (*CommissionRepository)(nil)

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// Create creates a new commission
func (r *CommissionRepository) Create(commission *models.Commission) error {
	return r.db.Create(commission).Error
}

// GetByID retrieves a commission by ID
func (r *CommissionRepository) GetByID(id uuid.UUID) (*models.Commission, error) {
	var commission models.Commission
	err := r.db.First(&commission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

// GetByLeadID retrieves the commission created for a lead
func (r *CommissionRepository) GetByLeadID(leadID uuid.UUID) (*models.Commission, error) {
	var commission models.Commission
	err := r.db.First(&commission, "lead_id = ?", leadID).Error
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

// List retrieves commissions matching filter, newest first.
// A negative limit returns every match.
func (r *CommissionRepository) List(filter CommissionFilter, limit, offset int) ([]models.Commission, int64, error) {
	var commissions []models.Commission
	var total int64

	query := r.db.Model(&models.Commission{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ReferrerID != nil {
		query = query.Where("referrer_id = ?", *filter.ReferrerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&commissions).Error
	if err != nil {
		return nil, 0, err
	}
	return commissions, total, nil
}

// SumByStatus totals commission amounts per status, for one referrer or for everyone
func (r *CommissionRepository) SumByStatus(referrerID *uuid.UUID) (map[models.CommissionStatus]int64, error) {
	type row struct {
		Status models.CommissionStatus
		Total  int64
	}
	var rows []row

	query := r.db.Model(&models.Commission{}).Select("status, COALESCE(SUM(amount_cents), 0) AS total")
	if referrerID != nil {
		query = query.Where("referrer_id = ?", *referrerID)
	}
	if err := query.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[models.CommissionStatus]int64, len(rows))
	for _, rw := range rows {
		sums[rw.Status] = rw.Total
	}
	return sums, nil
}

// Update updates a commission
func (r *CommissionRepository) Update(commission *models.Commission) error {
	return r.db.Save(commission).Error
}
