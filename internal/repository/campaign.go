package repository

import (
	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignRepository handles database operations for campaigns
type CampaignRepository struct {
	db *gorm.DB
}

// Ensure CampaignRepository implements CampaignRepositoryInterface
var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetAll retrieves campaigns with pagination, newest first
func (r *CampaignRepository) GetAll(limit, offset int) ([]models.Campaign, int64, error) {
	var campaigns []models.Campaign
	var total int64

	if err := r.db.Model(&models.Campaign{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&campaigns).Error
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// MarkSending moves a draft campaign to sending. It returns false if the
// campaign was not a draft, so two concurrent sends cannot both win.
func (r *CampaignRepository) MarkSending(id uuid.UUID) (bool, error) {
	res := r.db.Model(&models.Campaign{}).
		Where("id = ? AND status = ?", id, models.CampaignStatusDraft).
		Update("status", models.CampaignStatusSending)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Update updates a campaign
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// Delete deletes a campaign
func (r *CampaignRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Campaign{}, "id = ?", id).Error
}
