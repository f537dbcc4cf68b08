package repository

import (
	"strings"

	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferralRepository handles database operations for referrals
type ReferralRepository struct {
	db *gorm.DB
}

// Ensure ReferralRepository implements ReferralRepositoryInterface
var _ ReferralRepositoryInterface = (*ReferralRepository)(nil)

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create creates a new referral
func (r *ReferralRepository) Create(referral *models.Referral) error {
	return r.db.Create(referral).Error
}

// GetByReferrerAndEmail retrieves the referral a referrer submitted for an email
func (r *ReferralRepository) GetByReferrerAndEmail(referrerID uuid.UUID, email string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.First(&referral, "referrer_id = ? AND referred_email = ?", referrerID, strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

// GetByReferrer retrieves a referrer's referrals, newest first
func (r *ReferralRepository) GetByReferrer(referrerID uuid.UUID, limit, offset int) ([]models.Referral, int64, error) {
	var referrals []models.Referral
	var total int64

	query := r.db.Model(&models.Referral{}).Where("referrer_id = ?", referrerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&referrals).Error
	if err != nil {
		return nil, 0, err
	}
	return referrals, total, nil
}

// FindOldestByEmail returns the earliest referral submitted for an email
func (r *ReferralRepository) FindOldestByEmail(email string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.Where("referred_email = ?", strings.ToLower(email)).
		Order("created_at ASC").
		First(&referral).Error
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

// FindOldestByPhone returns the earliest referral submitted for a normalized phone number
func (r *ReferralRepository) FindOldestByPhone(phone string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.Where("referred_phone = ?", phone).
		Order("created_at ASC").
		First(&referral).Error
	if err != nil {
		return nil, err
	}
	return &referral, nil
}

// LinkLead records which lead a referral turned into
func (r *ReferralRepository) LinkLead(id, leadID uuid.UUID) error {
	return r.db.Model(&models.Referral{}).Where("id = ?", id).Update("lead_id", leadID).Error
}

// CountByReferrer counts the referrals submitted by a referrer
func (r *ReferralRepository) CountByReferrer(referrerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Referral{}).Where("referrer_id = ?", referrerID).Count(&count).Error
	return count, err
}

// ReferralClickRepository handles database operations for referral link clicks
type ReferralClickRepository struct {
	db *gorm.DB
}

// Ensure ReferralClickRepository implements ReferralClickRepositoryInterface
var _ ReferralClickRepositoryInterface = (*ReferralClickRepository)(nil)

// NewReferralClickRepository creates a new referral click repository
func NewReferralClickRepository(db *gorm.DB) *ReferralClickRepository {
	return &ReferralClickRepository{db: db}
}

// Create records a click
func (r *ReferralClickRepository) Create(click *models.ReferralClick) error {
	if click.ID == uuid.Nil {
		click.ID = uuid.New()
	}
	return r.db.Create(click).Error
}

// CountByReferrer counts recorded clicks for a referrer
func (r *ReferralClickRepository) CountByReferrer(referrerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ReferralClick{}).Where("referrer_id = ?", referrerID).Count(&count).Error
	return count, err
}
