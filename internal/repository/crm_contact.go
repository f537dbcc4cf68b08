package repository

import (
	"strings"

	"taxpro-backend/internal/database/models"

	"gorm.io/gorm"
)

// CRMContactRepository handles database operations for CRM contacts
type CRMContactRepository struct {
	db *gorm.DB
}

// Ensure CRMContactRepository implements CRMContactRepositoryInterface
var _ CRMContactRepositoryInterface = (*CRMContactRepository)(nil)

// NewCRMContactRepository creates a new CRM contact repository
func NewCRMContactRepository(db *gorm.DB) *CRMContactRepository {
	return &CRMContactRepository{db: db}
}

// Create creates a new contact
func (r *CRMContactRepository) Create(contact *models.CRMContact) error {
	return r.db.Create(contact).Error
}

// GetByEmail retrieves a contact by lower-cased email
func (r *CRMContactRepository) GetByEmail(email string) (*models.CRMContact, error) {
	var contact models.CRMContact
	err := r.db.First(&contact, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Search finds contacts by name or email, optionally within a stage
func (r *CRMContactRepository) Search(query string, stage models.ContactStage, limit, offset int) ([]models.CRMContact, int64, error) {
	var contacts []models.CRMContact
	var total int64

	q := r.db.Model(&models.CRMContact{})
	if stage != "" {
		q = q.Where("stage = ?", stage)
	}
	if s := strings.TrimSpace(query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("email ASC").Limit(limit).Offset(offset).Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// GetSubscribedByStages returns contacts that have not unsubscribed, in any of stages
func (r *CRMContactRepository) GetSubscribedByStages(stages []models.ContactStage) ([]models.CRMContact, error) {
	var contacts []models.CRMContact
	if len(stages) == 0 {
		return contacts, nil
	}
	err := r.db.Where("stage IN ? AND unsubscribed = ?", stages, false).Order("email ASC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// UnsubscribedEmails returns which of emails belong to contacts that opted out, lower-cased
func (r *CRMContactRepository) UnsubscribedEmails(emails []string) ([]string, error) {
	var out []string
	if len(emails) == 0 {
		return out, nil
	}
	lowered := make([]string, len(emails))
	for i, e := range emails {
		lowered[i] = strings.ToLower(strings.TrimSpace(e))
	}
	err := r.db.Model(&models.CRMContact{}).
		Where("unsubscribed = ? AND LOWER(email) IN ?", true, lowered).
		Pluck("LOWER(email)", &out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update updates a contact
func (r *CRMContactRepository) Update(contact *models.CRMContact) error {
	return r.db.Save(contact).Error
}
