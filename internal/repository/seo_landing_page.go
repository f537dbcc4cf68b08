package repository

import (
	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeoLandingPageRepository handles database operations for SEO landing pages
type SeoLandingPageRepository struct {
	db *gorm.DB
}

// Ensure SeoLandingPageRepository implements SeoLandingPageRepositoryInterface
var _ SeoLandingPageRepositoryInterface = (*SeoLandingPageRepository)(nil)

// NewSeoLandingPageRepository creates a new SEO landing page repository
func NewSeoLandingPageRepository(db *gorm.DB) *SeoLandingPageRepository {
	return &SeoLandingPageRepository{db: db}
}

// Create creates a new page
func (r *SeoLandingPageRepository) Create(page *models.SeoLandingPage) error {
	return r.db.Create(page).Error
}

// Upsert inserts a page or replaces the generated content of the page with the same slug
func (r *SeoLandingPageRepository) Upsert(page *models.SeoLandingPage) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"city", "state", "service", "language", "title", "meta_description",
			"h1", "content", "image_url", "model", "generated_at", "updated_at",
		}),
	}).Create(page).Error
}

// GetByID retrieves a page by ID
func (r *SeoLandingPageRepository) GetByID(id uuid.UUID) (*models.SeoLandingPage, error) {
	var page models.SeoLandingPage
	err := r.db.First(&page, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBySlug retrieves a page by slug
func (r *SeoLandingPageRepository) GetBySlug(slug string) (*models.SeoLandingPage, error) {
	var page models.SeoLandingPage
	err := r.db.First(&page, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ExistingSlugs returns the subset of slugs that already have a page
func (r *SeoLandingPageRepository) ExistingSlugs(slugs []string) ([]string, error) {
	existing := []string{}
	if len(slugs) == 0 {
		return existing, nil
	}
	err := r.db.Model(&models.SeoLandingPage{}).Where("slug IN ?", slugs).Pluck("slug", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// List retrieves pages matching filter ordered by slug
func (r *SeoLandingPageRepository) List(filter SeoPageFilter, limit, offset int) ([]models.SeoLandingPage, int64, error) {
	var pages []models.SeoLandingPage
	var total int64

	query := r.db.Model(&models.SeoLandingPage{})
	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.State != "" {
		query = query.Where("UPPER(state) = UPPER(?)", filter.State)
	}
	if filter.Service != "" {
		query = query.Where("LOWER(service) = LOWER(?)", filter.Service)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Content is large; list views only need the summary columns
	err := query.Omit("content").Order("slug ASC").Limit(limit).Offset(offset).Find(&pages).Error
	if err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

// Update updates a page
func (r *SeoLandingPageRepository) Update(page *models.SeoLandingPage) error {
	return r.db.Save(page).Error
}

// Delete deletes a page
func (r *SeoLandingPageRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SeoLandingPage{}, "id = ?", id).Error
}
