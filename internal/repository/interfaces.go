package repository

import (
	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByID(id uuid.UUID) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByCode(code string) (*models.Profile, error)
	CodeExists(code string) (bool, error)
	GetAll(role models.Role, limit, offset int) ([]models.Profile, int64, error)
	GetActiveByRole(role models.Role) ([]models.Profile, error)
	SetVanityCode(id uuid.UUID, code string) (bool, error)
	Update(profile *models.Profile) error
}

// ReferralRepositoryInterface defines the interface for referral repository operations
type ReferralRepositoryInterface interface {
	Create(referral *models.Referral) error
	GetByReferrerAndEmail(referrerID uuid.UUID, email string) (*models.Referral, error)
	GetByReferrer(referrerID uuid.UUID, limit, offset int) ([]models.Referral, int64, error)
	FindOldestByEmail(email string) (*models.Referral, error)
	FindOldestByPhone(phone string) (*models.Referral, error)
	LinkLead(id, leadID uuid.UUID) error
	CountByReferrer(referrerID uuid.UUID) (int64, error)
}

// ReferralClickRepositoryInterface defines the interface for referral click repository operations
type ReferralClickRepositoryInterface interface {
	Create(click *models.ReferralClick) error
	CountByReferrer(referrerID uuid.UUID) (int64, error)
}

// LeadRepositoryInterface defines the interface for lead repository operations
type LeadRepositoryInterface interface {
	Create(lead *models.Lead) error
	GetByID(id uuid.UUID) (*models.Lead, error)
	List(filter LeadFilter, limit, offset int) ([]models.Lead, int64, error)
	CountByReferrer(referrerID uuid.UUID) (int64, error)
	CountConvertedByReferrer(referrerID uuid.UUID) (int64, error)
	Update(lead *models.Lead) error
}

// CRMContactRepositoryInterface defines the interface for CRM contact repository operations
type CRMContactRepositoryInterface interface {
	Create(contact *models.CRMContact) error
	GetByEmail(email string) (*models.CRMContact, error)
	Search(query string, stage models.ContactStage, limit, offset int) ([]models.CRMContact, int64, error)
	GetSubscribedByStages(stages []models.ContactStage) ([]models.CRMContact, error)
	UnsubscribedEmails(emails []string) ([]string, error)
	Update(contact *models.CRMContact) error
}

// CommissionRepositoryInterface defines the interface for commission repository operations
type CommissionRepositoryInterface interface {
	Create(commission *models.Commission) error
	GetByID(id uuid.UUID) (*models.Commission, error)
	GetByLeadID(leadID uuid.UUID) (*models.Commission, error)
	List(filter CommissionFilter, limit, offset int) ([]models.Commission, int64, error)
	SumByStatus(referrerID *uuid.UUID) (map[models.CommissionStatus]int64, error)
	Update(commission *models.Commission) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByProviderRef(ref string) (*models.Payment, error)
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	CreateWithNumber(ticket *models.Ticket) error
	GetByID(id uuid.UUID) (*models.Ticket, error)
	GetWithMessages(id uuid.UUID) (*models.Ticket, error)
	List(filter TicketFilter, limit, offset int) ([]models.Ticket, int64, error)
	AddMessage(message *models.TicketMessage) error
	Update(ticket *models.Ticket) error
}

// SeoLandingPageRepositoryInterface defines the interface for SEO landing page repository operations
type SeoLandingPageRepositoryInterface interface {
	Create(page *models.SeoLandingPage) error
	Upsert(page *models.SeoLandingPage) error
	GetByID(id uuid.UUID) (*models.SeoLandingPage, error)
	GetBySlug(slug string) (*models.SeoLandingPage, error)
	ExistingSlugs(slugs []string) ([]string, error)
	List(filter SeoPageFilter, limit, offset int) ([]models.SeoLandingPage, int64, error)
	Update(page *models.SeoLandingPage) error
	Delete(id uuid.UUID) error
}

// CampaignRepositoryInterface defines the interface for campaign repository operations
type CampaignRepositoryInterface interface {
	Create(campaign *models.Campaign) error
	GetByID(id uuid.UUID) (*models.Campaign, error)
	GetAll(limit, offset int) ([]models.Campaign, int64, error)
	MarkSending(id uuid.UUID) (bool, error)
	Update(campaign *models.Campaign) error
	Delete(id uuid.UUID) error
}

// PageRestrictionRepositoryInterface defines the interface for page restriction repository operations
type PageRestrictionRepositoryInterface interface {
	Create(restriction *models.PageRestriction) error
	GetByID(id uuid.UUID) (*models.PageRestriction, error)
	GetByPattern(pattern string) (*models.PageRestriction, error)
	GetAll() ([]models.PageRestriction, error)
	GetActive() ([]models.PageRestriction, error)
	Update(restriction *models.PageRestriction) error
	Delete(id uuid.UUID) error
}
