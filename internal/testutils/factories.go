package testutils

import (
	"fmt"
	"strings"
	"time"

	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values and a unique email and tracking code
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	short := strings.ReplaceAll(id.String(), "-", "")[:8]

	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@example.com", short),
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZpYb2bDNBTnEoGzmgmUP0u",
		FirstName:    "Jane",
		LastName:     "Doe",
		Phone:        "5125550100",
		Role:         models.RoleClient,
		TrackingCode: short,
		IsActive:     true,
	}
}

// WithEmail sets a custom email for the profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	p := f.Create()
	p.Email = email
	return p
}

// WithRole sets a custom role for the profile
func (f *ProfileFactory) WithRole(role models.Role) *models.Profile {
	p := f.Create()
	p.Role = role
	return p
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates a direct (unattributed) test Lead
func (f *LeadFactory) Create() *models.Lead {
	id := uuid.New()
	return &models.Lead{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:         "Pat",
		LastName:          "Smith",
		Email:             fmt.Sprintf("lead-%s@example.com", id.String()[:8]),
		Phone:             "5125550199",
		ServiceType:       "Tax Preparation",
		City:              "Austin",
		State:             "TX",
		Status:            models.LeadStatusNew,
		AttributionMethod: models.AttributionDirect,
	}
}

// ReferredBy creates a test Lead attributed to referrerID by cookie
func (f *LeadFactory) ReferredBy(referrerID uuid.UUID) *models.Lead {
	l := f.Create()
	l.ReferrerID = &referrerID
	l.AttributionMethod = models.AttributionCookie
	return l
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates an open test Ticket for creatorID
func (f *TicketFactory) Create(creatorID uuid.UUID) *models.Ticket {
	return &models.Ticket{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Number:      "TKT-000001",
		Subject:     "Question about my return",
		Description: "I have a question about deductions.",
		Category:    models.TicketCategoryTaxQuestion,
		Priority:    models.TicketPriorityNormal,
		Status:      models.TicketStatusOpen,
		CreatorID:   creatorID,
	}
}

// SeoPageFactory provides methods to create test SeoLandingPage data
type SeoPageFactory struct{}

// NewSeoPageFactory creates a new SeoPageFactory
func NewSeoPageFactory() *SeoPageFactory {
	return &SeoPageFactory{}
}

// Create creates a draft test page for the given slug
func (f *SeoPageFactory) Create(slug string) *models.SeoLandingPage {
	return &models.SeoLandingPage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Slug:            slug,
		City:            "Austin",
		State:           "TX",
		Service:         "Tax Preparation",
		Language:        "en",
		Title:           "Tax Preparation in Austin, TX",
		MetaDescription: "Local tax preparation in Austin.",
		H1:              "Tax Preparation in Austin",
		Content:         "<p>Hello Austin</p>",
		Status:          models.PageStatusDraft,
	}
}
