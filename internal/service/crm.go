package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CRMService keeps the internal contact book in sync with leads
type CRMService struct {
	repo repository.CRMContactRepositoryInterface
}

// NewCRMService creates a new CRM service
func NewCRMService(repo repository.CRMContactRepositoryInterface) *CRMService {
	return &CRMService{repo: repo}
}

// CRMContactResponse represents a contact as returned by the API
type CRMContactResponse struct {
	ID           uuid.UUID           `json:"id"`
	Email        string              `json:"email"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Phone        string              `json:"phone"`
	LeadID       *uuid.UUID          `json:"lead_id,omitempty"`
	Stage        models.ContactStage `json:"stage"`
	Unsubscribed bool                `json:"unsubscribed"`
	LastSyncedAt string              `json:"last_synced_at"`
}

// CRMContactListResponse represents a paginated list of contacts
type CRMContactListResponse struct {
	Contacts []CRMContactResponse `json:"contacts"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// UpsertFromLead creates or refreshes the contact matching the lead's email.
// A customer contact never moves back to the lead stage.
func (s *CRMService) UpsertFromLead(ctx context.Context, lead *models.Lead) error {
	email := NormalizeEmail(lead.Email)
	if email == "" {
		return apperrors.NewValidationError("email", "lead has no email")
	}

	contact, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get crm contact: %w", err)
	}

	leadID := lead.ID
	stage := models.ContactStageLead
	if lead.Status == models.LeadStatusConverted {
		stage = models.ContactStageCustomer
	}

	if contact == nil {
		contact = &models.CRMContact{
			Email:        email,
			FirstName:    lead.FirstName,
			LastName:     lead.LastName,
			Phone:        lead.Phone,
			LeadID:       &leadID,
			Stage:        stage,
			LastSyncedAt: time.Now(),
		}
		if err := s.repo.Create(contact); err != nil {
			return fmt.Errorf("failed to create crm contact: %w", err)
		}
		logger.WithContext(ctx).WithField("contact_id", contact.ID).Debug("CRM contact created")
		return nil
	}

	if lead.FirstName != "" {
		contact.FirstName = lead.FirstName
	}
	if lead.LastName != "" {
		contact.LastName = lead.LastName
	}
	if lead.Phone != "" {
		contact.Phone = lead.Phone
	}
	contact.LeadID = &leadID
	if stage == models.ContactStageCustomer {
		contact.Stage = stage
	}
	contact.LastSyncedAt = time.Now()

	if err := s.repo.Update(contact); err != nil {
		return fmt.Errorf("failed to update crm contact: %w", err)
	}
	return nil
}

// MarkCustomer moves the contact with the given email to the customer stage
func (s *CRMService) MarkCustomer(ctx context.Context, email string) error {
	contact, err := s.repo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCRMContactNotFound
		}
		return fmt.Errorf("failed to get crm contact: %w", err)
	}
	if contact.Stage == models.ContactStageCustomer {
		return nil
	}

	contact.Stage = models.ContactStageCustomer
	contact.LastSyncedAt = time.Now()
	if err := s.repo.Update(contact); err != nil {
		return fmt.Errorf("failed to update crm contact: %w", err)
	}
	return nil
}

// Unsubscribe excludes a contact from future campaigns
func (s *CRMService) Unsubscribe(ctx context.Context, email string) error {
	contact, err := s.repo.GetByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCRMContactNotFound
		}
		return fmt.Errorf("failed to get crm contact: %w", err)
	}

	contact.Unsubscribed = true
	if err := s.repo.Update(contact); err != nil {
		return fmt.Errorf("failed to update crm contact: %w", err)
	}
	logger.WithContext(ctx).WithField("contact_id", contact.ID).Info("Contact unsubscribed")
	return nil
}

// ListContacts searches contacts by name or email, optionally by stage
func (s *CRMService) ListContacts(ctx context.Context, query string, stage models.ContactStage, page, pageSize int) (*CRMContactListResponse, error) {
	if stage != "" && stage != models.ContactStageLead && stage != models.ContactStageCustomer {
		return nil, apperrors.NewValidationError("stage", "unknown contact stage")
	}

	p := NewPagination(page, pageSize)
	contacts, total, err := s.repo.Search(strings.TrimSpace(query), stage, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list crm contacts: %w", err)
	}

	out := make([]CRMContactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = CRMContactResponse{
			ID:           c.ID,
			Email:        c.Email,
			FirstName:    c.FirstName,
			LastName:     c.LastName,
			Phone:        c.Phone,
			LeadID:       c.LeadID,
			Stage:        c.Stage,
			Unsubscribed: c.Unsubscribed,
			LastSyncedAt: formatTime(c.LastSyncedAt),
		}
	}
	return &CRMContactListResponse{
		Contacts: out,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
