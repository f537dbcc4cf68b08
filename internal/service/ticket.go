package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taxpro-backend/internal/auth"
	"taxpro-backend/internal/database/models"
	apperrors "taxpro-backend/internal/errors"
	"taxpro-backend/internal/logger"
	"taxpro-backend/internal/notify"
	"taxpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketService handles support tickets and their message threads
type TicketService struct {
	repo       repository.TicketRepositoryInterface
	profiles   repository.ProfileRepositoryInterface
	mailer     Mailer
	validator  *validator.Validate
	adminEmail string
}

// NewTicketService creates a new ticket service
func NewTicketService(repo repository.TicketRepositoryInterface, profiles repository.ProfileRepositoryInterface, mailer Mailer, validator *validator.Validate, adminEmail string) *TicketService {
	return &TicketService{
		repo:       repo,
		profiles:   profiles,
		mailer:     mailer,
		validator:  validator,
		adminEmail: adminEmail,
	}
}

// CreateTicketRequest represents a new support request
type CreateTicketRequest struct {
	Subject     string                `json:"subject" validate:"required,max=200" example:"Question about my W-2"`
	Description string                `json:"description" validate:"required,max=10000"`
	Category    models.TicketCategory `json:"category" validate:"required,oneof=billing technical tax_question account other" example:"tax_question"`
	Priority    models.TicketPriority `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent" example:"normal"`
}

// AddTicketMessageRequest represents a reply on a ticket
type AddTicketMessageRequest struct {
	Body       string `json:"body" validate:"required,max=10000"`
	IsInternal bool   `json:"is_internal,omitempty"`
}

// UpdateTicketStatusRequest represents a status change
type UpdateTicketStatusRequest struct {
	Status models.TicketStatus `json:"status" validate:"required,oneof=open in_progress waiting_on_customer resolved closed" example:"in_progress"`
}

// AssignTicketRequest represents assigning a ticket to a staff member
type AssignTicketRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" validate:"required"`
}

// TicketMessageResponse represents one reply
type TicketMessageResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Body       string    `json:"body"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  string    `json:"created_at"`
}

// TicketResponse represents a ticket as returned by the API
type TicketResponse struct {
	ID          uuid.UUID               `json:"id"`
	Number      string                  `json:"number"`
	Subject     string                  `json:"subject"`
	Description string                  `json:"description"`
	Category    models.TicketCategory   `json:"category"`
	Priority    models.TicketPriority   `json:"priority"`
	Status      models.TicketStatus     `json:"status"`
	CreatorID   uuid.UUID               `json:"creator_id"`
	AssigneeID  *uuid.UUID              `json:"assignee_id,omitempty"`
	ClosedAt    string                  `json:"closed_at,omitempty"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
	Messages    []TicketMessageResponse `json:"messages,omitempty"`
}

// TicketListResponse represents a paginated list of tickets
type TicketListResponse struct {
	Tickets  []TicketResponse `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create opens a ticket for the caller and notifies staff
func (s *TicketService) Create(ctx context.Context, who auth.Identity, req *CreateTicketRequest) (*TicketResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.TicketPriorityNormal
	}

	ticket := &models.Ticket{
		Subject:     strings.TrimSpace(req.Subject),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Priority:    priority,
		Status:      models.TicketStatusOpen,
		CreatorID:   who.ProfileID,
	}
	ticket.CreatedBy = who.Email

	if err := s.repo.CreateWithNumber(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"ticket_id": ticket.ID,
		"number":    ticket.Number,
	})
	log.Info("Ticket created")

	if s.adminEmail != "" {
		content := notify.TicketCreatedEmail(ticket.Number, ticket.Subject, string(ticket.Category), string(ticket.Priority))
		if err := s.mailer.Send(ctx, s.adminEmail, content.Subject, content.Body); err != nil {
			log.WithError(err).Warn("Failed to send ticket notification")
		}
	}

	return toTicketResponse(ticket, false), nil
}

// List returns the caller's tickets, or every ticket for staff
func (s *TicketService) List(ctx context.Context, who auth.Identity, status models.TicketStatus, assignedToMe bool, page, pageSize int) (*TicketListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown ticket status")
	}

	filter := repository.TicketFilter{Status: status}
	id := who.ProfileID
	if !who.IsStaff() {
		filter.CreatorID = &id
	} else if assignedToMe {
		filter.AssigneeID = &id
	}

	p := NewPagination(page, pageSize)
	tickets, total, err := s.repo.List(filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	out := make([]TicketResponse, len(tickets))
	for i := range tickets {
		out[i] = *toTicketResponse(&tickets[i], false)
	}
	return &TicketListResponse{
		Tickets:  out,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

// Get returns a ticket with its thread. Internal notes are only shown to staff.
func (s *TicketService) Get(ctx context.Context, who auth.Identity, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetWithMessages(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if !canAccessTicket(who, ticket) {
		return nil, apperrors.ErrTicketNotFound
	}
	return toTicketResponse(ticket, who.IsStaff()), nil
}

// AddMessage appends a reply. A customer reply reopens a ticket waiting on them, and the
// first staff reply on an open ticket marks it in progress.
func (s *TicketService) AddMessage(ctx context.Context, who auth.Identity, id uuid.UUID, req *AddTicketMessageRequest) (*TicketMessageResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if !canAccessTicket(who, ticket) {
		return nil, apperrors.ErrTicketNotFound
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}
	if req.IsInternal && !who.IsStaff() {
		return nil, apperrors.ErrStaffOnly
	}

	msg := &models.TicketMessage{
		TicketID:   ticket.ID,
		AuthorID:   who.ProfileID,
		Body:       strings.TrimSpace(req.Body),
		IsInternal: req.IsInternal,
	}
	msg.CreatedBy = who.Email
	if err := s.repo.AddMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to add ticket message: %w", err)
	}

	next := ticket.Status
	switch {
	case req.IsInternal:
	case who.IsStaff() && ticket.Status == models.TicketStatusOpen:
		next = models.TicketStatusInProgress
	case !who.IsStaff() && ticket.Status == models.TicketStatusWaitingOnCustomer:
		next = models.TicketStatusOpen
	}
	if next != ticket.Status {
		ticket.Status = next
		ticket.UpdatedBy = who.Email
		if err := s.repo.Update(ticket); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("ticket_id", ticket.ID).Warn("Failed to update ticket status after reply")
		}
	}

	return toTicketMessageResponse(msg), nil
}

// UpdateStatus changes a ticket's status. Closed tickets cannot be reopened.
func (s *TicketService) UpdateStatus(ctx context.Context, who auth.Identity, id uuid.UUID, req *UpdateTicketStatusRequest) (*TicketResponse, error) {
	if !who.IsStaff() {
		return nil, apperrors.ErrStaffOnly
	}
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ticket, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}
	if ticket.Status == req.Status {
		return toTicketResponse(ticket, true), nil
	}

	ticket.Status = req.Status
	ticket.UpdatedBy = who.Email
	if req.Status == models.TicketStatusClosed {
		now := time.Now()
		ticket.ClosedAt = &now
	}
	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"ticket_id": ticket.ID,
		"status":    ticket.Status,
	}).Info("Ticket status updated")
	return toTicketResponse(ticket, true), nil
}

// Assign gives a ticket to a staff member
func (s *TicketService) Assign(ctx context.Context, id uuid.UUID, req *AssignTicketRequest, actor string) (*TicketResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignee, err := s.profiles.GetByID(req.AssigneeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get assignee: %w", err)
	}
	if !assignee.Role.IsStaff() || !assignee.IsActive {
		return nil, apperrors.ErrAssigneeNotStaff
	}

	ticket, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, apperrors.ErrTicketClosed
	}

	ticket.AssigneeID = &assignee.ID
	ticket.UpdatedBy = actor
	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to assign ticket: %w", err)
	}
	return toTicketResponse(ticket, true), nil
}

func (s *TicketService) get(id uuid.UUID) (*models.Ticket, error) {
	ticket, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket, nil
}

func canAccessTicket(who auth.Identity, ticket *models.Ticket) bool {
	return who.IsStaff() || ticket.CreatorID == who.ProfileID
}

func toTicketResponse(t *models.Ticket, includeInternal bool) *TicketResponse {
	resp := &TicketResponse{
		ID:          t.ID,
		Number:      t.Number,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    t.Category,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatorID:   t.CreatorID,
		AssigneeID:  t.AssigneeID,
		ClosedAt:    formatTimePtr(t.ClosedAt),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
	for i := range t.Messages {
		if t.Messages[i].IsInternal && !includeInternal {
			continue
		}
		resp.Messages = append(resp.Messages, *toTicketMessageResponse(&t.Messages[i]))
	}
	return resp
}

func toTicketMessageResponse(m *models.TicketMessage) *TicketMessageResponse {
	return &TicketMessageResponse{
		ID:         m.ID,
		AuthorID:   m.AuthorID,
		Body:       m.Body,
		IsInternal: m.IsInternal,
		CreatedAt:  formatTime(m.CreatedAt),
	}
}
