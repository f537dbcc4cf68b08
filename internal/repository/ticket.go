package repository

import (
	"fmt"

	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TicketNumberPrefix prefixes every human-readable ticket number
const TicketNumberPrefix = "TKT-"

// FormatTicketNumber renders a sequence value as a ticket number, e.g. TKT-000042
func FormatTicketNumber(seq int64) string {
	return fmt.Sprintf("%s%06d", TicketNumberPrefix, seq)
}

// TicketRepository handles database operations for tickets and their messages
type TicketRepository struct {
	db *gorm.DB
}

// Ensure TicketRepository implements TicketRepositoryInterface
var _ TicketRepositoryInterface = (*TicketRepository)(nil)

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateWithNumber assigns the next ticket number and inserts the ticket in one transaction
func (r *TicketRepository) CreateWithNumber(ticket *models.Ticket) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Serialize number allocation; readers are not blocked.
		if err := tx.Exec("LOCK TABLE tickets IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return err
		}

		var last int64
		err := tx.Model(&models.Ticket{}).
			Select("COALESCE(MAX(CAST(SUBSTRING(number FROM ?) AS BIGINT)), 0)", len(TicketNumberPrefix)+1).
			Scan(&last).Error
		if err != nil {
			return err
		}

		ticket.Number = FormatTicketNumber(last + 1)
		return tx.Create(ticket).Error
	})
}

// GetByID retrieves a ticket without messages
func (r *TicketRepository) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetWithMessages retrieves a ticket with its messages in posting order
func (r *TicketRepository) GetWithMessages(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// List retrieves tickets matching filter, most recently updated first
func (r *TicketRepository) List(filter TicketFilter, limit, offset int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	query := r.db.Model(&models.Ticket{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

// AddMessage appends a message to a ticket
func (r *TicketRepository) AddMessage(message *models.TicketMessage) error {
	return r.db.Create(message).Error
}

// Update updates a ticket without touching its messages
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Omit("Messages").Save(ticket).Error
}
