package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is a support request opened by a profile
type Ticket struct {
	BaseModel
	Number      string          `json:"number" gorm:"uniqueIndex;not null;size:20"`
	Subject     string          `json:"subject" gorm:"not null;size:200"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Category    TicketCategory  `json:"category" gorm:"type:varchar(30);not null;index"`
	Priority    TicketPriority  `json:"priority" gorm:"type:varchar(20);not null;default:'normal';index"`
	Status      TicketStatus    `json:"status" gorm:"type:varchar(30);not null;default:'open';index"`
	CreatorID   uuid.UUID       `json:"creator_id" gorm:"type:uuid;not null;index"`
	AssigneeID  *uuid.UUID      `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
	Messages    []TicketMessage `json:"messages,omitempty" gorm:"foreignKey:TicketID"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// TicketMessage is one reply on a ticket; internal notes are hidden from customers
type TicketMessage struct {
	BaseModel
	TicketID   uuid.UUID `json:"ticket_id" gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	IsInternal bool      `json:"is_internal" gorm:"not null;default:false"`
}

// TableName returns the table name for TicketMessage
func (TicketMessage) TableName() string {
	return "ticket_messages"
}
