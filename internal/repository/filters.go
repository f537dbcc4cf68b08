package repository

import (
	"taxpro-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeadFilter narrows lead listings. Zero values are ignored.
type LeadFilter struct {
	Status             models.LeadStatus
	ReferrerID         *uuid.UUID
	AssignedPreparerID *uuid.UUID
	Search             string
}

// CommissionFilter narrows commission listings. Zero values are ignored.
type CommissionFilter struct {
	Status     models.CommissionStatus
	ReferrerID *uuid.UUID
}

// TicketFilter narrows ticket listings. Zero values are ignored.
type TicketFilter struct {
	Status     models.TicketStatus
	CreatorID  *uuid.UUID
	AssigneeID *uuid.UUID
}

// SeoPageFilter narrows landing page listings. Zero values are ignored.
type SeoPageFilter struct {
	City    string
	State   string
	Service string
	Status  models.PageStatus
}
