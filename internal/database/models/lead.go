package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a prospective customer captured by an intake form
type Lead struct {
	BaseModel
	FirstName          string            `json:"first_name" gorm:"not null;size:100"`
	LastName           string            `json:"last_name" gorm:"size:100"`
	Email              string            `json:"email" gorm:"not null;size:255;index"`
	Phone              string            `json:"phone" gorm:"size:20;index"`
	ServiceType        string            `json:"service_type" gorm:"size:100"`
	City               string            `json:"city" gorm:"size:100"`
	State              string            `json:"state" gorm:"size:2"`
	Message            string            `json:"message" gorm:"type:text"`
	Status             LeadStatus        `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	ReferrerID         *uuid.UUID        `json:"referrer_id,omitempty" gorm:"type:uuid;index"`
	AttributionMethod  AttributionMethod `json:"attribution_method" gorm:"type:varchar(20);not null;default:'direct'"`
	AttributionCode    string            `json:"attribution_code,omitempty" gorm:"size:32"`
	UTMSource          string            `json:"utm_source,omitempty" gorm:"size:100"`
	UTMMedium          string            `json:"utm_medium,omitempty" gorm:"size:100"`
	UTMCampaign        string            `json:"utm_campaign,omitempty" gorm:"size:100"`
	AssignedPreparerID *uuid.UUID        `json:"assigned_preparer_id,omitempty" gorm:"type:uuid;index"`
	FeeAmountCents     int64             `json:"fee_amount_cents" gorm:"not null;default:0"`
	ConvertedAt        *time.Time        `json:"converted_at,omitempty"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
