package models

import "github.com/google/uuid"

// Payment records a fee payment confirmed by the payment provider webhook
type Payment struct {
	BaseModel
	LeadID      uuid.UUID `json:"lead_id" gorm:"type:uuid;not null;index"`
	ProviderRef string    `json:"provider_ref" gorm:"uniqueIndex;not null;size:255"`
	AmountCents int64     `json:"amount_cents" gorm:"not null"`
	Currency    string    `json:"currency" gorm:"size:3;not null;default:'usd'"`
	Status      string    `json:"status" gorm:"size:30;not null"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
