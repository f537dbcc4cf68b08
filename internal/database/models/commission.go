package models

import (
	"time"

	"github.com/google/uuid"
)

// Commission is the amount owed to a referrer for one converted lead
type Commission struct {
	BaseModel
	ReferrerID      uuid.UUID        `json:"referrer_id" gorm:"type:uuid;not null;index"`
	LeadID          uuid.UUID        `json:"lead_id" gorm:"type:uuid;not null;uniqueIndex"`
	BaseAmountCents int64            `json:"base_amount_cents" gorm:"not null"`
	RateBPS         int              `json:"rate_bps" gorm:"not null"`
	AmountCents     int64            `json:"amount_cents" gorm:"not null"`
	Tier            string           `json:"tier" gorm:"size:50"`
	Status          CommissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidAt          *time.Time       `json:"paid_at,omitempty"`
}

// TableName returns the table name for Commission
func (Commission) TableName() string {
	return "commissions"
}
