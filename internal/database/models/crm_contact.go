package models

import (
	"time"

	"github.com/google/uuid"
)

// CRMContact mirrors a lead in the internal CRM, keyed by email
type CRMContact struct {
	BaseModel
	Email        string       `json:"email" gorm:"uniqueIndex;not null;size:255"`
	FirstName    string       `json:"first_name" gorm:"size:100"`
	LastName     string       `json:"last_name" gorm:"size:100"`
	Phone        string       `json:"phone" gorm:"size:20"`
	LeadID       *uuid.UUID   `json:"lead_id,omitempty" gorm:"type:uuid;index"`
	Stage        ContactStage `json:"stage" gorm:"type:varchar(20);not null;default:'lead';index"`
	Unsubscribed bool         `json:"unsubscribed" gorm:"not null;default:false"`
	LastSyncedAt time.Time    `json:"last_synced_at"`
}

// TableName returns the table name for CRMContact
func (CRMContact) TableName() string {
	return "crm_contacts"
}
