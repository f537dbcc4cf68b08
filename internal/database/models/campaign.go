package models

import "time"

// Campaign is an email blast to a CRM audience
type Campaign struct {
	BaseModel
	Name        string           `json:"name" gorm:"not null;size:200"`
	Audience    CampaignAudience `json:"audience" gorm:"type:varchar(30);not null"`
	Subject     string           `json:"subject" gorm:"size:200"`
	BodyHTML    string           `json:"body_html" gorm:"type:text"`
	Status      CampaignStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	SentCount   int              `json:"sent_count" gorm:"not null;default:0"`
	FailedCount int              `json:"failed_count" gorm:"not null;default:0"`
	SentAt      *time.Time       `json:"sent_at,omitempty"`
}

// TableName returns the table name for Campaign
func (Campaign) TableName() string {
	return "campaigns"
}
