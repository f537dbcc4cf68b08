package models

import (
	"time"

	"github.com/google/uuid"
)

// Referral is a friend pre-registered by a referrer; later leads are matched against it.
// Phone-only referrals store an empty email, which the partial unique index skips.
type Referral struct {
	BaseModel
	ReferrerID    uuid.UUID  `json:"referrer_id" gorm:"type:uuid;not null;uniqueIndex:idx_referrals_referrer_email,where:referred_email <> ''"`
	ReferredName  string     `json:"referred_name" gorm:"not null;size:200"`
	ReferredEmail string     `json:"referred_email" gorm:"size:255;index;uniqueIndex:idx_referrals_referrer_email,where:referred_email <> ''"`
	ReferredPhone string     `json:"referred_phone" gorm:"size:20;index"`
	LeadID        *uuid.UUID `json:"lead_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}

// ReferralClick is one first-time visit through a referral link
type ReferralClick struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReferrerID   uuid.UUID `json:"referrer_id" gorm:"type:uuid;not null;index"`
	TrackingCode string    `json:"tracking_code" gorm:"not null;size:32"`
	IPHash       string    `json:"-" gorm:"size:64"`
	UserAgent    string    `json:"user_agent" gorm:"size:500"`
	LandingPath  string    `json:"landing_path" gorm:"size:500"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the table name for ReferralClick
func (ReferralClick) TableName() string {
	return "referral_clicks"
}
