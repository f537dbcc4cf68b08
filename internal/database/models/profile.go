package models

// Profile is a platform account: client, affiliate, tax preparer or admin.
// Every profile owns a generated tracking code; the vanity code can be set once.
type Profile struct {
	BaseModel
	Email        string  `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string  `json:"-" gorm:"not null;size:100"`
	FirstName    string  `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string  `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Phone        string  `json:"phone" gorm:"size:20;index"`
	Role         Role    `json:"role" gorm:"type:varchar(20);not null;default:'client';index"`
	TrackingCode string  `json:"tracking_code" gorm:"uniqueIndex;not null;size:32"`
	VanityCode   *string `json:"vanity_code,omitempty" gorm:"uniqueIndex;size:32"`
	IsActive     bool    `json:"is_active" gorm:"not null;default:true"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// ReferralCode returns the code used in public referral links
func (p *Profile) ReferralCode() string {
	if p.VanityCode != nil && *p.VanityCode != "" {
		return *p.VanityCode
	}
	return p.TrackingCode
}

// FullName joins first and last name
func (p *Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
