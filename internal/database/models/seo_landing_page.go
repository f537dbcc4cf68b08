package models

import "time"

// SeoLandingPage is a generated marketing page for one city/service pair
type SeoLandingPage struct {
	BaseModel
	Slug            string     `json:"slug" gorm:"uniqueIndex;not null;size:200"`
	City            string     `json:"city" gorm:"not null;size:100;index"`
	State           string     `json:"state" gorm:"size:2;index"`
	Service         string     `json:"service" gorm:"not null;size:100;index"`
	Language        string     `json:"language" gorm:"size:10;not null;default:'en'"`
	Title           string     `json:"title" gorm:"size:200"`
	MetaDescription string     `json:"meta_description" gorm:"size:320"`
	H1              string     `json:"h1" gorm:"size:200"`
	Content         string     `json:"content" gorm:"type:text"`
	ImageURL        string     `json:"image_url,omitempty" gorm:"size:500"`
	Status          PageStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Model           string     `json:"model" gorm:"size:100"`
	GeneratedAt     *time.Time `json:"generated_at,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}

// TableName returns the table name for SeoLandingPage
func (SeoLandingPage) TableName() string {
	return "seo_landing_pages"
}
