package models

import (
	"time"
)

// Setting is a singleton row holding site-wide configuration edited from the
// back office. Reads return the single row; updates upsert it.
type Setting struct {
	ID uint `json:"id" gorm:"primaryKey"`

	SiteName    string `json:"site_name" gorm:"type:varchar(255)"`
	SiteTagline string `json:"site_tagline" gorm:"type:varchar(500)"`

	ContactEmail   string `json:"contact_email" gorm:"type:varchar(255)"`
	ContactPhone   string `json:"contact_phone" gorm:"type:varchar(50)"`
	ContactAddress string `json:"contact_address" gorm:"type:varchar(500)"`

	FacebookURL  string `json:"facebook_url" gorm:"type:varchar(500)"`
	InstagramURL string `json:"instagram_url" gorm:"type:varchar(500)"`
	LinkedInURL  string `json:"linkedin_url" gorm:"type:varchar(500)"`

	SEOTitle       string `json:"seo_title" gorm:"type:varchar(255)"`
	SEODescription string `json:"seo_description" gorm:"type:varchar(500)"`
	SEOKeywords    string `json:"seo_keywords" gorm:"type:varchar(500)"`

	MaintenanceMode bool `json:"maintenance_mode" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
