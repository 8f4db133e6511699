package models

import (
	"time"
)

// Theme is a named styling preset for the public site. At most one theme is
// active at a time.
type Theme struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`

	Colors  StringMap `json:"colors" gorm:"type:text"`
	Fonts   StringMap `json:"fonts" gorm:"type:text"`
	Spacing StringMap `json:"spacing" gorm:"type:text"`

	CustomCSS string `json:"custom_css" gorm:"type:text"`

	IsActive        bool      `json:"is_active" gorm:"default:false;index"`
	DarkModeEnabled bool      `json:"dark_mode_enabled" gorm:"default:false"`
	DarkColors      StringMap `json:"dark_colors" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
