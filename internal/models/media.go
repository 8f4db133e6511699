package models

import (
	"time"
)

// Media is an uploaded file tracked by the back office. The stored filename
// is generated server-side; the original name is kept for display only.
type Media struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Filename     string      `json:"filename" gorm:"type:varchar(255);uniqueIndex;not null"`
	OriginalName string      `json:"original_name" gorm:"type:varchar(255);not null"`
	MimeType     string      `json:"mime_type" gorm:"type:varchar(100);index"`
	Size         int64       `json:"size"`
	Path         string      `json:"path" gorm:"type:varchar(500);not null"`
	AltText      string      `json:"alt_text" gorm:"type:varchar(255)"`
	Tags         StringArray `json:"tags" gorm:"type:json"`
	IsPublic     bool        `json:"is_public" gorm:"default:true"`
	UploadedByID *uint       `json:"uploaded_by_id"`
	UploadedBy   *User       `json:"uploaded_by,omitempty" gorm:"foreignKey:UploadedByID"`
	CreatedAt    time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
