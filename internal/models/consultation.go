package models

import (
	"time"
)

const (
	ConsultationStatusPending     = "pending"
	ConsultationStatusConfirmed   = "confirmed"
	ConsultationStatusCompleted   = "completed"
	ConsultationStatusCancelled   = "cancelled"
	ConsultationStatusRescheduled = "rescheduled"
)

// Consultation is a booked advisory session requested from the public site.
type Consultation struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	BookingID string `json:"booking_id" gorm:"type:varchar(50);uniqueIndex;not null"`

	ClientName  string `json:"client_name" gorm:"type:varchar(255);not null"`
	ClientEmail string `json:"client_email" gorm:"type:varchar(255);not null"`
	ClientPhone string `json:"client_phone" gorm:"type:varchar(50);not null"`

	ConsultationType string    `json:"consultation_type" gorm:"type:varchar(50);not null"` // job_guidance, visa_assistance, study_abroad, general
	PreferredDate    time.Time `json:"preferred_date" gorm:"not null;index"`
	PreferredTime    string    `json:"preferred_time" gorm:"type:varchar(50);not null"`
	Message          string    `json:"message" gorm:"type:text"`

	Status          string `json:"status" gorm:"type:varchar(50);default:'pending';index"`
	AdminNotes      string `json:"admin_notes" gorm:"type:text"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:60"`
	MeetingLink     string `json:"meeting_link" gorm:"type:varchar(500)"`

	AssignedToID *uint `json:"assigned_to_id" gorm:"index"`
	AssignedTo   *User `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}
