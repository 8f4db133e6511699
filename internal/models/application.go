package models

import (
	"time"
)

// Application statuses follow the recruitment funnel.
const (
	ApplicationStatusNew         = "new"
	ApplicationStatusReviewing   = "reviewing"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusInterviewed = "interviewed"
	ApplicationStatusSelected    = "selected"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusWithdrawn   = "withdrawn"
	ApplicationStatusHired       = "hired"
)

// Application is a candidate's submission against a job listing.
type Application struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ApplicationID string `json:"application_id" gorm:"type:varchar(50);uniqueIndex;not null"`
	JobID         uint   `json:"job_id" gorm:"not null;index"`
	Job           *Job   `json:"job,omitempty" gorm:"foreignKey:JobID"`

	FirstName   string `json:"first_name" gorm:"type:varchar(255);not null"`
	LastName    string `json:"last_name" gorm:"type:varchar(255);not null"`
	Email       string `json:"email" gorm:"type:varchar(255);not null;index"` // stored lowercase
	Phone       string `json:"phone" gorm:"type:varchar(50);not null"`
	Nationality string `json:"nationality" gorm:"type:varchar(100)"`

	CurrentJobTitle string `json:"current_job_title" gorm:"type:varchar(255)"`
	CurrentCompany  string `json:"current_company" gorm:"type:varchar(255)"`
	ExperienceYears int    `json:"experience_years" gorm:"default:0"`
	NoticePeriod    string `json:"notice_period" gorm:"type:varchar(50)"`

	Skills      StringArray `json:"skills" gorm:"type:json"`
	CoverLetter string      `json:"cover_letter" gorm:"type:text"`
	ResumeFile  string      `json:"resume_file" gorm:"type:varchar(500)"` // stored filename under uploads

	Status   string `json:"status" gorm:"type:varchar(50);default:'new';index"`
	Priority string `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	Source   string `json:"source" gorm:"type:varchar(50);default:'website'"`

	AssignedToID *uint      `json:"assigned_to_id" gorm:"index"`
	AssignedTo   *User      `json:"assigned_to,omitempty" gorm:"foreignKey:AssignedToID"`
	AssignedAt   *time.Time `json:"assigned_at"`

	Notes []ApplicationNote `json:"notes,omitempty" gorm:"foreignKey:ApplicationID"`

	IPAddress string `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent string `json:"user_agent" gorm:"type:varchar(500)"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplicationNote is a recruiter note attached to an application.
type ApplicationNote struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ApplicationID uint      `json:"application_id" gorm:"not null;index"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	AddedByID     uint      `json:"added_by_id" gorm:"not null"`
	AddedBy       *User     `json:"added_by,omitempty" gorm:"foreignKey:AddedByID"`
	CreatedAt     time.Time `json:"created_at"`
}
