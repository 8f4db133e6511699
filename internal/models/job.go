package models

import (
	"time"
)

// Job is a public listing: an overseas work placement or study program.
type Job struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"type:varchar(255);not null;index"`
	Company     string `json:"company" gorm:"type:varchar(255);not null"`
	Country     string `json:"country" gorm:"type:varchar(100);not null;index"`
	City        string `json:"city" gorm:"type:varchar(100)"`
	JobType     string `json:"job_type" gorm:"type:varchar(50);not null;index"` // Full-time, Part-time, Contract, Temporary, Internship, Remote
	Category    string `json:"category" gorm:"type:varchar(100);index"`
	Description string `json:"description" gorm:"type:text;not null"`

	SalaryMin int    `json:"salary_min"`
	SalaryMax int    `json:"salary_max"`
	Currency  string `json:"currency" gorm:"type:varchar(10);default:'USD'"`

	Requirements StringArray `json:"requirements" gorm:"type:json"`
	Benefits     StringArray `json:"benefits" gorm:"type:json"`
	Tags         StringArray `json:"tags" gorm:"type:json"`

	ExperienceLevel string `json:"experience_level" gorm:"type:varchar(50)"` // Entry Level, Mid Level, Senior Level, Executive
	Education       string `json:"education" gorm:"type:varchar(50)"`

	ContactEmail string `json:"contact_email" gorm:"type:varchar(255);not null"`
	ContactPhone string `json:"contact_phone" gorm:"type:varchar(50)"`
	CompanyLogo  string `json:"company_logo" gorm:"type:varchar(500)"`

	ApplicationDeadline *time.Time `json:"application_deadline"`
	StartDate           *time.Time `json:"start_date"`

	WorkPermitSponsorship  bool `json:"work_permit_sponsorship" gorm:"default:false"`
	AccommodationProvided  bool `json:"accommodation_provided" gorm:"default:false"`
	TransportationProvided bool `json:"transportation_provided" gorm:"default:false"`

	Featured bool `json:"featured" gorm:"default:false;index"`
	Urgent   bool `json:"urgent" gorm:"default:false"`
	IsActive bool `json:"is_active" gorm:"default:true;index"`

	// Denormalized counters maintained by the services.
	Views        int `json:"views" gorm:"default:0"`
	Applications int `json:"applications" gorm:"default:0"`

	CreatedByID *uint     `json:"created_by_id"`
	CreatedBy   *User     `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}
