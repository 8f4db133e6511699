package models

import (
	"time"
)

// Testimonial is a success story shown on the public site.
type Testimonial struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Position    string    `json:"position" gorm:"type:varchar(255);not null"`
	Company     string    `json:"company" gorm:"type:varchar(255);not null"`
	Location    string    `json:"location" gorm:"type:varchar(255)"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Rating      int       `json:"rating" gorm:"default:5"` // 1..5
	Image       string    `json:"image" gorm:"type:varchar(500)"`
	JobCategory string    `json:"job_category" gorm:"type:varchar(100)"`
	Featured    bool      `json:"featured" gorm:"default:false;index"`
	IsActive    bool      `json:"is_active" gorm:"default:true;index"`
	Order       int       `json:"order" gorm:"column:sort_order;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Event is a workshop, seminar, career fair or similar announcement.
type Event struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title" gorm:"type:varchar(255);not null"`
	Description      string     `json:"description" gorm:"type:text;not null"`
	EventType        string     `json:"event_type" gorm:"type:varchar(50);not null;index"` // career_fair, workshop, seminar, networking, webinar, interview_day, other
	StartDate        time.Time  `json:"start_date" gorm:"not null;index"`
	EndDate          time.Time  `json:"end_date" gorm:"not null"`
	Location         string     `json:"location" gorm:"type:varchar(255)"`
	Online           bool       `json:"online" gorm:"default:false"`
	MeetingLink      string     `json:"meeting_link" gorm:"type:varchar(500)"`
	Image            string     `json:"image" gorm:"type:varchar(500)"`
	RegistrationOpen bool       `json:"registration_open" gorm:"default:false"`
	Capacity         int        `json:"capacity" gorm:"default:0"` // 0 = unlimited
	Registered       int        `json:"registered" gorm:"default:0"`
	Featured         bool       `json:"featured" gorm:"default:false;index"`
	IsActive         bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
)

// Page is a CMS document addressed by slug on the public site.
type Page struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null"`
	Slug           string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	Content        string    `json:"content" gorm:"type:text"`
	Status         string    `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	SEOTitle       string    `json:"seo_title" gorm:"type:varchar(255)"`
	SEODescription string    `json:"seo_description" gorm:"type:varchar(500)"`
	AuthorID       *uint     `json:"author_id"`
	Author         *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
