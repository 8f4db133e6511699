package models

import (
	"time"
)

// Audit actions form a closed enumeration.
const (
	AuditActionCreate   = "create"
	AuditActionRead     = "read"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionLogin    = "login"
	AuditActionLogout   = "logout"
	AuditActionUpload   = "upload"
	AuditActionDownload = "download"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// AuditModelBulk is the ModelID sentinel for operations affecting a set.
const AuditModelBulk = "bulk"

// AuditLog is an immutable record of one completed mutating action.
// Entries are appended once and never updated or deleted.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"` // nullable: unauthenticated or system actions
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Action    string    `json:"action" gorm:"type:varchar(50);not null;index"`
	Model     string    `json:"model" gorm:"type:varchar(100);not null;index"`
	ModelID   string    `json:"model_id" gorm:"type:varchar(255)"`
	Changes   string    `json:"changes" gorm:"type:text"` // snapshot of the triggering request payload
	IPAddress string    `json:"ip_address" gorm:"type:varchar(45);not null"`
	UserAgent string    `json:"user_agent" gorm:"type:varchar(500)"`
	Severity  string    `json:"severity" gorm:"type:varchar(20);default:'low'"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// SeverityFor applies the static classification policy: deletes are high
// severity, everything else low.
func SeverityFor(action string) string {
	if action == AuditActionDelete {
		return SeverityHigh
	}
	return SeverityLow
}
