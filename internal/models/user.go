package models

import (
	"time"
)

// Role is a named, reusable bundle of permission tokens shared by many users.
type Role struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string      `json:"description" gorm:"type:varchar(255)"`
	Permissions StringArray `json:"permissions" gorm:"type:json"`
	IsSystem    bool        `json:"is_system" gorm:"default:false"` // built-in roles cannot be deleted
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Allows reports whether the role grants the required capability, either via
// the "all" wildcard or an exact token match.
func (r *Role) Allows(permission string) bool {
	return r.Permissions.Contains(PermissionAll) || r.Permissions.Contains(permission)
}

// User is an authenticated back-office actor. Users are soft-deactivated,
// never deleted; an inactive user can never resolve a token.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"type:varchar(255);not null"`
	Email        string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"` // stored lowercase
	PasswordHash string     `json:"-" gorm:"type:varchar(255);not null"`
	Phone        string     `json:"phone" gorm:"type:varchar(50)"`
	ProfileImage string     `json:"profile_image" gorm:"type:varchar(500)"`
	RoleID       uint       `json:"role_id" gorm:"not null;index"`
	Role         Role       `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`
	MFAEnabled   bool       `json:"mfa_enabled" gorm:"default:false"`
	MFASecret    string     `json:"-" gorm:"type:varchar(255)"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
