package models

import (
	"github.com/google/uuid"
)

// User represents an account that can sign in to the application.
// SYSTEM_ADMIN accounts may exist without an organization.
type User struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	FirstName      string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName       string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string     `json:"-" gorm:"not null;size:100"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'" validate:"required"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// BelongsTo reports whether the user is a member of the given organization
func (u *User) BelongsTo(orgID uuid.UUID) bool {
	return u.OrganizationID != nil && *u.OrganizationID == orgID
}
