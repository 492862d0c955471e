package models

import (
	"time"

	"github.com/google/uuid"
)

// InvitationLink lets an organization admin invite a person by email. The
// token is single-use and expires; accepting it creates the user account.
type InvitationLink struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Email          string     `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Role           UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'MEMBER'" validate:"required"`
	Token          string     `json:"-" gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt      time.Time  `json:"expires_at" gorm:"not null"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	CreatedByID    *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for InvitationLink
func (InvitationLink) TableName() string {
	return "invitation_links"
}

// IsExpired reports whether the invitation is past its expiry
func (i *InvitationLink) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsUsable reports whether the invitation can still be accepted
func (i *InvitationLink) IsUsable(now time.Time) bool {
	return i.UsedAt == nil && !i.IsExpired(now)
}
