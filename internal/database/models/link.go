package models

import (
	"time"

	"github.com/google/uuid"
)

// Link is a tracked shortlink. Resolving /l/:slug redirects to TargetURL and
// bumps the visit counter.
type Link struct {
	BaseModel
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null;size:40" validate:"required,max=40"`
	TargetURL     string     `json:"target_url" gorm:"not null;size:2000" validate:"required,url,max=2000"`
	VisitCount    int64      `json:"visit_count" gorm:"not null;default:0"`
	LastVisitedAt *time.Time `json:"last_visited_at,omitempty"`
	CreatedByID   *uuid.UUID `json:"created_by_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}
