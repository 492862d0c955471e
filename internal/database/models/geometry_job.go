package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GeometryJob is a request to run a geometry template with user-supplied
// parameters. An external worker claims pending jobs over the API-key
// endpoints and uploads the produced 3MF model when done.
type GeometryJob struct {
	BaseModel
	OrganizationID  uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	NamedGeometryID uuid.UUID         `json:"named_geometry_id" gorm:"type:uuid;not null;index" validate:"required"`
	RequestedByID   *uuid.UUID        `json:"requested_by_id,omitempty" gorm:"type:uuid"`
	Label           string            `json:"label" gorm:"size:200" validate:"max=200"`
	Parameters      json.RawMessage   `json:"parameters" gorm:"type:jsonb;not null"`
	Status          GeometryJobStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ErrorMessage    string            `json:"error_message,omitempty" gorm:"type:text"`
	StartedAt       *time.Time        `json:"started_at,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`

	// Result artifact: either inline bytes or an external blob URL.
	ModelFile    []byte `json:"-" gorm:"type:bytea"`
	ModelFileURL string `json:"model_file_url,omitempty" gorm:"size:2000"`

	// Relationships
	NamedGeometry *NamedGeometry `json:"named_geometry,omitempty" gorm:"foreignKey:NamedGeometryID"`
	PrintJobs     []PrintJob     `json:"print_jobs,omitempty" gorm:"foreignKey:GeometryJobID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GeometryJob
func (GeometryJob) TableName() string {
	return "geometry_jobs"
}

// HasModel reports whether a result artifact is available for download
func (j *GeometryJob) HasModel() bool {
	return len(j.ModelFile) > 0 || j.ModelFileURL != ""
}
