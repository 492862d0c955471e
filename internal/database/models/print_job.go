package models

import (
	"time"

	"github.com/google/uuid"
)

// PrintJob tracks the physical 3D-printing of a geometry job's output file.
// One geometry job may feed several print attempts. The lifecycle state is
// derived from timestamps and the acceptance decision, never stored.
type PrintJob struct {
	BaseModel
	GeometryJobID  uuid.UUID `json:"geometry_job_id" gorm:"type:uuid;not null;index" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	PrinterName    string    `json:"printer_name" gorm:"size:100" validate:"max=100"`

	Progress               int        `json:"progress" gorm:"not null;default:0"`
	ProgressLastReportTime *time.Time `json:"progress_last_report_time,omitempty"`
	PrintStartedTime       *time.Time `json:"print_started_time,omitempty"`
	PrintCompletedTime     *time.Time `json:"print_completed_time,omitempty"`
	PrintSuccessful        *bool      `json:"print_successful,omitempty"`

	Decision     *AcceptanceDecision `json:"decision,omitempty" gorm:"type:varchar(10)"`
	DecisionTime *time.Time          `json:"decision_time,omitempty"`

	// Sliced toolpath: either inline bytes or an external blob URL.
	GcodeFile    []byte `json:"-" gorm:"type:bytea"`
	GcodeFileURL string `json:"gcode_file_url,omitempty" gorm:"size:2000"`

	// Relationships
	GeometryJob *GeometryJob `json:"geometry_job,omitempty" gorm:"foreignKey:GeometryJobID"`
}

// TableName returns the table name for PrintJob
func (PrintJob) TableName() string {
	return "print_jobs"
}

// Status derives the lifecycle state: no start time means ready, a start
// without completion means printing, completion splits into successful or
// failed, and a successful print is refined by the acceptance decision.
func (p *PrintJob) Status() PrintStatus {
	if p.PrintStartedTime == nil {
		return PrintStatusReady
	}
	if p.PrintCompletedTime == nil {
		return PrintStatusPrinting
	}
	if p.PrintSuccessful == nil || !*p.PrintSuccessful {
		return PrintStatusFailed
	}
	if p.Decision != nil {
		if *p.Decision == DecisionAccepted {
			return PrintStatusAccepted
		}
		return PrintStatusRejected
	}
	return PrintStatusSuccessful
}

// CanReportProgress reports whether a progress push is currently meaningful
func (p *PrintJob) CanReportProgress() bool {
	return p.PrintStartedTime != nil && p.PrintCompletedTime == nil
}

// CanDecide reports whether an accept/reject decision may be recorded
func (p *PrintJob) CanDecide() bool {
	return p.PrintCompletedTime != nil &&
		p.PrintSuccessful != nil && *p.PrintSuccessful &&
		p.Decision == nil
}

// HasGcode reports whether a toolpath artifact is available for download
func (p *PrintJob) HasGcode() bool {
	return len(p.GcodeFile) > 0 || p.GcodeFileURL != ""
}
