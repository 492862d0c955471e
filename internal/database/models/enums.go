package models

// UserRole defines the access level of a user account
type UserRole string

const (
	RoleSystemAdmin UserRole = "SYSTEM_ADMIN"
	RoleOrgAdmin    UserRole = "ORG_ADMIN"
	RoleMember      UserRole = "MEMBER"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSystemAdmin, RoleOrgAdmin, RoleMember:
		return true
	}
	return false
}

// GeometryJobStatus defines the lifecycle of a geometry-processing job
type GeometryJobStatus string

const (
	GeometryJobPending    GeometryJobStatus = "pending"
	GeometryJobProcessing GeometryJobStatus = "processing"
	GeometryJobCompleted  GeometryJobStatus = "completed"
	GeometryJobFailed     GeometryJobStatus = "failed"
)

// IsValid checks if the GeometryJobStatus is valid
func (s GeometryJobStatus) IsValid() bool {
	switch s {
	case GeometryJobPending, GeometryJobProcessing, GeometryJobCompleted, GeometryJobFailed:
		return true
	}
	return false
}

// PrintStatus is the derived state of a print-queue entry. It is computed
// from the entry's timestamps and decision, never stored.
type PrintStatus string

const (
	PrintStatusReady      PrintStatus = "ready"
	PrintStatusPrinting   PrintStatus = "printing"
	PrintStatusSuccessful PrintStatus = "successful"
	PrintStatusFailed     PrintStatus = "failed"
	PrintStatusAccepted   PrintStatus = "accepted"
	PrintStatusRejected   PrintStatus = "rejected"
)

// IsValid checks if the PrintStatus is valid
func (s PrintStatus) IsValid() bool {
	switch s {
	case PrintStatusReady, PrintStatusPrinting, PrintStatusSuccessful,
		PrintStatusFailed, PrintStatusAccepted, PrintStatusRejected:
		return true
	}
	return false
}

// AcceptanceDecision records the operator's verdict on a successful print
type AcceptanceDecision string

const (
	DecisionAccepted AcceptanceDecision = "accepted"
	DecisionRejected AcceptanceDecision = "rejected"
)

// IsValid checks if the AcceptanceDecision is valid
func (d AcceptanceDecision) IsValid() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

// ParameterType defines the value types a geometry template parameter can take
type ParameterType string

const (
	ParameterTypeNumber ParameterType = "number"
	ParameterTypeText   ParameterType = "text"
)

// IsValid checks if the ParameterType is valid
func (t ParameterType) IsValid() bool {
	return t == ParameterTypeNumber || t == ParameterTypeText
}

// API key scopes grant machine clients access to specific endpoint groups.
const (
	ScopeGeometryRead    = "geometry:read"
	ScopeGeometryProcess = "geometry:process"
	ScopePrintRead       = "print:read"
	ScopePrintReport     = "print:report"
)

// IsValidScope checks if a scope string is one of the known API key scopes
func IsValidScope(scope string) bool {
	switch scope {
	case ScopeGeometryRead, ScopeGeometryProcess, ScopePrintRead, ScopePrintReport:
		return true
	}
	return false
}
