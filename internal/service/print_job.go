package service

import (
	"errors"
	"fmt"
	"time"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/events"
	"splint-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrintJobService handles business logic for the 3D-print queue. State
// transitions are pushed to the event hub so browser clients see progress live.
type PrintJobService struct {
	repo      repository.PrintJobRepositoryInterface
	jobRepo   repository.GeometryJobRepositoryInterface
	hub       *events.Hub
	validator *validator.Validate
	now       func() time.Time
}

// NewPrintJobService creates a new print job service
func NewPrintJobService(repo repository.PrintJobRepositoryInterface, jobRepo repository.GeometryJobRepositoryInterface, hub *events.Hub, validator *validator.Validate) *PrintJobService {
	return &PrintJobService{
		repo:      repo,
		jobRepo:   jobRepo,
		hub:       hub,
		validator: validator,
		now:       time.Now,
	}
}

// CreatePrintJobRequest represents the request to queue a print
type CreatePrintJobRequest struct {
	GeometryJobID uuid.UUID `json:"geometry_job_id" validate:"required"`
	PrinterName   string    `json:"printer_name" validate:"max=100"`
}

// StartPrintRequest marks the beginning of a physical print
type StartPrintRequest struct {
	PrinterName string `json:"printer_name" validate:"max=100"`
}

// ReportProgressRequest carries a progress push from the printer client
type ReportProgressRequest struct {
	Progress int `json:"progress" validate:"min=0,max=100"`
}

// CompletePrintRequest records the physical outcome of a print
type CompletePrintRequest struct {
	Successful bool `json:"successful"`
}

// DecideRequest records the operator's accept/reject verdict
type DecideRequest struct {
	Decision models.AcceptanceDecision `json:"decision" validate:"required"`
}

// PrintJobResponse represents the response for print job operations.
// Status is derived, never stored.
type PrintJobResponse struct {
	ID                     uuid.UUID                  `json:"id"`
	GeometryJobID          uuid.UUID                  `json:"geometry_job_id"`
	OrganizationID         uuid.UUID                  `json:"organization_id"`
	PrinterName            string                     `json:"printer_name"`
	Status                 models.PrintStatus         `json:"status"`
	Progress               int                        `json:"progress"`
	ProgressLastReportTime *time.Time                 `json:"progress_last_report_time,omitempty"`
	PrintStartedTime       *time.Time                 `json:"print_started_time,omitempty"`
	PrintCompletedTime     *time.Time                 `json:"print_completed_time,omitempty"`
	PrintSuccessful        *bool                      `json:"print_successful,omitempty"`
	Decision               *models.AcceptanceDecision `json:"decision,omitempty"`
	DecisionTime           *time.Time                 `json:"decision_time,omitempty"`
	HasGcode               bool                       `json:"has_gcode"`
	CreatedAt              string                     `json:"created_at"`
}

// PrintJobListResponse represents a paginated list of print jobs
type PrintJobListResponse struct {
	Jobs     []PrintJobResponse `json:"jobs"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create queues a print for a completed geometry job
func (s *PrintJobService) Create(orgID uuid.UUID, req *CreatePrintJobRequest) (*PrintJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	geometryJob, err := s.jobRepo.GetByID(req.GeometryJobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGeometryJobNotFound
		}
		return nil, fmt.Errorf("failed to get geometry job: %w", err)
	}
	if geometryJob.OrganizationID != orgID {
		return nil, apperrors.ErrGeometryJobNotFound
	}
	if geometryJob.Status != models.GeometryJobCompleted {
		return nil, apperrors.ErrGeometryJobNotCompleted
	}

	printJob := &models.PrintJob{
		GeometryJobID:  geometryJob.ID,
		OrganizationID: orgID,
		PrinterName:    req.PrinterName,
	}

	if err := s.repo.Create(printJob); err != nil {
		return nil, fmt.Errorf("failed to create print job: %w", err)
	}

	return s.toResponse(printJob), nil
}

// GetByID retrieves a print job scoped to the caller's organization
func (s *PrintJobService) GetByID(orgID, id uuid.UUID) (*PrintJobResponse, error) {
	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(printJob), nil
}

// List retrieves an organization's print jobs, optionally filtered by
// derived status
func (s *PrintJobService) List(orgID uuid.UUID, status models.PrintStatus, page, pageSize int) (*PrintJobListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown print status")
	}
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	jobs, total, err := s.repo.GetByOrganizationID(orgID, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get print jobs: %w", err)
	}

	responses := make([]PrintJobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = *s.toResponse(&job)
	}

	return &PrintJobListResponse{
		Jobs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListReady returns the printer client's work list, oldest first
func (s *PrintJobService) ListReady(orgID uuid.UUID) ([]PrintJobResponse, error) {
	jobs, err := s.repo.GetReadyByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ready print jobs: %w", err)
	}

	responses := make([]PrintJobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = *s.toResponse(&job)
	}
	return responses, nil
}

// Start marks the physical print as begun and announces it on the stream
func (s *PrintJobService) Start(orgID, id uuid.UUID, req *StartPrintRequest) (*PrintJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if printJob.PrintStartedTime != nil {
		return nil, apperrors.ErrPrintAlreadyStarted
	}

	now := s.now()
	printJob.PrintStartedTime = &now
	if req.PrinterName != "" {
		printJob.PrinterName = req.PrinterName
	}

	if err := s.repo.Update(printJob); err != nil {
		return nil, fmt.Errorf("failed to update print job: %w", err)
	}

	s.publish(events.EventStarted, printJob)
	return s.toResponse(printJob), nil
}

// ReportProgress records a progress push. Reports are last-write-wins;
// out-of-order deliveries simply overwrite.
func (s *PrintJobService) ReportProgress(orgID, id uuid.UUID, req *ReportProgressRequest) (*PrintJobResponse, error) {
	if req.Progress < 0 || req.Progress > 100 {
		return nil, apperrors.ErrInvalidProgress
	}

	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if printJob.PrintStartedTime == nil {
		return nil, apperrors.ErrPrintNotStarted
	}
	if printJob.PrintCompletedTime != nil {
		return nil, apperrors.ErrPrintAlreadyCompleted
	}

	now := s.now()
	printJob.Progress = req.Progress
	printJob.ProgressLastReportTime = &now

	if err := s.repo.Update(printJob); err != nil {
		return nil, fmt.Errorf("failed to update print job: %w", err)
	}

	s.publish(events.EventProgress, printJob)
	return s.toResponse(printJob), nil
}

// Complete records the print's physical outcome
func (s *PrintJobService) Complete(orgID, id uuid.UUID, req *CompletePrintRequest) (*PrintJobResponse, error) {
	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if printJob.PrintStartedTime == nil {
		return nil, apperrors.ErrPrintNotStarted
	}
	if printJob.PrintCompletedTime != nil {
		return nil, apperrors.ErrPrintAlreadyCompleted
	}

	now := s.now()
	printJob.PrintCompletedTime = &now
	printJob.PrintSuccessful = &req.Successful
	if req.Successful {
		printJob.Progress = 100
		printJob.ProgressLastReportTime = &now
	}

	if err := s.repo.Update(printJob); err != nil {
		return nil, fmt.Errorf("failed to update print job: %w", err)
	}

	s.publish(events.EventCompleted, printJob)
	return s.toResponse(printJob), nil
}

// Decide records the operator's accept/reject verdict on a successful print
func (s *PrintJobService) Decide(orgID, id uuid.UUID, req *DecideRequest) (*PrintJobResponse, error) {
	if !req.Decision.IsValid() {
		return nil, apperrors.NewValidationError("decision", "decision must be accepted or rejected")
	}

	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if printJob.PrintCompletedTime == nil {
		return nil, apperrors.ErrPrintNotCompleted
	}
	if printJob.Decision != nil {
		return nil, apperrors.ErrDecisionAlreadyMade
	}
	if printJob.PrintSuccessful == nil || !*printJob.PrintSuccessful {
		return nil, apperrors.ErrDecisionNotAllowed
	}

	now := s.now()
	printJob.Decision = &req.Decision
	printJob.DecisionTime = &now

	if err := s.repo.Update(printJob); err != nil {
		return nil, fmt.Errorf("failed to update print job: %w", err)
	}

	s.publish(events.EventDecision, printJob)
	return s.toResponse(printJob), nil
}

// UploadGcode attaches the sliced toolpath to a print job
func (s *PrintJobService) UploadGcode(orgID, id uuid.UUID, data []byte, url string) error {
	if len(data) == 0 && url == "" {
		return apperrors.NewValidationError("gcode", "gcode data or url is required")
	}

	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return err
	}

	printJob.GcodeFile = data
	printJob.GcodeFileURL = url

	if err := s.repo.Update(printJob); err != nil {
		return fmt.Errorf("failed to update print job: %w", err)
	}

	return nil
}

// DownloadGcode returns the toolpath artifact of a print job
func (s *PrintJobService) DownloadGcode(orgID, id uuid.UUID) (*GcodeArtifact, error) {
	printJob, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if !printJob.HasGcode() {
		return nil, apperrors.ErrGcodeFileNotFound
	}

	return &GcodeArtifact{
		Data:     printJob.GcodeFile,
		URL:      printJob.GcodeFileURL,
		Filename: fmt.Sprintf("print-%s.gcode", printJob.ID),
	}, nil
}

// Delete removes a print-queue entry
func (s *PrintJobService) Delete(orgID, id uuid.UUID) error {
	_, err := s.getScoped(orgID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete print job: %w", err)
	}

	return nil
}

// getScoped fetches a print job and hides cross-organization records
func (s *PrintJobService) getScoped(orgID, id uuid.UUID) (*models.PrintJob, error) {
	printJob, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPrintJobNotFound
		}
		return nil, fmt.Errorf("failed to get print job: %w", err)
	}
	if printJob.OrganizationID != orgID {
		return nil, apperrors.ErrPrintJobNotFound
	}
	return printJob, nil
}

// publish pushes a state change onto the live stream
func (s *PrintJobService) publish(eventType events.EventType, printJob *models.PrintJob) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(events.Event{
		Type:                   eventType,
		ID:                     printJob.ID,
		Progress:               printJob.Progress,
		ProgressLastReportTime: printJob.ProgressLastReportTime,
	})
}

// toResponse converts a print job model to response
func (s *PrintJobService) toResponse(printJob *models.PrintJob) *PrintJobResponse {
	return &PrintJobResponse{
		ID:                     printJob.ID,
		GeometryJobID:          printJob.GeometryJobID,
		OrganizationID:         printJob.OrganizationID,
		PrinterName:            printJob.PrinterName,
		Status:                 printJob.Status(),
		Progress:               printJob.Progress,
		ProgressLastReportTime: printJob.ProgressLastReportTime,
		PrintStartedTime:       printJob.PrintStartedTime,
		PrintCompletedTime:     printJob.PrintCompletedTime,
		PrintSuccessful:        printJob.PrintSuccessful,
		Decision:               printJob.Decision,
		DecisionTime:           printJob.DecisionTime,
		HasGcode:               printJob.HasGcode(),
		CreatedAt:              printJob.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
