package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeometryJobService handles business logic for the geometry-processing queue
type GeometryJobService struct {
	repo         repository.GeometryJobRepositoryInterface
	geometryRepo repository.NamedGeometryRepositoryInterface
	validator    *validator.Validate
	now          func() time.Time
}

// NewGeometryJobService creates a new geometry job service
func NewGeometryJobService(repo repository.GeometryJobRepositoryInterface, geometryRepo repository.NamedGeometryRepositoryInterface, validator *validator.Validate) *GeometryJobService {
	return &GeometryJobService{
		repo:         repo,
		geometryRepo: geometryRepo,
		validator:    validator,
		now:          time.Now,
	}
}

// CreateGeometryJobRequest represents the request to enqueue a geometry job
type CreateGeometryJobRequest struct {
	NamedGeometryID uuid.UUID       `json:"named_geometry_id" validate:"required"`
	Label           string          `json:"label" validate:"max=200"`
	Parameters      json.RawMessage `json:"parameters"`
}

// CompleteGeometryJobRequest represents the worker's completion report.
// Success requires a model artifact; failure requires an error message.
type CompleteGeometryJobRequest struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty" validate:"max=2000"`
	Model        []byte `json:"model,omitempty"`
	ModelFileURL string `json:"model_file_url,omitempty" validate:"omitempty,url,max=2000"`
}

// GeometryJobResponse represents the response for geometry job operations
type GeometryJobResponse struct {
	ID              uuid.UUID                `json:"id"`
	OrganizationID  uuid.UUID                `json:"organization_id"`
	NamedGeometryID uuid.UUID                `json:"named_geometry_id"`
	GeometryName    string                   `json:"geometry_name,omitempty"`
	RequestedByID   *uuid.UUID               `json:"requested_by_id,omitempty"`
	Label           string                   `json:"label"`
	Parameters      json.RawMessage          `json:"parameters"`
	Status          models.GeometryJobStatus `json:"status"`
	ErrorMessage    string                   `json:"error_message,omitempty"`
	HasModel        bool                     `json:"has_model"`
	StartedAt       *time.Time               `json:"started_at,omitempty"`
	CompletedAt     *time.Time               `json:"completed_at,omitempty"`
	CreatedAt       string                   `json:"created_at"`
}

// ClaimedGeometryJobResponse is what a worker receives when it claims a job:
// the job plus the template schema it needs to run the algorithm.
type ClaimedGeometryJobResponse struct {
	GeometryJobResponse
	GeometryVersion int                          `json:"geometry_version"`
	Schema          []models.ParameterDefinition `json:"schema"`
}

// GeometryJobListResponse represents a paginated list of geometry jobs
type GeometryJobListResponse struct {
	Jobs     []GeometryJobResponse `json:"jobs"`
	Total    int64                 `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Create validates the parameters against the template schema and enqueues
// a pending job
func (s *GeometryJobService) Create(orgID uuid.UUID, requestedBy *uuid.UUID, req *CreateGeometryJobRequest) (*GeometryJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	geometry, err := s.geometryRepo.GetByID(req.NamedGeometryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNamedGeometryNotFound
		}
		return nil, fmt.Errorf("failed to get geometry: %w", err)
	}

	defs, err := geometry.Parameters()
	if err != nil {
		return nil, fmt.Errorf("failed to decode parameter schema: %w", err)
	}
	if err := validateParameterValues(defs, req.Parameters); err != nil {
		return nil, err
	}
	parameters, err := applyParameterDefaults(defs, req.Parameters)
	if err != nil {
		return nil, err
	}

	job := &models.GeometryJob{
		OrganizationID:  orgID,
		NamedGeometryID: geometry.ID,
		RequestedByID:   requestedBy,
		Label:           req.Label,
		Parameters:      parameters,
		Status:          models.GeometryJobPending,
	}

	if err := s.repo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create geometry job: %w", err)
	}
	job.NamedGeometry = geometry

	return s.toResponse(job), nil
}

// GetByID retrieves a geometry job scoped to the caller's organization.
// Jobs of other organizations are reported as not found.
func (s *GeometryJobService) GetByID(orgID, id uuid.UUID) (*GeometryJobResponse, error) {
	job, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(job), nil
}

// List retrieves an organization's geometry jobs with an optional status filter
func (s *GeometryJobService) List(orgID uuid.UUID, status models.GeometryJobStatus, page, pageSize int) (*GeometryJobListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown job status")
	}
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	jobs, total, err := s.repo.GetByOrganizationID(orgID, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get geometry jobs: %w", err)
	}

	responses := make([]GeometryJobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = *s.toResponse(&job)
	}

	return &GeometryJobListResponse{
		Jobs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ClaimNext hands the oldest pending job to a worker, moving it to processing.
// An empty queue yields ErrNoPendingJobs.
func (s *GeometryJobService) ClaimNext(orgID uuid.UUID) (*ClaimedGeometryJobResponse, error) {
	job, err := s.repo.ClaimNextPending(orgID, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoPendingJobs
		}
		return nil, fmt.Errorf("failed to claim geometry job: %w", err)
	}

	geometry, err := s.geometryRepo.GetByID(job.NamedGeometryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get geometry for claimed job: %w", err)
	}
	job.NamedGeometry = geometry

	defs, err := geometry.Parameters()
	if err != nil {
		return nil, fmt.Errorf("failed to decode parameter schema: %w", err)
	}

	return &ClaimedGeometryJobResponse{
		GeometryJobResponse: *s.toResponse(job),
		GeometryVersion:     geometry.Version,
		Schema:              defs,
	}, nil
}

// Complete records the worker's result for a processing job
func (s *GeometryJobService) Complete(orgID, id uuid.UUID, req *CompleteGeometryJobRequest) (*GeometryJobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Success && len(req.Model) == 0 && req.ModelFileURL == "" {
		return nil, apperrors.NewValidationError("model", "a successful job must include a model artifact")
	}
	if !req.Success && req.ErrorMessage == "" {
		return nil, apperrors.NewValidationError("error_message", "a failed job must include an error message")
	}

	job, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if job.Status != models.GeometryJobProcessing {
		return nil, apperrors.ErrGeometryJobNotCompleted
	}

	now := s.now()
	job.CompletedAt = &now
	if req.Success {
		job.Status = models.GeometryJobCompleted
		job.ModelFile = req.Model
		job.ModelFileURL = req.ModelFileURL
		job.ErrorMessage = ""
	} else {
		job.Status = models.GeometryJobFailed
		job.ErrorMessage = req.ErrorMessage
	}

	if err := s.repo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update geometry job: %w", err)
	}

	return s.toResponse(job), nil
}

// DownloadModel returns the produced model artifact of a completed job
func (s *GeometryJobService) DownloadModel(orgID, id uuid.UUID) (*ModelArtifact, error) {
	job, err := s.getScoped(orgID, id)
	if err != nil {
		return nil, err
	}
	if !job.HasModel() {
		return nil, apperrors.ErrModelFileNotFound
	}

	return &ModelArtifact{
		Data:        job.ModelFile,
		URL:         job.ModelFileURL,
		ContentType: "model/3mf",
		Filename:    fmt.Sprintf("geometry-%s.3mf", job.ID),
	}, nil
}

// Delete removes a geometry job unless a worker is currently processing it
func (s *GeometryJobService) Delete(orgID, id uuid.UUID) error {
	job, err := s.getScoped(orgID, id)
	if err != nil {
		return err
	}
	if job.Status == models.GeometryJobProcessing {
		return apperrors.ErrGeometryJobInProgress
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete geometry job: %w", err)
	}

	return nil
}

// getScoped fetches a job and hides cross-organization records
func (s *GeometryJobService) getScoped(orgID, id uuid.UUID) (*models.GeometryJob, error) {
	job, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGeometryJobNotFound
		}
		return nil, fmt.Errorf("failed to get geometry job: %w", err)
	}
	if job.OrganizationID != orgID {
		return nil, apperrors.ErrGeometryJobNotFound
	}
	return job, nil
}

// toResponse converts a geometry job model to response
func (s *GeometryJobService) toResponse(job *models.GeometryJob) *GeometryJobResponse {
	resp := &GeometryJobResponse{
		ID:              job.ID,
		OrganizationID:  job.OrganizationID,
		NamedGeometryID: job.NamedGeometryID,
		RequestedByID:   job.RequestedByID,
		Label:           job.Label,
		Parameters:      job.Parameters,
		Status:          job.Status,
		ErrorMessage:    job.ErrorMessage,
		HasModel:        job.HasModel(),
		StartedAt:       job.StartedAt,
		CompletedAt:     job.CompletedAt,
		CreatedAt:       job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if job.NamedGeometry != nil {
		resp.GeometryName = job.NamedGeometry.Name
	}
	return resp
}
