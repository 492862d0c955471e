package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NamedGeometryService handles business logic for geometry templates
type NamedGeometryService struct {
	repo      repository.NamedGeometryRepositoryInterface
	validator *validator.Validate
}

// NewNamedGeometryService creates a new geometry template service
func NewNamedGeometryService(repo repository.NamedGeometryRepositoryInterface, validator *validator.Validate) *NamedGeometryService {
	return &NamedGeometryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateNamedGeometryRequest represents the request to create a geometry template
type CreateNamedGeometryRequest struct {
	Name        string                       `json:"name" validate:"required,min=1,max=100"`
	Title       string                       `json:"title" validate:"required,max=200"`
	Description string                       `json:"description,omitempty"`
	Parameters  []models.ParameterDefinition `json:"parameters" validate:"required"`
}

// UpdateNamedGeometryRequest represents the request to update a geometry template.
// Changing the parameter schema bumps the template version.
type UpdateNamedGeometryRequest struct {
	Title       string                       `json:"title" validate:"required,max=200"`
	Description string                       `json:"description,omitempty"`
	Parameters  []models.ParameterDefinition `json:"parameters" validate:"required"`
}

// NamedGeometryResponse represents the response for geometry template operations
type NamedGeometryResponse struct {
	ID          uuid.UUID                    `json:"id"`
	Name        string                       `json:"name"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Version     int                          `json:"version"`
	Parameters  []models.ParameterDefinition `json:"parameters"`
	CreatedAt   string                       `json:"created_at"`
	UpdatedAt   string                       `json:"updated_at"`
}

// NamedGeometryListResponse represents a paginated list of geometry templates
type NamedGeometryListResponse struct {
	Geometries []NamedGeometryResponse `json:"geometries"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
}

// Create creates a new geometry template
func (s *NamedGeometryService) Create(req *CreateNamedGeometryRequest) (*NamedGeometryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateParameterSchema(req.Parameters); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing geometry by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrNamedGeometryExists
	}

	schema, err := json.Marshal(req.Parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parameter schema: %w", err)
	}

	geometry := &models.NamedGeometry{
		Name:            req.Name,
		Title:           req.Title,
		Description:     req.Description,
		Version:         1,
		ParameterSchema: schema,
	}

	if err := s.repo.Create(geometry); err != nil {
		return nil, fmt.Errorf("failed to create geometry: %w", err)
	}

	return s.toResponse(geometry)
}

// GetByID retrieves a geometry template by ID
func (s *NamedGeometryService) GetByID(id uuid.UUID) (*NamedGeometryResponse, error) {
	geometry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNamedGeometryNotFound
		}
		return nil, fmt.Errorf("failed to get geometry: %w", err)
	}

	return s.toResponse(geometry)
}

// GetAll retrieves all geometry templates with pagination
func (s *NamedGeometryService) GetAll(page, pageSize int) (*NamedGeometryListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	geometries, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get geometries: %w", err)
	}

	responses := make([]NamedGeometryResponse, len(geometries))
	for i, geometry := range geometries {
		resp, err := s.toResponse(&geometry)
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &NamedGeometryListResponse{
		Geometries: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a geometry template, bumping the version when the
// parameter schema changes
func (s *NamedGeometryService) Update(id uuid.UUID, req *UpdateNamedGeometryRequest) (*NamedGeometryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateParameterSchema(req.Parameters); err != nil {
		return nil, err
	}

	geometry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNamedGeometryNotFound
		}
		return nil, fmt.Errorf("failed to get geometry: %w", err)
	}

	schema, err := json.Marshal(req.Parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parameter schema: %w", err)
	}

	geometry.Title = req.Title
	geometry.Description = req.Description
	if string(schema) != string(geometry.ParameterSchema) {
		geometry.ParameterSchema = schema
		geometry.Version++
	}

	if err := s.repo.Update(geometry); err != nil {
		return nil, fmt.Errorf("failed to update geometry: %w", err)
	}

	return s.toResponse(geometry)
}

// Delete deletes a geometry template
func (s *NamedGeometryService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNamedGeometryNotFound
		}
		return fmt.Errorf("failed to get geometry: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete geometry: %w", err)
	}

	return nil
}

// toResponse converts a geometry template model to response
func (s *NamedGeometryService) toResponse(geometry *models.NamedGeometry) (*NamedGeometryResponse, error) {
	defs, err := geometry.Parameters()
	if err != nil {
		return nil, fmt.Errorf("failed to decode parameter schema: %w", err)
	}
	return &NamedGeometryResponse{
		ID:          geometry.ID,
		Name:        geometry.Name,
		Title:       geometry.Title,
		Description: geometry.Description,
		Version:     geometry.Version,
		Parameters:  defs,
		CreatedAt:   geometry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   geometry.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
