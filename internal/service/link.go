package service

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkService handles business logic for tracked shortlinks
type LinkService struct {
	repo      repository.LinkRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewLinkService creates a new link service
func NewLinkService(repo repository.LinkRepositoryInterface, validator *validator.Validate) *LinkService {
	return &LinkService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateLinkRequest represents the request to create a shortlink.
// An empty slug is filled with a random one.
type CreateLinkRequest struct {
	Slug      string `json:"slug" validate:"omitempty,max=40"`
	TargetURL string `json:"target_url" validate:"required,url,max=2000"`
}

// LinkResponse represents the response for link operations
type LinkResponse struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	TargetURL     string     `json:"target_url"`
	VisitCount    int64      `json:"visit_count"`
	LastVisitedAt *time.Time `json:"last_visited_at,omitempty"`
	CreatedAt     string     `json:"created_at"`
}

// LinkListResponse represents a paginated list of links
type LinkListResponse struct {
	Links    []LinkResponse `json:"links"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new shortlink
func (s *LinkService) Create(createdBy *uuid.UUID, req *CreateLinkRequest) (*LinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		generated, err := generateSlug()
		if err != nil {
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}
		slug = generated
	}

	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing link by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLinkExists
	}

	link := &models.Link{
		Slug:        slug,
		TargetURL:   req.TargetURL,
		CreatedByID: createdBy,
	}

	if err := s.repo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return s.toResponse(link), nil
}

// Resolve looks up a slug, records the visit and returns the target URL
func (s *LinkService) Resolve(slug string) (string, error) {
	link, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrLinkNotFound
		}
		return "", fmt.Errorf("failed to get link: %w", err)
	}

	if err := s.repo.RecordVisit(link.ID, s.now()); err != nil {
		return "", fmt.Errorf("failed to record visit: %w", err)
	}

	return link.TargetURL, nil
}

// GetAll retrieves all links with pagination
func (s *LinkService) GetAll(page, pageSize int) (*LinkListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	links, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}

	responses := make([]LinkResponse, len(links))
	for i, link := range links {
		responses[i] = *s.toResponse(&link)
	}

	return &LinkListResponse{
		Links:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete deletes a link
func (s *LinkService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return fmt.Errorf("failed to get link: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}

// toResponse converts a link model to response
func (s *LinkService) toResponse(link *models.Link) *LinkResponse {
	return &LinkResponse{
		ID:            link.ID,
		Slug:          link.Slug,
		TargetURL:     link.TargetURL,
		VisitCount:    link.VisitCount,
		LastVisitedAt: link.LastVisitedAt,
		CreatedAt:     link.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// generateSlug builds a short random slug
func generateSlug() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)), nil
}
