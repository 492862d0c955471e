package repository

import (
	"time"

	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ApiKeyRepositoryInterface defines the interface for API key repository operations
type ApiKeyRepositoryInterface interface {
	Create(key *models.ApiKey) error
	GetByID(id uuid.UUID) (*models.ApiKey, error)
	GetByKeyHash(hash string) (*models.ApiKey, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.ApiKey, error)
	TouchLastUsed(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// NamedGeometryRepositoryInterface defines the interface for geometry template repository operations
type NamedGeometryRepositoryInterface interface {
	Create(geometry *models.NamedGeometry) error
	GetByID(id uuid.UUID) (*models.NamedGeometry, error)
	GetByName(name string) (*models.NamedGeometry, error)
	GetAll(limit, offset int) ([]models.NamedGeometry, int64, error)
	Update(geometry *models.NamedGeometry) error
	Delete(id uuid.UUID) error
}

// GeometryJobRepositoryInterface defines the interface for geometry job repository operations
type GeometryJobRepositoryInterface interface {
	Create(job *models.GeometryJob) error
	GetByID(id uuid.UUID) (*models.GeometryJob, error)
	GetByOrganizationID(orgID uuid.UUID, status models.GeometryJobStatus, limit, offset int) ([]models.GeometryJob, int64, error)
	ClaimNextPending(orgID uuid.UUID, now time.Time) (*models.GeometryJob, error)
	Update(job *models.GeometryJob) error
	Delete(id uuid.UUID) error
}

// PrintJobRepositoryInterface defines the interface for print queue repository operations
type PrintJobRepositoryInterface interface {
	Create(job *models.PrintJob) error
	GetByID(id uuid.UUID) (*models.PrintJob, error)
	GetByOrganizationID(orgID uuid.UUID, status models.PrintStatus, limit, offset int) ([]models.PrintJob, int64, error)
	GetReadyByOrganizationID(orgID uuid.UUID) ([]models.PrintJob, error)
	Update(job *models.PrintJob) error
	Delete(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.InvitationLink) error
	GetByID(id uuid.UUID) (*models.InvitationLink, error)
	GetByToken(token string) (*models.InvitationLink, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.InvitationLink, error)
	Update(invitation *models.InvitationLink) error
	Delete(id uuid.UUID) error
}

// LinkRepositoryInterface defines the interface for shortlink repository operations
type LinkRepositoryInterface interface {
	Create(link *models.Link) error
	GetByID(id uuid.UUID) (*models.Link, error)
	GetBySlug(slug string) (*models.Link, error)
	GetAll(limit, offset int) ([]models.Link, int64, error)
	RecordVisit(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}
