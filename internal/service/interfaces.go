package service

import (
	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization business logic
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user business logic
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll(page, pageSize int) (*UserListResponse, error)
	GetByOrganization(orgID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	ChangePassword(id uuid.UUID, req *ChangePasswordRequest) error
	Delete(id uuid.UUID) error
}

// ApiKeyServiceInterface defines the interface for API key business logic
type ApiKeyServiceInterface interface {
	Create(orgID uuid.UUID, req *CreateApiKeyRequest) (*CreatedApiKeyResponse, error)
	List(orgID uuid.UUID) ([]ApiKeyResponse, error)
	Authenticate(rawKey string) (*models.ApiKey, error)
	Delete(orgID, id uuid.UUID) error
}

// NamedGeometryServiceInterface defines the interface for geometry template business logic
type NamedGeometryServiceInterface interface {
	Create(req *CreateNamedGeometryRequest) (*NamedGeometryResponse, error)
	GetByID(id uuid.UUID) (*NamedGeometryResponse, error)
	GetAll(page, pageSize int) (*NamedGeometryListResponse, error)
	Update(id uuid.UUID, req *UpdateNamedGeometryRequest) (*NamedGeometryResponse, error)
	Delete(id uuid.UUID) error
}

// GeometryJobServiceInterface defines the interface for geometry job business logic
type GeometryJobServiceInterface interface {
	Create(orgID uuid.UUID, requestedBy *uuid.UUID, req *CreateGeometryJobRequest) (*GeometryJobResponse, error)
	GetByID(orgID, id uuid.UUID) (*GeometryJobResponse, error)
	List(orgID uuid.UUID, status models.GeometryJobStatus, page, pageSize int) (*GeometryJobListResponse, error)
	ClaimNext(orgID uuid.UUID) (*ClaimedGeometryJobResponse, error)
	Complete(orgID, id uuid.UUID, req *CompleteGeometryJobRequest) (*GeometryJobResponse, error)
	DownloadModel(orgID, id uuid.UUID) (*ModelArtifact, error)
	Delete(orgID, id uuid.UUID) error
}

// PrintJobServiceInterface defines the interface for print queue business logic
type PrintJobServiceInterface interface {
	Create(orgID uuid.UUID, req *CreatePrintJobRequest) (*PrintJobResponse, error)
	GetByID(orgID, id uuid.UUID) (*PrintJobResponse, error)
	List(orgID uuid.UUID, status models.PrintStatus, page, pageSize int) (*PrintJobListResponse, error)
	ListReady(orgID uuid.UUID) ([]PrintJobResponse, error)
	Start(orgID, id uuid.UUID, req *StartPrintRequest) (*PrintJobResponse, error)
	ReportProgress(orgID, id uuid.UUID, req *ReportProgressRequest) (*PrintJobResponse, error)
	Complete(orgID, id uuid.UUID, req *CompletePrintRequest) (*PrintJobResponse, error)
	Decide(orgID, id uuid.UUID, req *DecideRequest) (*PrintJobResponse, error)
	UploadGcode(orgID, id uuid.UUID, data []byte, url string) error
	DownloadGcode(orgID, id uuid.UUID) (*GcodeArtifact, error)
	Delete(orgID, id uuid.UUID) error
}

// InvitationServiceInterface defines the interface for invitation business logic
type InvitationServiceInterface interface {
	Create(orgID uuid.UUID, createdBy *uuid.UUID, req *CreateInvitationRequest) (*CreatedInvitationResponse, error)
	List(orgID uuid.UUID) ([]InvitationResponse, error)
	Preview(token string) (*InvitationPreviewResponse, error)
	Accept(token string, req *AcceptInvitationRequest) (*UserResponse, error)
	Delete(orgID, id uuid.UUID) error
}

// LinkServiceInterface defines the interface for shortlink business logic
type LinkServiceInterface interface {
	Create(createdBy *uuid.UUID, req *CreateLinkRequest) (*LinkResponse, error)
	Resolve(slug string) (string, error)
	GetAll(page, pageSize int) (*LinkListResponse, error)
	Delete(id uuid.UUID) error
}

// ModelArtifact is a downloadable geometry result: inline bytes or a blob URL
type ModelArtifact struct {
	Data        []byte
	URL         string
	ContentType string
	Filename    string
}

// GcodeArtifact is a downloadable toolpath: inline bytes or a blob URL
type GcodeArtifact struct {
	Data     []byte
	URL      string
	Filename string
}
