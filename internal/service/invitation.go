package service

import (
	"errors"
	"fmt"
	"time"

	"splint-factory-backend/internal/auth"
	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InvitationService handles business logic for email invitations. Tokens are
// single-use; accepting one creates the invited user account.
type InvitationService struct {
	repo      repository.InvitationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	validator *validator.Validate
	ttl       time.Duration
	now       func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(repo repository.InvitationRepositoryInterface, userRepo repository.UserRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, validator *validator.Validate, ttl time.Duration) *InvitationService {
	return &InvitationService{
		repo:      repo,
		userRepo:  userRepo,
		orgRepo:   orgRepo,
		validator: validator,
		ttl:       ttl,
		now:       time.Now,
	}
}

// CreateInvitationRequest represents the request to invite a person by email
type CreateInvitationRequest struct {
	Email string          `json:"email" validate:"required,email,max=255"`
	Role  models.UserRole `json:"role" validate:"required"`
}

// AcceptInvitationRequest completes signup through an invitation token
type AcceptInvitationRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// InvitationResponse represents a stored invitation (never the token)
type InvitationResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	ExpiresAt      time.Time       `json:"expires_at"`
	UsedAt         *time.Time      `json:"used_at,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// CreatedInvitationResponse carries the one-time invitation token
type CreatedInvitationResponse struct {
	InvitationResponse
	Token string `json:"token"`
}

// InvitationPreviewResponse is the public view shown on the accept page
type InvitationPreviewResponse struct {
	OrganizationName string          `json:"organization_name"`
	Email            string          `json:"email"`
	Role             models.UserRole `json:"role"`
	ExpiresAt        time.Time       `json:"expires_at"`
}

// Create issues a new invitation token for an email address
func (s *InvitationService) Create(orgID uuid.UUID, createdBy *uuid.UUID, req *CreateInvitationRequest) (*CreatedInvitationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	// Invitations never grant system administration.
	if req.Role != models.RoleOrgAdmin && req.Role != models.RoleMember {
		return nil, apperrors.NewValidationError("role", "role must be ORG_ADMIN or MEMBER")
	}

	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	invitation := &models.InvitationLink{
		OrganizationID: orgID,
		Email:          req.Email,
		Role:           req.Role,
		Token:          token,
		ExpiresAt:      s.now().Add(s.ttl),
		CreatedByID:    createdBy,
	}

	if err := s.repo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &CreatedInvitationResponse{
		InvitationResponse: *s.toResponse(invitation),
		Token:              token,
	}, nil
}

// List retrieves an organization's invitations
func (s *InvitationService) List(orgID uuid.UUID) ([]InvitationResponse, error) {
	invitations, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}

	responses := make([]InvitationResponse, len(invitations))
	for i, invitation := range invitations {
		responses[i] = *s.toResponse(&invitation)
	}
	return responses, nil
}

// Preview resolves a token for the public accept page. Expired and used
// tokens are reported so the handler can answer 410.
func (s *InvitationService) Preview(token string) (*InvitationPreviewResponse, error) {
	invitation, err := s.getByToken(token)
	if err != nil {
		return nil, err
	}

	orgName := ""
	if invitation.Organization != nil {
		orgName = invitation.Organization.Name
	}

	return &InvitationPreviewResponse{
		OrganizationName: orgName,
		Email:            invitation.Email,
		Role:             invitation.Role,
		ExpiresAt:        invitation.ExpiresAt,
	}, nil
}

// Accept burns the token and creates the invited user account
func (s *InvitationService) Accept(token string, req *AcceptInvitationRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	invitation, err := s.getByToken(token)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(invitation.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	orgID := invitation.OrganizationID
	user := &models.User{
		OrganizationID: &orgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          invitation.Email,
		PasswordHash:   string(hash),
		Role:           invitation.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	now := s.now()
	invitation.UsedAt = &now
	if err := s.repo.Update(invitation); err != nil {
		return nil, fmt.Errorf("failed to mark invitation used: %w", err)
	}

	return &UserResponse{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Role:           user.Role,
		CreatedAt:      user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// Delete revokes an invitation. Other organizations' invitations are
// reported as not found.
func (s *InvitationService) Delete(orgID, id uuid.UUID) error {
	invitation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation.OrganizationID != orgID {
		return apperrors.ErrInvitationNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}

// getByToken resolves a token, surfacing used/expired state
func (s *InvitationService) getByToken(token string) (*models.InvitationLink, error) {
	invitation, err := s.repo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation.UsedAt != nil {
		return nil, apperrors.ErrInvitationUsed
	}
	if invitation.IsExpired(s.now()) {
		return nil, apperrors.ErrInvitationExpired
	}
	return invitation, nil
}

// toResponse converts an invitation model to response
func (s *InvitationService) toResponse(invitation *models.InvitationLink) *InvitationResponse {
	return &InvitationResponse{
		ID:             invitation.ID,
		OrganizationID: invitation.OrganizationID,
		Email:          invitation.Email,
		Role:           invitation.Role,
		ExpiresAt:      invitation.ExpiresAt,
		UsedAt:         invitation.UsedAt,
		CreatedAt:      invitation.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// generateInvitationToken builds a URL-safe single-use token
func generateInvitationToken() (string, error) {
	return auth.GenerateToken(32)
}
