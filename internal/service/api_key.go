package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"splint-factory-backend/internal/auth"
	"splint-factory-backend/internal/database/models"
	apperrors "splint-factory-backend/internal/errors"
	"splint-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApiKeyService handles business logic for machine-client API keys.
// The plaintext key is returned exactly once at creation; afterwards only
// the SHA-256 hash is kept for lookup.
type ApiKeyService struct {
	repo      repository.ApiKeyRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewApiKeyService creates a new API key service
func NewApiKeyService(repo repository.ApiKeyRepositoryInterface, validator *validator.Validate) *ApiKeyService {
	return &ApiKeyService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateApiKeyRequest represents the request to create an API key
type CreateApiKeyRequest struct {
	Name   string   `json:"name" validate:"required,max=100"`
	Scopes []string `json:"scopes" validate:"required,min=1"`
}

// ApiKeyResponse represents a stored API key (never the plaintext)
type ApiKeyResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	Prefix         string     `json:"prefix"`
	Scopes         []string   `json:"scopes"`
	LastUsedAt     *time.Time `json:"last_used_at,omitempty"`
	CreatedAt      string     `json:"created_at"`
}

// CreatedApiKeyResponse carries the one-time plaintext key
type CreatedApiKeyResponse struct {
	ApiKeyResponse
	Key string `json:"key"`
}

// Create creates a new API key and returns its plaintext exactly once
func (s *ApiKeyService) Create(orgID uuid.UUID, req *CreateApiKeyRequest) (*CreatedApiKeyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for _, scope := range req.Scopes {
		if !models.IsValidScope(scope) {
			return nil, apperrors.ErrInvalidScope
		}
	}

	raw, err := generateRawKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key: %w", err)
	}

	key := &models.ApiKey{
		OrganizationID: orgID,
		Name:           req.Name,
		Prefix:         raw[:8],
		KeyHash:        hashRawKey(raw),
		Scopes:         strings.Join(req.Scopes, ","),
	}

	if err := s.repo.Create(key); err != nil {
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}

	return &CreatedApiKeyResponse{
		ApiKeyResponse: *s.toResponse(key),
		Key:            raw,
	}, nil
}

// List retrieves an organization's API keys
func (s *ApiKeyService) List(orgID uuid.UUID) ([]ApiKeyResponse, error) {
	keys, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get api keys: %w", err)
	}

	responses := make([]ApiKeyResponse, len(keys))
	for i, key := range keys {
		responses[i] = *s.toResponse(&key)
	}
	return responses, nil
}

// Authenticate resolves a plaintext key to its stored record and stamps its
// last use. Unknown keys yield ErrInvalidApiKey.
func (s *ApiKeyService) Authenticate(rawKey string) (*models.ApiKey, error) {
	if rawKey == "" {
		return nil, apperrors.ErrInvalidApiKey
	}

	key, err := s.repo.GetByKeyHash(hashRawKey(rawKey))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidApiKey
		}
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	if err := s.repo.TouchLastUsed(key.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to stamp api key use: %w", err)
	}

	return key, nil
}

// Delete revokes an API key. Keys of other organizations are reported as
// not found rather than forbidden.
func (s *ApiKeyService) Delete(orgID, id uuid.UUID) error {
	key, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApiKeyNotFound
		}
		return fmt.Errorf("failed to get api key: %w", err)
	}
	if key.OrganizationID != orgID {
		return apperrors.ErrApiKeyNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}

	return nil
}

// toResponse converts an API key model to response
func (s *ApiKeyService) toResponse(key *models.ApiKey) *ApiKeyResponse {
	return &ApiKeyResponse{
		ID:             key.ID,
		OrganizationID: key.OrganizationID,
		Name:           key.Name,
		Prefix:         key.Prefix,
		Scopes:         key.ScopeList(),
		LastUsedAt:     key.LastUsedAt,
		CreatedAt:      key.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// generateRawKey builds an "sfk_" prefixed random key
func generateRawKey() (string, error) {
	token, err := auth.GenerateToken(24)
	if err != nil {
		return "", err
	}
	return "sfk_" + token, nil
}

// hashRawKey returns the hex SHA-256 digest stored for lookup
func hashRawKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
