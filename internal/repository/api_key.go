package repository

import (
	"time"

	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApiKeyRepository handles database operations for API keys
type ApiKeyRepository struct {
	db *gorm.DB
}

// NewApiKeyRepository creates a new API key repository
func NewApiKeyRepository(db *gorm.DB) *ApiKeyRepository {
	return &ApiKeyRepository{db: db}
}

// Create creates a new API key
func (r *ApiKeyRepository) Create(key *models.ApiKey) error {
	return r.db.Create(key).Error
}

// GetByID retrieves an API key by ID
func (r *ApiKeyRepository) GetByID(id uuid.UUID) (*models.ApiKey, error) {
	var key models.ApiKey
	err := r.db.First(&key, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// GetByKeyHash retrieves an API key by the SHA-256 hash of the raw key
func (r *ApiKeyRepository) GetByKeyHash(hash string) (*models.ApiKey, error) {
	var key models.ApiKey
	err := r.db.First(&key, "key_hash = ?", hash).Error
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// GetByOrganizationID retrieves all API keys of an organization
func (r *ApiKeyRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.ApiKey, error) {
	var keys []models.ApiKey
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// TouchLastUsed stamps the key's last use without touching other columns
func (r *ApiKeyRepository) TouchLastUsed(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.ApiKey{}).Where("id = ?", id).
		UpdateColumn("last_used_at", at).Error
}

// Delete deletes an API key
func (r *ApiKeyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ApiKey{}, "id = ?", id).Error
}
