package repository

import (
	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for invitation links
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.InvitationLink) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.InvitationLink, error) {
	var invitation models.InvitationLink
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByToken retrieves an invitation by its token, preloading the organization
func (r *InvitationRepository) GetByToken(token string) (*models.InvitationLink, error) {
	var invitation models.InvitationLink
	err := r.db.Preload("Organization").First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByOrganizationID retrieves all invitations of an organization
func (r *InvitationRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.InvitationLink, error) {
	var invitations []models.InvitationLink
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// Update updates an invitation
func (r *InvitationRepository) Update(invitation *models.InvitationLink) error {
	return r.db.Save(invitation).Error
}

// Delete deletes an invitation
func (r *InvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.InvitationLink{}, "id = ?", id).Error
}
