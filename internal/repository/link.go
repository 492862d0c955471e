package repository

import (
	"time"

	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRepository handles database operations for shortlinks
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// Create creates a new link
func (r *LinkRepository) Create(link *models.Link) error {
	return r.db.Create(link).Error
}

// GetByID retrieves a link by ID
func (r *LinkRepository) GetByID(id uuid.UUID) (*models.Link, error) {
	var link models.Link
	err := r.db.First(&link, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetBySlug retrieves a link by its slug
func (r *LinkRepository) GetBySlug(slug string) (*models.Link, error) {
	var link models.Link
	err := r.db.First(&link, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetAll retrieves all links with pagination
func (r *LinkRepository) GetAll(limit, offset int) ([]models.Link, int64, error) {
	var links []models.Link
	var total int64

	if err := r.db.Model(&models.Link{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at DESC").Find(&links).Error
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

// RecordVisit bumps the visit counter atomically and stamps the visit time
func (r *LinkRepository) RecordVisit(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Link{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"visit_count":     gorm.Expr("visit_count + 1"),
			"last_visited_at": at,
		}).Error
}

// Delete deletes a link
func (r *LinkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Link{}, "id = ?", id).Error
}
