package repository

import (
	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NamedGeometryRepository handles database operations for geometry templates
type NamedGeometryRepository struct {
	db *gorm.DB
}

// NewNamedGeometryRepository creates a new geometry template repository
func NewNamedGeometryRepository(db *gorm.DB) *NamedGeometryRepository {
	return &NamedGeometryRepository{db: db}
}

// Create creates a new geometry template
func (r *NamedGeometryRepository) Create(geometry *models.NamedGeometry) error {
	return r.db.Create(geometry).Error
}

// GetByID retrieves a geometry template by ID
func (r *NamedGeometryRepository) GetByID(id uuid.UUID) (*models.NamedGeometry, error) {
	var geometry models.NamedGeometry
	err := r.db.First(&geometry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &geometry, nil
}

// GetByName retrieves a geometry template by name
func (r *NamedGeometryRepository) GetByName(name string) (*models.NamedGeometry, error) {
	var geometry models.NamedGeometry
	err := r.db.First(&geometry, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &geometry, nil
}

// GetAll retrieves all geometry templates with pagination
func (r *NamedGeometryRepository) GetAll(limit, offset int) ([]models.NamedGeometry, int64, error) {
	var geometries []models.NamedGeometry
	var total int64

	if err := r.db.Model(&models.NamedGeometry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name ASC").Find(&geometries).Error
	if err != nil {
		return nil, 0, err
	}

	return geometries, total, nil
}

// Update updates a geometry template
func (r *NamedGeometryRepository) Update(geometry *models.NamedGeometry) error {
	return r.db.Save(geometry).Error
}

// Delete deletes a geometry template
func (r *NamedGeometryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.NamedGeometry{}, "id = ?", id).Error
}
