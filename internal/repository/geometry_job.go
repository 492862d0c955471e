package repository

import (
	"time"

	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GeometryJobRepository handles database operations for geometry jobs
type GeometryJobRepository struct {
	db *gorm.DB
}

// NewGeometryJobRepository creates a new geometry job repository
func NewGeometryJobRepository(db *gorm.DB) *GeometryJobRepository {
	return &GeometryJobRepository{db: db}
}

// Create creates a new geometry job
func (r *GeometryJobRepository) Create(job *models.GeometryJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a geometry job by ID, preloading its template
func (r *GeometryJobRepository) GetByID(id uuid.UUID) (*models.GeometryJob, error) {
	var job models.GeometryJob
	err := r.db.Preload("NamedGeometry").First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByOrganizationID retrieves an organization's geometry jobs with optional
// status filter and pagination, newest first
func (r *GeometryJobRepository) GetByOrganizationID(orgID uuid.UUID, status models.GeometryJobStatus, limit, offset int) ([]models.GeometryJob, int64, error) {
	var jobs []models.GeometryJob
	var total int64

	query := r.db.Model(&models.GeometryJob{}).Where("organization_id = ?", orgID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("NamedGeometry").
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// ClaimNextPending atomically moves the oldest pending job of an organization
// to processing. SKIP LOCKED keeps concurrent workers from claiming the same
// row. Returns gorm.ErrRecordNotFound when the queue is empty.
func (r *GeometryJobRepository) ClaimNextPending(orgID uuid.UUID, now time.Time) (*models.GeometryJob, error) {
	var job models.GeometryJob
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("organization_id = ? AND status = ?", orgID, models.GeometryJobPending).
			Order("created_at ASC").
			First(&job).Error; err != nil {
			return err
		}

		job.Status = models.GeometryJobProcessing
		job.StartedAt = &now
		return tx.Model(&models.GeometryJob{}).Where("id = ?", job.ID).
			Updates(map[string]interface{}{
				"status":     models.GeometryJobProcessing,
				"started_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update updates a geometry job
func (r *GeometryJobRepository) Update(job *models.GeometryJob) error {
	return r.db.Save(job).Error
}

// Delete deletes a geometry job
func (r *GeometryJobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GeometryJob{}, "id = ?", id).Error
}
