package repository

import (
	"splint-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrintJobRepository handles database operations for print-queue entries
type PrintJobRepository struct {
	db *gorm.DB
}

// NewPrintJobRepository creates a new print job repository
func NewPrintJobRepository(db *gorm.DB) *PrintJobRepository {
	return &PrintJobRepository{db: db}
}

// Create creates a new print job
func (r *PrintJobRepository) Create(job *models.PrintJob) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a print job by ID, preloading the geometry job
func (r *PrintJobRepository) GetByID(id uuid.UUID) (*models.PrintJob, error) {
	var job models.PrintJob
	err := r.db.Preload("GeometryJob").First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByOrganizationID retrieves an organization's print jobs with pagination,
// newest first. The status filter translates the derived lifecycle state back
// into conditions on the stored timestamps and decision.
func (r *PrintJobRepository) GetByOrganizationID(orgID uuid.UUID, status models.PrintStatus, limit, offset int) ([]models.PrintJob, int64, error) {
	var jobs []models.PrintJob
	var total int64

	query := r.db.Model(&models.PrintJob{}).Where("organization_id = ?", orgID)
	query = applyStatusFilter(query, status)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func applyStatusFilter(query *gorm.DB, status models.PrintStatus) *gorm.DB {
	switch status {
	case models.PrintStatusReady:
		return query.Where("print_started_time IS NULL")
	case models.PrintStatusPrinting:
		return query.Where("print_started_time IS NOT NULL AND print_completed_time IS NULL")
	case models.PrintStatusFailed:
		return query.Where("print_completed_time IS NOT NULL AND (print_successful IS NULL OR print_successful = false)")
	case models.PrintStatusSuccessful:
		return query.Where("print_completed_time IS NOT NULL AND print_successful = true AND decision IS NULL")
	case models.PrintStatusAccepted:
		return query.Where("decision = ?", models.DecisionAccepted)
	case models.PrintStatusRejected:
		return query.Where("decision = ?", models.DecisionRejected)
	}
	return query
}

// GetReadyByOrganizationID retrieves unstarted print jobs, oldest first,
// for the printer client's work list
func (r *PrintJobRepository) GetReadyByOrganizationID(orgID uuid.UUID) ([]models.PrintJob, error) {
	var jobs []models.PrintJob
	err := r.db.Where("organization_id = ? AND print_started_time IS NULL", orgID).
		Order("created_at ASC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates a print job
func (r *PrintJobRepository) Update(job *models.PrintJob) error {
	return r.db.Save(job).Error
}

// Delete deletes a print job
func (r *PrintJobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PrintJob{}, "id = ?", id).Error
}
