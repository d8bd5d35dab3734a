package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
)

type SavedJobRepository interface {
	Create(saved *models.SavedJob) error
	DeleteByEmployeeAndJob(employeeID, jobID uuid.UUID) error
	FindByEmployee(employeeID uuid.UUID) ([]models.SavedJob, error)
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Create(saved *models.SavedJob) error {
	if err := r.db.Create(saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("job already saved: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (r *savedJobRepository) DeleteByEmployeeAndJob(employeeID, jobID uuid.UUID) error {
	result := r.db.Where("employee_id = ? AND job_id = ?", employeeID, jobID).
		Delete(&models.SavedJob{})
	if result.Error != nil {
		return fmt.Errorf("failed to unsave job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("saved job: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *savedJobRepository) FindByEmployee(employeeID uuid.UUID) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find saved jobs: %w", err)
	}
	return saved, nil
}
