package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
)

type AppliedJobRepository interface {
	Create(applied *models.AppliedJob) error
	FindByID(id uuid.UUID) (*models.AppliedJob, error)
	ExistsByEmployeeAndJob(employeeID, jobID uuid.UUID) (bool, error)
	UpdateEmployeeStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateEmployerStatus(id uuid.UUID, status models.ApplicationStatus) error
	Delete(id uuid.UUID) error
	FindByEmployee(employeeID uuid.UUID) ([]models.AppliedJob, error)
	FindApplicantsByJob(jobID uuid.UUID) ([]models.AppliedJob, error)
	CountApplicantsPerJob(employerID uuid.UUID) ([]models.JobApplicantsCount, error)
	StatusCounts(employerID uuid.UUID) (*models.ApplicationStatusCounts, error)
}

type appliedJobRepository struct {
	db *gorm.DB
}

func NewAppliedJobRepository(db *gorm.DB) AppliedJobRepository {
	return &appliedJobRepository{db: db}
}

// Create relies on the (employee_id, job_id) unique index: a duplicate
// apply, including one racing a concurrent request, surfaces as
// ErrConflict.
func (r *appliedJobRepository) Create(applied *models.AppliedJob) error {
	if err := r.db.Create(applied).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("already applied to this job: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *appliedJobRepository) FindByID(id uuid.UUID) (*models.AppliedJob, error) {
	var applied models.AppliedJob
	if err := r.db.Where("id = ?", id).First(&applied).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &applied, nil
}

func (r *appliedJobRepository) ExistsByEmployeeAndJob(employeeID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.AppliedJob{}).
		Where("employee_id = ? AND job_id = ?", employeeID, jobID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}
	return count > 0, nil
}

func (r *appliedJobRepository) UpdateEmployeeStatus(id uuid.UUID, status models.ApplicationStatus) error {
	return r.updateStatus(id, "employee_status", status)
}

func (r *appliedJobRepository) UpdateEmployerStatus(id uuid.UUID, status models.ApplicationStatus) error {
	return r.updateStatus(id, "employer_status", status)
}

func (r *appliedJobRepository) updateStatus(id uuid.UUID, column string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.AppliedJob{}).
		Where("id = ?", id).
		Update(column, status)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *appliedJobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.AppliedJob{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *appliedJobRepository) FindByEmployee(employeeID uuid.UUID) ([]models.AppliedJob, error) {
	var applied []models.AppliedJob
	err := r.db.Where("employee_id = ?", employeeID).
		Order("application_date DESC").
		Find(&applied).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applications: %w", err)
	}
	return applied, nil
}

func (r *appliedJobRepository) FindApplicantsByJob(jobID uuid.UUID) ([]models.AppliedJob, error) {
	var applicants []models.AppliedJob
	err := r.db.Preload("Employee").
		Where("job_id = ?", jobID).
		Order("application_date ASC").
		Find(&applicants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find applicants: %w", err)
	}
	return applicants, nil
}

func (r *appliedJobRepository) CountApplicantsPerJob(employerID uuid.UUID) ([]models.JobApplicantsCount, error) {
	var counts []models.JobApplicantsCount
	err := r.db.Raw(`
		SELECT j.id, j.job_title,
		       (SELECT COUNT(*) FROM applied_jobs a WHERE a.job_id = j.id) AS applicants_count
		FROM jobs j
		WHERE j.employer_id = ?
		ORDER BY j.created_at DESC`, employerID).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count applicants: %w", err)
	}
	return counts, nil
}

func (r *appliedJobRepository) StatusCounts(employerID uuid.UUID) (*models.ApplicationStatusCounts, error) {
	type statusRow struct {
		EmployerStatus models.ApplicationStatus
		Count          int
	}

	var rows []statusRow
	err := r.db.Model(&models.AppliedJob{}).
		Select("employer_status, COUNT(applied_jobs.id) AS count").
		Joins("JOIN jobs ON jobs.id = applied_jobs.job_id").
		Where("jobs.employer_id = ?", employerID).
		Group("employer_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count application statuses: %w", err)
	}

	counts := &models.ApplicationStatusCounts{}
	for _, row := range rows {
		counts.TotalApplicationsCount += row.Count
		if row.EmployerStatus == models.StatusHired {
			counts.HiredCount += row.Count
		}
	}
	return counts, nil
}
