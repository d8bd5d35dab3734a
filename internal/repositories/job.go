package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
)

// SearchParams is the resolved form of a search request: the raw
// criteria bag plus values the service layer derives from it (posted
// window, pagination offsets, request time).
type SearchParams struct {
	Criteria    models.SearchCriteria
	PostedAfter *time.Time
	Now         time.Time
	Offset      int
	Limit       int
}

type JobRepository interface {
	Create(job *models.Job) error
	Update(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	Delete(id uuid.UUID) error
	UpdateStatus(id uuid.UUID, status models.JobStatus) error
	Search(params SearchParams) ([]models.Job, int64, error)
	FindActiveByEmployer(employerID uuid.UUID, q models.EmployerJobsQuery) ([]models.Job, error)
	FindClosedByEmployer(employerID uuid.UUID, now time.Time) ([]models.Job, error)
	FindDeadlineExpired(now time.Time) ([]models.Job, error)
	CloseIfOpen(id uuid.UUID) (bool, error)
	DistinctSkills() ([]string, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) Update(job *models.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Preload("Employer").Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *jobRepository) UpdateStatus(id uuid.UUID, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// applySearchFilters chains every supplied criterion conjunctively
// onto q. Tag criteria use array membership against the text[]
// columns; pay bounds run against the precomputed monthly figure.
func applySearchFilters(q *gorm.DB, params SearchParams) *gorm.DB {
	c := params.Criteria

	q = q.Where("status = ?", models.JobStatusOpen).
		Where("(deadline = ? OR deadline_date IS NULL OR deadline_date > ?)", "No", params.Now)

	if c.JobTitle != "" {
		q = q.Where("job_title ILIKE ?", "%"+c.JobTitle+"%")
	}
	if c.Location != "" {
		q = q.Where("city ILIKE ?", "%"+c.Location+"%")
	}
	if c.City != "" {
		q = q.Where("city ILIKE ?", "%"+c.City+"%")
	}
	if c.JobLocation != "" {
		q = q.Where("job_location ILIKE ?", "%"+c.JobLocation+"%")
	}
	if params.PostedAfter != nil {
		q = q.Where("created_at >= ?", *params.PostedAfter)
	}
	if c.MinPay != nil {
		q = q.Where("monthly_pay IS NOT NULL AND monthly_pay >= ?", *c.MinPay)
	}
	if c.MaxPay != nil {
		q = q.Where("monthly_pay IS NOT NULL AND monthly_pay <= ?", *c.MaxPay)
	}
	if c.JobType != "" {
		q = q.Where("? = ANY(job_types)", c.JobType)
	}
	if c.Skills != "" {
		q = q.Where("? = ANY(skills)", c.Skills)
	}
	if c.Language != "" {
		q = q.Where("? = ANY(languages)", c.Language)
	}
	if c.Education != "" {
		q = q.Where("? = ANY(education)", c.Education)
	}

	return q
}

// Search filters open jobs per applySearchFilters, then paginates.
func (r *jobRepository) Search(params SearchParams) ([]models.Job, int64, error) {
	q := applySearchFilters(r.db.Model(&models.Job{}), params)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	var jobs []models.Job
	err := q.Preload("Employer").
		Order("created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}

	return jobs, total, nil
}

func (r *jobRepository) FindActiveByEmployer(employerID uuid.UUID, query models.EmployerJobsQuery) ([]models.Job, error) {
	q := r.db.Model(&models.Job{}).
		Where("employer_id = ?", employerID).
		Where("status IN ?", []models.JobStatus{models.JobStatusOpen, models.JobStatusPaused})

	if query.JobTitle != "" {
		q = q.Where("job_title ILIKE ?", "%"+query.JobTitle+"%")
	}
	if query.Location != "" {
		q = q.Where("city ILIKE ?", "%"+query.Location+"%")
	}
	if query.StartDate != "" && query.EndDate != "" {
		start, errStart := time.Parse(time.RFC3339, query.StartDate)
		end, errEnd := time.Parse(time.RFC3339, query.EndDate)
		if errStart == nil && errEnd == nil {
			q = q.Where("created_at BETWEEN ? AND ?", start, end)
		}
	}

	order := "created_at ASC"
	if query.SortOrder == "dsc" {
		order = "created_at DESC"
	}

	var jobs []models.Job
	if err := q.Order(order).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find employer jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) FindClosedByEmployer(employerID uuid.UUID, now time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Model(&models.Job{}).
		Where("employer_id = ?", employerID).
		Where("(status = ? OR (deadline = ? AND deadline_date < ?))",
			models.JobStatusClosed, "Yes", now).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find closed employer jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) FindDeadlineExpired(now time.Time) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Model(&models.Job{}).
		Where("status = ?", models.JobStatusOpen).
		Where("deadline_date IS NOT NULL AND deadline_date <= ?", now).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find deadline-expired jobs: %w", err)
	}
	return jobs, nil
}

// CloseIfOpen transitions a single row Open -> Closed. The status
// guard in the WHERE clause makes the sweep safe against a concurrent
// employer toggle on the same row.
func (r *jobRepository) CloseIfOpen(id uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Job{}).
		Where("id = ? AND status = ?", id, models.JobStatusOpen).
		Updates(map[string]interface{}{
			"status":     models.JobStatusClosed,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to close job %s: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *jobRepository) DistinctSkills() ([]string, error) {
	var skills []string
	err := r.db.Raw(
		"SELECT DISTINCT unnest(skills) AS skill FROM jobs WHERE status = ? ORDER BY skill",
		models.JobStatusOpen,
	).Scan(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}
