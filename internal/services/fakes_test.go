package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
)

// In-memory repository fakes so the service layer can be exercised
// without a database.

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.Job

	searchResults []models.Job
	searchTotal   int64
	lastParams    repositories.SearchParams
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) Update(job *models.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return fmt.Errorf("job %s: %w", job.ID, apperrors.ErrNotFound)
	}
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
	}
	return job, nil
}

func (f *fakeJobRepo) Delete(id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) UpdateStatus(id uuid.UUID, status models.JobStatus) error {
	job, ok := f.jobs[id]
	if !ok {
		return fmt.Errorf("job %s: %w", id, apperrors.ErrNotFound)
	}
	job.Status = status
	return nil
}

func (f *fakeJobRepo) Search(params repositories.SearchParams) ([]models.Job, int64, error) {
	f.lastParams = params
	return f.searchResults, f.searchTotal, nil
}

func (f *fakeJobRepo) FindActiveByEmployer(employerID uuid.UUID, q models.EmployerJobsQuery) ([]models.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) FindClosedByEmployer(employerID uuid.UUID, now time.Time) ([]models.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) FindDeadlineExpired(now time.Time) ([]models.Job, error) {
	var expired []models.Job
	for _, job := range f.jobs {
		if job.Status == models.JobStatusOpen && job.DeadlineDate != nil && !job.DeadlineDate.After(now) {
			expired = append(expired, *job)
		}
	}
	return expired, nil
}

func (f *fakeJobRepo) CloseIfOpen(id uuid.UUID) (bool, error) {
	job, ok := f.jobs[id]
	if !ok || job.Status != models.JobStatusOpen {
		return false, nil
	}
	job.Status = models.JobStatusClosed
	return true, nil
}

func (f *fakeJobRepo) DistinctSkills() ([]string, error) {
	return nil, nil
}

type fakeAppliedRepo struct {
	rows map[uuid.UUID]*models.AppliedJob
}

func newFakeAppliedRepo() *fakeAppliedRepo {
	return &fakeAppliedRepo{rows: make(map[uuid.UUID]*models.AppliedJob)}
}

func (f *fakeAppliedRepo) Create(applied *models.AppliedJob) error {
	for _, row := range f.rows {
		if row.EmployeeID == applied.EmployeeID && row.JobID == applied.JobID {
			return fmt.Errorf("already applied to this job: %w", apperrors.ErrConflict)
		}
	}
	f.rows[applied.ID] = applied
	return nil
}

func (f *fakeAppliedRepo) FindByID(id uuid.UUID) (*models.AppliedJob, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	return row, nil
}

func (f *fakeAppliedRepo) ExistsByEmployeeAndJob(employeeID, jobID uuid.UUID) (bool, error) {
	for _, row := range f.rows {
		if row.EmployeeID == employeeID && row.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAppliedRepo) UpdateEmployeeStatus(id uuid.UUID, status models.ApplicationStatus) error {
	row, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	row.EmployeeStatus = &status
	return nil
}

func (f *fakeAppliedRepo) UpdateEmployerStatus(id uuid.UUID, status models.ApplicationStatus) error {
	row, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	row.EmployerStatus = status
	return nil
}

func (f *fakeAppliedRepo) Delete(id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("application %s: %w", id, apperrors.ErrNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeAppliedRepo) FindByEmployee(employeeID uuid.UUID) ([]models.AppliedJob, error) {
	var applied []models.AppliedJob
	for _, row := range f.rows {
		if row.EmployeeID == employeeID {
			applied = append(applied, *row)
		}
	}
	return applied, nil
}

func (f *fakeAppliedRepo) FindApplicantsByJob(jobID uuid.UUID) ([]models.AppliedJob, error) {
	var applicants []models.AppliedJob
	for _, row := range f.rows {
		if row.JobID == jobID {
			applicants = append(applicants, *row)
		}
	}
	return applicants, nil
}

func (f *fakeAppliedRepo) CountApplicantsPerJob(employerID uuid.UUID) ([]models.JobApplicantsCount, error) {
	return nil, nil
}

func (f *fakeAppliedRepo) StatusCounts(employerID uuid.UUID) (*models.ApplicationStatusCounts, error) {
	return &models.ApplicationStatusCounts{}, nil
}

type fakeSavedRepo struct {
	rows map[uuid.UUID]*models.SavedJob
}

func newFakeSavedRepo() *fakeSavedRepo {
	return &fakeSavedRepo{rows: make(map[uuid.UUID]*models.SavedJob)}
}

func (f *fakeSavedRepo) Create(saved *models.SavedJob) error {
	for _, row := range f.rows {
		if row.EmployeeID == saved.EmployeeID && row.JobID == saved.JobID {
			return fmt.Errorf("job already saved: %w", apperrors.ErrConflict)
		}
	}
	f.rows[saved.ID] = saved
	return nil
}

func (f *fakeSavedRepo) DeleteByEmployeeAndJob(employeeID, jobID uuid.UUID) error {
	for id, row := range f.rows {
		if row.EmployeeID == employeeID && row.JobID == jobID {
			delete(f.rows, id)
			return nil
		}
	}
	return fmt.Errorf("saved job: %w", apperrors.ErrNotFound)
}

func (f *fakeSavedRepo) FindByEmployee(employeeID uuid.UUID) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	for _, row := range f.rows {
		if row.EmployeeID == employeeID {
			saved = append(saved, *row)
		}
	}
	return saved, nil
}

type fakeReviewRepo struct {
	aggregates map[uuid.UUID]repositories.RatingAggregate
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{aggregates: make(map[uuid.UUID]repositories.RatingAggregate)}
}

func (f *fakeReviewRepo) Create(review *models.Review) error { return nil }

func (f *fakeReviewRepo) Delete(id uuid.UUID) error { return nil }

func (f *fakeReviewRepo) FindByEmployer(employerID uuid.UUID) ([]models.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) AverageByEmployers(employerIDs []uuid.UUID) (map[uuid.UUID]repositories.RatingAggregate, error) {
	result := make(map[uuid.UUID]repositories.RatingAggregate)
	for _, id := range employerIDs {
		if agg, ok := f.aggregates[id]; ok {
			result[id] = agg
		}
	}
	return result, nil
}

func (f *fakeReviewRepo) ListEmployersWithStats(companyName string) ([]models.EmployerSummary, error) {
	return nil, nil
}

type fakeMailer struct {
	notified []string
}

func (f *fakeMailer) NotifyNewApplication(employerEmail, jobTitle string) error {
	f.notified = append(f.notified, employerEmail)
	return nil
}
