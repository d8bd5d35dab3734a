package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
)

type ApplicationService interface {
	Apply(employeeID uuid.UUID, req models.ApplyRequest) (*models.AppliedJob, error)
	UpdateEmployeeStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateEmployerStatus(id uuid.UUID, status models.ApplicationStatus) error
	Withdraw(employeeID, id uuid.UUID) error
	ListByEmployee(employeeID uuid.UUID) ([]models.AppliedJob, error)
	ApplicantsForJob(jobID uuid.UUID) ([]models.AppliedJob, error)
	ApplicantCountsPerJob(employerID uuid.UUID) ([]models.JobApplicantsCount, error)
	StatusCounts(employerID uuid.UUID) (*models.ApplicationStatusCounts, error)
	SaveJob(employeeID, jobID uuid.UUID) (*models.SavedJob, error)
	UnsaveJob(employeeID, jobID uuid.UUID) error
	ListSavedJobs(employeeID uuid.UUID) ([]models.SavedJob, error)
}

type applicationService struct {
	appliedRepo repositories.AppliedJobRepository
	savedRepo   repositories.SavedJobRepository
	jobRepo     repositories.JobRepository
	mailer      Mailer
}

func NewApplicationService(
	appliedRepo repositories.AppliedJobRepository,
	savedRepo repositories.SavedJobRepository,
	jobRepo repositories.JobRepository,
	mailer Mailer,
) ApplicationService {
	return &applicationService{
		appliedRepo: appliedRepo,
		savedRepo:   savedRepo,
		jobRepo:     jobRepo,
		mailer:      mailer,
	}
}

// Apply creates the application with employerStatus=Applied and a null
// employeeStatus, snapshotting the job title and company name so the
// employee's history stays stable if the job is later edited or
// removed. The existence check is advisory only; the unique index is
// what makes concurrent duplicate applies lose.
func (s *applicationService) Apply(employeeID uuid.UUID, req models.ApplyRequest) (*models.AppliedJob, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("invalid job id: %w", apperrors.ErrValidation)
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.appliedRepo.ExistsByEmployeeAndJob(employeeID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("already applied to this job: %w", apperrors.ErrConflict)
	}

	applied := &models.AppliedJob{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		JobID:          jobID,
		EmployerStatus: models.StatusApplied,
		JobTitle:       job.JobTitle,
		CompanyName:    job.Employer.CompanyName,
		AvailableDates: req.AvailableDates,
		Experience:     req.Experience,
	}
	if err := s.appliedRepo.Create(applied); err != nil {
		return nil, err
	}

	// Notification delivery is best-effort; a mailer failure never
	// rolls back the application.
	if err := s.mailer.NotifyNewApplication(job.Email, job.JobTitle); err != nil {
		log.Printf("failed to notify employer for job %s: %v", job.ID, err)
	}

	return applied, nil
}

func (s *applicationService) UpdateEmployeeStatus(id uuid.UUID, status models.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid employee status %q: %w", status, apperrors.ErrValidation)
	}
	return s.appliedRepo.UpdateEmployeeStatus(id, status)
}

func (s *applicationService) UpdateEmployerStatus(id uuid.UUID, status models.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid employer status %q: %w", status, apperrors.ErrValidation)
	}
	return s.appliedRepo.UpdateEmployerStatus(id, status)
}

// Withdraw hard-deletes the application. Withdrawing twice reports not
// found on the second attempt.
func (s *applicationService) Withdraw(employeeID, id uuid.UUID) error {
	applied, err := s.appliedRepo.FindByID(id)
	if err != nil {
		return err
	}
	if applied.EmployeeID != employeeID {
		return fmt.Errorf("application belongs to another employee: %w", apperrors.ErrUnauthorized)
	}
	return s.appliedRepo.Delete(id)
}

func (s *applicationService) ListByEmployee(employeeID uuid.UUID) ([]models.AppliedJob, error) {
	return s.appliedRepo.FindByEmployee(employeeID)
}

func (s *applicationService) ApplicantsForJob(jobID uuid.UUID) ([]models.AppliedJob, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		return nil, err
	}
	return s.appliedRepo.FindApplicantsByJob(jobID)
}

func (s *applicationService) ApplicantCountsPerJob(employerID uuid.UUID) ([]models.JobApplicantsCount, error) {
	return s.appliedRepo.CountApplicantsPerJob(employerID)
}

func (s *applicationService) StatusCounts(employerID uuid.UUID) (*models.ApplicationStatusCounts, error) {
	return s.appliedRepo.StatusCounts(employerID)
}

func (s *applicationService) SaveJob(employeeID, jobID uuid.UUID) (*models.SavedJob, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		return nil, err
	}

	saved := &models.SavedJob{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		JobID:      jobID,
	}
	if err := s.savedRepo.Create(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *applicationService) UnsaveJob(employeeID, jobID uuid.UUID) error {
	return s.savedRepo.DeleteByEmployeeAndJob(employeeID, jobID)
}

func (s *applicationService) ListSavedJobs(employeeID uuid.UUID) ([]models.SavedJob, error) {
	return s.savedRepo.FindByEmployee(employeeID)
}
