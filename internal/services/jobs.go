package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
	"jobportal/internal/repositories"
)

type JobService interface {
	CreateJob(employerID uuid.UUID, req models.CreateJobRequest) (*models.Job, error)
	UpdateJob(employerID, jobID uuid.UUID, req models.CreateJobRequest) (*models.Job, error)
	DeleteJob(employerID, jobID uuid.UUID) error
	UpdateJobStatus(employerID, jobID uuid.UUID, status models.JobStatus) error
	GetJob(jobID uuid.UUID) (*models.Job, error)
	ActiveJobsByEmployer(employerID uuid.UUID, query models.EmployerJobsQuery) ([]models.Job, error)
	ClosedJobsByEmployer(employerID uuid.UUID) ([]models.Job, error)
	DistinctSkills() ([]string, error)
}

type jobService struct {
	jobRepo      repositories.JobRepository
	employerRepo repositories.EmployerRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	employerRepo repositories.EmployerRepository,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

func (s *jobService) CreateJob(employerID uuid.UUID, req models.CreateJobRequest) (*models.Job, error) {
	if _, err := s.employerRepo.FindByID(employerID); err != nil {
		return nil, err
	}

	job, err := buildJob(req)
	if err != nil {
		return nil, err
	}
	job.ID = uuid.New()
	job.EmployerID = employerID

	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) UpdateJob(employerID, jobID uuid.UUID, req models.CreateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if existing.EmployerID != employerID {
		return nil, fmt.Errorf("job belongs to another employer: %w", apperrors.ErrUnauthorized)
	}

	job, err := buildJob(req)
	if err != nil {
		return nil, err
	}
	job.ID = existing.ID
	job.EmployerID = existing.EmployerID
	job.Status = existing.Status
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) DeleteJob(employerID, jobID uuid.UUID) error {
	existing, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return err
	}
	if existing.EmployerID != employerID {
		return fmt.Errorf("job belongs to another employer: %w", apperrors.ErrUnauthorized)
	}
	return s.jobRepo.Delete(jobID)
}

func (s *jobService) UpdateJobStatus(employerID, jobID uuid.UUID, status models.JobStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid job status %q: %w", status, apperrors.ErrValidation)
	}

	existing, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return err
	}
	if existing.EmployerID != employerID {
		return fmt.Errorf("job belongs to another employer: %w", apperrors.ErrUnauthorized)
	}
	return s.jobRepo.UpdateStatus(jobID, status)
}

func (s *jobService) GetJob(jobID uuid.UUID) (*models.Job, error) {
	return s.jobRepo.FindByID(jobID)
}

func (s *jobService) ActiveJobsByEmployer(employerID uuid.UUID, query models.EmployerJobsQuery) ([]models.Job, error) {
	if _, err := s.employerRepo.FindByID(employerID); err != nil {
		return nil, err
	}
	return s.jobRepo.FindActiveByEmployer(employerID, query)
}

func (s *jobService) ClosedJobsByEmployer(employerID uuid.UUID) ([]models.Job, error) {
	if _, err := s.employerRepo.FindByID(employerID); err != nil {
		return nil, err
	}
	return s.jobRepo.FindClosedByEmployer(employerID, time.Now())
}

func (s *jobService) DistinctSkills() ([]string, error) {
	return s.jobRepo.DistinctSkills()
}

// buildJob maps a validated request onto a Job, enforcing the pay and
// deadline invariants: Range needs both bounds, Exact amount needs the
// exact figure, deadline=No forces a null deadlineDate. The normalized
// monthly figure is computed here once so pay filtering runs in SQL.
func buildJob(req models.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		JobTitle:       req.JobTitle,
		JobLocation:    models.LocationMode(req.JobLocation),
		City:           req.City,
		Area:           req.Area,
		Pincode:        req.Pincode,
		StreetAddress:  req.StreetAddress,
		JobTypes:       req.JobTypes,
		Skills:         req.Skills,
		Languages:      req.Languages,
		Education:      req.Education,
		JobDescription: req.JobDescription,
		NumberOfPeople: req.NumberOfPeople,
		MobileNumber:   req.MobileNumber,
		Email:          req.Email,
		Status:         models.JobStatusOpen,
		Deadline:       "No",
	}

	for _, jobType := range req.JobTypes {
		if !validJobType(jobType) {
			return nil, fmt.Errorf("unknown job type %q: %w", jobType, apperrors.ErrValidation)
		}
	}

	if req.PayType != "" {
		payType := models.PayType(req.PayType)
		switch payType {
		case models.PayTypeExact:
			if req.ExactPay == nil {
				return nil, fmt.Errorf("exactPay is required for exact pay type: %w", apperrors.ErrValidation)
			}
		case models.PayTypeRange:
			if req.MinimumPay == nil || req.MaximumPay == nil {
				return nil, fmt.Errorf("minimumPay and maximumPay are required for range pay type: %w", apperrors.ErrValidation)
			}
		default:
			return nil, fmt.Errorf("unknown pay type %q: %w", req.PayType, apperrors.ErrValidation)
		}
		job.PayType = &payType
		job.ExactPay = req.ExactPay
		job.MinimumPay = req.MinimumPay
		job.MaximumPay = req.MaximumPay
		if req.PayRate != "" {
			payRate := models.PayRate(req.PayRate)
			job.PayRate = &payRate
		}
	}

	if req.Deadline == "Yes" {
		if req.DeadlineDate == "" {
			return nil, fmt.Errorf("deadlineDate is required when deadline is set: %w", apperrors.ErrValidation)
		}
		deadlineDate, err := time.Parse(time.RFC3339, req.DeadlineDate)
		if err != nil {
			return nil, fmt.Errorf("invalid deadlineDate: %w", apperrors.ErrValidation)
		}
		job.Deadline = "Yes"
		job.DeadlineDate = &deadlineDate
	}

	if monthly, ok := NormalizeMonthlyPay(job); ok {
		job.MonthlyPay = &monthly
	}

	return job, nil
}

func validJobType(jobType string) bool {
	for _, known := range models.JobTypes {
		if jobType == known {
			return true
		}
	}
	return false
}
