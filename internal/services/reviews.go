package services

import (
	"math"

	"github.com/google/uuid"

	"jobportal/internal/models"
	"jobportal/internal/repositories"
)

type EmployerReviewPage struct {
	Employer *models.Employer   `json:"employer"`
	Reviews  []models.Review    `json:"reviews"`
	Stats    models.ReviewStats `json:"reviewStats"`
	Jobs     []models.Job       `json:"jobs"`
}

type ReviewService interface {
	AddReview(employeeID, employerID uuid.UUID, req models.AddReviewRequest) (*models.Review, error)
	DeleteReview(id uuid.UUID) error
	EmployerDirectory(companyName string) ([]models.EmployerSummary, error)
	EmployerReviews(employerID uuid.UUID) (*EmployerReviewPage, error)
}

type reviewService struct {
	reviewRepo   repositories.ReviewRepository
	employerRepo repositories.EmployerRepository
	employeeRepo repositories.EmployeeRepository
	jobRepo      repositories.JobRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	employerRepo repositories.EmployerRepository,
	employeeRepo repositories.EmployeeRepository,
	jobRepo repositories.JobRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		employerRepo: employerRepo,
		employeeRepo: employeeRepo,
		jobRepo:      jobRepo,
	}
}

func (s *reviewService) AddReview(employeeID, employerID uuid.UUID, req models.AddReviewRequest) (*models.Review, error) {
	if _, err := s.employeeRepo.FindByID(employeeID); err != nil {
		return nil, err
	}
	if _, err := s.employerRepo.FindByID(employerID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		EmployerID:  employerID,
		Comment:     req.Comment,
		Rating:      req.Rating,
		Description: req.Description,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(id uuid.UUID) error {
	return s.reviewRepo.Delete(id)
}

func (s *reviewService) EmployerDirectory(companyName string) ([]models.EmployerSummary, error) {
	summaries, err := s.reviewRepo.ListEmployersWithStats(companyName)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		if summaries[i].AverageReviewRating != nil {
			rounded := round1(*summaries[i].AverageReviewRating)
			summaries[i].AverageReviewRating = &rounded
		}
	}
	return summaries, nil
}

func (s *reviewService) EmployerReviews(employerID uuid.UUID) (*EmployerReviewPage, error) {
	employer, err := s.employerRepo.FindByID(employerID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.FindActiveByEmployer(employerID, models.EmployerJobsQuery{})
	if err != nil {
		return nil, err
	}

	return &EmployerReviewPage{
		Employer: employer,
		Reviews:  reviews,
		Stats:    ComputeReviewStats(reviews),
		Jobs:     jobs,
	}, nil
}

// ComputeReviewStats rolls a review list up into a count, a mean
// rating (1 decimal) and a 1..5 star histogram. A rating lands in the
// bucket below it unless its fraction is at least .5, which rounds it
// up.
func ComputeReviewStats(reviews []models.Review) models.ReviewStats {
	stats := models.ReviewStats{}

	var sum float64
	for _, review := range reviews {
		stats.TotalReviewCount++
		sum += review.Rating

		bucket := int(math.Floor(review.Rating))
		if review.Rating >= float64(bucket)+0.5 {
			bucket++
		}

		switch bucket {
		case 1:
			stats.RatingCount1++
		case 2:
			stats.RatingCount2++
		case 3:
			stats.RatingCount3++
		case 4:
			stats.RatingCount4++
		case 5:
			stats.RatingCount5++
		}
	}

	if stats.TotalReviewCount > 0 {
		stats.AverageReviewRating = round1(sum / float64(stats.TotalReviewCount))
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
