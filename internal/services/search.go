package services

import (
	"math"
	"time"

	"github.com/google/uuid"

	"jobportal/internal/models"
	"jobportal/internal/repositories"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type SearchService interface {
	SearchJobs(criteria models.SearchCriteria, page, limit int) (*models.SearchResponse, error)
	SearchJobsWithSalary(criteria models.SearchCriteria, page, limit int) (*models.SalarySearchResponse, error)
}

type searchService struct {
	jobRepo    repositories.JobRepository
	reviewRepo repositories.ReviewRepository
}

func NewSearchService(
	jobRepo repositories.JobRepository,
	reviewRepo repositories.ReviewRepository,
) SearchService {
	return &searchService{
		jobRepo:    jobRepo,
		reviewRepo: reviewRepo,
	}
}

// datePostedWindow maps the relative window selector onto a lookback
// duration. Unrecognized values apply no filter.
func datePostedWindow(datePosted string) (time.Duration, bool) {
	switch datePosted {
	case "last 14 hours":
		return 14 * time.Hour, true
	case "last 3 days":
		return 3 * 24 * time.Hour, true
	case "last 7 days":
		return 7 * 24 * time.Hour, true
	case "last 14 days":
		return 14 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int(math.Ceil(float64(total) / float64(limit)))
}

func (s *searchService) search(criteria models.SearchCriteria, page, limit int) ([]models.Job, *models.SearchResponse, error) {
	now := time.Now()
	page, limit = normalizePagination(page, limit)

	params := repositories.SearchParams{
		Criteria: criteria,
		Now:      now,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}
	if window, ok := datePostedWindow(criteria.DatePosted); ok {
		postedAfter := now.Add(-window)
		params.PostedAfter = &postedAfter
	}

	jobs, total, err := s.jobRepo.Search(params)
	if err != nil {
		return nil, nil, err
	}

	results, err := s.annotateWithRatings(jobs)
	if err != nil {
		return nil, nil, err
	}

	return jobs, &models.SearchResponse{
		Jobs:        results,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// annotateWithRatings attaches each owning employer's aggregate review
// rating so search results can show reputation without a second round
// trip.
func (s *searchService) annotateWithRatings(jobs []models.Job) ([]models.JobResult, error) {
	employerIDs := make([]uuid.UUID, 0, len(jobs))
	seen := make(map[uuid.UUID]bool, len(jobs))
	for _, job := range jobs {
		if !seen[job.EmployerID] {
			seen[job.EmployerID] = true
			employerIDs = append(employerIDs, job.EmployerID)
		}
	}

	aggregates, err := s.reviewRepo.AverageByEmployers(employerIDs)
	if err != nil {
		return nil, err
	}

	results := make([]models.JobResult, 0, len(jobs))
	for _, job := range jobs {
		result := models.JobResult{
			Job:         job,
			CompanyName: job.Employer.CompanyName,
		}
		if agg, ok := aggregates[job.EmployerID]; ok && agg.Count > 0 {
			avg := round1(agg.Average)
			result.AverageReviewRating = &avg
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *searchService) SearchJobs(criteria models.SearchCriteria, page, limit int) (*models.SearchResponse, error) {
	_, response, err := s.search(criteria, page, limit)
	return response, err
}

func (s *searchService) SearchJobsWithSalary(criteria models.SearchCriteria, page, limit int) (*models.SalarySearchResponse, error) {
	jobs, response, err := s.search(criteria, page, limit)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(jobs))
	for i := range jobs {
		if monthly, ok := NormalizeMonthlyPay(&jobs[i]); ok {
			values = append(values, monthly)
		}
	}

	return &models.SalarySearchResponse{
		SearchResponse: *response,
		AverageSalary:  SalaryStatistics(values),
	}, nil
}
