package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/internal/models"
	"jobportal/internal/repositories"
)

func TestDatePostedWindow(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		ok       bool
	}{
		{"last 14 hours", 14 * time.Hour, true},
		{"last 3 days", 72 * time.Hour, true},
		{"last 7 days", 168 * time.Hour, true},
		{"last 14 days", 336 * time.Hour, true},
		{"yesterday", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			window, ok := datePostedWindow(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, window)
		})
	}
}

func TestNormalizePagination(t *testing.T) {
	page, limit := normalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = normalizePagination(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	page, limit = normalizePagination(-2, -5)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, totalPages(25, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 0, totalPages(0, 10))
}

func TestSearchJobs_PaginationParams(t *testing.T) {
	jobRepo := newFakeJobRepo()
	jobRepo.searchTotal = 25
	service := NewSearchService(jobRepo, newFakeReviewRepo())

	response, err := service.SearchJobs(models.SearchCriteria{}, 3, 10)
	require.NoError(t, err)

	assert.Equal(t, 20, jobRepo.lastParams.Offset)
	assert.Equal(t, 10, jobRepo.lastParams.Limit)
	assert.Equal(t, 3, response.TotalPages)
	assert.Equal(t, 3, response.CurrentPage)
}

func TestSearchJobs_DatePostedBecomesPostedAfter(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewSearchService(jobRepo, newFakeReviewRepo())

	_, err := service.SearchJobs(models.SearchCriteria{DatePosted: "last 3 days"}, 1, 10)
	require.NoError(t, err)

	require.NotNil(t, jobRepo.lastParams.PostedAfter)
	lookback := jobRepo.lastParams.Now.Sub(*jobRepo.lastParams.PostedAfter)
	assert.Equal(t, 72*time.Hour, lookback)
}

func TestSearchJobs_UnknownDatePostedAppliesNoFilter(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewSearchService(jobRepo, newFakeReviewRepo())

	_, err := service.SearchJobs(models.SearchCriteria{DatePosted: "whenever"}, 1, 10)
	require.NoError(t, err)

	assert.Nil(t, jobRepo.lastParams.PostedAfter)
}

func TestSearchJobs_AnnotatesEmployerRating(t *testing.T) {
	ratedEmployer := uuid.New()
	unratedEmployer := uuid.New()

	jobRepo := newFakeJobRepo()
	jobRepo.searchResults = []models.Job{
		{ID: uuid.New(), EmployerID: ratedEmployer},
		{ID: uuid.New(), EmployerID: unratedEmployer},
	}
	jobRepo.searchTotal = 2

	reviewRepo := newFakeReviewRepo()
	reviewRepo.aggregates[ratedEmployer] = repositories.RatingAggregate{Count: 3, Average: 4.26}

	service := NewSearchService(jobRepo, reviewRepo)

	response, err := service.SearchJobs(models.SearchCriteria{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, response.Jobs, 2)

	require.NotNil(t, response.Jobs[0].AverageReviewRating)
	assert.Equal(t, 4.3, *response.Jobs[0].AverageReviewRating)
	assert.Nil(t, response.Jobs[1].AverageReviewRating)
}

func TestSearchJobsWithSalary_MedianOverValuedPage(t *testing.T) {
	jobRepo := newFakeJobRepo()
	jobRepo.searchResults = []models.Job{
		{ID: uuid.New(), PayType: payTypePtr(models.PayTypeExact), ExactPay: floatPtr(3000), PayRate: payRatePtr(models.PayRatePerMonth)},
		{ID: uuid.New(), PayType: payTypePtr(models.PayTypeExact), ExactPay: floatPtr(5000), PayRate: payRatePtr(models.PayRatePerMonth)},
		{ID: uuid.New(), PayType: payTypePtr(models.PayTypeExact), ExactPay: floatPtr(7000), PayRate: payRatePtr(models.PayRatePerMonth)},
		{ID: uuid.New()}, // unvalued, excluded from the statistic
	}
	jobRepo.searchTotal = 4

	service := NewSearchService(jobRepo, newFakeReviewRepo())

	response, err := service.SearchJobsWithSalary(models.SearchCriteria{}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, response.AverageSalary.Monthly)
	assert.Equal(t, 60000.0, response.AverageSalary.Yearly)
}

func TestSearchJobsWithSalary_EmptyPageIsAllZeros(t *testing.T) {
	jobRepo := newFakeJobRepo()
	service := NewSearchService(jobRepo, newFakeReviewRepo())

	response, err := service.SearchJobsWithSalary(models.SearchCriteria{}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, models.SalaryBreakdown{}, response.AverageSalary)
}
