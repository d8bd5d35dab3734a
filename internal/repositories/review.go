package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/apperrors"
	"jobportal/internal/models"
)

// RatingAggregate is the per-employer review roll-up used to annotate
// search results.
type RatingAggregate struct {
	Count   int64
	Average float64
}

type ReviewRepository interface {
	Create(review *models.Review) error
	Delete(id uuid.UUID) error
	FindByEmployer(employerID uuid.UUID) ([]models.Review, error)
	AverageByEmployers(employerIDs []uuid.UUID) (map[uuid.UUID]RatingAggregate, error)
	ListEmployersWithStats(companyName string) ([]models.EmployerSummary, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create enforces one review per (employee, employer) pair through the
// composite unique index.
func (r *reviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("employer already reviewed: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("review %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (r *reviewRepository) FindByEmployer(employerID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Employee").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) AverageByEmployers(employerIDs []uuid.UUID) (map[uuid.UUID]RatingAggregate, error) {
	aggregates := make(map[uuid.UUID]RatingAggregate, len(employerIDs))
	if len(employerIDs) == 0 {
		return aggregates, nil
	}

	type aggRow struct {
		EmployerID uuid.UUID
		Count      int64
		Average    float64
	}

	var rows []aggRow
	err := r.db.Model(&models.Review{}).
		Select("employer_id, COUNT(id) AS count, AVG(rating) AS average").
		Where("employer_id IN ?", employerIDs).
		Group("employer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	for _, row := range rows {
		aggregates[row.EmployerID] = RatingAggregate{Count: row.Count, Average: row.Average}
	}
	return aggregates, nil
}

func (r *reviewRepository) ListEmployersWithStats(companyName string) ([]models.EmployerSummary, error) {
	type employerRow struct {
		ID                  uuid.UUID
		CompanyName         string
		NumberOfEmployees   int
		PhoneNumber         string
		Profile             string
		TotalReviewCount    int
		AverageReviewRating *float64
	}

	q := r.db.Table("employers e").
		Select(`e.id, e.company_name, e.number_of_employees, e.phone_number, e.profile,
			COUNT(r.id) AS total_review_count,
			AVG(r.rating) AS average_review_rating`).
		Joins("LEFT JOIN reviews r ON r.employer_id = e.id").
		Group("e.id")

	if companyName != "" {
		q = q.Where("e.company_name ILIKE ?", "%"+companyName+"%")
	}

	var rows []employerRow
	if err := q.Order("e.company_name ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}

	summaries := make([]models.EmployerSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.EmployerSummary{
			ID:                  row.ID.String(),
			CompanyName:         row.CompanyName,
			NumberOfEmployees:   row.NumberOfEmployees,
			PhoneNumber:         row.PhoneNumber,
			Profile:             row.Profile,
			TotalReviewCount:    row.TotalReviewCount,
			AverageReviewRating: row.AverageReviewRating,
		})
	}
	return summaries, nil
}
