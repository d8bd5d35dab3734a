package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal/internal/models"
)

func TestComputeReviewStats_RoundHalfUpBuckets(t *testing.T) {
	tests := []struct {
		rating float64
		bucket int
	}{
		{3.5, 4},
		{3.49, 3},
		{1.0, 1},
		{4.99, 5},
		{5.0, 5},
		{2.5, 3},
		{2.49, 2},
	}

	for _, tt := range tests {
		stats := ComputeReviewStats([]models.Review{{Rating: tt.rating}})

		buckets := map[int]int{
			1: stats.RatingCount1,
			2: stats.RatingCount2,
			3: stats.RatingCount3,
			4: stats.RatingCount4,
			5: stats.RatingCount5,
		}
		assert.Equal(t, 1, buckets[tt.bucket], "rating %.2f should land in bucket %d", tt.rating, tt.bucket)
		for bucket, count := range buckets {
			if bucket != tt.bucket {
				assert.Zero(t, count, "rating %.2f should leave bucket %d empty", tt.rating, bucket)
			}
		}
	}
}

func TestComputeReviewStats_AverageRoundedToOneDecimal(t *testing.T) {
	stats := ComputeReviewStats([]models.Review{
		{Rating: 4.0},
		{Rating: 3.5},
		{Rating: 5.0},
	})

	assert.Equal(t, 3, stats.TotalReviewCount)
	// (4.0 + 3.5 + 5.0) / 3 = 4.1666...
	assert.Equal(t, 4.2, stats.AverageReviewRating)
}

func TestComputeReviewStats_EmptyInput(t *testing.T) {
	stats := ComputeReviewStats(nil)

	assert.Equal(t, models.ReviewStats{}, stats)
}

func TestComputeReviewStats_AccumulatesAcrossBuckets(t *testing.T) {
	stats := ComputeReviewStats([]models.Review{
		{Rating: 1.2},
		{Rating: 1.7},
		{Rating: 4.5},
		{Rating: 4.4},
		{Rating: 5.0},
	})

	assert.Equal(t, 1, stats.RatingCount1)
	assert.Equal(t, 1, stats.RatingCount2)
	assert.Equal(t, 0, stats.RatingCount3)
	assert.Equal(t, 1, stats.RatingCount4)
	assert.Equal(t, 2, stats.RatingCount5)
}
