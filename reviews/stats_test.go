package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/visourastudio-blip/pizza-do-ze/models"
)

func reviewsWithRatings(ratings ...int) []models.Review {
	rs := make([]models.Review, len(ratings))
	for i, r := range ratings {
		rs[i] = models.Review{Rating: r}
	}
	return rs
}

func TestAverageRatingEmpty(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]models.Review{}))
}

func TestAverageRating(t *testing.T) {
	assert.InDelta(t, 4.6667, AverageRating(reviewsWithRatings(5, 5, 4)), 0.0001)
	assert.Equal(t, 3.0, AverageRating(reviewsWithRatings(1, 5)))
	assert.Equal(t, 5.0, AverageRating(reviewsWithRatings(5)))
}

func TestDistribution(t *testing.T) {
	buckets := Distribution(reviewsWithRatings(5, 5, 4, 1))

	assert.Len(t, buckets, 5)
	// Ordered highest rating first.
	assert.Equal(t, 5, buckets[0].Rating)
	assert.Equal(t, 2, buckets[0].Count)
	assert.InDelta(t, 50, buckets[0].Percentage, 0.001)
	assert.Equal(t, 4, buckets[1].Rating)
	assert.Equal(t, 1, buckets[1].Count)
	assert.InDelta(t, 25, buckets[1].Percentage, 0.001)
	assert.Equal(t, 0, buckets[2].Count) // rating 3
	assert.Equal(t, 0, buckets[3].Count) // rating 2
	assert.Equal(t, 1, buckets[4].Count) // rating 1
}

func TestDistributionEmpty(t *testing.T) {
	for _, b := range Distribution(nil) {
		assert.Equal(t, 0, b.Count)
		assert.Equal(t, 0.0, b.Percentage)
	}
}
