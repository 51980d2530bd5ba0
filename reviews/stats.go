package reviews

import "github.com/visourastudio-blip/pizza-do-ze/models"

// AverageRating returns the arithmetic mean of all ratings, or 0 when
// there are no reviews.
func AverageRating(rs []models.Review) float64 {
	if len(rs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rs {
		sum += r.Rating
	}
	return float64(sum) / float64(len(rs))
}

// RatingBucket is one row of the rating distribution.
type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Distribution counts reviews per rating value, highest first, with
// each bucket's share of the total.
func Distribution(rs []models.Review) []RatingBucket {
	counts := map[int]int{}
	for _, r := range rs {
		counts[r.Rating]++
	}
	buckets := make([]RatingBucket, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		b := RatingBucket{Rating: rating, Count: counts[rating]}
		if len(rs) > 0 {
			b.Percentage = float64(b.Count) / float64(len(rs)) * 100
		}
		buckets = append(buckets, b)
	}
	return buckets
}
