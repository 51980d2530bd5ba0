package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postReview(t *testing.T, r *gin.Engine, token string, rating int, comment string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/customer/reviews", token, gin.H{
		"rating":  rating,
		"comment": comment,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateReviewRequiresAuth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/customer/reviews", "", gin.H{
		"rating":  5,
		"comment": "great pizza",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateReviewValidation(t *testing.T) {
	r := setupRouter(t)
	token := registerCustomer(t, r, "reviewer@test.com")

	// Rating out of range.
	w := doJSON(t, r, http.MethodPost, "/api/customer/reviews", token, gin.H{
		"rating":  6,
		"comment": "great",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Comment that trims to nothing.
	w = doJSON(t, r, http.MethodPost, "/api/customer/reviews", token, gin.H{
		"rating":  5,
		"comment": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewsListWithAggregates(t *testing.T) {
	r := setupRouter(t)
	token := registerCustomer(t, r, "stats@test.com")

	postReview(t, r, token, 5, "perfect")
	postReview(t, r, token, 5, "again, perfect")
	postReview(t, r, token, 4, "almost perfect")

	w := doJSON(t, r, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	assert.Equal(t, 3.0, body["count"])
	assert.InDelta(t, 4.6667, body["average_rating"].(float64), 0.0001)

	dist := body["distribution"].([]interface{})
	require.Len(t, dist, 5)
	top := dist[0].(map[string]interface{})
	assert.Equal(t, 5.0, top["rating"])
	assert.Equal(t, 2.0, top["count"])

	// Newest first.
	reviews := body["reviews"].([]interface{})
	require.Len(t, reviews, 3)
	assert.Equal(t, "almost perfect", reviews[0].(map[string]interface{})["comment"])
}

func TestReviewFallsBackToAccountName(t *testing.T) {
	r := setupRouter(t)
	token := registerCustomer(t, r, "named@test.com")

	postReview(t, r, token, 4, "muito bom")

	w := doJSON(t, r, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := decode(t, w)["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.Equal(t, "Test Customer", reviews[0].(map[string]interface{})["customer_name"])
}
