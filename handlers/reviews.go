package handlers

import (
	"net/http"
	"strings"

	"github.com/visourastudio-blip/pizza-do-ze/config"
	"github.com/visourastudio-blip/pizza-do-ze/middleware"
	"github.com/visourastudio-blip/pizza-do-ze/models"
	"github.com/visourastudio-blip/pizza-do-ze/reviews"

	"github.com/gin-gonic/gin"
)

// ListReviews returns all reviews newest first with aggregate stats (public)
func ListReviews(c *gin.Context) {
	var all []models.Review
	config.DB.Order("created_at desc, id desc").Find(&all)

	c.JSON(http.StatusOK, gin.H{
		"count":          len(all),
		"average_rating": reviews.AverageRating(all),
		"distribution":   reviews.Distribution(all),
		"reviews":        all,
	})
}

type CreateReviewRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"required"`
}

// CreateReview stores a new review for the signed-in customer
func CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment cannot be empty"})
		return
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		var user models.User
		if err := config.DB.First(&user, userID).Error; err == nil {
			name = user.Name
		}
	}
	if name == "" {
		name = "Anônimo"
	}

	review := models.Review{
		UserID:       userID,
		CustomerName: name,
		Rating:       req.Rating,
		Comment:      comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for your review!", "review": review})
}
