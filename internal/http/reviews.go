package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/entities"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// ReviewsController handles the review feed.
type ReviewsController struct {
	reviews   ReviewService
	validator *validation.Validator
}

// NewReviewsController creates a new ReviewsController.
func NewReviewsController(rev ReviewService, v *validation.Validator) *ReviewsController {
	return &ReviewsController{reviews: rev, validator: v}
}

// GetAllReviews handles GET /api/reviews
func (rc *ReviewsController) GetAllReviews(c *gin.Context) {
	reviews := rc.reviews.AllReviews()
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// GetUserReviews handles GET /api/users/:id/reviews
func (rc *ReviewsController) GetUserReviews(c *gin.Context) {
	reviews, err := rc.reviews.GetReviewsByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "get user reviews")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// UpdateReview handles PUT /api/reviews/:id
func (rc *ReviewsController) UpdateReview(c *gin.Context) {
	var req entities.ReviewRequest
	if !bindJSON(c, rc.validator, &req) {
		return
	}

	review, err := rc.reviews.UpdateReview(c.Request.Context(), c.Param("id"), req.Rating, req.Title, req.Content)
	if err != nil {
		respondStoreError(c, err, "update review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview handles DELETE /api/reviews/:id
func (rc *ReviewsController) DeleteReview(c *gin.Context) {
	if err := rc.reviews.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondStoreError(c, err, "delete review")
		return
	}
	respondSuccess(c, "review deleted")
}

// ToggleLike handles POST /api/reviews/:id/like
func (rc *ReviewsController) ToggleLike(c *gin.Context) {
	review, err := rc.reviews.ToggleReviewLike(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "toggle like")
		return
	}
	c.JSON(http.StatusOK, review)
}
