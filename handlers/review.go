package handlers

import (
	"net/http"

	"coolq/services/review"
	"coolq/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and listing endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: svc}
}

// CreateReviewHandler handles POST /api/bookings/:id/review (customer).
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var req struct {
		Rating  float64 `json:"rating" binding:"required"`
		Comment string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	rev, err := h.ReviewService.CreateReview(c.GetString("actorID"), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// GetTechnicianReviewsHandler handles GET /api/technicians/id/:id/reviews (public).
func (h *ReviewHandler) GetTechnicianReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.GetTechnicianReviews(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
