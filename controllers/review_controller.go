package controllers

import (
	"strconv"

	"jatomogu/dto"
	"jatomogu/middleware"
	"jatomogu/response"
	"jatomogu/services"
	"jatomogu/validator"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// Create accepts exactly one review per completed booking
func (ctl *ReviewController) Create(c *gin.Context) {
	userID, _, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}
	if err := validator.ValidateReview(&req); err != nil {
		response.FromError(c, err)
		return
	}

	review, err := ctl.reviews.Create(req.BookingID, userID, req.Rating, req.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, review)
}

func (ctl *ReviewController) ListForAccommodation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ValidationError(c, "Invalid accommodation id")
		return
	}

	reviews, err := ctl.reviews.ListForAccommodation(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reviews)
}
