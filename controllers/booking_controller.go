package controllers

import (
	"strconv"

	"jatomogu/constants"
	"jatomogu/dto"
	"jatomogu/middleware"
	"jatomogu/response"
	"jatomogu/services"
	"jatomogu/validator"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// Quote prices a stay without creating anything
func (ctl *BookingController) Quote(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	params, err := validator.ValidateCreateBooking(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	quote, err := ctl.bookings.Quote(params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, quote)
}

// Create confirms a quote into a PENDING booking
func (ctl *BookingController) Create(c *gin.Context) {
	userID, _, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	params, err := validator.ValidateCreateBooking(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := ctl.bookings.Create(userID, params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, booking)
}

// GetDetail returns one booking, visible to its client, the
// accommodation's owner, its guide or an admin.
func (ctl *BookingController) GetDetail(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ValidationError(c, "Invalid booking id")
		return
	}

	booking, err := ctl.bookings.GetByID(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	allowed := role == constants.RoleAdmin ||
		booking.UserID == userID ||
		booking.Accommodation.UserID == userID ||
		(booking.GuideID != nil && *booking.GuideID == userID)
	if !allowed {
		response.Forbidden(c)
		return
	}
	response.Success(c, booking)
}

// GetMyBookings lists the acting user's bookings by role: clients get
// their own, owners get bookings on their accommodations, guides their
// assignments.
func (ctl *BookingController) GetMyBookings(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var err error
	var bookings interface{}
	switch role {
	case constants.RoleOwner:
		bookings, err = ctl.bookings.ListForOwner(userID)
	case constants.RoleGuide:
		bookings, err = ctl.bookings.ListForGuide(userID)
	default:
		bookings, err = ctl.bookings.ListForUser(userID)
	}
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, bookings)
}

// ChangeStatus drives the booking lifecycle state machine
func (ctl *BookingController) ChangeStatus(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	status, err := constants.ParseBookingStatus(req.Status)
	if err != nil {
		response.ValidationError(c, "Unknown booking status")
		return
	}

	booking, err := ctl.bookings.ChangeStatus(req.BookingID, userID, role, status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// UpdateJourneyStatus advances the guest's travel progress
func (ctl *BookingController) UpdateJourneyStatus(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateJourneyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	journeyStatus, err := constants.ParseJourneyStatus(req.JourneyStatus)
	if err != nil {
		response.ValidationError(c, "Unknown journey status")
		return
	}

	booking, err := ctl.bookings.UpdateJourneyStatus(req.BookingID, userID, role, journeyStatus)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}

// AssignGuide attaches a guide to a BONUS booking (admin only, enforced by
// route middleware)
func (ctl *BookingController) AssignGuide(c *gin.Context) {
	var req dto.AssignGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	booking, err := ctl.bookings.AssignGuide(req.BookingID, req.GuideID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, booking)
}
