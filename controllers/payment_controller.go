package controllers

import (
	"strconv"

	"jatomogu/constants"
	"jatomogu/dto"
	"jatomogu/middleware"
	"jatomogu/response"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

func (ctl *PaymentController) Create(c *gin.Context) {
	userID, _, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	payment, err := ctl.payments.Create(req.BookingID, userID, req.Amount)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, payment)
}

// ChangeStatus applies administrative payment transitions
func (ctl *PaymentController) ChangeStatus(c *gin.Context) {
	var req dto.ChangePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	status, err := constants.ParsePaymentStatus(req.Status)
	if err != nil {
		response.ValidationError(c, "Unknown payment status")
		return
	}

	payment, err := ctl.payments.ChangeStatus(req.PaymentID, status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payment)
}

func (ctl *PaymentController) ListForBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ValidationError(c, "Invalid booking id")
		return
	}

	payments, err := ctl.payments.ListForBooking(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, payments)
}
