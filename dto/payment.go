package dto

type CreatePaymentRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

type ChangePaymentStatusRequest struct {
	PaymentID uint   `json:"paymentId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
