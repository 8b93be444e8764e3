package services

import (
	"errors"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"gorm.io/gorm"
)

// PaymentService records payments against bookings. Status changes are
// administrative; no gateway is called from here.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Create opens a PENDING payment for a booking.
func (s *PaymentService) Create(bookingID, userID uint, amount float64) (*models.Payment, error) {
	if amount <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Amount must be positive", nil)
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load booking", err)
	}

	payment := &models.Payment{
		BookingID: booking.ID,
		UserID:    userID,
		Amount:    amount,
		Status:    constants.PaymentPending,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create payment", err)
	}
	return payment, nil
}

// legal admin transitions; REFUNDED only from COMPLETED
func paymentTransitionAllowed(from, to constants.PaymentStatus) bool {
	switch from {
	case constants.PaymentPending:
		return to == constants.PaymentCompleted || to == constants.PaymentFailed
	case constants.PaymentCompleted:
		return to == constants.PaymentRefunded
	case constants.PaymentFailed:
		return to == constants.PaymentPending
	}
	return false
}

// ChangeStatus applies an administrative payment status change.
// Resubmitting the current status is a no-op.
func (s *PaymentService) ChangeStatus(paymentID uint, target constants.PaymentStatus) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Payment not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load payment", err)
	}

	if payment.Status == target {
		return &payment, nil
	}
	if !paymentTransitionAllowed(payment.Status, target) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict,
			"Payment cannot move from "+string(payment.Status)+" to "+string(target), nil)
	}

	if err := s.db.Model(&payment).Update("status", target).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update payment", err)
	}
	payment.Status = target
	return &payment, nil
}

// ListForBooking returns a booking's payments
func (s *PaymentService) ListForBooking(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("booking_id = ?", bookingID).Order("created_at").Find(&payments).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load payments", err)
	}
	return payments, nil
}
