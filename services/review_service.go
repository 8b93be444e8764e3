package services

import (
	"errors"
	"strings"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"gorm.io/gorm"
)

// ReviewService enforces the one-review-per-completed-booking rule.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CanReview checks the three eligibility clauses in order: booking
// ownership, completed status, no prior review. Returns the matching
// taxonomy error for the first failing clause.
func (s *ReviewService) CanReview(booking *models.Booking, actingUserID uint) error {
	if booking.UserID != actingUserID {
		return apperrors.NewAppError(apperrors.ErrCodeForbidden, "Only the booking's client may review it", nil)
	}
	if booking.Status != constants.BookingStatusCompleted {
		return apperrors.NewAppError(apperrors.ErrCodeNotEligible,
			"Only completed bookings can be reviewed", apperrors.ErrNotEligible)
	}

	var count int64
	if err := s.db.Model(&models.Review{}).Where("booking_id = ?", booking.ID).Count(&count).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot check existing reviews", err)
	}
	if count > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeAlreadyReviewed,
			"Booking already has a review", apperrors.ErrAlreadyReviewed)
	}
	return nil
}

// Create writes the review after the eligibility gate passes. The unique
// index on booking_id closes the check-then-create race: a concurrent
// duplicate surfaces as ALREADY_REVIEWED, not as a second row.
func (s *ReviewService) Create(bookingID, actingUserID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Rating must be between 1 and 5", nil)
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load booking", err)
	}

	if err := s.CanReview(&booking, actingUserID); err != nil {
		return nil, err
	}

	review := &models.Review{
		BookingID:       booking.ID,
		AccommodationID: booking.AccommodationID,
		UserID:          actingUserID,
		Rating:          rating,
		Comment:         comment,
	}
	if err := s.db.Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeAlreadyReviewed,
				"Booking already has a review", apperrors.ErrAlreadyReviewed)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create review", err)
	}
	return review, nil
}

// ListForAccommodation returns an accommodation's reviews, newest first
func (s *ReviewService) ListForAccommodation(accommodationID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("User").Where("accommodation_id = ?", accommodationID).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load reviews", err)
	}
	return reviews, nil
}

// isUniqueViolation matches the Postgres duplicate-key error
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
