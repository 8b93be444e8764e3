package services

import (
	"errors"
	"testing"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestCanReviewClauseOrder(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewReviewService(gdb)

	booking := &models.Booking{
		ID:     5,
		UserID: 3,
		Status: constants.BookingStatusCompleted,
	}

	// ownership is checked before anything touches the database
	err := svc.CanReview(booking, 9)
	if appErr := apperrors.GetAppError(err); appErr == nil || appErr.Code != apperrors.ErrCodeForbidden {
		t.Fatalf("foreign user: expected FORBIDDEN, got %v", err)
	}

	pending := &models.Booking{ID: 5, UserID: 3, Status: constants.BookingStatusPending}
	err = svc.CanReview(pending, 3)
	if appErr := apperrors.GetAppError(err); appErr == nil || appErr.Code != apperrors.ErrCodeNotEligible {
		t.Fatalf("pending booking: expected NOT_ELIGIBLE, got %v", err)
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).WillReturnRows(countRows(1))
	err = svc.CanReview(booking, 3)
	if appErr := apperrors.GetAppError(err); appErr == nil || appErr.Code != apperrors.ErrCodeAlreadyReviewed {
		t.Fatalf("second review: expected ALREADY_REVIEWED, got %v", err)
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "reviews"`).WillReturnRows(countRows(0))
	if err := svc.CanReview(booking, 3); err != nil {
		t.Fatalf("eligible booking rejected: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateReviewRejectsBadRating(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewReviewService(gdb)

	if _, err := svc.Create(1, 1, 0, ""); err == nil {
		t.Fatalf("rating 0 must be rejected")
	}
	if _, err := svc.Create(1, 1, 6, ""); err == nil {
		t.Fatalf("rating 6 must be rejected")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "idx_reviews_booking_id" (SQLSTATE 23505)`)
	if !isUniqueViolation(pgErr) {
		t.Fatalf("postgres duplicate key message not recognized")
	}
	if isUniqueViolation(nil) {
		t.Fatalf("nil is not a violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatalf("unrelated error misclassified")
	}
}
