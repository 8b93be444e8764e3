package services

import (
	"errors"
	"testing"
	"time"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestApplyStatusLegalEdges(t *testing.T) {
	b := &models.Booking{Status: constants.BookingStatusPending}

	changed, err := applyStatus(b, constants.BookingStatusConfirmed)
	if err != nil || !changed {
		t.Fatalf("PENDING -> CONFIRMED: changed=%v err=%v", changed, err)
	}

	changed, err = applyStatus(b, constants.BookingStatusCompleted)
	if err != nil || !changed {
		t.Fatalf("CONFIRMED -> COMPLETED: changed=%v err=%v", changed, err)
	}
}

func TestApplyStatusPendingToCompletedRejected(t *testing.T) {
	b := &models.Booking{Status: constants.BookingStatusPending}
	if _, err := applyStatus(b, constants.BookingStatusCompleted); err == nil {
		t.Fatalf("PENDING -> COMPLETED must fail")
	}
	if b.Status != constants.BookingStatusPending {
		t.Fatalf("status mutated to %q", b.Status)
	}
}

func TestApplyStatusTerminalResubmissionNoOp(t *testing.T) {
	b := &models.Booking{Status: constants.BookingStatusCancelled}
	changed, err := applyStatus(b, constants.BookingStatusCancelled)
	if err != nil {
		t.Fatalf("resubmitting CANCELLED should not error: %v", err)
	}
	if changed {
		t.Fatalf("resubmitting CANCELLED should be a no-op")
	}
}

func TestApplyStatusTerminalEscapeRejected(t *testing.T) {
	for _, terminal := range []constants.BookingStatus{
		constants.BookingStatusCancelled,
		constants.BookingStatusCompleted,
		constants.BookingStatusNoShow,
	} {
		b := &models.Booking{Status: terminal}
		if _, err := applyStatus(b, constants.BookingStatusConfirmed); err == nil {
			t.Fatalf("%q -> CONFIRMED must fail", terminal)
		}
	}
}

func TestApplyJourneyStatusForwardStampsMilestones(t *testing.T) {
	now := time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC)
	b := &models.Booking{JourneyStatus: constants.JourneyNotStarted}

	changed, err := applyJourneyStatus(b, constants.JourneyDeparted, now)
	if err != nil || !changed {
		t.Fatalf("NOT_STARTED -> DEPARTED: changed=%v err=%v", changed, err)
	}
	if b.DepartedAt == nil || !b.DepartedAt.Equal(now) {
		t.Fatalf("departedAt not stamped")
	}
	if b.ArrivedGreeceAt != nil || b.ArrivedDestinationAt != nil {
		t.Fatalf("later milestones must stay nil")
	}
}

func TestApplyJourneyStatusIdempotentTimestamps(t *testing.T) {
	first := time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	b := &models.Booking{JourneyStatus: constants.JourneyNotStarted}
	if _, err := applyJourneyStatus(b, constants.JourneyDeparted, first); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}

	// re-sending the same transition must not overwrite the timestamp
	changed, err := applyJourneyStatus(b, constants.JourneyDeparted, later)
	if err != nil {
		t.Fatalf("resubmission should not error: %v", err)
	}
	if changed {
		t.Fatalf("resubmission should be a no-op")
	}
	if !b.DepartedAt.Equal(first) {
		t.Fatalf("departedAt overwritten: %v", b.DepartedAt)
	}
}

func TestApplyJourneyStatusSkipStampsIntermediate(t *testing.T) {
	now := time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC)
	b := &models.Booking{JourneyStatus: constants.JourneyNotStarted}

	if _, err := applyJourneyStatus(b, constants.JourneyArrived, now); err != nil {
		t.Fatalf("jump to ARRIVED failed: %v", err)
	}
	if b.DepartedAt == nil || b.ArrivedGreeceAt == nil || b.ArrivedDestinationAt == nil {
		t.Fatalf("all milestones up to ARRIVED must be stamped")
	}
}

func TestApplyJourneyStatusBackwardRejected(t *testing.T) {
	b := &models.Booking{JourneyStatus: constants.JourneyInGreece}
	if _, err := applyJourneyStatus(b, constants.JourneyDeparted, time.Now()); err == nil {
		t.Fatalf("IN_GREECE -> DEPARTED must fail")
	}
}

func TestCanDriveJourney(t *testing.T) {
	guideID := uint(7)
	b := &models.Booking{UserID: 3, GuideID: &guideID}

	if !canDriveJourney(b, 3, constants.RoleClient) {
		t.Fatalf("booking's client must be allowed")
	}
	if !canDriveJourney(b, 7, constants.RoleGuide) {
		t.Fatalf("assigned guide must be allowed")
	}
	if !canDriveJourney(b, 99, constants.RoleAdmin) {
		t.Fatalf("admin must be allowed")
	}
	if canDriveJourney(b, 4, constants.RoleClient) {
		t.Fatalf("unrelated client must be rejected")
	}
	if canDriveJourney(b, 8, constants.RoleGuide) {
		t.Fatalf("unassigned guide must be rejected")
	}
	if canDriveJourney(b, 3, constants.RoleOwner) {
		t.Fatalf("owners do not drive journeys")
	}

	noGuide := &models.Booking{UserID: 3}
	if canDriveJourney(noGuide, 7, constants.RoleGuide) {
		t.Fatalf("guide on a booking without one must be rejected")
	}
}

func TestCreateRejectsActiveBookingConflict(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: gdb})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "accommodations" (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "city_id", "status"}).
			AddRow(7, 9, 2, "AVAILABLE"))
	mock.ExpectQuery(`SELECT (.+) FROM "cities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "region_id", "is_active"}).
			AddRow(2, 1, true))
	mock.ExpectQuery(`SELECT (.+) FROM "location_availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bookings"`).
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	_, err := svc.Create(3, CreateQuoteParams{
		AccommodationID: 7,
		PackageType:     constants.PackageBasic,
		ArrivalDate:     time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Duration:        constants.Duration4to7,
	})
	if err == nil {
		t.Fatalf("an active booking must block a second reservation")
	}
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
	if !errors.Is(err, apperrors.ErrAccommodationBusy) {
		t.Fatalf("conflict should wrap the busy sentinel: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRejectsNotBookableUnderLock(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: gdb})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "accommodations" (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "city_id", "status"}).
			AddRow(7, 9, 2, "BOOKED"))
	mock.ExpectQuery(`SELECT (.+) FROM "cities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "region_id", "is_active"}).
			AddRow(2, 1, true))
	mock.ExpectQuery(`SELECT (.+) FROM "location_availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Create(3, CreateQuoteParams{
		AccommodationID: 7,
		PackageType:     constants.PackageBasic,
		ArrivalDate:     time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		Duration:        constants.Duration4to7,
	})
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeNotBookable {
		t.Fatalf("expected NOT_BOOKABLE, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestChangeStatusConcurrentTransitionConflicts(t *testing.T) {
	gdb, mock := newMockDB(t)
	svc := NewBookingService(BookingServiceOptions{DB: gdb})

	mock.ExpectQuery(`SELECT (.+) FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "accommodation_id", "package_type", "status", "journey_status"}).
			AddRow(5, 3, 7, "BASIC", "CONFIRMED", "NOT_STARTED"))
	mock.ExpectQuery(`SELECT (.+) FROM "accommodations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "city_id", "status"}).
			AddRow(7, 9, 2, "BOOKED"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(9, "OWNER"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).AddRow(3, "CLIENT"))

	// another transition landed between the read and the write: the
	// status-guarded update touches no rows and the change is rejected
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "bookings" SET (.+) WHERE id = (.+) AND status = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := svc.ChangeStatus(5, 99, constants.RoleAdmin, constants.BookingStatusCompleted)
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingExpiry(t *testing.T) {
	created := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	b := &models.Booking{ExpiresAt: created.Add(constants.ReservationValidity)}

	if b.IsExpired(created.Add(35 * time.Hour)) {
		t.Fatalf("booking expired too early")
	}
	if !b.IsExpired(created.Add(37 * time.Hour)) {
		t.Fatalf("booking should be expired after 36h")
	}
}
