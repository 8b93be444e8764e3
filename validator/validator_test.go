package validator

import (
	"testing"

	"jatomogu/constants"
	"jatomogu/dto"
	apperrors "jatomogu/errors"
)

func validBookingRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		AccommodationID: 1,
		PackageType:     "BASIC",
		ArrivalDate:     "15/07/2024",
		Duration:        "4-7",
		ArrivalTime:     "14:30",
		GuestName:       "Milan Petrovic",
		GuestEmail:      "milan@example.com",
		GuestPhone:      "+381641234567",
	}
}

func TestValidateCreateBookingOK(t *testing.T) {
	params, err := ValidateCreateBooking(validBookingRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.PackageType != constants.PackageBasic {
		t.Fatalf("packageType = %q", params.PackageType)
	}
	if params.Duration != constants.Duration4to7 {
		t.Fatalf("duration = %q", params.Duration)
	}
	if params.ArrivalDate.Day() != 15 || int(params.ArrivalDate.Month()) != 7 {
		t.Fatalf("arrival date parsed as %v", params.ArrivalDate)
	}
}

func TestValidateCreateBookingRejectsUnknownEnums(t *testing.T) {
	req := validBookingRequest()
	req.PackageType = "PREMIUM"
	if _, err := ValidateCreateBooking(req); !apperrors.IsAppError(err) {
		t.Fatalf("unknown package type must be rejected, got %v", err)
	}

	req = validBookingRequest()
	req.Duration = "5-6"
	if _, err := ValidateCreateBooking(req); err == nil {
		t.Fatalf("unknown duration bucket must be rejected")
	}
}

func TestValidateCreateBookingRejectsBadFields(t *testing.T) {
	req := validBookingRequest()
	req.ArrivalDate = "2024-07-15"
	if _, err := ValidateCreateBooking(req); err == nil {
		t.Fatalf("iso date must be rejected, wire format is dd/mm/yyyy")
	}

	req = validBookingRequest()
	req.ArrivalTime = "25:00"
	if _, err := ValidateCreateBooking(req); err == nil {
		t.Fatalf("impossible arrival time must be rejected")
	}

	req = validBookingRequest()
	req.GuestEmail = "not-an-email"
	if _, err := ValidateCreateBooking(req); err == nil {
		t.Fatalf("bad email must be rejected")
	}

	req = validBookingRequest()
	req.GuestPhone = "abc"
	if _, err := ValidateCreateBooking(req); err == nil {
		t.Fatalf("bad phone must be rejected")
	}
}

func TestValidateReviewRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		if err := ValidateReview(&dto.CreateReviewRequest{BookingID: 1, Rating: rating}); err == nil {
			t.Fatalf("rating %d must be rejected", rating)
		}
	}
	if err := ValidateReview(&dto.CreateReviewRequest{BookingID: 1, Rating: 5, Comment: "odlicno"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRegisterRoles(t *testing.T) {
	base := dto.RegisterRequest{Email: "ana@example.com", Password: "secret1"}

	role, err := ValidateRegister(&base)
	if err != nil || role != constants.RoleClient {
		t.Fatalf("empty role should default to CLIENT, got %q err=%v", role, err)
	}

	req := base
	req.Role = "OWNER"
	if role, err = ValidateRegister(&req); err != nil || role != constants.RoleOwner {
		t.Fatalf("OWNER should be allowed, got %q err=%v", role, err)
	}

	for _, closed := range []string{"ADMIN", "GUIDE", "SUPERUSER"} {
		req = base
		req.Role = closed
		if _, err = ValidateRegister(&req); err == nil {
			t.Fatalf("role %q must not be open for self-registration", closed)
		}
	}
}
