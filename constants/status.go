package constants

import "fmt"

// User roles
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleOwner  Role = "OWNER"
	RoleGuide  Role = "GUIDE"
	RoleAdmin  Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleOwner, RoleGuide, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled,
		BookingStatusCompleted, BookingStatusNoShow:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status: %q", s)
}

// IsTerminal reports whether no further status transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted || s == BookingStatusNoShow
}

// Journey status, the guest's real-world travel progress. Strictly forward.
type JourneyStatus string

const (
	JourneyNotStarted JourneyStatus = "NOT_STARTED"
	JourneyDeparted   JourneyStatus = "DEPARTED"
	JourneyInGreece   JourneyStatus = "IN_GREECE"
	JourneyArrived    JourneyStatus = "ARRIVED"
)

func ParseJourneyStatus(s string) (JourneyStatus, error) {
	switch JourneyStatus(s) {
	case JourneyNotStarted, JourneyDeparted, JourneyInGreece, JourneyArrived:
		return JourneyStatus(s), nil
	}
	return "", fmt.Errorf("unknown journey status: %q", s)
}

// Rank orders journey statuses so forward-only progression can be checked.
func (s JourneyStatus) Rank() int {
	switch s {
	case JourneyNotStarted:
		return 0
	case JourneyDeparted:
		return 1
	case JourneyInGreece:
		return 2
	case JourneyArrived:
		return 3
	}
	return -1
}

// Package type
type PackageType string

const (
	PackageBasic PackageType = "BASIC"
	PackageBonus PackageType = "BONUS"
)

func ParsePackageType(s string) (PackageType, error) {
	switch PackageType(s) {
	case PackageBasic, PackageBonus:
		return PackageType(s), nil
	}
	return "", fmt.Errorf("unknown package type: %q", s)
}

// Accommodation status
type AccommodationStatus string

const (
	AccommodationAvailable   AccommodationStatus = "AVAILABLE"
	AccommodationBooked      AccommodationStatus = "BOOKED"
	AccommodationUnavailable AccommodationStatus = "UNAVAILABLE"
)

func ParseAccommodationStatus(s string) (AccommodationStatus, error) {
	switch AccommodationStatus(s) {
	case AccommodationAvailable, AccommodationBooked, AccommodationUnavailable:
		return AccommodationStatus(s), nil
	}
	return "", fmt.Errorf("unknown accommodation status: %q", s)
}

// Payment status
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status: %q", s)
}
