package validator

import (
	"regexp"
	"time"

	"jatomogu/constants"
	"jatomogu/dto"
	apperrors "jatomogu/errors"
	"jatomogu/services"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{6,15}$`)
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ParseDate accepts the dd/mm/yyyy wire format
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat,
			"Date must be in dd/mm/yyyy format", err)
	}
	return parsed, nil
}

// ValidateCreateBooking checks the request and converts its string enums
// into their closed types. Unknown enum values never reach the services.
func ValidateCreateBooking(req *dto.CreateBookingRequest) (services.CreateQuoteParams, error) {
	var params services.CreateQuoteParams

	packageType, err := constants.ParsePackageType(req.PackageType)
	if err != nil {
		return params, apperrors.NewAppError(apperrors.ErrCodeValidation, "Unknown package type", err)
	}

	duration, err := constants.ParseDurationBucket(req.Duration)
	if err != nil {
		return params, apperrors.NewAppError(apperrors.ErrCodeValidation, "Unknown duration bucket", err)
	}

	arrivalDate, err := ParseDate(req.ArrivalDate)
	if err != nil {
		return params, err
	}

	if req.ArrivalTime != "" && !timeRegex.MatchString(req.ArrivalTime) {
		return params, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Arrival time must be HH:MM", nil)
	}
	if req.GuestName == "" {
		return params, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Guest name is required", nil)
	}
	if !isValidEmail(req.GuestEmail) {
		return params, apperrors.NewAppError(apperrors.ErrCodeInvalidEmail, "Guest email is not valid", nil)
	}
	if !isValidPhone(req.GuestPhone) {
		return params, apperrors.NewAppError(apperrors.ErrCodeInvalidPhone, "Guest phone is not valid", nil)
	}

	params = services.CreateQuoteParams{
		AccommodationID: req.AccommodationID,
		PackageType:     packageType,
		ArrivalDate:     arrivalDate,
		Duration:        duration,
		ArrivalTime:     req.ArrivalTime,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
	}
	return params, nil
}

// ValidateReview checks a review creation request
func ValidateReview(req *dto.CreateReviewRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Rating must be between 1 and 5", nil)
	}
	if len(req.Comment) > 2000 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Comment is too long", nil)
	}
	return nil
}

// ValidateRegister checks a registration request and resolves the role
func ValidateRegister(req *dto.RegisterRequest) (constants.Role, error) {
	if !isValidEmail(req.Email) {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}
	if len(req.Password) < 6 {
		return "", apperrors.NewAppError(apperrors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}
	if req.PhoneNumber != "" && !isValidPhone(req.PhoneNumber) {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}

	// self-registration is only open to clients and owners
	if req.Role == "" {
		return constants.RoleClient, nil
	}
	role, err := constants.ParseRole(req.Role)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "Unknown role", err)
	}
	if role != constants.RoleClient && role != constants.RoleOwner {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "Role not open for registration", nil)
	}
	return role, nil
}
