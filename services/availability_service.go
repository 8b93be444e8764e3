package services

import (
	"errors"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether an accommodation may take new
// bookings. Read-only; evaluated at quote time and re-evaluated inside the
// booking-creation transaction.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Bookable is the pure predicate: accommodation AVAILABLE, its city
// active, and no explicit per-city override set to false. override is nil
// when no LocationAvailability row exists, which counts as available.
func Bookable(acc *models.Accommodation, city *models.City, override *models.LocationAvailability) bool {
	if acc.Status != constants.AccommodationAvailable {
		return false
	}
	if !city.IsActive {
		return false
	}
	if override != nil && !override.IsAvailable {
		return false
	}
	return true
}

// IsBookable loads the city and its availability override and evaluates
// the predicate. Pass a transaction handle to get repeatable answers
// inside a booking creation.
func (s *AvailabilityService) IsBookable(tx *gorm.DB, acc *models.Accommodation) (bool, error) {
	if tx == nil {
		tx = s.db
	}

	var city models.City
	if err := tx.First(&city, acc.CityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.NewAppError(apperrors.ErrCodeNotFound, "City not found", err)
		}
		return false, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load city", err)
	}

	var override models.LocationAvailability
	err := tx.Where("city_id = ?", city.ID).First(&override).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Bookable(acc, &city, nil), nil
	}
	if err != nil {
		return false, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load location availability", err)
	}

	return Bookable(acc, &city, &override), nil
}
