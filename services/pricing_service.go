package services

import (
	"errors"
	"strconv"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"gorm.io/gorm"
)

// PricingService resolves nightly rates from the seasonal price table and
// computes booking totals.
type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

// ResolvePrice looks up the unique rate for (accommodation, season,
// duration). A missing row means the stay cannot be booked, never a
// zero-cost stay.
func (s *PricingService) ResolvePrice(accommodationID uint, season constants.Season, duration constants.DurationBucket) (float64, error) {
	var price models.SeasonalPrice
	err := s.db.Where("accommodation_id = ? AND season = ? AND duration = ?",
		accommodationID, season, duration).First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.NewAppError(apperrors.ErrCodeRateNotConfigured,
			"No rate configured for this season and duration", apperrors.ErrRateNotConfigured)
	}
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load seasonal price", err)
	}
	return price.PricePerNight, nil
}

// ComputeTotal multiplies the nightly rate by the billed nights of the
// duration bucket (lower bound policy, see constants.DurationBucket.Nights).
func ComputeTotal(pricePerNight float64, nights int) float64 {
	return pricePerNight * float64(nights)
}

// BonusSurchargePerNight reads the BONUS package surcharge from the
// settings table. Read at request time so admin edits apply immediately
// across instances. No row means no surcharge.
func (s *PricingService) BonusSurchargePerNight() (float64, error) {
	var setting models.Setting
	err := s.db.Where("key = ?", models.SettingBonusPerNight).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load settings", err)
	}
	surcharge, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil {
		return 0, apperrors.NewAppError(apperrors.ErrCodeInternal, "Malformed setting value", err)
	}
	return surcharge, nil
}

// Quote resolves the full price of a prospective stay.
func (s *PricingService) Quote(accommodationID uint, packageType constants.PackageType,
	season constants.Season, duration constants.DurationBucket) (pricePerNight, total float64, err error) {

	pricePerNight, err = s.ResolvePrice(accommodationID, season, duration)
	if err != nil {
		return 0, 0, err
	}

	if packageType == constants.PackageBonus {
		surcharge, err := s.BonusSurchargePerNight()
		if err != nil {
			return 0, 0, err
		}
		pricePerNight += surcharge
	}

	return pricePerNight, ComputeTotal(pricePerNight, duration.Nights()), nil
}
