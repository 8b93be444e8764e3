package services

import (
	"errors"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccommodationService handles owner-side accommodation management and the
// seasonal price table.
type AccommodationService struct {
	db *gorm.DB
}

func NewAccommodationService(db *gorm.DB) *AccommodationService {
	return &AccommodationService{db: db}
}

// Create registers a new accommodation for an owner
func (s *AccommodationService) Create(ownerID uint, acc *models.Accommodation) (*models.Accommodation, error) {
	var city models.City
	if err := s.db.First(&city, acc.CityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "City not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load city", err)
	}

	acc.UserID = ownerID
	if acc.Status == "" {
		acc.Status = constants.AccommodationAvailable
	}
	if err := s.db.Create(acc).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create accommodation", err)
	}
	return acc, nil
}

// GetByID loads an accommodation with city and price table
func (s *AccommodationService) GetByID(id uint) (*models.Accommodation, error) {
	var acc models.Accommodation
	err := s.db.Preload("City").Preload("SeasonalPrices").Preload("User").First(&acc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Accommodation not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load accommodation", err)
	}
	return &acc, nil
}

// requireOwnership fails with Forbidden unless actor owns the accommodation
// or is an admin.
func (s *AccommodationService) requireOwnership(acc *models.Accommodation, actorID uint, role constants.Role) error {
	if role == constants.RoleAdmin {
		return nil
	}
	if acc.UserID != actorID {
		return apperrors.NewAppError(apperrors.ErrCodeForbidden, "Not your accommodation", nil)
	}
	return nil
}

// Update edits the descriptive fields of an accommodation. Status and city
// are changed through their own operations.
func (s *AccommodationService) Update(id, actorID uint, role constants.Role, fields map[string]interface{}) (*models.Accommodation, error) {
	acc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(acc, actorID, role); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return acc, nil
	}

	if err := s.db.Model(acc).Updates(fields).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update accommodation", err)
	}
	return acc, nil
}

// ChangeStatus lets the owner (or an admin) park an accommodation as
// UNAVAILABLE or bring it back. BOOKED is managed by the booking flow and
// cannot be set by hand.
func (s *AccommodationService) ChangeStatus(id, actorID uint, role constants.Role, status constants.AccommodationStatus) (*models.Accommodation, error) {
	if status == constants.AccommodationBooked {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "BOOKED is set by the booking flow", nil)
	}

	acc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(acc, actorID, role); err != nil {
		return nil, err
	}

	if err := s.db.Model(acc).Update("status", status).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update accommodation", err)
	}
	acc.Status = status
	return acc, nil
}

// UpsertSeasonalPrice writes one cell of the price table, keeping the
// (accommodation, season, duration) key unique.
func (s *AccommodationService) UpsertSeasonalPrice(accommodationID, actorID uint, role constants.Role,
	season constants.Season, duration constants.DurationBucket, pricePerNight float64) (*models.SeasonalPrice, error) {

	if pricePerNight < 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Price per night cannot be negative", nil)
	}

	acc, err := s.GetByID(accommodationID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(acc, actorID, role); err != nil {
		return nil, err
	}

	price := &models.SeasonalPrice{
		AccommodationID: accommodationID,
		Season:          season,
		Duration:        duration,
		PricePerNight:   pricePerNight,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "accommodation_id"}, {Name: "season"}, {Name: "duration"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_per_night", "updated_at"}),
	}).Create(price).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot save seasonal price", err)
	}
	return price, nil
}

// ListForCity returns bookable-city accommodations for browsing
func (s *AccommodationService) ListForCity(cityID uint) ([]models.Accommodation, error) {
	var accs []models.Accommodation
	err := s.db.Preload("City").Where("city_id = ?", cityID).Order("name").Find(&accs).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load accommodations", err)
	}
	return accs, nil
}

// ListForOwner returns everything an owner manages
func (s *AccommodationService) ListForOwner(ownerID uint) ([]models.Accommodation, error) {
	var accs []models.Accommodation
	err := s.db.Preload("City").Preload("SeasonalPrices").
		Where("user_id = ?", ownerID).Order("name").Find(&accs).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load accommodations", err)
	}
	return accs, nil
}
