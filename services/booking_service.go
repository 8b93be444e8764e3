package services

import (
	"errors"
	"time"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"
	"jatomogu/services/logger"
	"jatomogu/services/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: quoting, creation, status and
// journey-status transitions, guide assignment and expiry.
type BookingService struct {
	db           *gorm.DB
	pricing      *PricingService
	availability *AvailabilityService
	dispatcher   *notification.Dispatcher
	log          logger.Logger
}

type BookingServiceOptions struct {
	DB         *gorm.DB
	Dispatcher *notification.Dispatcher
	Logger     logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:           opts.DB,
		pricing:      NewPricingService(opts.DB),
		availability: NewAvailabilityService(opts.DB),
		dispatcher:   opts.Dispatcher,
		log:          l,
	}
}

// BookingQuote is the priced offer shown before confirmation
type BookingQuote struct {
	AccommodationID uint                     `json:"accommodationId"`
	PackageType     constants.PackageType    `json:"packageType"`
	Season          constants.Season         `json:"season"`
	Duration        constants.DurationBucket `json:"duration"`
	Nights          int                      `json:"nights"`
	PricePerNight   float64                  `json:"pricePerNight"`
	TotalPrice      float64                  `json:"totalPrice"`
}

// CreateQuoteParams carries the client's booking intent
type CreateQuoteParams struct {
	AccommodationID uint
	PackageType     constants.PackageType
	ArrivalDate     time.Time
	Duration        constants.DurationBucket
	ArrivalTime     string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
}

// Quote checks bookability and resolves the price without writing anything.
func (s *BookingService) Quote(p CreateQuoteParams) (*BookingQuote, error) {
	var acc models.Accommodation
	if err := s.db.First(&acc, p.AccommodationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Accommodation not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load accommodation", err)
	}

	bookable, err := s.availability.IsBookable(nil, &acc)
	if err != nil {
		return nil, err
	}
	if !bookable {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotBookable, "Accommodation is not bookable", nil)
	}

	season := constants.SeasonForMonth(p.ArrivalDate.Month())
	pricePerNight, total, err := s.pricing.Quote(acc.ID, p.PackageType, season, p.Duration)
	if err != nil {
		return nil, err
	}

	return &BookingQuote{
		AccommodationID: acc.ID,
		PackageType:     p.PackageType,
		Season:          season,
		Duration:        p.Duration,
		Nights:          p.Duration.Nights(),
		PricePerNight:   pricePerNight,
		TotalPrice:      total,
	}, nil
}

// Create turns a confirmed quote into a PENDING booking. The accommodation
// row is locked for the duration of the transaction and bookability is
// re-checked under the lock, so two concurrent creations cannot both
// succeed; the partial unique index on active bookings is the backstop.
func (s *BookingService) Create(userID uint, p CreateQuoteParams) (*models.Booking, error) {
	var booking *models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var acc models.Accommodation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&acc, p.AccommodationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeNotFound, "Accommodation not found", err)
			}
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load accommodation", err)
		}

		bookable, err := s.availability.IsBookable(tx, &acc)
		if err != nil {
			return err
		}
		if !bookable {
			return apperrors.NewAppError(apperrors.ErrCodeNotBookable, "Accommodation is not bookable", nil)
		}

		var active int64
		if err := tx.Model(&models.Booking{}).
			Where("accommodation_id = ? AND status IN ?", acc.ID,
				[]constants.BookingStatus{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
			Count(&active).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot check active bookings", err)
		}
		if active > 0 {
			return apperrors.NewAppError(apperrors.ErrCodeConflict,
				"Accommodation already has an active booking", apperrors.ErrAccommodationBusy)
		}

		season := constants.SeasonForMonth(p.ArrivalDate.Month())
		pricing := NewPricingService(tx)
		_, total, err := pricing.Quote(acc.ID, p.PackageType, season, p.Duration)
		if err != nil {
			return err
		}

		now := time.Now()
		booking = &models.Booking{
			UserID:          userID,
			AccommodationID: acc.ID,
			PackageType:     p.PackageType,
			Status:          constants.BookingStatusPending,
			JourneyStatus:   constants.JourneyNotStarted,
			ArrivalDate:     p.ArrivalDate,
			ArrivalTime:     p.ArrivalTime,
			Duration:        p.Duration,
			TotalPrice:      total,
			GuestName:       p.GuestName,
			GuestEmail:      p.GuestEmail,
			GuestPhone:      p.GuestPhone,
			ExpiresAt:       now.Add(constants.ReservationValidity),
		}
		if err := tx.Create(booking).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeConflict, "Cannot create booking", err)
		}

		if err := tx.Model(&acc).Update("status", constants.AccommodationBooked).Error; err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update accommodation status", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByID loads a booking with its relations
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Accommodation").Preload("Accommodation.User").
		Preload("User").Preload("Guide").First(&booking, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load booking", err)
	}
	return &booking, nil
}

// applyStatus runs one lifecycle transition through the state machine.
// Returns changed=false for a no-op resubmission of the current status.
func applyStatus(b *models.Booking, target constants.BookingStatus) (changed bool, err error) {
	if b.Status == target {
		// idempotent resubmission
		return false, nil
	}

	state := models.GetBookingState(b.Status)
	switch target {
	case constants.BookingStatusConfirmed:
		err = state.Confirm(b)
	case constants.BookingStatusCancelled:
		err = state.Cancel(b)
	case constants.BookingStatusCompleted:
		err = state.Complete(b)
	case constants.BookingStatusNoShow:
		err = state.NoShow(b)
	default:
		return false, errors.New("cannot transition into PENDING")
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ChangeStatus performs a role-gated lifecycle transition.
// Clients may only cancel their own booking; owners act on bookings of
// their accommodations; admins act on any booking.
func (s *BookingService) ChangeStatus(bookingID, actorID uint, role constants.Role, target constants.BookingStatus) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	switch role {
	case constants.RoleAdmin:
		// unrestricted
	case constants.RoleClient:
		if booking.UserID != actorID || target != constants.BookingStatusCancelled {
			return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Not allowed to change this booking", nil)
		}
	case constants.RoleOwner:
		if booking.Accommodation.UserID != actorID {
			return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Not allowed to change this booking", nil)
		}
	default:
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Not allowed to change this booking", nil)
	}

	prev := booking.Status
	changed, err := applyStatus(booking, target)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, err.Error(), err)
	}
	if !changed {
		return booking, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// guard on the status we validated against, so a concurrent
		// transition cannot be silently overwritten
		res := tx.Model(&models.Booking{}).Where("id = ? AND status = ?", booking.ID, prev).
			Update("status", booking.Status)
		if res.Error != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update booking", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewAppError(apperrors.ErrCodeConflict,
				"Booking status changed concurrently, reload and retry", nil)
		}
		if booking.Status.IsTerminal() {
			// free the accommodation for new reservations
			if err := tx.Model(&models.Accommodation{}).
				Where("id = ? AND status = ?", booking.AccommodationID, constants.AccommodationBooked).
				Update("status", constants.AccommodationAvailable).Error; err != nil {
				return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot release accommodation", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// AssignGuide attaches a guide to a BONUS booking (admin only path).
func (s *BookingService) AssignGuide(bookingID, guideID uint) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PackageType != constants.PackageBonus {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "Only BONUS bookings include a guide", nil)
	}
	if booking.Status.IsTerminal() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "Booking is already closed", nil)
	}

	var guide models.User
	if err := s.db.First(&guide, guideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Guide not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load guide", err)
	}
	if guide.Role != constants.RoleGuide {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "User is not a guide", nil)
	}

	if err := s.db.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("guide_id", guide.ID).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot assign guide", err)
	}
	booking.GuideID = &guide.ID
	booking.Guide = &guide
	return booking, nil
}

// canDriveJourney checks the actor against the booking: its client, its
// assigned guide, or an admin.
func canDriveJourney(b *models.Booking, actorID uint, role constants.Role) bool {
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleClient:
		return b.UserID == actorID
	case constants.RoleGuide:
		return b.GuideID != nil && *b.GuideID == actorID
	}
	return false
}

// applyJourneyStatus advances the journey and stamps milestones. Backward
// moves are rejected; re-sending the current status is a no-op. A
// milestone timestamp is only ever written while nil, so resubmissions
// cannot corrupt elapsed-time metrics.
func applyJourneyStatus(b *models.Booking, target constants.JourneyStatus, now time.Time) (changed bool, err error) {
	cur, tgt := b.JourneyStatus.Rank(), target.Rank()
	if tgt < cur {
		return false, errors.New("journey status cannot move backwards")
	}
	if tgt == cur {
		return false, nil
	}

	if tgt >= constants.JourneyDeparted.Rank() && b.DepartedAt == nil {
		t := now
		b.DepartedAt = &t
	}
	if tgt >= constants.JourneyInGreece.Rank() && b.ArrivedGreeceAt == nil {
		t := now
		b.ArrivedGreeceAt = &t
	}
	if tgt >= constants.JourneyArrived.Rank() && b.ArrivedDestinationAt == nil {
		t := now
		b.ArrivedDestinationAt = &t
	}
	b.JourneyStatus = target
	return true, nil
}

// UpdateJourneyStatus advances a booking's journey status on behalf of its
// client, assigned guide or an admin, and fire-and-forgets the owner/guide
// notifications.
func (s *BookingService) UpdateJourneyStatus(bookingID, actorID uint, role constants.Role, target constants.JourneyStatus) (*models.Booking, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if !canDriveJourney(booking, actorID, role) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Not allowed to update this journey", nil)
	}

	changed, err := applyJourneyStatus(booking, target, time.Now())
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, err.Error(), err)
	}
	if !changed {
		return booking, nil
	}

	updates := map[string]interface{}{
		"journey_status":         booking.JourneyStatus,
		"departed_at":            booking.DepartedAt,
		"arrived_greece_at":      booking.ArrivedGreeceAt,
		"arrived_destination_at": booking.ArrivedDestinationAt,
	}
	if err := s.db.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(updates).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update journey status", err)
	}

	s.notifyJourneyChange(booking)
	return booking, nil
}

// notifyJourneyChange builds the owner and guide notifications and hands
// them to the dispatcher. Never blocks, never fails the caller.
func (s *BookingService) notifyJourneyChange(b *models.Booking) {
	if s.dispatcher == nil {
		return
	}

	notifications := []notification.JourneyStatusNotification{{
		RecipientEmail:    b.Accommodation.User.Email,
		RecipientName:     b.Accommodation.User.Name,
		RecipientRole:     constants.RoleOwner,
		GuestName:         b.GuestName,
		GuestPhone:        b.GuestPhone,
		AccommodationName: b.Accommodation.Name,
		JourneyStatus:     b.JourneyStatus,
		ArrivalDate:       b.ArrivalDate,
	}}
	if b.Guide != nil {
		notifications = append(notifications, notification.JourneyStatusNotification{
			RecipientEmail:    b.Guide.Email,
			RecipientName:     b.Guide.Name,
			RecipientRole:     constants.RoleGuide,
			GuestName:         b.GuestName,
			GuestPhone:        b.GuestPhone,
			AccommodationName: b.Accommodation.Name,
			JourneyStatus:     b.JourneyStatus,
			ArrivalDate:       b.ArrivalDate,
		})
	}
	s.dispatcher.Dispatch(notifications)
}

// ExpireOverdue cancels PENDING bookings whose reservation window has
// lapsed and frees their accommodations. Called from the cron sweep.
func (s *BookingService) ExpireOverdue(now time.Time) (int64, error) {
	var expired int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var overdue []models.Booking
		if err := tx.Where("status = ? AND expires_at < ?", constants.BookingStatusPending, now).
			Find(&overdue).Error; err != nil {
			return err
		}
		if len(overdue) == 0 {
			return nil
		}

		ids := make([]uint, 0, len(overdue))
		accIDs := make([]uint, 0, len(overdue))
		for _, b := range overdue {
			ids = append(ids, b.ID)
			accIDs = append(accIDs, b.AccommodationID)
		}

		res := tx.Model(&models.Booking{}).Where("id IN ?", ids).
			Update("status", constants.BookingStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		expired = res.RowsAffected

		return tx.Model(&models.Accommodation{}).
			Where("id IN ? AND status = ?", accIDs, constants.AccommodationBooked).
			Update("status", constants.AccommodationAvailable).Error
	})
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		s.log.Info("expired %d overdue pending bookings", expired)
	}
	return expired, nil
}

// ListForUser returns the client's own bookings
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Accommodation").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load bookings", err)
	}
	return bookings, nil
}

// ListForOwner returns bookings against the owner's accommodations
func (s *BookingService) ListForOwner(ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Accommodation").Preload("User").
		Where("accommodation_id IN (?)",
			s.db.Model(&models.Accommodation{}).Select("id").Where("user_id = ?", ownerID)).
		Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load bookings", err)
	}
	return bookings, nil
}

// ListForGuide returns bookings the guide is assigned to
func (s *BookingService) ListForGuide(guideID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("Accommodation").Preload("User").
		Where("guide_id = ?", guideID).
		Order("arrival_date ASC").Find(&bookings).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load bookings", err)
	}
	return bookings, nil
}
