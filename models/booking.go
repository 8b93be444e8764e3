package models

import (
	"time"

	"jatomogu/constants"
)

type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"userId"`
	User            User          `json:"user" gorm:"foreignKey:UserID"`
	AccommodationID uint          `json:"accommodationId" gorm:"index:idx_booking_active,unique,where:status IN ('PENDING','CONFIRMED')"`
	Accommodation   Accommodation `json:"accommodation" gorm:"foreignKey:AccommodationID"`
	GuideID         *uint         `json:"guideId,omitempty"`
	Guide           *User         `json:"guide,omitempty" gorm:"foreignKey:GuideID"`

	PackageType   constants.PackageType    `json:"packageType" gorm:"type:varchar(8)"`
	Status        constants.BookingStatus  `json:"status" gorm:"type:varchar(16);default:PENDING"`
	JourneyStatus constants.JourneyStatus  `json:"journeyStatus" gorm:"type:varchar(16);default:NOT_STARTED"`
	ArrivalDate   time.Time                `json:"arrivalDate"`
	ArrivalTime   string                   `json:"arrivalTime"`
	Duration      constants.DurationBucket `json:"duration" gorm:"type:varchar(8)"`

	// TotalPrice is computed at creation and immutable afterwards.
	TotalPrice float64 `json:"totalPrice"`

	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	// Journey milestones, each set exactly once.
	DepartedAt           *time.Time `json:"departedAt,omitempty"`
	ArrivedGreeceAt      *time.Time `json:"arrivedGreeceAt,omitempty"`
	ArrivedDestinationAt *time.Time `json:"arrivedDestinationAt,omitempty"`

	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsExpired reports whether an unconfirmed booking has outlived its
// reservation window. Advisory between reaper sweeps.
func (b *Booking) IsExpired(now time.Time) bool {
	return now.After(b.ExpiresAt)
}
