package models

import (
	"time"

	"jatomogu/constants"
)

// Payment status transitions are administrative; amount is immutable once
// the payment reaches COMPLETED.
type Payment struct {
	ID        uint                    `json:"id" gorm:"primaryKey"`
	BookingID uint                    `json:"bookingId" gorm:"index"`
	Booking   Booking                 `json:"booking" gorm:"foreignKey:BookingID"`
	UserID    uint                    `json:"userId"`
	User      User                    `json:"user" gorm:"foreignKey:UserID"`
	Amount    float64                 `json:"amount"`
	Status    constants.PaymentStatus `json:"status" gorm:"type:varchar(16);default:PENDING"`
	CreatedAt time.Time               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time               `gorm:"autoUpdateTime" json:"updatedAt"`
}
