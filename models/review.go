package models

import "time"

// Review is one-to-one with a completed booking. AccommodationID and
// UserID are denormalized copies for listing queries. The unique index on
// BookingID is what actually guarantees one review per booking.
type Review struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	BookingID       uint      `json:"bookingId" gorm:"uniqueIndex"`
	AccommodationID uint      `json:"accommodationId" gorm:"index"`
	UserID          uint      `json:"userId" gorm:"index"`
	Rating          int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment         string    `json:"comment"`
	User            User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
