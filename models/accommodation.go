package models

import (
	"encoding/json"
	"time"

	"jatomogu/constants"
)

type Accommodation struct {
	ID               uint                          `json:"id" gorm:"primaryKey"`
	UserID           uint                          `json:"userId"` // owning Owner
	User             User                          `json:"user" gorm:"foreignKey:UserID"`
	CityID           uint                          `json:"cityId"`
	City             City                          `json:"city" gorm:"foreignKey:CityID"`
	Name             string                        `json:"name"`
	Address          string                        `json:"address"`
	ShortDescription string                        `json:"shortDescription"`
	Description      string                        `json:"description"`
	Beds             int                           `json:"beds"`
	Rooms            int                           `json:"rooms"`
	Amenities        json.RawMessage               `json:"amenities" gorm:"type:json"`
	Status           constants.AccommodationStatus `json:"status" gorm:"type:varchar(16);default:AVAILABLE"`
	SeasonalPrices   []SeasonalPrice               `json:"seasonalPrices,omitempty" gorm:"foreignKey:AccommodationID"`
	Reviews          []Review                      `json:"reviews,omitempty" gorm:"foreignKey:AccommodationID"`
	CreatedAt        time.Time                     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time                     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SeasonalPrice is one cell of an accommodation's price table. At most one
// row per (accommodation, season, duration).
type SeasonalPrice struct {
	ID              uint                     `json:"id" gorm:"primaryKey"`
	AccommodationID uint                     `json:"accommodationId" gorm:"uniqueIndex:idx_seasonal_price_key"`
	Season          constants.Season         `json:"season" gorm:"type:varchar(8);uniqueIndex:idx_seasonal_price_key"`
	Duration        constants.DurationBucket `json:"duration" gorm:"type:varchar(8);uniqueIndex:idx_seasonal_price_key"`
	PricePerNight   float64                  `json:"pricePerNight" gorm:"check:price_per_night >= 0"`
	CreatedAt       time.Time                `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time                `gorm:"autoUpdateTime" json:"updatedAt"`
}
