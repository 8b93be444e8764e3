package dto

import "encoding/json"

type CreateAccommodationRequest struct {
	CityID           uint            `json:"cityId" binding:"required"`
	Name             string          `json:"name" binding:"required"`
	Address          string          `json:"address"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Beds             int             `json:"beds"`
	Rooms            int             `json:"rooms"`
	Amenities        json.RawMessage `json:"amenities"`
}

// UpdateAccommodationRequest edits descriptive fields; nil means unchanged
type UpdateAccommodationRequest struct {
	AccommodationID  uint            `json:"accommodationId" binding:"required"`
	Name             *string         `json:"name"`
	Address          *string         `json:"address"`
	ShortDescription *string         `json:"shortDescription"`
	Description      *string         `json:"description"`
	Beds             *int            `json:"beds"`
	Rooms            *int            `json:"rooms"`
	Amenities        json.RawMessage `json:"amenities"`
}

type ChangeAccommodationStatusRequest struct {
	AccommodationID uint   `json:"accommodationId" binding:"required"`
	Status          string `json:"status" binding:"required"`
}

type UpsertSeasonalPriceRequest struct {
	AccommodationID uint    `json:"accommodationId" binding:"required"`
	Season          string  `json:"season" binding:"required"`
	Duration        string  `json:"duration" binding:"required"`
	PricePerNight   float64 `json:"pricePerNight"`
}
