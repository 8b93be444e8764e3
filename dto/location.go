package dto

type CreateCountryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type CreateRegionRequest struct {
	CountryID uint   `json:"countryId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type CreateCityRequest struct {
	RegionID  uint   `json:"regionId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateCityRequest struct {
	CityID    uint    `json:"cityId" binding:"required"`
	Name      *string `json:"name"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

// UpdateLocationAvailabilityRequest toggles bookability for one city
type UpdateLocationAvailabilityRequest struct {
	CityID      uint  `json:"cityId" binding:"required"`
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}
