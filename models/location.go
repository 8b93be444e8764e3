package models

import "time"

// Destination hierarchy: Country -> Region -> City. Slugs are unique per
// level and generated with utils.Slugify.

type Country struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	Regions   []Region  `json:"regions,omitempty" gorm:"foreignKey:CountryID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Region struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CountryID uint      `json:"countryId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex:idx_region_slug"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	Cities    []City    `json:"cities,omitempty" gorm:"foreignKey:RegionID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type City struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RegionID  uint      `json:"regionId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex:idx_city_slug"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// LocationAvailability is the admin-controlled per-city booking toggle.
// It is independent of City.IsActive; no row means bookable.
type LocationAvailability struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CityID      uint      `json:"cityId" gorm:"uniqueIndex"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
