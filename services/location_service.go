package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "jatomogu/errors"
	"jatomogu/models"
	"jatomogu/utils"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	destinationTreeCacheKey = "destinations:tree"
	destinationCacheTTL     = 10 * time.Minute
)

// LocationService manages the Country/Region/City hierarchy, the per-city
// booking toggle and destination search.
type LocationService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewLocationService(db *gorm.DB, rdb *redis.Client) *LocationService {
	return &LocationService{db: db, rdb: rdb}
}

// Tree returns the active destination hierarchy, cached in Redis.
func (s *LocationService) Tree(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, destinationTreeCacheKey, &countries); err == nil && len(countries) > 0 {
			return countries, nil
		}
	}

	err := s.db.Preload("Regions", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("sort_order, name")
	}).Preload("Regions.Cities", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("sort_order, name")
	}).Where("is_active = ?", true).Order("sort_order, name").Find(&countries).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load destinations", err)
	}

	if s.rdb != nil {
		// cache failures never fail the read
		_ = SetToRedis(ctx, s.rdb, destinationTreeCacheKey, countries, destinationCacheTTL)
	}
	return countries, nil
}

// invalidate drops every cached destination read after a write
func (s *LocationService) invalidate() {
	if s.rdb == nil {
		return
	}
	_ = DeleteFromRedis(context.Background(), s.rdb, destinationTreeCacheKey)
}

// CreateCountry inserts a top-level destination country.
func (s *LocationService) CreateCountry(name string, sortOrder int) (*models.Country, error) {
	country := &models.Country{
		Name:      name,
		Slug:      utils.Slugify(name),
		IsActive:  true,
		SortOrder: sortOrder,
	}
	if err := s.db.Create(country).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "A country with this slug already exists", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create country", err)
	}
	s.invalidate()
	return country, nil
}

// CreateRegion inserts a region under a country, generating its slug.
func (s *LocationService) CreateRegion(countryID uint, name string, sortOrder int) (*models.Region, error) {
	var country models.Country
	if err := s.db.First(&country, countryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Country not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load country", err)
	}

	region := &models.Region{
		CountryID: country.ID,
		Name:      name,
		Slug:      utils.Slugify(name),
		IsActive:  true,
		SortOrder: sortOrder,
	}
	if err := s.db.Create(region).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "A region with this slug already exists", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create region", err)
	}
	s.invalidate()
	return region, nil
}

// CreateCity inserts a city under a region, generating its slug.
func (s *LocationService) CreateCity(regionID uint, name string, sortOrder int) (*models.City, error) {
	var region models.Region
	if err := s.db.First(&region, regionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Region not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load region", err)
	}

	city := &models.City{
		RegionID:  region.ID,
		Name:      name,
		Slug:      utils.Slugify(name),
		IsActive:  true,
		SortOrder: sortOrder,
	}
	if err := s.db.Create(city).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "A city with this slug already exists", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create city", err)
	}
	s.invalidate()
	return city, nil
}

// UpdateCity renames or reorders a city; renames regenerate the slug.
func (s *LocationService) UpdateCity(cityID uint, name *string, isActive *bool, sortOrder *int) (*models.City, error) {
	var city models.City
	if err := s.db.First(&city, cityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "City not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load city", err)
	}

	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
		updates["slug"] = utils.Slugify(*name)
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if sortOrder != nil {
		updates["sort_order"] = *sortOrder
	}
	if len(updates) == 0 {
		return &city, nil
	}

	if err := s.db.Model(&city).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "A city with this slug already exists", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update city", err)
	}
	s.invalidate()
	return &city, nil
}

// DeleteCity removes a city unless accommodations still reference it.
func (s *LocationService) DeleteCity(cityID uint) error {
	var count int64
	if err := s.db.Model(&models.Accommodation{}).Where("city_id = ?", cityID).Count(&count).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot check accommodations", err)
	}
	if count > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeConflict,
			fmt.Sprintf("City still has %d accommodations", count), nil)
	}

	res := s.db.Delete(&models.City{}, cityID)
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot delete city", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "City not found", nil)
	}
	s.invalidate()
	return nil
}

// SetCityAvailability upserts the per-city booking toggle. One row per
// city, written atomically; batch callers apply it city by city.
func (s *LocationService) SetCityAvailability(cityID uint, isAvailable bool) error {
	var city models.City
	if err := s.db.First(&city, cityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "City not found", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load city", err)
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
	}).Create(&models.LocationAvailability{
		CityID:      cityID,
		IsAvailable: isAvailable,
	}).Error
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update location availability", err)
	}
	s.invalidate()
	return nil
}

// CityBySlug resolves a city from its URL slug.
func (s *LocationService) CityBySlug(slug string) (*models.City, error) {
	var city models.City
	err := s.db.Where("slug = ?", slug).First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "City not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load city", err)
	}
	return &city, nil
}

// CityMatch is one fuzzy search hit
type CityMatch struct {
	City       models.City `json:"city"`
	Similarity float64     `json:"similarity"`
}

// SearchCities ranks active cities against a free-form query. Matching is
// diacritic-insensitive: both sides go through the same transliteration the
// slugs use, so "Djerdap", "Đerdap" and "derdap" all find the same city.
func (s *LocationService) SearchCities(query string, limit int) ([]CityMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	var cities []models.City
	if err := s.db.Where("is_active = ?", true).Find(&cities).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load cities", err)
	}
	if len(cities) == 0 {
		return nil, nil
	}

	normalized := make(map[string]models.City, len(cities))
	keys := make([]string, 0, len(cities))
	for _, city := range cities {
		key := normalizeQuery(city.Name)
		normalized[key] = city
		keys = append(keys, key)
	}

	q := normalizeQuery(query)
	cm := closestmatch.New(keys, []int{2, 3})
	candidates := cm.ClosestN(q, limit*2)

	matches := make([]CityMatch, 0, len(candidates))
	seen := make(map[uint]bool)
	for _, cand := range candidates {
		city, ok := normalized[cand]
		if !ok || seen[city.ID] {
			continue
		}
		seen[city.ID] = true
		matches = append(matches, CityMatch{
			City:       city,
			Similarity: similarity(q, cand),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// similarityOptions uses unit substitution cost so the distance never
// exceeds the longer string's length. DefaultOptions charges 2 per
// substitution, which would push similarity below zero.
var similarityOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// similarity maps levenshtein distance into [0,1]
func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), similarityOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}
