package controllers

import (
	"strconv"

	"jatomogu/dto"
	"jatomogu/response"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	locations *services.LocationService
}

func NewLocationController(locations *services.LocationService) *LocationController {
	return &LocationController{locations: locations}
}

// Tree serves the public destination hierarchy
func (ctl *LocationController) Tree(c *gin.Context) {
	countries, err := ctl.locations.Tree(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, countries)
}

// Search ranks cities against a free-form, diacritic-insensitive query
func (ctl *LocationController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.ValidationError(c, "Missing query")
		return
	}

	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	matches, err := ctl.locations.SearchCities(query, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, matches)
}

func (ctl *LocationController) CreateCountry(c *gin.Context) {
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	country, err := ctl.locations.CreateCountry(req.Name, req.SortOrder)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, country)
}

func (ctl *LocationController) CreateRegion(c *gin.Context) {
	var req dto.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	region, err := ctl.locations.CreateRegion(req.CountryID, req.Name, req.SortOrder)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, region)
}

func (ctl *LocationController) CreateCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	city, err := ctl.locations.CreateCity(req.RegionID, req.Name, req.SortOrder)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, city)
}

func (ctl *LocationController) UpdateCity(c *gin.Context) {
	var req dto.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	city, err := ctl.locations.UpdateCity(req.CityID, req.Name, req.IsActive, req.SortOrder)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, city)
}

func (ctl *LocationController) DeleteCity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ValidationError(c, "Invalid city id")
		return
	}

	if err := ctl.locations.DeleteCity(uint(id)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

// SetAvailability toggles per-city bookability
func (ctl *LocationController) SetAvailability(c *gin.Context) {
	var req dto.UpdateLocationAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := ctl.locations.SetCityAvailability(req.CityID, *req.IsAvailable); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
