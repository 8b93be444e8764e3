package controllers

import (
	"strconv"

	"jatomogu/constants"
	"jatomogu/dto"
	"jatomogu/middleware"
	"jatomogu/models"
	"jatomogu/response"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
)

type AccommodationController struct {
	accommodations *services.AccommodationService
	locations      *services.LocationService
}

func NewAccommodationController(accommodations *services.AccommodationService, locations *services.LocationService) *AccommodationController {
	return &AccommodationController{accommodations: accommodations, locations: locations}
}

func (ctl *AccommodationController) Create(c *gin.Context) {
	userID, _, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	acc := &models.Accommodation{
		CityID:           req.CityID,
		Name:             req.Name,
		Address:          req.Address,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Beds:             req.Beds,
		Rooms:            req.Rooms,
		Amenities:        req.Amenities,
	}
	created, err := ctl.accommodations.Create(userID, acc)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, created)
}

func (ctl *AccommodationController) GetDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ValidationError(c, "Invalid accommodation id")
		return
	}

	acc, err := ctl.accommodations.GetByID(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, acc)
}

// ListForCity serves public browsing by city slug
func (ctl *AccommodationController) ListForCity(c *gin.Context) {
	slug := c.Query("city")
	if slug == "" {
		response.ValidationError(c, "Missing city slug")
		return
	}

	city, err := ctl.locations.CityBySlug(slug)
	if err != nil {
		response.FromError(c, err)
		return
	}

	accs, err := ctl.accommodations.ListForCity(city.ID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, accs)
}

func (ctl *AccommodationController) ListMine(c *gin.Context) {
	userID, _, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	accs, err := ctl.accommodations.ListForOwner(userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, accs)
}

func (ctl *AccommodationController) Update(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.ShortDescription != nil {
		fields["short_description"] = *req.ShortDescription
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Beds != nil {
		fields["beds"] = *req.Beds
	}
	if req.Rooms != nil {
		fields["rooms"] = *req.Rooms
	}
	if req.Amenities != nil {
		fields["amenities"] = req.Amenities
	}

	acc, err := ctl.accommodations.Update(req.AccommodationID, userID, role, fields)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, acc)
}

func (ctl *AccommodationController) ChangeStatus(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.ChangeAccommodationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	status, err := constants.ParseAccommodationStatus(req.Status)
	if err != nil {
		response.ValidationError(c, "Unknown accommodation status")
		return
	}

	acc, err := ctl.accommodations.ChangeStatus(req.AccommodationID, userID, role, status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, acc)
}

func (ctl *AccommodationController) UpsertSeasonalPrice(c *gin.Context) {
	userID, role, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.UpsertSeasonalPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	season, err := constants.ParseSeason(req.Season)
	if err != nil {
		response.ValidationError(c, "Unknown season")
		return
	}
	duration, err := constants.ParseDurationBucket(req.Duration)
	if err != nil {
		response.ValidationError(c, "Unknown duration bucket")
		return
	}

	price, err := ctl.accommodations.UpsertSeasonalPrice(req.AccommodationID, userID, role, season, duration, req.PricePerNight)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, price)
}
