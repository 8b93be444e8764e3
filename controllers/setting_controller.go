package controllers

import (
	"jatomogu/dto"
	"jatomogu/response"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	settings *services.SettingService
}

func NewSettingController(settings *services.SettingService) *SettingController {
	return &SettingController{settings: settings}
}

func (ctl *SettingController) List(c *gin.Context) {
	settings, err := ctl.settings.List()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, settings)
}

func (ctl *SettingController) Update(c *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	setting, err := ctl.settings.Set(req.Key, req.Value)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, setting)
}
