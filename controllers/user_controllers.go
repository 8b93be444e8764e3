package controllers

import (
	"jatomogu/constants"
	"jatomogu/dto"
	"jatomogu/middleware"
	"jatomogu/response"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetUsers(c *gin.Context) {
	var role *constants.Role
	if roleStr := c.Query("role"); roleStr != "" {
		parsed, err := constants.ParseRole(roleStr)
		if err != nil {
			response.ValidationError(c, "Unknown role")
			return
		}
		role = &parsed
	}

	users, err := ctl.users.List(role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, users)
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	userID, _, ok := middleware.ActingUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, err := ctl.users.GetByID(userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (ctl *UserController) ChangeUserStatus(c *gin.Context) {
	var req dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := ctl.users.ChangeStatus(req.UserID, req.Status); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctl *UserController) ChangeUserRole(c *gin.Context) {
	var req dto.ChangeUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	role, err := constants.ParseRole(req.Role)
	if err != nil {
		response.ValidationError(c, "Unknown role")
		return
	}

	if err := ctl.users.ChangeRole(req.UserID, role); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (ctl *UserController) SetGuideLanguages(c *gin.Context) {
	var req dto.SetGuideLanguagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := ctl.users.SetGuideLanguages(req.UserID, req.Languages); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
