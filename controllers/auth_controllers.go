package controllers

import (
	"jatomogu/dto"
	"jatomogu/response"
	"jatomogu/services"
	"jatomogu/validator"

	"github.com/gin-gonic/gin"
)

func RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	role, err := validator.ValidateRegister(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	user, err := services.Register(req.Name, req.Email, req.Password, req.PhoneNumber, role)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, user)
}

func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	token, user, err := services.Login(req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.AuthResponse{Token: token, User: user})
}

func AuthGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	token, user, err := services.LoginWithGoogle(req.IDToken)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto.AuthResponse{Token: token, User: user})
}

func ResendCode(c *gin.Context) {
	var req dto.ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := services.ResendCode(req.Email); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	if err := services.VerifyEmail(req.Email, req.Code); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}
