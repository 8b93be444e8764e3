package response

import (
	"net/http"

	apperrors "jatomogu/errors"
	"jatomogu/utils"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every route answers with
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination block for list endpoints
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success returns a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "OK",
		Data: data,
	})
}

// Created returns a successful creation response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// SuccessWithPagination returns a successful paginated response
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "OK",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError returns an opaque 500; details stay in the server log
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized means no usable session was presented
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Authentication required",
	})
}

// Forbidden means the session exists but role or ownership does not match
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Access denied",
	})
}

// NotFound reports a missing entity
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// ValidationError reports malformed input
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest returns a generic 400
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict reports a state-machine or uniqueness violation
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// FromError maps an AppError taxonomy code to its HTTP status.
// Anything that is not an AppError is treated as internal. Internal
// errors keep their full context in the server log; the client only
// sees the opaque 500.
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		utils.LogError("%s %s: internal error: %v", c.Request.Method, c.Request.URL.Path, err)
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken, apperrors.ErrCodeMissingToken:
		Unauthorized(c)
	case apperrors.ErrCodeForbidden, apperrors.ErrCodeInvalidRole:
		Forbidden(c)
	case apperrors.ErrCodeNotFound:
		NotFound(c)
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidEmail, apperrors.ErrCodeInvalidPhone, apperrors.ErrCodeInvalidStatus:
		ValidationError(c, appErr.Message)
	case apperrors.ErrCodeConflict, apperrors.ErrCodeRateNotConfigured, apperrors.ErrCodeAlreadyReviewed,
		apperrors.ErrCodeNotEligible, apperrors.ErrCodeNotBookable, apperrors.ErrCodeDBDuplicate:
		Conflict(c, appErr.Message)
	default:
		utils.LogError("%s %s: internal error: %v", c.Request.Method, c.Request.URL.Path, appErr)
		ServerError(c)
	}
}
