package middleware

import (
	"strings"

	"jatomogu/constants"
	"jatomogu/response"
	"jatomogu/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the bearer token and, when roles are given,
// gates the route on them.
func AuthMiddleware(roles ...constants.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// ActingUser pulls the authenticated identity out of the gin context
func ActingUser(c *gin.Context) (uint, constants.Role, bool) {
	id, okID := c.Get("userID")
	role, okRole := c.Get("userRole")
	if !okID || !okRole {
		return 0, "", false
	}
	return id.(uint), role.(constants.Role), true
}
