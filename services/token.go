package services

import (
	"encoding/json"
	"strings"

	"jatomogu/constants"
	apperrors "jatomogu/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken extracts the user id and role from a bearer token
func GetUserIDFromToken(tokenString string) (uint, constants.Role, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Cannot decode token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Cannot parse token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No user info in token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No user id in token", nil)
	}

	roleStr, okRole := userInfo["role"].(string)
	if !okRole {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "No role in token", nil)
	}

	role, err := constants.ParseRole(roleStr)
	if err != nil {
		return 0, "", apperrors.NewAppError(apperrors.ErrCodeInvalidRole, "Unknown role in token", err)
	}

	return uint(userID), role, nil
}
