package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"jatomogu/config"
	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint           `json:"userid"`
	Role   constants.Role `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(os.Getenv("JWT_SECRET"))

// GenerateToken issues a signed access token for a user
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func generateVerificationCode() (string, error) {
	code := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

func sendVerificationEmail(email, code string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	msg := []byte("To: " + email + "\r\n" +
		"Subject: Verify your account\r\n" +
		"\r\n" +
		"Your verification code is: " + code + "\r\n")

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{email}, msg)
}

// Register creates an unverified user and mails the verification code.
func Register(name, email, password, phone string, role constants.Role) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Email and password are required", nil)
	}
	if len(password) < 6 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeConflict,
			fmt.Sprintf("Email %s is already registered", email), apperrors.ErrUserAlreadyExists)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Cannot hash password", err)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Cannot generate verification code", err)
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: phone,
		Role:        role,
		Status:      constants.UserStatusActive,
		Code:        code,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create user", err)
	}

	go func() {
		if err := sendVerificationEmail(user.Email, code); err != nil {
			fmt.Printf("verification mail to %s failed: %v\n", user.Email, err)
		}
	}()

	return user, nil
}

// ResendCode issues a fresh verification code for an unverified account.
func ResendCode(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load user", err)
	}
	if user.IsVerified {
		return apperrors.NewAppError(apperrors.ErrCodeConflict, "Account is already verified", nil)
	}

	code, err := generateVerificationCode()
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInternal, "Cannot generate verification code", err)
	}
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"code":            code,
		"code_created_at": time.Now(),
	}).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot store verification code", err)
	}

	go func() {
		if err := sendVerificationEmail(user.Email, code); err != nil {
			fmt.Printf("verification mail to %s failed: %v\n", user.Email, err)
		}
	}()
	return nil
}

// Login checks credentials and issues an access token.
func Login(email, password string) (string, *models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Wrong email or password", err)
		}
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Wrong email or password", err)
	}
	if user.Status != constants.UserStatusActive {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "Account is deactivated", nil)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60)
	if err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Cannot issue token", err)
	}
	return token, &user, nil
}

// LoginWithGoogle validates a Google id-token, creating the client account
// on first login.
func LoginWithGoogle(idToken string) (string, *models.User, error) {
	payload, err := idtoken.Validate(config.Ctx, idToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Invalid Google token", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "Google token has no email", nil)
	}

	var user models.User
	err = config.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:       name,
			Email:      email,
			Role:       constants.RoleClient,
			Status:     constants.UserStatusActive,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			return "", nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot create user", err)
		}
	} else if err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load user", err)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 3*24*60)
	if err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Cannot issue token", err)
	}
	return token, &user, nil
}

// VerifyEmail matches the mailed code against the stored one. Codes older
// than 15 minutes are rejected.
func VerifyEmail(email, code string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", err)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load user", err)
	}

	if user.Code != code {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Wrong verification code", nil)
	}
	if time.Since(user.CodeCreatedAt) > 15*time.Minute {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Verification code expired", nil)
	}

	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"is_verified": true,
		"code":        "",
	}).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot verify user", err)
	}
	return nil
}
