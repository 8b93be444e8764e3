package services

import (
	"errors"

	"jatomogu/constants"
	apperrors "jatomogu/errors"
	"jatomogu/models"
	"jatomogu/services/logger"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserService handles admin user management.
type UserService struct {
	db  *gorm.DB
	log logger.Logger
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{db: opts.DB, log: l}
}

// List returns users, optionally filtered by role
func (s *UserService) List(role *constants.Role) ([]models.User, error) {
	var users []models.User
	tx := s.db.Order("created_at DESC")
	if role != nil {
		tx = tx.Where("role = ?", *role)
	}
	if err := tx.Find(&users).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load users", err)
	}
	return users, nil
}

// GetByID loads a single user
func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load user", err)
	}
	return &user, nil
}

// ChangeStatus toggles a user between active and inactive
func (s *UserService) ChangeStatus(userID uint, status int) error {
	if status != constants.UserStatusActive && status != constants.UserStatusInactive {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Unknown user status", nil)
	}
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("status", status)
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
	}
	s.log.Info("user %d status changed to %d", userID, status)
	return nil
}

// ChangeRole assigns a new role to a user
func (s *UserService) ChangeRole(userID uint, role constants.Role) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeNotFound, "User not found", nil)
	}
	return nil
}

// SetGuideLanguages records the languages a guide works in
func (s *UserService) SetGuideLanguages(userID uint, languages []string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	if user.Role != constants.RoleGuide {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "User is not a guide", nil)
	}
	if err := s.db.Model(user).Update("languages", pq.StringArray(languages)).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot update guide languages", err)
	}
	return nil
}
