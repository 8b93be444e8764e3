package services

import (
	"context"
	"time"

	apperrors "jatomogu/errors"
	"jatomogu/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	settingsCacheKey = "settings:all"
	settingsCacheTTL = 10 * time.Minute
)

// SettingService stores platform-wide configuration rows. List serves the
// public settings endpoint from a Redis copy that every write invalidates.
type SettingService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewSettingService(db *gorm.DB, rdb *redis.Client) *SettingService {
	return &SettingService{db: db, rdb: rdb}
}

// List returns all settings, cached in Redis
func (s *SettingService) List() ([]models.Setting, error) {
	ctx := context.Background()

	var settings []models.Setting
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, settingsCacheKey, &settings); err == nil && len(settings) > 0 {
			return settings, nil
		}
	}

	if err := s.db.Order("key").Find(&settings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot load settings", err)
	}

	if s.rdb != nil {
		// cache failures never fail the read
		_ = SetToRedis(ctx, s.rdb, settingsCacheKey, settings, settingsCacheTTL)
	}
	return settings, nil
}

// Set upserts one setting and invalidates the cached copy
func (s *SettingService) Set(key, value string) (*models.Setting, error) {
	if key == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Setting key is required", nil)
	}

	setting := &models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Cannot save setting", err)
	}

	if s.rdb != nil {
		_ = DeleteFromRedis(context.Background(), s.rdb, settingsCacheKey)
	}
	return setting, nil
}
