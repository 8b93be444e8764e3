package models

import (
	"time"

	"jatomogu/constants"

	"github.com/lib/pq"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string         `gorm:"default:New User" json:"name"`
	Email         string         `gorm:"unique" json:"email"`
	Password      string         `json:"-"`
	IsVerified    bool           `gorm:"default:false" json:"isVerified"`
	Code          string         `json:"-"`
	CodeCreatedAt time.Time      `gorm:"autoCreateTime" json:"-"`
	PhoneNumber   string         `gorm:"type:varchar(20)" json:"phoneNumber"`
	Role          constants.Role `gorm:"type:varchar(16);default:CLIENT" json:"role"`
	Status        int            `gorm:"default:1" json:"status"`
	// Languages a guide can lead tours in, empty for other roles.
	Languages pq.StringArray `gorm:"type:text[]" json:"languages,omitempty"`
}
