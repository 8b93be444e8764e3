package models

import "time"

// Setting is a mutable platform configuration row (package surcharges and
// similar). Read at request time, never cached in-process; the Redis copy
// is invalidated on write.
type Setting struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"uniqueIndex;type:varchar(64)"`
	Value     string    `json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Setting keys
const (
	SettingBonusPerNight = "bonus_package_per_night"
)
