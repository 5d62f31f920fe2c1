package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog is one user's activity for one calendar day. Date is always
// UTC midnight; the composite unique index keeps a single row per
// (user, day) no matter how many times the client re-submits.
type DailyLog struct {
	gorm.Model
	UserID   uint      `gorm:"not null;uniqueIndex:idx_user_date"`
	Date     time.Time `gorm:"not null;uniqueIndex:idx_user_date"`
	Calories float64
	Steps    int
	Workout  bool
}
