package services

import (
	"context"
	"errors"
	"time"

	"github.com/siddhant1405/fitme/models"

	"gorm.io/gorm"
)

// ErrLogConflict is returned when the (user, date) uniqueness constraint is
// still violated after the single retry.
var ErrLogConflict = errors.New("daily log conflict, please retry")

// DayUTC canonicalizes a timestamp to UTC midnight. Every stored date and
// every date comparison in the service goes through this, so client timezones
// can never produce two rows for the same calendar day.
func DayUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

type DailyLogService struct {
	db *gorm.DB
}

func NewDailyLogService(db *gorm.DB) *DailyLogService {
	return &DailyLogService{db: db}
}

// Upsert writes the one log row for (userID, date), overwriting all mutable
// fields if the row already exists. Atomicity comes from the composite unique
// index: if a concurrent insert wins the race our own insert fails with a
// duplicate key, and the second pass finds and updates the winner's row.
func (s *DailyLogService) Upsert(ctx context.Context, userID uint, date time.Time, calories float64, steps int, workout bool) (*models.DailyLog, error) {
	day := DayUTC(date)

	for attempt := 0; attempt < 2; attempt++ {
		var log models.DailyLog
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND date = ?", userID, day).
			First(&log).Error

		if err == nil {
			updates := map[string]interface{}{
				"calories": calories,
				"steps":    steps,
				"workout":  workout,
			}
			if err := s.db.WithContext(ctx).Model(&log).Updates(updates).Error; err != nil {
				return nil, err
			}
			log.Calories = calories
			log.Steps = steps
			log.Workout = workout
			return &log, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		log = models.DailyLog{
			UserID:   userID,
			Date:     day,
			Calories: calories,
			Steps:    steps,
			Workout:  workout,
		}
		err = s.db.WithContext(ctx).Create(&log).Error
		if err == nil {
			return &log, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// lost the insert race; loop once more and update the existing row
	}

	return nil, ErrLogConflict
}

// LogsInRange fetches all logs for the user whose day falls in [from, to].
// No ordering is guaranteed; callers sort if they care.
func (s *DailyLogService) LogsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, DayUTC(from), DayUTC(to)).
		Find(&logs).Error
	return logs, err
}
