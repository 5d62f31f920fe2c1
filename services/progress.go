package services

import (
	"sort"
	"time"

	"github.com/siddhant1405/fitme/models"
)

// StepGoal is the fixed daily step target every user is scored against.
const StepGoal = 10000

// calorieGoalMet applies the directional calorie rule: losing weight means
// eating under maintenance, gaining or building muscle means eating over.
// Any other goal value never earns the calorie point.
func calorieGoalMet(calories float64, maintenance int, goal string) bool {
	switch goal {
	case "lose":
		return calories < float64(maintenance)
	case "gain", "muscle":
		return calories > float64(maintenance)
	default:
		return false
	}
}

// ScoreLog scores one logged day 0..3: a point each for steps, calories and
// workout. Pure and total; any numeric input is fine, including a zero
// maintenance for users who never finished onboarding.
func ScoreLog(log models.DailyLog, maintenance int, goal string) int {
	score := 0
	if log.Steps >= StepGoal {
		score++
	}
	if calorieGoalMet(log.Calories, maintenance, goal) {
		score++
	}
	if log.Workout {
		score++
	}
	return score
}

// DayScore is one scored calendar day; only days with a log appear.
type DayScore struct {
	Date  time.Time
	Score int
}

// CurrentStreak counts consecutive qualifying days walking backward from
// today. A day qualifies when its score is above zero; the walk stops at the
// first gap or non-qualifying day, and today itself must be logged for the
// streak to be non-zero. Idempotent, no side effects.
func CurrentStreak(days []DayScore, today time.Time) int {
	sorted := make([]DayScore, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	streak := 0
	cursor := DayUTC(today)

	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Score <= 0 {
			break
		}
		if !DayUTC(sorted[i].Date).Equal(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
