package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/siddhant1405/fitme/models"
	"github.com/siddhant1405/fitme/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// LogEntry is a DailyLog shaped for transport: the date crosses the boundary
// as a plain YYYY-MM-DD string.
type LogEntry struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Steps    int     `json:"steps"`
	Workout  bool    `json:"workout"`
}

// FormatLog re-expresses a stored log for transport.
func FormatLog(log models.DailyLog) LogEntry {
	return LogEntry{
		Date:     log.Date.UTC().Format("2006-01-02"),
		Calories: log.Calories,
		Steps:    log.Steps,
		Workout:  log.Workout,
	}
}

// ScoreEntry is one heatmap cell: a day and its 0..3 goal score.
type ScoreEntry struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

type CriterionSummary struct {
	Met     int     `json:"met"`
	Percent float64 `json:"percent"`
}

type DashboardSummary struct {
	DaysLogged int              `json:"days_logged"`
	Steps      CriterionSummary `json:"steps"`
	Calories   CriterionSummary `json:"calories"`
	Workout    CriterionSummary `json:"workout"`
}

type DashboardResponse struct {
	Maintenance int              `json:"maintenance"`
	Logs        []LogEntry       `json:"logs"`
	Scores      []ScoreEntry     `json:"scores"`
	Streak      int              `json:"streak"`
	Summary     DashboardSummary `json:"summary"`
}

type DashboardService struct {
	db   *gorm.DB
	logs *DailyLogService
}

func NewDashboardService(db *gorm.DB, logs *DailyLogService) *DashboardService {
	return &DashboardService{db: db, logs: logs}
}

// GetDashboard assembles everything the dashboard page renders: maintenance
// calories from the stored biometrics, the current calendar year of logs,
// per-day scores, the current streak and per-criterion totals.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*DashboardResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	logs, err := s.logs.LogsInRange(ctx, userID, jan1, dec31)
	if err != nil {
		return nil, err
	}

	return assembleDashboard(&user, logs, now), nil
}

// assembleDashboard is the pure aggregation step; it never divides by zero
// and tolerates zero logged days and zero/negative maintenance values.
func assembleDashboard(user *models.User, logs []models.DailyLog, now time.Time) *DashboardResponse {
	maintenance := utils.MaintenanceCaloriesAt(user.Gender, user.DOB, user.Weight, user.Height, user.Activity, now)

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})

	entries := make([]LogEntry, 0, len(logs))
	scores := make([]ScoreEntry, 0, len(logs))
	days := make([]DayScore, 0, len(logs))

	var stepsMet, caloriesMet, workoutMet int
	for _, log := range logs {
		entries = append(entries, FormatLog(log))

		score := ScoreLog(log, maintenance, user.Goal)
		scores = append(scores, ScoreEntry{Date: log.Date.UTC().Format("2006-01-02"), Score: score})
		days = append(days, DayScore{Date: log.Date, Score: score})

		if log.Steps >= StepGoal {
			stepsMet++
		}
		if calorieGoalMet(log.Calories, maintenance, user.Goal) {
			caloriesMet++
		}
		if log.Workout {
			workoutMet++
		}
	}

	total := len(logs)
	return &DashboardResponse{
		Maintenance: maintenance,
		Logs:        entries,
		Scores:      scores,
		Streak:      CurrentStreak(days, now),
		Summary: DashboardSummary{
			DaysLogged: total,
			Steps:      CriterionSummary{Met: stepsMet, Percent: pct(stepsMet, total)},
			Calories:   CriterionSummary{Met: caloriesMet, Percent: pct(caloriesMet, total)},
			Workout:    CriterionSummary{Met: workoutMet, Percent: pct(workoutMet, total)},
		},
	}
}

// pct reports met/total as 0..100, with 0/0 mapping to 0 instead of NaN.
func pct(met, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(met) / float64(total) * 100.0)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
