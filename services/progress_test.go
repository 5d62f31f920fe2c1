package services

import (
	"testing"
	"time"

	"github.com/siddhant1405/fitme/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		log         models.DailyLog
		maintenance int
		goal        string
		want        int
	}{
		{
			name:        "all three criteria met while losing",
			log:         models.DailyLog{Steps: 12000, Calories: 1800, Workout: true},
			maintenance: 2200,
			goal:        "lose",
			want:        3,
		},
		{
			name:        "none met while losing",
			log:         models.DailyLog{Steps: 5000, Calories: 2500, Workout: false},
			maintenance: 2200,
			goal:        "lose",
			want:        0,
		},
		{
			name:        "gaining wants a surplus",
			log:         models.DailyLog{Steps: 2000, Calories: 2500, Workout: false},
			maintenance: 2200,
			goal:        "gain",
			want:        1,
		},
		{
			name:        "muscle counts like gain",
			log:         models.DailyLog{Steps: 2000, Calories: 2500, Workout: true},
			maintenance: 2200,
			goal:        "muscle",
			want:        2,
		},
		{
			name:        "exact maintenance earns no calorie point either way",
			log:         models.DailyLog{Steps: 0, Calories: 2200, Workout: false},
			maintenance: 2200,
			goal:        "lose",
			want:        0,
		},
		{
			name:        "unknown goal never earns the calorie point",
			log:         models.DailyLog{Steps: 10000, Calories: 100, Workout: true},
			maintenance: 2200,
			goal:        "maintain",
			want:        2,
		},
		{
			name:        "zero maintenance does not panic",
			log:         models.DailyLog{Steps: 10000, Calories: 500, Workout: false},
			maintenance: 0,
			goal:        "gain",
			want:        2,
		},
		{
			name:        "step goal boundary is inclusive",
			log:         models.DailyLog{Steps: StepGoal, Calories: 0, Workout: false},
			maintenance: 2000,
			goal:        "lose",
			want:        2, // steps point plus calorie point (0 < 2000)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLog(tt.log, tt.maintenance, tt.goal))
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, time.March, 20, 14, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return DayUTC(today).AddDate(0, 0, offset)
	}

	tests := []struct {
		name string
		days []DayScore
		want int
	}{
		{
			name: "no logs",
			days: nil,
			want: 0,
		},
		{
			name: "three consecutive qualifying days ending today",
			days: []DayScore{
				{Date: day(-2), Score: 1},
				{Date: day(-1), Score: 3},
				{Date: day(0), Score: 2},
			},
			want: 3,
		},
		{
			name: "gap before today limits streak to one",
			days: []DayScore{
				{Date: day(-3), Score: 3},
				{Date: day(0), Score: 1},
			},
			want: 1,
		},
		{
			name: "yesterday only, today missing",
			days: []DayScore{
				{Date: day(-1), Score: 3},
			},
			want: 0,
		},
		{
			name: "today logged but score zero",
			days: []DayScore{
				{Date: day(-1), Score: 3},
				{Date: day(0), Score: 0},
			},
			want: 0,
		},
		{
			name: "zero-score day breaks the walk",
			days: []DayScore{
				{Date: day(-3), Score: 2},
				{Date: day(-2), Score: 0},
				{Date: day(-1), Score: 1},
				{Date: day(0), Score: 1},
			},
			want: 2,
		},
		{
			name: "input order does not matter",
			days: []DayScore{
				{Date: day(0), Score: 1},
				{Date: day(-2), Score: 1},
				{Date: day(-1), Score: 1},
			},
			want: 3,
		},
		{
			name: "score above zero qualifies even when not all criteria met",
			days: []DayScore{
				{Date: day(-1), Score: 1},
				{Date: day(0), Score: 1},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(tt.days, today)
			assert.Equal(t, tt.want, got)

			// idempotent: same input, same answer, input untouched
			assert.Equal(t, got, CurrentStreak(tt.days, today))
		})
	}
}

func TestDayUTC(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	// 01:30 IST on March 21 is still March 20 in UTC
	local := time.Date(2025, time.March, 21, 1, 30, 0, 0, ist)

	got := DayUTC(local)
	want := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "DayUTC(%v) = %v, want %v", local, got, want)

	// idempotent on already-canonical values
	assert.True(t, DayUTC(got).Equal(got))
}
