package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	t.Parallel()

	dob := date(2000, time.June, 15)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", date(2024, time.June, 14), 23},
		{"on birthday", date(2024, time.June, 15), 24},
		{"day after birthday", date(2024, time.June, 16), 24},
		{"end of year", date(2024, time.December, 31), 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(dob, tt.now); got != tt.want {
				t.Fatalf("AgeAt(%v, %v) = %d, want %d", dob, tt.now, got, tt.want)
			}
		})
	}
}

func TestAgeAt_MonotonicOverTime(t *testing.T) {
	t.Parallel()

	dob := date(1990, time.March, 3)
	prev := -1
	for now := date(2020, time.January, 1); now.Year() < 2026; now = now.AddDate(0, 1, 0) {
		got := AgeAt(dob, now)
		if got < prev {
			t.Fatalf("age decreased over time: %d then %d at %v", prev, got, now)
		}
		prev = got
	}
}

func TestAgeAt_ZeroDOB(t *testing.T) {
	t.Parallel()

	if got := AgeAt(time.Time{}, date(2024, time.June, 15)); got != 0 {
		t.Fatalf("zero dob should yield age 0, got %d", got)
	}
}

func TestMaintenanceCaloriesAt(t *testing.T) {
	t.Parallel()

	now := date(2025, time.January, 10)
	dob := date(1999, time.June, 15) // age 25 at now

	// BMR = 10*70 + 6.25*175 - 5*25 + 5 = 1673.75; round(1673.75 * 1.55) = 2594
	got := MaintenanceCaloriesAt("male", dob, 70, 175, "moderate", now)
	if got != 2594 {
		t.Fatalf("male maintenance = %d, want 2594", got)
	}

	// non-male branch: BMR = 1673.75 - 166 = 1507.75; round(1507.75 * 1.55) = 2337
	got = MaintenanceCaloriesAt("female", dob, 70, 175, "moderate", now)
	if got != 2337 {
		t.Fatalf("female maintenance = %d, want 2337", got)
	}

	// any gender other than male uses the -161 branch
	if a, b := MaintenanceCaloriesAt("other", dob, 70, 175, "moderate", now),
		MaintenanceCaloriesAt("female", dob, 70, 175, "moderate", now); a != b {
		t.Fatalf("non-male branches disagree: %d vs %d", a, b)
	}
}

func TestMaintenanceCaloriesAt_MissingBiometrics(t *testing.T) {
	t.Parallel()

	// pre-onboarding user: everything zero; must return a defined value
	got := MaintenanceCaloriesAt("", time.Time{}, 0, 0, "", date(2025, time.January, 10))
	if got != -193 { // round(-161 * 1.2)
		t.Fatalf("degenerate maintenance = %d, want -193", got)
	}
}

func TestActivityMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  float64
	}{
		{"sedentary", 1.2},
		{"light", 1.375},
		{"moderate", 1.55},
		{"very", 1.725},
		{"super", 1.9},
		{"", 1.2},
		{"couch", 1.2},
	}
	for _, tt := range tests {
		if got := ActivityMultiplier(tt.level); got != tt.want {
			t.Fatalf("ActivityMultiplier(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}

	if ValidActivityLevel("couch") {
		t.Fatal("couch should not be a valid activity level")
	}
	if !ValidActivityLevel("very") {
		t.Fatal("very should be a valid activity level")
	}
}
