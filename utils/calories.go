package utils

import (
	"math"
	"time"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid activity levels; also used for input
// validation at onboarding.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"super":     1.9,
}

// ActivityMultiplier returns the multiplier for a level, falling back to
// sedentary for unknown or empty values.
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return 1.2
}

// ValidActivityLevel reports whether level is one of the known levels.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// AgeAt returns whole years between dob and now, subtracting one when the
// birthday has not yet occurred in now's year. A zero dob yields 0.
func AgeAt(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}
	age := now.Year() - dob.Year()
	if now.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func CalculateAge(dob time.Time) int {
	return AgeAt(dob, time.Now())
}

// MaintenanceCaloriesAt estimates daily maintenance calories via
// Mifflin-St Jeor BMR times the activity multiplier. Only "male" selects the
// +5 constant; every other gender value uses the -161 branch. Zero or missing
// biometrics still produce a defined (possibly low or negative) number, so
// pre-onboarding users never crash the dashboard.
func MaintenanceCaloriesAt(gender string, dob time.Time, weightKg, heightCm float64, activity string, now time.Time) int {
	age := AgeAt(dob, now)
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr * ActivityMultiplier(activity)))
}

func MaintenanceCalories(gender string, dob time.Time, weightKg, heightCm float64, activity string) int {
	return MaintenanceCaloriesAt(gender, dob, weightKg, heightCm, activity, time.Now())
}
