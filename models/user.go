package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`

	// Biometrics, empty until onboarding completes.
	Gender   string // male | female | other
	DOB      time.Time
	Height   float64 // cm
	Weight   float64 // kg
	Goal     string  // lose | gain | muscle
	Activity string  // sedentary | light | moderate | very | super

	UserImage string `gorm:"default:''"` // public URL of the profile picture
	Onboarded bool
}
