package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/siddhant1405/fitme/config"
	"github.com/siddhant1405/fitme/models"
	"github.com/siddhant1405/fitme/utils"
)

var validGoals = map[string]bool{"lose": true, "gain": true, "muscle": true}
var validGenders = map[string]bool{"male": true, "female": true, "other": true}

type OnboardingInput struct {
	DOB      string  `json:"dob" binding:"required"` // YYYY-MM-DD
	Gender   string  `json:"gender" binding:"required"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Goal     string  `json:"goal" binding:"required"`
	Activity string  `json:"activity" binding:"required"`
}

type ProfileInput struct {
	DOB       string  `json:"dob"`
	Gender    string  `json:"gender"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Goal      string  `json:"goal"`
	Activity  string  `json:"activity"`
	UserImage string  `json:"user_image"` // base64 data URL, uploaded to S3
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	dob := ""
	if !user.DOB.IsZero() {
		dob = user.DOB.Format("2006-01-02")
	}

	profile := map[string]interface{}{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"dob":        dob,
		"age":        utils.CalculateAge(user.DOB),
		"gender":     user.Gender,
		"height":     user.Height,
		"weight":     user.Weight,
		"goal":       user.Goal,
		"activity":   user.Activity,
		"user_image": user.UserImage,
		"onboarded":  user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

// CompleteOnboarding fills in the biometrics collected by the onboarding
// questionnaire and flips the Onboarded flag.
func CompleteOnboarding(userID uint, input OnboardingInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		return nil, errors.New("invalid dob, expected YYYY-MM-DD")
	}
	if !validGenders[input.Gender] {
		return nil, errors.New("gender must be male, female or other")
	}
	if !validGoals[input.Goal] {
		return nil, errors.New("goal must be lose, gain or muscle")
	}
	if !utils.ValidActivityLevel(input.Activity) {
		return nil, errors.New("unknown activity level")
	}

	user.DOB = dob
	user.Gender = input.Gender
	user.Height = input.Height
	user.Weight = input.Weight
	user.Goal = input.Goal
	user.Activity = input.Activity
	user.Onboarded = true

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile amends any subset of the biometric fields; empty or zero
// values leave the stored value alone. A new profile picture arrives as a
// base64 data URL and is uploaded to S3 before the URL is stored.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if input.DOB != "" {
		dob, err := time.Parse("2006-01-02", input.DOB)
		if err != nil {
			return nil, errors.New("invalid dob, expected YYYY-MM-DD")
		}
		user.DOB = dob
	}
	if input.Gender != "" {
		if !validGenders[input.Gender] {
			return nil, errors.New("gender must be male, female or other")
		}
		user.Gender = input.Gender
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Goal != "" {
		if !validGoals[input.Goal] {
			return nil, errors.New("goal must be lose, gain or muscle")
		}
		user.Goal = input.Goal
	}
	if input.Activity != "" {
		if !utils.ValidActivityLevel(input.Activity) {
			return nil, errors.New("unknown activity level")
		}
		user.Activity = input.Activity
	}
	if input.UserImage != "" {
		url, err := utils.UploadBase64ImageToS3(input.UserImage, fmt.Sprintf("user-%d", userID))
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.UserImage = url
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
