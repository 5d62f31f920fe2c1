package controllers

import (
	"errors"
	"net/http"

	"github.com/siddhant1405/fitme/services"

	"github.com/gin-gonic/gin"
)

func GetMe(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetUserProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func CompleteOnboarding(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.CompleteOnboarding(userID, input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "onboarding complete",
		"user": gin.H{
			"id":        user.ID,
			"goal":      user.Goal,
			"activity":  user.Activity,
			"onboarded": user.Onboarded,
		},
	})
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(userID, input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"gender":     user.Gender,
			"height":     user.Height,
			"weight":     user.Weight,
			"goal":       user.Goal,
			"activity":   user.Activity,
			"user_image": user.UserImage,
		},
	})
}
