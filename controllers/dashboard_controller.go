package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/siddhant1405/fitme/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Logs *services.DailyLogService
	Dash *services.DashboardService
	RT   *services.RealtimeHub
}

func NewDashboardController(logs *services.DailyLogService, dash *services.DashboardService, rt *services.RealtimeHub) *DashboardController {
	return &DashboardController{Logs: logs, Dash: dash, RT: rt}
}

type DailyLogInput struct {
	Date     string   `json:"date" binding:"required"`
	Calories *float64 `json:"calories" binding:"required,gte=0"`
	Steps    *int     `json:"steps" binding:"required,gte=0"`
	Workout  bool     `json:"workout"`
}

// UpsertLog stores or overwrites the caller's log for one calendar day and
// echoes the normalized record.
func (h *DashboardController) UpsertLog(c *gin.Context) {
	userID := c.GetUint("userID")

	var input DailyLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	stored, err := h.Logs.Upsert(c.Request.Context(), userID, date, *input.Calories, *input.Steps, input.Workout)
	if err != nil {
		if errors.Is(err, services.ErrLogConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("daily log upsert failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	entry := services.FormatLog(*stored)

	if h.RT != nil {
		h.RT.Broadcast(userID, gin.H{"kind": "log.updated", "log": entry})
	}

	c.JSON(http.StatusOK, gin.H{"log": entry})
}

// GetDashboard returns the aggregated payload for the current calendar year.
func (h *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	out, err := h.Dash.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("dashboard aggregation failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, out)
}
