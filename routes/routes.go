package routes

import (
	"github.com/siddhant1405/fitme/config"
	"github.com/siddhant1405/fitme/controllers"
	"github.com/siddhant1405/fitme/middlewares"
	"github.com/siddhant1405/fitme/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	logSvc := services.NewDailyLogService(config.DB)
	dashSvc := services.NewDashboardService(config.DB, logSvc)

	dashCtrl := controllers.NewDashboardController(logSvc, dashSvc, hub)
	rtCtrl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/me", controllers.GetMe)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.PUT("/profile", controllers.UpdateProfile)

		user.POST("/log", dashCtrl.UpsertLog)
		user.GET("/dashboard", dashCtrl.GetDashboard)
		user.GET("/realtime", rtCtrl.EventsWS)
	}

	return r
}
