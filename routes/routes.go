package routes

import (
	"net/http"

	"github.com/OtaoDavis/Tfit-app/controllers"
	"github.com/OtaoDavis/Tfit-app/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Tracker *controllers.TrackerController
	Meals   *controllers.MealController
	Habits  *controllers.HabitController
	Stress  *controllers.StressController
	Chat    *controllers.ChatController
	Devices *controllers.DeviceController
}

// onlyKind guards routes that exist for a single tracker kind.
func onlyKind(kind string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("kind") != kind {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown route for tracker kind"})
			return
		}
		h(c)
	}
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
		user.POST("/mfa/toggle", controllers.ToggleMFA)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.POST("/devices", c.Devices.Register)
		user.POST("/images", controllers.UploadImage)
	}

	// Daily trackers. Every path keys on :kind so the water, sleep,
	// steps and meals ledgers share one surface.
	trackers := r.Group("/trackers")
	trackers.Use(middlewares.AuthMiddleware())
	{
		trackers.GET("/:kind", c.Tracker.GetTracker)
		trackers.PUT("/:kind/goal", c.Tracker.SetGoal)
		trackers.GET("/:kind/history", c.Tracker.GetHistory)

		trackers.POST("/:kind/entries", func(gc *gin.Context) {
			switch gc.Param("kind") {
			case "water":
				c.Tracker.AddWater(gc)
			case "sleep":
				c.Tracker.LogSleep(gc)
			case "meals":
				c.Meals.LogMeal(gc)
			default:
				gc.JSON(http.StatusNotFound, gin.H{"error": "unknown route for tracker kind"})
			}
		})

		trackers.GET("/:kind/slots", onlyKind("meals", c.Meals.ListSlots))
		trackers.DELETE("/:kind/entries/:date/:slot", onlyKind("meals", c.Meals.DeleteMeal))

		trackers.POST("/:kind/readings", onlyKind("steps", c.Tracker.RecordSteps))
		trackers.POST("/:kind/session/end", onlyKind("steps", c.Tracker.EndStepSession))
		trackers.PUT("/:kind/sensor", onlyKind("steps", c.Tracker.SetSensorAvailability))
	}

	// Habit journal
	habits := r.Group("/habits")
	habits.Use(middlewares.AuthMiddleware())
	{
		habits.GET("", c.Habits.GetHabits)
		habits.GET("/day/:date", c.Habits.GetDay)
		habits.POST("/toggle", c.Habits.Toggle)
		habits.GET("/history", c.Habits.History)
	}

	// Stress check-ins
	stress := r.Group("/stress")
	stress.Use(middlewares.AuthMiddleware())
	{
		stress.POST("/logs", c.Stress.Log)
		stress.GET("/logs", c.Stress.List)
	}

	// Community chat
	community := r.Group("/community")
	community.Use(middlewares.AuthMiddleware())
	{
		community.GET("/chat/ws", c.Chat.Socket)
		community.POST("/chat/messages", c.Chat.Post)
		community.GET("/chat/messages", c.Chat.History)
	}

	return r
}
