package routes

import (
	"interview-reminder-backend/config"
	"interview-reminder-backend/controllers"
	"interview-reminder-backend/services"
	"interview-reminder-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminders *services.ReminderService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Messaging provider callbacks; authenticated by the provider, not JWT
	webhookController := controllers.WebhookController{Reminders: reminders}
	webhook := r.Group("/webhook")
	{
		webhook.POST("/contact", webhookController.HandleContact)
		webhook.POST("/response", webhookController.HandleResponse)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.GET("/:id/logs", controllers.GetAppointmentLogs)
		}
	}

	return r
}
