package main

import (
	"fmt"
	"log"

	"interview-reminder-backend/config"
	"interview-reminder-backend/models"
	"interview-reminder-backend/routes"
	"interview-reminder-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.ReminderLog{},
	)
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store := services.NewStore(config.DB)
	messenger := services.NewTwilioMessenger(settings.TwilioPhoneNumber)
	reminders := services.NewReminderService(
		store,
		messenger,
		settings.PollInterval,
		settings.Tolerance,
		settings.Timezone,
	)
	reminders.StartScheduler()

	r := routes.SetupRouter(reminders)
	printRoutes(r)
	r.Run(":" + settings.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
