package main

import (
	"fmt"
	"log"
	"os"

	"homeserve-backend/config"
	"homeserve-backend/models"
	"homeserve-backend/routes"
	"homeserve-backend/services"

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
		&models.Customer{},
		&models.Otp{},
		&models.Meal{},
		&models.AdditionalService{},
		&models.CleaningPlan{},
		&models.AdditionalCleaning{},
		&models.Booking{},
		&models.Refund{},
	)
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sweep := services.NewSweepService(config.DB)
	sweep.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
