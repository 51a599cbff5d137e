package routes

import (
	"homeserve-backend/config"
	"homeserve-backend/controllers"
	"homeserve-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://app.homeserve.digital",
			"http://localhost:3000",
		},
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

	otp := r.Group("/otp")
	{
		otp.POST("/send", controllers.SendOtp)
		otp.POST("/verify", controllers.VerifyOtp)
	}

	// Quote endpoints are public: customers browse prices before signing in
	r.GET("/cooking", controllers.GetCookingPackages)
	r.GET("/cleaning", controllers.GetCleaningPackages)
	r.GET("/calculate_total", controllers.CalculateCookingTotal)
	r.GET("/calculate-cleaning-total", controllers.CalculateCleaningTotal)

	bookings := r.Group("/bookings")
	bookings.Use(utils.AuthMiddleware())
	{
		bookings.POST("/cooking", controllers.BookCooking)
		bookings.POST("/cleaning", controllers.BookCleaning)
		bookings.GET("", controllers.GetBookings)
	}

	cancellations := r.Group("/cancellations")
	cancellations.Use(utils.AuthMiddleware())
	{
		cancellations.POST("/:id", controllers.CancelBooking)
		cancellations.GET("/refunds/:cid", controllers.GetCustomerRefunds)
	}

	return r
}
