// controllers/booking.go
package controllers

import (
	"net/http"

	"homeserve-backend/config"
	"homeserve-backend/models"
	"homeserve-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateCookingBookingInput defines the expected JSON for booking a cook
type CreateCookingBookingInput struct {
	DietaryPreference       string          `json:"dietaryPreference" binding:"required"`
	NoOfPeople              int             `json:"noOfPeople" binding:"required,min=1,max=7"`
	MealsPerDay             string          `json:"mealsPerDay" binding:"required"`
	ServicePurpose          string          `json:"servicePurpose" binding:"required"`
	KitchenPlatformCleaning bool            `json:"kitchenPlatformCleaning"`
	StartDate               string          `json:"startDate" binding:"required"`
	EndDate                 string          `json:"endDate" binding:"required"`
	StartTime               string          `json:"startTime"`
	EndTime                 string          `json:"endTime"`
	WorkerID1               *uint           `json:"workerId1"`
	WorkerID2               *uint           `json:"workerId2"`
	PackageID               string          `json:"packageId" binding:"required"`
	BasicPrice              decimal.Decimal `json:"basicPrice"`
	TotalPrice              decimal.Decimal `json:"totalPrice" binding:"required"`
	Frequency               int             `json:"frequency" binding:"required,oneof=8 30"`
	AddressID               *uint           `json:"addressId"`
}

// CreateCleaningBookingInput defines the expected JSON for booking a cleaner
type CreateCleaningBookingInput struct {
	NoOfFloors    int             `json:"noOfFloors" binding:"required,min=1,max=10"`
	NoOfBathrooms int             `json:"noOfBathrooms" binding:"required,min=1,max=5"`
	BHK           int             `json:"bhk" binding:"required,min=1,max=5"`
	Plan          string          `json:"plan" binding:"required"`
	Services      []string        `json:"services"`
	StartDate     string          `json:"startDate" binding:"required"`
	EndDate       string          `json:"endDate" binding:"required"`
	StartTime     string          `json:"startTime"`
	EndTime       string          `json:"endTime"`
	WorkerID1     *uint           `json:"workerId1"`
	WorkerID2     *uint           `json:"workerId2"`
	PackageID     string          `json:"packageId" binding:"required"`
	BasicPrice    decimal.Decimal `json:"basicPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice" binding:"required"`
	Frequency     int             `json:"frequency" binding:"required,oneof=8 30"`
	AddressID     *uint           `json:"addressId"`
}

// BookCooking creates an ongoing cooking booking for the authenticated
// customer
func BookCooking(c *gin.Context) {
	customerID, ok := utils.CustomerIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var input CreateCookingBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	endDate, err := utils.ParseDate(input.EndDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date")
		return
	}

	booking := models.Booking{
		CustomerID:  customerID,
		AddressID:   input.AddressID,
		ServiceType: "cooking",
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		WorkerID1:   input.WorkerID1,
		WorkerID2:   input.WorkerID2,
		PackageID:   input.PackageID,
		BasicPrice:  input.BasicPrice,
		TotalPrice:  input.TotalPrice,
		Frequency:   input.Frequency,
		Status:      models.BookingOngoing,
		Details: models.JSONB{
			"dietaryPreference":       input.DietaryPreference,
			"noOfPeople":              input.NoOfPeople,
			"mealsPerDay":             input.MealsPerDay,
			"servicePurpose":          input.ServicePurpose,
			"kitchenPlatformCleaning": input.KitchenPlatformCleaning,
		},
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book cooking service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Cooking service booked successfully",
		"data": gin.H{
			"booking_id":   booking.ID,
			"status":       booking.Status,
			"booking_date": booking.CreatedAt,
		},
	})
}

// BookCleaning creates an ongoing cleaning booking for the authenticated
// customer
func BookCleaning(c *gin.Context) {
	customerID, ok := utils.CustomerIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var input CreateCleaningBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	startDate, err := utils.ParseDate(input.StartDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date")
		return
	}
	endDate, err := utils.ParseDate(input.EndDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date")
		return
	}

	booking := models.Booking{
		CustomerID:  customerID,
		AddressID:   input.AddressID,
		ServiceType: "cleaning",
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		WorkerID1:   input.WorkerID1,
		WorkerID2:   input.WorkerID2,
		PackageID:   input.PackageID,
		BasicPrice:  input.BasicPrice,
		TotalPrice:  input.TotalPrice,
		Frequency:   input.Frequency,
		Status:      models.BookingOngoing,
		Details: models.JSONB{
			"noOfFloors":    input.NoOfFloors,
			"noOfBathrooms": input.NoOfBathrooms,
			"bhk":           input.BHK,
			"plan":          input.Plan,
			"services":      input.Services,
		},
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book cleaning service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Cleaning service booked successfully",
		"data": gin.H{
			"booking_id":   booking.ID,
			"status":       booking.Status,
			"booking_date": booking.CreatedAt,
		},
	})
}

// GetBookings lists the authenticated customer's bookings, newest first
func GetBookings(c *gin.Context) {
	customerID, ok := utils.CustomerIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Customer ID not found in context")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": bookings})
}
