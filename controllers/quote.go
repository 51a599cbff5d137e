// controllers/quote.go
package controllers

import (
	"net/http"
	"strconv"

	"homeserve-backend/config"
	"homeserve-backend/services"
	"homeserve-backend/utils"

	"github.com/gin-gonic/gin"
)

// CalculateCookingTotal handles GET /calculate_total, the legacy single-quote
// endpoint: the plan type is an exact tier and the meal type must match the
// catalog label as stored.
func CalculateCookingTotal(c *gin.Context) {
	numPeople, err := strconv.Atoi(c.Query("num_people"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid number of people")
		return
	}

	req := services.CookingRequest{
		FoodType:  c.Query("food_type"),
		PlanType:  c.Query("plan_type"),
		NumPeople: numPeople,
		MealType:  c.Query("meal_type"),
		Services:  c.QueryArray("services"),
	}

	svc := services.NewPricingService(config.DB)
	quote, err := svc.CookingQuote(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"base_price":  quote.BasePrice,
		"total_price": quote.TotalPrice,
		"num_people":  numPeople,
		"food_type":   req.FoodType,
		"plan_type":   req.PlanType,
		"meal_type":   req.MealType,
		"services":    quote.Services,
	})
}

// CalculateCleaningTotal handles GET /calculate-cleaning-total, the legacy
// single cleaning quote.
func CalculateCleaningTotal(c *gin.Context) {
	req, ok := bindCleaningQuery(c)
	if !ok {
		return
	}

	svc := services.NewPricingService(config.DB)
	quote, err := svc.CleaningQuote(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"base_price":  quote.BasePrice,
		"total_price": quote.TotalPrice,
		"floor":       req.Floor,
		"plan":        req.Plan,
		"bhk":         req.BHK,
		"bathrooms":   req.Bathrooms,
		"services":    quote.Services,
	})
}
