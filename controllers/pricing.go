// controllers/pricing.go
package controllers

import (
	"net/http"
	"strconv"

	"homeserve-backend/config"
	"homeserve-backend/services"
	"homeserve-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCookingPackages handles GET /cooking: expands the requested plan family
// into one priced package per available tier.
func GetCookingPackages(c *gin.Context) {
	numPeople, err := strconv.Atoi(c.Query("num_people"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid number of people")
		return
	}

	// Responses echo the canonical catalog label, not the raw query value.
	foodType, err := services.NormalizeFoodType(c.Query("food_type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	req := services.CookingRequest{
		FoodType:  foodType,
		PlanType:  c.Query("plan_type"),
		NumPeople: numPeople,
		MealType:  c.Query("meal_type"),
		Services:  c.QueryArray("services"),
	}

	svc := services.NewPricingService(config.DB)
	packages, err := svc.CookingPackages(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	results := make([]gin.H, 0, len(packages))
	for _, pkg := range packages {
		results = append(results, gin.H{
			"package": gin.H{
				"package_type": pkg.Tier,
				"package_id":   pkg.PackageID,
				"description":  "Essential cooking for your home",
				"duration":     "1.5 hours",
				"base_price":   pkg.Quote.BasePrice,
				"total_price":  pkg.Quote.TotalPrice,
				"num_people":   numPeople,
				"food_type":    req.FoodType,
				"plan_type":    pkg.Tier,
				"meal_type":    req.MealType,
				"services":     pkg.Quote.Services,
				"frequency":    pkg.Frequency,
				"features":     pkg.Features,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Packages fetched successfully",
		"results": results,
	})
}

// GetCleaningPackages handles GET /cleaning.
func GetCleaningPackages(c *gin.Context) {
	req, ok := bindCleaningQuery(c)
	if !ok {
		return
	}

	svc := services.NewPricingService(config.DB)
	packages, err := svc.CleaningPackages(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	results := make([]gin.H, 0, len(packages))
	for _, pkg := range packages {
		results = append(results, gin.H{
			"package": gin.H{
				"package_type": pkg.Tier,
				"package_id":   pkg.PackageID,
				"description":  "Essential cleaning for your home",
				"duration":     "2",
				"base_price":   pkg.Quote.BasePrice,
				"total_price":  pkg.Quote.TotalPrice,
				"bhk":          req.BHK,
				"floor":        req.Floor,
				"bathrooms":    req.Bathrooms,
				"services":     pkg.Quote.Services,
				"frequency":    pkg.Frequency,
				"features":     pkg.Features,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Packages fetched successfully",
		"results": results,
	})
}

func bindCleaningQuery(c *gin.Context) (services.CleaningRequest, bool) {
	floor, err := strconv.Atoi(c.Query("floor"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid floor")
		return services.CleaningRequest{}, false
	}
	bhk, err := strconv.Atoi(c.Query("bhk"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid bhk")
		return services.CleaningRequest{}, false
	}
	bathrooms := 1
	if raw := c.Query("bathrooms"); raw != "" {
		bathrooms, err = strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid bathrooms")
			return services.CleaningRequest{}, false
		}
	}

	return services.CleaningRequest{
		Floor:     floor,
		Plan:      c.Query("plan"),
		BHK:       bhk,
		Bathrooms: bathrooms,
		Services:  c.QueryArray("services"),
	}, true
}
