// services/pricing_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"homeserve-backend/models"

	"gorm.io/gorm"
)

// PricingService resolves catalog rows and prices service configurations.
// It is stateless: every call is an independent read-only computation.
type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

// CookingRequest describes a cooking quote. PlanType is a tier name for
// single quotes and a plan family (daily/weekly/occasionally) for package
// listings.
type CookingRequest struct {
	FoodType  string
	PlanType  string
	NumPeople int
	MealType  string
	Services  []string
}

// CleaningRequest describes a cleaning quote.
type CleaningRequest struct {
	Floor     int
	Plan      string
	BHK       int
	Bathrooms int
	Services  []string
}

// Package is one priced tier returned by the package composers.
type Package struct {
	Tier      string
	PackageID string
	Frequency int
	Quote     Quote
	Features  []string
}

// Fixed package id suffixes carried over from the mobile app contract.
const (
	cookingPackageSuffix  = "6969"
	cleaningPackageSuffix = "1234"
)

func packageID(tier, suffix string) string {
	name := tier
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name) + suffix
}

func frequencyForTier(tier string) int {
	if tier == "Basic" {
		return 8
	}
	return 30
}

// dedupe returns the unique values of codes, order-independent. Catalog
// iteration order, not request order, decides which add-on row wins later.
func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

// Comparable food-type expression, applied identically to the stored label
// and the lookup key so hyphen/space spelling variants match.
const foodTypeExpr = "LOWER(REPLACE(REPLACE(TRIM(food_type), ' ', ''), '-', ''))"

func (s *PricingService) findMeal(foodType, tier string, numPeople int, mealCombo string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where(foodTypeExpr+" = ?", foodTypeKey(foodType)).
		Where("LOWER(TRIM(plan_type)) = ?", strings.ToLower(strings.TrimSpace(tier))).
		Where("num_people = ?", numPeople).
		Where("LOWER(TRIM(basic_details)) = ?", strings.ToLower(strings.TrimSpace(mealCombo))).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no meal plan for food_type=%s plan_type=%s num_people=%d meal_type=%s",
				ErrNotFound, foodType, tier, numPeople, mealCombo)
		}
		return nil, err
	}
	return &meal, nil
}

// findCookingAddOns resolves the requested add-on codes for a cooking quote.
// Unknown codes are dropped, duplicates collapse to the first row in code
// order, and the price column matching the household size is selected.
func (s *PricingService) findCookingAddOns(foodType, tier, mealCombo string, numPeople int, codes []string) ([]CatalogAddOn, error) {
	codes = dedupe(codes)
	if len(codes) == 0 {
		return nil, nil
	}

	var rows []models.AdditionalService
	err := s.db.
		Where(foodTypeExpr+" = ?", foodTypeKey(foodType)).
		Where("LOWER(TRIM(plan_type)) = ?", strings.ToLower(strings.TrimSpace(tier))).
		Where("LOWER(TRIM(meal_combo)) = ?", strings.ToLower(strings.TrimSpace(mealCombo))).
		Where("code IN ?", codes).
		Order("code").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	addOns := make([]CatalogAddOn, 0, len(rows))
	for _, row := range rows {
		price, err := row.PriceFor(numPeople)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		addOns = append(addOns, CatalogAddOn{
			Code:         row.Code,
			Name:         row.Name,
			IsPercentage: row.IsPercentage,
			Price:        price,
		})
	}
	return addOns, nil
}

// CookingQuote prices a single cooking configuration for an exact plan tier.
func (s *PricingService) CookingQuote(req CookingRequest) (*Quote, error) {
	foodType, err := NormalizeFoodType(req.FoodType)
	if err != nil {
		return nil, err
	}
	if req.NumPeople < 1 || req.NumPeople > 7 {
		return nil, fmt.Errorf("%w: num_people must be 1-7, got %d", ErrUnsupportedValue, req.NumPeople)
	}

	meal, err := s.findMeal(foodType, req.PlanType, req.NumPeople, req.MealType)
	if err != nil {
		return nil, err
	}
	addOns, err := s.findCookingAddOns(foodType, req.PlanType, req.MealType, req.NumPeople, req.Services)
	if err != nil {
		return nil, err
	}

	quote := ComputeQuote(meal.BasicPrice, addOns)
	return &quote, nil
}

// CookingPackages expands a plan family into one priced package per tier
// that has a catalog row. Tiers without a matching meal are skipped.
func (s *PricingService) CookingPackages(req CookingRequest) ([]Package, error) {
	foodType, err := NormalizeFoodType(req.FoodType)
	if err != nil {
		return nil, err
	}
	tiers, err := TiersForPlanFamily(req.PlanType)
	if err != nil {
		return nil, err
	}
	mealCombo, err := CanonicalMealCombo(req.MealType)
	if err != nil {
		return nil, err
	}
	if req.NumPeople < 1 || req.NumPeople > 7 {
		return nil, fmt.Errorf("%w: num_people must be 1-7, got %d", ErrUnsupportedValue, req.NumPeople)
	}

	packages := make([]Package, 0, len(tiers))
	for _, tier := range tiers {
		meal, err := s.findMeal(foodType, tier, req.NumPeople, mealCombo)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				log.Printf("No %s cooking plan for %s, %d people, %s", tier, foodType, req.NumPeople, mealCombo)
				continue
			}
			return nil, err
		}
		addOns, err := s.findCookingAddOns(foodType, tier, mealCombo, req.NumPeople, req.Services)
		if err != nil {
			return nil, err
		}

		frequency := frequencyForTier(tier)
		packages = append(packages, Package{
			Tier:      tier,
			PackageID: packageID(tier, cookingPackageSuffix),
			Frequency: frequency,
			Quote:     ComputeQuote(meal.BasicPrice, addOns),
			Features: []string{
				fmt.Sprintf("Dietary Preference: %s", foodType),
				fmt.Sprintf("Service for %d people", req.NumPeople),
				fmt.Sprintf("Meals per day: %s", mealCombo),
				fmt.Sprintf("Service purpose: %s", req.PlanType),
				fmt.Sprintf("Duration: 1.5 hours, %d times/month", frequency),
			},
		})
	}
	return packages, nil
}

func (s *PricingService) findCleaningPlan(tier string, bhk, floor int) (*models.CleaningPlan, error) {
	var plan models.CleaningPlan
	err := s.db.
		Where("LOWER(TRIM(plan)) = ?", strings.ToLower(strings.TrimSpace(tier))).
		Where("bhk = ?", bhk).
		Where("floor = ?", floor).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no cleaning plan for floor=%d plan=%s bhk=%d",
				ErrNotFound, floor, tier, bhk)
		}
		return nil, err
	}
	return &plan, nil
}

// findCleaningAddOns resolves cleaning add-on codes. The cleaning catalog has
// no percentage flag; code "C" is the percentage add-on.
func (s *PricingService) findCleaningAddOns(tier string, floor, bathrooms int, codes []string) ([]CatalogAddOn, error) {
	codes = dedupe(codes)
	if len(codes) == 0 {
		return nil, nil
	}
	for _, code := range codes {
		if code != "A" && code != "B" && code != "C" {
			return nil, fmt.Errorf("%w: service code %q, must be one of A, B, C", ErrUnsupportedValue, code)
		}
	}

	var rows []models.AdditionalCleaning
	err := s.db.
		Where("LOWER(TRIM(plan)) = ?", strings.ToLower(strings.TrimSpace(tier))).
		Where("floor = ?", floor).
		Where("code IN ?", codes).
		Order("code").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	addOns := make([]CatalogAddOn, 0, len(rows))
	for _, row := range rows {
		price, err := row.PriceFor(bathrooms)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		addOns = append(addOns, CatalogAddOn{
			Code:         row.Code,
			Name:         row.ServiceName,
			IsPercentage: row.Code == "C",
			Price:        price,
		})
	}
	return addOns, nil
}

func validateCleaningRequest(req CleaningRequest) error {
	if req.Floor < 1 || req.Floor > 10 {
		return fmt.Errorf("%w: floor must be 1-10, got %d", ErrUnsupportedValue, req.Floor)
	}
	if req.BHK < 1 || req.BHK > 5 {
		return fmt.Errorf("%w: bhk must be 1-5, got %d", ErrUnsupportedValue, req.BHK)
	}
	if req.Bathrooms < 1 || req.Bathrooms > 5 {
		return fmt.Errorf("%w: bathrooms must be 1-5, got %d", ErrUnsupportedValue, req.Bathrooms)
	}
	return nil
}

// CleaningQuote prices a single cleaning configuration for an exact plan tier.
func (s *PricingService) CleaningQuote(req CleaningRequest) (*Quote, error) {
	if err := validateCleaningRequest(req); err != nil {
		return nil, err
	}
	plan, err := s.findCleaningPlan(req.Plan, req.BHK, req.Floor)
	if err != nil {
		return nil, err
	}
	addOns, err := s.findCleaningAddOns(req.Plan, req.Floor, req.Bathrooms, req.Services)
	if err != nil {
		return nil, err
	}

	quote := ComputeQuote(plan.Price, addOns)
	return &quote, nil
}

// CleaningPackages expands a plan family into one priced package per tier
// that has a catalog row.
func (s *PricingService) CleaningPackages(req CleaningRequest) ([]Package, error) {
	if err := validateCleaningRequest(req); err != nil {
		return nil, err
	}
	tiers, err := TiersForPlanFamily(req.Plan)
	if err != nil {
		return nil, err
	}

	packages := make([]Package, 0, len(tiers))
	for _, tier := range tiers {
		plan, err := s.findCleaningPlan(tier, req.BHK, req.Floor)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				log.Printf("No %s cleaning plan for floor=%d bhk=%d", tier, req.Floor, req.BHK)
				continue
			}
			return nil, err
		}
		addOns, err := s.findCleaningAddOns(tier, req.Floor, req.Bathrooms, req.Services)
		if err != nil {
			return nil, err
		}

		selected := "None"
		if len(req.Services) > 0 {
			selected = strings.Join(dedupe(req.Services), ", ")
		}
		packages = append(packages, Package{
			Tier:      tier,
			PackageID: packageID(tier, cleaningPackageSuffix),
			Frequency: frequencyForTier(tier),
			Quote:     ComputeQuote(plan.Price, addOns),
			Features: []string{
				fmt.Sprintf("Number of floors: %d", req.Floor),
				fmt.Sprintf("Number of bathrooms: %d", req.Bathrooms),
				fmt.Sprintf("BHK: %d", req.BHK),
				fmt.Sprintf("Plan: %s", req.Plan),
				fmt.Sprintf("Additional Services: %s", selected),
			},
		})
	}
	return packages, nil
}
