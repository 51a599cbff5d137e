package services

import (
	"testing"

	"homeserve-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCookingCatalog(t *testing.T, svc *PricingService) {
	t.Helper()

	meals := []models.Meal{
		{FoodType: "Veg", PlanType: "Basic", NumPeople: 2, BasicPrice: dec("500.00"), BasicDetails: MealCombo2},
		{FoodType: "Veg", PlanType: "Standard", NumPeople: 2, BasicPrice: dec("650.00"), BasicDetails: MealCombo2},
		{FoodType: "Veg", PlanType: "Premium", NumPeople: 2, BasicPrice: dec("900.00"), BasicDetails: MealCombo2},
		{FoodType: "Non - Veg", PlanType: "Standard", NumPeople: 2, BasicPrice: dec("750.00"), BasicDetails: MealCombo2},
	}
	require.NoError(t, svc.db.Create(&meals).Error)

	addOns := []models.AdditionalService{
		{Code: "A", Name: "Kitchen platform cleaning", FoodType: "Veg", PlanType: "Standard", MealCombo: MealCombo2,
			Price1: dec("40"), Price2: dec("50"), Price3: dec("60"), Price4: dec("70"), Price5: dec("80"), Price6: dec("90"), Price7: dec("100")},
		{Code: "B", Name: "Festive special", IsPercentage: true, FoodType: "Veg", PlanType: "Standard", MealCombo: MealCombo2,
			Price1: dec("10"), Price2: dec("10"), Price3: dec("10"), Price4: dec("10"), Price5: dec("10"), Price6: dec("10"), Price7: dec("10")},
	}
	require.NoError(t, svc.db.Create(&addOns).Error)
}

func seedCleaningCatalog(t *testing.T, svc *PricingService) {
	t.Helper()

	plans := []models.CleaningPlan{
		{Floor: 3, Plan: "Basic", BHK: 2, Price: dec("800.00")},
		{Floor: 3, Plan: "Standard", BHK: 2, Price: dec("1100.00")},
		// no Premium row for floor 3 / 2 BHK
	}
	require.NoError(t, svc.db.Create(&plans).Error)

	addOns := []models.AdditionalCleaning{
		{Code: "A", ServiceName: "Balcony cleaning", Plan: "Basic", Floor: 3,
			Bathroom1: dec("100"), Bathroom2: dec("120"), Bathroom3: dec("140"), Bathroom4: dec("160"), Bathroom5: dec("180")},
		{Code: "C", ServiceName: "Deep cleaning", Plan: "Basic", Floor: 3,
			Bathroom1: dec("5"), Bathroom2: dec("5"), Bathroom3: dec("5"), Bathroom4: dec("5"), Bathroom5: dec("5")},
	}
	require.NoError(t, svc.db.Create(&addOns).Error)
}

func TestCookingQuoteScenario(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	quote, err := svc.CookingQuote(CookingRequest{
		FoodType:  "Veg",
		PlanType:  "Standard",
		NumPeople: 2,
		MealType:  MealCombo2,
		Services:  []string{"A"},
	})
	require.NoError(t, err)

	assert.True(t, quote.BasePrice.Equal(dec("650.00")), "got %s", quote.BasePrice)
	assert.True(t, quote.TotalPrice.Equal(dec("700.00")), "got %s", quote.TotalPrice)
}

func TestCookingQuoteFoodTypeNormalization(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	for _, foodType := range []string{"Veg", "veg", " VEG "} {
		quote, err := svc.CookingQuote(CookingRequest{
			FoodType:  foodType,
			PlanType:  "Standard",
			NumPeople: 2,
			MealType:  MealCombo2,
		})
		require.NoError(t, err, "food type %q", foodType)
		assert.True(t, quote.BasePrice.Equal(dec("650.00")), "food type %q", foodType)
	}

	for _, foodType := range []string{"Non - Veg", "Non-Veg", "non veg"} {
		quote, err := svc.CookingQuote(CookingRequest{
			FoodType:  foodType,
			PlanType:  "Standard",
			NumPeople: 2,
			MealType:  MealCombo2,
		})
		require.NoError(t, err, "food type %q", foodType)
		assert.True(t, quote.BasePrice.Equal(dec("750.00")), "food type %q", foodType)
	}
}

func TestCookingQuoteRejectsUnknownFoodType(t *testing.T) {
	svc := NewPricingService(newTestDB(t))

	_, err := svc.CookingQuote(CookingRequest{FoodType: "vegan fusion x", PlanType: "Standard", NumPeople: 2, MealType: MealCombo2})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestCookingQuoteNotFound(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	_, err := svc.CookingQuote(CookingRequest{
		FoodType:  "Veg",
		PlanType:  "Standard",
		NumPeople: 5, // no row for 5 people
		MealType:  MealCombo2,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCookingQuoteCohortSizeOutOfRange(t *testing.T) {
	svc := NewPricingService(newTestDB(t))

	_, err := svc.CookingQuote(CookingRequest{FoodType: "Veg", PlanType: "Standard", NumPeople: 9, MealType: MealCombo2})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestCookingQuoteDuplicateServiceCodes(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	req := CookingRequest{FoodType: "Veg", PlanType: "Standard", NumPeople: 2, MealType: MealCombo2}

	req.Services = []string{"A"}
	once, err := svc.CookingQuote(req)
	require.NoError(t, err)

	req.Services = []string{"A", "A", "A"}
	repeated, err := svc.CookingQuote(req)
	require.NoError(t, err)

	assert.True(t, once.TotalPrice.Equal(repeated.TotalPrice))
	assert.Len(t, repeated.Services, 1)
}

func TestCookingQuoteDropsUnknownAddOnCodes(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	quote, err := svc.CookingQuote(CookingRequest{
		FoodType:  "Veg",
		PlanType:  "Standard",
		NumPeople: 2,
		MealType:  MealCombo2,
		Services:  []string{"A", "Z"},
	})
	require.NoError(t, err)

	assert.Len(t, quote.Services, 1)
	assert.True(t, quote.TotalPrice.Equal(dec("700.00")))
}

func TestCookingPackagesWeeklyFamily(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	packages, err := svc.CookingPackages(CookingRequest{
		FoodType:  "veg",
		PlanType:  "weekly",
		NumPeople: 2,
		MealType:  "Breakfast and Lunch",
	})
	require.NoError(t, err)
	require.Len(t, packages, 3)

	assert.Equal(t, "Basic", packages[0].Tier)
	assert.Equal(t, "Standard", packages[1].Tier)
	assert.Equal(t, "Premium", packages[2].Tier)

	assert.Equal(t, "BAS6969", packages[0].PackageID)
	assert.Equal(t, 8, packages[0].Frequency)
	assert.Equal(t, 30, packages[1].Frequency)
}

func TestCookingPackagesDailyFamilySkipsBasic(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCookingCatalog(t, svc)

	packages, err := svc.CookingPackages(CookingRequest{
		FoodType:  "Non-Veg",
		PlanType:  "daily",
		NumPeople: 2,
		MealType:  "breakfast, lunch",
	})
	require.NoError(t, err)

	// Non-veg catalog only has a Standard row; Premium is silently omitted.
	require.Len(t, packages, 1)
	assert.Equal(t, "Standard", packages[0].Tier)
}

func TestCookingPackagesUnsupportedFamily(t *testing.T) {
	svc := NewPricingService(newTestDB(t))

	_, err := svc.CookingPackages(CookingRequest{
		FoodType:  "Veg",
		PlanType:  "fortnightly",
		NumPeople: 2,
		MealType:  "lunch",
	})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestCookingPackagesRejectsUnknownMealDescription(t *testing.T) {
	svc := NewPricingService(newTestDB(t))

	_, err := svc.CookingPackages(CookingRequest{
		FoodType:  "Veg",
		PlanType:  "weekly",
		NumPeople: 2,
		MealType:  "midnight snacks",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCleaningQuoteScenario(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCleaningCatalog(t, svc)

	quote, err := svc.CleaningQuote(CleaningRequest{
		Floor:     3,
		Plan:      "Basic",
		BHK:       2,
		Bathrooms: 2,
		Services:  []string{"C"},
	})
	require.NoError(t, err)

	// 800 + 5% of 800
	assert.True(t, quote.BasePrice.Equal(dec("800.00")), "got %s", quote.BasePrice)
	assert.True(t, quote.TotalPrice.Equal(dec("840.00")), "got %s", quote.TotalPrice)
	require.Len(t, quote.Services, 1)
	assert.True(t, quote.Services[0].IsPercentage)
}

func TestCleaningQuoteRejectsInvalidServiceCode(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCleaningCatalog(t, svc)

	_, err := svc.CleaningQuote(CleaningRequest{
		Floor:     3,
		Plan:      "Basic",
		BHK:       2,
		Bathrooms: 2,
		Services:  []string{"D"},
	})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestCleaningPackagesOmitsMissingTiers(t *testing.T) {
	svc := NewPricingService(newTestDB(t))
	seedCleaningCatalog(t, svc)

	packages, err := svc.CleaningPackages(CleaningRequest{
		Floor:     3,
		Plan:      "weekly",
		BHK:       2,
		Bathrooms: 1,
	})
	require.NoError(t, err)

	// Premium has no catalog row, so only Basic and Standard come back.
	require.Len(t, packages, 2)
	assert.Equal(t, "Basic", packages[0].Tier)
	assert.Equal(t, "Standard", packages[1].Tier)
	assert.Equal(t, "BAS1234", packages[0].PackageID)
	assert.Equal(t, "STA1234", packages[1].PackageID)
}

func TestCleaningPackagesValidatesRanges(t *testing.T) {
	svc := NewPricingService(newTestDB(t))

	_, err := svc.CleaningPackages(CleaningRequest{Floor: 11, Plan: "weekly", BHK: 2, Bathrooms: 1})
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = svc.CleaningPackages(CleaningRequest{Floor: 3, Plan: "weekly", BHK: 6, Bathrooms: 1})
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = svc.CleaningPackages(CleaningRequest{Floor: 3, Plan: "weekly", BHK: 2, Bathrooms: 0})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestCanonicalMealCombo(t *testing.T) {
	cases := map[string]string{
		"Breakfast, Lunch and Dinner": MealCombo3,
		"breakfast + lunch":           MealCombo2,
		"Lunch only":                  MealComboLunch,
		"just Dinner":                 MealComboDinner,
	}
	for input, want := range cases {
		got, err := CanonicalMealCombo(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := CanonicalMealCombo("tea and snacks")
	assert.ErrorIs(t, err, ErrNotFound)
}
