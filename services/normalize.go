// services/normalize.go
package services

import (
	"fmt"
	"strings"
)

// Canonical catalog labels. The catalog stores "Non - Veg" with spaces; all
// lookups go through foodTypeKey so spelling variants across old client
// versions ("Non-Veg", "non veg", " VEG ") resolve to the same rows.
const (
	FoodTypeVeg    = "Veg"
	FoodTypeNonVeg = "Non - Veg"
)

// Meal combination labels, exactly as stored in the meals catalog.
const (
	MealCombo3      = "3 Meals {Breakfast+Tea & Lunch + Dinner}"
	MealCombo2      = "2 Meals {Breakfast+Tea & Lunch}"
	MealComboLunch  = "1 Meal Lunch"
	MealComboDinner = "1 Meal Dinner"
)

// foodTypeKey reduces a food-type label to its comparable form: lowercase
// with spaces and hyphens removed.
func foodTypeKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "-", "")
	return key
}

// NormalizeFoodType maps free-text food type input to its canonical catalog
// label.
func NormalizeFoodType(raw string) (string, error) {
	key := foodTypeKey(raw)
	switch {
	case strings.Contains(key, "non"):
		return FoodTypeNonVeg, nil
	case strings.Contains(key, "veg"):
		return FoodTypeVeg, nil
	default:
		return "", fmt.Errorf("%w: food type %q", ErrUnsupportedValue, raw)
	}
}

// CanonicalMealCombo maps a free-text meal description to one of the four
// fixed catalog labels by substring matching.
func CanonicalMealCombo(raw string) (string, error) {
	lower := strings.ToLower(raw)
	breakfast := strings.Contains(lower, "breakfast")
	lunch := strings.Contains(lower, "lunch")
	dinner := strings.Contains(lower, "dinner")

	switch {
	case breakfast && lunch && dinner:
		return MealCombo3, nil
	case breakfast && lunch:
		return MealCombo2, nil
	case lunch:
		return MealComboLunch, nil
	case dinner:
		return MealComboDinner, nil
	default:
		return "", fmt.Errorf("%w: no meal plan matches %q", ErrNotFound, raw)
	}
}

// TiersForPlanFamily maps a billing cadence to the plan tiers offered for it,
// in presentation order.
func TiersForPlanFamily(family string) ([]string, error) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "daily":
		return []string{"Standard", "Premium"}, nil
	case "weekly", "occasionally":
		return []string{"Basic", "Standard", "Premium"}, nil
	default:
		return nil, fmt.Errorf("%w: plan type %q", ErrUnsupportedValue, family)
	}
}
