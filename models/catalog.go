package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Meal is a purchasable cooking base plan. One row per
// (food type, plan tier, household size, meal combination).
type Meal struct {
	ID           uint            `gorm:"primary_key" json:"id"`
	FoodType     string          `gorm:"size:20;not null;index" json:"foodType"` // "Veg" or "Non - Veg"
	PlanType     string          `gorm:"size:20;not null;index" json:"planType"` // Basic / Standard / Premium
	NumPeople    int             `gorm:"not null" json:"numPeople"`              // 1..7
	BasicPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"basicPrice"`
	BasicDetails string          `gorm:"not null" json:"basicDetails"` // meal combination label
}

// AdditionalService is an optional cooking add-on. The price that applies
// depends on the household size, one column per size.
type AdditionalService struct {
	ID           uint            `gorm:"primary_key" json:"id"`
	Code         string          `gorm:"size:10;not null;index" json:"code"`
	Name         string          `gorm:"not null" json:"name"`
	IsPercentage bool            `gorm:"default:false" json:"isPercentage"`
	FoodType     string          `gorm:"size:20;not null" json:"foodType"`
	PlanType     string          `gorm:"size:20;not null" json:"planType"`
	MealCombo    string          `gorm:"not null" json:"mealCombo"`
	Price1       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price1"`
	Price2       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price2"`
	Price3       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price3"`
	Price4       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price4"`
	Price5       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price5"`
	Price6       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price6"`
	Price7       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price7"`
}

// PriceFor returns the price column for the given household size.
func (a *AdditionalService) PriceFor(numPeople int) (decimal.Decimal, error) {
	switch numPeople {
	case 1:
		return a.Price1, nil
	case 2:
		return a.Price2, nil
	case 3:
		return a.Price3, nil
	case 4:
		return a.Price4, nil
	case 5:
		return a.Price5, nil
	case 6:
		return a.Price6, nil
	case 7:
		return a.Price7, nil
	default:
		return decimal.Zero, fmt.Errorf("no price column for %d people", numPeople)
	}
}

// CleaningPlan is a purchasable cleaning base plan keyed by floor, plan tier
// and BHK count.
type CleaningPlan struct {
	ID    uint            `gorm:"primary_key" json:"id"`
	Floor int             `gorm:"not null;index" json:"floor"`
	Plan  string          `gorm:"size:20;not null;index" json:"plan"` // Basic / Standard / Premium
	BHK   int             `gorm:"not null" json:"bhk"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (CleaningPlan) TableName() string { return "cleaning" }

// AdditionalCleaning is an optional cleaning add-on priced per bathroom
// count. Code "C" is a percentage of the base price, the rest are fixed
// amounts.
type AdditionalCleaning struct {
	ID          uint            `gorm:"primary_key" json:"id"`
	Code        string          `gorm:"size:10;not null;index" json:"code"` // A, B or C
	ServiceName string          `gorm:"not null" json:"serviceName"`
	Plan        string          `gorm:"size:20;not null" json:"plan"`
	Floor       int             `gorm:"not null" json:"floor"`
	Bathroom1   decimal.Decimal `gorm:"type:numeric(10,2)" json:"bathroom1"`
	Bathroom2   decimal.Decimal `gorm:"type:numeric(10,2)" json:"bathroom2"`
	Bathroom3   decimal.Decimal `gorm:"type:numeric(10,2)" json:"bathroom3"`
	Bathroom4   decimal.Decimal `gorm:"type:numeric(10,2)" json:"bathroom4"`
	Bathroom5   decimal.Decimal `gorm:"type:numeric(10,2)" json:"bathroom5"`
}

func (AdditionalCleaning) TableName() string { return "additional_cleaning" }

// PriceFor returns the price column for the given bathroom count.
func (a *AdditionalCleaning) PriceFor(bathrooms int) (decimal.Decimal, error) {
	switch bathrooms {
	case 1:
		return a.Bathroom1, nil
	case 2:
		return a.Bathroom2, nil
	case 3:
		return a.Bathroom3, nil
	case 4:
		return a.Bathroom4, nil
	case 5:
		return a.Bathroom5, nil
	default:
		return decimal.Zero, fmt.Errorf("no price column for %d bathrooms", bathrooms)
	}
}
