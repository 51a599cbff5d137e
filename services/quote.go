// services/quote.go
package services

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CatalogAddOn is an add-on row resolved against a quote request: the price
// column for the cohort size has already been selected.
type CatalogAddOn struct {
	Code         string
	Name         string
	IsPercentage bool
	Price        decimal.Decimal
}

// AppliedService records what an add-on actually contributed to a quote.
type AppliedService struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	IsPercentage bool            `json:"is_percentage"`
	Amount       decimal.Decimal `json:"amount"`
}

// Quote is a priced service configuration.
type Quote struct {
	BasePrice  decimal.Decimal  `json:"base_price"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	Services   []AppliedService `json:"services"`
}

// ComputeQuote totals a base price plus the given add-ons. Percentage add-ons
// apply to the base price, not the running total. Duplicate codes are
// collapsed keeping the first occurrence, so callers can pass rows straight
// from a catalog query.
func ComputeQuote(basePrice decimal.Decimal, addOns []CatalogAddOn) Quote {
	total := basePrice
	applied := make([]AppliedService, 0, len(addOns))
	seen := make(map[string]bool, len(addOns))

	for _, addOn := range addOns {
		if seen[addOn.Code] {
			continue
		}
		seen[addOn.Code] = true

		var contribution decimal.Decimal
		if addOn.IsPercentage {
			contribution = basePrice.Mul(addOn.Price).Div(hundred).Round(2)
		} else {
			contribution = addOn.Price
		}
		total = total.Add(contribution)

		applied = append(applied, AppliedService{
			Code:         addOn.Code,
			Name:         addOn.Name,
			IsPercentage: addOn.IsPercentage,
			Amount:       contribution,
		})
	}

	return Quote{
		BasePrice:  basePrice.Round(2),
		TotalPrice: total.Round(2),
		Services:   applied,
	}
}
