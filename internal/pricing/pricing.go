// Package pricing computes pizza unit prices and cart totals. All
// functions are pure: identical inputs always produce identical outputs,
// with no storage access and no hidden state.
package pricing

import (
	"math"

	"pizzeria/internal/models"
)

// CustomPizzaBasePrice is the base price of a fully custom pizza, used
// in place of a catalog lookup.
const CustomPizzaBasePrice = 7.99

// TaxRate is the single flat tax rate applied to the cart subtotal.
const TaxRate = 0.08

// sizeMultipliers scales a pizza's base price by its size. Unknown sizes
// price as medium rather than erroring.
var sizeMultipliers = map[string]float64{
	models.SizeSmall:  0.8,
	models.SizeMedium: 1.0,
	models.SizeLarge:  1.3,
}

// crustAdditions is the flat surcharge per crust style. Unknown crusts
// add nothing.
var crustAdditions = map[string]float64{
	models.CrustThin:    0.00,
	models.CrustRegular: 0.00,
	models.CrustThick:   1.50,
	models.CrustStuffed: 2.50,
}

// Totals holds the monetary summary of a cart, each value rounded to two
// decimal places.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Round2 rounds a monetary value to two decimal places, half up.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// UnitPrice calculates the price of a single pizza from its base price,
// size and crust.
func UnitPrice(basePrice float64, size, crust string) float64 {
	multiplier, ok := sizeMultipliers[size]
	if !ok {
		multiplier = 1.0
	}
	addition := crustAdditions[crust]

	return Round2(basePrice*multiplier + addition)
}

// LineTotal calculates the total for one cart line item: the locked-in
// unit price plus the item's topping prices, times the quantity.
func LineTotal(item models.CartItem) float64 {
	return Round2((item.UnitPrice + item.ToppingsTotal()) * float64(item.Quantity))
}

// CartTotals computes subtotal, tax and total over a set of cart items.
// Total always equals Round2(Subtotal + Tax).
func CartTotals(items []models.CartItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item)
	}
	subtotal = Round2(subtotal)
	tax := Round2(subtotal * TaxRate)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    Round2(subtotal + tax),
	}
}
