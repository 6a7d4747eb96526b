package pricing_test

import (
	"testing"

	"pizzeria/internal/models"
	"pizzeria/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPrice(t *testing.T) {
	// Large stuffed: 10.00 * 1.3 + 2.50
	assert.Equal(t, 15.50, pricing.UnitPrice(10.00, models.SizeLarge, models.CrustStuffed))

	// Small thin: 10.00 * 0.8 + 0.00
	assert.Equal(t, 8.00, pricing.UnitPrice(10.00, models.SizeSmall, models.CrustThin))

	// Unknown size prices as medium; unknown crust adds nothing
	assert.Equal(t, 10.00, pricing.UnitPrice(10.00, "unknown", models.CrustRegular))
	assert.Equal(t, 10.00, pricing.UnitPrice(10.00, models.SizeMedium, "unknown"))

	// Rounds to two decimals: 12.99 * 1.3 = 16.887
	assert.Equal(t, 16.89, pricing.UnitPrice(12.99, models.SizeLarge, models.CrustRegular))

	// Thick crust surcharge
	assert.Equal(t, 11.50, pricing.UnitPrice(10.00, models.SizeMedium, models.CrustThick))
}

func TestUnitPrice_Deterministic(t *testing.T) {
	first := pricing.UnitPrice(13.49, models.SizeLarge, models.CrustStuffed)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, pricing.UnitPrice(13.49, models.SizeLarge, models.CrustStuffed))
	}
}

func TestLineTotal(t *testing.T) {
	item := models.CartItem{
		Quantity:  2,
		UnitPrice: 12.99,
		Toppings: []models.Topping{
			{Name: "Mozzarella", Price: 1.50},
		},
	}

	// (12.99 + 1.50) * 2
	assert.Equal(t, 28.98, pricing.LineTotal(item))
}

func TestLineTotal_NoToppings(t *testing.T) {
	item := models.CartItem{Quantity: 3, UnitPrice: 9.99}
	assert.Equal(t, 29.97, pricing.LineTotal(item))
}

func TestCartTotals_MargheritaScenario(t *testing.T) {
	// One medium/regular Margherita (base 12.99) with one Mozzarella
	// topping (1.50), quantity 2.
	items := []models.CartItem{
		{
			Quantity:  2,
			Size:      models.SizeMedium,
			Crust:     models.CrustRegular,
			UnitPrice: pricing.UnitPrice(12.99, models.SizeMedium, models.CrustRegular),
			Toppings:  []models.Topping{{Name: "Mozzarella", Price: 1.50}},
		},
	}

	totals := pricing.CartTotals(items)
	assert.Equal(t, 28.98, totals.Subtotal)
	assert.Equal(t, 2.32, totals.Tax)
	assert.Equal(t, 31.30, totals.Total)
}

func TestCartTotals_Reconciles(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 1, UnitPrice: 15.50, Toppings: []models.Topping{{Price: 2.00}, {Price: 1.25}}},
		{Quantity: 4, UnitPrice: 8.00},
		{Quantity: 2, UnitPrice: 10.39, Toppings: []models.Topping{{Price: 1.50}}},
	}

	totals := pricing.CartTotals(items)
	assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 0.01)
	assert.Equal(t, pricing.Round2(totals.Subtotal*pricing.TaxRate), totals.Tax)
}

func TestCartTotals_Empty(t *testing.T) {
	totals := pricing.CartTotals(nil)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.32, pricing.Round2(2.3184))
	assert.Equal(t, 15.50, pricing.Round2(15.5))
	assert.Equal(t, 1.13, pricing.Round2(1.125000001))
}
