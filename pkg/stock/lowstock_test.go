package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestIsLowStockCustomThresholdWins(t *testing.T) {
	item := pantryItem("Rice", "cups", 5)
	item.LowStockThreshold = floatPtr(6)
	assert.True(t, IsLowStock(item))

	item.LowStockThreshold = floatPtr(1)
	assert.False(t, IsLowStock(item))
}

func TestIsLowStockUnitDefaults(t *testing.T) {
	cases := []struct {
		unit   string
		amount float64
		low    bool
	}{
		{"items", 1, true},
		{"items", 2, false},
		{"heads", 1, true},
		{"cans", 2, false},
		{"lbs", 0.5, true},
		{"lbs", 1.5, false},
		{"ml", 50, true},
		{"ml", 51, false},
		{"%", 10, true},
		{"%", 11, false},
		{"cups", 2, true},
		{"cups", 2.5, false},
	}

	for _, tc := range cases {
		item := pantryItem("x", tc.unit, tc.amount)
		assert.Equal(t, tc.low, IsLowStock(item), "unit=%s amount=%v", tc.unit, tc.amount)
	}
}

func TestIsLowStockGramsScaleSplit(t *testing.T) {
	// bulk grams (over 1kg on hand) use the 200g cutoff, small jars 25g
	small := pantryItem("Paprika", "g", 20)
	assert.True(t, IsLowStock(small))

	jar := pantryItem("Paprika", "g", 30)
	assert.False(t, IsLowStock(jar))

	bulk := pantryItem("Ground Beef", "g", 1500)
	assert.False(t, IsLowStock(bulk))
}

func TestRestockAmountPriority(t *testing.T) {
	item := pantryItem("Rice", "cups", 1)
	item.NormalRestockLevel = floatPtr(8)
	item.MinBuyAmount = floatPtr(5)
	assert.Equal(t, 8.0, RestockAmount(item))

	item.NormalRestockLevel = nil
	assert.Equal(t, 5.0, RestockAmount(item))

	item.MinBuyAmount = nil
	assert.Equal(t, 3.0, RestockAmount(item)) // cups default
}

func TestRestockAmountUnitDefaults(t *testing.T) {
	assert.Equal(t, 4.0, RestockAmount(pantryItem("Eggs", "items", 1)))
	assert.Equal(t, 2.0, RestockAmount(pantryItem("Beef", "lbs", 0.5)))

	// fallback doubles current stock, floored at 2
	assert.Equal(t, 2.0, RestockAmount(pantryItem("Vanilla", "tsp", 0.5)))
	assert.Equal(t, 6.0, RestockAmount(pantryItem("Stock", "quarts", 3)))
}

func TestConvertUnitsIdentityOnly(t *testing.T) {
	got, ok := ConvertUnits(2.5, "cups", "cups")
	assert.True(t, ok)
	assert.Equal(t, 2.5, got)

	_, ok = ConvertUnits(2.5, "cups", "ml")
	assert.False(t, ok)
}
