package stock

import (
	"LemonRecipes-Backend/entities"
	"math"
)

// IsLowStock reports whether a pantry item should be considered low.
// An explicit low_stock_threshold on the item wins; otherwise the
// threshold is keyed on the item's unit, because a flat cutoff is
// meaningless across item scales (a 5kg meat purchase vs an 8g spice
// jar).
func IsLowStock(item *entities.PantryItem) bool {
	if item.LowStockThreshold != nil {
		return item.CurrentAmount <= *item.LowStockThreshold
	}

	switch item.Unit {
	case "items", "heads", "ears", "cans", "bottles", "packages", "containers":
		return item.CurrentAmount <= 1
	case "lbs":
		return item.CurrentAmount <= 1
	case "g":
		// Bulk quantities (meat) run out at 200g, small jars (spices) at 25g.
		if item.CurrentAmount > 1000 {
			return item.CurrentAmount <= 200
		}
		return item.CurrentAmount <= 25
	case "ml":
		return item.CurrentAmount <= 50
	case "%":
		return item.CurrentAmount <= 10
	default:
		return item.CurrentAmount <= 2
	}
}

// RestockAmount sizes the purchase for an auto-restocked item: the
// item's normal restock level, falling back to its minimum buy amount,
// then to a unit-keyed default.
func RestockAmount(item *entities.PantryItem) float64 {
	if item.NormalRestockLevel != nil && *item.NormalRestockLevel > 0 {
		return *item.NormalRestockLevel
	}
	if item.MinBuyAmount != nil && *item.MinBuyAmount > 0 {
		return *item.MinBuyAmount
	}

	switch item.Unit {
	case "items", "cans", "bottles":
		return 4
	case "lbs":
		return 2
	case "cups":
		return 3
	default:
		return math.Max(2, math.Ceil(item.CurrentAmount*2))
	}
}
