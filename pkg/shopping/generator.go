package shopping

import (
	"LemonRecipes-Backend/entities"
	"LemonRecipes-Backend/pkg/stock"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const restockReason = "Low Stock Restock"

type demand struct {
	name         string // first-seen spelling, kept for display
	unit         string
	amount       float64
	neededFor    []string
	pantryItemID *string
}

// GenerateItems derives a shopping list from the weekly plan, the
// recipe collection and a pantry snapshot. Three phases:
//
//  1. aggregate scaled ingredient demand per (name, unit)
//  2. net each demand against pantry stock, honoring min_buy_amount
//  3. fold in low-stock auto-restock items not already on the list
//
// Meals pointing at a deleted recipe, and recipes with non-positive
// servings, are skipped silently. Output is stable-sorted by category.
func GenerateItems(plan *entities.WeeklyPlan, recipes []*entities.Recipe, items []*entities.PantryItem) []*entities.ShoppingItem {
	demands := aggregateDemand(plan, recipes)

	list := make([]*entities.ShoppingItem, 0, len(demands))
	for _, d := range demands {
		if item := netAgainstStock(d, items); item != nil {
			list = append(list, item)
		}
	}

	for _, item := range items {
		if !item.AutoAddToShopping || !stock.IsLowStock(item) {
			continue
		}
		if containsPantryItem(list, item.ID.String()) {
			continue
		}
		list = append(list, &entities.ShoppingItem{
			ID:           uuid.New(),
			Name:         item.Name,
			Amount:       stock.RestockAmount(item),
			Unit:         item.Unit,
			Category:     itemCategory(item),
			NeededFor:    []string{restockReason},
			PantryItemID: strPtr(item.ID.String()),
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Category < list[j].Category
	})
	return list
}

func aggregateDemand(plan *entities.WeeklyPlan, recipes []*entities.Recipe) []*demand {
	byID := make(map[uuid.UUID]*entities.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	index := make(map[string]*demand)
	ordered := make([]*demand, 0)

	for _, meal := range plan.Meals {
		recipe, ok := byID[meal.RecipeID]
		if !ok || recipe.Servings <= 0 {
			continue
		}
		scale := float64(meal.Servings) / float64(recipe.Servings)

		for _, ing := range recipe.Ingredients {
			key := strings.ToLower(ing.Name) + "\x00" + ing.Unit
			d, exists := index[key]
			if !exists {
				d = &demand{name: ing.Name, unit: ing.Unit}
				index[key] = d
				ordered = append(ordered, d)
			}
			d.amount += ing.Amount * scale
			d.neededFor = append(d.neededFor, recipe.Title)
			if d.pantryItemID == nil && ing.PantryItemID != nil && *ing.PantryItemID != "" {
				d.pantryItemID = ing.PantryItemID
			}
		}
	}

	return ordered
}

// netAgainstStock turns one aggregated demand into a shopping item, or
// nil when existing stock already covers it. Shopping amounts are
// rounded up to 2 decimal places, never down.
func netAgainstStock(d *demand, items []*entities.PantryItem) *entities.ShoppingItem {
	probe := entities.RecipeIngredient{Name: d.name, Unit: d.unit, PantryItemID: d.pantryItemID}
	matched := stock.MatchIngredient(probe, items)

	toBuy := d.amount
	category := categorizeIngredient(d.name)
	var pantryItemID *string

	if matched != nil {
		pantryItemID = strPtr(matched.ID.String())
		if cat := itemCategory(matched); cat != "" {
			category = cat
		}
		if available, ok := stock.ConvertUnits(matched.CurrentAmount, matched.Unit, d.unit); ok {
			toBuy = d.amount - available
		}
		if toBuy <= 0 {
			return nil
		}
		if matched.MinBuyAmount != nil && toBuy < *matched.MinBuyAmount {
			toBuy = *matched.MinBuyAmount
		}
	}

	if toBuy <= 0 {
		return nil
	}

	amount, _ := decimal.NewFromFloat(toBuy).RoundCeil(2).Float64()

	return &entities.ShoppingItem{
		ID:           uuid.New(),
		Name:         d.name,
		Amount:       amount,
		Unit:         d.unit,
		Category:     category,
		NeededFor:    d.neededFor,
		PantryItemID: pantryItemID,
	}
}

// ReconcileChecked carries checked state forward from a previous list
// onto a freshly generated one, matching on (lowercased name, unit).
// Unmatched fresh items stay unchecked.
func ReconcileChecked(fresh, previous []*entities.ShoppingItem) {
	for _, item := range fresh {
		for _, old := range previous {
			if old.Checked &&
				strings.EqualFold(old.Name, item.Name) &&
				old.Unit == item.Unit {
				item.Checked = true
				item.CheckedBy = old.CheckedBy
				item.CheckedAt = old.CheckedAt
				break
			}
		}
	}
}

func containsPantryItem(list []*entities.ShoppingItem, pantryItemID string) bool {
	for _, item := range list {
		if item.PantryItemID != nil && *item.PantryItemID == pantryItemID {
			return true
		}
	}
	return false
}

func itemCategory(item *entities.PantryItem) string {
	if name := item.CategoryName(); name != "" {
		return name
	}
	return categorizeIngredient(item.Name)
}

// categorizeIngredient buckets a free-text ingredient name into a store
// aisle when no pantry item supplies a category.
func categorizeIngredient(name string) string {
	name = strings.ToLower(name)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(name, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("chicken", "beef", "pork", "fish", "salmon", "meat"):
		return "proteins"
	case contains("milk", "cheese", "yogurt", "egg", "butter", "cream"):
		return "dairy"
	case contains("tomato", "onion", "pepper", "carrot", "lettuce", "spinach"):
		return "vegetables"
	case contains("apple", "banana", "berry", "orange", "lemon", "lime"):
		return "fruits"
	case contains("bread", "pasta", "rice", "flour", "cereal", "grain"):
		return "grains"
	case contains("oil", "vinegar", "sauce", "dressing", "condiment"):
		return "oils"
	case contains("salt", "spice", "herb", "garlic", "ginger"):
		return "spices"
	default:
		return "pantry"
	}
}

func strPtr(s string) *string {
	return &s
}
