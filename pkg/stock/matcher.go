package stock

import (
	"LemonRecipes-Backend/entities"
	"strings"
)

// Descriptive modifiers stripped before comparing ingredient names, so
// "2 medium Onions" still matches a pantry item named "Onions".
var nameStoplist = []string{
	"medium", "large", "small", "whole", "fresh", "frozen", "cooked",
}

// NormalizeIngredientName lowercases a name, strips descriptive
// modifiers and collapses whitespace.
func NormalizeIngredientName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		stopped := false
		for _, s := range nameStoplist {
			if f == s {
				stopped = true
				break
			}
		}
		if !stopped {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

func namesOverlap(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchIngredient resolves a recipe ingredient to a pantry item. The
// strategies run in a fixed priority order, each as a full scan over
// the snapshot, first match wins:
//
//  1. exact pantry_item_id lookup when the ingredient carries a link
//  2. case-insensitive substring match in either direction
//  3. normalized-name equality
//
// Returns nil when nothing matches.
func MatchIngredient(ing entities.RecipeIngredient, items []*entities.PantryItem) *entities.PantryItem {
	if ing.PantryItemID != nil && *ing.PantryItemID != "" {
		for _, item := range items {
			if item.ID.String() == *ing.PantryItemID {
				return item
			}
		}
	}

	for _, item := range items {
		if namesOverlap(item.Name, ing.Name) {
			return item
		}
	}

	normalized := NormalizeIngredientName(ing.Name)
	for _, item := range items {
		if NormalizeIngredientName(item.Name) == normalized {
			return item
		}
	}

	return nil
}

// MatchPantryItem is the reverse-direction matcher used by the
// consumption engine: given one pantry item, find the recipe ingredient
// that consumes it. Visiting pantry items one by one guarantees each is
// deducted at most once per invocation. Same strategy order as
// MatchIngredient.
func MatchPantryItem(item *entities.PantryItem, ingredients []entities.RecipeIngredient) *entities.RecipeIngredient {
	id := item.ID.String()
	for i := range ingredients {
		if ingredients[i].PantryItemID != nil && *ingredients[i].PantryItemID == id {
			return &ingredients[i]
		}
	}

	for i := range ingredients {
		if namesOverlap(item.Name, ingredients[i].Name) {
			return &ingredients[i]
		}
	}

	normalized := NormalizeIngredientName(item.Name)
	for i := range ingredients {
		if NormalizeIngredientName(ingredients[i].Name) == normalized {
			return &ingredients[i]
		}
	}

	return nil
}
