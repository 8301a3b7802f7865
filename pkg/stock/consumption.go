package stock

import (
	"LemonRecipes-Backend/entities"
)

// ApplyConsumption deducts the recipe's scaled ingredient amounts from
// the pantry snapshot and returns a fresh slice with updated copies;
// the input items are never mutated. Ingredient amounts scale linearly:
// scale = servingsMade / recipe.Servings. A recipe with zero servings
// would produce an unusable scale factor, so it deducts nothing.
//
// Matching runs in the reverse direction (per pantry item, search the
// recipe's ingredients) so each pantry item is visited exactly once and
// deducted at most once. Optional ingredients are never deducted, and
// when the units cannot be converted nothing is deducted rather than
// guessing. Amounts clamp at zero.
//
// Callers must invoke this exactly once per completed-meal transition
// (completed false -> true); invoking it on every toggle or render
// would double-deduct.
func ApplyConsumption(recipe *entities.Recipe, items []*entities.PantryItem, servingsMade int) []*entities.PantryItem {
	updated := make([]*entities.PantryItem, len(items))
	for i, item := range items {
		clone := *item
		updated[i] = &clone
	}

	if recipe == nil || recipe.Servings <= 0 {
		return updated
	}
	scale := float64(servingsMade) / float64(recipe.Servings)

	for _, item := range updated {
		ing := MatchPantryItem(item, recipe.Ingredients)
		if ing == nil || ing.Optional {
			continue
		}

		deduct, ok := ConvertUnits(ing.Amount*scale, ing.Unit, item.Unit)
		if !ok {
			continue
		}

		item.CurrentAmount = item.CurrentAmount - deduct
		if item.CurrentAmount < 0 {
			item.CurrentAmount = 0
		}
	}

	return updated
}
