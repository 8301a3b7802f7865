package stock

import (
	"LemonRecipes-Backend/entities"
	"fmt"
)

const ReasonNotFound = "not found"

// AvailabilityResult reports whether a recipe can be made from the
// given pantry snapshot, and why not when it cannot.
type AvailabilityResult struct {
	CanMake                bool
	MissingIngredients     []string
	IngredientAvailability map[string]entities.IngredientStatus
}

// ComputeAvailability evaluates every non-optional ingredient of the
// recipe against the pantry snapshot. Optional ingredients are skipped
// entirely and never block CanMake. The function is pure: callers must
// re-run it on every pantry or recipe change rather than patch its
// previous output.
func ComputeAvailability(recipe *entities.Recipe, items []*entities.PantryItem) AvailabilityResult {
	result := AvailabilityResult{
		MissingIngredients:     []string{},
		IngredientAvailability: make(map[string]entities.IngredientStatus),
	}

	for _, ing := range recipe.Ingredients {
		if ing.Optional {
			continue
		}

		matched := MatchIngredient(ing, items)
		if matched == nil {
			result.MissingIngredients = append(result.MissingIngredients, ing.Name)
			result.IngredientAvailability[ing.Name] = entities.IngredientStatus{
				Available: false,
				Reason:    ReasonNotFound,
			}
			continue
		}

		itemID := matched.ID.String()
		if hasEnough(ing, matched) {
			result.IngredientAvailability[ing.Name] = entities.IngredientStatus{
				Available:    true,
				PantryItemID: &itemID,
			}
			continue
		}

		reason := fmt.Sprintf("need %v %s, have %v %s",
			ing.Amount, ing.Unit, matched.CurrentAmount, matched.Unit)
		result.MissingIngredients = append(result.MissingIngredients,
			fmt.Sprintf("%s (%s)", ing.Name, reason))
		result.IngredientAvailability[ing.Name] = entities.IngredientStatus{
			Available:    false,
			PantryItemID: &itemID,
			Reason:       reason,
		}
	}

	result.CanMake = len(result.MissingIngredients) == 0
	return result
}

// hasEnough compares required against stocked quantity. When the units
// cannot be converted the ingredient is optimistically treated as
// available, so a unit mismatch never produces a false negative.
func hasEnough(ing entities.RecipeIngredient, item *entities.PantryItem) bool {
	required, ok := ConvertUnits(ing.Amount, ing.Unit, item.Unit)
	if !ok {
		return true
	}
	return item.CurrentAmount >= required
}
