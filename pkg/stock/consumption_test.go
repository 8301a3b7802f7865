package stock

import (
	"LemonRecipes-Backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConsumptionScalesByServings(t *testing.T) {
	rice := pantryItem("Rice", "cups", 6)
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 4,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Rice", Amount: 2, Unit: "cups"},
		},
	}

	// made 8 servings of a 4-serving recipe: deduct 2 * 8/4 = 4 cups
	updated := ApplyConsumption(recipe, []*entities.PantryItem{rice}, 8)
	require.Len(t, updated, 1)
	assert.InDelta(t, 2.0, updated[0].CurrentAmount, 1e-9)

	// input snapshot untouched
	assert.InDelta(t, 6.0, rice.CurrentAmount, 1e-9)
}

func TestApplyConsumptionClampsAtZero(t *testing.T) {
	milk := pantryItem("Milk", "ml", 100)
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 2,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Milk", Amount: 500, Unit: "ml"},
		},
	}

	updated := ApplyConsumption(recipe, []*entities.PantryItem{milk}, 2)
	assert.Zero(t, updated[0].CurrentAmount)
}

func TestApplyConsumptionRefusesUnitMismatch(t *testing.T) {
	butter := pantryItem("Butter", "g", 250)
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 2,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Butter", Amount: 2, Unit: "sticks"},
		},
	}

	updated := ApplyConsumption(recipe, []*entities.PantryItem{butter}, 2)
	assert.InDelta(t, 250.0, updated[0].CurrentAmount, 1e-9)
}

func TestApplyConsumptionSkipsOptional(t *testing.T) {
	scallions := pantryItem("Scallions", "items", 5)
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 2,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Scallions", Amount: 2, Unit: "items", Optional: true},
		},
	}

	updated := ApplyConsumption(recipe, []*entities.PantryItem{scallions}, 2)
	assert.InDelta(t, 5.0, updated[0].CurrentAmount, 1e-9)
}

func TestApplyConsumptionZeroServingsRecipe(t *testing.T) {
	rice := pantryItem("Rice", "cups", 6)
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 0,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Rice", Amount: 2, Unit: "cups"},
		},
	}

	updated := ApplyConsumption(recipe, []*entities.PantryItem{rice}, 4)
	assert.InDelta(t, 6.0, updated[0].CurrentAmount, 1e-9)
}

func TestApplyConsumptionDeductsEachItemOnce(t *testing.T) {
	// Two pantry items both overlap the same ingredient name; each is
	// matched and deducted independently, but only once apiece.
	chicken := pantryItem("Chicken Breast", "lbs", 3)
	thighs := pantryItem("Chicken Thighs", "lbs", 2)
	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 4,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Chicken", Amount: 1, Unit: "lbs"},
		},
	}

	updated := ApplyConsumption(recipe, []*entities.PantryItem{chicken, thighs}, 4)
	assert.InDelta(t, 2.0, updated[0].CurrentAmount, 1e-9)
	assert.InDelta(t, 1.0, updated[1].CurrentAmount, 1e-9)
}
