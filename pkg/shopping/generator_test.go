package shopping

import (
	"LemonRecipes-Backend/entities"
	"LemonRecipes-Backend/pkg/stock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func testPantryItem(name, unit string, amount float64) *entities.PantryItem {
	return &entities.PantryItem{
		ID:            uuid.New(),
		Name:          name,
		Unit:          unit,
		CurrentAmount: amount,
	}
}

func testRecipe(title string, servings int, ingredients ...entities.RecipeIngredient) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Title:       title,
		Servings:    servings,
		Ingredients: ingredients,
	}
}

func testPlan(meals ...*entities.PlannedMeal) *entities.WeeklyPlan {
	return &entities.WeeklyPlan{
		ID:     uuid.New(),
		WeekOf: "2026-08-31",
		Meals:  meals,
	}
}

func meal(recipeID uuid.UUID, servings int) *entities.PlannedMeal {
	return &entities.PlannedMeal{
		ID:       uuid.New(),
		RecipeID: recipeID,
		Servings: servings,
	}
}

func findItem(list []*entities.ShoppingItem, name string) *entities.ShoppingItem {
	for _, item := range list {
		if item.Name == name {
			return item
		}
	}
	return nil
}

func TestGenerateItemsAggregatesAcrossMeals(t *testing.T) {
	// Two meals of the same 2-serving recipe, at 2 and 4 servings,
	// demand 1.5 * (1 + 2) = 4.5 cups of rice in total.
	rice := entities.RecipeIngredient{Name: "Rice", Amount: 1.5, Unit: "cups"}
	r := testRecipe("Fried Rice", 2, rice)
	plan := testPlan(meal(r.ID, 2), meal(r.ID, 4))

	list := GenerateItems(plan, []*entities.Recipe{r}, nil)
	require.Len(t, list, 1)
	assert.InDelta(t, 4.5, list[0].Amount, 1e-9)
	assert.Equal(t, []string{"Fried Rice", "Fried Rice"}, list[0].NeededFor)
}

func TestGenerateItemsNetsAgainstStock(t *testing.T) {
	rice := testPantryItem("Rice", "cups", 3)
	r := testRecipe("Fried Rice", 2, entities.RecipeIngredient{Name: "Rice", Amount: 2, Unit: "cups"})
	plan := testPlan(meal(r.ID, 4))

	// demand 4 cups, have 3: buy 1
	list := GenerateItems(plan, []*entities.Recipe{r}, []*entities.PantryItem{rice})
	require.Len(t, list, 1)
	assert.InDelta(t, 1.0, list[0].Amount, 1e-9)
	require.NotNil(t, list[0].PantryItemID)
	assert.Equal(t, rice.ID.String(), *list[0].PantryItemID)
}

func TestGenerateItemsSkipsCoveredDemand(t *testing.T) {
	rice := testPantryItem("Rice", "cups", 10)
	r := testRecipe("Fried Rice", 2, entities.RecipeIngredient{Name: "Rice", Amount: 2, Unit: "cups"})
	plan := testPlan(meal(r.ID, 2))

	list := GenerateItems(plan, []*entities.Recipe{r}, []*entities.PantryItem{rice})
	assert.Empty(t, list)
}

func TestGenerateItemsMinBuyAmountRoundsUp(t *testing.T) {
	eggs := testPantryItem("Eggs", "items", 10)
	eggs.MinBuyAmount = floatPtr(12)
	r := testRecipe("Omelette", 2, entities.RecipeIngredient{Name: "Eggs", Amount: 12, Unit: "items"})
	plan := testPlan(meal(r.ID, 2))

	// shortfall is 2 but eggs come by the dozen
	list := GenerateItems(plan, []*entities.Recipe{r}, []*entities.PantryItem{eggs})
	require.Len(t, list, 1)
	assert.InDelta(t, 12.0, list[0].Amount, 1e-9)
}

func TestGenerateItemsUnitMismatchBuysFullDemand(t *testing.T) {
	butter := testPantryItem("Butter", "g", 500)
	r := testRecipe("Toast", 2, entities.RecipeIngredient{Name: "Butter", Amount: 2, Unit: "sticks"})
	plan := testPlan(meal(r.ID, 2))

	// grams cannot offset sticks, full demand goes on the list
	list := GenerateItems(plan, []*entities.Recipe{r}, []*entities.PantryItem{butter})
	require.Len(t, list, 1)
	assert.InDelta(t, 2.0, list[0].Amount, 1e-9)
	assert.Equal(t, "sticks", list[0].Unit)
}

func TestGenerateItemsRoundsUpToTwoDecimals(t *testing.T) {
	r := testRecipe("Sauce", 3, entities.RecipeIngredient{Name: "Cream", Amount: 1, Unit: "cups"})
	plan := testPlan(meal(r.ID, 1))

	// 1/3 cup becomes 0.34, never 0.33
	list := GenerateItems(plan, []*entities.Recipe{r}, nil)
	require.Len(t, list, 1)
	assert.InDelta(t, 0.34, list[0].Amount, 1e-9)
}

func TestGenerateItemsSeparatesUnits(t *testing.T) {
	r := testRecipe("Mixed", 2,
		entities.RecipeIngredient{Name: "Milk", Amount: 200, Unit: "ml"},
		entities.RecipeIngredient{Name: "Milk", Amount: 1, Unit: "cups"},
	)
	plan := testPlan(meal(r.ID, 2))

	list := GenerateItems(plan, []*entities.Recipe{r}, nil)
	assert.Len(t, list, 2)
}

func TestGenerateItemsSkipsDeletedRecipe(t *testing.T) {
	plan := testPlan(meal(uuid.New(), 2))
	list := GenerateItems(plan, nil, nil)
	assert.Empty(t, list)
}

func TestGenerateItemsAutoRestock(t *testing.T) {
	oil := testPantryItem("Olive Oil", "ml", 40)
	oil.AutoAddToShopping = true
	oil.NormalRestockLevel = floatPtr(750)

	plan := testPlan()
	list := GenerateItems(plan, nil, []*entities.PantryItem{oil})
	require.Len(t, list, 1)
	assert.Equal(t, "Olive Oil", list[0].Name)
	assert.InDelta(t, 750.0, list[0].Amount, 1e-9)
	assert.Equal(t, []string{"Low Stock Restock"}, list[0].NeededFor)
}

func TestGenerateItemsAutoRestockNotDuplicated(t *testing.T) {
	oil := testPantryItem("Olive Oil", "ml", 40)
	oil.AutoAddToShopping = true

	r := testRecipe("Dressing", 2, entities.RecipeIngredient{Name: "Olive Oil", Amount: 100, Unit: "ml"})
	plan := testPlan(meal(r.ID, 2))

	list := GenerateItems(plan, []*entities.Recipe{r}, []*entities.PantryItem{oil})
	require.Len(t, list, 1)
	assert.NotContains(t, list[0].NeededFor, "Low Stock Restock")
}

func TestGenerateItemsAutoRestockSkipsWellStocked(t *testing.T) {
	oil := testPantryItem("Olive Oil", "ml", 800)
	oil.AutoAddToShopping = true

	list := GenerateItems(testPlan(), nil, []*entities.PantryItem{oil})
	assert.Empty(t, list)
}

func TestGenerateItemsSortedByCategory(t *testing.T) {
	r := testRecipe("Dinner", 2,
		entities.RecipeIngredient{Name: "Chicken Breast", Amount: 1, Unit: "lbs"},
		entities.RecipeIngredient{Name: "Milk", Amount: 1, Unit: "cups"},
		entities.RecipeIngredient{Name: "Onion", Amount: 2, Unit: "items"},
	)
	plan := testPlan(meal(r.ID, 2))

	list := GenerateItems(plan, []*entities.Recipe{r}, nil)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Category, list[i].Category)
	}
}

func TestReconcileChecked(t *testing.T) {
	now := time.Now()
	previous := []*entities.ShoppingItem{
		{Name: "Rice", Unit: "cups", Checked: true, CheckedBy: "amaya", CheckedAt: &now},
		{Name: "Milk", Unit: "ml", Checked: false},
	}
	fresh := []*entities.ShoppingItem{
		{Name: "rice", Unit: "cups"},
		{Name: "Milk", Unit: "ml"},
		{Name: "Rice", Unit: "lbs"},
	}

	ReconcileChecked(fresh, previous)

	assert.True(t, fresh[0].Checked)
	assert.Equal(t, "amaya", fresh[0].CheckedBy)
	assert.False(t, fresh[1].Checked)
	// same name, different unit: a different line item
	assert.False(t, fresh[2].Checked)
}

func TestCategorizeIngredient(t *testing.T) {
	cases := map[string]string{
		"Chicken Breast": "proteins",
		"Whole Milk":     "dairy",
		"Roma Tomatoes":  "vegetables",
		"Lemon":          "fruits",
		"Jasmine Rice":   "grains",
		"Olive Oil":      "oils",
		"Garlic Powder":  "spices",
		"Corn Starch":    "pantry",
	}
	for name, want := range cases {
		assert.Equal(t, want, categorizeIngredient(name), name)
	}
}

func TestItemCategoryPrefersPantryCategory(t *testing.T) {
	item := testPantryItem("Milk", "ml", 500)
	item.Category = &entities.PantryCategory{Name: "Fridge"}
	assert.Equal(t, "Fridge", itemCategory(item))

	item.Category = nil
	assert.Equal(t, "dairy", itemCategory(item))
}

func TestWeekOfStirFry(t *testing.T) {
	onions := testPantryItem("Onions", "items", 7)
	stirFry := testRecipe("Stir Fry", 4, entities.RecipeIngredient{Name: "Onions", Amount: 1, Unit: "items"})

	availability := stock.ComputeAvailability(stirFry, []*entities.PantryItem{onions})
	require.True(t, availability.CanMake)

	// cook it at 4 servings: one onion gone
	after := stock.ApplyConsumption(stirFry, []*entities.PantryItem{onions}, 4)
	require.InDelta(t, 6.0, after[0].CurrentAmount, 1e-9)

	// plan a second round at 8 servings: 2 onions needed, 6 on hand
	plan := testPlan(meal(stirFry.ID, 8))
	availability = stock.ComputeAvailability(stirFry, after)
	assert.True(t, availability.CanMake)

	list := GenerateItems(plan, []*entities.Recipe{stirFry}, after)
	assert.Empty(t, list)
}
