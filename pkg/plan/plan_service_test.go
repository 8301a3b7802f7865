package plan

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubPlanRepository struct {
	plans []*entities.WeeklyPlan
	meals []*entities.PlannedMeal
}

func (s *stubPlanRepository) AddPlan(_ context.Context, plan *entities.WeeklyPlan) error {
	s.plans = append(s.plans, plan)
	return nil
}

func (s *stubPlanRepository) GetPlanByWeek(_ context.Context, weekOf string) (*entities.WeeklyPlan, error) {
	for _, p := range s.plans {
		if p.WeekOf == weekOf {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPlanRepository) UpdatePlan(_ context.Context, _ *entities.WeeklyPlan) error {
	return nil
}

func (s *stubPlanRepository) AddMeal(_ context.Context, meal *entities.PlannedMeal) error {
	s.meals = append(s.meals, meal)
	return nil
}

func (s *stubPlanRepository) GetMealByID(_ context.Context, id string) (*entities.PlannedMeal, error) {
	for _, m := range s.meals {
		if m.ID.String() == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPlanRepository) UpdateMeal(_ context.Context, _ *entities.PlannedMeal) error {
	return nil
}

func (s *stubPlanRepository) DeleteMeal(_ context.Context, id string) error {
	for i, m := range s.meals {
		if m.ID.String() == id {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubRecipeRepository struct {
	recipes []*entities.Recipe
}

func (s *stubRecipeRepository) AddRecipe(_ context.Context, recipe *entities.Recipe) error {
	s.recipes = append(s.recipes, recipe)
	return nil
}

func (s *stubRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	return s.recipes, nil
}

func (s *stubRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	for _, r := range s.recipes {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRecipeRepository) UpdateRecipe(_ context.Context, _ *entities.Recipe) error {
	return nil
}

func (s *stubRecipeRepository) DeleteRecipe(_ context.Context, _ string) error {
	return nil
}

type stubPantryRepository struct {
	items     []*entities.PantryItem
	updated   []*entities.PantryItem
	updateErr error
}

func (s *stubPantryRepository) AddCategory(_ context.Context, _ *entities.PantryCategory) error {
	return nil
}

func (s *stubPantryRepository) GetCategories(_ context.Context) ([]*entities.PantryCategory, error) {
	return nil, nil
}

func (s *stubPantryRepository) GetCategoryByID(_ context.Context, _ string) (*entities.PantryCategory, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPantryRepository) GetCategoryByName(_ context.Context, _ string) (*entities.PantryCategory, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPantryRepository) AddItem(_ context.Context, _ *entities.PantryItem) error {
	return nil
}

func (s *stubPantryRepository) GetItemByID(_ context.Context, _ string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPantryRepository) GetItems(_ context.Context) ([]*entities.PantryItem, error) {
	return s.items, nil
}

func (s *stubPantryRepository) UpdateItem(_ context.Context, item *entities.PantryItem) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, item)
	return nil
}

func (s *stubPantryRepository) DeleteItem(_ context.Context, _ string) error {
	return nil
}

func (s *stubPantryRepository) ReplaceInventory(_ context.Context, _ []*entities.PantryCategory) error {
	return nil
}

func newTestService() (PlanService, *stubPlanRepository, *stubRecipeRepository, *stubPantryRepository) {
	planRepo := &stubPlanRepository{}
	recipeRepo := &stubRecipeRepository{}
	pantryRepo := &stubPantryRepository{}
	return NewPlanService(planRepo, recipeRepo, pantryRepo), planRepo, recipeRepo, pantryRepo
}

func TestWeekKey(t *testing.T) {
	// 2026-08-31 is a Monday
	key, err := WeekKey("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", key)

	key, err = WeekKey("2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", key)

	key, err = WeekKey("2026-09-06")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", key)

	_, err = WeekKey("not-a-date")
	assert.ErrorIs(t, err, domain.ErrInvalidWeekDate)
}

func TestGetPlanForWeekCreatesOnFirstAccess(t *testing.T) {
	service, planRepo, _, _ := newTestService()

	plan, err := service.GetPlanForWeek(context.Background(), "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", plan.WeekOf)
	assert.Equal(t, "draft", plan.Status)
	require.Len(t, planRepo.plans, 1)

	again, err := service.GetPlanForWeek(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, plan.ID, again.ID)
	assert.Len(t, planRepo.plans, 1)
}

func TestAddMealSnapshotsRecipeTitle(t *testing.T) {
	service, planRepo, recipeRepo, _ := newTestService()
	recipe := &entities.Recipe{ID: uuid.New(), Title: "Fried Rice", Servings: 2}
	recipeRepo.recipes = append(recipeRepo.recipes, recipe)

	meal, err := service.AddMeal(context.Background(), "2026-08-31", domain.AddMealRequest{
		Day:      "tuesday",
		MealType: "dinner",
		RecipeID: recipe.ID.String(),
		Servings: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fried Rice", meal.RecipeTitle)
	assert.Equal(t, planRepo.plans[0].ID, meal.PlanID)
	assert.Equal(t, "active", planRepo.plans[0].Status)
}

func TestAddMealUnknownRecipe(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.AddMeal(context.Background(), "2026-08-31", domain.AddMealRequest{
		Day:      "tuesday",
		MealType: "dinner",
		RecipeID: uuid.New().String(),
		Servings: 2,
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCompleteMealConsumesStockOnce(t *testing.T) {
	service, planRepo, recipeRepo, pantryRepo := newTestService()

	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Title:    "Fried Rice",
		Servings: 2,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Rice", Amount: 2, Unit: "cups"},
		},
	}
	recipeRepo.recipes = append(recipeRepo.recipes, recipe)
	pantryRepo.items = []*entities.PantryItem{
		{ID: uuid.New(), Name: "Rice", Unit: "cups", CurrentAmount: 6},
	}

	meal := &entities.PlannedMeal{
		ID:       uuid.New(),
		RecipeID: recipe.ID,
		Servings: 2,
	}
	planRepo.meals = append(planRepo.meals, meal)

	done, err := service.CompleteMeal(context.Background(), meal.ID.String(), domain.CompleteMealRequest{
		Completed:   true,
		CompletedBy: "amaya",
	})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.NotNil(t, done.CompletedAt)
	require.Len(t, pantryRepo.updated, 1)
	assert.InDelta(t, 4.0, pantryRepo.updated[0].CurrentAmount, 1e-9)

	// completing an already-completed meal must not deduct again
	_, err = service.CompleteMeal(context.Background(), meal.ID.String(), domain.CompleteMealRequest{
		Completed: true,
	})
	require.NoError(t, err)
	assert.Len(t, pantryRepo.updated, 1)
}

func TestCompleteMealFailedDeductionLeavesMealRetryable(t *testing.T) {
	service, planRepo, recipeRepo, pantryRepo := newTestService()

	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 2,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Rice", Amount: 2, Unit: "cups"},
		},
	}
	recipeRepo.recipes = append(recipeRepo.recipes, recipe)
	pantryRepo.items = []*entities.PantryItem{
		{ID: uuid.New(), Name: "Rice", Unit: "cups", CurrentAmount: 6},
	}
	pantryRepo.updateErr = gorm.ErrInvalidTransaction

	meal := &entities.PlannedMeal{
		ID:       uuid.New(),
		RecipeID: recipe.ID,
		Servings: 2,
	}
	planRepo.meals = append(planRepo.meals, meal)

	_, err := service.CompleteMeal(context.Background(), meal.ID.String(), domain.CompleteMealRequest{
		Completed: true,
	})
	require.Error(t, err)
	assert.False(t, meal.Completed)

	// retry after the pantry recovers still deducts
	pantryRepo.updateErr = nil
	done, err := service.CompleteMeal(context.Background(), meal.ID.String(), domain.CompleteMealRequest{
		Completed: true,
	})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.Len(t, pantryRepo.updated, 1)
	assert.InDelta(t, 4.0, pantryRepo.updated[0].CurrentAmount, 1e-9)
}

func TestUncompleteMealNeverRestocks(t *testing.T) {
	service, planRepo, recipeRepo, pantryRepo := newTestService()

	recipe := &entities.Recipe{
		ID:       uuid.New(),
		Servings: 2,
		Ingredients: []entities.RecipeIngredient{
			{Name: "Rice", Amount: 2, Unit: "cups"},
		},
	}
	recipeRepo.recipes = append(recipeRepo.recipes, recipe)

	meal := &entities.PlannedMeal{
		ID:        uuid.New(),
		RecipeID:  recipe.ID,
		Servings:  2,
		Completed: true,
	}
	planRepo.meals = append(planRepo.meals, meal)

	undone, err := service.CompleteMeal(context.Background(), meal.ID.String(), domain.CompleteMealRequest{
		Completed: false,
	})
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
	assert.Empty(t, pantryRepo.updated)
}

func TestCompleteMealDeletedRecipe(t *testing.T) {
	service, planRepo, _, pantryRepo := newTestService()

	meal := &entities.PlannedMeal{
		ID:       uuid.New(),
		RecipeID: uuid.New(),
		Servings: 2,
	}
	planRepo.meals = append(planRepo.meals, meal)

	done, err := service.CompleteMeal(context.Background(), meal.ID.String(), domain.CompleteMealRequest{
		Completed: true,
	})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Empty(t, pantryRepo.updated)
}

func TestGetStats(t *testing.T) {
	service, planRepo, _, _ := newTestService()
	recipeID := uuid.New()
	planRepo.plans = append(planRepo.plans, &entities.WeeklyPlan{
		ID:     uuid.New(),
		WeekOf: "2026-08-31",
		Meals: []*entities.PlannedMeal{
			{ID: uuid.New(), RecipeID: recipeID, Completed: true},
			{ID: uuid.New(), RecipeID: recipeID},
			{ID: uuid.New(), RecipeID: uuid.New()},
		},
	})

	stats, err := service.GetStats(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMeals)
	assert.Equal(t, 1, stats.CompletedMeals)
	assert.Equal(t, 2, stats.UniqueRecipes)
}
