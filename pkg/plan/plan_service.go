package plan

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/entities"
	"LemonRecipes-Backend/pkg/pantry"
	"LemonRecipes-Backend/pkg/recipe"
	"LemonRecipes-Backend/pkg/stock"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const isoDateLayout = "2006-01-02"

type (
	PlanService interface {
		GetPlanForWeek(ctx context.Context, weekOf string) (*entities.WeeklyPlan, error)
		AddMeal(ctx context.Context, weekOf string, req domain.AddMealRequest) (*entities.PlannedMeal, error)
		RemoveMeal(ctx context.Context, mealID string) error
		CompleteMeal(ctx context.Context, mealID string, req domain.CompleteMealRequest) (*entities.PlannedMeal, error)
		GetStats(ctx context.Context, weekOf string) (domain.PlanStatsResponse, error)
	}

	planService struct {
		planRepository   PlanRepository
		recipeRepository recipe.RecipeRepository
		pantryRepository pantry.PantryRepository
	}
)

func NewPlanService(planRepository PlanRepository, recipeRepository recipe.RecipeRepository, pantryRepository pantry.PantryRepository) PlanService {
	return &planService{
		planRepository:   planRepository,
		recipeRepository: recipeRepository,
		pantryRepository: pantryRepository,
	}
}

// WeekKey normalizes a date to the ISO date of its week's Monday.
// An empty input means the current week.
func WeekKey(weekOf string) (string, error) {
	t := time.Now()
	if weekOf != "" {
		parsed, err := time.Parse(isoDateLayout, weekOf)
		if err != nil {
			return "", domain.ErrInvalidWeekDate
		}
		t = parsed
	}
	monday := t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
	return monday.Format(isoDateLayout), nil
}

// GetPlanForWeek returns the plan for the given week, creating an
// empty one on first access.
func (s *planService) GetPlanForWeek(ctx context.Context, weekOf string) (*entities.WeeklyPlan, error) {
	key, err := WeekKey(weekOf)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepository.GetPlanByWeek(ctx, key)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan = &entities.WeeklyPlan{
		ID:     uuid.New(),
		WeekOf: key,
		Status: "draft",
		Meals:  []*entities.PlannedMeal{},
	}
	if err := s.planRepository.AddPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) AddMeal(ctx context.Context, weekOf string, req domain.AddMealRequest) (*entities.PlannedMeal, error) {
	plan, err := s.GetPlanForWeek(ctx, weekOf)
	if err != nil {
		return nil, err
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	meal := &entities.PlannedMeal{
		ID:          uuid.New(),
		PlanID:      plan.ID,
		Day:         req.Day,
		MealType:    req.MealType,
		RecipeID:    recipeUUID,
		RecipeTitle: rec.Title,
		Servings:    req.Servings,
	}
	if err := s.planRepository.AddMeal(ctx, meal); err != nil {
		return nil, err
	}

	if plan.Status == "draft" {
		plan.Status = "active"
		if err := s.planRepository.UpdatePlan(ctx, plan); err != nil {
			return nil, err
		}
	}

	return meal, nil
}

func (s *planService) RemoveMeal(ctx context.Context, mealID string) error {
	if _, err := s.planRepository.GetMealByID(ctx, mealID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}
	return s.planRepository.DeleteMeal(ctx, mealID)
}

// CompleteMeal toggles a meal's completed flag. Pantry stock is
// consumed only on the transition from not-completed to completed;
// un-completing a meal never restocks.
func (s *planService) CompleteMeal(ctx context.Context, mealID string, req domain.CompleteMealRequest) (*entities.PlannedMeal, error) {
	meal, err := s.planRepository.GetMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}

	// Deduct stock before marking the meal done: if the deduction fails
	// the meal stays not-completed and a retry consumes again.
	if req.Completed && !meal.Completed {
		if err := s.consumeStock(ctx, meal); err != nil {
			return nil, err
		}
	}

	meal.Completed = req.Completed
	if req.Completed {
		meal.CompletedBy = req.CompletedBy
		now := time.Now()
		meal.CompletedAt = &now
	} else {
		meal.CompletedBy = ""
		meal.CompletedAt = nil
	}

	if err := s.planRepository.UpdateMeal(ctx, meal); err != nil {
		return nil, err
	}

	return meal, nil
}

func (s *planService) consumeStock(ctx context.Context, meal *entities.PlannedMeal) error {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, meal.RecipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Recipe deleted since planning; nothing to deduct.
			return nil
		}
		return err
	}

	items, err := s.pantryRepository.GetItems(ctx)
	if err != nil {
		return err
	}

	updated := stock.ApplyConsumption(rec, items, meal.Servings)
	for i, item := range updated {
		if item.CurrentAmount == items[i].CurrentAmount {
			continue
		}
		if err := s.pantryRepository.UpdateItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *planService) GetStats(ctx context.Context, weekOf string) (domain.PlanStatsResponse, error) {
	plan, err := s.GetPlanForWeek(ctx, weekOf)
	if err != nil {
		return domain.PlanStatsResponse{}, err
	}

	stats := domain.PlanStatsResponse{}
	seen := make(map[uuid.UUID]struct{})
	for _, meal := range plan.Meals {
		stats.TotalMeals++
		if meal.Completed {
			stats.CompletedMeals++
		}
		if _, ok := seen[meal.RecipeID]; !ok {
			seen[meal.RecipeID] = struct{}{}
			stats.UniqueRecipes++
		}
	}
	return stats, nil
}
