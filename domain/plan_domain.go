package domain

import (
	"errors"
)

var (
	MessageSuccessGetPlan      = "weekly plan retrieved successfully"
	MessageSuccessAddMeal      = "meal added to plan successfully"
	MessageSuccessRemoveMeal   = "meal removed from plan successfully"
	MessageSuccessCompleteMeal = "meal completion updated successfully"
	MessageSuccessGetPlanStats = "plan statistics retrieved successfully"

	MessageFailedGetPlan      = "failed to retrieve weekly plan"
	MessageFailedAddMeal      = "failed to add meal to plan"
	MessageFailedRemoveMeal   = "failed to remove meal from plan"
	MessageFailedCompleteMeal = "failed to update meal completion"
	MessageFailedGetPlanStats = "failed to retrieve plan statistics"

	ErrPlanNotFound    = errors.New("weekly plan not found")
	ErrMealNotFound    = errors.New("planned meal not found")
	ErrInvalidWeekDate = errors.New("week date must be an ISO date (YYYY-MM-DD)")
)

type (
	AddMealRequest struct {
		Day      string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
		MealType string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Servings int    `json:"servings" validate:"required,min=1"`
	}

	CompleteMealRequest struct {
		Completed   bool   `json:"completed"`
		CompletedBy string `json:"completed_by,omitempty"`
	}

	PlanStatsResponse struct {
		TotalMeals     int `json:"total_meals"`
		CompletedMeals int `json:"completed_meals"`
		UniqueRecipes  int `json:"unique_recipes"`
	}
)
