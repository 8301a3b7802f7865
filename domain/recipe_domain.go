package domain

import (
	"errors"
	"mime/multipart"
)

const (
	RecipeFilterAll     = "all"
	RecipeFilterCanMake = "can-make"
	RecipeFilterMissing = "missing-ingredients"
)

var (
	MessageSuccessAddRecipe    = "recipe added successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessUploadImage  = "recipe image uploaded successfully"

	MessageFailedAddRecipe    = "failed to add recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedUploadImage  = "failed to upload recipe image"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrInvalidServings     = errors.New("servings must be positive")
	ErrInvalidRecipeFilter = errors.New("invalid recipe filter")
)

type (
	RecipeIngredientRequest struct {
		Name         string  `json:"name" validate:"required"`
		Amount       float64 `json:"amount" validate:"min=0"`
		Unit         string  `json:"unit" validate:"required"`
		PantryItemID *string `json:"pantry_item_id,omitempty" validate:"omitempty,uuid"`
		Optional     bool    `json:"optional"`
	}

	AddRecipeRequest struct {
		Title           string                    `json:"title" validate:"required"`
		Servings        int                       `json:"servings" validate:"required,min=1"`
		PrepTimeMinutes int                       `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes int                       `json:"cook_time_minutes" validate:"min=0"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		Instructions    []string                  `json:"instructions" validate:"required,min=1"`
		Tags            []string                  `json:"tags,omitempty"`
		CreatedBy       string                    `json:"created_by,omitempty"`
	}

	UpdateRecipeRequest struct {
		Title           string                    `json:"title" validate:"omitempty"`
		Servings        int                       `json:"servings" validate:"omitempty,min=1"`
		PrepTimeMinutes *int                      `json:"prep_time_minutes,omitempty" validate:"omitempty,min=0"`
		CookTimeMinutes *int                      `json:"cook_time_minutes,omitempty" validate:"omitempty,min=0"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients,omitempty" validate:"omitempty,min=1,dive"`
		Instructions    []string                  `json:"instructions,omitempty" validate:"omitempty,min=1"`
		Tags            []string                  `json:"tags,omitempty"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
