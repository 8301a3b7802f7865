package recipe

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/entities"
	"LemonRecipes-Backend/internal/utils/storage"
	"LemonRecipes-Backend/pkg/pantry"
	"LemonRecipes-Backend/pkg/stock"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter string) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id string) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pantryRepository pantry.PantryRepository
		awsS3            storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, pantryRepository pantry.PantryRepository, awsS3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		pantryRepository: pantryRepository,
		awsS3:            awsS3,
	}
}

func buildIngredients(reqs []domain.RecipeIngredientRequest) []entities.RecipeIngredient {
	ingredients := make([]entities.RecipeIngredient, 0, len(reqs))
	for _, ing := range reqs {
		ingredients = append(ingredients, entities.RecipeIngredient{
			Name:         ing.Name,
			Amount:       ing.Amount,
			Unit:         ing.Unit,
			PantryItemID: ing.PantryItemID,
			Optional:     ing.Optional,
		})
	}
	return ingredients
}

// annotate fills the derived availability fields against the current
// pantry contents.
func annotate(recipe *entities.Recipe, items []*entities.PantryItem) {
	result := stock.ComputeAvailability(recipe, items)
	recipe.CanMake = result.CanMake
	recipe.MissingIngredients = result.MissingIngredients
	recipe.IngredientAvailability = result.IngredientAvailability
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (*entities.Recipe, error) {
	if req.Servings <= 0 {
		return nil, domain.ErrInvalidServings
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		Title:           req.Title,
		Servings:        req.Servings,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Ingredients:     buildIngredients(req.Ingredients),
		Instructions:    req.Instructions,
		Tags:            req.Tags,
		CreatedBy:       req.CreatedBy,
	}

	if err := s.recipeRepository.AddRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	items, err := s.pantryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	annotate(recipe, items)
	return recipe, nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter string) ([]*entities.Recipe, error) {
	switch filter {
	case "", domain.RecipeFilterAll, domain.RecipeFilterCanMake, domain.RecipeFilterMissing:
	default:
		return nil, domain.ErrInvalidRecipeFilter
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.pantryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		annotate(recipe, items)
		switch filter {
		case domain.RecipeFilterCanMake:
			if !recipe.CanMake {
				continue
			}
		case domain.RecipeFilterMissing:
			if recipe.CanMake {
				continue
			}
		}
		filtered = append(filtered, recipe)
	}
	return filtered, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	items, err := s.pantryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	annotate(recipe, items)
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = *req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = *req.CookTimeMinutes
	}
	if len(req.Ingredients) > 0 {
		recipe.Ingredients = buildIngredients(req.Ingredients)
	}
	if len(req.Instructions) > 0 {
		recipe.Instructions = req.Instructions
	}
	if req.Tags != nil {
		recipe.Tags = req.Tags
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.ImageURL != "" {
		objectKey := s.awsS3.GetObjectKeyFromLink(recipe.ImageURL)
		if err := s.awsS3.DeleteFile(objectKey); err != nil {
			return err
		}
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	var objectKey string
	if recipe.ImageURL != "" {
		objectKey, err = s.awsS3.UpdateFile(s.awsS3.GetObjectKeyFromLink(recipe.ImageURL), req.Image, storage.AllowImage...)
	} else {
		fileName := fmt.Sprintf("recipe-%s", recipe.ID)
		objectKey, err = s.awsS3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	recipe.ImageURL = s.awsS3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}
