package shopping

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/entities"
	"LemonRecipes-Backend/pkg/pantry"
	"LemonRecipes-Backend/pkg/plan"
	"LemonRecipes-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingService interface {
		GetList(ctx context.Context, weekOf string) (*entities.ShoppingList, error)
		CheckItem(ctx context.Context, itemID string, req domain.CheckItemRequest) (*entities.ShoppingItem, error)
		AddCustomItem(ctx context.Context, weekOf string, req domain.AddShoppingItemRequest) (*entities.ShoppingItem, error)
		RemoveItem(ctx context.Context, itemID string) error
		ClearChecked(ctx context.Context, weekOf string) error
		GetStats(ctx context.Context, weekOf string) (domain.ShoppingStatsResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		planService        plan.PlanService
		recipeRepository   recipe.RecipeRepository
		pantryRepository   pantry.PantryRepository
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, planService plan.PlanService, recipeRepository recipe.RecipeRepository, pantryRepository pantry.PantryRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		planService:        planService,
		recipeRepository:   recipeRepository,
		pantryRepository:   pantryRepository,
	}
}

// GetList regenerates the week's shopping list from the plan, the
// recipes and the current pantry, then folds back what the stored list
// knows that a regeneration cannot: checked state and hand-added
// items.
func (s *shoppingService) GetList(ctx context.Context, weekOf string) (*entities.ShoppingList, error) {
	weeklyPlan, err := s.planService.GetPlanForWeek(ctx, weekOf)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	pantryItems, err := s.pantryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	fresh := GenerateItems(weeklyPlan, recipes, pantryItems)

	previous, err := s.shoppingRepository.GetListByWeek(ctx, weeklyPlan.WeekOf)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if previous != nil {
		ReconcileChecked(fresh, previous.Items)
		for _, item := range previous.Items {
			if item.Custom {
				fresh = append(fresh, item)
			}
		}
	}

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		PlanID:      weeklyPlan.ID,
		WeekOf:      weeklyPlan.WeekOf,
		GeneratedAt: time.Now(),
		Items:       fresh,
	}
	for _, item := range fresh {
		item.ListID = list.ID
		item.List = nil
	}

	if err := s.shoppingRepository.ReplaceList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *shoppingService) CheckItem(ctx context.Context, itemID string, req domain.CheckItemRequest) (*entities.ShoppingItem, error) {
	item, err := s.shoppingRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, err
	}

	item.Checked = req.Checked
	if req.Checked {
		item.CheckedBy = req.CheckedBy
		now := time.Now()
		item.CheckedAt = &now
	} else {
		item.CheckedBy = ""
		item.CheckedAt = nil
	}

	if err := s.shoppingRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shoppingService) AddCustomItem(ctx context.Context, weekOf string, req domain.AddShoppingItemRequest) (*entities.ShoppingItem, error) {
	list, err := s.GetList(ctx, weekOf)
	if err != nil {
		return nil, err
	}

	item := &entities.ShoppingItem{
		ID:       uuid.New(),
		ListID:   list.ID,
		Name:     req.Name,
		Amount:   req.Amount,
		Unit:     req.Unit,
		Category: req.Category,
		Custom:   true,
	}
	if err := s.shoppingRepository.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shoppingService) RemoveItem(ctx context.Context, itemID string) error {
	if _, err := s.shoppingRepository.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingItemNotFound
		}
		return err
	}
	return s.shoppingRepository.DeleteItem(ctx, itemID)
}

func (s *shoppingService) ClearChecked(ctx context.Context, weekOf string) error {
	key, err := plan.WeekKey(weekOf)
	if err != nil {
		return err
	}
	list, err := s.shoppingRepository.GetListByWeek(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrShoppingListNotFound
		}
		return err
	}
	return s.shoppingRepository.DeleteCheckedItems(ctx, list.ID.String())
}

func (s *shoppingService) GetStats(ctx context.Context, weekOf string) (domain.ShoppingStatsResponse, error) {
	list, err := s.GetList(ctx, weekOf)
	if err != nil {
		return domain.ShoppingStatsResponse{}, err
	}

	stats := domain.ShoppingStatsResponse{}
	categories := make(map[string]struct{})
	for _, item := range list.Items {
		stats.TotalItems++
		if item.Checked {
			stats.CheckedItems++
		}
		categories[item.Category] = struct{}{}
	}
	stats.Categories = len(categories)
	if stats.TotalItems > 0 {
		stats.Progress = stats.CheckedItems * 100 / stats.TotalItems
	}
	return stats, nil
}
