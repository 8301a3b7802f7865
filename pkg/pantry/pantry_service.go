package pantry

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/entities"
	"LemonRecipes-Backend/internal/utils"
	"LemonRecipes-Backend/internal/utils/mailing"
	"LemonRecipes-Backend/pkg/stock"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddCategory(ctx context.Context, req domain.AddCategoryRequest) (*entities.PantryCategory, error)
		GetPantry(ctx context.Context) ([]*entities.PantryCategory, error)

		AddItem(ctx context.Context, req domain.AddPantryItemRequest) (*entities.PantryItem, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) error
		AdjustAmount(ctx context.Context, id string, newAmount float64) (*entities.PantryItem, error)
		DeleteItem(ctx context.Context, id string) error

		GetLowStockItems(ctx context.Context) ([]*entities.PantryItem, error)
		GetStats(ctx context.Context) (domain.PantryStatsResponse, error)
		GetSummary(ctx context.Context) (domain.PantrySummaryResponse, error)

		ImportSnapshot(ctx context.Context, req domain.ImportSnapshotRequest) error
		ExportSnapshot(ctx context.Context) (domain.ExportSnapshotResponse, error)
		NotifyLowStock(ctx context.Context) error
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddCategory(ctx context.Context, req domain.AddCategoryRequest) (*entities.PantryCategory, error) {
	if existing, err := s.pantryRepository.GetCategoryByName(ctx, req.Name); err == nil && existing != nil {
		return nil, domain.ErrDuplicateCategory
	}

	category := &entities.PantryCategory{
		ID:    uuid.New(),
		Name:  req.Name,
		Emoji: req.Emoji,
	}
	if err := s.pantryRepository.AddCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *pantryService) GetPantry(ctx context.Context) ([]*entities.PantryCategory, error) {
	return s.pantryRepository.GetCategories(ctx)
}

func (s *pantryService) AddItem(ctx context.Context, req domain.AddPantryItemRequest) (*entities.PantryItem, error) {
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.pantryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryCategoryNotFound
		}
		return nil, err
	}

	amount := req.CurrentAmount
	if amount < 0 {
		amount = 0
	}

	item := &entities.PantryItem{
		ID:                 uuid.New(),
		CategoryID:         categoryUUID,
		Name:               strings.TrimSpace(req.Name),
		CurrentAmount:      amount,
		Unit:               req.Unit,
		MinBuyAmount:       req.MinBuyAmount,
		NormalRestockLevel: req.NormalRestockLevel,
		LowStockThreshold:  req.LowStockThreshold,
		AutoAddToShopping:  req.AutoAddToShopping,
		SeasonalMonths:     req.SeasonalMonths,
		PreferredStore:     req.PreferredStore,
		AddedBy:            req.AddedBy,
	}

	if err := s.pantryRepository.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *pantryService) UpdateItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) error {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if req.Name != "" {
		item.Name = strings.TrimSpace(req.Name)
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		if _, err := s.pantryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPantryCategoryNotFound
			}
			return err
		}
		item.CategoryID = categoryUUID
	}
	if req.MinBuyAmount != nil {
		item.MinBuyAmount = req.MinBuyAmount
	}
	if req.NormalRestockLevel != nil {
		item.NormalRestockLevel = req.NormalRestockLevel
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = req.LowStockThreshold
	}
	if req.AutoAddToShopping != nil {
		item.AutoAddToShopping = *req.AutoAddToShopping
	}
	if req.SeasonalMonths != nil {
		item.SeasonalMonths = req.SeasonalMonths
	}
	if req.PreferredStore != nil {
		item.PreferredStore = *req.PreferredStore
	}

	return s.pantryRepository.UpdateItem(ctx, item)
}

// AdjustAmount sets an item's amount, clamping negatives to zero
// rather than rejecting them.
func (s *pantryService) AdjustAmount(ctx context.Context, id string, newAmount float64) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if newAmount < 0 {
		newAmount = 0
	}
	item.CurrentAmount = newAmount

	if err := s.pantryRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *pantryService) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.pantryRepository.GetItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}
	return s.pantryRepository.DeleteItem(ctx, id)
}

func (s *pantryService) GetLowStockItems(ctx context.Context) ([]*entities.PantryItem, error) {
	items, err := s.pantryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	lowStock := make([]*entities.PantryItem, 0)
	for _, item := range items {
		if stock.IsLowStock(item) {
			lowStock = append(lowStock, item)
		}
	}
	return lowStock, nil
}

func (s *pantryService) GetStats(ctx context.Context) (domain.PantryStatsResponse, error) {
	categories, err := s.pantryRepository.GetCategories(ctx)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	stats := domain.PantryStatsResponse{}
	for _, category := range categories {
		if len(category.Items) > 0 {
			stats.Categories++
		}
		for _, item := range category.Items {
			stats.TotalItems++
			if stock.IsLowStock(item) {
				stats.LowStockCount++
			}
		}
	}
	return stats, nil
}

// GetSummary exports the household stock context: available
// ingredients with amounts, item names per category, and the low
// stock list.
func (s *pantryService) GetSummary(ctx context.Context) (domain.PantrySummaryResponse, error) {
	categories, err := s.pantryRepository.GetCategories(ctx)
	if err != nil {
		return domain.PantrySummaryResponse{}, err
	}

	summary := domain.PantrySummaryResponse{
		AvailableIngredients: make(map[string]domain.IngredientStock),
		Categories:           make(map[string][]string),
		LowStockItems:        []string{},
	}

	for _, category := range categories {
		names := make([]string, 0, len(category.Items))
		for _, item := range category.Items {
			names = append(names, item.Name)
			summary.AvailableIngredients[item.Name] = domain.IngredientStock{
				Amount: item.CurrentAmount,
				Unit:   item.Unit,
			}
			if stock.IsLowStock(item) {
				summary.LowStockItems = append(summary.LowStockItems, item.Name)
			}
		}
		summary.Categories[category.Name] = names
	}

	return summary, nil
}

func (s *pantryService) ImportSnapshot(ctx context.Context, req domain.ImportSnapshotRequest) error {
	categories := make([]*entities.PantryCategory, 0, len(req.Categories))
	for _, cat := range req.Categories {
		category := &entities.PantryCategory{
			ID:    uuid.New(),
			Name:  cat.Name,
			Emoji: cat.Emoji,
		}
		for _, it := range cat.Items {
			amount := it.CurrentAmount
			if amount < 0 {
				amount = 0
			}
			category.Items = append(category.Items, &entities.PantryItem{
				ID:                 uuid.New(),
				CategoryID:         category.ID,
				Name:               strings.TrimSpace(it.Name),
				CurrentAmount:      amount,
				Unit:               it.Unit,
				MinBuyAmount:       it.MinBuyAmount,
				NormalRestockLevel: it.NormalRestockLevel,
				LowStockThreshold:  it.LowStockThreshold,
				AutoAddToShopping:  it.AutoAddToShopping,
				SeasonalMonths:     it.SeasonalMonths,
				PreferredStore:     it.PreferredStore,
				AddedBy:            it.AddedBy,
			})
		}
		categories = append(categories, category)
	}

	return s.pantryRepository.ReplaceInventory(ctx, categories)
}

// ExportSnapshot serializes the whole inventory in the shape
// ImportSnapshot accepts, so an export can be re-imported as-is.
func (s *pantryService) ExportSnapshot(ctx context.Context) (domain.ExportSnapshotResponse, error) {
	categories, err := s.pantryRepository.GetCategories(ctx)
	if err != nil {
		return domain.ExportSnapshotResponse{}, err
	}

	snapshot := domain.ExportSnapshotResponse{
		Categories: make([]domain.SnapshotCategory, 0, len(categories)),
	}
	for _, category := range categories {
		cat := domain.SnapshotCategory{
			Name:  category.Name,
			Emoji: category.Emoji,
			Items: make([]domain.SnapshotItem, 0, len(category.Items)),
		}
		for _, item := range category.Items {
			cat.Items = append(cat.Items, domain.SnapshotItem{
				Name:               item.Name,
				CurrentAmount:      item.CurrentAmount,
				Unit:               item.Unit,
				MinBuyAmount:       item.MinBuyAmount,
				NormalRestockLevel: item.NormalRestockLevel,
				LowStockThreshold:  item.LowStockThreshold,
				AutoAddToShopping:  item.AutoAddToShopping,
				SeasonalMonths:     item.SeasonalMonths,
				PreferredStore:     item.PreferredStore,
				AddedBy:            item.AddedBy,
			})
		}
		snapshot.Categories = append(snapshot.Categories, cat)
	}

	return snapshot, nil
}

// NotifyLowStock emails the household a digest of everything running
// low, grouped by category.
func (s *pantryService) NotifyLowStock(ctx context.Context) error {
	recipient := utils.GetConfig("HOUSEHOLD_EMAIL")
	if recipient == "" {
		return domain.ErrNoRecipientConfigured
	}

	lowStock, err := s.GetLowStockItems(ctx)
	if err != nil {
		return err
	}
	if len(lowStock) == 0 {
		return domain.ErrNoLowStockItems
	}

	var body strings.Builder
	body.WriteString("<h2>Running low in the pantry</h2><ul>")
	for _, item := range lowStock {
		label := item.Name
		if name := item.CategoryName(); name != "" {
			label = fmt.Sprintf("%s (%s)", item.Name, name)
		}
		body.WriteString(fmt.Sprintf("<li>%s: %v %s left</li>", label, item.CurrentAmount, item.Unit))
	}
	body.WriteString("</ul>")

	subject := fmt.Sprintf("Pantry low stock digest: %d item(s)", len(lowStock))
	return mailing.SendMail(recipient, subject, body.String())
}
