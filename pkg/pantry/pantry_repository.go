package pantry

import (
	"LemonRecipes-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddCategory(ctx context.Context, category *entities.PantryCategory) error
		GetCategories(ctx context.Context) ([]*entities.PantryCategory, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.PantryCategory, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.PantryCategory, error)

		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		GetItems(ctx context.Context) ([]*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		DeleteItem(ctx context.Context, id string) error

		ReplaceInventory(ctx context.Context, categories []*entities.PantryCategory) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddCategory(ctx context.Context, category *entities.PantryCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *pantryRepository) GetCategories(ctx context.Context) ([]*entities.PantryCategory, error) {
	var categories []*entities.PantryCategory
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *pantryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.PantryCategory, error) {
	var category entities.PantryCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *pantryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.PantryCategory, error) {
	var category entities.PantryCategory
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItems returns the full flattened inventory snapshot the core
// engines operate on, with categories preloaded. The order is fixed
// (category, then item) so ambiguous ingredient matches always resolve
// to the same item.
func (r *pantryRepository) GetItems(ctx context.Context) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("LEFT JOIN pantry_categories ON pantry_categories.id = pantry_items.category_id").
		Order("pantry_categories.name asc, pantry_items.name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

// ReplaceInventory swaps the entire inventory for an externally
// provided snapshot in one transaction. This is the single merge point
// for any synchronization layer: last write wins at snapshot level.
func (r *pantryRepository) ReplaceInventory(ctx context.Context, categories []*entities.PantryCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.PantryItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entities.PantryCategory{}).Error; err != nil {
			return err
		}
		for _, category := range categories {
			if err := tx.Create(category).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
