package shopping

import (
	"LemonRecipes-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetListByWeek(ctx context.Context, weekOf string) (*entities.ShoppingList, error)
		ReplaceList(ctx context.Context, list *entities.ShoppingList) error

		AddItem(ctx context.Context, item *entities.ShoppingItem) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error)
		UpdateItem(ctx context.Context, item *entities.ShoppingItem) error
		DeleteItem(ctx context.Context, id string) error
		DeleteCheckedItems(ctx context.Context, listID string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetListByWeek(ctx context.Context, weekOf string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("category asc, name asc")
		}).
		Where("week_of = ?", weekOf).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// ReplaceList swaps out the stored list for a week in one
// transaction, so a fetch never sees a half-regenerated list.
func (r *shoppingRepository) ReplaceList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.ShoppingList
		err := tx.Where("week_of = ?", list.WeekOf).First(&existing).Error
		if err == nil {
			if err := tx.Where("list_id = ?", existing.ID).Delete(&entities.ShoppingItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Create(list).Error
	})
}

func (r *shoppingRepository) AddItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entities.ShoppingItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingItem{}).Error
}

func (r *shoppingRepository) DeleteCheckedItems(ctx context.Context, listID string) error {
	return r.db.WithContext(ctx).
		Where("list_id = ? AND checked = ?", listID, true).
		Delete(&entities.ShoppingItem{}).Error
}
