package domain

import (
	"errors"
)

var (
	MessageSuccessGetShoppingList  = "shopping list retrieved successfully"
	MessageSuccessCheckItem        = "shopping item check state updated successfully"
	MessageSuccessAddShoppingItem  = "shopping item added successfully"
	MessageSuccessRemoveItem       = "shopping item removed successfully"
	MessageSuccessClearChecked     = "checked items cleared successfully"
	MessageSuccessGetShoppingStats = "shopping statistics retrieved successfully"

	MessageFailedGetShoppingList  = "failed to retrieve shopping list"
	MessageFailedCheckItem        = "failed to update shopping item check state"
	MessageFailedAddShoppingItem  = "failed to add shopping item"
	MessageFailedRemoveItem       = "failed to remove shopping item"
	MessageFailedClearChecked     = "failed to clear checked items"
	MessageFailedGetShoppingStats = "failed to retrieve shopping statistics"

	ErrShoppingListNotFound = errors.New("shopping list not found")
	ErrShoppingItemNotFound = errors.New("shopping item not found")
)

type (
	CheckItemRequest struct {
		Checked   bool   `json:"checked"`
		CheckedBy string `json:"checked_by,omitempty"`
	}

	AddShoppingItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Amount   float64 `json:"amount" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required"`
		Category string  `json:"category" validate:"required"`
	}

	ShoppingStatsResponse struct {
		TotalItems   int `json:"total_items"`
		CheckedItems int `json:"checked_items"`
		Categories   int `json:"categories"`
		Progress     int `json:"progress"` // percent of items checked
	}
)
