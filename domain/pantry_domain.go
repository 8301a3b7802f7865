package domain

import (
	"errors"
)

var (
	MessageSuccessAddPantryItem     = "pantry item added successfully"
	MessageSuccessUpdatePantryItem  = "pantry item updated successfully"
	MessageSuccessAdjustAmount      = "pantry item amount adjusted successfully"
	MessageSuccessDeletePantryItem  = "pantry item deleted successfully"
	MessageSuccessGetPantry         = "pantry retrieved successfully"
	MessageSuccessAddCategory       = "pantry category added successfully"
	MessageSuccessGetLowStock       = "low stock items retrieved successfully"
	MessageSuccessGetPantryStats    = "pantry statistics retrieved successfully"
	MessageSuccessGetSummary        = "pantry summary retrieved successfully"
	MessageSuccessImportSnapshot    = "pantry snapshot imported successfully"
	MessageSuccessExportSnapshot    = "pantry snapshot exported successfully"
	MessageSuccessNotifyLowStock    = "low stock digest sent successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedAdjustAmount     = "failed to adjust pantry item amount"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantry        = "failed to retrieve pantry"
	MessageFailedAddCategory      = "failed to add pantry category"
	MessageFailedGetLowStock      = "failed to retrieve low stock items"
	MessageFailedGetPantryStats   = "failed to retrieve pantry statistics"
	MessageFailedGetSummary       = "failed to retrieve pantry summary"
	MessageFailedImportSnapshot   = "failed to import pantry snapshot"
	MessageFailedExportSnapshot   = "failed to export pantry snapshot"
	MessageFailedNotifyLowStock   = "failed to send low stock digest"

	ErrPantryItemNotFound     = errors.New("pantry item not found")
	ErrPantryCategoryNotFound = errors.New("pantry category not found")
	ErrDuplicateCategory      = errors.New("pantry category already exists")
	ErrNoRecipientConfigured  = errors.New("no digest recipient configured")
	ErrNoLowStockItems        = errors.New("no items are low on stock")
)

type (
	AddPantryItemRequest struct {
		Name               string   `json:"name" validate:"required"`
		CurrentAmount      float64  `json:"current_amount" validate:"min=0"`
		Unit               string   `json:"unit" validate:"required"`
		CategoryID         string   `json:"category_id" validate:"required,uuid"`
		MinBuyAmount       *float64 `json:"min_buy_amount,omitempty" validate:"omitempty,gt=0"`
		NormalRestockLevel *float64 `json:"normal_restock_level,omitempty" validate:"omitempty,gt=0"`
		LowStockThreshold  *float64 `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
		AutoAddToShopping  bool     `json:"auto_add_to_shopping"`
		SeasonalMonths     []int    `json:"seasonal_months,omitempty" validate:"omitempty,dive,min=1,max=12"`
		PreferredStore     string   `json:"preferred_store,omitempty"`
		AddedBy            string   `json:"added_by,omitempty"`
	}

	UpdatePantryItemRequest struct {
		Name               string   `json:"name" validate:"omitempty"`
		Unit               string   `json:"unit" validate:"omitempty"`
		CategoryID         string   `json:"category_id" validate:"omitempty,uuid"`
		MinBuyAmount       *float64 `json:"min_buy_amount,omitempty" validate:"omitempty,gt=0"`
		NormalRestockLevel *float64 `json:"normal_restock_level,omitempty" validate:"omitempty,gt=0"`
		LowStockThreshold  *float64 `json:"low_stock_threshold,omitempty" validate:"omitempty,min=0"`
		AutoAddToShopping  *bool    `json:"auto_add_to_shopping,omitempty"`
		SeasonalMonths     []int    `json:"seasonal_months,omitempty" validate:"omitempty,dive,min=1,max=12"`
		PreferredStore     *string  `json:"preferred_store,omitempty"`
	}

	AdjustAmountRequest struct {
		// Negative results clamp to zero rather than being rejected.
		NewAmount float64 `json:"new_amount"`
	}

	AddCategoryRequest struct {
		Name  string `json:"name" validate:"required"`
		Emoji string `json:"emoji" validate:"omitempty"`
	}

	PantryStatsResponse struct {
		TotalItems    int `json:"total_items"`
		LowStockCount int `json:"low_stock_count"`
		Categories    int `json:"categories"`
	}

	// PantrySummaryResponse is the household context export: everything
	// an external planner needs to know about current stock.
	PantrySummaryResponse struct {
		AvailableIngredients map[string]IngredientStock `json:"available_ingredients"`
		Categories           map[string][]string        `json:"categories"`
		LowStockItems        []string                   `json:"low_stock_items"`
	}

	IngredientStock struct {
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}

	// ImportSnapshotRequest replaces the whole inventory with an
	// externally produced snapshot (the sync merge point).
	ImportSnapshotRequest struct {
		Categories []SnapshotCategory `json:"categories" validate:"required,dive"`
	}

	ExportSnapshotResponse struct {
		Categories []SnapshotCategory `json:"categories"`
	}

	SnapshotCategory struct {
		Name  string         `json:"name" validate:"required"`
		Emoji string         `json:"emoji,omitempty"`
		Items []SnapshotItem `json:"items" validate:"dive"`
	}

	SnapshotItem struct {
		Name               string   `json:"name" validate:"required"`
		CurrentAmount      float64  `json:"current_amount" validate:"min=0"`
		Unit               string   `json:"unit" validate:"required"`
		MinBuyAmount       *float64 `json:"min_buy_amount,omitempty"`
		NormalRestockLevel *float64 `json:"normal_restock_level,omitempty"`
		LowStockThreshold  *float64 `json:"low_stock_threshold,omitempty"`
		AutoAddToShopping  bool     `json:"auto_add_to_shopping"`
		SeasonalMonths     []int    `json:"seasonal_months,omitempty"`
		PreferredStore     string   `json:"preferred_store,omitempty"`
		AddedBy            string   `json:"added_by,omitempty"`
	}
)
