package entities

import (
	"github.com/google/uuid"
)

type PantryCategory struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name  string    `gorm:"uniqueIndex" json:"name"`
	Emoji string    `json:"emoji,omitempty"`

	Items []*PantryItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
	Timestamp
}

type PantryItem struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CategoryID         uuid.UUID `json:"category_id"`
	Name               string    `json:"name"`
	CurrentAmount      float64   `json:"current_amount"` // never negative, mutations clamp to zero
	Unit               string    `json:"unit"`
	MinBuyAmount       *float64  `json:"min_buy_amount,omitempty"`
	NormalRestockLevel *float64  `json:"normal_restock_level,omitempty"`
	LowStockThreshold  *float64  `json:"low_stock_threshold,omitempty"`
	AutoAddToShopping  bool      `json:"auto_add_to_shopping"`
	SeasonalMonths     []int     `gorm:"serializer:json" json:"seasonal_months,omitempty"`
	PreferredStore     string    `json:"preferred_store,omitempty"`
	AddedBy            string    `json:"added_by,omitempty"`

	Category *PantryCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}

// CategoryName is safe to call on snapshot items whether or not the
// category relation was preloaded.
func (i *PantryItem) CategoryName() string {
	if i.Category == nil {
		return ""
	}
	return i.Category.Name
}
