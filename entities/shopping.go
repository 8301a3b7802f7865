package entities

import (
	"github.com/google/uuid"
	"time"
)

// ShoppingList is a derived projection over the weekly plan and pantry.
// It is regenerated on every fetch; only the checked state of its items
// survives regeneration.
type ShoppingList struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PlanID      uuid.UUID `json:"plan_id"`
	WeekOf      string    `gorm:"uniqueIndex" json:"week_of"`
	GeneratedAt time.Time `json:"generated_at"`

	Items []*ShoppingItem `gorm:"foreignKey:ListID" json:"items"`
	Timestamp
}

type ShoppingItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListID       uuid.UUID  `json:"list_id"`
	Name         string     `json:"name"`
	Amount       float64    `json:"amount"`
	Unit         string     `json:"unit"`
	Category     string     `json:"category"`
	Checked      bool       `json:"checked"`
	CheckedBy    string     `json:"checked_by,omitempty"`
	CheckedAt    *time.Time `json:"checked_at,omitempty"`
	NeededFor    []string   `gorm:"serializer:json" json:"needed_for"`
	PantryItemID *string    `json:"pantry_item_id,omitempty"`
	Custom       bool       `json:"custom"` // added by hand, kept verbatim across regeneration

	List *ShoppingList `gorm:"foreignKey:ListID" json:"-"`
	Timestamp
}
