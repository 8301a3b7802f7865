package entities

import (
	"github.com/google/uuid"
)

type RecipeIngredient struct {
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	PantryItemID *string `json:"pantry_item_id,omitempty"`
	Optional     bool    `json:"optional,omitempty"`
}

// IngredientStatus is the per-ingredient availability verdict computed
// against a pantry snapshot.
type IngredientStatus struct {
	Available    bool    `json:"available"`
	PantryItemID *string `json:"pantry_item_id,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

type Recipe struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title           string             `json:"title"`
	Servings        int                `json:"servings"`
	PrepTimeMinutes int                `json:"prep_time_minutes"`
	CookTimeMinutes int                `json:"cook_time_minutes"`
	Ingredients     []RecipeIngredient `gorm:"serializer:json" json:"ingredients"`
	Instructions    []string           `gorm:"serializer:json" json:"instructions"`
	Tags            []string           `gorm:"serializer:json" json:"tags,omitempty"`
	ImageURL        string             `json:"image_url,omitempty"`
	CreatedBy       string             `json:"created_by,omitempty"`

	// Derived from the current pantry snapshot on every read; a cache,
	// never a source of truth.
	CanMake                bool                        `gorm:"-" json:"can_make"`
	MissingIngredients     []string                    `gorm:"-" json:"missing_ingredients,omitempty"`
	IngredientAvailability map[string]IngredientStatus `gorm:"-" json:"ingredient_availability,omitempty"`

	Timestamp
}
