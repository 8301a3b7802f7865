package entities

import (
	"github.com/google/uuid"
	"time"
)

type WeeklyPlan struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WeekOf string    `gorm:"uniqueIndex" json:"week_of"` // ISO date of the week's Monday
	Status string    `json:"status"`                     // "draft", "active", "completed"

	Meals []*PlannedMeal `gorm:"foreignKey:PlanID" json:"meals"`
	Timestamp
}

type PlannedMeal struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PlanID      uuid.UUID  `json:"plan_id"`
	Day         string     `json:"day"`       // "monday" .. "sunday"
	MealType    string     `json:"meal_type"` // "breakfast", "lunch", "dinner", "snack"
	RecipeID    uuid.UUID  `json:"recipe_id"`
	RecipeTitle string     `json:"recipe_title"` // snapshot, survives recipe deletion
	Servings    int        `json:"servings"`
	Completed   bool       `json:"completed"`
	CompletedBy string     `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Plan *WeeklyPlan `gorm:"foreignKey:PlanID" json:"-"`
	Timestamp
}
