package plan

import (
	"LemonRecipes-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	PlanRepository interface {
		AddPlan(ctx context.Context, plan *entities.WeeklyPlan) error
		GetPlanByWeek(ctx context.Context, weekOf string) (*entities.WeeklyPlan, error)
		UpdatePlan(ctx context.Context, plan *entities.WeeklyPlan) error

		AddMeal(ctx context.Context, meal *entities.PlannedMeal) error
		GetMealByID(ctx context.Context, id string) (*entities.PlannedMeal, error)
		UpdateMeal(ctx context.Context, meal *entities.PlannedMeal) error
		DeleteMeal(ctx context.Context, id string) error
	}

	planRepository struct {
		db *gorm.DB
	}
)

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) AddPlan(ctx context.Context, plan *entities.WeeklyPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) GetPlanByWeek(ctx context.Context, weekOf string) (*entities.WeeklyPlan, error) {
	var plan entities.WeeklyPlan
	err := r.db.WithContext(ctx).
		Preload("Meals").
		Where("week_of = ?", weekOf).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) UpdatePlan(ctx context.Context, plan *entities.WeeklyPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *planRepository) AddMeal(ctx context.Context, meal *entities.PlannedMeal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *planRepository) GetMealByID(ctx context.Context, id string) (*entities.PlannedMeal, error) {
	var meal entities.PlannedMeal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *planRepository) UpdateMeal(ctx context.Context, meal *entities.PlannedMeal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *planRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PlannedMeal{}).Error
}
