package handlers

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/internal/api/presenters"
	"LemonRecipes-Backend/pkg/plan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		GetPlan(c *fiber.Ctx) error
		AddMeal(c *fiber.Ctx) error
		RemoveMeal(c *fiber.Ctx) error
		CompleteMeal(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *planHandler) GetPlan(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")

	res, err := h.planService.GetPlanForWeek(c.Context(), weekOf)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}

func (h *planHandler) AddMeal(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")
	req := new(domain.AddMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	res, err := h.planService.AddMeal(c.Context(), weekOf, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMeal)
}

func (h *planHandler) RemoveMeal(c *fiber.Ctx) error {
	mealID := c.Params("mealId")

	if err := h.planService.RemoveMeal(c.Context(), mealID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMeal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveMeal)
}

func (h *planHandler) CompleteMeal(c *fiber.Ctx) error {
	mealID := c.Params("mealId")
	req := new(domain.CompleteMealRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMeal, err)
	}

	res, err := h.planService.CompleteMeal(c.Context(), mealID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteMeal)
}

func (h *planHandler) GetStats(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")

	res, err := h.planService.GetStats(c.Context(), weekOf)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlanStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlanStats)
}
