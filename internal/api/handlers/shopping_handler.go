package handlers

import (
	"LemonRecipes-Backend/domain"
	"LemonRecipes-Backend/internal/api/presenters"
	"LemonRecipes-Backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetList(c *fiber.Ctx) error
		CheckItem(c *fiber.Ctx) error
		AddCustomItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ClearChecked(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetList(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")

	res, err := h.shoppingService.GetList(c.Context(), weekOf)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) CheckItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	req := new(domain.CheckItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckItem, err)
	}

	res, err := h.shoppingService.CheckItem(c.Context(), itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckItem)
}

func (h *shoppingHandler) AddCustomItem(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingService.AddCustomItem(c.Context(), weekOf, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) RemoveItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")

	if err := h.shoppingService.RemoveItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveItem)
}

func (h *shoppingHandler) ClearChecked(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")

	if err := h.shoppingService.ClearChecked(c.Context(), weekOf); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearChecked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearChecked)
}

func (h *shoppingHandler) GetStats(c *fiber.Ctx) error {
	weekOf := c.Query("week_of")

	res, err := h.shoppingService.GetStats(c.Context(), weekOf)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingStats)
}
