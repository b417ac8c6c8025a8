package handlers

import (
	"recipefridge/domain"
	"recipefridge/internal/api/presenters"
	"recipefridge/pkg/shopping"

	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		AddItem(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		ToggleItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ClearChecked(c *fiber.Ctx) error
		MoveToKitchen(c *fiber.Ctx) error
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

func (h *shoppingHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	res, err := h.shoppingService.GetShoppingList(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) ToggleItem(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.shoppingService.ToggleItem(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrShoppingItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleShoppingItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleShoppingItem)
}

func (h *shoppingHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.shoppingService.RemoveItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingItem)
}

func (h *shoppingHandler) ClearChecked(c *fiber.Ctx) error {
	if err := h.shoppingService.ClearChecked(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearChecked, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearChecked)
}

func (h *shoppingHandler) MoveToKitchen(c *fiber.Ctx) error {
	id := c.Params("id")

	res, err := h.shoppingService.MoveToKitchen(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrShoppingItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMoveToKitchen, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveToKitchen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMoveToKitchen)
}
