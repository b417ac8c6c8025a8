package handlers

import (
	"recipefridge/domain"
	"recipefridge/internal/api/presenters"
	"recipefridge/pkg/barcode"

	"github.com/gofiber/fiber/v2"
)

type (
	BarcodeHandler interface {
		Lookup(c *fiber.Ctx) error
	}

	barcodeHandler struct {
		barcodeService barcode.BarcodeService
	}
)

func NewBarcodeHandler(barcodeService barcode.BarcodeService) BarcodeHandler {
	return &barcodeHandler{barcodeService: barcodeService}
}

func (h *barcodeHandler) Lookup(c *fiber.Ctx) error {
	code := c.Params("code")

	res, err := h.barcodeService.Lookup(c.Context(), code)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBarcodeLookup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessBarcodeLookup)
}
