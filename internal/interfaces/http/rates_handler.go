package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
)

// RatesHandler reads and updates the exchange rates.
type RatesHandler struct {
	uc *usecase.RatesUseCase
}

// NewRatesHandler builds the handler.
func NewRatesHandler(uc *usecase.RatesUseCase) *RatesHandler {
	return &RatesHandler{uc: uc}
}

// Get godoc
// @Summary      Current exchange rates
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExchangeRatesResponse
// @Router       /api/rates [get]
func (h *RatesHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Set exchange rates
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRatesRequest  true  "EUR and USD rates to IDR"
// @Success      200   {object}  dto.ExchangeRatesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rates [put]
func (h *RatesHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRatesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
