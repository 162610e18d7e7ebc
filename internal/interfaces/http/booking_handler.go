package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
)

// BookingHandler drives the unit lifecycle over HTTP.
type BookingHandler struct {
	uc *usecase.BookingUseCase
}

// NewBookingHandler builds the handler.
func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// Book godoc
// @Summary      Place a hold on an available unit
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Unit ID"
// @Param        body  body  dto.BookUnitRequest  true  "Client, expiry, notes"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units/{id}/book [post]
func (h *BookingHandler) Book(c *fiber.Ctx) error {
	var in dto.BookUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Book(c.Context(), c.Params("id"), GetUserName(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Release godoc
// @Summary      Release a hold manually
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Unit ID"
// @Success      200  {object}  dto.UnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/units/{id}/release [post]
func (h *BookingHandler) Release(c *fiber.Ctx) error {
	out, err := h.uc.Release(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sell godoc
// @Summary      Mark a unit sold
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Unit ID"
// @Param        body  body  dto.SellUnitRequest  false  "Optional PO number"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units/{id}/sell [post]
func (h *BookingHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Sell(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Relocate godoc
// @Summary      Move a unit to a new location
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Unit ID"
// @Param        body  body  dto.RelocateUnitRequest  true  "New location"
// @Success      200   {object}  dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id}/relocate [post]
func (h *BookingHandler) Relocate(c *fiber.Ctx) error {
	var in dto.RelocateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Relocate(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List every live hold
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ActiveBookingResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ActiveBookings()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Sweep godoc
// @Summary      Release every expired hold now
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SweepResponse
// @Router       /api/bookings/sweep [post]
func (h *BookingHandler) Sweep(c *fiber.Ctx) error {
	out, err := h.uc.SweepExpired(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
