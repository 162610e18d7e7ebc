package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
)

// DiscountHandler CRUD over master discount rules.
type DiscountHandler struct {
	uc *usecase.DiscountUseCase
}

// NewDiscountHandler builds the handler.
func NewDiscountHandler(uc *usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// Create godoc
// @Summary      Create discount rule
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiscountRequest  true  "Rule data"
// @Success      201   {object}  dto.DiscountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/discounts [post]
func (h *DiscountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List discount rules
// @Tags         discounts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DiscountResponse
// @Router       /api/discounts [get]
func (h *DiscountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get discount rule by ID
// @Tags         discounts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Rule ID"
// @Success      200  {object}  dto.DiscountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discounts/{id} [get]
func (h *DiscountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update discount rule (snapshots stay untouched)
// @Tags         discounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Rule ID"
// @Param        body  body  dto.UpdateDiscountRequest  true  "Fields to update"
// @Success      200   {object}  dto.DiscountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/discounts/{id} [put]
func (h *DiscountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete discount rule
// @Tags         discounts
// @Security     Bearer
// @Param        id  path  string  true  "Rule ID"
// @Success      204
// @Router       /api/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
