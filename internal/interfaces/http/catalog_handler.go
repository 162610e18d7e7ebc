package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
	"github.com/edievo/edsis-api/internal/domain/grouping"
)

// CatalogHandler serves the grouped catalog trees.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Tree godoc
// @Summary      Grouped catalog tree for one view
// @Description  view selects the grouping: BRAND, CATEGORY, STATUS or LOCATION.
// @Description  q is a comma-separated AND filter over brand, category, collection and codes.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        view  query  string  false  "BRAND | CATEGORY | STATUS | LOCATION"  default(BRAND)
// @Param        q     query  string  false  "Search terms, comma separated"
// @Success      200   {object}  dto.CatalogTreeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/tree [get]
func (h *CatalogHandler) Tree(c *fiber.Ctx) error {
	view := grouping.View(c.Query("view", string(grouping.ViewBrand)))
	if !view.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unknown view"})
	}
	out, err := h.uc.Tree(view, c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
