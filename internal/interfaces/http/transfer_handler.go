package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
)

// TransferHandler bulk import and catalog export.
type TransferHandler struct {
	importUC *usecase.ImportUseCase
	exportUC *usecase.ExportUseCase
}

// NewTransferHandler builds the handler.
func NewTransferHandler(importUC *usecase.ImportUseCase, exportUC *usecase.ExportUseCase) *TransferHandler {
	return &TransferHandler{importUC: importUC, exportUC: exportUC}
}

// Import godoc
// @Summary      Bulk import products from a spreadsheet
// @Description  Multipart upload, field name "file". Bad rows are skipped and reported.
// @Tags         transfer
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "xlsx workbook"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "multipart file field \"file\" is required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cannot open upload"})
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cannot read upload"})
	}

	out, err := h.importUC.Run(c.Context(), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Template godoc
// @Summary      Download the blank import spreadsheet
// @Tags         transfer
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/import/template [get]
func (h *TransferHandler) Template(c *fiber.Ctx) error {
	data, err := h.importUC.Template()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="import-template.xlsx"`)
	return c.Send(data)
}

// Export godoc
// @Summary      Download the catalog as xlsx
// @Tags         transfer
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export [get]
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	data, err := h.exportUC.Catalog()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalog.xlsx"`)
	return c.Send(data)
}
