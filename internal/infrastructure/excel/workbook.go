// Package excel reads and writes the catalog spreadsheets with
// excelize. Export carries the derived columns (nett price, stock
// counters); import carries only what the operator fills in.
package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
)

const sheetName = "Catalog"

var exportHeader = []string{
	"Brand", "Category", "Collection", "Code", "Manufacturer Code", "Base Currency",
	"Retail EUR", "Retail USD", "Retail IDR", "Nett IDR", "Discounts",
	"Total", "Booked", "Sold", "Available", "Location",
}

var importHeader = []string{
	"Brand", "Category", "Collection", "Manufacturer Code", "Base Currency",
	"Retail Price", "Quantity", "Location", "Discount Name", "Discount Value",
	"Detail", "Dimensions", "Finishing",
}

var (
	_ usecase.WorkbookGenerator = (*Workbook)(nil)
	_ usecase.WorkbookParser    = (*Workbook)(nil)
)

// Workbook is the excelize-backed spreadsheet adapter.
type Workbook struct{}

// NewWorkbook builds the adapter.
func NewWorkbook() *Workbook { return &Workbook{} }

// CatalogWorkbook renders the export rows as an xlsx file.
func (w *Workbook) CatalogWorkbook(rows []dto.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: drop default sheet: %w", err)
	}

	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: write header: %w", err)
		}
	}

	for i, r := range rows {
		values := []any{
			r.Brand, r.Category, r.Collection, r.Code, r.ManufacturerCode, r.BaseCurrency,
			decimalCell(r.RetailPriceEUR), decimalCell(r.RetailPriceUSD),
			decimalCell(r.RetailPriceIDR), decimalCell(r.NettPriceIDR), r.Discounts,
			r.TotalStock, r.BookedStock, r.SoldStock, r.AvailableStock, r.Location,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: write row %d: %w", i+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseImport reads an import workbook: first sheet, header row
// skipped, one ImportRow per data row. Blank rows are dropped here;
// semantic validation is the caller's job.
func (w *Workbook) ParseImport(data []byte) ([]dto.ImportRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("excel: open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("excel: read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	out := make([]dto.ImportRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if blankRow(cells) {
			continue
		}
		out = append(out, dto.ImportRow{
			Brand:            cellAt(cells, 0),
			Category:         cellAt(cells, 1),
			Collection:       cellAt(cells, 2),
			ManufacturerCode: cellAt(cells, 3),
			BaseCurrency:     strings.ToUpper(cellAt(cells, 4)),
			RetailPrice:      decimalAt(cells, 5),
			Quantity:         intAt(cells, 6),
			Location:         cellAt(cells, 7),
			DiscountName:     cellAt(cells, 8),
			DiscountValue:    decimalAt(cells, 9),
			Detail:           cellAt(cells, 10),
			Dimensions:       cellAt(cells, 11),
			Finishing:        cellAt(cells, 12),
		})
	}
	return out, nil
}

// ImportTemplate renders an empty workbook with the import header, for
// operators to fill in.
func (w *Workbook) ImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	for i, h := range importHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue("Sheet1", cell, h); err != nil {
			return nil, fmt.Errorf("excel: write header: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// decimalCell keeps the workbook numeric where the value fits float64;
// decimals in catalog prices always do.
func decimalCell(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cellAt(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func decimalAt(cells []string, i int) decimal.Decimal {
	s := cellAt(cells, i)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func intAt(cells []string, i int) int {
	s := cellAt(cells, i)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
