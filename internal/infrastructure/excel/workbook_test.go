package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/infrastructure/excel"
)

// buildImportFile writes an import workbook with the given data rows
// under the standard header.
func buildImportFile(t *testing.T, rows [][]any) []byte {
	t.Helper()
	w := excel.NewWorkbook()
	tpl, err := w.ImportTemplate()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(tpl))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetList()[0]
	for i, cells := range rows {
		for j, v := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseImport_ReadsRows(t *testing.T) {
	data := buildImportFile(t, [][]any{
		{"Slamp", "Lighting", "Tulip", "SL-100", "eur", "1250.50", 3, "Showroom A", "Clearance", "15", "Hand blown", "40x40x60", "Matte"},
		{"Poliform", "Sofa", "Bristol", "", "IDR", "25,000,000", 1, "", "", "", "", "", ""},
	})

	w := excel.NewWorkbook()
	rows, err := w.ParseImport(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "Slamp", first.Brand)
	assert.Equal(t, "Lighting", first.Category)
	assert.Equal(t, "Tulip", first.Collection)
	assert.Equal(t, "EUR", first.BaseCurrency, "currency is uppercased on read")
	assert.True(t, decimal.RequireFromString("1250.50").Equal(first.RetailPrice))
	assert.Equal(t, 3, first.Quantity)
	assert.Equal(t, "Clearance", first.DiscountName)
	assert.True(t, decimal.NewFromInt(15).Equal(first.DiscountValue))
	assert.Equal(t, "Matte", first.Finishing)

	second := rows[1]
	assert.Equal(t, "IDR", second.BaseCurrency)
	assert.True(t, decimal.RequireFromString("25000000").Equal(second.RetailPrice),
		"thousands separators are stripped")
	assert.Empty(t, second.DiscountName)
}

func TestParseImport_SkipsBlankRows(t *testing.T) {
	data := buildImportFile(t, [][]any{
		{"Slamp", "Lighting", "Tulip", "", "EUR", "100", 1, "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", "", "", "", "", "", ""},
		{"Kartell", "Chair", "Ghost", "", "EUR", "200", 2, "", "", "", "", "", ""},
	})

	w := excel.NewWorkbook()
	rows, err := w.ParseImport(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Kartell", rows[1].Brand)
}

func TestParseImport_HeaderOnlyIsEmpty(t *testing.T) {
	w := excel.NewWorkbook()
	tpl, err := w.ImportTemplate()
	require.NoError(t, err)

	rows, err := w.ParseImport(tpl)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseImport_GarbageBytesFail(t *testing.T) {
	w := excel.NewWorkbook()
	_, err := w.ParseImport([]byte("not an xlsx file"))
	assert.Error(t, err)
}

func TestCatalogWorkbook_WritesRows(t *testing.T) {
	w := excel.NewWorkbook()
	data, err := w.CatalogWorkbook([]dto.ExportRow{
		{
			Brand:          "SLAMP",
			Category:       "Lighting",
			Collection:     "Tulip",
			Code:           "SLAM-LIGH-TULI",
			BaseCurrency:   "EUR",
			RetailPriceIDR: decimal.NewFromInt(20000000),
			NettPriceIDR:   decimal.NewFromInt(17000000),
			Discounts:      "Clearance 15%",
			TotalStock:     3,
			AvailableStock: 2,
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Catalog")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Brand", rows[0][0])
	assert.Equal(t, "SLAMP", rows[1][0])
	assert.Equal(t, "SLAM-LIGH-TULI", rows[1][3])
	assert.Equal(t, "Clearance 15%", rows[1][10])
}
