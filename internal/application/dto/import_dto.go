package dto

import "github.com/shopspring/decimal"

// ImportRow one parsed spreadsheet row of a bulk import.
type ImportRow struct {
	Brand            string
	Category         string
	Collection       string
	ManufacturerCode string
	BaseCurrency     string
	RetailPrice      decimal.Decimal
	Quantity         int
	Location         string
	DiscountName     string
	DiscountValue    decimal.Decimal
	Detail           string
	Dimensions       string
	Finishing        string
}

// ImportRowError one rejected row with its reason; the rest of the
// batch still commits.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult outcome of a bulk import batch.
type ImportResult struct {
	BatchID     string           `json:"batch_id"`
	Created     int              `json:"created"`
	UnitsSeeded int              `json:"units_seeded"`
	Skipped     int              `json:"skipped"`
	RowErrors   []ImportRowError `json:"row_errors,omitempty"`
}
