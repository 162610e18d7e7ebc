package dto

import "github.com/shopspring/decimal"

// ExportRow one spreadsheet row of the catalog export, prices already
// derived.
type ExportRow struct {
	Brand            string
	Category         string
	Collection       string
	Code             string
	ManufacturerCode string
	BaseCurrency     string
	RetailPriceEUR   decimal.Decimal
	RetailPriceUSD   decimal.Decimal
	RetailPriceIDR   decimal.Decimal
	NettPriceIDR     decimal.Decimal
	Discounts        string // "Ramadan Sale 15% + Floor Stock 10%"
	TotalStock       int
	BookedStock      int
	SoldStock        int
	AvailableStock   int
	Location         string
}
