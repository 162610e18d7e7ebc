package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supported base currencies for retail pricing.
const (
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
	CurrencyIDR = "IDR"
)

// Product is a catalog entry: one sellable design/collection, not a
// physical count. Stock counters are derived from its inventory units and
// recomputed after every unit mutation, never patched incrementally.
// Display prices in IDR are derived on read (see the pricing package);
// only the base-currency retail prices are stored.
type Product struct {
	ID               string
	Brand            string // normalized upper-case on save
	Category         string // normalized title-case on save
	Collection       string // display name
	Code             string // system SKU, e.g. SLAM-POLA-TUBA
	ManufacturerCode string // optional factory id

	BaseCurrency   string // EUR, USD or IDR
	RetailPriceEUR decimal.Decimal
	RetailPriceUSD decimal.Decimal
	RetailPriceIDR decimal.Decimal

	Discounts []DiscountSnapshot // applied in assignment order

	TotalStock  int
	BookedStock int
	SoldStock   int

	IsNotForSale bool
	IsUpcoming   bool
	UpcomingETA  string

	Location   string // default location for newly seeded units
	Detail     string
	Dimensions string
	Finishing  string
	ImageRef   string

	LastSequence int // serial counter for unit seeding
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvailableStock is the derived sellable count.
func (p Product) AvailableStock() int {
	return p.TotalStock - p.BookedStock - p.SoldStock
}
