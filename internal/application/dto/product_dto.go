package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product. The system SKU is
// generated server-side from brand/category/collection; clients never
// supply it.
type CreateProductRequest struct {
	Brand            string          `json:"brand" validate:"required,min=1,max=100"`
	Category         string          `json:"category" validate:"required,min=1,max=100"`
	Collection       string          `json:"collection" validate:"required,min=1,max=200"`
	ManufacturerCode string          `json:"manufacturer_code"`
	BaseCurrency     string          `json:"base_currency" validate:"required,oneof=EUR USD IDR"`
	RetailPriceEUR   decimal.Decimal `json:"retail_price_eur"`
	RetailPriceUSD   decimal.Decimal `json:"retail_price_usd"`
	RetailPriceIDR   decimal.Decimal `json:"retail_price_idr"`
	InitialStock     int             `json:"initial_stock" validate:"min=0"`
	IsNotForSale     bool            `json:"is_not_for_sale"`
	IsUpcoming       bool            `json:"is_upcoming"`
	UpcomingETA      string          `json:"upcoming_eta"`
	Location         string          `json:"location"`
	Detail           string          `json:"detail"`
	Dimensions       string          `json:"dimensions"`
	Finishing        string          `json:"finishing"`
	ImageRef         string          `json:"image_ref"`
}

// UpdateProductRequest partial update; nil fields stay untouched. Stock
// counters and the SKU are never updatable through this path.
type UpdateProductRequest struct {
	Brand            *string          `json:"brand" validate:"omitempty,min=1,max=100"`
	Category         *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Collection       *string          `json:"collection" validate:"omitempty,min=1,max=200"`
	ManufacturerCode *string          `json:"manufacturer_code"`
	BaseCurrency     *string          `json:"base_currency" validate:"omitempty,oneof=EUR USD IDR"`
	RetailPriceEUR   *decimal.Decimal `json:"retail_price_eur"`
	RetailPriceUSD   *decimal.Decimal `json:"retail_price_usd"`
	RetailPriceIDR   *decimal.Decimal `json:"retail_price_idr"`
	IsNotForSale     *bool            `json:"is_not_for_sale"`
	IsUpcoming       *bool            `json:"is_upcoming"`
	UpcomingETA      *string          `json:"upcoming_eta"`
	Location         *string          `json:"location"`
	Detail           *string          `json:"detail"`
	Dimensions       *string          `json:"dimensions"`
	Finishing        *string          `json:"finishing"`
	ImageRef         *string          `json:"image_ref"`
}

// AddStockRequest seeds additional serialized units for a product.
type AddStockRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1,max=500"`
	Location string `json:"location"`
}

// AssignDiscountsRequest replaces a product's discount set with
// snapshots of the given rules, applied in the given order.
type AssignDiscountsRequest struct {
	DiscountIDs []string `json:"discount_ids" validate:"dive,required"`
}

// DiscountSnapshotResponse one applied markdown on a product.
type DiscountSnapshotResponse struct {
	RuleID string          `json:"rule_id"`
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
}

// ProductResponse product output with derived IDR prices and stock
// rollup.
type ProductResponse struct {
	ID               string                     `json:"id"`
	Brand            string                     `json:"brand"`
	Category         string                     `json:"category"`
	Collection       string                     `json:"collection"`
	Code             string                     `json:"code"`
	ManufacturerCode string                     `json:"manufacturer_code,omitempty"`
	BaseCurrency     string                     `json:"base_currency"`
	RetailPriceEUR   decimal.Decimal            `json:"retail_price_eur"`
	RetailPriceUSD   decimal.Decimal            `json:"retail_price_usd"`
	RetailPriceIDR   decimal.Decimal            `json:"retail_price_idr"`
	NettPriceIDR     decimal.Decimal            `json:"nett_price_idr"`
	Discounts        []DiscountSnapshotResponse `json:"discounts"`
	TotalStock       int                        `json:"total_stock"`
	BookedStock      int                        `json:"booked_stock"`
	SoldStock        int                        `json:"sold_stock"`
	AvailableStock   int                        `json:"available_stock"`
	IsNotForSale     bool                       `json:"is_not_for_sale"`
	IsUpcoming       bool                       `json:"is_upcoming"`
	UpcomingETA      string                     `json:"upcoming_eta,omitempty"`
	Location         string                     `json:"location,omitempty"`
	Detail           string                     `json:"detail,omitempty"`
	Dimensions       string                     `json:"dimensions,omitempty"`
	Finishing        string                     `json:"finishing,omitempty"`
	ImageRef         string                     `json:"image_ref,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}
