package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateRatesRequest sets the IDR conversion rates. Both rates must be
// positive.
type UpdateRatesRequest struct {
	EURRate decimal.Decimal `json:"eur_rate" validate:"required"`
	USDRate decimal.Decimal `json:"usd_rate" validate:"required"`
}

// ExchangeRatesResponse current conversion rates with freshness.
type ExchangeRatesResponse struct {
	EURRate   decimal.Decimal `json:"eur_rate"`
	USDRate   decimal.Decimal `json:"usd_rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}
