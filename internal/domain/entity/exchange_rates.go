package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRates is the process-wide rate record: 1 unit of currency = N
// IDR. Mutated only through an explicit update; read on every price
// derivation for non-IDR products. UpdatedAt is surfaced to callers so
// operators can judge price freshness.
type ExchangeRates struct {
	EURRate   decimal.Decimal
	USDRate   decimal.Decimal
	UpdatedAt time.Time
}
