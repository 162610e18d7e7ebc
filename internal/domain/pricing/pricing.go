// Package pricing derives displayed IDR prices from a product's base
// currency, the current exchange rates, and its stacked discount
// snapshots. Pure domain service: no I/O, no caching, deterministic for
// identical inputs.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Quote is the derived price pair for one product.
type Quote struct {
	RetailIDR decimal.Decimal
	NettIDR   decimal.Decimal
}

// RetailIDR converts the product's base-currency retail price to IDR
// using the current rates, rounded to the nearest rupiah. IDR-based
// prices are taken as entered, no conversion. A missing price is zero.
func RetailIDR(p entity.Product, rates entity.ExchangeRates) decimal.Decimal {
	switch p.BaseCurrency {
	case entity.CurrencyEUR:
		return p.RetailPriceEUR.Mul(rates.EURRate).Round(0)
	case entity.CurrencyUSD:
		return p.RetailPriceUSD.Mul(rates.USDRate).Round(0)
	default:
		return p.RetailPriceIDR
	}
}

// NettIDR applies the discount snapshots sequentially in assignment
// order: price = price * (100 - value) / 100 per snapshot. Rounding
// happens once at the end, never per step. No discounts means the
// retail price passes through unchanged.
func NettIDR(retail decimal.Decimal, discounts []entity.DiscountSnapshot) decimal.Decimal {
	if len(discounts) == 0 {
		return retail
	}
	price := retail
	for _, d := range discounts {
		price = price.Mul(hundred.Sub(d.Value)).Div(hundred)
	}
	return price.Round(0)
}

// Derive computes both displayed prices for a product.
func Derive(p entity.Product, rates entity.ExchangeRates) Quote {
	retail := RetailIDR(p, rates)
	return Quote{RetailIDR: retail, NettIDR: NettIDR(retail, p.Discounts)}
}

// ValidateDiscountValue guards snapshot assignment: a percentage must be
// strictly between 0 and 100. Zero or negative markdowns are data entry
// errors, and 100 would zero the nett price.
func ValidateDiscountValue(value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) || value.GreaterThanOrEqual(hundred) {
		return domain.ErrInvalidInput
	}
	return nil
}
