package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edievo/edsis-api/internal/domain/entity"
	"github.com/edievo/edsis-api/internal/domain/pricing"
)

var testRates = entity.ExchangeRates{
	EURRate: decimal.NewFromInt(17000),
	USDRate: decimal.NewFromInt(15500),
}

func snapshot(value int64) entity.DiscountSnapshot {
	return entity.DiscountSnapshot{RuleID: "d", Name: "test", Value: decimal.NewFromInt(value)}
}

func TestRetailIDR_EURConversion(t *testing.T) {
	p := entity.Product{BaseCurrency: entity.CurrencyEUR, RetailPriceEUR: decimal.NewFromInt(100)}
	got := pricing.RetailIDR(p, testRates)
	assert.True(t, decimal.NewFromInt(1_700_000).Equal(got), "100 EUR at 17000 = 1,700,000 IDR, got %s", got)
}

func TestRetailIDR_USDConversion(t *testing.T) {
	p := entity.Product{BaseCurrency: entity.CurrencyUSD, RetailPriceUSD: decimal.NewFromInt(200)}
	got := pricing.RetailIDR(p, testRates)
	assert.True(t, decimal.NewFromInt(3_100_000).Equal(got))
}

func TestRetailIDR_IDRPassthrough(t *testing.T) {
	p := entity.Product{BaseCurrency: entity.CurrencyIDR, RetailPriceIDR: decimal.NewFromInt(2_500_000)}
	got := pricing.RetailIDR(p, testRates)
	assert.True(t, decimal.NewFromInt(2_500_000).Equal(got), "IDR prices convert nothing")
}

func TestRetailIDR_MissingPriceIsZero(t *testing.T) {
	p := entity.Product{BaseCurrency: entity.CurrencyEUR}
	assert.True(t, pricing.RetailIDR(p, testRates).IsZero())
}

func TestNettIDR_SequentialStacking(t *testing.T) {
	retail := decimal.NewFromInt(1_000_000)

	// 1,000,000 * 0.8 * 0.9 = 720,000 — sequential, not additive.
	got := pricing.NettIDR(retail, []entity.DiscountSnapshot{snapshot(20), snapshot(10)})
	assert.True(t, decimal.NewFromInt(720_000).Equal(got), "got %s", got)

	// Summing percentages would give 700,000; that is the wrong model.
	assert.False(t, decimal.NewFromInt(700_000).Equal(got))
}

func TestNettIDR_OrderCommutesForThisOperator(t *testing.T) {
	retail := decimal.NewFromInt(1_000_000)
	ab := pricing.NettIDR(retail, []entity.DiscountSnapshot{snapshot(20), snapshot(10)})
	ba := pricing.NettIDR(retail, []entity.DiscountSnapshot{snapshot(10), snapshot(20)})
	assert.True(t, ab.Equal(ba))
	assert.True(t, decimal.NewFromInt(720_000).Equal(ba))
}

func TestNettIDR_NoDiscountsPassthrough(t *testing.T) {
	retail := decimal.NewFromInt(1_234_567)
	assert.True(t, retail.Equal(pricing.NettIDR(retail, nil)))
}

func TestNettIDR_RoundsOnceAtTheEnd(t *testing.T) {
	// 99 * 0.85 * 0.85 = 71.5275 -> 72. Rounding per step would give
	// 99 * 0.85 = 84.15 -> 84, then 84 * 0.85 = 71.4 -> 71.
	got := pricing.NettIDR(decimal.NewFromInt(99), []entity.DiscountSnapshot{snapshot(15), snapshot(15)})
	assert.True(t, decimal.NewFromInt(72).Equal(got), "expected one final rounding, got %s", got)
}

func TestDerive_CombinesRetailAndNett(t *testing.T) {
	p := entity.Product{
		BaseCurrency:   entity.CurrencyEUR,
		RetailPriceEUR: decimal.NewFromInt(100),
		Discounts:      []entity.DiscountSnapshot{snapshot(20), snapshot(10)},
	}
	q := pricing.Derive(p, testRates)
	assert.True(t, decimal.NewFromInt(1_700_000).Equal(q.RetailIDR))
	assert.True(t, decimal.NewFromInt(1_224_000).Equal(q.NettIDR), "1,700,000 * 0.8 * 0.9")
}

func TestValidateDiscountValue_Bounds(t *testing.T) {
	cases := []struct {
		name  string
		value decimal.Decimal
		valid bool
	}{
		{"zero rejected", decimal.Zero, false},
		{"negative rejected", decimal.NewFromInt(-5), false},
		{"hundred rejected", decimal.NewFromInt(100), false},
		{"above hundred rejected", decimal.NewFromInt(150), false},
		{"fractional accepted", decimal.NewFromFloat(0.5), true},
		{"upper edge accepted", decimal.NewFromFloat(99.9), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := pricing.ValidateDiscountValue(tc.value)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
