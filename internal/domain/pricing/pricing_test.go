package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_KnownScenario(t *testing.T) {
	cfg := DefaultConfig()

	q, err := cfg.Quote([NumProducts]int{1, 1, 0}, "Ontario", "7")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("5.00").Equal(q.LineTotals[0]), "line 1: %s", q.LineTotals[0])
	assert.True(t, decimal.RequireFromString("8.00").Equal(q.LineTotals[1]), "line 2: %s", q.LineTotals[1])
	assert.True(t, decimal.Zero.Equal(q.LineTotals[2]), "line 3: %s", q.LineTotals[2])
	assert.True(t, decimal.RequireFromString("13.00").Equal(q.Subtotal), "subtotal: %s", q.Subtotal)
	assert.True(t, decimal.RequireFromString("1.69").Equal(q.Tax), "tax: %s", q.Tax)
	assert.True(t, decimal.RequireFromString("3.00").Equal(q.Shipping), "shipping: %s", q.Shipping)
	assert.True(t, decimal.RequireFromString("17.69").Equal(q.Total), "total: %s", q.Total)
}

func TestQuote_BelowMinimum(t *testing.T) {
	cfg := DefaultConfig()

	// Every triple with 5*q1 + 8*q2 + 10*q3 < 10.
	under := [][NumProducts]int{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	for _, quantities := range under {
		_, err := cfg.Quote(quantities, "Ontario", "7")
		assert.ErrorIs(t, err, ErrBelowMinimum, "quantities %v", quantities)
	}

	// Exactly at the threshold is accepted.
	_, err := cfg.Quote([NumProducts]int{2, 0, 0}, "Ontario", "7")
	assert.NoError(t, err)
	_, err = cfg.Quote([NumProducts]int{0, 0, 1}, "Ontario", "7")
	assert.NoError(t, err)
}

func TestQuote_TotalIsExactSum(t *testing.T) {
	cfg := DefaultConfig()

	cases := [][NumProducts]int{
		{2, 0, 0},
		{1, 1, 0},
		{3, 2, 1},
		{0, 5, 7},
		{10, 10, 10},
	}
	for _, quantities := range cases {
		q, err := cfg.Quote(quantities, "Ontario", "5")
		require.NoError(t, err, "quantities %v", quantities)

		want := q.Subtotal.Add(q.Shipping).Add(q.Tax)
		assert.True(t, want.Equal(q.Total), "quantities %v: total %s != %s", quantities, q.Total, want)
	}
}

func TestQuote_ShippingByTier(t *testing.T) {
	cfg := DefaultConfig()

	tiers := map[string]string{
		"7": "3",
		"5": "5",
		"2": "10",
	}
	for tier, want := range tiers {
		q, err := cfg.Quote([NumProducts]int{1, 1, 0}, "Ontario", tier)
		require.NoError(t, err, "tier %s", tier)
		assert.True(t, decimal.RequireFromString(want).Equal(q.Shipping), "tier %s: %s", tier, q.Shipping)
	}
}

func TestQuote_UnknownTierRejected(t *testing.T) {
	cfg := DefaultConfig()

	for _, tier := range []string{"", "1", "next-day", "07"} {
		_, err := cfg.Quote([NumProducts]int{1, 1, 0}, "Ontario", tier)

		var utErr *UnknownTierError
		require.ErrorAs(t, err, &utErr, "tier %q", tier)
		assert.Equal(t, tier, utErr.Tier)
	}
}

func TestQuote_FlatTaxRegardlessOfProvince(t *testing.T) {
	cfg := DefaultConfig()

	// Alberta has a 10% entry in ProvinceTaxRates, but the flat 13% rate
	// applies to every order.
	for _, province := range []string{"Ontario", "Alberta", "Nova Scotia", "Yukon"} {
		q, err := cfg.Quote([NumProducts]int{1, 1, 0}, province, "7")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("1.69").Equal(q.Tax), "province %s: %s", province, q.Tax)
	}
}

func TestQuote_AlternateTables(t *testing.T) {
	cfg := Config{
		ProductNames: [NumProducts]string{"A", "B", "C"},
		UnitPrices: [NumProducts]decimal.Decimal{
			decimal.NewFromInt(1),
			decimal.NewFromInt(2),
			decimal.NewFromInt(3),
		},
		TaxRate: decimal.NewFromFloat(0.5),
		ShippingByTier: map[string]decimal.Decimal{
			"express": decimal.NewFromInt(42),
		},
		MinimumPurchase: decimal.NewFromInt(1),
	}

	q, err := cfg.Quote([NumProducts]int{1, 1, 1}, "", "express")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(6).Equal(q.Subtotal))
	assert.True(t, decimal.NewFromInt(3).Equal(q.Tax))
	assert.True(t, decimal.NewFromInt(42).Equal(q.Shipping))
	assert.True(t, decimal.NewFromInt(51).Equal(q.Total))
}
