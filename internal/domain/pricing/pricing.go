// Package pricing computes order charges from fixed price, tax, and
// shipping tables. All arithmetic uses decimal values; rounding to two
// places happens only when a quote is presented or persisted, never in
// intermediate results.
package pricing

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// NumProducts mirrors the size of the fixed product catalog.
const NumProducts = 3

// ErrBelowMinimum is returned when the pre-tax subtotal does not reach the
// minimum purchase threshold.
var ErrBelowMinimum = errors.New("minimum purchase should be $10 or more")

// UnknownTierError indicates a delivery-time tier with no shipping charge
// configured. The tier is rejected up front; it never resolves to a
// missing charge inside the total.
type UnknownTierError struct {
	Tier string
}

func (e *UnknownTierError) Error() string {
	return fmt.Sprintf("unknown delivery time %q", e.Tier)
}

// Config holds the pricing tables. It is immutable after construction and
// injected into callers, so tests can price against alternate tables
// without touching the calculation itself.
type Config struct {
	// ProductNames label each catalog position in receipts.
	ProductNames [NumProducts]string
	// UnitPrices are the per-unit prices by catalog position.
	UnitPrices [NumProducts]decimal.Decimal
	// TaxRate is the flat rate applied to every order's subtotal.
	TaxRate decimal.Decimal
	// ProvinceTaxRates is defined but not applied: every order is taxed at
	// TaxRate regardless of province. Activating per-province rates is a
	// pending product decision.
	ProvinceTaxRates map[string]decimal.Decimal
	// ShippingByTier maps a delivery-time tier to its shipping charge.
	ShippingByTier map[string]decimal.Decimal
	// MinimumPurchase is the smallest accepted pre-tax subtotal.
	MinimumPurchase decimal.Decimal
}

// DefaultConfig returns the production pricing tables.
func DefaultConfig() Config {
	return Config{
		ProductNames: [NumProducts]string{"Product 1", "Product 2", "Product 3"},
		UnitPrices: [NumProducts]decimal.Decimal{
			decimal.NewFromInt(5),
			decimal.NewFromInt(8),
			decimal.NewFromInt(10),
		},
		TaxRate: decimal.NewFromFloat(0.13),
		ProvinceTaxRates: map[string]decimal.Decimal{
			"Ontario":     decimal.NewFromFloat(0.13),
			"Alberta":     decimal.NewFromFloat(0.10),
			"Nova Scotia": decimal.NewFromFloat(0.15),
		},
		ShippingByTier: map[string]decimal.Decimal{
			"7": decimal.NewFromInt(3),
			"5": decimal.NewFromInt(5),
			"2": decimal.NewFromInt(10),
		},
		MinimumPurchase: decimal.NewFromInt(10),
	}
}

// Quote holds the computed charges for one order. Values are exact: the
// total equals subtotal + shipping + tax with no rounding applied.
type Quote struct {
	LineTotals [NumProducts]decimal.Decimal
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
}

// Quote prices the given quantities. The delivery tier is validated before
// any charge is looked up; an unrecognized tier returns UnknownTierError.
// A subtotal under MinimumPurchase returns ErrBelowMinimum. The province
// currently does not influence the result (flat TaxRate; see
// ProvinceTaxRates).
func (c Config) Quote(quantities [NumProducts]int, province, tier string) (Quote, error) {
	_ = province

	shipping, ok := c.ShippingByTier[tier]
	if !ok {
		return Quote{}, &UnknownTierError{Tier: tier}
	}

	var q Quote
	q.Subtotal = decimal.Zero
	for i, qty := range quantities {
		q.LineTotals[i] = c.UnitPrices[i].Mul(decimal.NewFromInt(int64(qty)))
		q.Subtotal = q.Subtotal.Add(q.LineTotals[i])
	}

	if q.Subtotal.LessThan(c.MinimumPurchase) {
		return Quote{}, ErrBelowMinimum
	}

	q.Tax = q.Subtotal.Mul(c.TaxRate)
	q.Shipping = shipping
	q.Total = q.Subtotal.Add(q.Shipping).Add(q.Tax)
	return q, nil
}
