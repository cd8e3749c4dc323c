package order

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xenking/order-intake/internal/domain/pricing"
)

// Receipt is the projection of a freshly placed order returned to the
// customer. Monetary values are rounded to two places for display.
type Receipt struct {
	OrderID      string
	ProductNames [NumProducts]string
	Quantities   [NumProducts]int
	UnitPrices   [NumProducts]decimal.Decimal
	LineTotals   [NumProducts]decimal.Decimal
	Subtotal     decimal.Decimal
	Shipping     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// Service runs the order intake pipeline: validate the submission, price
// it, persist the order, and project a receipt. Nothing is persisted on
// any failure path.
type Service struct {
	pricing pricing.Config
	orders  Repository
}

// NewService creates an order Service with the given pricing tables and
// order store.
func NewService(cfg pricing.Config, orders Repository) *Service {
	return &Service{
		pricing: cfg,
		orders:  orders,
	}
}

// Submit validates and prices the submission, persists the resulting
// order, and returns its receipt.
//
// Failures are typed: a *ValidationError carries every violated field
// rule, pricing.ErrBelowMinimum and *pricing.UnknownTierError reject the
// business rules, and anything else is a storage failure.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Receipt, error) {
	quantities, verr := sub.Validate()
	if verr != nil {
		return nil, verr
	}

	quote, err := s.pricing.Quote(quantities, strings.TrimSpace(sub.Province), sub.DeliveryTier)
	if err != nil {
		return nil, err
	}

	o := &Order{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(sub.Name),
		Address:        strings.TrimSpace(sub.Address),
		City:           strings.TrimSpace(sub.City),
		Province:       strings.TrimSpace(sub.Province),
		PostalCode:     strings.TrimSpace(sub.PostalCode),
		Phone:          strings.TrimSpace(sub.Phone),
		Email:          strings.TrimSpace(sub.Email),
		Quantities:     quantities,
		TaxAmount:      quote.Tax.Round(2),
		ShippingCharge: quote.Shipping.Round(2),
		Total:          quote.Total.Round(2),
	}
	for i, lt := range quote.LineTotals {
		o.LineTotals[i] = lt.Round(2)
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	return &Receipt{
		OrderID:      o.ID,
		ProductNames: s.pricing.ProductNames,
		Quantities:   quantities,
		UnitPrices:   s.pricing.UnitPrices,
		LineTotals:   o.LineTotals,
		Subtotal:     quote.Subtotal.Round(2),
		Shipping:     o.ShippingCharge,
		Tax:          o.TaxAmount,
		Total:        o.Total,
	}, nil
}

// History returns every persisted order, oldest first.
func (s *Service) History(ctx context.Context) ([]Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}
