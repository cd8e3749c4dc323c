package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// NumProducts is the number of products on the order form. The catalog is
// fixed; quantities, line totals, and unit prices are all indexed by
// product position.
const NumProducts = 3

// Order represents a persisted customer order: the shipping details, the
// quantity ordered of each product, and the computed charges. Orders are
// append-only; once created they are never mutated or deleted.
type Order struct {
	ID             string
	Name           string
	Address        string
	City           string
	Province       string
	PostalCode     string
	Phone          string
	Email          string
	Quantities     [NumProducts]int
	LineTotals     [NumProducts]decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingCharge decimal.Decimal
	Total          decimal.Decimal
	CreatedAt      time.Time
}

// Subtotal returns the pre-tax, pre-shipping sum of the line totals.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, lt := range o.LineTotals {
		sum = sum.Add(lt)
	}
	return sum
}

// Repository defines persistence operations for orders. The store is
// append-only: there are no update or delete operations.
type Repository interface {
	// Create persists a new order. The repository assigns CreatedAt and
	// writes it back to the given order.
	Create(ctx context.Context, o *Order) error
	// List returns every persisted order in creation order, oldest first.
	List(ctx context.Context) ([]Order, error)
}
