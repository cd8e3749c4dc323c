package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/order-intake/internal/domain/order"
)

const (
	createOrderSQL = `INSERT INTO orders (
		id, name, address, city, province, postal_code, phone, email,
		quantity1, quantity2, quantity3,
		line_total1, line_total2, line_total3,
		tax_amount, shipping_charge, total_amount)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING created_at`

	listOrdersSQL = `SELECT
		id, name, address, city, province, postal_code, phone, email,
		quantity1, quantity2, quantity3,
		line_total1, line_total2, line_total3,
		tax_amount, shipping_charge, total_amount, created_at
	FROM orders ORDER BY created_at, id`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists a new order. The database assigns the creation timestamp,
// which is written back to o.CreatedAt.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	row := r.pool.QueryRow(ctx, createOrderSQL,
		o.ID, o.Name, o.Address, o.City, o.Province, o.PostalCode, o.Phone, o.Email,
		o.Quantities[0], o.Quantities[1], o.Quantities[2],
		o.LineTotals[0], o.LineTotals[1], o.LineTotals[2],
		o.TaxAmount, o.ShippingCharge, o.Total,
	)
	if err := row.Scan(&o.CreatedAt); err != nil {
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}
	return nil
}

// List returns every persisted order in creation order, oldest first.
func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.Name, &o.Address, &o.City, &o.Province, &o.PostalCode, &o.Phone, &o.Email,
		&o.Quantities[0], &o.Quantities[1], &o.Quantities[2],
		&o.LineTotals[0], &o.LineTotals[1], &o.LineTotals[2],
		&o.TaxAmount, &o.ShippingCharge, &o.Total, &o.CreatedAt,
	)
	return o, err
}
