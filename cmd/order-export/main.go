// Command order-export streams the full order history into a gzip
// compressed JSON-lines file, one order per line. Intended for ad-hoc
// reporting and backups.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/order-intake/internal/domain/order"
	"github.com/xenking/order-intake/internal/storage/postgres"
)

// exportOrder is the JSON-lines record written for each order.
type exportOrder struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	Province       string            `json:"province"`
	PostalCode     string            `json:"postal_code"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Quantities     []int             `json:"quantities"`
	LineTotals     []decimal.Decimal `json:"line_totals"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	ShippingCharge decimal.Decimal   `json:"shipping_charge"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	CreatedAt      time.Time         `json:"created_at"`
}

func main() {
	var (
		databaseURL string
		outPath     string
	)

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&outPath, "out", "orders-export.jsonl.gz", "output file path")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, outPath); err != nil {
		slog.Error("order export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("order export completed successfully", slog.String("out", outPath))
}

func run(ctx context.Context, databaseURL, outPath string) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	orders, err := postgres.NewOrderRepository(pool).List(ctx)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}

	slog.Info("exporting orders", slog.Int("count", len(orders)))

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer out.Close()

	// Encoding and compression run as separate pipeline stages so the
	// parallel gzip writer stays busy while records are marshaled.
	pr, pw := io.Pipe()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer pw.Close()
		enc := json.NewEncoder(pw)
		for i := range orders {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := enc.Encode(toExportOrder(&orders[i])); err != nil {
				return errors.Wrapf(err, "encode order %s", orders[i].ID)
			}
		}
		return nil
	})
	g.Go(func() error {
		gz := pgzip.NewWriter(out)
		if _, err := io.Copy(gz, pr); err != nil {
			// Unblock the encoder goroutine before reporting.
			pr.CloseWithError(err)
			return errors.Wrap(err, "compress")
		}
		return errors.Wrap(gz.Close(), "close gzip writer")
	})

	if err := g.Wait(); err != nil {
		return err
	}

	return errors.Wrap(out.Sync(), "sync output file")
}

func toExportOrder(o *order.Order) exportOrder {
	return exportOrder{
		ID:             o.ID,
		Name:           o.Name,
		Address:        o.Address,
		City:           o.City,
		Province:       o.Province,
		PostalCode:     o.PostalCode,
		Phone:          o.Phone,
		Email:          o.Email,
		Quantities:     o.Quantities[:],
		LineTotals:     o.LineTotals[:],
		TaxAmount:      o.TaxAmount,
		ShippingCharge: o.ShippingCharge,
		TotalAmount:    o.Total,
		CreatedAt:      o.CreatedAt,
	}
}
