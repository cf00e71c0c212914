package repositories

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	// SaveSale inserts a sale and re-sorts the collection descending by
	// date. Among equal dates the newly inserted sale sorts first.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// ListSales returns all sales, sorted descending by date.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// DeleteSales removes every sale whose id is in ids. No cascading
	// updates happen (customer totals are left untouched).
	DeleteSales(ctx context.Context, ids []string) error
}
