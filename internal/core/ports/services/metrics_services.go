package services

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// InventoryFilter narrows the product set the valuation is computed over,
// mirroring the dashboard's search box and stock-status dropdown.
// Zero values mean "no filtering".
type InventoryFilter struct {
	// Search matches case-insensitively against product name and SKU.
	Search string
	// Status keeps only products in the given stock classification.
	// Recurring products are never matched by a status filter.
	Status domain.StockStatus
}

// MetricsSvcFacade computes read-only derived views from the current
// record snapshot. Every method is a pure function of the snapshot:
// identical data yields identical output.
type MetricsSvcFacade interface {
	// Summary returns the scalar totals plus per-category expense totals.
	Summary(ctx context.Context) (*domain.SummaryTotals, error)

	// MonthlyRevenue buckets sale totals by calendar month,
	// chronologically ordered.
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyPoint, error)

	// MonthlyExpenses buckets expense amounts by calendar month,
	// chronologically ordered.
	MonthlyExpenses(ctx context.Context) ([]domain.MonthlyPoint, error)

	// MRR buckets recurring-product sales by month. Months without
	// recurring sales are absent, not zero-filled.
	MRR(ctx context.Context) ([]domain.MonthlyPoint, error)

	// LTVCAC derives the lifetime-value / acquisition-cost series over
	// every month touched by sales, marketing spend, or customer joins.
	LTVCAC(ctx context.Context) ([]domain.LTVCACPoint, error)

	// Inventory values the (filtered) product set and classifies stock.
	Inventory(ctx context.Context, filter InventoryFilter) (*domain.InventoryValuation, error)
}
