package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPoint is one bucket of a month-grouped series, keyed by the first
// day of the calendar month. Ordering and equality always use Month, never
// the display label, so label formatting can never reorder a chart.
type MonthlyPoint struct {
	Month time.Time       `json:"-"`
	Value decimal.Decimal `json:"value"`
}

// Label renders the bucket month for chart axes, e.g. "Jul 2024".
func (p MonthlyPoint) Label() string {
	return p.Month.Format("Jan 2006")
}

// LTVCACPoint is one month of the LTV vs CAC series. LTV is cumulative
// (revenue to date over customers to date); CAC is per-month only.
type LTVCACPoint struct {
	Month time.Time       `json:"-"`
	LTV   decimal.Decimal `json:"ltv"`
	CAC   decimal.Decimal `json:"cac"`
}

// CategoryTotal sums expenses for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SummaryTotals are the scalar KPIs for the dashboard header.
type SummaryTotals struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	CustomerCount int             `json:"customerCount"`
	ByCategory    []CategoryTotal `json:"byCategory"`
}

// InventoryLine is the valuation view of a single product. Recurring
// products carry a zero line value and NotStocked status.
type InventoryLine struct {
	Product
	LineValue decimal.Decimal `json:"lineValue"`
	Status    StockStatus     `json:"status"`
}

// InventoryValuation is the valued, classified view of a (possibly
// filtered) product set.
type InventoryValuation struct {
	Lines      []InventoryLine `json:"lines"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// CustomerMetrics are the per-customer detail figures.
type CustomerMetrics struct {
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	SaleCount         int             `json:"saleCount"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}
