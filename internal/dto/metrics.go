package dto

import (
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChartPointResponse is one {name, value} pair for chart consumption.
type ChartPointResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// LTVCACPointResponse is one month of the LTV vs CAC chart.
type LTVCACPointResponse struct {
	Name string          `json:"name"`
	LTV  decimal.Decimal `json:"ltv"`
	CAC  decimal.Decimal `json:"cac"`
}

// SummaryResponse carries the scalar dashboard KPIs.
type SummaryResponse struct {
	TotalRevenue  decimal.Decimal        `json:"totalRevenue"`
	TotalExpenses decimal.Decimal        `json:"totalExpenses"`
	NetProfit     decimal.Decimal        `json:"netProfit"`
	CustomerCount int                    `json:"customerCount"`
	ByCategory    []domain.CategoryTotal `json:"byCategory"`
}

// InventoryLineResponse is the valuation view of one product.
type InventoryLineResponse struct {
	ProductResponse
	LineValue decimal.Decimal    `json:"lineValue"`
	Status    domain.StockStatus `json:"status"`
}

// InventoryResponse is the valued, classified product set.
type InventoryResponse struct {
	Lines      []InventoryLineResponse `json:"lines"`
	TotalValue decimal.Decimal         `json:"totalValue"`
}

// ToChartPoints converts monthly buckets to chart pairs, preserving the
// chronological order produced by the metrics engine.
func ToChartPoints(points []domain.MonthlyPoint) []ChartPointResponse {
	res := make([]ChartPointResponse, len(points))
	for i, p := range points {
		res[i] = ChartPointResponse{Name: p.Label(), Value: p.Value}
	}
	return res
}

// ToLTVCACPoints converts LTV/CAC buckets to chart rows.
func ToLTVCACPoints(points []domain.LTVCACPoint) []LTVCACPointResponse {
	res := make([]LTVCACPointResponse, len(points))
	for i, p := range points {
		res[i] = LTVCACPointResponse{Name: p.Month.Format("Jan 2006"), LTV: p.LTV, CAC: p.CAC}
	}
	return res
}

// ToSummaryResponse converts derived totals to their DTO.
func ToSummaryResponse(s *domain.SummaryTotals) SummaryResponse {
	return SummaryResponse{
		TotalRevenue:  s.TotalRevenue,
		TotalExpenses: s.TotalExpenses,
		NetProfit:     s.NetProfit,
		CustomerCount: s.CustomerCount,
		ByCategory:    s.ByCategory,
	}
}

// ToInventoryResponse converts an inventory valuation to its DTO.
func ToInventoryResponse(v *domain.InventoryValuation) InventoryResponse {
	lines := make([]InventoryLineResponse, len(v.Lines))
	for i := range v.Lines {
		lines[i] = InventoryLineResponse{
			ProductResponse: ToProductResponse(&v.Lines[i].Product),
			LineValue:       v.Lines[i].LineValue,
			Status:          v.Lines[i].Status,
		}
	}
	return InventoryResponse{Lines: lines, TotalValue: v.TotalValue}
}
