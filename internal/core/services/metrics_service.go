package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/utils/finmetrics"
)

type metricsService struct {
	productRepo  portsrepo.ProductRepository
	saleRepo     portsrepo.SaleRepository
	expenseRepo  portsrepo.ExpenseRepository
	customerRepo portsrepo.CustomerRepository
}

// NewMetricsService creates the derived-metrics service. All computation
// is delegated to the pure finmetrics functions; this layer only collects
// the snapshot.
func NewMetricsService(productRepo portsrepo.ProductRepository, saleRepo portsrepo.SaleRepository, expenseRepo portsrepo.ExpenseRepository, customerRepo portsrepo.CustomerRepository) portssvc.MetricsSvcFacade {
	return &metricsService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.MetricsSvcFacade = (*metricsService)(nil)

func (s *metricsService) Summary(ctx context.Context) (*domain.SummaryTotals, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for summary: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for summary: %w", err)
	}
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for summary: %w", err)
	}

	totalRevenue := finmetrics.TotalRevenue(sales)
	totalExpenses := finmetrics.TotalExpenses(expenses)
	return &domain.SummaryTotals{
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     totalRevenue.Sub(totalExpenses),
		CustomerCount: len(customers),
		ByCategory:    finmetrics.ExpensesByCategory(expenses),
	}, nil
}

func (s *metricsService) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyPoint, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for monthly revenue: %w", err)
	}
	return finmetrics.MonthlyRevenue(sales), nil
}

func (s *metricsService) MonthlyExpenses(ctx context.Context) ([]domain.MonthlyPoint, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for monthly expenses: %w", err)
	}
	return finmetrics.MonthlyExpenses(expenses), nil
}

func (s *metricsService) MRR(ctx context.Context) ([]domain.MonthlyPoint, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for mrr: %w", err)
	}
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for mrr: %w", err)
	}
	return finmetrics.MRR(sales, products), nil
}

func (s *metricsService) LTVCAC(ctx context.Context) ([]domain.LTVCACPoint, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for ltv/cac: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for ltv/cac: %w", err)
	}
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for ltv/cac: %w", err)
	}
	return finmetrics.LTVCAC(sales, expenses, customers), nil
}

func (s *metricsService) Inventory(ctx context.Context, filter portssvc.InventoryFilter) (*domain.InventoryValuation, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for inventory: %w", err)
	}

	filtered := products[:0:0]
	for _, p := range products {
		if !matchesFilter(p, filter) {
			continue
		}
		filtered = append(filtered, p)
	}

	valuation := finmetrics.ValueInventory(filtered)
	return &valuation, nil
}

// matchesFilter mirrors the dashboard's search box and stock dropdown.
func matchesFilter(p domain.Product, filter portssvc.InventoryFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.SKU), needle) {
			return false
		}
	}
	if filter.Status != "" && finmetrics.StockStatusOf(p) != filter.Status {
		return false
	}
	return true
}
