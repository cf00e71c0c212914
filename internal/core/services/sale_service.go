package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/google/uuid"
)

// ChangeNotifier is the slice of the insight service the record services
// need: a nudge that sales or expenses changed.
type ChangeNotifier interface {
	NotifyDataChanged()
}

type saleService struct {
	saleRepo     portsrepo.SaleRepository
	customerRepo portsrepo.CustomerRepository
	notifier     ChangeNotifier
}

// NewSaleService creates the sale recording service.
func NewSaleService(saleRepo portsrepo.SaleRepository, customerRepo portsrepo.CustomerRepository, notifier ChangeNotifier) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo, customerRepo: customerRepo, notifier: notifier}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid sale date %q", apperrors.ErrValidation, req.Date)
	}
	if req.TotalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: sale total must not be negative", apperrors.ErrValidation)
	}

	sale := domain.Sale{
		SaleID:       uuid.NewString(),
		Date:         date,
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Quantity:     req.Quantity,
		TotalPrice:   req.TotalPrice,
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		logger.Error("Failed to save sale", slog.String("error", err.Error()), slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	// Keep the customer's materialized spend total in step. An unknown
	// customer id is tolerated: the sale stands on its own.
	if err := s.customerRepo.AddToTotalSpent(ctx, sale.CustomerID, sale.TotalPrice); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update customer spend total", slog.String("error", err.Error()), slog.String("customer_id", sale.CustomerID))
			return nil, err
		}
		logger.Debug("Sale references unknown customer, spend total untouched", slog.String("customer_id", sale.CustomerID))
	}

	s.notifier.NotifyDataChanged()

	logger.Info("Sale recorded", slog.String("sale_id", sale.SaleID), slog.String("total", sale.TotalPrice.String()))
	return &sale, nil
}

func (s *saleService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	return sales, nil
}

func (s *saleService) DeleteSales(ctx context.Context, ids []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.saleRepo.DeleteSales(ctx, ids); err != nil {
		logger.Error("Failed to delete sales", slog.String("error", err.Error()))
		return err
	}
	s.notifier.NotifyDataChanged()
	logger.Info("Sales deleted", slog.Int("count", len(ids)))
	return nil
}
