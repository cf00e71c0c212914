package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/bizpulse/bizpulse_backend/internal/utils/finmetrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepository
	saleRepo     portsrepo.SaleRepository
}

// NewCustomerService creates the customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository, saleRepo portsrepo.SaleRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, saleRepo: saleRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		TotalSpent: decimal.Zero,
		JoinDate:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

func (s *customerService) GetCustomerMetrics(ctx context.Context, customerID string) (*domain.CustomerMetrics, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for customer metrics: %w", err)
	}

	metrics := finmetrics.CustomerMetrics(*customer, sales)
	return &metrics, nil
}
