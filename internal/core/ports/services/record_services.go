package services

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
)

// ProductSvcFacade defines operations on the product catalog.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	DeleteProducts(ctx context.Context, ids []string) error
}

// SaleSvcFacade defines operations on sales. Creating a sale also
// increments the referenced customer's spend total (a silent no-op when
// the customer id is unknown) and nudges the insight scheduler.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	DeleteSales(ctx context.Context, ids []string) error
}

// ExpenseSvcFacade defines operations on expenses.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	DeleteExpenses(ctx context.Context, ids []string) error
}

// CustomerSvcFacade defines operations on customers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerMetrics(ctx context.Context, customerID string) (*domain.CustomerMetrics, error)
}

// GoalSvcFacade defines operations on goals. Listed goals always carry a
// freshly derived current value and clamped progress percentage.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]domain.GoalProgress, error)
}
