package repositories

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// SaveCustomer prepends a new customer to the collection.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID returns the customer with the given id, or
	// apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers returns all customers, newest first.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// AddToTotalSpent increments the customer's materialized spend total.
	// Returns apperrors.ErrNotFound when the customer id is unknown.
	AddToTotalSpent(ctx context.Context, customerID string, amount decimal.Decimal) error
}
