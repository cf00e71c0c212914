package memory

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

var _ portsrepo.CustomerRepository = (*Store)(nil)

// SaveCustomer prepends the customer.
func (s *Store) SaveCustomer(_ context.Context, customer domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]domain.Customer{customer}, s.customers...)
	return nil
}

// FindCustomerByID returns the customer or apperrors.ErrNotFound.
func (s *Store) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].CustomerID == customerID {
			c := s.customers[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListCustomers returns a copy of the customers, newest first.
func (s *Store) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// AddToTotalSpent increments the customer's materialized spend total.
func (s *Store) AddToTotalSpent(_ context.Context, customerID string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].CustomerID == customerID {
			s.customers[i].TotalSpent = s.customers[i].TotalSpent.Add(amount)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
