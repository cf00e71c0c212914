package memory

import (
	"context"
	"sort"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
)

var _ portsrepo.ExpenseRepository = (*Store)(nil)

// SaveExpense prepends the expense and re-sorts descending by date, same
// tie-break rule as sales.
func (s *Store) SaveExpense(_ context.Context, expense domain.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]domain.Expense{expense}, s.expenses...)
	sort.SliceStable(s.expenses, func(i, j int) bool {
		return s.expenses[i].Date.After(s.expenses[j].Date)
	})
	return nil
}

// ListExpenses returns a copy of the expenses, descending by date.
func (s *Store) ListExpenses(_ context.Context) ([]domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

// DeleteExpenses removes members of the id set.
func (s *Store) DeleteExpenses(_ context.Context, ids []string) error {
	set := idSet(ids)
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if _, gone := set[e.ExpenseID]; !gone {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	return nil
}
