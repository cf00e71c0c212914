package memory

import (
	"context"
	"sort"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
)

var _ portsrepo.SaleRepository = (*Store)(nil)

// SaveSale prepends the sale and re-sorts descending by date. The prepend
// plus stable sort keeps the new sale ahead of older sales on the same
// date.
func (s *Store) SaveSale(_ context.Context, sale domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append([]domain.Sale{sale}, s.sales...)
	sort.SliceStable(s.sales, func(i, j int) bool {
		return s.sales[i].Date.After(s.sales[j].Date)
	})
	return nil
}

// ListSales returns a copy of the sales, descending by date.
func (s *Store) ListSales(_ context.Context) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out, nil
}

// DeleteSales removes members of the id set. Customer spend totals are
// deliberately left untouched.
func (s *Store) DeleteSales(_ context.Context, ids []string) error {
	set := idSet(ids)
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.sales[:0]
	for _, sale := range s.sales {
		if _, gone := set[sale.SaleID]; !gone {
			kept = append(kept, sale)
		}
	}
	s.sales = kept
	return nil
}
