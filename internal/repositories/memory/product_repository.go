package memory

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
)

var _ portsrepo.ProductRepository = (*Store)(nil)

// SaveProduct prepends the product; the catalog stays in insertion order,
// newest first.
func (s *Store) SaveProduct(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product{product}, s.products...)
	return nil
}

// ListProducts returns a copy of the catalog, newest first.
func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// DeleteProducts removes members of the id set. Unknown ids are ignored.
func (s *Store) DeleteProducts(_ context.Context, ids []string) error {
	set := idSet(ids)
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if _, gone := set[p.ProductID]; !gone {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}
