package memory

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
)

var _ portsrepo.AlertRepository = (*Store)(nil)

// PrependAlerts puts the new alerts at the head of the window and trims
// it to domain.MaxRecentAlerts.
func (s *Store) PrependAlerts(_ context.Context, alerts []domain.FinancialAlert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := make([]domain.FinancialAlert, 0, len(alerts)+len(s.alerts))
	merged = append(merged, alerts...)
	merged = append(merged, s.alerts...)
	if len(merged) > domain.MaxRecentAlerts {
		merged = merged[:domain.MaxRecentAlerts]
	}
	s.alerts = merged
	return nil
}

// ListAlerts returns a copy of the window, newest first.
func (s *Store) ListAlerts(_ context.Context) ([]domain.FinancialAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.FinancialAlert, len(s.alerts))
	copy(out, s.alerts)
	return out, nil
}
