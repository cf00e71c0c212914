package repositories

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// AlertRepository holds the rolling recent-alerts window.
type AlertRepository interface {
	// PrependAlerts puts the given alerts at the head of the window and
	// discards anything beyond domain.MaxRecentAlerts.
	PrependAlerts(ctx context.Context, alerts []domain.FinancialAlert) error

	// ListAlerts returns the window, newest first.
	ListAlerts(ctx context.Context) ([]domain.FinancialAlert, error)
}
