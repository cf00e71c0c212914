package services

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
)

// AlertWindow is the data handed to the analysis provider for alert
// generation: a recent window and the preceding one for comparison.
type AlertWindow struct {
	RecentSales      []domain.Sale
	PreviousSales    []domain.Sale
	RecentExpenses   []domain.Expense
	PreviousExpenses []domain.Expense
}

// AnalysisProvider is the outbound contract with the external AI text
// generation service. Implementations must be safe for concurrent use.
type AnalysisProvider interface {
	// IsConfigured reports whether a credential is present. When false,
	// alert generation is skipped entirely.
	IsConfigured() bool

	// GenerateAlerts may return 0-3 alert drafts for the given windows.
	// Callers treat any error as "no alerts".
	GenerateAlerts(ctx context.Context, window AlertWindow) ([]domain.AlertDraft, error)

	// GenerateAnalysis returns a structured forecast for the full current
	// data set plus user assumptions. Errors propagate to the caller.
	GenerateAnalysis(ctx context.Context, products []domain.Product, sales []domain.Sale, expenses []domain.Expense, customers []domain.Customer, assumptions domain.ForecastAssumptions) (*domain.AIAnalysis, error)
}

// InsightSvcFacade coordinates the AI analysis service: debounced alert
// refreshes on data changes, on-demand forecasts, and the rolling alert
// window.
type InsightSvcFacade interface {
	// NotifyDataChanged restarts the alert debounce timer. Bursts of
	// mutations coalesce into a single provider call after the settling
	// period.
	NotifyDataChanged()

	// RecentAlerts returns the rolling alert window, newest first.
	RecentAlerts(ctx context.Context) ([]domain.FinancialAlert, error)

	// GenerateForecast runs a forecast with the given assumptions.
	// A provider failure clears the cached analysis and is returned to
	// the caller (wrapped in apperrors.ErrUpstream).
	GenerateForecast(ctx context.Context, req dto.ForecastRequest) (*domain.AIAnalysis, error)

	// LastAnalysis returns the most recent successful forecast, or
	// apperrors.ErrNotFound if none exists (or the last run failed).
	LastAnalysis(ctx context.Context) (*domain.AIAnalysis, error)

	// Close stops the debounce timer and waits for no further refreshes.
	Close()
}
