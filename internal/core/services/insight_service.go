package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/google/uuid"
)

// alertRequestTimeout bounds a single background alert refresh.
const alertRequestTimeout = 30 * time.Second

// alertWindowSpan is the width of the recent / previous comparison
// windows handed to the analysis provider.
const alertWindowSpan = 30 * 24 * time.Hour

type insightService struct {
	productRepo  portsrepo.ProductRepository
	saleRepo     portsrepo.SaleRepository
	expenseRepo  portsrepo.ExpenseRepository
	customerRepo portsrepo.CustomerRepository
	alertRepo    portsrepo.AlertRepository
	provider     portssvc.AnalysisProvider
	logger       *slog.Logger
	debounce     time.Duration

	mu           sync.Mutex
	timer        *time.Timer
	generation   uint64
	lastAnalysis *domain.AIAnalysis
	closed       bool
}

// NewInsightService creates the insight coordinator. Alert refreshes are
// debounced: bursts of sales/expense mutations within the settling period
// coalesce into one provider call, and a response from a superseded
// refresh is dropped rather than merged behind newer data.
func NewInsightService(
	productRepo portsrepo.ProductRepository,
	saleRepo portsrepo.SaleRepository,
	expenseRepo portsrepo.ExpenseRepository,
	customerRepo portsrepo.CustomerRepository,
	alertRepo portsrepo.AlertRepository,
	provider portssvc.AnalysisProvider,
	logger *slog.Logger,
	debounce time.Duration,
) portssvc.InsightSvcFacade {
	return &insightService{
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		customerRepo: customerRepo,
		alertRepo:    alertRepo,
		provider:     provider,
		logger:       logger,
		debounce:     debounce,
	}
}

var _ portssvc.InsightSvcFacade = (*insightService)(nil)

func (s *insightService) NotifyDataChanged() {
	if s.provider == nil || !s.provider.IsConfigured() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	// Superseding bumps the generation, so a refresh already in flight
	// becomes stale and its response is discarded on arrival.
	s.generation++
	gen := s.generation
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.refreshAlerts(gen)
	})
}

// refreshAlerts snapshots sales/expenses, asks the provider for alert
// drafts, and merges them into the rolling window. Failures are absorbed:
// an alert refresh must never interrupt the session.
func (s *insightService) refreshAlerts(gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), alertRequestTimeout)
	defer cancel()

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		s.logger.Warn("Alert refresh skipped, could not list sales", slog.String("error", err.Error()))
		return
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.logger.Warn("Alert refresh skipped, could not list expenses", slog.String("error", err.Error()))
		return
	}
	if len(sales) == 0 && len(expenses) == 0 {
		return
	}

	drafts, err := s.provider.GenerateAlerts(ctx, buildAlertWindow(sales, expenses, time.Now().UTC()))
	if err != nil {
		s.logger.Warn("Alert generation failed, continuing without alerts", slog.String("error", err.Error()))
		return
	}
	if len(drafts) == 0 {
		return
	}

	s.mu.Lock()
	stale := gen != s.generation || s.closed
	s.mu.Unlock()
	if stale {
		s.logger.Debug("Dropping stale alert response", slog.Uint64("generation", gen))
		return
	}

	now := time.Now().UTC()
	alerts := make([]domain.FinancialAlert, 0, len(drafts))
	for _, d := range drafts {
		if !d.Severity.Valid() {
			s.logger.Warn("Discarding alert draft with unknown severity", slog.String("severity", string(d.Severity)))
			continue
		}
		alerts = append(alerts, domain.FinancialAlert{
			AlertID:   uuid.NewString(),
			Title:     d.Title,
			Message:   d.Message,
			Severity:  d.Severity,
			Timestamp: now,
		})
	}
	if len(alerts) == 0 {
		return
	}

	if err := s.alertRepo.PrependAlerts(ctx, alerts); err != nil {
		s.logger.Warn("Failed to store alerts", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Financial alerts refreshed", slog.Int("count", len(alerts)))
}

// buildAlertWindow splits sales/expenses into the last 30 days and the
// 30 days before that.
func buildAlertWindow(sales []domain.Sale, expenses []domain.Expense, now time.Time) portssvc.AlertWindow {
	recentCutoff := now.Add(-alertWindowSpan)
	previousCutoff := now.Add(-2 * alertWindowSpan)

	var w portssvc.AlertWindow
	for _, s := range sales {
		switch {
		case s.Date.After(recentCutoff):
			w.RecentSales = append(w.RecentSales, s)
		case s.Date.After(previousCutoff):
			w.PreviousSales = append(w.PreviousSales, s)
		}
	}
	for _, e := range expenses {
		switch {
		case e.Date.After(recentCutoff):
			w.RecentExpenses = append(w.RecentExpenses, e)
		case e.Date.After(previousCutoff):
			w.PreviousExpenses = append(w.PreviousExpenses, e)
		}
	}
	return w
}

func (s *insightService) RecentAlerts(ctx context.Context) ([]domain.FinancialAlert, error) {
	alerts, err := s.alertRepo.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []domain.FinancialAlert{}
	}
	return alerts, nil
}

func (s *insightService) GenerateForecast(ctx context.Context, req dto.ForecastRequest) (*domain.AIAnalysis, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.provider == nil || !s.provider.IsConfigured() {
		return nil, fmt.Errorf("%w: analysis provider not configured", apperrors.ErrUpstream)
	}

	start, err := dto.ParseDate(req.DateRange.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid range start %q", apperrors.ErrValidation, req.DateRange.Start)
	}
	end, err := dto.ParseDate(req.DateRange.End)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid range end %q", apperrors.ErrValidation, req.DateRange.End)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end precedes start", apperrors.ErrValidation)
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for forecast: %w", err)
	}
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for forecast: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for forecast: %w", err)
	}
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for forecast: %w", err)
	}

	assumptions := domain.ForecastAssumptions{Start: start, End: end, Notes: req.Notes}
	analysis, err := s.provider.GenerateAnalysis(ctx, products, sales, expenses, customers, assumptions)
	if err != nil {
		// A failed run clears the cache so stale and failed states are
		// never conflated.
		s.mu.Lock()
		s.lastAnalysis = nil
		s.mu.Unlock()
		logger.Error("Forecast generation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUpstream, err)
	}

	s.mu.Lock()
	s.lastAnalysis = analysis
	s.mu.Unlock()

	logger.Info("Forecast generated", slog.Int("forecast_months", len(analysis.Forecast)))
	return analysis, nil
}

func (s *insightService) LastAnalysis(context.Context) (*domain.AIAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastAnalysis == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.lastAnalysis, nil
}

func (s *insightService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
	}
}
