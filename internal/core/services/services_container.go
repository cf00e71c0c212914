package services

import (
	"log/slog"
	"time"

	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/repositories/memory"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(store *memory.Store, provider portssvc.AnalysisProvider, logger *slog.Logger, alertDebounce time.Duration) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Insight first since sales and expenses notify it on every mutation.
	container.Insight = NewInsightService(
		store, store, store, store, store,
		provider,
		logger,
		alertDebounce,
	)
	notifier := container.Insight.(ChangeNotifier)

	container.Product = NewProductService(store)
	container.Sale = NewSaleService(store, store, notifier)
	container.Expense = NewExpenseService(store, notifier)
	container.Customer = NewCustomerService(store, store)
	container.Goal = NewGoalService(store, store, store, store)
	container.Metrics = NewMetricsService(store, store, store, store)

	return container
}

var (
	_ portsrepo.ProductRepository  = (*memory.Store)(nil)
	_ portsrepo.SaleRepository     = (*memory.Store)(nil)
	_ portsrepo.ExpenseRepository  = (*memory.Store)(nil)
	_ portsrepo.CustomerRepository = (*memory.Store)(nil)
	_ portsrepo.GoalRepository     = (*memory.Store)(nil)
	_ portsrepo.AlertRepository    = (*memory.Store)(nil)
)
