package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/bizpulse/bizpulse_backend/internal/utils/finmetrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type goalService struct {
	goalRepo     portsrepo.GoalRepository
	saleRepo     portsrepo.SaleRepository
	expenseRepo  portsrepo.ExpenseRepository
	customerRepo portsrepo.CustomerRepository
}

// NewGoalService creates the goal service. Progress is derived from the
// record snapshot on every read, so a listed goal can never be stale.
func NewGoalService(goalRepo portsrepo.GoalRepository, saleRepo portsrepo.SaleRepository, expenseRepo portsrepo.ExpenseRepository, customerRepo portsrepo.CustomerRepository) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:     goalRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deadline, err := dto.ParseDate(req.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid goal deadline %q", apperrors.ErrValidation, req.Deadline)
	}
	if req.Target.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: goal target must be positive", apperrors.ErrValidation)
	}

	goal := domain.Goal{
		GoalID:    uuid.NewString(),
		Title:     req.Title,
		Type:      req.Type,
		Target:    req.Target,
		Deadline:  deadline,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		logger.Error("Failed to save goal", slog.String("error", err.Error()), slog.String("goal_id", goal.GoalID))
		return nil, err
	}

	logger.Info("Goal created", slog.String("goal_id", goal.GoalID), slog.String("type", string(goal.Type)))
	return &goal, nil
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for goal progress: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for goal progress: %w", err)
	}
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for goal progress: %w", err)
	}

	out := make([]domain.GoalProgress, len(goals))
	for i, goal := range goals {
		current := finmetrics.GoalCurrent(goal.Type, sales, expenses, len(customers))
		out[i] = domain.GoalProgress{
			Goal:    goal,
			Current: current,
			Percent: finmetrics.GoalPercent(current, goal.Target),
		}
	}
	return out, nil
}
