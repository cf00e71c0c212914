package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizpulse/bizpulse_backend/internal/apperrors"
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
	portssvc "github.com/bizpulse/bizpulse_backend/internal/core/ports/services"
	"github.com/bizpulse/bizpulse_backend/internal/dto"
	"github.com/bizpulse/bizpulse_backend/internal/middleware"
	"github.com/google/uuid"
)

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepository
	notifier    ChangeNotifier
}

// NewExpenseService creates the expense recording service.
func NewExpenseService(repo portsrepo.ExpenseRepository, notifier ChangeNotifier) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo, notifier: notifier}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid expense date %q", apperrors.ErrValidation, req.Date)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense amount must not be negative", apperrors.ErrValidation)
	}

	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.notifier.NotifyDataChanged()

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("category", expense.Category))
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpenses(ctx context.Context, ids []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.expenseRepo.DeleteExpenses(ctx, ids); err != nil {
		logger.Error("Failed to delete expenses", slog.String("error", err.Error()))
		return err
	}
	s.notifier.NotifyDataChanged()
	logger.Info("Expenses deleted", slog.Int("count", len(ids)))
	return nil
}
