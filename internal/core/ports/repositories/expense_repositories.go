package repositories

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expenses.
type ExpenseRepository interface {
	// SaveExpense inserts an expense and re-sorts the collection
	// descending by date, new item first among equal dates.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// ListExpenses returns all expenses, sorted descending by date.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// DeleteExpenses removes every expense whose id is in ids.
	DeleteExpenses(ctx context.Context, ids []string) error
}
