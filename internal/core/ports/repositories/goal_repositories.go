package repositories

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// GoalRepository defines persistence operations for goals. Goals carry no
// stored progress; that is derived on read.
type GoalRepository interface {
	// SaveGoal prepends a new goal to the collection.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// ListGoals returns all goals, newest first.
	ListGoals(ctx context.Context) ([]domain.Goal, error)
}
