package memory

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	portsrepo "github.com/bizpulse/bizpulse_backend/internal/core/ports/repositories"
)

var _ portsrepo.GoalRepository = (*Store)(nil)

// SaveGoal prepends the goal.
func (s *Store) SaveGoal(_ context.Context, goal domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append([]domain.Goal{goal}, s.goals...)
	return nil
}

// ListGoals returns a copy of the goals, newest first.
func (s *Store) ListGoals(_ context.Context) ([]domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Goal, len(s.goals))
	copy(out, s.goals)
	return out, nil
}
