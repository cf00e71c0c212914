package dto

import (
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to add a goal. Target must be
// strictly positive; the service rejects anything else.
type CreateGoalRequest struct {
	Title    string          `json:"title" binding:"required"`
	Type     domain.GoalType `json:"type" binding:"required,oneof=revenue profit customers"`
	Target   decimal.Decimal `json:"target"`
	Deadline string          `json:"deadline" binding:"required"`
}

// GoalResponse returns a goal together with its freshly derived progress.
type GoalResponse struct {
	GoalID   string          `json:"goalID"`
	Title    string          `json:"title"`
	Type     domain.GoalType `json:"type"`
	Target   decimal.Decimal `json:"target"`
	Current  decimal.Decimal `json:"current"`
	Percent  decimal.Decimal `json:"percent"`
	Deadline string          `json:"deadline"`
}

// ToGoalResponse converts a derived domain.GoalProgress to its DTO.
func ToGoalResponse(g *domain.GoalProgress) GoalResponse {
	return GoalResponse{
		GoalID:   g.GoalID,
		Title:    g.Title,
		Type:     g.Type,
		Target:   g.Target,
		Current:  g.Current,
		Percent:  g.Percent,
		Deadline: FormatDate(g.Deadline),
	}
}

// ToListGoalResponse converts a slice of domain.GoalProgress to DTOs.
func ToListGoalResponse(goals []domain.GoalProgress) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}
