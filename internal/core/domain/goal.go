package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType defines which derived metric a goal tracks.
type GoalType string

const (
	GoalRevenue   GoalType = "revenue"
	GoalProfit    GoalType = "profit"
	GoalCustomers GoalType = "customers"
)

// Goal is a business target. Note there is no stored "current" field:
// progress is a pure projection of the record snapshot, recomputed on
// every read, so it can never go stale.
type Goal struct {
	GoalID    string          `json:"goalID"`
	Title     string          `json:"title"`
	Type      GoalType        `json:"type"`
	Target    decimal.Decimal `json:"target"` // > 0
	Deadline  time.Time       `json:"deadline"`
	CreatedAt time.Time       `json:"createdAt"`
}

// GoalProgress pairs a goal with its freshly derived current value and the
// clamped display percentage (never above 100).
type GoalProgress struct {
	Goal
	Current decimal.Decimal `json:"current"`
	Percent decimal.Decimal `json:"percent"`
}
