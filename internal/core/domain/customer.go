package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a buyer. TotalSpent is a materialized running total:
// it is incremented when a sale referencing this customer is added and is
// not decremented when sales are deleted.
type Customer struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	JoinDate   time.Time       `json:"joinDate"`
}
