package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketingCategory is the expense category that feeds CAC computation.
// Categories are free-text labels; this one has derived-metric meaning.
const MarketingCategory = "Marketing"

// Expense is an immutable business expense record.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // >= 0
}
