package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a single sale transaction. Product and customer names are
// denormalized snapshots taken at sale time, so later catalog edits never
// rewrite history. TotalPrice is supplied by the caller and is independent
// of Price x Quantity (discounts, bundles).
type Sale struct {
	SaleID       string          `json:"saleID"`
	Date         time.Time       `json:"date"`
	ProductID    string          `json:"productID"`
	ProductName  string          `json:"productName"`
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	Quantity     int             `json:"quantity"`   // >= 1
	TotalPrice   decimal.Decimal `json:"totalPrice"` // >= 0
}
