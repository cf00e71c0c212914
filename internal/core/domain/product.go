package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifies the inventory level of a non-recurring product.
type StockStatus string

const (
	InStock    StockStatus = "In Stock"
	LowStock   StockStatus = "Low Stock"
	OutOfStock StockStatus = "Out of Stock"
	// NotStocked is reported for recurring products, which have no
	// meaningful inventory level.
	NotStocked StockStatus = "N/A"
)

// Product represents a catalog item within the core domain.
// Recurring products (subscriptions) have a semantically unbounded
// quantity and are excluded from inventory valuation.
type Product struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"` // non-negative
	Price       decimal.Decimal `json:"price"`    // unit price, non-negative
	IsRecurring bool            `json:"isRecurring"`
	CreatedAt   time.Time       `json:"createdAt"`
}
