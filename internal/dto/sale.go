package dto

import (
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest defines the data needed to record a sale. Product and
// customer names are denormalized snapshots supplied by the caller along
// with the computed total price.
type CreateSaleRequest struct {
	Date         string          `json:"date" binding:"required"`
	ProductID    string          `json:"productID" binding:"required"`
	ProductName  string          `json:"productName" binding:"required"`
	CustomerID   string          `json:"customerID" binding:"required"`
	CustomerName string          `json:"customerName" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID       string          `json:"saleID"`
	Date         string          `json:"date"`
	ProductID    string          `json:"productID"`
	ProductName  string          `json:"productName"`
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:       s.SaleID,
		Date:         FormatDate(s.Date),
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Quantity:     s.Quantity,
		TotalPrice:   s.TotalPrice,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to DTOs.
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}
