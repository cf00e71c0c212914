package dto

import (
	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to add a customer.
// Spend total and join date are set by the service, never by the caller.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	JoinDate   string          `json:"joinDate"`
}

// CustomerMetricsResponse carries the derived per-customer figures.
type CustomerMetricsResponse struct {
	CustomerID        string          `json:"customerID"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	SaleCount         int             `json:"saleCount"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

// ToCustomerResponse converts a domain.Customer to its response DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		TotalSpent: c.TotalSpent,
		JoinDate:   FormatDate(c.JoinDate),
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to DTOs.
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// ToCustomerMetricsResponse converts derived customer metrics to a DTO.
func ToCustomerMetricsResponse(customerID string, m *domain.CustomerMetrics) CustomerMetricsResponse {
	return CustomerMetricsResponse{
		CustomerID:        customerID,
		TotalSpent:        m.TotalSpent,
		SaleCount:         m.SaleCount,
		AverageOrderValue: m.AverageOrderValue,
	}
}
