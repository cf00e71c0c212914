package dto

import (
	"time"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// DateRange bounds the forecast analysis period.
type DateRange struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// ForecastRequest carries the user assumptions for a forecast run.
type ForecastRequest struct {
	DateRange DateRange `json:"dateRange" binding:"required"`
	Notes     string    `json:"notes"`
}

// AlertResponse defines the data returned for a financial alert.
type AlertResponse struct {
	AlertID   string               `json:"alertID"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Severity  domain.AlertSeverity `json:"severity"`
	Timestamp string               `json:"timestamp"`
}

// ToAlertResponse converts a domain.FinancialAlert to its DTO.
func ToAlertResponse(a *domain.FinancialAlert) AlertResponse {
	return AlertResponse{
		AlertID:   a.AlertID,
		Title:     a.Title,
		Message:   a.Message,
		Severity:  a.Severity,
		Timestamp: a.Timestamp.UTC().Format(time.RFC3339),
	}
}

// ToListAlertResponse converts a slice of alerts to DTOs.
func ToListAlertResponse(alerts []domain.FinancialAlert) []AlertResponse {
	res := make([]AlertResponse, len(alerts))
	for i := range alerts {
		res[i] = ToAlertResponse(&alerts[i])
	}
	return res
}
