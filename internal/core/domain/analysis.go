package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastPoint is one forward month of the AI-generated forecast.
type ForecastPoint struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// KPIHistoryPoint is one month of history backing a KPI deep-dive.
type KPIHistoryPoint struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// KPIAnalysis is an AI deep-dive into one KPI, with a short trend history.
type KPIAnalysis struct {
	KPI      string            `json:"kpi"`
	Value    string            `json:"value"`
	Analysis string            `json:"analysis"`
	History  []KPIHistoryPoint `json:"history"`
}

// AIAnalysis is the structured forecast returned by the analysis service.
type AIAnalysis struct {
	Forecast         []ForecastPoint `json:"forecast"`
	Trends           []string        `json:"trends"`
	Recommendations  []string        `json:"recommendations"`
	KeyOpportunities []string        `json:"keyOpportunities"`
	PotentialRisks   []string        `json:"potentialRisks"`
	KPIAnalysis      []KPIAnalysis   `json:"kpiAnalysis"`
}

// ForecastAssumptions carries the user-provided inputs for a forecast run:
// the analysis period and free-text strategic notes.
type ForecastAssumptions struct {
	Start time.Time
	End   time.Time
	Notes string
}
