package domain

import "time"

// AlertSeverity is the closed set of alert severity levels.
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityInfo     AlertSeverity = "info"
)

// Valid reports whether s is one of the known severity levels.
func (s AlertSeverity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// AlertDraft is what the AI analysis service returns: an alert without
// identity. The insight service stamps id and timestamp on acceptance.
type AlertDraft struct {
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}

// FinancialAlert is an accepted alert held in the rolling recent-alerts
// window (newest first, capped at 10).
type FinancialAlert struct {
	AlertID   string        `json:"alertID"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
}

// MaxRecentAlerts caps the rolling alert window.
const MaxRecentAlerts = 10
