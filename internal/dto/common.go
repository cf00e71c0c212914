package dto

import "time"

// DateOnly is the wire format for calendar dates.
const DateOnly = "2006-01-02"

// ParseDate parses a YYYY-MM-DD wire date. Services wrap a failure here
// in apperrors.ErrValidation so handlers answer 400.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateOnly, s)
}

// FormatDate renders a calendar date in wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateOnly)
}

// DeleteRequest is the shared payload for bulk deletes. Deletion is
// unconditional once received; confirmation is a client concern.
type DeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
