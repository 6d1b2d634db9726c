package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for input and display.
const DateLayout = "2006-01-02"

// Status indicates where a log is in the review lifecycle.
type Status string

const (
	Pending  Status = "Pending"
	Approved Status = "Approved"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == Pending || s == Approved
}

// ParseStatus converts user input to a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

// Envelope holds the fields shared by every log kind.
type Envelope struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Status Status    `json:"status"`
	Notes  string    `json:"notes,omitempty"`
}

// NormalizeDate truncates t to its UTC calendar date (midnight UTC).
// Time of day and the source time zone never affect date comparisons.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// FormatDate renders the normalized calendar date of t, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return NormalizeDate(t).Format(DateLayout)
}

// SameDate reports whether a and b fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}
