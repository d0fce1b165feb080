package utils

import (
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromTime converts an instant to ISO8601 format, empty for the zero
// time (a poisoned wall clock renders as missing, never as the epoch).
func Iso8601FromTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ClockLabel returns the display clock string for an instant, empty for the
// zero time.
func ClockLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("15:04")
}

// ValidUntilFrom calculates how long a polled fix stays fresh
func ValidUntilFrom(base time.Time, pollIntervalMS int) string {
	if base.IsZero() || pollIntervalMS <= 0 {
		return ""
	}
	return base.Add(time.Duration(pollIntervalMS) * time.Millisecond).UTC().Format(time.RFC3339)
}
