package model

import (
	"encoding/json"
	"time"
)

// TimestampLayout renders times as ISO 8601 UTC with millisecond precision,
// e.g. 2025-03-01T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ContactSubmission is a stored contact form entry. ID and Timestamp are
// assigned by the repository when the submission is saved and never change.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MarshalJSON encodes Timestamp with TimestampLayout.
func (c ContactSubmission) MarshalJSON() ([]byte, error) {
	type alias ContactSubmission
	return json.Marshal(struct {
		alias
		Timestamp string `json:"timestamp"`
	}{
		alias:     alias(c),
		Timestamp: FormatTimestamp(c.Timestamp),
	})
}

// ContactListOptions carries pagination parameters for listing submissions.
// A zero Limit returns every submission from Offset onwards.
type ContactListOptions struct {
	Limit  int
	Offset int
}
