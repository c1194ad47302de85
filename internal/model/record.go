// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// TIMESTAMPS
// =============================================================================

// Timestamp wraps time.Time to tolerate the backend's timestamp format.
// The server emits naive datetimes (no zone suffix) which the stock
// time.Time unmarshaler rejects; those are interpreted as UTC.
type Timestamp struct {
	time.Time
}

// timeFormats lists accepted layouts in trial order.
var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// UnmarshalJSON parses RFC 3339 or naive server datetimes.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeFormats {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON emits RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// =============================================================================
// RECORDS
// =============================================================================

// Records mirror the backend rows one to one. JSON tags match the wire
// field names. Lists arrive newest first and that order is preserved.

// Chat is one logged question/answer exchange.
type Chat struct {
	ID       int       `json:"id"`
	Email    string    `json:"email"`
	Model    string    `json:"model"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Date     Timestamp `json:"date"`
}

// Image is one logged image generation. ImageURL references the stored
// artifact, the backend does not inline image bytes.
type Image struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	Model       string    `json:"model"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image"`
	Date        Timestamp `json:"date"`
}

// Video is one logged video generation. The backend stores no duration
// column, so fetched videos carry none even though submissions send one.
type Video struct {
	ID       int       `json:"id"`
	Email    string    `json:"email"`
	Model    string    `json:"model"`
	Content  string    `json:"content"`
	VideoURL string    `json:"video"`
	Date     Timestamp `json:"date"`
}
