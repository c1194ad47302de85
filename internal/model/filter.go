// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"net/url"
	"time"
)

// =============================================================================
// DATE FILTERING
// =============================================================================

// DateLayout is the wire format for filter bounds.
const DateLayout = "2006-01-02"

// DateRange bounds a record fetch. Either side may be empty for an open
// interval. End is inclusive; the server widens it by one day internally.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether no bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Validate checks bound format. Ordering is deliberately not checked:
// an inverted range goes out as-is and simply matches nothing.
func (r DateRange) Validate() error {
	if r.Start != "" {
		if _, err := time.Parse(DateLayout, r.Start); err != nil {
			return &FieldError{Field: "start date", Reason: "must be YYYY-MM-DD"}
		}
	}
	if r.End != "" {
		if _, err := time.Parse(DateLayout, r.End); err != nil {
			return &FieldError{Field: "end date", Reason: "must be YYYY-MM-DD"}
		}
	}
	return nil
}

// Query returns the URL parameters for this range. Unset bounds produce no
// parameter at all, the server treats absence as unbounded.
func (r DateRange) Query() url.Values {
	q := url.Values{}
	if r.Start != "" {
		q.Set("start_date", r.Start)
	}
	if r.End != "" {
		q.Set("end_date", r.End)
	}
	return q
}
