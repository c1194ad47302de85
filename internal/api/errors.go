// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

var (
	// ErrNotConfigured indicates the client has no base URL.
	ErrNotConfigured = errors.New("api: base URL not configured")

	// ErrBotCheckRequired indicates a login was attempted without a
	// bot-check proof. Raised locally, no request is sent.
	ErrBotCheckRequired = errors.New("api: bot-check token required")

	// ErrBotCheckRejected indicates the backend refused the bot-check proof.
	ErrBotCheckRejected = errors.New("api: bot-check verification failed")

	// ErrAuthFailed indicates the credential was rejected (HTTP 401).
	ErrAuthFailed = errors.New("api: authentication failed")

	// ErrForbidden indicates the backend refused access (HTTP 403),
	// typically an owner email mismatch.
	ErrForbidden = errors.New("api: access forbidden")

	// ErrNotFound indicates an unknown endpoint (HTTP 404).
	ErrNotFound = errors.New("api: not found")

	// ErrRateLimited indicates too many requests (HTTP 429).
	ErrRateLimited = errors.New("api: rate limited")

	// ErrServer indicates a backend failure (HTTP 5xx).
	ErrServer = errors.New("api: server error")

	// ErrResponseTooLarge indicates the response exceeded the read cap.
	ErrResponseTooLarge = errors.New("api: response too large")
)
