// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the in-memory authentication state.
package session

import (
	"errors"
	"sync"
	"time"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// Credential is the opaque bearer string sent on every authenticated
// request. It is the Google ID token itself, the backend re-verifies it
// on each call.
//
// SECURITY: Credentials live only in memory. They are never logged and
// never written to disk.
type Credential string

// Identity is who the backend says we are.
type Identity struct {
	Name    string
	Email   string
	Subject string
}

// Phase is the login state machine position.
type Phase int

const (
	Anonymous Phase = iota
	Authenticating
	Authenticated
)

func (p Phase) String() string {
	switch p {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

var (
	// ErrLoginInFlight is returned when a login is started while another
	// is still pending.
	ErrLoginInFlight = errors.New("login already in progress")
	// ErrAlreadyAuthenticated is returned when a login is started on an
	// authenticated session.
	ErrAlreadyAuthenticated = errors.New("already authenticated")
)

// =============================================================================
// HOLDER
// =============================================================================

// Holder is the mutex-guarded session container. Zero value is an
// anonymous session ready for use.
type Holder struct {
	mu sync.Mutex

	phase      Phase
	credential Credential
	identity   Identity
	loginTime  time.Time
}

// NewHolder returns an anonymous session holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Phase returns the current login phase.
func (h *Holder) Phase() Phase {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.phase
}

// BeginLogin moves Anonymous to Authenticating. A pending or completed
// login must be cleared first.
func (h *Holder) BeginLogin() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch h.phase {
	case Authenticating:
		return ErrLoginInFlight
	case Authenticated:
		return ErrAlreadyAuthenticated
	}
	h.phase = Authenticating
	return nil
}

// CompleteLogin stores the verified credential and identity.
func (h *Holder) CompleteLogin(cred Credential, id Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.phase = Authenticated
	h.credential = cred
	h.identity = id
	h.loginTime = time.Now()
}

// FailLogin returns to Anonymous after a rejected login attempt.
func (h *Holder) FailLogin() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.phase == Authenticating {
		h.phase = Anonymous
	}
}

// Clear deauthenticates: credential and identity are dropped and the
// holder returns to Anonymous. Idempotent.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.phase = Anonymous
	h.credential = ""
	h.identity = Identity{}
	h.loginTime = time.Time{}
}

// Credential returns the bearer credential. ok is false while not
// authenticated, callers must treat that as "skip the request".
func (h *Holder) Credential() (Credential, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.phase != Authenticated {
		return "", false
	}
	return h.credential, true
}

// Identity returns the authenticated identity, zero when anonymous.
func (h *Holder) Identity() Identity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity
}

// Email is shorthand for Identity().Email.
func (h *Holder) Email() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity.Email
}

// LoginTime returns when the current session was established.
func (h *Holder) LoginTime() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loginTime
}
