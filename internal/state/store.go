// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package state holds the client's in-memory application state and the
// lifecycle rules around it, independent of any UI.
package state

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// REFRESH POLICY
// =============================================================================

// RefreshPolicy decides which stores reload after a successful submit.
type RefreshPolicy int

const (
	// RefreshOwn reloads only the submitted kind's store (default).
	RefreshOwn RefreshPolicy = iota
	// RefreshAll reloads all three stores.
	RefreshAll
)

// ParseRefreshPolicy maps the config string to a policy.
func ParseRefreshPolicy(s string) (RefreshPolicy, error) {
	switch s {
	case "", "own":
		return RefreshOwn, nil
	case "all":
		return RefreshAll, nil
	default:
		return 0, errors.New("refresh policy must be \"own\" or \"all\"")
	}
}

var (
	// ErrNotAuthenticated is returned for operations that need a session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSubmitInFlight rejects a second submit of the same kind while
	// one is pending.
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// =============================================================================
// PER-KIND TRACKING
// =============================================================================

// kindState tracks the async bookkeeping for one record kind.
type kindState struct {
	busy bool // refresh in flight
	// Generation counter for the stale-response guard. Every refresh
	// gets the next number; results older than the newest issued are
	// discarded so a slow early fetch can never overwrite a later one.
	issuedGen  uint64
	appliedGen uint64

	submitting bool
	// Idempotency key for the pending draft. Rotated only after a
	// successful submit so a retry of a failed draft reuses the key.
	idemKey string
}

// =============================================================================
// STORE
// =============================================================================

// Store is the application state: session, record stores, drafts and the
// filter range. Safe for concurrent use, the async fetch/submit
// completions land from goroutines.
type Store struct {
	mu sync.Mutex

	Session *session.Holder

	chats  []model.Chat
	images []model.Image
	videos []model.Video

	chatDraft  model.ChatDraft
	imageDraft model.ImageDraft
	videoDraft model.VideoDraft

	filter model.DateRange
	policy RefreshPolicy

	kinds map[model.Kind]*kindState
}

// New returns an empty store with defaulted drafts.
func New(policy RefreshPolicy) *Store {
	s := &Store{
		Session: session.NewHolder(),
		policy:  policy,
		kinds:   make(map[model.Kind]*kindState, len(model.AllKinds)),
	}
	for _, k := range model.AllKinds {
		s.kinds[k] = &kindState{idemKey: uuid.NewString()}
	}
	s.chatDraft.Model = model.DefaultModel(model.KindChat)
	s.imageDraft.Model = model.DefaultModel(model.KindImage)
	s.videoDraft.Model = model.DefaultModel(model.KindVideo)
	return s
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

// CompleteLogin records the verified session and stamps the owner email
// into every draft. Returns the kinds to refresh (all of them, the
// stores are empty or stale for the new identity).
func (s *Store) CompleteLogin(cred session.Credential, id session.Identity) []model.Kind {
	s.Session.CompleteLogin(cred, id)

	s.mu.Lock()
	s.chatDraft.Email = id.Email
	s.imageDraft.Email = id.Email
	s.videoDraft.Email = id.Email
	s.mu.Unlock()

	return append([]model.Kind(nil), model.AllKinds...)
}

// Deauthenticate drops the session and empties every record store.
// Drafts reset too, the owner email included; the next login stamps a
// fresh one.
func (s *Store) Deauthenticate() {
	s.Session.Clear()

	s.mu.Lock()
	s.chats = nil
	s.images = nil
	s.videos = nil
	s.chatDraft.Reset()
	s.chatDraft.Email = ""
	s.imageDraft.Reset()
	s.imageDraft.Email = ""
	s.videoDraft.Reset()
	s.videoDraft.Email = ""
	s.mu.Unlock()
}

// =============================================================================
// FILTER
// =============================================================================

// SetRange validates and stores the filter range. The caller decides
// when to re-fetch.
func (s *Store) SetRange(r model.DateRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.filter = r
	s.mu.Unlock()
	return nil
}

// Range returns the current filter range.
func (s *Store) Range() model.DateRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// =============================================================================
// RECORD ACCESS
// =============================================================================

// Chats returns the chat store contents, newest first.
func (s *Store) Chats() []model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chats
}

// Images returns the image store contents, newest first.
func (s *Store) Images() []model.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.images
}

// Videos returns the video store contents, newest first.
func (s *Store) Videos() []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videos
}

// Busy reports whether a refresh for the kind is in flight.
func (s *Store) Busy(k model.Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kinds[k].busy
}

// Submitting reports whether a submit for the kind is in flight.
func (s *Store) Submitting(k model.Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kinds[k].submitting
}
