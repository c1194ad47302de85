// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import (
	"github.com/google/uuid"

	"github.com/askai-labs/askai-tui/internal/model"
)

// =============================================================================
// DRAFT ACCESS
// =============================================================================

// ChatDraft returns a copy of the pending chat draft.
func (s *Store) ChatDraft() model.ChatDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatDraft
}

// SetChatDraft replaces the pending chat draft.
func (s *Store) SetChatDraft(d model.ChatDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatDraft = d
}

// ImageDraft returns a copy of the pending image draft.
func (s *Store) ImageDraft() model.ImageDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageDraft
}

// SetImageDraft replaces the pending image draft.
func (s *Store) SetImageDraft(d model.ImageDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageDraft = d
}

// VideoDraft returns a copy of the pending video draft.
func (s *Store) VideoDraft() model.VideoDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoDraft
}

// SetVideoDraft replaces the pending video draft.
func (s *Store) SetVideoDraft(d model.VideoDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoDraft = d
}

// SetAPIKey stamps the upstream API key on every draft. Reset keeps the
// key, so one stamp at startup (and on config reload) is enough.
func (s *Store) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatDraft.APIKey = key
	s.imageDraft.APIKey = key
	s.videoDraft.APIKey = key
}

// =============================================================================
// SUBMIT LIFECYCLE
// =============================================================================

// BeginSubmit validates the kind's draft and marks the submit in flight.
// Validation failures surface before any network work; a pending submit
// of the same kind is rejected so double-activation cannot fire twice.
// The returned key is the idempotency key for the request.
func (s *Store) BeginSubmit(k model.Kind) (idemKey string, err error) {
	if _, authed := s.Session.Credential(); !authed {
		return "", ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ks := s.kinds[k]
	if ks.submitting {
		return "", ErrSubmitInFlight
	}

	owner := s.Session.Email()
	switch k {
	case model.KindChat:
		s.chatDraft.Email = owner
		err = s.chatDraft.Validate()
	case model.KindImage:
		s.imageDraft.Email = owner
		err = s.imageDraft.Validate()
	case model.KindVideo:
		s.videoDraft.Email = owner
		err = s.videoDraft.Validate()
	}
	if err != nil {
		return "", err
	}

	ks.submitting = true
	return ks.idemKey, nil
}

// CompleteSubmit finishes a submit. On success the draft resets (owner
// email preserved), the idempotency key rotates, and the kinds to
// refresh per policy are returned. On failure the draft and key are left
// untouched so the user can retry what they typed.
func (s *Store) CompleteSubmit(k model.Kind, submitErr error) []model.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()

	ks := s.kinds[k]
	ks.submitting = false

	if submitErr != nil {
		return nil
	}

	switch k {
	case model.KindChat:
		s.chatDraft.Reset()
	case model.KindImage:
		s.imageDraft.Reset()
	case model.KindVideo:
		s.videoDraft.Reset()
	}
	ks.idemKey = uuid.NewString()

	if s.policy == RefreshAll {
		return append([]model.Kind(nil), model.AllKinds...)
	}
	return []model.Kind{k}
}
