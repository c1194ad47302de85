// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package state

import "github.com/askai-labs/askai-tui/internal/model"

// =============================================================================
// REFRESH LIFECYCLE
// =============================================================================

// The three kinds refresh independently: each fetch is tagged with the
// generation handed out by BeginRefresh and applied through ApplyRefresh,
// which discards anything older than the newest issued generation. Two
// overlapping refreshes of the same kind therefore converge on the later
// one's result no matter which response arrives first.

// BeginRefresh starts a refresh for the kind. ok is false while
// anonymous, the refresh is then a no-op and no request may be sent.
func (s *Store) BeginRefresh(k model.Kind) (gen uint64, ok bool) {
	if _, authed := s.Session.Credential(); !authed {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ks := s.kinds[k]
	ks.issuedGen++
	ks.busy = true
	return ks.issuedGen, true
}

// accept decides whether a completion with the given generation may
// apply, and clears busy when it is the newest.
func (s *Store) accept(k model.Kind, gen uint64) bool {
	ks := s.kinds[k]
	if gen < ks.issuedGen {
		// A newer refresh was issued after this one, drop the result.
		return false
	}
	ks.busy = false
	if gen > ks.appliedGen {
		ks.appliedGen = gen
	}
	return true
}

// ApplyChats completes a chat refresh. The return reports whether this
// was the newest generation; stale completions come back false and must
// be dropped silently, their success or failure is old news. A current
// completion returns true even on error, the store is then left
// untouched and the caller surfaces the failure.
func (s *Store) ApplyChats(gen uint64, records []model.Chat, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(model.KindChat, gen) {
		return false
	}
	if err == nil {
		s.chats = records
	}
	return true
}

// ApplyImages completes an image refresh.
func (s *Store) ApplyImages(gen uint64, records []model.Image, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(model.KindImage, gen) {
		return false
	}
	if err == nil {
		s.images = records
	}
	return true
}

// ApplyVideos completes a video refresh.
func (s *Store) ApplyVideos(gen uint64, records []model.Video, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.accept(model.KindVideo, gen) {
		return false
	}
	if err == nil {
		s.videos = records
	}
	return true
}
