// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askai-labs/askai-tui/internal/api"
	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
	"github.com/askai-labs/askai-tui/internal/state"
	"github.com/askai-labs/askai-tui/internal/ui/styles"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// =============================================================================
// LOGIN MODEL
// =============================================================================

func TestLoginRequiresBothTokens(t *testing.T) {
	theme := styles.NewTheme("dark")
	m := newLoginModel(theme, DefaultKeyMap(), "")

	m, _, req := m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if req != nil {
		t.Fatal("expected no submit request with empty fields")
	}
	if m.errMsg == "" {
		t.Fatal("expected an error message for the empty identity token")
	}

	m, _, _ = m.update(keyRunes("id-token"))
	m, _, req = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if req != nil {
		t.Fatal("expected no submit request without a bot-check token")
	}

	m, _, _ = m.update(tea.KeyMsg{Type: tea.KeyTab})
	m, _, _ = m.update(keyRunes("bot-token"))
	m, _, req = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if req == nil {
		t.Fatal("expected a submit request once both tokens are set")
	}
	if req.identityToken != "id-token" || req.botCheckToken != "bot-token" {
		t.Fatalf("unexpected request: %+v", req)
	}
	if !m.busy {
		t.Fatal("expected login model to be busy after submit")
	}
}

func TestLoginFailReenablesForm(t *testing.T) {
	theme := styles.NewTheme("dark")
	m := newLoginModel(theme, DefaultKeyMap(), "")
	m.busy = true

	m = m.fail("token rejected")
	if m.busy {
		t.Fatal("expected busy cleared after failure")
	}
	if m.errMsg != "token rejected" {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
}

func TestLoginErrorText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{api.ErrBotCheckRequired, "bot-check token is required"},
		{api.ErrBotCheckRejected, "bot-check verification failed, get a fresh token"},
		{api.ErrAuthFailed, "identity token rejected, it may have expired"},
		{api.ErrNotConfigured, "no backend configured, set api.base_url"},
		{errors.New("boom"), "login failed: boom"},
	}
	for _, tt := range tests {
		if got := loginErrorText(tt.err); got != tt.want {
			t.Errorf("loginErrorText(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// =============================================================================
// FORM MODEL
// =============================================================================

func TestFormSyncDraftParsesDuration(t *testing.T) {
	theme := styles.NewTheme("dark")
	store := state.New(state.RefreshOwn)

	f := newFormModel(theme, model.KindVideo)
	f.fields[0].input.SetValue("a cat surfing")
	f.fields[1].input.SetValue("7")
	f.syncDraft(store)

	d := store.VideoDraft()
	if d.Content != "a cat surfing" {
		t.Fatalf("Content = %q", d.Content)
	}
	if d.Duration != 7 {
		t.Fatalf("Duration = %d, want 7", d.Duration)
	}

	f.fields[1].input.SetValue("not a number")
	f.syncDraft(store)
	if got := store.VideoDraft().Duration; got != 0 {
		t.Fatalf("Duration = %d, want 0 for unparseable input", got)
	}
}

func TestFormCycleModel(t *testing.T) {
	theme := styles.NewTheme("dark")
	f := newFormModel(theme, model.KindChat)

	start := f.model
	seen := map[string]bool{start: true}
	for i := 0; i < len(model.ChatModels); i++ {
		f.cycleModel()
		seen[f.model] = true
	}
	if f.model != start {
		t.Fatalf("expected cycle to wrap back to %q, got %q", start, f.model)
	}
	if len(seen) != len(model.ChatModels) {
		t.Fatalf("cycled through %d models, want %d", len(seen), len(model.ChatModels))
	}
}

func TestFormClearKeepsNothing(t *testing.T) {
	theme := styles.NewTheme("dark")
	f := newFormModel(theme, model.KindChat)
	f.fields[0].input.SetValue("why is the sky blue")
	f.errMsg = "stale error"

	f.clear()
	if v := f.fields[0].input.Value(); v != "" {
		t.Fatalf("input = %q after clear", v)
	}
	if f.errMsg != "" {
		t.Fatal("errMsg survived clear")
	}
}

// =============================================================================
// BROWSE MODEL
// =============================================================================

func TestBrowseTabCycling(t *testing.T) {
	theme := styles.NewTheme("dark")
	store := state.New(state.RefreshOwn)
	m := newBrowseModel(theme, DefaultKeyMap(), store, model.KindChat)

	m, _, _ = m.update(tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != model.KindImage {
		t.Fatalf("tab = %v after next, want images", m.tab)
	}
	m, _, _ = m.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != model.KindChat {
		t.Fatalf("tab = %v after prev, want chats", m.tab)
	}
	m, _, _ = m.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != model.KindVideo {
		t.Fatalf("tab = %v after wrap, want videos", m.tab)
	}
}

func TestBrowseExportOnlyOnChatsTab(t *testing.T) {
	theme := styles.NewTheme("dark")
	store := state.New(state.RefreshOwn)
	m := newBrowseModel(theme, DefaultKeyMap(), store, model.KindImage)

	_, _, intent := m.update(keyRunes("e"))
	if intent == intentExport {
		t.Fatal("export must be ignored on the images tab")
	}

	m.tab = model.KindChat
	_, _, intent = m.update(keyRunes("e"))
	if intent != intentExport {
		t.Fatalf("intent = %v, want export on the chats tab", intent)
	}
}

func TestBrowseRefreshIntent(t *testing.T) {
	theme := styles.NewTheme("dark")
	store := state.New(state.RefreshOwn)
	m := newBrowseModel(theme, DefaultKeyMap(), store, model.KindChat)

	_, _, intent := m.update(keyRunes("r"))
	if intent != intentRefresh {
		t.Fatalf("intent = %v, want refresh", intent)
	}
}

func TestBrowseFilterRejectsBadDates(t *testing.T) {
	theme := styles.NewTheme("dark")
	store := state.New(state.RefreshOwn)
	m := newBrowseModel(theme, DefaultKeyMap(), store, model.KindChat)

	m, _, _ = m.update(keyRunes("f"))
	if m.focus != focusFilter {
		t.Fatal("expected filter focus after f")
	}

	m.filterInputs[0].SetValue("yesterday")
	m, _, intent := m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if intent != intentNone {
		t.Fatalf("intent = %v, want none for an invalid date", intent)
	}
	if m.filterErr == "" {
		t.Fatal("expected a filter error message")
	}
	if !store.Range().IsZero() {
		t.Fatal("store range must stay unset on invalid input")
	}

	m.filterInputs[0].SetValue("2025-01-01")
	m, _, intent = m.update(tea.KeyMsg{Type: tea.KeyEnter})
	if intent != intentFilterChanged {
		t.Fatalf("intent = %v, want filter-changed", intent)
	}
	if store.Range().Start != "2025-01-01" {
		t.Fatalf("range start = %q", store.Range().Start)
	}
}

// =============================================================================
// APP MODEL
// =============================================================================

func TestSupersededFetchFailureShowsNoToast(t *testing.T) {
	app := NewApp(config.Default())
	app.store.CompleteLogin("tok", session.Identity{Email: "ada@example.com"})

	genA, _ := app.store.BeginRefresh(model.KindChat)
	genB, _ := app.store.BeginRefresh(model.KindChat)

	// The newer fetch lands first.
	app.Update(ChatsFetchedMsg{Gen: genB, Records: []model.Chat{{ID: 2}}})
	// The older one straggles in with an error. The user already has
	// fresher data, so nothing may be reported.
	app.Update(ChatsFetchedMsg{Gen: genA, Err: errors.New("timeout")})

	if app.toasts.Active() {
		t.Fatal("error toast shown for a superseded fetch")
	}
	if got := app.store.Chats(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("chats = %+v, want the newer fetch", got)
	}

	// A failure of the current generation still surfaces.
	genC, _ := app.store.BeginRefresh(model.KindChat)
	app.Update(ChatsFetchedMsg{Gen: genC, Err: errors.New("timeout")})
	if !app.toasts.Active() {
		t.Fatal("expected an error toast for a current fetch failure")
	}
}

func TestBrowseRecordRendering(t *testing.T) {
	theme := styles.NewTheme("dark")
	store := state.New(state.RefreshOwn)
	m := newBrowseModel(theme, DefaultKeyMap(), store, model.KindChat)
	m.setSize(100, 30)

	out := m.renderRecords()
	if !strings.Contains(out, "no chats in range") {
		t.Fatalf("empty store render = %q", out)
	}
}
