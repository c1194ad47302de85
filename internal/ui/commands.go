// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askai-labs/askai-tui/internal/export"
	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// Commands capture everything they need before the goroutine starts;
// nothing reads mutable app state after the closure is built.

// loginTimeout bounds the login exchange; generation endpoints get the
// client's own longer timeout.
const loginTimeout = 30 * time.Second

func (a *App) loginCmd(identityToken, botCheckToken string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
		defer cancel()
		id, err := client.Login(ctx, identityToken, botCheckToken)
		return LoginResultMsg{
			Credential: session.Credential(identityToken),
			Identity:   id,
			Err:        err,
		}
	}
}

// fetchCmd starts a refresh for one kind. Returns nil while anonymous,
// the refresh contract makes that a silent no-op.
func (a *App) fetchCmd(kind model.Kind) tea.Cmd {
	gen, ok := a.store.BeginRefresh(kind)
	if !ok {
		return nil
	}
	cred, _ := a.store.Session.Credential()
	r := a.store.Range()
	client := a.client

	switch kind {
	case model.KindChat:
		return func() tea.Msg {
			records, err := client.ListChats(context.Background(), cred, r)
			return ChatsFetchedMsg{Gen: gen, Records: records, Err: err}
		}
	case model.KindImage:
		return func() tea.Msg {
			records, err := client.ListImages(context.Background(), cred, r)
			return ImagesFetchedMsg{Gen: gen, Records: records, Err: err}
		}
	case model.KindVideo:
		return func() tea.Msg {
			records, err := client.ListVideos(context.Background(), cred, r)
			return VideosFetchedMsg{Gen: gen, Records: records, Err: err}
		}
	}
	return nil
}

// fetchAllCmd refreshes the given kinds concurrently.
func (a *App) fetchAllCmd(kinds []model.Kind) tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range kinds {
		if cmd := a.fetchCmd(k); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// submitCmd performs the network part of a submit. BeginSubmit has
// already validated the draft and handed out the idempotency key.
func (a *App) submitCmd(kind model.Kind, idemKey string) tea.Cmd {
	cred, ok := a.store.Session.Credential()
	if !ok {
		return nil
	}
	client := a.client

	switch kind {
	case model.KindChat:
		draft := a.store.ChatDraft()
		return func() tea.Msg {
			_, err := client.CreateChat(context.Background(), cred, draft, idemKey)
			return SubmitResultMsg{Kind: kind, Err: err}
		}
	case model.KindImage:
		draft := a.store.ImageDraft()
		return func() tea.Msg {
			_, err := client.CreateImage(context.Background(), cred, draft, idemKey)
			return SubmitResultMsg{Kind: kind, Err: err}
		}
	case model.KindVideo:
		draft := a.store.VideoDraft()
		return func() tea.Msg {
			_, err := client.CreateVideo(context.Background(), cred, draft, idemKey)
			return SubmitResultMsg{Kind: kind, Err: err}
		}
	}
	return nil
}

// exportCmd writes the chat store to CSV.
func (a *App) exportCmd() tea.Cmd {
	chats := a.store.Chats()
	dir := a.cfg.Export.Dir
	return func() tea.Msg {
		path, err := export.ExportChats(chats, export.NewChatCSV(), &export.Options{OutputDir: dir})
		return ExportResultMsg{Path: path, Err: err}
	}
}
