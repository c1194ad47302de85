// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askai-labs/askai-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN VIEW
// =============================================================================

// The backend wants a Google ID token plus a bot-check proof. Both are
// obtained out of band (browser widget or gcloud) and pasted here; the
// client deliberately embeds no OAuth flow.

const (
	loginFieldToken = iota
	loginFieldBotCheck
	loginFieldCount
)

type loginModel struct {
	theme  *styles.Theme
	keys   KeyMap
	inputs [loginFieldCount]textinput.Model
	focus  int

	spinner spinner.Model
	busy    bool
	errMsg  string

	clientID string
}

func newLoginModel(theme *styles.Theme, keys KeyMap, clientID string) loginModel {
	m := loginModel{
		theme:    theme,
		keys:     keys,
		clientID: clientID,
	}

	token := textinput.New()
	token.Placeholder = "paste Google ID token"
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'
	token.CharLimit = 0
	token.Focus()
	m.inputs[loginFieldToken] = token

	botCheck := textinput.New()
	botCheck.Placeholder = "paste bot-check token"
	botCheck.EchoMode = textinput.EchoPassword
	botCheck.EchoCharacter = '•'
	botCheck.CharLimit = 0
	m.inputs[loginFieldBotCheck] = botCheck

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner
	m.spinner = sp

	return m
}

// submitRequest carries the pasted tokens up to the app.
type submitRequest struct {
	identityToken string
	botCheckToken string
}

// update handles login-view input. The second return value is non-nil
// when the user asked to submit.
func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd, *submitRequest) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			return m, nil, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.inputs[m.focus].Blur()
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focus = (m.focus - 1 + loginFieldCount) % loginFieldCount
			} else {
				m.focus = (m.focus + 1) % loginFieldCount
			}
			m.inputs[m.focus].Focus()
			return m, nil, nil
		case "enter":
			req := &submitRequest{
				identityToken: strings.TrimSpace(m.inputs[loginFieldToken].Value()),
				botCheckToken: strings.TrimSpace(m.inputs[loginFieldBotCheck].Value()),
			}
			if req.identityToken == "" {
				m.errMsg = "identity token is required"
				return m, nil, nil
			}
			if req.botCheckToken == "" {
				m.errMsg = "bot-check token is required"
				return m, nil, nil
			}
			m.errMsg = ""
			m.busy = true
			return m, m.spinner.Tick, req
		}
	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd, nil
		}
		return m, nil, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, nil
}

// fail surfaces a login error and re-enables the form.
func (m loginModel) fail(errMsg string) loginModel {
	m.busy = false
	m.errMsg = errMsg
	return m
}

func (m loginModel) view(width int) string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("askai") + "\n")
	b.WriteString(m.theme.RecordMeta.Render("sign in to view your question history") + "\n\n")

	if m.clientID != "" {
		b.WriteString(m.theme.RecordMeta.Render("client id: "+m.clientID) + "\n\n")
	}

	labels := [loginFieldCount]string{"Identity", "Bot check"}
	for i, in := range m.inputs {
		label := m.theme.FormLabel.Render(labels[i])
		if i == m.focus && !m.busy {
			label = m.theme.FormFocused.Render(labels[i] + strings.Repeat(" ", max(0, 12-len(labels[i]))))
		}
		b.WriteString(label + in.View() + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " verifying...\n")
	case m.errMsg != "":
		b.WriteString(m.theme.Error.Render(m.errMsg) + "\n")
	default:
		b.WriteString(m.theme.ShortcutDesc.Render("enter to sign in, tab to switch fields") + "\n")
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(1, 2).
		Render(b.String())

	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
