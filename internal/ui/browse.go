// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/state"
	"github.com/askai-labs/askai-tui/internal/ui/components"
	"github.com/askai-labs/askai-tui/internal/ui/styles"
	"github.com/askai-labs/askai-tui/internal/util"
)

// =============================================================================
// BROWSE VIEW
// =============================================================================

// browseFocus tracks which pane owns keyboard input.
type browseFocus int

const (
	focusList browseFocus = iota
	focusForm
	focusFilter
)

// browseIntent is what the view asks the app to do; the app owns the
// client and the command builders.
type browseIntent int

const (
	intentNone browseIntent = iota
	intentRefresh
	intentSubmit
	intentExport
	intentLogout
	intentFilterChanged
)

type browseModel struct {
	theme *styles.Theme
	keys  KeyMap
	store *state.Store

	tab   model.Kind
	focus browseFocus

	list    viewport.Model
	forms   [3]formModel
	spinner spinner.Model

	// Filter bar inputs: start and end date.
	filterInputs [2]textinput.Model
	filterFocus  int
	filterErr    string

	width  int
	height int
}

func newBrowseModel(theme *styles.Theme, keys KeyMap, store *state.Store, defaultTab model.Kind) browseModel {
	m := browseModel{
		theme: theme,
		keys:  keys,
		store: store,
		tab:   defaultTab,
		list:  viewport.New(80, 20),
	}

	for _, k := range model.AllKinds {
		m.forms[k] = newFormModel(theme, k)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner
	m.spinner = sp

	start := textinput.New()
	start.Placeholder = "start YYYY-MM-DD"
	start.CharLimit = 10
	start.Width = 16
	m.filterInputs[0] = start

	end := textinput.New()
	end.Placeholder = "end YYYY-MM-DD"
	end.CharLimit = 10
	end.Width = 16
	m.filterInputs[1] = end

	return m
}

func (m *browseModel) setSize(width, height int) {
	m.width = width
	m.height = height
	listHeight := height - 8
	if listHeight < 4 {
		listHeight = 4
	}
	m.list.Width = width
	m.list.Height = listHeight
	m.refreshList()
}

// refreshList rebuilds the viewport content from the store.
func (m *browseModel) refreshList() {
	m.list.SetContent(m.renderRecords())
}

func (m browseModel) update(msg tea.Msg) (browseModel, tea.Cmd, browseIntent) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.focus {
		case focusForm:
			return m.updateForm(msg)
		case focusFilter:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}
	case spinner.TickMsg:
		if m.anyBusy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd, intentNone
		}
	}
	return m, nil, intentNone
}

func (m browseModel) updateList(msg tea.KeyMsg) (browseModel, tea.Cmd, browseIntent) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.tab = model.AllKinds[(int(m.tab)+1)%len(model.AllKinds)]
		m.refreshList()
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = model.AllKinds[(int(m.tab)+len(model.AllKinds)-1)%len(model.AllKinds)]
		m.refreshList()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.spinner.Tick, intentRefresh
	case key.Matches(msg, m.keys.Export):
		if m.tab == model.KindChat {
			return m, nil, intentExport
		}
	case key.Matches(msg, m.keys.Filter):
		m.focus = focusFilter
		m.filterFocus = 0
		m.filterInputs[0].Focus()
	case key.Matches(msg, m.keys.Form):
		m.focus = focusForm
	case key.Matches(msg, m.keys.Logout):
		return m, nil, intentLogout
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd, intentNone
	}
	return m, nil, intentNone
}

func (m browseModel) updateForm(msg tea.KeyMsg) (browseModel, tea.Cmd, browseIntent) {
	form := &m.forms[m.tab]
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusList
	case key.Matches(msg, m.keys.CycleModel):
		form.cycleModel()
	case key.Matches(msg, m.keys.NextField) && len(form.fields) > 1:
		form.nextField()
	case key.Matches(msg, m.keys.Submit):
		return m, m.spinner.Tick, intentSubmit
	default:
		var cmd tea.Cmd
		m.forms[m.tab], cmd = form.update(msg)
		return m, cmd, intentNone
	}
	return m, nil, intentNone
}

func (m browseModel) updateFilter(msg tea.KeyMsg) (browseModel, tea.Cmd, browseIntent) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.focus = focusList
		m.filterInputs[m.filterFocus].Blur()
	case key.Matches(msg, m.keys.NextField):
		m.filterInputs[m.filterFocus].Blur()
		m.filterFocus = (m.filterFocus + 1) % len(m.filterInputs)
		m.filterInputs[m.filterFocus].Focus()
	case key.Matches(msg, m.keys.Submit):
		r := model.DateRange{
			Start: strings.TrimSpace(m.filterInputs[0].Value()),
			End:   strings.TrimSpace(m.filterInputs[1].Value()),
		}
		if err := m.store.SetRange(r); err != nil {
			m.filterErr = err.Error()
			return m, nil, intentNone
		}
		m.filterErr = ""
		m.focus = focusList
		m.filterInputs[m.filterFocus].Blur()
		return m, m.spinner.Tick, intentFilterChanged
	default:
		var cmd tea.Cmd
		m.filterInputs[m.filterFocus], cmd = m.filterInputs[m.filterFocus].Update(msg)
		return m, cmd, intentNone
	}
	return m, nil, intentNone
}

func (m browseModel) anyBusy() bool {
	for _, k := range model.AllKinds {
		if m.store.Busy(k) || m.store.Submitting(k) {
			return true
		}
	}
	return false
}

// =============================================================================
// RENDERING
// =============================================================================

func (m browseModel) view() string {
	var b strings.Builder

	b.WriteString(m.renderHeader() + "\n")
	b.WriteString(m.renderTabs() + "\n")

	if m.focus == focusFilter || !m.store.Range().IsZero() {
		b.WriteString(m.renderFilterBar() + "\n")
	}

	b.WriteString(m.list.View() + "\n")

	if m.focus == focusForm {
		b.WriteString(m.forms[m.tab].view(m.store.Submitting(m.tab)) + "\n")
	}

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m browseModel) renderHeader() string {
	title := m.theme.HeaderTitle.Render("askai")
	user := m.theme.HeaderUser.Render(m.store.Session.Email())
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(user) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.Header.Render(title + strings.Repeat(" ", gap) + user)
}

func (m browseModel) renderTabs() string {
	var tabs []string
	for _, k := range model.AllKinds {
		label := k.Title()
		if m.store.Busy(k) {
			label += " " + m.spinner.View()
		}
		if k == m.tab {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m browseModel) renderFilterBar() string {
	content := m.theme.FormLabel.Render("Filter") +
		m.filterInputs[0].View() + "  " + m.filterInputs[1].View()
	if m.filterErr != "" {
		content += "  " + m.theme.Error.Render(m.filterErr)
	}
	return m.theme.FilterBar.Render(content)
}

func (m browseModel) renderStatusBar() string {
	pairs := []struct{ k, d string }{
		{"tab", "switch"},
		{"n", "new"},
		{"r", "refresh"},
		{"f", "filter"},
	}
	if m.tab == model.KindChat {
		pairs = append(pairs, struct{ k, d string }{"e", "export"})
	}
	pairs = append(pairs,
		struct{ k, d string }{"ctrl+l", "log out"},
		struct{ k, d string }{"q", "quit"},
	)

	var parts []string
	for _, p := range pairs {
		parts = append(parts, m.theme.ShortcutKey.Render(p.k)+" "+m.theme.ShortcutDesc.Render(p.d))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// renderRecords formats the active tab's records, newest first as
// fetched.
func (m browseModel) renderRecords() string {
	width := m.list.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	switch m.tab {
	case model.KindChat:
		chats := m.store.Chats()
		if len(chats) == 0 {
			return m.theme.RecordMeta.Render("no chats in range")
		}
		for _, c := range chats {
			b.WriteString(m.theme.RecordMeta.Render(c.Date.Format("2006-01-02 15:04")+" · "+c.Model) + "\n")
			b.WriteString(m.theme.RecordQuestion.Render("Q: "+c.Question) + "\n")
			b.WriteString(components.RenderAnswer(c.Answer, width) + "\n\n")
		}
	case model.KindImage:
		images := m.store.Images()
		if len(images) == 0 {
			return m.theme.RecordMeta.Render("no images in range")
		}
		for _, img := range images {
			b.WriteString(m.theme.RecordMeta.Render(img.Date.Format("2006-01-02 15:04")+" · "+img.Model) + "\n")
			b.WriteString(m.theme.RecordQuestion.Render(util.TruncateWidth(util.FirstLine(img.Description), width)) + "\n")
			b.WriteString(m.theme.RecordURL.Render(img.ImageURL) + "\n\n")
		}
	case model.KindVideo:
		videos := m.store.Videos()
		if len(videos) == 0 {
			return m.theme.RecordMeta.Render("no videos in range")
		}
		for _, v := range videos {
			b.WriteString(m.theme.RecordMeta.Render(v.Date.Format("2006-01-02 15:04")+" · "+v.Model) + "\n")
			b.WriteString(m.theme.RecordQuestion.Render(util.TruncateWidth(util.FirstLine(v.Content), width)) + "\n")
			b.WriteString(m.theme.RecordURL.Render(v.VideoURL) + "\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
