// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/state"
	"github.com/askai-labs/askai-tui/internal/ui/styles"
)

// =============================================================================
// SUBMISSION FORMS
// =============================================================================

// One form per kind. The text inputs hold the working copy; the draft in
// the state store is synced from them before validation so a submit
// always sees exactly what is on screen.

type formField struct {
	label string
	input textinput.Model
}

type formModel struct {
	theme  *styles.Theme
	kind   model.Kind
	fields []formField
	focus  int
	model  string // selected catalog model
	errMsg string
}

func newFormModel(theme *styles.Theme, kind model.Kind) formModel {
	f := formModel{
		theme: theme,
		kind:  kind,
		model: model.DefaultModel(kind),
	}

	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 0
		return in
	}

	switch kind {
	case model.KindChat:
		f.fields = []formField{
			{label: "Question", input: newInput("ask anything")},
		}
	case model.KindImage:
		f.fields = []formField{
			{label: "Description", input: newInput("describe the image to generate")},
		}
	case model.KindVideo:
		f.fields = []formField{
			{label: "Content", input: newInput("describe the video to generate")},
			{label: "Duration", input: newInput("seconds (1-10)")},
		}
	}
	f.fields[0].input.Focus()
	return f
}

// syncDraft copies the form contents into the state store's draft.
func (f *formModel) syncDraft(store *state.Store) {
	switch f.kind {
	case model.KindChat:
		d := store.ChatDraft()
		d.Model = f.model
		d.Question = strings.TrimSpace(f.fields[0].input.Value())
		store.SetChatDraft(d)
	case model.KindImage:
		d := store.ImageDraft()
		d.Model = f.model
		d.Description = strings.TrimSpace(f.fields[0].input.Value())
		store.SetImageDraft(d)
	case model.KindVideo:
		d := store.VideoDraft()
		d.Model = f.model
		d.Content = strings.TrimSpace(f.fields[0].input.Value())
		// Unparseable input becomes 0, which validation rejects with a
		// pointed duration error.
		d.Duration, _ = strconv.Atoi(strings.TrimSpace(f.fields[1].input.Value()))
		store.SetVideoDraft(d)
	}
}

// clear empties the inputs after a successful submit.
func (f *formModel) clear() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
	}
	f.errMsg = ""
}

// cycleModel advances the model selector.
func (f *formModel) cycleModel() {
	f.model = model.NextModel(f.kind, f.model)
}

func (f *formModel) nextField() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f formModel) view(busy bool) string {
	var b strings.Builder

	b.WriteString(f.theme.FormLabel.Render("Model") + f.theme.FormValue.Render(f.model) +
		f.theme.ShortcutDesc.Render("  (ctrl+o to change)") + "\n")

	for i, field := range f.fields {
		label := f.theme.FormLabel.Render(field.label)
		if i == f.focus {
			label = f.theme.FormFocused.Render(field.label + strings.Repeat(" ", max(0, 12-len(field.label))))
		}
		b.WriteString(label + field.input.View() + "\n")
	}

	switch {
	case busy:
		b.WriteString(f.theme.RecordMeta.Render("submitting...") + "\n")
	case f.errMsg != "":
		b.WriteString(f.theme.FormError.Render(f.errMsg) + "\n")
	default:
		b.WriteString(f.theme.ShortcutDesc.Render("enter to submit, esc to close") + "\n")
	}

	return b.String()
}
