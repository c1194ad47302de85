// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the askai TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// COLOR PALETTE
// =============================================================================

var (
	// Base surface colors.
	Surface    = lipgloss.Color("#1e1e2e")
	SurfaceDim = lipgloss.Color("#181825")
	Overlay    = lipgloss.Color("#45475a")
	OverlayDim = lipgloss.Color("#313244")

	// Text colors.
	Text      = lipgloss.Color("#cdd6f4")
	TextMuted = lipgloss.Color("#7f849c")

	// Accent colors.
	Cyan    = lipgloss.Color("#89dceb")
	Blue    = lipgloss.Color("#89b4fa")
	Rose    = lipgloss.Color("#f38ba8")
	Amber   = lipgloss.Color("#f9e2af")
	Emerald = lipgloss.Color("#a6e3a1")
	Mauve   = lipgloss.Color("#cba6f7")
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds the styled components for the application, adjusted to the
// terminal's color capability.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	Width  int
	Height int

	// Application container.
	App lipgloss.Style

	// Header.
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderUser  lipgloss.Style

	// Tab bar.
	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// Record list.
	RecordQuestion lipgloss.Style
	RecordAnswer   lipgloss.Style
	RecordMeta     lipgloss.Style
	RecordURL      lipgloss.Style

	// Forms.
	FormLabel   lipgloss.Style
	FormValue   lipgloss.Style
	FormFocused lipgloss.Style
	FormError   lipgloss.Style

	// Filter bar.
	FilterBar lipgloss.Style

	// Status line.
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Feedback.
	Spinner lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewTheme builds a theme for the current terminal.
func NewTheme(themeName string) *Theme {
	profile := termenv.ColorProfile()
	isDark := themeName != "light"

	text := Text
	muted := TextMuted
	if !isDark {
		text = lipgloss.Color("#4c4f69")
		muted = lipgloss.Color("#8c8fa1")
	}

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: profile,
	}

	t.App = lipgloss.NewStyle().Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().Foreground(Mauve).Bold(true)
	t.HeaderUser = lipgloss.NewStyle().Foreground(muted)

	t.Tab = lipgloss.NewStyle().Foreground(muted).Padding(0, 2)
	t.TabActive = lipgloss.NewStyle().
		Foreground(Blue).
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Blue)

	t.RecordQuestion = lipgloss.NewStyle().Foreground(text).Bold(true)
	t.RecordAnswer = lipgloss.NewStyle().Foreground(text)
	t.RecordMeta = lipgloss.NewStyle().Foreground(muted)
	t.RecordURL = lipgloss.NewStyle().Foreground(Cyan).Underline(true)

	t.FormLabel = lipgloss.NewStyle().Foreground(muted).Width(12)
	t.FormValue = lipgloss.NewStyle().Foreground(text)
	t.FormFocused = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	t.FormError = lipgloss.NewStyle().Foreground(Rose)

	t.FilterBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().Foreground(muted)
	t.ShortcutKey = lipgloss.NewStyle().Foreground(Cyan)
	t.ShortcutDesc = lipgloss.NewStyle().Foreground(muted)

	t.Spinner = lipgloss.NewStyle().Foreground(Mauve)
	t.Error = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.Success = lipgloss.NewStyle().Foreground(Emerald)
	t.Warning = lipgloss.NewStyle().Foreground(Amber)
	t.Info = lipgloss.NewStyle().Foreground(Cyan)

	return t
}

// SetSize records the terminal dimensions for layout.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
