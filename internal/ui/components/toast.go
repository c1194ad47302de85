// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the askai TUI.
//
// Toasts are non-blocking notifications in the corner of the screen that
// auto-dismiss, so a failed refresh or submit never traps the user in a
// modal dialog.
package components

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/askai-labs/askai-tui/internal/ui/styles"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	// ToastKindStatus is an informational toast (cyan).
	ToastKindStatus ToastKind = iota
	// ToastKindError is an error toast (rose).
	ToastKindError
	// ToastKindWarning is a warning toast (amber).
	ToastKindWarning
	// ToastKindSuccess is a success toast (emerald).
	ToastKindSuccess
)

// Auto-dismiss durations per kind. Errors linger longest so they can be
// read.
const (
	DefaultToastDuration = 4 * time.Second
	ErrorToastDuration   = 8 * time.Second
	WarningToastDuration = 6 * time.Second
)

// Toast is one non-blocking notification.
type Toast struct {
	ID        int
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true when the toast should be dismissed.
func (t *Toast) IsExpired() bool {
	return time.Since(t.CreatedAt) >= t.Duration
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager holds the visible toasts.
type ToastManager struct {
	mutex     sync.Mutex
	toasts    []Toast
	nextID    int
	maxToasts int
}

// NewToastManager creates a toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		nextID:    1,
		maxToasts: 5,
	}
}

func (m *ToastManager) add(message string, kind ToastKind, d time.Duration) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	toast := Toast{
		ID:        m.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
		Duration:  d,
	}
	m.nextID++

	m.toasts = append(m.toasts, toast)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[len(m.toasts)-m.maxToasts:]
	}
	return toast.ID
}

// Error adds an error toast.
func (m *ToastManager) Error(message string) int {
	return m.add(message, ToastKindError, ErrorToastDuration)
}

// Warning adds a warning toast.
func (m *ToastManager) Warning(message string) int {
	return m.add(message, ToastKindWarning, WarningToastDuration)
}

// Success adds a success toast.
func (m *ToastManager) Success(message string) int {
	return m.add(message, ToastKindSuccess, DefaultToastDuration)
}

// Status adds an informational toast.
func (m *ToastManager) Status(message string) int {
	return m.add(message, ToastKindStatus, DefaultToastDuration)
}

// Dismiss removes a toast by ID.
func (m *ToastManager) Dismiss(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for i := range m.toasts {
		if m.toasts[i].ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// DismissAll removes every toast.
func (m *ToastManager) DismissAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.toasts = nil
}

// Expire drops expired toasts. Returns true when anything changed so the
// caller knows to redraw.
func (m *ToastManager) Expire() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	kept := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.IsExpired() {
			kept = append(kept, t)
		}
	}
	changed := len(kept) != len(m.toasts)
	m.toasts = kept
	return changed
}

// Active reports whether any toast is visible.
func (m *ToastManager) Active() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.toasts) > 0
}

// =============================================================================
// BUBBLE TEA INTEGRATION
// =============================================================================

// ToastTickMsg drives toast expiry.
type ToastTickMsg struct{}

// ToastTickCmd returns a command that ticks while toasts are visible.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return ToastTickMsg{}
	})
}

// =============================================================================
// RENDERING
// =============================================================================

// toastStyle returns the style for a toast kind.
func toastStyle(kind ToastKind) lipgloss.Style {
	base := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MaxWidth(60)

	switch kind {
	case ToastKindError:
		return base.BorderForeground(styles.Rose).Foreground(styles.Rose)
	case ToastKindWarning:
		return base.BorderForeground(styles.Amber).Foreground(styles.Amber)
	case ToastKindSuccess:
		return base.BorderForeground(styles.Emerald).Foreground(styles.Emerald)
	default:
		return base.BorderForeground(styles.Cyan).Foreground(styles.Cyan)
	}
}

// View renders the visible toasts stacked newest-last.
func (m *ToastManager) View() string {
	m.mutex.Lock()
	toasts := make([]Toast, len(m.toasts))
	copy(toasts, m.toasts)
	m.mutex.Unlock()

	if len(toasts) == 0 {
		return ""
	}

	var rendered []string
	for _, t := range toasts {
		rendered = append(rendered, toastStyle(t.Kind).Render(t.Message))
	}
	return strings.Join(rendered, "\n")
}
