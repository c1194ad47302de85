// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askai-labs/askai-tui/internal/api"
	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/export"
	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/state"
	"github.com/askai-labs/askai-tui/internal/ui/components"
	"github.com/askai-labs/askai-tui/internal/ui/styles"
)

// =============================================================================
// VIEW ROUTING
// =============================================================================

// View identifies the top-level screen.
type View int

const (
	// ViewLogin is shown while anonymous.
	ViewLogin View = iota
	// ViewBrowse shows the record tabs once authenticated.
	ViewBrowse
)

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model.
type App struct {
	cfg    *config.Config
	theme  *styles.Theme
	keys   KeyMap
	client *api.Client
	store  *state.Store
	toasts *components.ToastManager

	view   View
	login  loginModel
	browse browseModel

	width  int
	height int
}

// NewApp wires the application together from config.
func NewApp(cfg *config.Config) *App {
	theme := styles.NewTheme(cfg.UI.Theme)
	keys := DefaultKeyMap()

	// Catalogs feed the drafts' default models, so they must be in
	// place before the store seeds its drafts.
	model.SetCatalogs(cfg.Models.Chat, cfg.Models.Image, cfg.Models.Video)

	policy, err := state.ParseRefreshPolicy(cfg.Refresh.Policy)
	if err != nil {
		policy = state.RefreshOwn
	}
	store := state.New(policy)
	store.SetAPIKey(cfg.CLI.OpenAIKey)

	defaultTab := model.KindChat
	if k, err := model.ParseKind(cfg.UI.DefaultTab); err == nil {
		defaultTab = k
	}

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		api.WithCreateRateLimit(cfg.API.RateLimitPerMin),
	)

	return &App{
		cfg:    cfg,
		theme:  theme,
		keys:   keys,
		client: client,
		store:  store,
		toasts: components.NewToastManager(),
		view:   ViewLogin,
		login:  newLoginModel(theme, keys, cfg.Auth.ClientID),
		browse: newBrowseModel(theme, keys, store, defaultTab),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.browse.setSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Quit works everywhere except inside a focused text field,
		// where plain q must type a letter.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "q" && a.view == ViewBrowse && a.browse.focus == focusList {
			return a, tea.Quit
		}

	case LoginResultMsg:
		return a.handleLoginResult(msg)
	case ChatsFetchedMsg:
		if !a.store.ApplyChats(msg.Gen, msg.Records, msg.Err) {
			return a, nil // superseded by a newer refresh, success or not
		}
		return a.handleFetchErr(model.KindChat, msg.Err)
	case ImagesFetchedMsg:
		if !a.store.ApplyImages(msg.Gen, msg.Records, msg.Err) {
			return a, nil
		}
		return a.handleFetchErr(model.KindImage, msg.Err)
	case VideosFetchedMsg:
		if !a.store.ApplyVideos(msg.Gen, msg.Records, msg.Err) {
			return a, nil
		}
		return a.handleFetchErr(model.KindVideo, msg.Err)
	case SubmitResultMsg:
		return a.handleSubmitResult(msg)
	case ExportResultMsg:
		return a.handleExportResult(msg)
	case components.ToastTickMsg:
		a.toasts.Expire()
		if a.toasts.Active() {
			return a, components.ToastTickCmd()
		}
		return a, nil
	case ConfigReloadedMsg:
		a.cfg = config.Global()
		a.store.SetAPIKey(a.cfg.CLI.OpenAIKey)
		model.SetCatalogs(a.cfg.Models.Chat, a.cfg.Models.Image, a.cfg.Models.Video)
		a.toasts.Status("configuration reloaded")
		return a, components.ToastTickCmd()
	}

	switch a.view {
	case ViewLogin:
		return a.updateLogin(msg)
	default:
		return a.updateBrowse(msg)
	}
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var req *submitRequest
	a.login, cmd, req = a.login.update(msg)
	if req == nil {
		return a, cmd
	}
	if err := a.store.Session.BeginLogin(); err != nil {
		a.login = a.login.fail(err.Error())
		return a, cmd
	}
	return a, tea.Batch(cmd, a.loginCmd(req.identityToken, req.botCheckToken))
}

func (a *App) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var intent browseIntent
	a.browse, cmd, intent = a.browse.update(msg)

	switch intent {
	case intentRefresh, intentFilterChanged:
		if intent == intentFilterChanged {
			// A new range invalidates all three stores.
			return a, tea.Batch(cmd, a.fetchAllCmd(model.AllKinds))
		}
		return a, tea.Batch(cmd, a.fetchCmd(a.browse.tab))

	case intentSubmit:
		kind := a.browse.tab
		form := &a.browse.forms[kind]
		form.syncDraft(a.store)

		idemKey, err := a.store.BeginSubmit(kind)
		if err != nil {
			// Validation failed or a submit is already pending; no
			// network call happens in either case.
			var fe *model.FieldError
			if errors.As(err, &fe) {
				form.errMsg = fe.Error()
			} else {
				form.errMsg = err.Error()
			}
			return a, cmd
		}
		form.errMsg = ""
		return a, tea.Batch(cmd, a.submitCmd(kind, idemKey))

	case intentExport:
		return a, tea.Batch(cmd, a.exportCmd())

	case intentLogout:
		a.store.Deauthenticate()
		a.view = ViewLogin
		a.login = newLoginModel(a.theme, a.keys, a.cfg.Auth.ClientID)
		return a, cmd
	}
	return a, cmd
}

// =============================================================================
// RESULT HANDLERS
// =============================================================================

func (a *App) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.store.Session.FailLogin()
		a.login = a.login.fail(loginErrorText(msg.Err))
		return a, nil
	}

	kinds := a.store.CompleteLogin(msg.Credential, msg.Identity)
	a.view = ViewBrowse
	a.toasts.Success("signed in as " + msg.Identity.Email)
	return a, tea.Batch(a.fetchAllCmd(kinds), components.ToastTickCmd())
}

func (a *App) handleFetchErr(kind model.Kind, err error) (tea.Model, tea.Cmd) {
	a.browse.refreshList()
	if err != nil {
		a.toasts.Error("failed to refresh " + kind.String() + ": " + err.Error())
		return a, components.ToastTickCmd()
	}
	return a, nil
}

func (a *App) handleSubmitResult(msg SubmitResultMsg) (tea.Model, tea.Cmd) {
	kinds := a.store.CompleteSubmit(msg.Kind, msg.Err)
	form := &a.browse.forms[msg.Kind]

	if msg.Err != nil {
		// Draft is preserved, the user retries from where they were.
		form.errMsg = msg.Err.Error()
		a.toasts.Error("submission failed: " + msg.Err.Error())
		return a, components.ToastTickCmd()
	}

	form.clear()
	a.browse.focus = focusList
	a.toasts.Success(msg.Kind.String() + " submitted")
	return a, tea.Batch(a.fetchAllCmd(kinds), components.ToastTickCmd())
}

func (a *App) handleExportResult(msg ExportResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, export.ErrNothingToExport):
		a.toasts.Warning("nothing to export")
	case msg.Err != nil:
		a.toasts.Error("export failed: " + msg.Err.Error())
	default:
		a.toasts.Success("exported to " + msg.Path)
	}
	return a, components.ToastTickCmd()
}

// loginErrorText maps login failures to something a user can act on.
func loginErrorText(err error) string {
	switch {
	case errors.Is(err, api.ErrBotCheckRequired):
		return "bot-check token is required"
	case errors.Is(err, api.ErrBotCheckRejected):
		return "bot-check verification failed, get a fresh token"
	case errors.Is(err, api.ErrAuthFailed):
		return "identity token rejected, it may have expired"
	case errors.Is(err, api.ErrNotConfigured):
		return "no backend configured, set api.base_url"
	default:
		return "login failed: " + err.Error()
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.view {
	case ViewLogin:
		body = a.login.view(a.width)
	default:
		body = a.browse.view()
	}

	if a.toasts.Active() {
		body += "\n" + a.toasts.View()
	}
	return a.theme.App.Render(body)
}
