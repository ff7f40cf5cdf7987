package ui

import (
	"errors"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/component"
	"github.com/bnema/tabshell/internal/ui/input"
	"github.com/bnema/tabshell/internal/ui/mainloop"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Init opens the startup tabs and starts the background loops.
func (a *App) Init() tea.Cmd {
	a.openInitialTabs()
	if a.snapshots != nil {
		a.snapshots.Start(a.ctx)
	}

	cmds := []tea.Cmd{
		a.enginePreferencesCmd(a.deps.SettingsUC.Current()),
		metricsTick(),
	}
	if a.sidebar.IsOpen() {
		cmds = append(cmds, a.loadSidebarCmd())
	}
	return a.sync(tea.Batch(cmds...))
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if mainloop.Run(msg) {
		return a, a.sync(nil)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
	case spinner.TickMsg:
		cmd = a.loading.Update(msg)
	case metricsTickMsg:
		cmd = tea.Batch(a.sampleMetricsCmd(), metricsTick())
	case metricsMsg:
		if msg.err == nil {
			a.status.SetMetrics(msg.metrics)
		}
	case clipboardMsg:
		a.onClipboard(msg)
	case sessionsMsg:
		a.onSessions(msg)
	case notesMsg:
		a.onNotes(msg)
	case completionsMsg:
		a.onCompletions(msg)
	case resultMsg:
		a.onResult(msg)
	default:
		// Cursor blinks and similar for the focused text field.
		cmd = a.updateFocused(msg)
	}
	return a, a.sync(cmd)
}

func (a *App) updateFocused(msg tea.Msg) tea.Cmd {
	switch a.mode {
	case input.ModeAddress:
		before := a.address.Text()
		cmd := a.address.Update(msg)
		if text := a.address.Text(); text != before {
			return tea.Batch(cmd, a.completeAddressCmd(text))
		}
		return cmd
	case input.ModeNotes:
		return a.sidebar.Notes.Update(msg)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := a.keys.Lookup(msg, a.mode)
	if !ok {
		return a.updateFocused(msg)
	}
	logging.FromContext(a.ctx).Debug().
		Str("action", string(action)).
		Str("mode", a.mode.String()).
		Msg("key action")

	if cmd, handled := a.handleGlobal(action); handled {
		return cmd
	}
	switch a.mode {
	case input.ModeAddress:
		a.handleAddress(action)
	case input.ModeSidebar:
		return a.handleSidebar(action)
	case input.ModeNotes:
		return a.handleNotes(action)
	case input.ModeSettings:
		return a.handleSettings(action)
	}
	return nil
}

// handleGlobal runs the actions available in every mode.
func (a *App) handleGlobal(action input.Action) (tea.Cmd, bool) {
	ctx := a.ctx
	var err error

	switch action {
	case input.ActionGoBack:
		err = a.navigation.Back(ctx)
	case input.ActionGoForward:
		err = a.navigation.Forward(ctx)
	case input.ActionReload:
		err = a.navigation.Reload(ctx)
	case input.ActionHome:
		err = a.navigation.Home(ctx)
	case input.ActionToggleInspector:
		err = a.navigation.ToggleInspector(ctx)
	case input.ActionFocusAddress:
		a.leaveMode()
		a.navigation.FocusAddressBar(ctx)
		a.mode = input.ModeAddress
	case input.ActionNewTab:
		a.leaveMode()
		if _, err = a.tabs.CreateTab(ctx, a.navigation.Formatter().Format(""), true); err == nil {
			a.navigation.FocusAddressBar(ctx)
			a.address.SetText("")
			a.mode = input.ModeAddress
		}
	case input.ActionCloseTab:
		err = a.tabs.CloseActive(ctx)
	case input.ActionNextTab:
		err = a.tabs.CycleTab(ctx, 1)
	case input.ActionPreviousTab:
		err = a.tabs.CycleTab(ctx, -1)
	case input.ActionToggleSplit:
		if !a.tabs.ToggleSplit(ctx) && a.tabs.Count() < 2 {
			a.status.Notify("split view needs two tabs")
		}
	case input.ActionToggleSidebar:
		return a.toggleSidebar(), true
	case input.ActionOpenSettings:
		if a.settings.IsOpen() {
			a.closeSettings()
		} else {
			a.openSettings()
		}
	case input.ActionScreenshot:
		return a.screenshotCmd(), true
	case input.ActionToggleHelp:
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
	case input.ActionQuit:
		return tea.Quit, true
	default:
		index, ok := input.SwitchTabIndex(action)
		if !ok {
			return nil, false
		}
		if tabs := a.tabs.Tabs(); index < len(tabs) {
			err = a.tabs.SwitchTab(ctx, tabs[index].ID)
		}
	}

	if err != nil {
		a.reportError(err)
	}
	return nil, true
}

func (a *App) reportError(err error) {
	if errors.Is(err, port.ErrNoActiveView) {
		a.status.Notify("no page open")
		return
	}
	a.status.Error(err.Error())
}

// leaveMode drops focus from the current text field or panel before
// another mode takes over.
func (a *App) leaveMode() {
	switch a.mode {
	case input.ModeAddress:
		a.navigation.Abort(a.ctx)
	case input.ModeSettings:
		a.settings.Close()
	case input.ModeNotes:
		a.sidebar.Notes.Blur()
	}
	a.mode = a.restingMode()
}

// restingMode is the mode with no text field focused.
func (a *App) restingMode() input.Mode {
	if a.sidebar.IsOpen() {
		return input.ModeSidebar
	}
	return input.ModeBrowse
}

func (a *App) handleAddress(action input.Action) {
	switch action {
	case input.ActionSubmit:
		if err := a.navigation.Submit(a.ctx); err != nil {
			a.reportError(err)
		}
		a.mode = a.restingMode()
	case input.ActionAbort:
		a.navigation.Abort(a.ctx)
		a.mode = a.restingMode()
	}
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
		return
	}
	id, ok := a.tabBar.TabAt(msg.X)
	if !ok {
		return
	}
	if err := a.tabs.SwitchTab(a.ctx, id); err != nil {
		a.reportError(err)
	}
}

func (a *App) toggleSidebar() tea.Cmd {
	var cmd tea.Cmd
	if a.mode == input.ModeNotes {
		cmd = a.saveNotesCmd()
	}
	if a.sidebar.Toggle() {
		if a.mode != input.ModeAddress && a.mode != input.ModeSettings {
			a.mode = input.ModeSidebar
		}
		return tea.Batch(cmd, a.loadSidebarCmd())
	}
	if a.mode == input.ModeSidebar || a.mode == input.ModeNotes {
		a.mode = input.ModeBrowse
	}
	return cmd
}

func (a *App) handleSidebar(action input.Action) tea.Cmd {
	section := a.sidebar.Section()
	switch action {
	case input.ActionUp, input.ActionDown:
		delta := 1
		if action == input.ActionUp {
			delta = -1
		}
		switch section {
		case component.SectionClipboard:
			a.sidebar.Clipboard.Move(delta)
		case component.SectionSessions:
			a.sidebar.Sessions.Move(delta)
		}
	case input.ActionNextSection:
		a.sidebar.NextSection()
	case input.ActionClose:
		return a.toggleSidebar()
	case input.ActionCapture:
		return a.captureClipboardCmd()
	case input.ActionSaveSession:
		return a.saveSessionCmd()
	case input.ActionEditNotes:
		a.mode = input.ModeNotes
		return a.sidebar.Notes.Focus()
	case input.ActionActivate:
		switch section {
		case component.SectionClipboard:
			return a.copyClipboardCmd(a.sidebar.Clipboard.Selected())
		case component.SectionSessions:
			a.restoreSession(a.sidebar.Sessions.Selected())
		case component.SectionNotes:
			a.mode = input.ModeNotes
			return a.sidebar.Notes.Focus()
		}
	case input.ActionDelete:
		switch section {
		case component.SectionClipboard:
			return a.deleteClipboardCmd(a.sidebar.Clipboard.Selected())
		case component.SectionSessions:
			return a.deleteSessionCmd(a.sidebar.Sessions.Selected())
		}
	}
	return nil
}

func (a *App) handleNotes(action input.Action) tea.Cmd {
	if action != input.ActionClose {
		return nil
	}
	a.sidebar.Notes.Blur()
	a.mode = a.restingMode()
	return a.saveNotesCmd()
}

// restoreSession opens every address of a saved session as a new tab.
func (a *App) restoreSession(index int) {
	sessions := a.sidebar.Sessions.Sessions()
	if index < 0 || index >= len(sessions) {
		return
	}
	opened := 0
	for i, u := range sessions[index].URLs {
		if _, err := a.tabs.CreateTab(a.ctx, u, i == 0); err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Str("url", u).Msg("restore tab failed")
			continue
		}
		opened++
	}
	a.status.Notify(pluralTabs(opened) + " restored")
}

func (a *App) openSettings() {
	a.leaveMode()
	a.settings.SetSettings(a.deps.SettingsUC.Current())
	a.settings.Open()
	a.mode = input.ModeSettings
}

func (a *App) closeSettings() {
	a.settings.Close()
	a.mode = a.restingMode()
}

func (a *App) handleSettings(action input.Action) tea.Cmd {
	switch action {
	case input.ActionUp:
		a.settings.Move(-1)
	case input.ActionDown:
		a.settings.Move(1)
	case input.ActionClose:
		a.closeSettings()
	case input.ActionActivate:
		kind, mutate := a.settings.Activate()
		return a.settingsActionCmd(kind, mutate)
	}
	return nil
}
