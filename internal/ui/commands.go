package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/bridge"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/component"
	"github.com/bnema/tabshell/internal/ui/input"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	metricsInterval   = 2 * time.Second
	screenshotTimeout = 15 * time.Second
	completionLimit   = 8
)

// Results of background work, delivered back to the loop as messages.
type (
	metricsTickMsg time.Time

	metricsMsg struct {
		metrics port.Metrics
		err     error
	}

	clipboardMsg struct {
		entries []entity.ClipboardEntry
		done    string
		err     error
	}

	sessionsMsg struct {
		sessions []entity.SessionSnapshot
		done     string
		err      error
	}

	notesMsg struct {
		text  string
		saved bool
		err   error
	}

	// completionsMsg answers the address typed as prefix.
	completionsMsg struct {
		prefix      string
		completions []string
	}

	resultMsg struct {
		action string
		result bridge.Result
		// settings reports to the settings panel as well.
		settings bool
	}
)

func metricsTick() tea.Cmd {
	return tea.Tick(metricsInterval, func(t time.Time) tea.Msg { return metricsTickMsg(t) })
}

func (a *App) sampleMetricsCmd() tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		m, err := a.bridge.GetMetrics(ctx)
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("metrics sample failed")
		}
		return metricsMsg{metrics: m, err: err}
	}
}

func (a *App) enginePreferencesCmd(s entity.Settings) tea.Cmd {
	if a.deps.Engine == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		a.applyEnginePreferences(ctx, s)
		return nil
	}
}

func (a *App) screenshotCmd() tea.Cmd {
	capturer, ok := a.tabs.ActiveView().(port.ScreenshotCapturer)
	if !ok {
		a.status.Error("this page cannot be captured")
		return nil
	}
	ctx := a.ctx
	a.status.Notify("capturing screenshot…")
	return func() tea.Msg {
		captureCtx, cancel := context.WithTimeout(ctx, screenshotTimeout)
		defer cancel()

		png, err := capturer.CaptureScreenshot(captureCtx)
		if err != nil {
			return resultMsg{action: "screenshot", result: bridge.Result{Error: err.Error()}}
		}
		return resultMsg{action: "screenshot", result: a.bridge.SaveScreenshot(ctx, png)}
	}
}

func (a *App) onResult(msg resultMsg) {
	res := msg.result
	text := msg.action + ": done"
	switch {
	case !res.Success:
		text = fmt.Sprintf("%s failed: %s", msg.action, res.Error)
		a.status.Error(text)
	case res.Path != "":
		text = fmt.Sprintf("%s: %s", msg.action, res.Path)
		a.status.Notify(text)
	default:
		a.status.Notify(text)
	}
	if msg.settings {
		a.settings.SetStatus(text)
	}
}

// settingsActionCmd performs a settings panel activation off the loop.
func (a *App) settingsActionCmd(kind component.SettingsAction, mutate func(*entity.Settings)) tea.Cmd {
	ctx := a.ctx
	run := func(action string, fn func() bridge.Result) tea.Cmd {
		return func() tea.Msg {
			return resultMsg{action: action, result: fn(), settings: true}
		}
	}

	switch kind {
	case component.ActionUpdate:
		if mutate == nil {
			return nil
		}
		return run("save settings", func() bridge.Result {
			if _, err := a.deps.SettingsUC.Update(ctx, mutate); err != nil {
				return bridge.Result{Error: err.Error()}
			}
			return bridge.Result{Success: true}
		})
	case component.ActionSelectDownloadLocation:
		return run("download location", func() bridge.Result { return a.bridge.SelectDownloadLocation(ctx) })
	case component.ActionClearCache:
		return run("clear cache", func() bridge.Result { return a.bridge.ClearCache(ctx) })
	case component.ActionClearCookies:
		return run("clear cookies", func() bridge.Result { return a.bridge.ClearCookies(ctx) })
	case component.ActionClearHistory:
		return run("clear history", func() bridge.Result { return a.bridge.ClearHistory(ctx) })
	case component.ActionClearAllData:
		return run("clear all data", func() bridge.Result { return a.bridge.ClearAllData(ctx) })
	}
	return nil
}

// loadSidebarCmd refreshes the sidebar lists, and the notes once.
func (a *App) loadSidebarCmd() tea.Cmd {
	cmds := []tea.Cmd{a.listClipboardCmd(), a.listSessionsCmd()}
	if !a.notesLoaded {
		cmds = append(cmds, a.loadNotesCmd())
	}
	return tea.Batch(cmds...)
}

func (a *App) clipboardCmd(done string, fn func(ctx context.Context) ([]entity.ClipboardEntry, error)) tea.Cmd {
	if a.deps.ClipboardUC == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		entries, err := fn(ctx)
		return clipboardMsg{entries: entries, done: done, err: err}
	}
}

func (a *App) listClipboardCmd() tea.Cmd {
	return a.clipboardCmd("", func(ctx context.Context) ([]entity.ClipboardEntry, error) {
		return a.deps.ClipboardUC.List(ctx)
	})
}

func (a *App) captureClipboardCmd() tea.Cmd {
	return a.clipboardCmd("clipboard captured", func(ctx context.Context) ([]entity.ClipboardEntry, error) {
		return a.deps.ClipboardUC.Capture(ctx)
	})
}

func (a *App) copyClipboardCmd(index int) tea.Cmd {
	if index < 0 {
		return nil
	}
	return a.clipboardCmd("copied to clipboard", func(ctx context.Context) ([]entity.ClipboardEntry, error) {
		return a.deps.ClipboardUC.Copy(ctx, index)
	})
}

func (a *App) deleteClipboardCmd(index int) tea.Cmd {
	if index < 0 {
		return nil
	}
	return a.clipboardCmd("clipboard entry deleted", func(ctx context.Context) ([]entity.ClipboardEntry, error) {
		return a.deps.ClipboardUC.Delete(ctx, index)
	})
}

func (a *App) onClipboard(msg clipboardMsg) {
	if msg.err != nil {
		a.status.Error(msg.err.Error())
		return
	}
	a.sidebar.Clipboard.SetEntries(msg.entries)
	if msg.done != "" {
		a.status.Notify(msg.done)
	}
}

func (a *App) sessionsCmd(done string, fn func(ctx context.Context) error) tea.Cmd {
	uc := a.deps.SessionsUC
	if uc == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		if fn != nil {
			if err := fn(ctx); err != nil {
				return sessionsMsg{err: err}
			}
		}
		sessions, err := uc.List(ctx)
		return sessionsMsg{sessions: sessions, done: done, err: err}
	}
}

func (a *App) listSessionsCmd() tea.Cmd {
	return a.sessionsCmd("", nil)
}

// saveSessionCmd snapshots the open addresses. They are read here, on the
// loop; only the write happens in the command.
func (a *App) saveSessionCmd() tea.Cmd {
	urls := a.tabs.URLs()
	return a.sessionsCmd("session saved", func(ctx context.Context) error {
		_, err := a.deps.SessionsUC.Save(ctx, urls)
		return err
	})
}

func (a *App) deleteSessionCmd(index int) tea.Cmd {
	if index < 0 {
		return nil
	}
	return a.sessionsCmd("session deleted", func(ctx context.Context) error {
		return a.deps.SessionsUC.Delete(ctx, index)
	})
}

func (a *App) onSessions(msg sessionsMsg) {
	if msg.err != nil {
		a.status.Error(msg.err.Error())
		return
	}
	a.sidebar.Sessions.SetSessions(msg.sessions)
	if msg.done != "" {
		a.status.Notify(msg.done)
	}
}

func (a *App) loadNotesCmd() tea.Cmd {
	uc := a.deps.NotesUC
	if uc == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		text, err := uc.Load(ctx)
		return notesMsg{text: text, err: err}
	}
}

func (a *App) saveNotesCmd() tea.Cmd {
	uc := a.deps.NotesUC
	if uc == nil || !a.sidebar.Notes.Dirty() {
		return nil
	}
	ctx := a.ctx
	text := a.sidebar.Notes.Value()
	return func() tea.Msg {
		return notesMsg{text: text, saved: true, err: uc.Save(ctx, text)}
	}
}

func (a *App) onNotes(msg notesMsg) {
	if msg.err != nil {
		a.status.Error(msg.err.Error())
		return
	}
	if msg.saved {
		a.sidebar.Notes.MarkSaved(msg.text)
		a.status.Notify("notes saved")
		return
	}
	// A late load must not clobber typing that already started.
	if !a.notesLoaded && !a.sidebar.Notes.Dirty() {
		a.sidebar.Notes.Load(msg.text)
	}
	a.notesLoaded = true
}

func pluralTabs(n int) string {
	if n == 1 {
		return "1 tab"
	}
	return fmt.Sprintf("%d tabs", n)
}

func (a *App) completeAddressCmd(prefix string) tea.Cmd {
	historyUC := a.deps.HistoryUC
	if historyUC == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		completions, err := historyUC.Complete(ctx, prefix, completionLimit)
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("address completion failed")
		}
		return completionsMsg{prefix: prefix, completions: completions}
	}
}

// onCompletions drops answers for text the user has since changed.
func (a *App) onCompletions(msg completionsMsg) {
	if a.mode != input.ModeAddress || a.address.Text() != msg.prefix {
		return
	}
	a.address.SetCompletions(msg.completions)
}
