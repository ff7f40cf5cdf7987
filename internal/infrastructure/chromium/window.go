package chromium

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/chromedp"
)

// Window controls the Chromium window that hosts the page targets.
type Window struct {
	browser *Browser
	onClose func()
}

// NewWindow creates a window controller. onClose is invoked by Close and
// is expected to end the host application.
func NewWindow(b *Browser, onClose func()) *Window {
	return &Window{browser: b, onClose: onClose}
}

func (w *Window) setState(ctx context.Context, state browser.WindowState) error {
	err := w.browser.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		windowID, _, err := browser.GetWindowForTarget().Do(ctx)
		if err != nil {
			return err
		}
		return browser.SetWindowBounds(windowID, &browser.Bounds{WindowState: state}).Do(ctx)
	}))
	if err != nil {
		return fmt.Errorf("set window state %s: %w", state, err)
	}
	return nil
}

// Minimize iconifies the browser window.
func (w *Window) Minimize(ctx context.Context) error {
	return w.setState(ctx, browser.WindowStateMinimized)
}

// Maximize toggles between maximized and normal.
func (w *Window) Maximize(ctx context.Context) error {
	var current browser.WindowState
	err := w.browser.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		_, bounds, err := browser.GetWindowForTarget().Do(ctx)
		if err != nil {
			return err
		}
		if bounds != nil {
			current = bounds.WindowState
		}
		return nil
	}))
	if err != nil {
		return fmt.Errorf("get window state: %w", err)
	}
	if current == browser.WindowStateMaximized {
		return w.setState(ctx, browser.WindowStateNormal)
	}
	return w.setState(ctx, browser.WindowStateMaximized)
}

// Close ends the application.
func (w *Window) Close(ctx context.Context) error {
	logging.FromContext(ctx).Info().Msg("window close requested")
	if w.onClose != nil {
		w.onClose()
	}
	return nil
}

var (
	_ port.WindowController    = (*Window)(nil)
	_ port.BrowsingDataClearer = (*Browser)(nil)
)
