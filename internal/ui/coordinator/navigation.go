package coordinator

import (
	"context"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/logging"
)

// ActiveViewProvider resolves the view navigation commands act on.
type ActiveViewProvider interface {
	ActiveView() port.ContentView
}

// NavigationCoordinator handles the address bar and the back, forward,
// reload, home and inspector controls. The active view is looked up on
// every call so commands always follow tab switches.
type NavigationCoordinator struct {
	views     ActiveViewProvider
	address   port.AddressBar
	formatter url.Formatter
}

// NewNavigationCoordinator creates a new NavigationCoordinator.
func NewNavigationCoordinator(
	ctx context.Context,
	views ActiveViewProvider,
	address port.AddressBar,
	formatter url.Formatter,
) *NavigationCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating navigation coordinator")

	return &NavigationCoordinator{
		views:     views,
		address:   address,
		formatter: formatter,
	}
}

// SetFormatter replaces the address formatter, e.g. after a search engine change.
func (c *NavigationCoordinator) SetFormatter(f url.Formatter) {
	c.formatter = f
}

// Formatter returns the formatter in use.
func (c *NavigationCoordinator) Formatter() url.Formatter {
	return c.formatter
}

func (c *NavigationCoordinator) active(ctx context.Context, action string) (port.ContentView, error) {
	view := c.views.ActiveView()
	if view == nil {
		logging.FromContext(ctx).Debug().Str("action", action).Msg("no active view")
		return nil, port.ErrNoActiveView
	}
	return view, nil
}

// Navigate formats raw and loads the result in the active view.
func (c *NavigationCoordinator) Navigate(ctx context.Context, raw string) error {
	view, err := c.active(ctx, "navigate")
	if err != nil {
		return err
	}
	target := c.formatter.Format(raw)
	view.Load(target)
	logging.FromContext(ctx).Debug().Str("input", raw).Str("url", target).Msg("navigation requested")
	return nil
}

// Submit loads the address bar text and leaves editing mode.
func (c *NavigationCoordinator) Submit(ctx context.Context) error {
	view, err := c.active(ctx, "submit")
	if err != nil {
		return err
	}
	target := c.formatter.Format(c.address.Text())
	view.Load(target)
	c.address.Blur()
	c.address.SetText(target)
	return nil
}

// Abort discards the edit and restores the active view's address.
func (c *NavigationCoordinator) Abort(ctx context.Context) {
	c.address.Blur()
	if view, err := c.active(ctx, "abort"); err == nil {
		c.address.SetText(view.CurrentURL())
	}
}

// FocusAddressBar enters editing mode.
func (c *NavigationCoordinator) FocusAddressBar(context.Context) {
	c.address.Focus()
}

// Back steps back in the active view's history, if possible.
func (c *NavigationCoordinator) Back(ctx context.Context) error {
	view, err := c.active(ctx, "back")
	if err != nil {
		return err
	}
	if view.CanGoBack() {
		view.GoBack()
	}
	return nil
}

// Forward steps forward in the active view's history, if possible.
func (c *NavigationCoordinator) Forward(ctx context.Context) error {
	view, err := c.active(ctx, "forward")
	if err != nil {
		return err
	}
	if view.CanGoForward() {
		view.GoForward()
	}
	return nil
}

// Reload reloads the active view.
func (c *NavigationCoordinator) Reload(ctx context.Context) error {
	view, err := c.active(ctx, "reload")
	if err != nil {
		return err
	}
	view.Reload()
	return nil
}

// Home loads the configured home address.
func (c *NavigationCoordinator) Home(ctx context.Context) error {
	return c.Navigate(ctx, "")
}

// ToggleInspector opens or closes the developer tools of the active view.
func (c *NavigationCoordinator) ToggleInspector(ctx context.Context) error {
	view, err := c.active(ctx, "inspector")
	if err != nil {
		return err
	}
	if view.IsInspectorOpen() {
		view.CloseInspector()
	} else {
		view.OpenInspector()
	}
	return nil
}
