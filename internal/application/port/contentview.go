// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application and UI
// layers to remain independent of the browser engine and host toolkit.
package port

import (
	"context"
	"errors"
)

// ErrNoActiveView is returned when a navigation command has no view to act on.
var ErrNoActiveView = errors.New("no active content view")

// ViewEventKind enumerates the asynchronous notifications a content view emits.
type ViewEventKind int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted ViewEventKind = iota
	// LoadFinished indicates the page has fully loaded (or failed).
	LoadFinished
	// Navigated indicates a main-frame navigation committed.
	Navigated
	// NavigatedInPage indicates a same-document navigation (fragment, pushState).
	NavigatedInPage
	// TitleUpdated indicates the page title changed.
	TitleUpdated
	// NewWindowRequested indicates the page asked to open a new window.
	NewWindowRequested
)

// String returns a human-readable representation of the event kind.
func (k ViewEventKind) String() string {
	switch k {
	case LoadStarted:
		return "load-started"
	case LoadFinished:
		return "load-finished"
	case Navigated:
		return "navigated"
	case NavigatedInPage:
		return "navigated-in-page"
	case TitleUpdated:
		return "title-updated"
	case NewWindowRequested:
		return "new-window-requested"
	default:
		return "unknown"
	}
}

// ViewEvent is one notification from a content view.
// URL is set for Navigated, NavigatedInPage and NewWindowRequested;
// Title for TitleUpdated; UserGesture for NewWindowRequested.
type ViewEvent struct {
	Kind        ViewEventKind
	URL         string
	Title       string
	UserGesture bool
}

// ViewEventHandler receives events. Implementations call it from their own
// goroutine, one event at a time and in emission order.
type ViewEventHandler func(ViewEvent)

// ContentView is an isolated page-rendering surface.
// Commands are asynchronous: they return once the request is issued and the
// outcome arrives later as events.
type ContentView interface {
	Load(url string)
	Reload()
	GoBack()
	GoForward()
	CanGoBack() bool
	CanGoForward() bool

	// CurrentURL is the last committed address.
	CurrentURL() string

	OpenInspector()
	CloseInspector()
	IsInspectorOpen() bool

	SetVisible(visible bool)
	IsVisible() bool

	// Subscribe registers handler and returns a function that removes it.
	// No event is delivered to handler after the returned function returns.
	Subscribe(handler ViewEventHandler) (unsubscribe func())

	// Destroy releases the view. It must not be used afterwards.
	Destroy()
}

// ContentViewFactory creates content views with an initial address. The view
// does not navigate until Load is called.
type ContentViewFactory interface {
	Create(ctx context.Context, url string) (ContentView, error)
}

// ScreenshotCapturer is implemented by views that can render a PNG of their page.
type ScreenshotCapturer interface {
	CaptureScreenshot(ctx context.Context) ([]byte, error)
}
