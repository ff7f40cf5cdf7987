package chromium

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/chromedp/chromedp"
)

// Factory creates page targets and keeps track of the live ones so engine
// preferences can be pushed to every open view.
type Factory struct {
	browser *Browser

	mu      sync.Mutex
	views   map[uint64]*View
	counter atomic.Uint64

	doNotTrack   atomic.Bool
	blockCookies atomic.Bool
}

// NewFactory creates a factory bound to a running browser.
func NewFactory(b *Browser) *Factory {
	f := &Factory{
		browser: b,
		views:   make(map[uint64]*View),
	}
	f.blockCookies.Store(b.opts.BlockThirdPartyCookies)
	return f
}

// Create opens a new page target whose address reads url. Navigation starts
// with Load, so callers can subscribe before the first event. It returns
// before the target exists; creation continues on the view's worker.
func (f *Factory) Create(ctx context.Context, url string) (port.ContentView, error) {
	if !f.browser.Running() {
		return nil, ErrBrowserClosed
	}

	tabCtx, cancel := chromedp.NewContext(f.browser.Context())
	id := f.counter.Add(1)
	v := newView(tabCtx, cancel, id, chromedp.Run, cdpProbe{run: chromedp.Run}, f.browser.logger)
	v.owner = f
	v.url = url
	chromedp.ListenTarget(tabCtx, v.onTargetEvent)

	f.mu.Lock()
	f.views[id] = v
	f.mu.Unlock()

	v.attach(f.doNotTrack.Load())

	logging.FromContext(ctx).Debug().Uint64("view_id", id).Str("url", url).Msg("content view created")
	return v, nil
}

func (f *Factory) forget(id uint64) {
	f.mu.Lock()
	delete(f.views, id)
	f.mu.Unlock()
}

// Count returns the number of live views.
func (f *Factory) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.views)
}

func (f *Factory) snapshot() []*View {
	f.mu.Lock()
	defer f.mu.Unlock()
	views := make([]*View, 0, len(f.views))
	for _, v := range f.views {
		views = append(views, v)
	}
	return views
}

// SetDoNotTrack toggles the DNT request header on every current and future view.
func (f *Factory) SetDoNotTrack(ctx context.Context, enabled bool) error {
	if f.doNotTrack.Swap(enabled) == enabled {
		return nil
	}
	for _, v := range f.snapshot() {
		v.setDoNotTrack(enabled)
	}
	logging.FromContext(ctx).Debug().Bool("enabled", enabled).Msg("do-not-track updated")
	return nil
}

// SetBlockThirdPartyCookies records the preference. Chromium reads it at
// launch, so it takes effect on the next start.
func (f *Factory) SetBlockThirdPartyCookies(ctx context.Context, enabled bool) error {
	if f.blockCookies.Swap(enabled) != enabled {
		logging.FromContext(ctx).Info().Bool("enabled", enabled).
			Msg("third-party cookie blocking applies after restart")
	}
	return nil
}

// SetDownloadDirectory forwards to the browser.
func (f *Factory) SetDownloadDirectory(ctx context.Context, dir string, ask bool) error {
	return f.browser.SetDownloadDirectory(ctx, dir, ask)
}

var (
	_ port.ContentViewFactory = (*Factory)(nil)
	_ port.EnginePreferences  = (*Factory)(nil)
)
