package chromium

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
)

// runFunc executes actions against a target context. chromedp.Run in production.
type runFunc func(ctx context.Context, actions ...chromedp.Action) error

// View is one Chromium page target.
//
// Commands are queued and executed in order on a command worker; CDP events
// are queued by the target listener and translated on an event worker, so
// subscribers see events one at a time and in emission order.
type View struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
	run    runFunc
	probe  pageProbe
	owner  *Factory // nil in tests

	commands *workQueue
	events   *workQueue

	mu          sync.Mutex
	url         string
	title       string
	frameID     cdp.FrameID
	inspectorID target.ID
	handlers    map[uint64]*subscription
	nextSub     uint64

	canBack   atomic.Bool
	canFwd    atomic.Bool
	visible   atomic.Bool
	destroyed atomic.Bool

	logger zerolog.Logger
}

type subscription struct {
	handler port.ViewEventHandler
	active  atomic.Bool
}

func newView(ctx context.Context, cancel context.CancelFunc, id uint64, run runFunc, probe pageProbe, logger zerolog.Logger) *View {
	return &View{
		id:       id,
		ctx:      ctx,
		cancel:   cancel,
		run:      run,
		probe:    probe,
		commands: newWorkQueue(),
		events:   newWorkQueue(),
		handlers: make(map[uint64]*subscription),
		logger:   logger.With().Uint64("view_id", id).Logger(),
	}
}

// ID returns the process-local view number.
func (v *View) ID() uint64 {
	return v.id
}

// exec queues a command. Failures are logged; outcomes arrive as events.
func (v *View) exec(name string, actions ...chromedp.Action) {
	if v.destroyed.Load() {
		return
	}
	v.commands.push(func() {
		if v.ctx.Err() != nil {
			return
		}
		if err := v.run(v.ctx, actions...); err != nil && v.ctx.Err() == nil {
			v.logger.Warn().Err(err).Str("command", name).Msg("view command failed")
		}
	})
}

// attach binds the view to its freshly created target and enables the
// domains events are read from.
func (v *View) attach(doNotTrack bool) {
	v.exec("attach", chromedp.ActionFunc(func(ctx context.Context) error {
		if c := chromedp.FromContext(ctx); c != nil && c.Target != nil {
			v.mu.Lock()
			// The main frame shares its id with the page target.
			v.frameID = cdp.FrameID(c.Target.TargetID)
			v.mu.Unlock()
		}
		if err := page.Enable().Do(ctx); err != nil {
			return fmt.Errorf("enable page domain: %w", err)
		}
		if err := network.Enable().Do(ctx); err != nil {
			return fmt.Errorf("enable network domain: %w", err)
		}
		return extraHeaders(doNotTrack).Do(ctx)
	}))
}

func extraHeaders(doNotTrack bool) *network.SetExtraHTTPHeadersParams {
	headers := network.Headers{}
	if doNotTrack {
		headers["DNT"] = "1"
	}
	return network.SetExtraHTTPHeaders(headers)
}

func (v *View) setDoNotTrack(enabled bool) {
	v.exec("do-not-track", extraHeaders(enabled))
}

// Load navigates the main frame to url.
func (v *View) Load(url string) {
	v.mu.Lock()
	if v.url == "" {
		v.url = url
	}
	v.mu.Unlock()

	v.exec("load", chromedp.ActionFunc(func(ctx context.Context) error {
		return cdp.Execute(ctx, page.CommandNavigate, page.Navigate(url), nil)
	}))
}

// Reload reloads the current page.
func (v *View) Reload() {
	v.exec("reload", page.Reload())
}

// GoBack steps one entry back in session history.
func (v *View) GoBack() {
	v.exec("back", chromedp.ActionFunc(func(ctx context.Context) error {
		return stepHistory(ctx, -1)
	}))
}

// GoForward steps one entry forward in session history.
func (v *View) GoForward() {
	v.exec("forward", chromedp.ActionFunc(func(ctx context.Context) error {
		return stepHistory(ctx, 1)
	}))
}

func stepHistory(ctx context.Context, delta int64) error {
	current, entries, err := page.GetNavigationHistory().Do(ctx)
	if err != nil {
		return err
	}
	next := current + delta
	if next < 0 || next >= int64(len(entries)) {
		return nil
	}
	return page.NavigateToHistoryEntry(entries[next].ID).Do(ctx)
}

// CanGoBack reports the cached back availability, refreshed on navigation events.
func (v *View) CanGoBack() bool {
	return v.canBack.Load()
}

// CanGoForward reports the cached forward availability.
func (v *View) CanGoForward() bool {
	return v.canFwd.Load()
}

// CurrentURL returns the last committed address.
func (v *View) CurrentURL() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.url
}

// Title returns the last title reported by the page.
func (v *View) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// OpenInspector opens the DevTools frontend for this page in its own window.
func (v *View) OpenInspector() {
	if v.owner == nil || v.IsInspectorOpen() {
		return
	}
	host := v.owner.browser.DevToolsHost()
	v.mu.Lock()
	frameID := v.frameID
	v.mu.Unlock()
	if host == "" || frameID == "" {
		v.logger.Warn().Msg("inspector unavailable: no remote debugging endpoint")
		return
	}

	frontend := fmt.Sprintf("http://%s/devtools/inspector.html?ws=%s/devtools/page/%s", host, host, frameID)
	v.commands.push(func() {
		var id target.ID
		err := v.owner.browser.run(v.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			id, err = target.CreateTarget(frontend).WithNewWindow(true).Do(ctx)
			return err
		}))
		if err != nil {
			v.logger.Warn().Err(err).Msg("open inspector failed")
			return
		}
		v.mu.Lock()
		v.inspectorID = id
		v.mu.Unlock()
	})
}

// CloseInspector closes the DevTools window if one is open.
func (v *View) CloseInspector() {
	v.mu.Lock()
	id := v.inspectorID
	v.inspectorID = ""
	v.mu.Unlock()
	if id == "" || v.owner == nil {
		return
	}
	v.commands.push(func() {
		v.closeTarget(id)
	})
}

func (v *View) closeTarget(id target.ID) {
	err := v.owner.browser.run(context.Background(), chromedp.ActionFunc(func(ctx context.Context) error {
		return cdp.Execute(ctx, target.CommandCloseTarget, target.CloseTarget(id), nil)
	}))
	if err != nil {
		v.logger.Debug().Err(err).Msg("close inspector target")
	}
}

// IsInspectorOpen reports whether an inspector window was opened and not closed.
func (v *View) IsInspectorOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inspectorID != ""
}

// SetVisible brings the target to front when shown. Hiding is implicit:
// Chromium shows one page per window, so activating another hides this one.
func (v *View) SetVisible(visible bool) {
	if v.visible.Swap(visible) == visible || !visible {
		return
	}
	v.exec("activate", chromedp.ActionFunc(func(ctx context.Context) error {
		c := chromedp.FromContext(ctx)
		if c == nil || c.Target == nil {
			return nil
		}
		return target.ActivateTarget(c.Target.TargetID).Do(ctx)
	}))
}

// IsVisible reports the last visibility requested.
func (v *View) IsVisible() bool {
	return v.visible.Load()
}

// CaptureScreenshot renders the visible viewport as PNG.
func (v *View) CaptureScreenshot(ctx context.Context) ([]byte, error) {
	if v.destroyed.Load() {
		return nil, fmt.Errorf("view %d is destroyed", v.id)
	}
	runCtx, cancel := context.WithCancel(v.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var buf []byte
	if err := v.run(runCtx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return buf, nil
}

// Subscribe registers handler for this view's events.
func (v *View) Subscribe(handler port.ViewEventHandler) func() {
	sub := &subscription{handler: handler}
	sub.active.Store(true)

	v.mu.Lock()
	v.nextSub++
	key := v.nextSub
	v.handlers[key] = sub
	v.mu.Unlock()

	return func() {
		sub.active.Store(false)
		v.mu.Lock()
		delete(v.handlers, key)
		v.mu.Unlock()
	}
}

func (v *View) emit(ev port.ViewEvent) {
	v.mu.Lock()
	subs := make([]*subscription, 0, len(v.handlers))
	for _, key := range slices.Sorted(maps.Keys(v.handlers)) {
		subs = append(subs, v.handlers[key])
	}
	v.mu.Unlock()

	for _, sub := range subs {
		if sub.active.Load() {
			sub.handler(ev)
		}
	}
}

// Destroy detaches every subscriber, then closes the page target.
func (v *View) Destroy() {
	if v.destroyed.Swap(true) {
		return
	}

	v.mu.Lock()
	for _, sub := range v.handlers {
		sub.active.Store(false)
	}
	v.handlers = make(map[uint64]*subscription)
	inspector := v.inspectorID
	v.inspectorID = ""
	v.mu.Unlock()

	v.events.close()
	v.commands.close()
	if inspector != "" && v.owner != nil {
		go v.closeTarget(inspector)
	}
	// Cancelling a chromedp context closes the target it created.
	v.cancel()

	if v.owner != nil {
		v.owner.forget(v.id)
	}
	v.logger.Debug().Msg("view destroyed")
}

var (
	_ port.ContentView        = (*View)(nil)
	_ port.ScreenshotCapturer = (*View)(nil)
)
