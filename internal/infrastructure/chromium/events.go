package chromium

import (
	"context"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// pageProbe reads page state that CDP events do not carry.
type pageProbe interface {
	History(ctx context.Context) (canBack, canForward bool, err error)
	Title(ctx context.Context) (string, error)
}

type cdpProbe struct {
	run runFunc
}

func (p cdpProbe) History(ctx context.Context) (bool, bool, error) {
	var current int64
	var entries []*page.NavigationEntry
	err := p.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		current, entries, err = page.GetNavigationHistory().Do(ctx)
		return err
	}))
	if err != nil {
		return false, false, err
	}
	return current > 0, current < int64(len(entries))-1, nil
}

func (p cdpProbe) Title(ctx context.Context) (string, error) {
	var title string
	if err := p.run(ctx, chromedp.Title(&title)); err != nil {
		return "", err
	}
	return title, nil
}

// onTargetEvent is the chromedp target listener. It runs on chromedp's
// event loop and must not block, so translation is deferred to the worker.
func (v *View) onTargetEvent(ev any) {
	switch ev.(type) {
	case *page.EventFrameStartedLoading,
		*page.EventFrameNavigated,
		*page.EventNavigatedWithinDocument,
		*page.EventFrameStoppedLoading,
		*page.EventWindowOpen:
		v.events.push(func() { v.translate(ev) })
	}
}

func (v *View) isMainFrame(id cdp.FrameID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return id != "" && id == v.frameID
}

// translate maps one CDP event onto zero or more view events. Navigation
// state is refreshed before navigation events are emitted so subscribers
// reading CanGoBack/CanGoForward see the new values.
func (v *View) translate(raw any) {
	if v.destroyed.Load() {
		return
	}
	switch ev := raw.(type) {
	case *page.EventFrameStartedLoading:
		if !v.isMainFrame(ev.FrameID) {
			return
		}
		v.emit(port.ViewEvent{Kind: port.LoadStarted})

	case *page.EventFrameNavigated:
		if ev.Frame == nil || ev.Frame.ParentID != "" {
			return
		}
		addr := ev.Frame.URL + ev.Frame.URLFragment
		v.setURL(addr)
		v.refreshHistory()
		v.emit(port.ViewEvent{Kind: port.Navigated, URL: addr})

	case *page.EventNavigatedWithinDocument:
		if !v.isMainFrame(ev.FrameID) {
			return
		}
		v.setURL(ev.URL)
		v.refreshHistory()
		v.emit(port.ViewEvent{Kind: port.NavigatedInPage, URL: ev.URL})
		v.refreshTitle()

	case *page.EventFrameStoppedLoading:
		if !v.isMainFrame(ev.FrameID) {
			return
		}
		v.refreshTitle()
		v.refreshHistory()
		v.emit(port.ViewEvent{Kind: port.LoadFinished})

	case *page.EventWindowOpen:
		v.emit(port.ViewEvent{
			Kind:        port.NewWindowRequested,
			URL:         ev.URL,
			UserGesture: ev.UserGesture,
		})
	}
}

func (v *View) setURL(addr string) {
	v.mu.Lock()
	v.url = addr
	v.mu.Unlock()
}

func (v *View) refreshHistory() {
	back, fwd, err := v.probe.History(v.ctx)
	if err != nil {
		v.logger.Debug().Err(err).Msg("navigation history unavailable")
		return
	}
	v.canBack.Store(back)
	v.canFwd.Store(fwd)
}

// refreshTitle emits TitleUpdated only when the title actually changed.
func (v *View) refreshTitle() {
	title, err := v.probe.Title(v.ctx)
	if err != nil {
		v.logger.Debug().Err(err).Msg("page title unavailable")
		return
	}
	v.mu.Lock()
	changed := title != v.title
	v.title = title
	v.mu.Unlock()
	if changed {
		v.emit(port.ViewEvent{Kind: port.TitleUpdated, Title: title})
	}
}
