package coordinator

import (
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// handlerFor returns the view subscriber for tab id. It runs on the view's
// goroutine and only forwards to the UI loop.
func (c *TabCoordinator) handlerFor(id entity.TabID) port.ViewEventHandler {
	return func(ev port.ViewEvent) {
		if ev.Kind == port.TitleUpdated && c.titles != nil {
			c.titles.Post("title:"+string(id), func() { c.dispatch(id, ev) })
			return
		}
		c.post(func() { c.dispatch(id, ev) })
	}
}

// dispatch applies one view event on the UI loop. Events for tabs that
// closed while the event was in flight are dropped.
func (c *TabCoordinator) dispatch(id entity.TabID, ev port.ViewEvent) {
	ctx := logging.WithTabID(c.baseCtx, string(id))
	log := logging.FromContext(ctx)

	entry, ok := c.entries[id]
	if !ok {
		log.Debug().Stringer("event", ev.Kind).Msg("event for closed tab dropped")
		return
	}
	tab := entry.tab
	active := c.tabs.ActiveTabID == id

	switch ev.Kind {
	case port.LoadStarted:
		tab.IsLoading = true
		entry.button.SetLoading(true)
		if active {
			c.ui.Loading.SetLoading(true)
		}

	case port.LoadFinished:
		tab.IsLoading = false
		entry.button.SetLoading(false)
		if active {
			c.ui.Loading.SetLoading(false)
			c.syncNavButtons(entry)
		}
		if entry.pendingVisit {
			entry.pendingVisit = false
			c.recordVisit(tab.URL, tab.Title)
		}

	case port.TitleUpdated:
		if tab.Title == ev.Title {
			return
		}
		tab.Title = ev.Title
		entry.button.SetLabel(tab.DisplayTitle())
		if active {
			c.setWindowTitle(tab.DisplayTitle())
		}

	case port.Navigated, port.NavigatedInPage:
		if ev.URL != "" {
			tab.URL = ev.URL
		}
		if ev.Kind == port.Navigated {
			entry.pendingVisit = true
		}
		entry.button.SetLabel(tab.DisplayTitle())
		if active {
			c.syncAddressBar(entry)
			c.syncNavButtons(entry)
			c.setWindowTitle(tab.DisplayTitle())
		}

	case port.NewWindowRequested:
		c.openRequestedWindow(ev)
	}
}

func (c *TabCoordinator) openRequestedWindow(ev port.ViewEvent) {
	log := logging.FromContext(c.baseCtx)
	if ev.URL == "" {
		return
	}
	if !c.popupPolicy.Allows(ev.UserGesture) {
		log.Info().
			Str("url", ev.URL).
			Str("policy", string(c.popupPolicy)).
			Bool("user_gesture", ev.UserGesture).
			Msg("new window blocked")
		return
	}
	if _, err := c.CreateTab(c.baseCtx, ev.URL, true); err != nil {
		log.Warn().Err(err).Str("url", ev.URL).Msg("failed to open requested window")
	}
}

func (c *TabCoordinator) recordVisit(url, title string) {
	if c.history == nil || url == "" {
		return
	}
	ctx := c.baseCtx
	c.background(func() {
		if err := c.history.Record(ctx, url, title); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to record history")
		}
	})
}
