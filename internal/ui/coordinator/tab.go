package coordinator

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/mainloop"
)

// ErrTabNotFound is returned when an operation names a tab that is not open.
var ErrTabNotFound = usecase.ErrTabNotFound

// Surfaces are the host widgets kept in sync with the tabs.
type Surfaces struct {
	Strip   port.TabStrip
	Address port.AddressBar
	Nav     port.NavigationButtons
	Loading port.LoadingIndicator
	Title   port.WindowTitle
	Panes   port.PaneLayout
}

// HistoryRecorder stores visited pages.
type HistoryRecorder interface {
	Record(ctx context.Context, url, title string) error
}

// TabCoordinatorConfig holds configuration for TabCoordinator.
type TabCoordinatorConfig struct {
	TabsUC   *usecase.ManageTabsUseCase
	Tabs     *entity.TabList
	Factory  port.ContentViewFactory
	Surfaces Surfaces

	// Post hands a closure to the UI loop. Required.
	Post func(func())
	// Titles coalesces title bursts per tab. Optional.
	Titles *mainloop.Coalescer

	History     HistoryRecorder // Optional
	PopupPolicy entity.PopupPolicy

	// Background runs blocking work off the UI loop. Defaults to a goroutine.
	Background func(func())
}

type tabEntry struct {
	tab         *entity.Tab
	view        port.ContentView
	button      port.TabButton
	unsubscribe func()

	// pendingVisit is set by a committed navigation and consumed when its
	// load finishes.
	pendingVisit bool
}

// TabCoordinator owns the lifecycle of tabs and their content views and
// keeps the host widgets in step with view events.
//
// Every method runs on the UI loop. View events arrive on view goroutines
// and are re-posted to the loop before touching any state.
type TabCoordinator struct {
	tabsUC  *usecase.ManageTabsUseCase
	tabs    *entity.TabList
	factory port.ContentViewFactory
	ui      Surfaces

	post        func(func())
	titles      *mainloop.Coalescer
	history     HistoryRecorder
	popupPolicy entity.PopupPolicy
	background  func(func())

	entries map[entity.TabID]*tabEntry

	// baseCtx carries the logger for work triggered by view events.
	baseCtx     context.Context
	windowTitle string
}

// NewTabCoordinator creates a new TabCoordinator.
func NewTabCoordinator(ctx context.Context, cfg TabCoordinatorConfig) *TabCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating tab coordinator")

	if cfg.Post == nil {
		panic("coordinator.NewTabCoordinator: post function cannot be nil")
	}
	tabs := cfg.Tabs
	if tabs == nil {
		tabs = entity.NewTabList()
	}
	background := cfg.Background
	if background == nil {
		background = func(fn func()) { go fn() }
	}
	policy, _ := entity.ParsePopupPolicy(string(cfg.PopupPolicy))

	return &TabCoordinator{
		tabsUC:      cfg.TabsUC,
		tabs:        tabs,
		factory:     cfg.Factory,
		ui:          cfg.Surfaces,
		post:        cfg.Post,
		titles:      cfg.Titles,
		history:     cfg.History,
		popupPolicy: policy,
		background:  background,
		entries:     make(map[entity.TabID]*tabEntry),
		baseCtx:     logging.WithComponent(ctx, "tabs"),
	}
}

// SetPopupPolicy changes how new-window requests are handled.
func (c *TabCoordinator) SetPopupPolicy(p entity.PopupPolicy) {
	c.popupPolicy = p
}

// CreateTab opens a tab loading url. With activate false the tab opens in
// the background, unless it is the first tab. A factory failure leaves no
// trace of the tab. The view starts loading only once its handler is attached.
func (c *TabCoordinator) CreateTab(ctx context.Context, url string, activate bool) (entity.TabID, error) {
	log := logging.FromContext(ctx)

	tab := c.tabsUC.NewTab(ctx, url)
	view, err := c.factory.Create(ctx, url)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to create content view")
		return "", fmt.Errorf("create content view: %w", err)
	}

	entry := &tabEntry{
		tab:    tab,
		view:   view,
		button: c.ui.Strip.AddTab(tab.ID, tab.DisplayTitle()),
	}
	entry.unsubscribe = view.Subscribe(c.handlerFor(tab.ID))

	if err := c.tabsUC.Add(ctx, c.tabs, tab, activate); err != nil {
		entry.unsubscribe()
		view.Destroy()
		c.ui.Strip.RemoveTab(tab.ID)
		return "", err
	}
	c.entries[tab.ID] = entry

	if c.tabs.ActiveTabID == tab.ID {
		c.applyActive(ctx)
	} else {
		view.SetVisible(false)
		entry.button.SetActive(false)
	}
	view.Load(url)
	return tab.ID, nil
}

// SwitchTab makes id the active tab.
func (c *TabCoordinator) SwitchTab(ctx context.Context, id entity.TabID) error {
	log := logging.FromContext(ctx)
	if _, ok := c.entries[id]; !ok {
		log.Warn().Str("tab_id", string(id)).Msg("switch to unknown tab ignored")
		return fmt.Errorf("switch to %q: %w", id, ErrTabNotFound)
	}
	if err := c.tabsUC.Switch(ctx, c.tabs, id); err != nil {
		log.Warn().Err(err).Msg("switch failed")
		return err
	}
	c.applyActive(ctx)
	return nil
}

// CycleTab switches offset positions away from the active tab, wrapping.
func (c *TabCoordinator) CycleTab(ctx context.Context, offset int) error {
	id, ok := c.tabsUC.Cycle(c.tabs, offset)
	if !ok {
		return nil
	}
	return c.SwitchTab(ctx, id)
}

// CloseTab closes id. Closing the last tab or an unknown tab does nothing.
func (c *TabCoordinator) CloseTab(ctx context.Context, id entity.TabID) error {
	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	entry, ok := c.entries[id]
	if !ok {
		log.Debug().Msg("close of unknown tab ignored")
		return nil
	}
	if c.tabs.Count() <= 1 {
		log.Debug().Msg("close of last tab ignored")
		return nil
	}

	closed, err := c.tabsUC.Close(ctx, c.tabs, id)
	if err != nil || !closed {
		return err
	}

	// Handlers go first so nothing reaches a destroyed view's entry.
	entry.unsubscribe()
	delete(c.entries, id)
	entry.view.Destroy()
	c.ui.Strip.RemoveTab(id)

	c.applyActive(ctx)
	return nil
}

// CloseActive closes the active tab.
func (c *TabCoordinator) CloseActive(ctx context.Context) error {
	return c.CloseTab(ctx, c.tabs.ActiveTabID)
}

// ToggleSplit shows the first two tabs side by side, or returns to a single
// pane. It reports whether split view is on afterwards.
func (c *TabCoordinator) ToggleSplit(ctx context.Context) bool {
	on := c.tabsUC.ToggleSplit(ctx, c.tabs)
	if !on {
		// Re-applying the active tab restores the single-pane state.
		if active := c.tabs.ActiveTabID; active != "" {
			_ = c.SwitchTab(ctx, active)
		}
		return false
	}
	c.applyActive(ctx)
	return true
}

// ActiveView returns the content view of the active tab, or nil.
func (c *TabCoordinator) ActiveView() port.ContentView {
	if entry, ok := c.entries[c.tabs.ActiveTabID]; ok {
		return entry.view
	}
	return nil
}

// ActiveTab returns a copy of the active tab.
func (c *TabCoordinator) ActiveTab() (entity.Tab, bool) {
	if entry, ok := c.entries[c.tabs.ActiveTabID]; ok {
		return *entry.tab, true
	}
	return entity.Tab{}, false
}

// Tab returns a copy of an open tab.
func (c *TabCoordinator) Tab(id entity.TabID) (entity.Tab, bool) {
	if entry, ok := c.entries[id]; ok {
		return *entry.tab, true
	}
	return entity.Tab{}, false
}

// URLs returns the address of every open tab in strip order.
func (c *TabCoordinator) URLs() []string {
	return c.tabs.URLs()
}

// Tabs returns copies of the open tabs in strip order.
func (c *TabCoordinator) Tabs() []entity.Tab {
	out := make([]entity.Tab, 0, c.tabs.Count())
	for _, tab := range c.tabs.Tabs {
		out = append(out, *tab)
	}
	return out
}

// Split reports whether split view is on, and the secondary tab.
func (c *TabCoordinator) Split() (bool, entity.TabID) {
	return c.tabs.Split, c.tabs.SplitTabID
}

// Count returns the number of open tabs.
func (c *TabCoordinator) Count() int {
	return c.tabs.Count()
}

// Shutdown detaches and destroys every view.
func (c *TabCoordinator) Shutdown(ctx context.Context) {
	for id, entry := range c.entries {
		entry.unsubscribe()
		entry.view.Destroy()
		delete(c.entries, id)
	}
	if c.titles != nil {
		c.titles.Destroy()
	}
	logging.FromContext(ctx).Debug().Msg("tab coordinator shut down")
}

// applyActive pushes the active tab's state to every widget.
func (c *TabCoordinator) applyActive(ctx context.Context) {
	active := c.tabs.ActiveTabID
	entry, ok := c.entries[active]
	if !ok {
		return
	}

	// Hide first so no pane ever shows two views.
	for id, e := range c.entries {
		e.button.SetActive(id == active)
		if !c.tabs.IsVisible(id) {
			e.view.SetVisible(false)
		}
	}
	secondary := entity.TabID("")
	if c.tabs.Split {
		secondary = c.tabs.SplitTabID
		if partner, ok := c.entries[secondary]; ok {
			partner.view.SetVisible(true)
		}
	}
	entry.view.SetVisible(true)
	if c.ui.Panes != nil {
		c.ui.Panes.SetPanes(active, secondary)
	}

	c.syncAddressBar(entry)
	c.syncNavButtons(entry)
	c.ui.Loading.SetLoading(entry.tab.IsLoading)
	c.setWindowTitle(entry.tab.DisplayTitle())

	logging.FromContext(ctx).Debug().
		Str("tab_id", string(active)).
		Str("split_tab_id", string(secondary)).
		Msg("active tab applied")
}

// syncAddressBar shows the tab's address unless the user is editing.
func (c *TabCoordinator) syncAddressBar(entry *tabEntry) {
	if c.ui.Address.Focused() {
		return
	}
	addr := entry.tab.URL
	if addr == "" {
		addr = entry.view.CurrentURL()
	}
	c.ui.Address.SetText(addr)
}

func (c *TabCoordinator) syncNavButtons(entry *tabEntry) {
	c.ui.Nav.SetBackEnabled(entry.view.CanGoBack())
	c.ui.Nav.SetForwardEnabled(entry.view.CanGoForward())
}

func (c *TabCoordinator) setWindowTitle(title string) {
	if title == c.windowTitle {
		return
	}
	c.windowTitle = title
	c.ui.Title.SetTitle(title)
}

// RefreshNavigation re-reads back/forward state of the active view.
func (c *TabCoordinator) RefreshNavigation() {
	if entry, ok := c.entries[c.tabs.ActiveTabID]; ok {
		c.syncNavButtons(entry)
	}
}
