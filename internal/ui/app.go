package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/bridge"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/metrics"
	"github.com/bnema/tabshell/internal/infrastructure/snapshot"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/component"
	"github.com/bnema/tabshell/internal/ui/coordinator"
	"github.com/bnema/tabshell/internal/ui/input"
	"github.com/bnema/tabshell/internal/ui/mainloop"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// App is the host window. All fields are owned by the update loop; other
// goroutines reach them only through post.
type App struct {
	deps    *Dependencies
	ctx     context.Context
	cfg     *config.Config
	program *tea.Program
	post    func(func())

	keys     input.KeyMap
	mode     input.Mode
	help     help.Model
	showHelp bool

	// Widgets
	tabBar   *component.TabBar
	address  *component.AddressBar
	nav      *component.NavButtons
	loading  *component.LoadingIndicator
	title    *component.WindowTitle
	panes    *component.PaneLayout
	sidebar  *component.Sidebar
	settings *component.SettingsPanel
	status   *component.StatusBar

	// Coordinators
	tabs       *coordinator.TabCoordinator
	navigation *coordinator.NavigationCoordinator

	bridge    *bridge.Bridge
	snapshots *snapshot.Service

	// tabCount mirrors the open tab count for the metrics sampler, which
	// runs off the loop.
	tabCount     atomic.Int64
	lastURLs     []string
	notesLoaded  bool
	unsubscribes []func()

	width, height int
}

// New creates the host window and the Bubble Tea program that drives it.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	a := newApp(deps)
	a.program = tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(deps.Ctx),
	)
	// Send blocks until the loop runs, so events posted before Run wait.
	a.wire(mainloop.NewPoster(a.program.Send).Post)
	return a, nil
}

func newApp(deps *Dependencies) *App {
	current := deps.SettingsUC.Current()
	a := &App{
		deps:     deps,
		ctx:      logging.WithComponent(deps.Ctx, "ui"),
		cfg:      deps.Config,
		keys:     input.DefaultKeyMap(),
		help:     help.New(),
		tabBar:   component.NewTabBar(),
		address:  component.NewAddressBar(),
		nav:      component.NewNavButtons(current.ShowHomeButton),
		loading:  component.NewLoadingIndicator(),
		title:    component.NewWindowTitle(),
		panes:    component.NewPaneLayout(),
		sidebar:  component.NewSidebar(deps.Config.UI.SidebarOpen),
		settings: component.NewSettingsPanel(url.SearchEngines()),
		status:   component.NewStatusBar(),
	}
	if a.sidebar.IsOpen() {
		a.mode = input.ModeSidebar
	}
	return a
}

// wire builds the coordinators and subscriptions around post, the function
// that hands closures to the update loop.
func (a *App) wire(post func(func())) {
	a.post = post
	deps := a.deps

	var history coordinator.HistoryRecorder
	if deps.HistoryUC != nil {
		history = deps.HistoryUC
	}
	a.tabs = coordinator.NewTabCoordinator(a.ctx, coordinator.TabCoordinatorConfig{
		TabsUC:  usecase.NewManageTabsUseCase(usecase.NewTabIDGenerator(deps.StartedAt)),
		Tabs:    entity.NewTabList(),
		Factory: deps.Factory,
		Surfaces: coordinator.Surfaces{
			Strip:   a.tabBar,
			Address: a.address,
			Nav:     a.nav,
			Loading: a.loading,
			Title:   a.title,
			Panes:   a.panes,
		},
		Post:        post,
		Titles:      mainloop.NewCoalescer(post),
		History:     history,
		PopupPolicy: a.cfg.Browser.PopupPolicy,
	})

	current := deps.SettingsUC.Current()
	a.navigation = coordinator.NewNavigationCoordinator(a.ctx, a.tabs, a.address, a.cfg.Formatter(current.SearchEngine))

	a.bridge = bridge.New(bridge.Deps{
		Build:       deps.Build,
		Metrics:     metrics.NewSampler(deps.StartedAt, a.TabCount),
		Window:      deps.Window,
		Settings:    deps.SettingsUC,
		ClearData:   deps.ClearDataUC,
		Screenshots: deps.ScreenshotUC,
		Picker:      deps.Picker,
		OpenSettings: func() {
			post(a.openSettings)
		},
	})

	if deps.SessionsUC != nil {
		a.snapshots = snapshot.NewService(deps.SessionsUC, deps.SnapshotInterval)
	}

	a.unsubscribes = append(a.unsubscribes, a.bridge.OnSettingsUpdated(a.onSettingsSaved))
	a.applySettings(current)
}

// TabCount returns the number of open tabs. Safe from any goroutine.
func (a *App) TabCount() int {
	return int(a.tabCount.Load())
}

// Bridge returns the privileged bridge bound to this window.
func (a *App) Bridge() *bridge.Bridge {
	return a.bridge
}

// Run blocks until the window is closed, then tears everything down.
func (a *App) Run() error {
	log := logging.FromContext(a.ctx)
	log.Info().Msg("starting host window")

	_, err := a.program.Run()
	a.shutdown(context.WithoutCancel(a.ctx))

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run host window: %w", err)
	}
	log.Info().Msg("host window closed")
	return nil
}

// Quit ends the program. Safe from any goroutine.
func (a *App) Quit() {
	if a.program != nil {
		a.program.Quit()
	}
}

// OnConfigChange applies a reloaded configuration file. It is called from
// the config watcher goroutine.
func (a *App) OnConfigChange(cfg *config.Config) {
	a.post(func() { a.applyConfig(cfg) })
}

func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.navigation.SetFormatter(cfg.Formatter(a.deps.SettingsUC.Current().SearchEngine))
	if policy, ok := entity.ParsePopupPolicy(string(cfg.Browser.PopupPolicy)); ok {
		a.tabs.SetPopupPolicy(policy)
	}
	a.status.Notify("configuration reloaded")
	logging.FromContext(a.ctx).Info().Msg("configuration applied")
}

// openInitialTabs opens the startup addresses, the first one active.
func (a *App) openInitialTabs() {
	urls := a.deps.InitialURLs
	if len(urls) == 0 {
		urls = []string{""}
	}
	formatter := a.navigation.Formatter()
	for i, raw := range urls {
		if _, err := a.tabs.CreateTab(a.ctx, formatter.Format(raw), i == 0); err != nil {
			a.status.Error(fmt.Sprintf("open %s: %v", raw, err))
		}
	}
}

// onSettingsSaved runs on the goroutine that saved the settings.
func (a *App) onSettingsSaved(s entity.Settings) {
	a.applyEnginePreferences(a.ctx, s)
	a.post(func() { a.applySettings(s) })
}

// applySettings pushes settings to the widgets. Runs on the loop.
func (a *App) applySettings(s entity.Settings) {
	a.navigation.SetFormatter(a.cfg.Formatter(s.SearchEngine))
	a.nav.SetShowHome(s.ShowHomeButton)
	a.settings.SetSettings(s)
	a.deps.Theme.Refresh(a.ctx)
}

// applyEnginePreferences forwards the engine-side settings. It blocks on
// the browser and must not run on the loop.
func (a *App) applyEnginePreferences(ctx context.Context, s entity.Settings) {
	engine := a.deps.Engine
	if engine == nil {
		return
	}
	log := logging.FromContext(ctx)
	if err := engine.SetDoNotTrack(ctx, s.DoNotTrack); err != nil {
		log.Warn().Err(err).Msg("apply do-not-track failed")
	}
	if err := engine.SetBlockThirdPartyCookies(ctx, s.BlockThirdPartyCookies); err != nil {
		log.Warn().Err(err).Msg("apply cookie policy failed")
	}
	dir := s.DownloadLocation
	if dir == "" {
		dir, _ = a.bridge.GetDefaultDownloadPath()
	}
	if dir != "" {
		if err := engine.SetDownloadDirectory(ctx, dir, s.AskBeforeDownload); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("apply download directory failed")
		}
	}
}

// sync runs after every update: it mirrors tab state to the status bar,
// the metrics counter and the autosave, and returns pending terminal
// commands.
func (a *App) sync(cmd tea.Cmd) tea.Cmd {
	count := a.tabs.Count()
	a.tabCount.Store(int64(count))
	split, _ := a.tabs.Split()
	a.status.SetTabs(count, split)

	if a.snapshots != nil {
		if urls := a.tabs.URLs(); !slices.Equal(urls, a.lastURLs) {
			a.lastURLs = urls
			a.snapshots.MarkDirty(urls)
		}
	}
	return tea.Batch(cmd, a.title.Cmd(), a.loading.StartCmd())
}

func (a *App) shutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("shutting down host window")

	for _, unsubscribe := range a.unsubscribes {
		unsubscribe()
	}
	a.unsubscribes = nil

	if a.deps.NotesUC != nil && a.sidebar.Notes.Dirty() {
		if err := a.deps.NotesUC.Save(ctx, a.sidebar.Notes.Value()); err != nil {
			log.Error().Err(err).Msg("failed to save notes on exit")
		}
	}
	if a.snapshots != nil {
		if err := a.snapshots.Stop(ctx); err != nil {
			log.Error().Err(err).Msg("failed to save last session")
		}
	}
	a.tabs.Shutdown(ctx)

	if a.deps.SettingsUC.Current().ClearOnExit {
		if res := a.bridge.ClearAllData(ctx); !res.Success {
			log.Error().Str("error", res.Error).Msg("clear on exit failed")
		} else {
			log.Info().Msg("browsing data cleared on exit")
		}
	}
}
