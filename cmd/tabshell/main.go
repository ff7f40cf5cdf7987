package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/bootstrap"
	"github.com/bnema/tabshell/internal/cli/cmd"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/cache"
	"github.com/bnema/tabshell/internal/infrastructure/chromium"
	"github.com/bnema/tabshell/internal/infrastructure/clipboard"
	"github.com/bnema/tabshell/internal/infrastructure/colorscheme"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/filesystem"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/infrastructure/picker"
	"github.com/bnema/tabshell/internal/infrastructure/xdg"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui"
	"github.com/bnema/tabshell/internal/ui/theme"
)

const completionCacheSize = 256

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	info := build.New(version, commit, buildDate)
	cmd.SetBuildInfo(info)
	cmd.SetBrowseFunc(func(ctx context.Context, opts cmd.BrowseOptions) error {
		return runBrowser(ctx, info, opts)
	})
	cmd.Execute()
}

func runBrowser(ctx context.Context, info build.Info, opts cmd.BrowseOptions) error {
	startedAt := time.Now()
	timer := bootstrap.NewStartupTimer()

	mgr, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()
	timer.Mark("config")

	ctx, closeLog, err := bootstrap.InitLogging(ctx, cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.FromContext(ctx)
	log.Info().Str("version", info.Version).Str("commit", info.Commit).Msg("starting tabshell")

	stack, err := bootstrap.Start(ctx, bootstrap.StartInput{Config: cfg, Timer: timer})
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return err
	}
	defer stack.Close()

	// The window's close button ends the app, which exists only below.
	var app *ui.App
	deps := newDependencies(ctx, cfg, stack, func() {
		if app != nil {
			app.Quit()
		}
	})
	deps.Build = info
	deps.StartedAt = startedAt
	deps.InitialURLs = initialURLs(ctx, deps.SessionsUC, opts)
	timer.Mark("dependencies")

	app, err = ui.New(deps)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	mgr.OnConfigChange(app.OnConfigChange)
	if err := mgr.Watch(watchCtx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
	setupSignalHandler(ctx, app)

	timer.Log(ctx, zerolog.InfoLevel)
	return app.Run()
}

// newDependencies builds use cases on top of the started stack.
func newDependencies(ctx context.Context, cfg *config.Config, stack *bootstrap.Stack, onClose func()) *ui.Dependencies {
	settingsUC := usecase.NewManageSettingsUseCase(sqlite.NewSettingsRepository(stack.DB))
	settingsUC.Load(ctx)

	historyUC := usecase.NewRecordHistoryUseCase(sqlite.NewHistoryRepository(stack.DB))
	historyUC.SetCompletionCache(cache.NewLRU[string, []string](completionCacheSize))
	factory := chromium.NewFactory(stack.Browser)

	resolver := colorscheme.NewDefaultResolver(colorscheme.ThemeFunc(func() entity.Theme {
		return settingsUC.Current().Theme
	}))

	return &ui.Dependencies{
		Ctx:          ctx,
		Config:       cfg,
		Theme:        theme.NewManager(ctx, resolver, theme.DefaultLightPalette(), theme.DefaultDarkPalette()),
		Factory:      factory,
		Engine:       factory,
		Window:       chromium.NewWindow(stack.Browser, onClose),
		Picker:       picker.New(),
		SettingsUC:   settingsUC,
		SessionsUC:   usecase.NewManageSessionsUseCase(sqlite.NewSessionRepository(stack.DB)),
		NotesUC:      usecase.NewManageNotesUseCase(sqlite.NewNotesRepository(stack.DB)),
		ClipboardUC:  usecase.NewManageClipboardUseCase(sqlite.NewClipboardRepository(stack.DB), clipboard.New()),
		HistoryUC:    historyUC,
		ScreenshotUC: usecase.NewSaveScreenshotUseCase(settingsUC, xdg.New(), filesystem.New()),
		ClearDataUC:  usecase.NewClearDataUseCase(stack.Browser, historyUC),
	}
}

// initialURLs picks the tabs to open: the last session for --restore,
// otherwise the command line.
func initialURLs(ctx context.Context, sessions *usecase.ManageSessionsUseCase, opts cmd.BrowseOptions) []string {
	if !opts.Restore {
		return opts.URLs
	}
	last, found, err := sessions.Last(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("restore last session")
		return opts.URLs
	}
	if !found {
		return opts.URLs
	}
	return append(last.URLs, opts.URLs...)
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received signal, quitting")
		app.Quit()
	}()
}
