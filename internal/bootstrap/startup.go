package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabshell/internal/infrastructure/chromium"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/logging"
)

// BrowserLauncher starts or attaches to Chromium.
type BrowserLauncher func(ctx context.Context, opts chromium.Options) (*chromium.Browser, error)

// StartInput configures Start.
type StartInput struct {
	Config *config.Config
	Timer  *StartupTimer
	// Launch defaults to chromium.Start.
	Launch BrowserLauncher
}

// Stack is what the shell runs on.
type Stack struct {
	DB      *sql.DB
	Browser *chromium.Browser
}

// Close stops the browser before the store so late writes still land.
func (s *Stack) Close() {
	if s == nil {
		return
	}
	if s.Browser != nil {
		s.Browser.Close()
	}
	if s.DB != nil {
		_ = sqlite.Close(s.DB)
	}
}

// BrowserOptions maps the browser config to launch options, placing the
// profile under the data directory unless one is configured.
func BrowserOptions(cfg config.BrowserConfig) (chromium.Options, error) {
	dir := cfg.UserDataDir
	if dir == "" {
		var err error
		if dir, err = config.GetBrowserProfileDir(); err != nil {
			return chromium.Options{}, err
		}
	}
	return chromium.Options{
		ExecPath:             cfg.ExecPath,
		UserDataDir:          dir,
		RemoteURL:            cfg.RemoteURL,
		DebugPort:            cfg.DebugPort,
		Headless:             cfg.Headless,
		HardwareAcceleration: true,
	}, nil
}

// Start opens the database and launches the browser concurrently. Chromium
// takes far longer to come up, so migrations finish in its shadow. On
// failure whatever did start is shut down again.
func Start(ctx context.Context, in StartInput) (*Stack, error) {
	if in.Config == nil {
		return nil, fmt.Errorf("start: nil config")
	}
	launch := in.Launch
	if launch == nil {
		launch = chromium.Start
	}
	timer := in.Timer
	if timer == nil {
		timer = NewStartupTimer()
	}
	opts, err := BrowserOptions(in.Config.Browser)
	if err != nil {
		return nil, err
	}
	dbPath := in.Config.Database.Path
	if dbPath == "" {
		if dbPath, err = config.GetDatabaseFile(); err != nil {
			return nil, err
		}
	}

	log := logging.FromContext(ctx)
	stack := &Stack{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		began := time.Now()
		db, err := sqlite.NewConnection(gctx, dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		stack.DB = db
		timer.MarkDuration("database", time.Since(began))
		return nil
	})

	g.Go(func() error {
		began := time.Now()
		// The browser outlives startup, so it gets the parent context.
		b, err := launch(ctx, opts)
		if err != nil {
			return fmt.Errorf("start browser: %w", err)
		}
		stack.Browser = b
		timer.MarkDuration("browser", time.Since(began))
		return nil
	})

	if err := g.Wait(); err != nil {
		stack.Close()
		return nil, err
	}
	log.Debug().Str("db", dbPath).Str("profile", opts.UserDataDir).Msg("startup stack ready")
	return stack, nil
}
