// Package cli holds the shared state of tabshell's command-line subcommands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/filesystem"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	db         *sql.DB

	// Use cases
	SessionsUC  *usecase.ManageSessionsUseCase
	HistoryUC   *usecase.RecordHistoryUseCase
	NotesUC     *usecase.ManageNotesUseCase
	ClipboardUC *usecase.ManageClipboardUseCase
	PurgeUC     *usecase.PurgeDataUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and opens the store. CLI commands log to
// stderr, warnings only unless TABSHELL_LOG_LEVEL says otherwise.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	level := "warn"
	if envLevel := os.Getenv("TABSHELL_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     "console",
		TimeFormat: "15:04:05",
	})
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		if dbFile, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	db, err := sqlite.NewConnection(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", dbFile).Msg("database connected")

	configFile := ""
	if mgr != nil {
		configFile = mgr.GetConfigFile()
	}
	return &App{
		Config:      cfg,
		ConfigFile:  configFile,
		Theme:       styles.NewTheme(),
		db:          db,
		SessionsUC:  usecase.NewManageSessionsUseCase(sqlite.NewSessionRepository(db)),
		HistoryUC:   usecase.NewRecordHistoryUseCase(sqlite.NewHistoryRepository(db)),
		NotesUC:     usecase.NewManageNotesUseCase(sqlite.NewNotesRepository(db)),
		ClipboardUC: usecase.NewManageClipboardUseCase(sqlite.NewClipboardRepository(db), nil),
		PurgeUC:     usecase.NewPurgeDataUseCase(filesystem.New()),
		ctx:         ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig falls back to the defaults when the file cannot be read; the
// CLI stays usable with a broken config.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return mgr, config.DefaultConfig()
	}
	return mgr, mgr.Get()
}
