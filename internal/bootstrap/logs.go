package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/logging"
)

// InitLogging points the logger at the rotating file in the state
// directory, since the terminal belongs to the TUI. The returned context
// carries the logger; cleanup closes the file.
func InitLogging(ctx context.Context, cfg config.LoggingConfig) (context.Context, func(), error) {
	dir, err := config.GetLogDir()
	if err != nil {
		return ctx, func() {}, err
	}
	file, err := logging.OpenRotatingFile(dir, cfg.MaxSizeMB, cfg.MaxBackups)
	if err != nil {
		return ctx, func() {}, fmt.Errorf("open log file: %w", err)
	}

	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Level)
	if cfg.Format == "json" || cfg.Format == "console" {
		lc.Format = cfg.Format
	}
	lc.Output = file

	logger := logging.New(lc)
	logger.Debug().Str("path", file.Path()).Msg("logging to file")
	return logging.WithContext(ctx, logger), func() { _ = file.Close() }, nil
}
