package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/download"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrEmptyScreenshot is returned when there is no image data to write.
var ErrEmptyScreenshot = errors.New("empty screenshot")

// SaveScreenshotUseCase writes PNG screenshots into the download location.
type SaveScreenshotUseCase struct {
	settings *ManageSettingsUseCase
	xdg      port.XDGPaths
	fs       port.FileSystem
	now      func() time.Time
}

// NewSaveScreenshotUseCase creates a new screenshot use case.
func NewSaveScreenshotUseCase(settings *ManageSettingsUseCase, xdg port.XDGPaths, fs port.FileSystem) *SaveScreenshotUseCase {
	return &SaveScreenshotUseCase{settings: settings, xdg: xdg, fs: fs, now: time.Now}
}

// DownloadDir resolves the effective download directory.
func (uc *SaveScreenshotUseCase) DownloadDir() (string, error) {
	fallback, err := uc.xdg.DownloadDir()
	if err != nil {
		return "", fmt.Errorf("default download dir: %w", err)
	}
	home, _ := os.UserHomeDir()
	return download.ResolveDir(uc.settings.Current().DownloadLocation, fallback, home), nil
}

// Execute writes png and returns the file path.
func (uc *SaveScreenshotUseCase) Execute(ctx context.Context, png []byte) (string, error) {
	if len(png) == 0 {
		return "", ErrEmptyScreenshot
	}
	dir, err := uc.DownloadDir()
	if err != nil {
		return "", err
	}
	if err := uc.fs.MkdirAll(ctx, dir); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	var statErr error
	name := download.MakeUniqueFilename(dir, download.ScreenshotFilename(uc.now()), func(p string) bool {
		exists, err := uc.fs.Exists(ctx, p)
		if err != nil {
			statErr = err
			return false
		}
		return exists
	})
	if statErr != nil {
		return "", fmt.Errorf("check screenshot name: %w", statErr)
	}
	path := filepath.Join(dir, name)
	if err := uc.fs.WriteFile(ctx, path, png); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}

	logging.FromContext(ctx).Info().Str("path", path).Int("bytes", len(png)).Msg("screenshot saved")
	return path, nil
}
