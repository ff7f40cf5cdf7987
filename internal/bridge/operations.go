package bridge

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

var (
	errUnavailable = errors.New("not available")
	errCancelled   = errors.New("cancelled")
)

// GetAppVersion returns the build information.
func (b *Bridge) GetAppVersion() build.Info {
	return b.deps.Build
}

// GetMetrics samples resource usage.
func (b *Bridge) GetMetrics(ctx context.Context) (port.Metrics, error) {
	if b.deps.Metrics == nil {
		return port.Metrics{}, errUnavailable
	}
	return b.deps.Metrics.Sample(ctx)
}

func (b *Bridge) window(ctx context.Context, name string, fn func(port.WindowController) error) Result {
	if b.deps.Window == nil {
		return failed(errUnavailable)
	}
	if err := fn(b.deps.Window); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("op", name).Msg("window operation failed")
		return failed(err)
	}
	return ok()
}

// WindowMinimize iconifies the browser window.
func (b *Bridge) WindowMinimize(ctx context.Context) Result {
	return b.window(ctx, "minimize", func(w port.WindowController) error { return w.Minimize(ctx) })
}

// WindowMaximize toggles the maximized state.
func (b *Bridge) WindowMaximize(ctx context.Context) Result {
	return b.window(ctx, "maximize", func(w port.WindowController) error { return w.Maximize(ctx) })
}

// WindowClose ends the application.
func (b *Bridge) WindowClose(ctx context.Context) Result {
	return b.window(ctx, "close", func(w port.WindowController) error { return w.Close(ctx) })
}

// OpenSettingsPanel shows the settings surface.
func (b *Bridge) OpenSettingsPanel(context.Context) Result {
	if b.deps.OpenSettings == nil {
		return failed(errUnavailable)
	}
	b.deps.OpenSettings()
	return ok()
}

// OnSettingsUpdated calls fn after every saved settings change until the
// returned function is called.
func (b *Bridge) OnSettingsUpdated(fn func(entity.Settings)) (unsubscribe func()) {
	if b.deps.Settings == nil || fn == nil {
		return func() {}
	}
	return b.deps.Settings.Subscribe(fn)
}

func (b *Bridge) settingsSubscription() Subscription {
	updates := make(chan entity.Settings, 1)
	if b.deps.Settings == nil {
		close(updates)
		return Subscription{Updates: updates, Cancel: func() {}}
	}

	var mu sync.Mutex
	closed := false
	unsubscribe := b.deps.Settings.Subscribe(func(s entity.Settings) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case <-updates:
		default:
		}
		updates <- s
	})
	return Subscription{
		Updates: updates,
		Cancel: func() {
			unsubscribe()
			mu.Lock()
			defer mu.Unlock()
			if !closed {
				closed = true
				close(updates)
			}
		},
	}
}

func (b *Bridge) clear(ctx context.Context, what string, fn func() error) Result {
	if b.deps.ClearData == nil {
		return failed(errUnavailable)
	}
	if err := fn(); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("data", what).Msg("clear failed")
		return failed(err)
	}
	return ok()
}

// ClearCache drops the HTTP cache.
func (b *Bridge) ClearCache(ctx context.Context) Result {
	return b.clear(ctx, "cache", func() error { return b.deps.ClearData.ClearCache(ctx) })
}

// ClearCookies removes all cookies.
func (b *Bridge) ClearCookies(ctx context.Context) Result {
	return b.clear(ctx, "cookies", func() error { return b.deps.ClearData.ClearCookies(ctx) })
}

// ClearHistory removes visited-page records.
func (b *Bridge) ClearHistory(ctx context.Context) Result {
	return b.clear(ctx, "history", func() error { return b.deps.ClearData.ClearHistory(ctx) })
}

// ClearAllData clears cache, cookies and history.
func (b *Bridge) ClearAllData(ctx context.Context) Result {
	return b.clear(ctx, "all", func() error { return b.deps.ClearData.ClearAll(ctx) })
}

// SelectDownloadLocation asks for a directory and stores it as the download
// location. A dismissed dialog yields Success false with "cancelled".
func (b *Bridge) SelectDownloadLocation(ctx context.Context) Result {
	if b.deps.Picker == nil || b.deps.Settings == nil {
		return failed(errUnavailable)
	}
	start, _ := b.GetDefaultDownloadPath()
	dir, err := b.deps.Picker.PickDirectory(ctx, "Select download location", start)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("directory picker failed")
		return failed(err)
	}
	if dir == "" {
		return failed(errCancelled)
	}
	if _, err := b.deps.Settings.Update(ctx, func(s *entity.Settings) {
		s.DownloadLocation = dir
	}); err != nil {
		return failed(err)
	}
	return Result{Success: true, Path: dir}
}

// GetDefaultDownloadPath returns the effective download directory.
func (b *Bridge) GetDefaultDownloadPath() (string, error) {
	if b.deps.Screenshots == nil {
		return "", errUnavailable
	}
	return b.deps.Screenshots.DownloadDir()
}

// SaveScreenshot writes a PNG buffer into the download location.
func (b *Bridge) SaveScreenshot(ctx context.Context, png []byte) Result {
	if b.deps.Screenshots == nil {
		return failed(errUnavailable)
	}
	path, err := b.deps.Screenshots.Execute(ctx, png)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("save screenshot failed")
		return failed(err)
	}
	return Result{Success: true, Path: path}
}
