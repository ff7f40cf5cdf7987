package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/infrastructure/chromium"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/logging"
)

func TestStartupTimer(t *testing.T) {
	timer := NewStartupTimer()
	timer.Mark("config")
	timer.MarkDuration("browser", 250*time.Millisecond)

	d, ok := timer.Phase("browser")
	require.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, d)
	_, ok = timer.Phase("missing")
	assert.False(t, ok)
	assert.Positive(t, timer.Total())

	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))
	timer.Log(ctx, zerolog.InfoLevel)
	out := buf.String()
	assert.Contains(t, out, `"message":"startup timing"`)
	assert.Contains(t, out, `"browser":250`)
	assert.Contains(t, out, `"config":`)
}

func TestBrowserOptions(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	opts, err := BrowserOptions(config.BrowserConfig{DebugPort: 9333, Headless: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(opts.UserDataDir, filepath.Join("tabshell", "chromium")))
	assert.Equal(t, 9333, opts.DebugPort)
	assert.True(t, opts.Headless)

	opts, err = BrowserOptions(config.BrowserConfig{UserDataDir: "/tmp/profile", RemoteURL: "ws://127.0.0.1:9222"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/profile", opts.UserDataDir)
	assert.Equal(t, "ws://127.0.0.1:9222", opts.RemoteURL)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "store.sqlite")
	cfg.Browser.UserDataDir = filepath.Join(t.TempDir(), "profile")
	return cfg
}

func TestStart_OpensDatabaseAndLaunches(t *testing.T) {
	cfg := testConfig(t)
	timer := NewStartupTimer()

	var got chromium.Options
	stack, err := Start(context.Background(), StartInput{
		Config: cfg,
		Timer:  timer,
		Launch: func(_ context.Context, opts chromium.Options) (*chromium.Browser, error) {
			got = opts
			return nil, nil
		},
	})
	require.NoError(t, err)
	t.Cleanup(stack.Close)

	require.NotNil(t, stack.DB)
	require.NoError(t, stack.DB.PingContext(context.Background()))
	assert.Equal(t, cfg.Browser.UserDataDir, got.UserDataDir)
	_, err = os.Stat(cfg.Database.Path)
	require.NoError(t, err)

	_, ok := timer.Phase("database")
	assert.True(t, ok)
	_, ok = timer.Phase("browser")
	assert.True(t, ok)
}

func TestStart_LaunchFailure(t *testing.T) {
	boom := errors.New("no chromium")
	_, err := Start(context.Background(), StartInput{
		Config: testConfig(t),
		Launch: func(context.Context, chromium.Options) (*chromium.Browser, error) {
			return nil, boom
		},
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "start browser")
}

func TestStart_NilConfig(t *testing.T) {
	_, err := Start(context.Background(), StartInput{})
	require.Error(t, err)
}

func TestInitLogging_WritesToStateDir(t *testing.T) {
	state := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_STATE_HOME", state)

	ctx, cleanup, err := InitLogging(context.Background(), config.LoggingConfig{
		Level:  "info",
		Format: "json",
	})
	require.NoError(t, err)
	logging.FromContext(ctx).Info().Msg("hello from test")
	cleanup()

	logDir, err := config.GetLogDir()
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(logDir, logging.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}
