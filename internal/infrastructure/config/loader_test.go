package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, contents string) *Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("ENV", "")

	file := filepath.Join(dir, "config.toml")
	if contents != "" {
		require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))
	}
	mgr, err := NewManagerForFile(file)
	require.NoError(t, err)
	return mgr
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	mgr := newTestManager(t, "")
	require.NoError(t, mgr.Load())

	_, err := os.Stat(mgr.GetConfigFile())
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().Browser.HomeURL, cfg.Browser.HomeURL)
	assert.Equal(t, entity.PopupOpenTab, cfg.Browser.PopupPolicy)
	assert.Equal(t, "tabshell.sqlite", filepath.Base(cfg.Database.Path))
}

func TestManager_Load_FileValues(t *testing.T) {
	mgr := newTestManager(t, `
[browser]
home_url = "https://start.example/"
popup_policy = "User-Gesture"
debug_port = 9333

[search]
default_template = "https://search.example/?q=%s"

[logging]
level = "debug"

[ui]
sidebar_open = true
`)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://start.example/", cfg.Browser.HomeURL)
	assert.Equal(t, entity.PopupUserGesture, cfg.Browser.PopupPolicy)
	assert.Equal(t, 9333, cfg.Browser.DebugPort)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.UI.SidebarOpen)
	// Unset keys keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestManager_Load_EnvOverride(t *testing.T) {
	mgr := newTestManager(t, "")
	t.Setenv("TABSHELL_BROWSER_HOME_URL", "https://env.example/")
	t.Setenv("TABSHELL_LOG_LEVEL", "warn")

	require.NoError(t, mgr.Load())
	assert.Equal(t, "https://env.example/", mgr.Get().Browser.HomeURL)
	assert.Equal(t, "warn", mgr.Get().Logging.Level)
}

func TestManager_Load_InvalidValues(t *testing.T) {
	mgr := newTestManager(t, `
[browser]
popup_policy = "sometimes"
debug_port = 70000
`)
	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "browser.popup_policy")
	assert.Contains(t, err.Error(), "browser.debug_port")
}

func TestManager_Load_MalformedTOML(t *testing.T) {
	mgr := newTestManager(t, "[browser\nhome_url = ")
	err := mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid TOML")
}

func TestManager_Get_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr := newTestManager(t, "")
	assert.Equal(t, DefaultConfig().Browser.HomeURL, mgr.Get().Browser.HomeURL)
}

func TestConfig_Formatter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browser.HomeURL = "https://home.example/"

	f := cfg.Formatter("bing")
	assert.Equal(t, "https://home.example/", f.Format(""))
	assert.Equal(t, "https://www.bing.com/search?q=a%20b", f.Format("a b"))

	f = cfg.Formatter("unknown")
	assert.Equal(t, cfg.Search.DefaultTemplate, f.SearchTemplate)
}

func TestValidateConfig_Shortcuts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Shortcuts = map[string]string{"bad key": "https://x/?q=%s", "nt": "https://x/"}

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad key"`)
	assert.Contains(t, err.Error(), "search.shortcuts.nt")
}

func TestGetXDGDirs_RespectsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg", "tabshell"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(dir, "state", "tabshell"), dirs.StateHome)
}

func TestEncode_RoundTripsThroughLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browser.HomeURL = "https://written.example/"
	cfg.UI.SidebarOpen = true

	data, err := Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[browser]")
	assert.Contains(t, string(data), "https://written.example/")

	mgr := newTestManager(t, string(data))
	require.NoError(t, mgr.Load())
	assert.Equal(t, "https://written.example/", mgr.Get().Browser.HomeURL)
	assert.True(t, mgr.Get().UI.SidebarOpen)
	assert.Equal(t, url.DefaultShortcuts(), mgr.Get().Search.Shortcuts)
}

func TestEncode_NilConfig(t *testing.T) {
	_, err := Encode(nil)
	require.Error(t, err)
}
