// Package config loads tabshell's TOML configuration through viper and
// resolves XDG directories.
package config

import (
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
)

const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644
)

// Config is the complete file-backed configuration.
type Config struct {
	Browser  BrowserConfig  `mapstructure:"browser" toml:"browser"`
	Search   SearchConfig   `mapstructure:"search" toml:"search"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	UI       UIConfig       `mapstructure:"ui" toml:"ui"`
}

// BrowserConfig configures the Chromium engine and tab behaviour.
type BrowserConfig struct {
	HomeURL     string             `mapstructure:"home_url" toml:"home_url"`
	PopupPolicy entity.PopupPolicy `mapstructure:"popup_policy" toml:"popup_policy"`
	// ExecPath overrides Chromium discovery.
	ExecPath string `mapstructure:"exec_path" toml:"exec_path"`
	Headless bool   `mapstructure:"headless" toml:"headless"`
	// RemoteURL attaches to an already running browser instead of spawning one.
	RemoteURL string `mapstructure:"remote_url" toml:"remote_url"`
	// DebugPort is the remote-debugging port used to serve the inspector.
	DebugPort   int    `mapstructure:"debug_port" toml:"debug_port"`
	UserDataDir string `mapstructure:"user_data_dir" toml:"user_data_dir"`
}

// SearchConfig configures address bar search fallback.
type SearchConfig struct {
	// DefaultTemplate is used when the searchEngine setting is unknown.
	DefaultTemplate string            `mapstructure:"default_template" toml:"default_template"`
	Shortcuts       map[string]string `mapstructure:"shortcuts" toml:"shortcuts"`
}

// DatabaseConfig locates the sqlite store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level      string `mapstructure:"level" toml:"level"`
	Format     string `mapstructure:"format" toml:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
}

// UIConfig configures the host window.
type UIConfig struct {
	SidebarOpen bool `mapstructure:"sidebar_open" toml:"sidebar_open"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			HomeURL:     url.DefaultHomeURL,
			PopupPolicy: entity.PopupOpenTab,
			DebugPort:   9222,
		},
		Search: SearchConfig{
			DefaultTemplate: url.DefaultSearchTemplate,
			Shortcuts:       url.DefaultShortcuts(),
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		UI: UIConfig{
			SidebarOpen: false,
		},
	}
}

// Formatter builds the address formatter for this configuration and the
// user's searchEngine setting.
func (c *Config) Formatter(searchEngine string) url.Formatter {
	shortcuts := c.Search.Shortcuts
	if len(shortcuts) == 0 {
		shortcuts = url.DefaultShortcuts()
	}
	return url.Formatter{
		HomeURL:        c.Browser.HomeURL,
		SearchTemplate: url.SearchTemplateFor(searchEngine, c.Search.DefaultTemplate),
		Shortcuts:      shortcuts,
	}
}
