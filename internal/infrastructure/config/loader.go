package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a configuration manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager bound to an explicit file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Environment overrides use the TABSHELL_ prefix, e.g.
	// TABSHELL_BROWSER_HOME_URL or TABSHELL_DATABASE_PATH.
	v.SetEnvPrefix("TABSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABSHELL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABSHELL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables,
// writing a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configFile, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// decode unmarshals, fills derived values and validates.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Browser.HomeURL = strings.TrimSpace(config.Browser.HomeURL)
	if config.Browser.HomeURL == "" {
		config.Browser.HomeURL = DefaultConfig().Browser.HomeURL
	}
	config.Browser.PopupPolicy = entity.PopupPolicy(strings.ToLower(strings.TrimSpace(string(config.Browser.PopupPolicy))))
	if config.Browser.PopupPolicy == "" {
		config.Browser.PopupPolicy = entity.PopupOpenTab
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults to a new file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return WriteConfig(DefaultConfig(), m.configFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Database.Path is derived in decode when unset.
	m.viper.SetDefault("browser.home_url", defaults.Browser.HomeURL)
	m.viper.SetDefault("browser.popup_policy", string(defaults.Browser.PopupPolicy))
	m.viper.SetDefault("browser.exec_path", defaults.Browser.ExecPath)
	m.viper.SetDefault("browser.headless", defaults.Browser.Headless)
	m.viper.SetDefault("browser.remote_url", defaults.Browser.RemoteURL)
	m.viper.SetDefault("browser.debug_port", defaults.Browser.DebugPort)
	m.viper.SetDefault("browser.user_data_dir", defaults.Browser.UserDataDir)

	m.viper.SetDefault("search.default_template", defaults.Search.DefaultTemplate)
	m.viper.SetDefault("search.shortcuts", defaults.Search.Shortcuts)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("ui.sidebar_open", defaults.UI.SidebarOpen)
}
