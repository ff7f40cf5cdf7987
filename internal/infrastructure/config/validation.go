package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateBrowser(config *Config) []string {
	var validationErrors []string

	if u, err := url.Parse(config.Browser.HomeURL); err != nil || u.Scheme == "" {
		validationErrors = append(validationErrors, "browser.home_url must be an absolute URL")
	}
	if _, ok := entity.ParsePopupPolicy(string(config.Browser.PopupPolicy)); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"browser.popup_policy must be one of %q, %q or %q",
			entity.PopupOpenTab, entity.PopupBlock, entity.PopupUserGesture,
		))
	}
	if config.Browser.DebugPort < 0 || config.Browser.DebugPort > 65535 {
		validationErrors = append(validationErrors, "browser.debug_port must be between 0 and 65535")
	}
	if config.Browser.RemoteURL != "" && !strings.HasPrefix(config.Browser.RemoteURL, "ws://") &&
		!strings.HasPrefix(config.Browser.RemoteURL, "http://") {
		validationErrors = append(validationErrors, "browser.remote_url must start with ws:// or http://")
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	if t := config.Search.DefaultTemplate; t != "" && !strings.Contains(t, "%s") {
		validationErrors = append(validationErrors, "search.default_template must contain %s")
	}
	for key, tmpl := range config.Search.Shortcuts {
		if strings.TrimSpace(key) == "" || strings.ContainsAny(key, " \t") {
			validationErrors = append(validationErrors, fmt.Sprintf("search.shortcuts key %q must be a single word", key))
		}
		if !strings.Contains(tmpl, "%s") {
			validationErrors = append(validationErrors, fmt.Sprintf("search.shortcuts.%s must contain %%s", key))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb and logging.max_backups must be non-negative")
	}
	return validationErrors
}
