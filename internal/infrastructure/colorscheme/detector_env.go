package colorscheme

import (
	"os"
	"strings"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector reads GTK_THEME, which users set to force a variant.
type EnvDetector struct {
	getenv func(string) string
}

// NewEnvDetector creates a GTK_THEME detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{getenv: os.Getenv}
}

// Name implements port.ColorSchemeDetector.
func (*EnvDetector) Name() string { return detectorNameEnv }

// Priority implements port.ColorSchemeDetector.
func (*EnvDetector) Priority() int { return priorityEnv }

// Available implements port.ColorSchemeDetector.
func (d *EnvDetector) Available() bool {
	return d.getenv("GTK_THEME") != ""
}

// Detect implements port.ColorSchemeDetector.
// Any value containing "dark" (e.g. Adwaita:dark) means dark.
func (d *EnvDetector) Detect() (prefersDark, ok bool) {
	value := d.getenv("GTK_THEME")
	if value == "" {
		return false, false
	}
	return strings.Contains(strings.ToLower(value), "dark"), true
}
