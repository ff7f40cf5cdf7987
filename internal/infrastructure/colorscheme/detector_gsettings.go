package colorscheme

import (
	"os/exec"
	"strings"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector queries org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	lookPath func(string) (string, error)
	output   func(name string, args ...string) ([]byte, error)
}

// NewGsettingsDetector creates a gsettings detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{
		lookPath: exec.LookPath,
		output: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// Name implements port.ColorSchemeDetector.
func (*GsettingsDetector) Name() string { return detectorNameGsettings }

// Priority implements port.ColorSchemeDetector.
func (*GsettingsDetector) Priority() int { return priorityGsettings }

// Available implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Available() bool {
	_, err := d.lookPath("gsettings")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
func (d *GsettingsDetector) Detect() (prefersDark, ok bool) {
	out, err := d.output("gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, false
	}

	// Output looks like "'prefer-dark'\n".
	switch strings.Trim(strings.TrimSpace(string(out)), `'"`) {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	default:
		return false, false
	}
}
