package colorscheme

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	detectorNamePortal = "xdg-portal"
	priorityPortal     = 30

	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	settingsIface   = "org.freedesktop.portal.Settings"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeKey  = "color-scheme"
	schemeNoPref    = 0
	schemePreferDrk = 1
	schemePreferLgt = 2
)

// PortalDetector reads org.freedesktop.appearance color-scheme from the
// desktop portal. It works across GNOME, KDE and wlroots portals.
type PortalDetector struct {
	read func() (uint32, error)

	once      sync.Once
	available bool
}

// NewPortalDetector creates a detector backed by the session bus.
func NewPortalDetector() *PortalDetector {
	return &PortalDetector{read: readPortalColorScheme}
}

// Name implements port.ColorSchemeDetector.
func (*PortalDetector) Name() string { return detectorNamePortal }

// Priority implements port.ColorSchemeDetector.
func (*PortalDetector) Priority() int { return priorityPortal }

// Available implements port.ColorSchemeDetector.
// The first successful read decides availability for the process lifetime.
func (d *PortalDetector) Available() bool {
	d.once.Do(func() {
		_, err := d.read()
		d.available = err == nil
	})
	return d.available
}

// Detect implements port.ColorSchemeDetector.
func (d *PortalDetector) Detect() (prefersDark, ok bool) {
	value, err := d.read()
	if err != nil {
		return false, false
	}
	switch value {
	case schemePreferDrk:
		return true, true
	case schemePreferLgt:
		return false, true
	default:
		return false, false
	}
}

func readPortalColorScheme() (uint32, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return schemeNoPref, fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(portalDest, portalPath)

	var value dbus.Variant
	err = obj.Call(settingsIface+".ReadOne", 0, appearanceNS, colorSchemeKey).Store(&value)
	if err != nil {
		// Portals older than version 2 only have Read, which wraps the value twice.
		if err = obj.Call(settingsIface+".Read", 0, appearanceNS, colorSchemeKey).Store(&value); err != nil {
			return schemeNoPref, fmt.Errorf("read color-scheme: %w", err)
		}
	}
	return unwrapScheme(value)
}

func unwrapScheme(v dbus.Variant) (uint32, error) {
	switch inner := v.Value().(type) {
	case uint32:
		return inner, nil
	case dbus.Variant:
		return unwrapScheme(inner)
	default:
		return schemeNoPref, fmt.Errorf("unexpected color-scheme type %T", inner)
	}
}
