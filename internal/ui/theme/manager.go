package theme

import (
	"context"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// Manager tracks the resolved color scheme and the styles built for it.
// It is used from the UI loop only.
type Manager struct {
	resolver    port.ColorSchemeResolver
	light       Palette
	dark        Palette
	prefersDark bool
	source      string
	styles      *Styles
}

// NewManager resolves the initial scheme and builds its styles.
// Zero-value palettes fall back to the defaults.
func NewManager(ctx context.Context, resolver port.ColorSchemeResolver, light, dark Palette) *Manager {
	m := &Manager{
		resolver: resolver,
		light:    light.Merge(DefaultLightPalette()),
		dark:     dark.Merge(DefaultDarkPalette()),
	}
	m.apply(resolver.Resolve())

	logging.FromContext(ctx).Debug().
		Bool("prefers_dark", m.prefersDark).
		Str("source", m.source).
		Msg("theme manager initialized")
	return m
}

// Styles returns the styles for the current scheme.
func (m *Manager) Styles() *Styles {
	return m.styles
}

// PrefersDark reports whether the dark palette is active.
func (m *Manager) PrefersDark() bool {
	return m.prefersDark
}

// CurrentPalette returns the active palette.
func (m *Manager) CurrentPalette() Palette {
	if m.prefersDark {
		return m.dark
	}
	return m.light
}

// Refresh re-resolves the scheme, typically after the theme setting
// changed. It reports whether the styles were rebuilt.
func (m *Manager) Refresh(ctx context.Context) bool {
	pref := m.resolver.Refresh()
	if pref.PrefersDark == m.prefersDark && m.styles != nil {
		m.source = pref.Source
		return false
	}
	m.apply(pref)

	logging.FromContext(ctx).Info().
		Bool("prefers_dark", m.prefersDark).
		Str("source", m.source).
		Msg("color scheme changed")
	return true
}

func (m *Manager) apply(pref port.ColorSchemePreference) {
	m.prefersDark = pref.PrefersDark
	m.source = pref.Source
	m.styles = NewStyles(m.CurrentPalette())
}
