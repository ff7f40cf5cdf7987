// Package colorscheme decides whether the host window renders dark or light.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

const (
	sourceFallback = "fallback"
	sourceConfig   = "config"
)

// ThemeProvider returns the theme chosen in settings.
type ThemeProvider interface {
	Theme() entity.Theme
}

// ThemeFunc adapts a function to ThemeProvider.
type ThemeFunc func() entity.Theme

// Theme implements ThemeProvider.
func (f ThemeFunc) Theme() entity.Theme { return f() }

type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Resolver implements port.ColorSchemeResolver.
// An explicit dark or light theme wins; "system" asks the detectors.
type Resolver struct {
	mu        sync.RWMutex
	themes    ThemeProvider
	detectors []port.ColorSchemeDetector
	current   port.ColorSchemePreference
	callbacks []*callbackWrapper
}

// NewResolver creates a resolver. themes may be nil.
func NewResolver(themes ThemeProvider) *Resolver {
	return &Resolver{
		themes: themes,
		current: port.ColorSchemePreference{
			PrefersDark: true,
			Source:      sourceFallback,
		},
	}
}

// NewDefaultResolver registers every built-in detector.
func NewDefaultResolver(themes ThemeProvider) *Resolver {
	r := NewResolver(themes)
	r.RegisterDetector(NewPortalDetector())
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewGsettingsDetector())
	r.RegisterDetector(NewTerminalDetector())
	return r
}

// Resolve implements port.ColorSchemeResolver.
func (r *Resolver) Resolve() port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveInternal()
}

// Caller holds at least the read lock.
func (r *Resolver) resolveInternal() port.ColorSchemePreference {
	if r.themes != nil {
		switch r.themes.Theme() {
		case entity.ThemeDark:
			return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
		case entity.ThemeLight:
			return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
		}
	}

	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{PrefersDark: true, Source: sourceFallback}
}

// RegisterDetector implements port.ColorSchemeResolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Refresh implements port.ColorSchemeResolver.
func (r *Resolver) Refresh() port.ColorSchemePreference {
	r.mu.Lock()
	pref := r.resolveInternal()
	changed := pref.PrefersDark != r.current.PrefersDark
	r.current = pref
	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(pref)
	}
	return pref
}

// OnChange implements port.ColorSchemeResolver.
func (r *Resolver) OnChange(callback func(port.ColorSchemePreference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}

var _ port.ColorSchemeResolver = (*Resolver)(nil)
