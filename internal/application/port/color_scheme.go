package port

// ColorSchemePreference is the resolved light/dark choice for the host window.
type ColorSchemePreference struct {
	PrefersDark bool

	// Source names the detector that decided. "config" when the user picked
	// a theme explicitly, "fallback" when nothing could tell.
	Source string
}

// ColorSchemeDetector asks one source whether the desktop prefers dark.
type ColorSchemeDetector interface {
	Name() string

	// Priority orders detectors, highest first.
	Priority() int

	Available() bool

	// Detect returns ok=false when the source has no opinion.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver combines the settings theme with the registered detectors.
type ColorSchemeResolver interface {
	Resolve() ColorSchemePreference
	RegisterDetector(detector ColorSchemeDetector)

	// Refresh re-evaluates and notifies OnChange callbacks when the result flips.
	Refresh() ColorSchemePreference
	OnChange(callback func(ColorSchemePreference)) func()
}
