package port

import "github.com/bnema/tabshell/internal/domain/entity"

// The host window exposes its widgets to the coordinators through these
// ports. All methods are called on the UI loop only.

// TabButton is one entry in the tab strip.
type TabButton interface {
	SetLabel(label string)
	SetActive(active bool)
	SetLoading(loading bool)
	IsActive() bool
}

// TabStrip owns the tab buttons.
type TabStrip interface {
	AddTab(id entity.TabID, label string) TabButton
	RemoveTab(id entity.TabID)
}

// AddressBar is the editable address field.
type AddressBar interface {
	Text() string
	SetText(text string)

	// Focused reports whether the user is editing. Programmatic updates
	// must not clobber text that has not been submitted.
	Focused() bool
	Focus()
	Blur()
}

// NavigationButtons reflects back/forward availability.
type NavigationButtons interface {
	SetBackEnabled(enabled bool)
	SetForwardEnabled(enabled bool)
}

// LoadingIndicator is the global progress indicator for the active tab.
type LoadingIndicator interface {
	SetLoading(loading bool)
}

// WindowTitle is the host window title.
type WindowTitle interface {
	SetTitle(title string)
}

// PaneLayout shows which tabs occupy the panes. secondary is empty when the
// window is not split.
type PaneLayout interface {
	SetPanes(primary, secondary entity.TabID)
}
