package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// NavButtons renders back, forward, reload and the optional home button.
type NavButtons struct {
	back     bool
	forward  bool
	showHome bool
}

// NewNavButtons creates the button row with both history buttons disabled.
func NewNavButtons(showHome bool) *NavButtons {
	return &NavButtons{showHome: showHome}
}

// SetBackEnabled implements port.NavigationButtons.
func (n *NavButtons) SetBackEnabled(enabled bool) { n.back = enabled }

// SetForwardEnabled implements port.NavigationButtons.
func (n *NavButtons) SetForwardEnabled(enabled bool) { n.forward = enabled }

// BackEnabled reports the back button state.
func (n *NavButtons) BackEnabled() bool { return n.back }

// ForwardEnabled reports the forward button state.
func (n *NavButtons) ForwardEnabled() bool { return n.forward }

// SetShowHome toggles the home button.
func (n *NavButtons) SetShowHome(show bool) { n.showHome = show }

// ShowHome reports whether the home button is shown.
func (n *NavButtons) ShowHome() bool { return n.showHome }

// View renders the buttons.
func (n *NavButtons) View(styles *theme.Styles) string {
	button := func(label string, enabled bool) string {
		if enabled {
			return styles.Button.Render(label)
		}
		return styles.ButtonDisabled.Render(label)
	}

	parts := []string{
		button("←", n.back),
		button("→", n.forward),
		button("⟳", true),
	}
	if n.showHome {
		parts = append(parts, button("⌂", true))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

var _ port.NavigationButtons = (*NavButtons)(nil)
