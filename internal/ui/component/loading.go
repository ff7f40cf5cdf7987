package component

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// LoadingIndicator is the global spinner for the active tab.
// SetLoading only flips state; StartCmd returns the tick that animates it.
type LoadingIndicator struct {
	spinner spinner.Model
	loading bool
	ticking bool
}

// NewLoadingIndicator creates an idle indicator.
func NewLoadingIndicator() *LoadingIndicator {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &LoadingIndicator{spinner: s}
}

// SetLoading implements port.LoadingIndicator.
func (l *LoadingIndicator) SetLoading(loading bool) { l.loading = loading }

// Loading reports whether the indicator is shown.
func (l *LoadingIndicator) Loading() bool { return l.loading }

// StartCmd returns the first tick when loading began and no tick is in flight.
func (l *LoadingIndicator) StartCmd() tea.Cmd {
	if !l.loading || l.ticking {
		return nil
	}
	l.ticking = true
	return l.spinner.Tick
}

// Update advances the spinner. Ticking stops once loading ends.
func (l *LoadingIndicator) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || tick.ID != l.spinner.ID() {
		return nil
	}
	if !l.loading {
		l.ticking = false
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner or a blank of the same width.
func (l *LoadingIndicator) View(styles *theme.Styles) string {
	if !l.loading {
		return "  "
	}
	l.spinner.Style = styles.Highlight
	return l.spinner.View() + " "
}

var _ port.LoadingIndicator = (*LoadingIndicator)(nil)
