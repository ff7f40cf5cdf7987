package colorscheme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const (
	detectorNameTerminal = "terminal"
	priorityTerminal     = 5
)

// TerminalDetector asks the terminal for its background color.
// The answer is cached: the query must run before the Bubble Tea program
// takes over stdin.
type TerminalDetector struct {
	hasDark func() bool

	once sync.Once
	dark bool
}

// NewTerminalDetector creates a detector using lipgloss' background query.
func NewTerminalDetector() *TerminalDetector {
	return &TerminalDetector{hasDark: lipgloss.HasDarkBackground}
}

// Name implements port.ColorSchemeDetector.
func (*TerminalDetector) Name() string { return detectorNameTerminal }

// Priority implements port.ColorSchemeDetector.
func (*TerminalDetector) Priority() int { return priorityTerminal }

// Available implements port.ColorSchemeDetector.
func (*TerminalDetector) Available() bool { return true }

// Detect implements port.ColorSchemeDetector.
func (d *TerminalDetector) Detect() (prefersDark, ok bool) {
	d.once.Do(func() { d.dark = d.hasDark() })
	return d.dark, true
}
