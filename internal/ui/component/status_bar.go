package component

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// StatusBar shows the last notice on the left and tab count plus resource
// usage on the right.
type StatusBar struct {
	message string
	isError bool
	metrics *port.Metrics
	tabs    int
	split   bool
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// Notify shows an informational message.
func (s *StatusBar) Notify(message string) {
	s.message = message
	s.isError = false
}

// Error shows an error message.
func (s *StatusBar) Error(message string) {
	s.message = message
	s.isError = true
}

// Message returns the current message.
func (s *StatusBar) Message() string { return s.message }

// SetMetrics records the last resource sample.
func (s *StatusBar) SetMetrics(m port.Metrics) { s.metrics = &m }

// SetTabs records the tab count and split state.
func (s *StatusBar) SetTabs(count int, split bool) {
	s.tabs = count
	s.split = split
}

// FormatMetrics renders a sample for humans, e.g. "312 MB · cpu 4.2s · up 5 minutes".
func FormatMetrics(m port.Metrics) string {
	parts := []string{}
	if m.MemoryRSSBytes > 0 {
		parts = append(parts, humanize.Bytes(uint64(m.MemoryRSSBytes)))
	}
	cpu := time.Duration((m.CPUUserSeconds + m.CPUSystemSeconds) * float64(time.Second))
	parts = append(parts, fmt.Sprintf("cpu %s", cpu.Round(100*time.Millisecond)))
	if m.Uptime > 0 {
		parts = append(parts, "up "+strings.TrimSuffix(humanize.RelTime(time.Time{}, time.Time{}.Add(m.Uptime), "", ""), " "))
	}
	return strings.Join(parts, " · ")
}

// View renders the bar at width.
func (s *StatusBar) View(styles *theme.Styles, width int) string {
	right := fmt.Sprintf("%d tabs", s.tabs)
	if s.tabs == 1 {
		right = "1 tab"
	}
	if s.split {
		right += " · split"
	}
	if s.metrics != nil {
		right += " · " + FormatMetrics(*s.metrics)
	}
	right = styles.Subtle.Render(right)

	msgStyle := styles.Normal
	if s.isError {
		msgStyle = styles.ErrorStyle
	}
	// Status bar padding takes two columns.
	avail := max(width-2-lipgloss.Width(right)-1, 0)
	left := msgStyle.Render(truncate.StringWithTail(s.message, uint(avail), ellipsis))
	gap := strings.Repeat(" ", max(avail-lipgloss.Width(left), 0)+1)

	return styles.StatusBar.Width(width).Render(left + gap + right)
}
