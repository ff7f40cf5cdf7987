// Package styles provides the lipgloss rendering of tabshell's CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from a palette.
type Theme struct {
	// Base colors
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	// Semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Pre-built styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates the CLI theme from the default dark palette, the same
// colors the host window starts with.
func NewTheme() *Theme {
	return NewThemeFromPalette(theme.DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a palette. Empty tokens fall back
// to the dark defaults.
func NewThemeFromPalette(p theme.Palette) *Theme {
	p = p.Merge(theme.DefaultDarkPalette())
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Destructive),
		Warning:        lipgloss.Color(p.Warning),
		Success:        lipgloss.Color(p.Success),
	}

	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

// RenderError formats an error line.
func (t *Theme) RenderError(err error) string {
	return t.ErrorStyle.Render(IconX + " " + err.Error())
}

// RenderSuccess formats a confirmation line.
func (t *Theme) RenderSuccess(msg string) string {
	return t.SuccessStyle.Render(IconCheck) + " " + t.Normal.Render(msg)
}
