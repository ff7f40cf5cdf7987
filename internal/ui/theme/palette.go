// Package theme provides the lipgloss palette and styles of the host window.
package theme

import (
	"fmt"
	"regexp"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background     string // Main background color
	Surface        string // Elevated surfaces (tab bar, sidebar)
	SurfaceVariant string // Selected rows, inactive buttons
	Text           string
	Muted          string // Secondary/disabled text
	Accent         string // Active tab, focus rings
	Border         string
	Success        string
	Warning        string
	Destructive    string
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	}
}

// DefaultLightPalette returns the default light theme palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#fafafa",
		Surface:        "#ffffff",
		SurfaceVariant: "#f0f0f0",
		Text:           "#1a1a1a",
		Muted:          "#666666",
		Accent:         "#16a34a",
		Border:         "#dddddd",
		Success:        "#16a34a",
		Warning:        "#d97706",
		Destructive:    "#dc2626",
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Merge fills empty fields of p from defaults.
func (p Palette) Merge(defaults Palette) Palette {
	return Palette{
		Background:     Coalesce(p.Background, defaults.Background),
		Surface:        Coalesce(p.Surface, defaults.Surface),
		SurfaceVariant: Coalesce(p.SurfaceVariant, defaults.SurfaceVariant),
		Text:           Coalesce(p.Text, defaults.Text),
		Muted:          Coalesce(p.Muted, defaults.Muted),
		Accent:         Coalesce(p.Accent, defaults.Accent),
		Border:         Coalesce(p.Border, defaults.Border),
		Success:        Coalesce(p.Success, defaults.Success),
		Warning:        Coalesce(p.Warning, defaults.Warning),
		Destructive:    Coalesce(p.Destructive, defaults.Destructive),
	}
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ValidateHexColor checks if a string is a valid hex color. Empty is valid.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	colors := []struct{ name, value string }{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"success", p.Success},
		{"warning", p.Warning},
		{"destructive", p.Destructive},
	}
	for _, c := range colors {
		if err := ValidateHexColor(c.value); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}
