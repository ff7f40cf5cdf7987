package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders the config subcommands.
type ConfigRenderer struct {
	theme *Theme
}

func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths lists the files tabshell reads and writes.
func (r *ConfigRenderer) RenderPaths(configFile, databaseFile, logDir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	row := func(icon, key, val string) string {
		return fmt.Sprintf("  %s %-9s %s", iconStyle.Render(icon), r.theme.Subtle.Render(key), r.theme.Normal.Render(val))
	}
	return strings.Join([]string{
		row(IconConfig, "config", configFile),
		row(IconDatabase, "database", databaseFile),
		row(IconLogs, "logs", logDir),
	}, "\n")
}

// RenderTOML frames the effective configuration.
func (r *ConfigRenderer) RenderTOML(path string, data []byte) string {
	header := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconConfig), r.theme.Subtle.Render(path))
	body := strings.TrimRight(string(data), "\n")
	return header + "\n" + r.theme.Box.Render(body)
}
