package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

func (r *AboutRenderer) Render(info build.Info) string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginLeft(2)
	logo := logoStyle.Render(`┌┬┬┬┐
│ ▌ │
└───┘`)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}
	return strings.Join([]string{
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		fmt.Sprintf("%s %s", iconStyle.Render(IconGlobe), keyStyle.Render(build.RepoURL())),
	}, "\n")
}
