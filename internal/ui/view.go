package ui

import (
	"github.com/bnema/tabshell/internal/ui/theme"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth    = 34
	minAddressWidth = 10
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	styles := a.deps.Theme.Styles()

	tabBar := a.tabBar.View(styles, a.width)
	toolbar := a.toolbarView(styles)
	status := a.status.View(styles, a.width)

	var helpView string
	if a.showHelp {
		a.help.Width = a.width
		a.help.Styles.ShortKey = styles.HelpKey
		a.help.Styles.ShortDesc = styles.HelpDesc
		a.help.Styles.FullKey = styles.HelpKey
		a.help.Styles.FullDesc = styles.HelpDesc
		a.help.Styles.ShortSeparator = styles.Subtle
		a.help.Styles.FullSeparator = styles.Subtle
		helpView = a.help.View(a.keys.Help(a.mode))
	}

	used := lipgloss.Height(tabBar) + lipgloss.Height(toolbar) + lipgloss.Height(status)
	if helpView != "" {
		used += lipgloss.Height(helpView)
	}
	body := a.bodyView(styles, max(a.height-used, 1))

	rows := []string{tabBar, toolbar, body}
	if helpView != "" {
		rows = append(rows, helpView)
	}
	rows = append(rows, status)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) toolbarView(styles *theme.Styles) string {
	nav := a.nav.View(styles)
	spin := a.loading.View(styles)
	width := max(a.width-lipgloss.Width(nav)-lipgloss.Width(spin)-1, minAddressWidth)
	return lipgloss.JoinHorizontal(lipgloss.Center, nav, " ", a.address.View(styles, width), spin)
}

func (a *App) bodyView(styles *theme.Styles, height int) string {
	if a.settings.IsOpen() {
		return a.settings.View(styles, a.width, height)
	}
	if !a.sidebar.IsOpen() {
		return a.panes.View(styles, a.tabs.Tab, a.width, height)
	}
	side := min(sidebarWidth, a.width/2)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		a.panes.View(styles, a.tabs.Tab, a.width-side, height),
		a.sidebar.View(styles, side, height),
	)
}
