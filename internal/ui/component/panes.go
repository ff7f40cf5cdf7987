package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// TabLookup resolves a tab for rendering.
type TabLookup func(id entity.TabID) (entity.Tab, bool)

// PaneLayout renders a summary card per visible tab. Page pixels live in
// the Chromium window; the terminal shows what each pane holds.
type PaneLayout struct {
	primary   entity.TabID
	secondary entity.TabID
}

// NewPaneLayout creates an empty layout.
func NewPaneLayout() *PaneLayout {
	return &PaneLayout{}
}

// SetPanes implements port.PaneLayout.
func (p *PaneLayout) SetPanes(primary, secondary entity.TabID) {
	p.primary = primary
	p.secondary = secondary
}

// Panes returns the tabs shown, secondary empty when not split.
func (p *PaneLayout) Panes() (primary, secondary entity.TabID) {
	return p.primary, p.secondary
}

// View renders one or two panes filling width x height.
func (p *PaneLayout) View(styles *theme.Styles, lookup TabLookup, width, height int) string {
	if p.primary == "" {
		return styles.Subtle.Width(width).Height(height).Render("No tabs")
	}
	if p.secondary == "" {
		return p.pane(styles, lookup, p.primary, true, width, height)
	}

	left := width / 2
	right := width - left
	return lipgloss.JoinHorizontal(lipgloss.Top,
		p.pane(styles, lookup, p.primary, true, left, height),
		p.pane(styles, lookup, p.secondary, false, right, height),
	)
}

func (p *PaneLayout) pane(styles *theme.Styles, lookup TabLookup, id entity.TabID, active bool, width, height int) string {
	style := styles.Pane
	if active {
		style = styles.PaneActive
	}
	// Border and padding take four columns and two rows.
	inner := max(width-4, 1)
	innerH := max(height-2, 1)

	tab, ok := lookup(id)
	if !ok {
		return style.Width(inner + 2).Height(innerH).Render("")
	}

	title := styles.Title.Render(truncate.StringWithTail(tab.DisplayTitle(), uint(inner), ellipsis))
	address := styles.Subtle.Render(wordwrap.String(tab.URL, inner))
	status := styles.BadgeMuted.Render("ready")
	if tab.IsLoading {
		status = styles.Badge.Render("loading")
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, address, "", status)
	return style.Width(inner + 2).Height(innerH).MaxHeight(height).Render(body)
}

var _ port.PaneLayout = (*PaneLayout)(nil)
