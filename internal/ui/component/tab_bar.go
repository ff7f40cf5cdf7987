// Package component provides the lipgloss-rendered widgets of the host window.
// Widgets hold plain state mutated from the UI loop; View methods are pure.
package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/ui/theme"
)

const (
	minTabLabelWidth = 6
	maxTabLabelWidth = 24
	loadingMarker    = "◌ "
	ellipsis         = "…"
)

// TabButton is one entry of the TabBar.
type TabButton struct {
	id      entity.TabID
	label   string
	active  bool
	loading bool
}

// SetLabel implements port.TabButton.
func (b *TabButton) SetLabel(label string) { b.label = label }

// SetActive implements port.TabButton.
func (b *TabButton) SetActive(active bool) { b.active = active }

// SetLoading implements port.TabButton.
func (b *TabButton) SetLoading(loading bool) { b.loading = loading }

// IsActive implements port.TabButton.
func (b *TabButton) IsActive() bool { return b.active }

// ID returns the tab the button belongs to.
func (b *TabButton) ID() entity.TabID { return b.id }

// Label returns the full, untruncated label.
func (b *TabButton) Label() string { return b.label }

// IsLoading reports whether the tab's page is loading.
func (b *TabButton) IsLoading() bool { return b.loading }

type tabSpan struct {
	id         entity.TabID
	start, end int
}

// TabBar is the horizontal tab strip.
type TabBar struct {
	buttons []*TabButton
	spans   []tabSpan
}

// NewTabBar creates an empty tab strip.
func NewTabBar() *TabBar {
	return &TabBar{}
}

// AddTab implements port.TabStrip. Buttons are appended in creation order.
func (t *TabBar) AddTab(id entity.TabID, label string) port.TabButton {
	b := &TabButton{id: id, label: label}
	t.buttons = append(t.buttons, b)
	return b
}

// RemoveTab implements port.TabStrip.
func (t *TabBar) RemoveTab(id entity.TabID) {
	for i, b := range t.buttons {
		if b.id == id {
			t.buttons = append(t.buttons[:i], t.buttons[i+1:]...)
			return
		}
	}
}

// Buttons returns the buttons in strip order.
func (t *TabBar) Buttons() []*TabButton {
	return t.buttons
}

// TabAt returns the tab under column x of the last rendered strip.
func (t *TabBar) TabAt(x int) (entity.TabID, bool) {
	for _, s := range t.spans {
		if x >= s.start && x < s.end {
			return s.id, true
		}
	}
	return "", false
}

// labelWidth shares the available width between the buttons.
func labelWidth(width, count int) int {
	if count == 0 {
		return maxTabLabelWidth
	}
	// Each button spends two columns on padding and one on the separator.
	w := width/count - 3
	if w > maxTabLabelWidth {
		return maxTabLabelWidth
	}
	if w < minTabLabelWidth {
		return minTabLabelWidth
	}
	return w
}

// View renders the strip at the given width.
func (t *TabBar) View(styles *theme.Styles, width int) string {
	lw := labelWidth(width, len(t.buttons))
	t.spans = t.spans[:0]

	var b strings.Builder
	col := 0
	for i, btn := range t.buttons {
		if i > 0 {
			b.WriteString(" ")
			col++
		}

		label := btn.label
		if btn.loading {
			label = loadingMarker + label
		}
		label = truncate.StringWithTail(label, uint(lw), ellipsis)

		style := styles.InactiveTab
		if btn.active {
			style = styles.ActiveTab
		}
		rendered := style.Render(label)
		w := lipgloss.Width(rendered)
		t.spans = append(t.spans, tabSpan{id: btn.id, start: col, end: col + w})
		col += w
		b.WriteString(rendered)
	}

	row := truncate.StringWithTail(b.String(), uint(max(width, 0)), ellipsis)
	return styles.TabBar.Width(width).Render(row)
}

var (
	_ port.TabStrip  = (*TabBar)(nil)
	_ port.TabButton = (*TabButton)(nil)
)
