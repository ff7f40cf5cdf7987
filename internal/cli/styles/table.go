package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/bnema/tabshell/internal/domain/entity"
)

const (
	historyTitleWidth = 36
	historyURLWidth   = 48
)

// NewStyledTable creates a themed, unfocused table for static output.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Nothing is selected in static output.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// HistoryTableColumns returns columns for the history list.
func HistoryTableColumns() []table.Column {
	return []table.Column{
		{Title: "Title", Width: historyTitleWidth},
		{Title: "URL", Width: historyURLWidth},
		{Title: "Visits", Width: 8},
		{Title: "Last Visit", Width: 16},
	}
}

// HistoryRow converts a history entry to a table row.
func HistoryRow(e *entity.HistoryEntry) table.Row {
	return table.Row{
		truncate.StringWithTail(e.DisplayTitle(), historyTitleWidth, "…"),
		truncate.StringWithTail(e.URL, historyURLWidth, "…"),
		humanize.Comma(e.VisitCount),
		humanize.Time(e.LastVisited),
	}
}

// RenderHistory renders recent history as a table.
func (t *Theme) RenderHistory(entries []*entity.HistoryEntry) string {
	if len(entries) == 0 {
		return t.Subtle.Render("No history yet.")
	}
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, HistoryRow(e))
	}
	title := fmt.Sprintf("%s %s", t.Highlight.Render(IconClock), t.Title.Render("History"))
	return title + "\n\n" + NewStyledTable(t, HistoryTableColumns(), rows).View()
}
