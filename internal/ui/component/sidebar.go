package component

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// SidebarSection selects the widget that receives sidebar keys.
type SidebarSection int

const (
	SectionClipboard SidebarSection = iota
	SectionNotes
	SectionSessions
	sectionCount
)

// String returns the section heading.
func (s SidebarSection) String() string {
	switch s {
	case SectionClipboard:
		return "Clipboard"
	case SectionNotes:
		return "Notes"
	case SectionSessions:
		return "Sessions"
	default:
		return "unknown"
	}
}

// Sidebar stacks the productivity widgets.
type Sidebar struct {
	open    bool
	section SidebarSection

	Clipboard *ClipboardList
	Notes     *NotesPad
	Sessions  *SessionList
}

// NewSidebar creates a sidebar with empty widgets.
func NewSidebar(open bool) *Sidebar {
	return &Sidebar{
		open:      open,
		Clipboard: &ClipboardList{now: time.Now},
		Notes:     NewNotesPad(),
		Sessions:  &SessionList{now: time.Now},
	}
}

// Toggle opens or closes the sidebar and returns the new state.
func (s *Sidebar) Toggle() bool {
	s.open = !s.open
	if !s.open {
		s.Notes.Blur()
	}
	return s.open
}

// IsOpen reports whether the sidebar is shown.
func (s *Sidebar) IsOpen() bool { return s.open }

// Section returns the selected section.
func (s *Sidebar) Section() SidebarSection { return s.section }

// NextSection moves the selection, wrapping around.
func (s *Sidebar) NextSection() SidebarSection {
	s.section = (s.section + 1) % sectionCount
	return s.section
}

// View renders the sidebar. Each section gets an equal share of height.
func (s *Sidebar) View(styles *theme.Styles, width, height int) string {
	if !s.open {
		return ""
	}
	inner := max(width-2, 1)
	share := max(height/int(sectionCount), 3)

	header := func(sec SidebarSection) string {
		style := styles.SectionHeader.Width(inner)
		if sec == s.section {
			style = style.Foreground(styles.Accent)
		}
		return style.Render(sec.String())
	}
	body := func(content string) string {
		// Header takes two rows including its rule.
		return lipgloss.NewStyle().Width(inner).Height(share - 2).MaxHeight(share - 2).Render(content)
	}

	focused := func(sec SidebarSection) bool { return sec == s.section }
	column := lipgloss.JoinVertical(lipgloss.Left,
		header(SectionClipboard), body(s.Clipboard.View(styles, inner, share-2, focused(SectionClipboard))),
		header(SectionNotes), body(s.Notes.View(styles, inner, share-2)),
		header(SectionSessions), body(s.Sessions.View(styles, inner, share-2, focused(SectionSessions))),
	)
	return styles.Sidebar.Width(width - 1).Height(height).MaxHeight(height).Render(column)
}

// listCursor is a bounded selection index shared by the list widgets.
type listCursor struct {
	index int
}

func (c *listCursor) clamp(n int) {
	if c.index >= n {
		c.index = n - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}

func (c *listCursor) move(delta, n int) {
	c.index += delta
	c.clamp(n)
}

// ClipboardList shows captured clipboard texts, newest first.
type ClipboardList struct {
	entries []entity.ClipboardEntry
	cursor  listCursor
	now     func() time.Time
}

// SetEntries replaces the list, keeping the cursor in range.
func (c *ClipboardList) SetEntries(entries []entity.ClipboardEntry) {
	c.entries = entries
	c.cursor.clamp(len(entries))
}

// Entries returns the shown entries.
func (c *ClipboardList) Entries() []entity.ClipboardEntry { return c.entries }

// Selected returns the cursor index, or -1 when empty.
func (c *ClipboardList) Selected() int {
	if len(c.entries) == 0 {
		return -1
	}
	return c.cursor.index
}

// Move shifts the cursor.
func (c *ClipboardList) Move(delta int) { c.cursor.move(delta, len(c.entries)) }

// View renders the entries.
func (c *ClipboardList) View(styles *theme.Styles, width, height int, focused bool) string {
	if len(c.entries) == 0 {
		return styles.Subtle.Render("Nothing captured. c to capture.")
	}
	return renderRows(styles, width, height, len(c.entries), c.Selected(), focused, func(i int) (string, string) {
		e := c.entries[i]
		text := strings.Join(strings.Fields(e.Text), " ")
		return text, humanize.RelTime(e.CopiedAt, c.now(), "ago", "from now")
	})
}

// SessionList shows saved session snapshots, newest first.
type SessionList struct {
	sessions []entity.SessionSnapshot
	cursor   listCursor
	now      func() time.Time
}

// SetSessions replaces the list, keeping the cursor in range.
func (s *SessionList) SetSessions(sessions []entity.SessionSnapshot) {
	s.sessions = sessions
	s.cursor.clamp(len(sessions))
}

// Sessions returns the shown snapshots.
func (s *SessionList) Sessions() []entity.SessionSnapshot { return s.sessions }

// Selected returns the cursor index, or -1 when empty.
func (s *SessionList) Selected() int {
	if len(s.sessions) == 0 {
		return -1
	}
	return s.cursor.index
}

// Move shifts the cursor.
func (s *SessionList) Move(delta int) { s.cursor.move(delta, len(s.sessions)) }

// View renders the snapshots.
func (s *SessionList) View(styles *theme.Styles, width, height int, focused bool) string {
	if len(s.sessions) == 0 {
		return styles.Subtle.Render("No saved sessions. s to save.")
	}
	return renderRows(styles, width, height, len(s.sessions), s.Selected(), focused, func(i int) (string, string) {
		snap := s.sessions[i]
		return fmt.Sprintf("%d tabs", snap.TabCount), humanize.RelTime(snap.Date, s.now(), "ago", "from now")
	})
}

// renderRows draws a scrolled list window around selected.
func renderRows(styles *theme.Styles, width, height, n, selected int, focused bool, row func(int) (string, string)) string {
	height = max(height, 1)
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, n)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		title, meta := row(i)
		// List item padding takes two columns.
		avail := max(width-2-lipgloss.Width(meta)-1, 1)
		line := truncate.StringWithTail(title, uint(avail), ellipsis)
		line += strings.Repeat(" ", max(avail-lipgloss.Width(line), 0)) + " " + styles.Subtle.Render(meta)

		style := styles.ListItem
		if focused && i == selected {
			style = styles.ListItemSelected
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

// NotesPad is the free-text notes widget.
type NotesPad struct {
	area  textarea.Model
	saved string
}

// NewNotesPad creates an empty, unfocused notes pad.
func NewNotesPad() *NotesPad {
	area := textarea.New()
	area.Placeholder = "Notes…"
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.CharLimit = 0
	return &NotesPad{area: area}
}

// Load replaces the content with persisted text.
func (n *NotesPad) Load(text string) {
	n.area.SetValue(text)
	n.saved = text
}

// Value returns the current text.
func (n *NotesPad) Value() string { return n.area.Value() }

// Dirty reports unsaved edits.
func (n *NotesPad) Dirty() bool { return n.area.Value() != n.saved }

// MarkSaved records text as persisted.
func (n *NotesPad) MarkSaved(text string) { n.saved = text }

// Focus starts editing.
func (n *NotesPad) Focus() tea.Cmd { return n.area.Focus() }

// Blur stops editing.
func (n *NotesPad) Blur() { n.area.Blur() }

// Focused reports whether the pad takes keys.
func (n *NotesPad) Focused() bool { return n.area.Focused() }

// Update forwards input while focused.
func (n *NotesPad) Update(msg tea.Msg) tea.Cmd {
	if !n.area.Focused() {
		return nil
	}
	var cmd tea.Cmd
	n.area, cmd = n.area.Update(msg)
	return cmd
}

// View renders the pad.
func (n *NotesPad) View(styles *theme.Styles, width, height int) string {
	n.area.SetWidth(max(width, 1))
	n.area.SetHeight(max(height, 1))
	n.area.FocusedStyle.Text = styles.Normal
	n.area.BlurredStyle.Text = styles.Subtle
	n.area.FocusedStyle.Placeholder = styles.Subtle
	n.area.BlurredStyle.Placeholder = styles.Subtle
	view := n.area.View()
	if n.Dirty() && !n.area.Focused() {
		view = styles.WarningStyle.Render("unsaved") + "\n" + view
	}
	return view
}
