package component

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/ui/theme"
)

func testStyles() *theme.Styles {
	return theme.NewStyles(theme.DefaultDarkPalette())
}

func TestTabBar_AddRemoveKeepsOrder(t *testing.T) {
	bar := NewTabBar()
	a := bar.AddTab("a", "Alpha")
	bar.AddTab("b", "Beta")
	bar.AddTab("c", "Gamma")

	a.SetActive(true)
	assert.True(t, a.IsActive())

	bar.RemoveTab("b")
	bar.RemoveTab("missing")

	ids := []entity.TabID{}
	for _, b := range bar.Buttons() {
		ids = append(ids, b.ID())
	}
	assert.Equal(t, []entity.TabID{"a", "c"}, ids)
}

func TestTabBar_ViewTruncatesLongLabelsAndMarksLoading(t *testing.T) {
	bar := NewTabBar()
	long := bar.AddTab("a", strings.Repeat("x", 80))
	busy := bar.AddTab("b", "Busy")
	long.SetActive(true)
	busy.SetLoading(true)

	view := bar.View(testStyles(), 60)
	assert.Contains(t, view, ellipsis)
	assert.Contains(t, view, loadingMarker+"Busy")
	assert.NotContains(t, view, strings.Repeat("x", maxTabLabelWidth+1))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestTabBar_TabAtUsesRenderedSpans(t *testing.T) {
	bar := NewTabBar()
	bar.AddTab("a", "One")
	bar.AddTab("b", "Two")
	bar.View(testStyles(), 80)

	id, ok := bar.TabAt(0)
	require.True(t, ok)
	assert.Equal(t, entity.TabID("a"), id)

	// "One" plus padding is five columns, then one separator.
	id, ok = bar.TabAt(6)
	require.True(t, ok)
	assert.Equal(t, entity.TabID("b"), id)

	_, ok = bar.TabAt(79)
	assert.False(t, ok)
}

func TestLabelWidth(t *testing.T) {
	assert.Equal(t, maxTabLabelWidth, labelWidth(200, 1))
	assert.Equal(t, minTabLabelWidth, labelWidth(20, 10))
	assert.Equal(t, 17, labelWidth(80, 4))
}

func TestAddressBar_FocusAndText(t *testing.T) {
	bar := NewAddressBar()
	assert.False(t, bar.Focused())
	assert.Nil(t, bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}), "ignores keys while blurred")

	bar.SetText("https://example.com")
	assert.Equal(t, "https://example.com", bar.Text())

	bar.Focus()
	require.True(t, bar.Focused())
	bar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/a")})
	assert.Equal(t, "https://example.com/a", bar.Text())

	bar.Blur()
	assert.False(t, bar.Focused())

	view := bar.View(testStyles(), 40)
	assert.Equal(t, 40, lipgloss.Width(strings.Split(view, "\n")[0]))
}

func TestNavButtons_State(t *testing.T) {
	nav := NewNavButtons(false)
	nav.SetBackEnabled(true)
	assert.True(t, nav.BackEnabled())
	assert.False(t, nav.ForwardEnabled())
	assert.NotContains(t, nav.View(testStyles()), "⌂")

	nav.SetShowHome(true)
	assert.Contains(t, nav.View(testStyles()), "⌂")
}

func TestLoadingIndicator_TicksOnlyWhileLoading(t *testing.T) {
	l := NewLoadingIndicator()
	assert.Nil(t, l.StartCmd())

	l.SetLoading(true)
	require.NotNil(t, l.StartCmd())
	assert.Nil(t, l.StartCmd(), "one tick chain at a time")

	tick := spinner.TickMsg{ID: l.spinner.ID(), Time: time.Now()}
	assert.NotNil(t, l.Update(tick))
	assert.NotEqual(t, "  ", l.View(testStyles()))

	l.SetLoading(false)
	assert.Nil(t, l.Update(tick))
	assert.Equal(t, "  ", l.View(testStyles()))

	l.SetLoading(true)
	assert.NotNil(t, l.StartCmd(), "restarts after the chain stopped")
}

func TestLoadingIndicator_IgnoresForeignTicks(t *testing.T) {
	l := NewLoadingIndicator()
	l.SetLoading(true)
	assert.Nil(t, l.Update(spinner.TickMsg{ID: l.spinner.ID() + 1000}))
	assert.Nil(t, l.Update(tea.KeyMsg{}))
}

func TestWindowTitle_PendingOnlyOnChange(t *testing.T) {
	w := NewWindowTitle()
	assert.Nil(t, w.Cmd())

	w.SetTitle("Example")
	assert.NotNil(t, w.Cmd())
	assert.Nil(t, w.Cmd())

	w.SetTitle("Example")
	assert.Nil(t, w.Cmd())
	assert.Equal(t, "Example", w.Title())
}

func TestPaneLayout_View(t *testing.T) {
	tabs := map[entity.TabID]entity.Tab{
		"a": {ID: "a", URL: "https://a.example", Title: "Alpha"},
		"b": {ID: "b", URL: "https://b.example", Title: "Beta", IsLoading: true},
	}
	lookup := func(id entity.TabID) (entity.Tab, bool) {
		tab, ok := tabs[id]
		return tab, ok
	}

	p := NewPaneLayout()
	assert.Contains(t, p.View(testStyles(), lookup, 40, 10), "No tabs")

	p.SetPanes("a", "")
	single := p.View(testStyles(), lookup, 40, 10)
	assert.Contains(t, single, "Alpha")
	assert.NotContains(t, single, "Beta")

	p.SetPanes("a", "b")
	split := p.View(testStyles(), lookup, 80, 10)
	assert.Contains(t, split, "Alpha")
	assert.Contains(t, split, "Beta")
	assert.Contains(t, split, "loading")
	assert.Equal(t, 10, lipgloss.Height(split))
}

func TestSidebar_SectionsAndToggle(t *testing.T) {
	s := NewSidebar(false)
	assert.Empty(t, s.View(testStyles(), 30, 20))

	assert.True(t, s.Toggle())
	assert.Equal(t, SectionClipboard, s.Section())
	assert.Equal(t, SectionNotes, s.NextSection())
	assert.Equal(t, SectionSessions, s.NextSection())
	assert.Equal(t, SectionClipboard, s.NextSection())

	view := s.View(testStyles(), 30, 21)
	assert.Contains(t, view, "Clipboard")
	assert.Contains(t, view, "Notes")
	assert.Contains(t, view, "Sessions")

	s.Notes.Focus()
	assert.False(t, s.Toggle())
	assert.False(t, s.Notes.Focused(), "closing blurs notes")
}

func TestClipboardList_CursorStaysInRange(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := &ClipboardList{now: func() time.Time { return now }}
	assert.Equal(t, -1, c.Selected())

	c.SetEntries([]entity.ClipboardEntry{
		{Text: "one", CopiedAt: now.Add(-time.Minute)},
		{Text: "two\nlines", CopiedAt: now.Add(-time.Hour)},
	})
	c.Move(5)
	assert.Equal(t, 1, c.Selected())
	c.Move(-9)
	assert.Equal(t, 0, c.Selected())

	c.Move(1)
	c.SetEntries(c.Entries()[:1])
	assert.Equal(t, 0, c.Selected())

	view := c.View(testStyles(), 40, 5, true)
	assert.Contains(t, view, "one")
	assert.Contains(t, view, "1 minute ago")
}

func TestSessionList_View(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := &SessionList{now: func() time.Time { return now }}
	assert.Contains(t, s.View(testStyles(), 40, 5, true), "No saved sessions")

	s.SetSessions([]entity.SessionSnapshot{{Date: now.Add(-2 * time.Hour), TabCount: 3, URLs: []string{"a", "b", "c"}}})
	view := s.View(testStyles(), 40, 5, true)
	assert.Contains(t, view, "3 tabs")
	assert.Contains(t, view, "2 hours ago")
}

func TestRenderRows_ScrollsToSelection(t *testing.T) {
	view := renderRows(testStyles(), 30, 2, 5, 4, true, func(i int) (string, string) {
		return string(rune('a' + i)), ""
	})
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "d")
	assert.Contains(t, lines[1], "e")
}

func TestNotesPad_Dirty(t *testing.T) {
	n := NewNotesPad()
	n.Load("saved")
	assert.False(t, n.Dirty())

	assert.Nil(t, n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")}), "blurred pad ignores keys")
	assert.Equal(t, "saved", n.Value())

	n.Focus()
	n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	assert.True(t, n.Dirty())

	n.MarkSaved(n.Value())
	assert.False(t, n.Dirty())
}

func TestSettingsPanel_Activate(t *testing.T) {
	p := NewSettingsPanel([]string{"duckduckgo", "google"})
	s := entity.DefaultSettings()

	action, mutate := p.Activate()
	require.Equal(t, ActionUpdate, action)
	mutate(&s)
	assert.Equal(t, entity.ThemeDark, s.Theme)

	p.Move(1)
	_, mutate = p.Activate()
	mutate(&s)
	assert.False(t, s.ShowHomeButton)

	p.Move(1)
	_, mutate = p.Activate()
	mutate(&s)
	assert.Equal(t, "google", s.SearchEngine)
	mutate(&s)
	assert.Equal(t, "duckduckgo", s.SearchEngine)

	for p.Selected() != "Download location" {
		p.Move(1)
	}
	action, mutate = p.Activate()
	assert.Equal(t, ActionSelectDownloadLocation, action)
	assert.Nil(t, mutate)

	p.Move(100)
	action, _ = p.Activate()
	assert.Equal(t, ActionClearAllData, action)
}

func TestSettingsPanel_ViewShowsValues(t *testing.T) {
	p := NewSettingsPanel(nil)
	s := entity.DefaultSettings()
	s.DownloadLocation = "/tmp/dl"
	p.SetSettings(s)
	p.SetStatus("Cache cleared")
	p.Open()
	require.True(t, p.IsOpen())

	view := p.View(testStyles(), 100, 30)
	assert.Contains(t, view, "/tmp/dl")
	assert.Contains(t, view, "duckduckgo")
	assert.Contains(t, view, "Cache cleared")

	p.Close()
	assert.False(t, p.IsOpen())
}

func TestFormatMetrics(t *testing.T) {
	out := FormatMetrics(port.Metrics{
		MemoryRSSBytes: 300 * 1000 * 1000,
		CPUUserSeconds: 1.5,
		Uptime:         5 * time.Minute,
	})
	assert.Equal(t, "300 MB · cpu 1.5s · up 5 minutes", out)
}

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar()
	s.SetTabs(1, false)
	s.Notify("Saved")
	view := s.View(testStyles(), 60)
	assert.Contains(t, view, "Saved")
	assert.Contains(t, view, "1 tab")
	assert.Equal(t, 60, lipgloss.Width(view))

	s.SetTabs(2, true)
	s.Error("boom")
	assert.Contains(t, s.View(testStyles(), 60), "2 tabs · split")
	assert.Equal(t, "boom", s.Message())
}
