package styles_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/ui/theme"
)

func TestSessionsRenderer(t *testing.T) {
	r := styles.NewSessionsRenderer(styles.NewTheme())

	require.Contains(t, r.RenderList(nil, nil), "No saved sessions found.")

	now := time.Now()
	sessions := []entity.SessionSnapshot{
		entity.NewSessionSnapshot([]string{"https://a.example/", "https://b.example/"}, now.Add(-2*time.Hour)),
		entity.NewSessionSnapshot([]string{"https://c.example/"}, now),
	}
	last := entity.NewSessionSnapshot([]string{"https://last.example/"}, now)

	out := r.RenderList(sessions, &last)
	assert.Contains(t, out, "Sessions")
	assert.Contains(t, out, " 1")
	assert.Contains(t, out, "2 tabs")
	assert.Contains(t, out, "1 tab")
	assert.Contains(t, out, "https://a.example/")
	assert.NotContains(t, out, "https://b.example/")
	assert.Contains(t, out, "+1 more")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "https://last.example/")

	r.Verbose = true
	out = r.RenderList(sessions, nil)
	assert.Contains(t, out, "https://b.example/")
	assert.NotContains(t, out, "+1 more")
}

func TestSessionsRenderer_TruncatesLongURLs(t *testing.T) {
	r := styles.NewSessionsRenderer(styles.NewTheme())
	long := "https://example.com/" + strings.Repeat("x", 200)

	out := r.RenderList([]entity.SessionSnapshot{entity.NewSessionSnapshot([]string{long}, time.Now())}, nil)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestRenderHistory(t *testing.T) {
	th := styles.NewTheme()
	assert.Contains(t, th.RenderHistory(nil), "No history yet.")

	out := th.RenderHistory([]*entity.HistoryEntry{
		{URL: "https://go.dev/", Title: "Go", VisitCount: 1234, LastVisited: time.Now()},
	})
	assert.Contains(t, out, "History")
	assert.Contains(t, out, "https://go.dev/")
	assert.Contains(t, out, "1,234")
}

func TestThemeHelpers(t *testing.T) {
	th := styles.NewThemeFromPalette(theme.Palette{Accent: "#123456"})
	assert.Equal(t, "#123456", string(th.Accent))
	// Unset tokens fall back to the dark defaults.
	assert.Equal(t, theme.DefaultDarkPalette().Background, string(th.Background))

	assert.Contains(t, th.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, th.RenderSuccess("done"), "done")
}

func TestAboutAndConfigRenderers(t *testing.T) {
	th := styles.NewTheme()

	about := styles.NewAboutRenderer(th).Render(build.New("1.2.3", "abcdef0", "2026-01-01"))
	assert.Contains(t, about, "1.2.3")
	assert.Contains(t, about, "abcdef0")
	assert.Contains(t, about, build.RepoURL())

	cfg := styles.NewConfigRenderer(th)
	paths := cfg.RenderPaths("/c/config.toml", "/d/tabshell.sqlite", "/s/logs")
	assert.Contains(t, paths, "/c/config.toml")
	assert.Contains(t, paths, "/d/tabshell.sqlite")

	framed := cfg.RenderTOML("/c/config.toml", []byte("[ui]\nsidebar_open = true\n"))
	assert.Contains(t, framed, "sidebar_open = true")
}

func TestConfirmModel(t *testing.T) {
	th := styles.NewTheme()

	m := styles.NewConfirm(th, "Delete?")
	assert.Contains(t, m.View(), "Delete?")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.NotNil(t, cmd)
	assert.True(t, next.(styles.ConfirmModel).Accepted())

	m = styles.NewConfirm(th, "Delete?")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, next.(styles.ConfirmModel).Accepted(), "defaults to no")

	m = styles.NewConfirm(th, "Delete?")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, next.(styles.ConfirmModel).Accepted())

	m = styles.NewConfirm(th, "Delete?")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, next.(styles.ConfirmModel).Accepted())
	assert.Empty(t, next.View())
}
