package styles

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/bnema/tabshell/internal/domain/entity"
)

const sessionURLWidth = 72

// SessionsRenderer renders the output of the sessions subcommands.
type SessionsRenderer struct {
	theme *Theme
	// Verbose lists every address instead of the first one.
	Verbose bool
}

func NewSessionsRenderer(theme *Theme) *SessionsRenderer {
	return &SessionsRenderer{theme: theme}
}

func (r *SessionsRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved sessions found.")
}

// RenderList renders the saved sessions, numbered from 1, and the autosaved
// last session when there is one.
func (r *SessionsRenderer) RenderList(sessions []entity.SessionSnapshot, last *entity.SessionSnapshot) string {
	if len(sessions) == 0 && last == nil {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconSessionStack), r.theme.Title.Render("Sessions")))

	for i, s := range sessions {
		b.WriteString(r.renderOne(r.theme.Highlight.Render(fmt.Sprintf("%2d", i+1)), s))
	}
	if last != nil {
		if len(sessions) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.renderOne(r.theme.Subtle.Render(IconRestore+" last"), *last))
	}

	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: `tabshell browse --restore` reopens the last session."))
	return b.String()
}

func (r *SessionsRenderer) renderOne(label string, s entity.SessionSnapshot) string {
	var b strings.Builder
	tabs := r.theme.BadgeMuted.Render(pluralTabs(s.TabCount))
	saved := r.theme.Subtle.Render(humanize.Time(s.Date))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n", label, tabs, saved))

	urls := s.URLs
	if !r.Verbose && len(urls) > 1 {
		urls = urls[:1]
	}
	for _, u := range urls {
		b.WriteString("      ")
		b.WriteString(r.theme.Normal.Render(truncate.StringWithTail(u, sessionURLWidth, "…")))
		b.WriteString("\n")
	}
	if hidden := len(s.URLs) - len(urls); hidden > 0 {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf("      +%d more\n", hidden)))
	}
	return b.String()
}

// RenderDeleted confirms a deletion by 1-based index.
func (r *SessionsRenderer) RenderDeleted(index int) string {
	return r.theme.RenderSuccess(fmt.Sprintf("Deleted session %d", index))
}

func pluralTabs(n int) string {
	if n == 1 {
		return "1 tab"
	}
	return fmt.Sprintf("%d tabs", n)
}
