package component

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/ui/theme"
)

// SettingsAction is what activating a settings row asks the host to do.
type SettingsAction int

const (
	ActionNone SettingsAction = iota
	// ActionUpdate persists the mutation returned alongside it.
	ActionUpdate
	ActionSelectDownloadLocation
	ActionClearCache
	ActionClearCookies
	ActionClearHistory
	ActionClearAllData
)

type settingsRow struct {
	label  string
	value  func(entity.Settings) string
	action SettingsAction
	mutate func(*entity.Settings)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func toggle(field func(*entity.Settings) *bool) func(*entity.Settings) {
	return func(s *entity.Settings) {
		p := field(s)
		*p = !*p
	}
}

// SettingsPanel lists the recognized settings and the data-clearing actions.
type SettingsPanel struct {
	open    bool
	rows    []settingsRow
	cursor  listCursor
	current entity.Settings
	engines []string
	status  string
}

// NewSettingsPanel creates a closed panel. engines is the ordered list the
// search engine row cycles through.
func NewSettingsPanel(engines []string) *SettingsPanel {
	p := &SettingsPanel{engines: engines, current: entity.DefaultSettings()}
	p.rows = []settingsRow{
		{
			label:  "Theme",
			value:  func(s entity.Settings) string { return string(s.Theme) },
			action: ActionUpdate,
			mutate: func(s *entity.Settings) { s.Theme = s.Theme.Next() },
		},
		{
			label:  "Show home button",
			value:  func(s entity.Settings) string { return onOff(s.ShowHomeButton) },
			action: ActionUpdate,
			mutate: toggle(func(s *entity.Settings) *bool { return &s.ShowHomeButton }),
		},
		{
			label:  "Search engine",
			value:  func(s entity.Settings) string { return s.SearchEngine },
			action: ActionUpdate,
			mutate: p.nextEngine,
		},
		{
			label:  "Clear data on exit",
			value:  func(s entity.Settings) string { return onOff(s.ClearOnExit) },
			action: ActionUpdate,
			mutate: toggle(func(s *entity.Settings) *bool { return &s.ClearOnExit }),
		},
		{
			label:  "Block third-party cookies",
			value:  func(s entity.Settings) string { return onOff(s.BlockThirdPartyCookies) },
			action: ActionUpdate,
			mutate: toggle(func(s *entity.Settings) *bool { return &s.BlockThirdPartyCookies }),
		},
		{
			label:  "Send Do Not Track",
			value:  func(s entity.Settings) string { return onOff(s.DoNotTrack) },
			action: ActionUpdate,
			mutate: toggle(func(s *entity.Settings) *bool { return &s.DoNotTrack }),
		},
		{
			label: "Download location",
			value: func(s entity.Settings) string {
				if s.DownloadLocation == "" {
					return "default"
				}
				return s.DownloadLocation
			},
			action: ActionSelectDownloadLocation,
		},
		{
			label:  "Ask before download",
			value:  func(s entity.Settings) string { return onOff(s.AskBeforeDownload) },
			action: ActionUpdate,
			mutate: toggle(func(s *entity.Settings) *bool { return &s.AskBeforeDownload }),
		},
		{
			label:  "Hardware acceleration",
			value:  func(s entity.Settings) string { return onOff(s.HardwareAcceleration) },
			action: ActionUpdate,
			mutate: toggle(func(s *entity.Settings) *bool { return &s.HardwareAcceleration }),
		},
		{label: "Clear cache", action: ActionClearCache},
		{label: "Clear cookies", action: ActionClearCookies},
		{label: "Clear history", action: ActionClearHistory},
		{label: "Clear all browsing data", action: ActionClearAllData},
	}
	return p
}

func (p *SettingsPanel) nextEngine(s *entity.Settings) {
	if len(p.engines) == 0 {
		return
	}
	i := slices.Index(p.engines, s.SearchEngine)
	s.SearchEngine = p.engines[(i+1)%len(p.engines)]
}

// Open shows the panel.
func (p *SettingsPanel) Open() { p.open = true }

// Close hides the panel.
func (p *SettingsPanel) Close() {
	p.open = false
	p.status = ""
}

// IsOpen reports whether the panel is shown.
func (p *SettingsPanel) IsOpen() bool { return p.open }

// SetSettings refreshes the displayed values.
func (p *SettingsPanel) SetSettings(s entity.Settings) { p.current = s }

// SetStatus shows a one-line result under the rows.
func (p *SettingsPanel) SetStatus(status string) { p.status = status }

// Move shifts the cursor.
func (p *SettingsPanel) Move(delta int) { p.cursor.move(delta, len(p.rows)) }

// Selected returns the cursor row label.
func (p *SettingsPanel) Selected() string { return p.rows[p.cursor.index].label }

// Activate returns what the selected row asks for. mutate is non-nil only
// for ActionUpdate.
func (p *SettingsPanel) Activate() (SettingsAction, func(*entity.Settings)) {
	row := p.rows[p.cursor.index]
	return row.action, row.mutate
}

// View renders the panel.
func (p *SettingsPanel) View(styles *theme.Styles, width, height int) string {
	inner := max(width-6, 10)
	labelWidth := 0
	for _, row := range p.rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.label))
	}

	lines := []string{styles.Title.Render("Settings"), ""}
	for i, row := range p.rows {
		line := row.label
		if row.value != nil {
			line += strings.Repeat(" ", labelWidth-lipgloss.Width(row.label)+2) + row.value(p.current)
		}
		style := styles.ListItem
		if i == p.cursor.index {
			style = styles.ListItemSelected
		}
		lines = append(lines, style.Width(inner).Render(line))
	}
	lines = append(lines, "")
	if p.status != "" {
		lines = append(lines, styles.Highlight.Render(p.status))
	}
	lines = append(lines, styles.Subtle.Render("enter toggle · esc close"))

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Accent).
		Padding(0, 1).
		Width(inner + 2)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(strings.Join(lines, "\n")))
}
