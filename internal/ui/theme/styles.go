package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds lipgloss colors and pre-built styles derived from a Palette.
type Styles struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style

	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TabBar      lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Pane       lipgloss.Style
	PaneActive lipgloss.Style

	Sidebar       lipgloss.Style
	SectionHeader lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	StatusBar lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles builds Styles from a palette.
func NewStyles(p Palette) *Styles {
	s := &Styles{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(p.Destructive),
		Warning:        lipgloss.Color(p.Warning),
		Success:        lipgloss.Color(p.Success),
	}
	s.build()
	return s
}

func (s *Styles) build() {
	s.Title = lipgloss.NewStyle().Foreground(s.Text).Bold(true)
	s.Normal = lipgloss.NewStyle().Foreground(s.Text)
	s.Subtle = lipgloss.NewStyle().Foreground(s.Muted)
	s.Highlight = lipgloss.NewStyle().Foreground(s.Accent).Bold(true)

	s.ErrorStyle = lipgloss.NewStyle().Foreground(s.Error)
	s.WarningStyle = lipgloss.NewStyle().Foreground(s.Warning)
	s.SuccessStyle = lipgloss.NewStyle().Foreground(s.Success)

	s.ActiveTab = lipgloss.NewStyle().
		Foreground(s.Background).
		Background(s.Accent).
		Padding(0, 1).
		Bold(true)

	s.InactiveTab = lipgloss.NewStyle().
		Foreground(s.Muted).
		Background(s.Surface).
		Padding(0, 1)

	s.TabBar = lipgloss.NewStyle().
		Background(s.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(s.Border)

	s.Button = lipgloss.NewStyle().
		Foreground(s.Text).
		Background(s.SurfaceVariant).
		Padding(0, 1)

	s.ButtonDisabled = lipgloss.NewStyle().
		Foreground(s.Border).
		Background(s.Surface).
		Padding(0, 1)

	s.Input = lipgloss.NewStyle().
		Foreground(s.Text).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 1)

	s.InputFocused = s.Input.BorderForeground(s.Accent)

	s.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.Border).
		Padding(0, 1)

	s.PaneActive = s.Pane.BorderForeground(s.Accent)

	s.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(s.Border).
		PaddingLeft(1)

	s.SectionHeader = lipgloss.NewStyle().
		Foreground(s.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(s.Border)

	s.ListItem = lipgloss.NewStyle().Foreground(s.Text).PaddingLeft(2)
	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(s.Accent).
		Background(s.SurfaceVariant).
		PaddingLeft(2).
		Bold(true)

	s.Badge = lipgloss.NewStyle().
		Foreground(s.Background).
		Background(s.Accent).
		Padding(0, 1)

	s.BadgeMuted = lipgloss.NewStyle().
		Foreground(s.Text).
		Background(s.SurfaceVariant).
		Padding(0, 1)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(s.Muted).
		Background(s.Surface).
		Padding(0, 1)

	s.HelpKey = lipgloss.NewStyle().Foreground(s.Accent)
	s.HelpDesc = lipgloss.NewStyle().Foreground(s.Muted)
}
