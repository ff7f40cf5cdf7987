package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no prompt run as its own small program.
type ConfirmModel struct {
	Message   string
	Yes       bool // Current selection
	Confirmed bool
	Canceled  bool
	theme     *Theme
	keys      ConfirmKeyMap
}

// ConfirmKeyMap defines keybindings for the confirm prompt.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "toggle")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a prompt defaulting to "No".
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		theme:   theme,
		keys:    DefaultConfirmKeyMap(),
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes, m.Confirmed = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.No):
		m.Yes, m.Confirmed = false, true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
		return m, tea.Quit
	}
	return m, nil
}

// Accepted reports whether the user confirmed "Yes".
func (m ConfirmModel) Accepted() bool {
	return m.Confirmed && m.Yes && !m.Canceled
}

func (m ConfirmModel) View() string {
	if m.Confirmed || m.Canceled {
		return ""
	}
	yes, no := m.theme.BadgeMuted.Render("Yes"), m.theme.Badge.Render("No")
	if m.Yes {
		yes, no = m.theme.Badge.Render("Yes"), m.theme.BadgeMuted.Render("No")
	}
	return fmt.Sprintf("%s %s\n\n  %s  %s\n", m.theme.WarningStyle.Render(IconWarning), m.theme.Title.Render(m.Message), yes, no)
}
