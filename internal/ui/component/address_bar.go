package component

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/ui/theme"
)

const addressCharLimit = 2048

// AddressBar is the editable address field.
type AddressBar struct {
	input textinput.Model
}

// NewAddressBar creates an unfocused address bar.
func NewAddressBar() *AddressBar {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Search or enter address"
	in.CharLimit = addressCharLimit
	in.ShowSuggestions = true
	return &AddressBar{input: in}
}

// Text implements port.AddressBar.
func (a *AddressBar) Text() string { return a.input.Value() }

// SetText implements port.AddressBar. The cursor moves to the start so
// long addresses show their scheme and host.
func (a *AddressBar) SetText(text string) {
	a.input.SetSuggestions(nil)
	a.input.SetValue(text)
	a.input.CursorStart()
}

// SetCompletions offers history completions for the typed text. Tab
// accepts the shown one; Up and Down cycle through the rest.
func (a *AddressBar) SetCompletions(completions []string) {
	a.input.SetSuggestions(completions)
}

// Completion returns the completion currently shown, if any.
func (a *AddressBar) Completion() string {
	return a.input.CurrentSuggestion()
}

// Focused implements port.AddressBar.
func (a *AddressBar) Focused() bool { return a.input.Focused() }

// Focus implements port.AddressBar and selects the whole address for
// replacement by moving the cursor to the end.
func (a *AddressBar) Focus() {
	a.input.Focus()
	a.input.CursorEnd()
}

// Blur implements port.AddressBar.
func (a *AddressBar) Blur() { a.input.Blur() }

// Update forwards key and cursor-blink messages while focused.
func (a *AddressBar) Update(msg tea.Msg) tea.Cmd {
	if !a.input.Focused() {
		return nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

// View renders the field with a focus-dependent border.
func (a *AddressBar) View(styles *theme.Styles, width int) string {
	style := styles.Input
	if a.input.Focused() {
		style = styles.InputFocused
	}
	a.input.TextStyle = styles.Normal
	a.input.PlaceholderStyle = styles.Subtle
	a.input.CompletionStyle = styles.Subtle
	a.input.Cursor.Style = styles.Highlight

	// Border plus horizontal padding take four columns.
	inner := max(width-4, 1)
	a.input.Width = inner
	return style.Width(inner + 2).Render(a.input.View())
}

var _ port.AddressBar = (*AddressBar)(nil)
