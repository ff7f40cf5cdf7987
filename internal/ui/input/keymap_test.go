package input

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string, alt bool) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: alt}
}

func TestLookup_GlobalBindings(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"alt+left", tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, ActionGoBack},
		{"alt+right", tea.KeyMsg{Type: tea.KeyRight, Alt: true}, ActionGoForward},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, ActionReload},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, ActionReload},
		{"ctrl+l", tea.KeyMsg{Type: tea.KeyCtrlL}, ActionFocusAddress},
		{"f12", tea.KeyMsg{Type: tea.KeyF12}, ActionToggleInspector},
		{"ctrl+t", tea.KeyMsg{Type: tea.KeyCtrlT}, ActionNewTab},
		{"ctrl+w", tea.KeyMsg{Type: tea.KeyCtrlW}, ActionCloseTab},
		{"ctrl+pgdown", tea.KeyMsg{Type: tea.KeyCtrlPgDown}, ActionNextTab},
		{"ctrl+pgup", tea.KeyMsg{Type: tea.KeyCtrlPgUp}, ActionPreviousTab},
		{`ctrl+\`, tea.KeyMsg{Type: tea.KeyCtrlBackslash}, ActionToggleSplit},
		{"ctrl+b", tea.KeyMsg{Type: tea.KeyCtrlB}, ActionToggleSidebar},
		{"alt+,", runes(",", true), ActionOpenSettings},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{"ctrl+q", tea.KeyMsg{Type: tea.KeyCtrlQ}, ActionQuit},
		{"alt+3", runes("3", true), Action("switch_tab_3")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{ModeBrowse, ModeAddress, ModeSidebar, ModeNotes, ModeSettings} {
				got, ok := km.Lookup(tt.msg, mode)
				require.True(t, ok, "mode %s", mode)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLookup_ModeBindings(t *testing.T) {
	km := DefaultKeyMap()
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	got, ok := km.Lookup(enter, ModeAddress)
	require.True(t, ok)
	assert.Equal(t, ActionSubmit, got)

	got, _ = km.Lookup(esc, ModeAddress)
	assert.Equal(t, ActionAbort, got)

	_, ok = km.Lookup(enter, ModeBrowse)
	assert.False(t, ok)

	got, _ = km.Lookup(runes("j", false), ModeSidebar)
	assert.Equal(t, ActionDown, got)

	got, _ = km.Lookup(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ModeSettings)
	assert.Equal(t, ActionActivate, got)

	_, ok = km.Lookup(runes("j", false), ModeNotes)
	assert.False(t, ok, "plain keys belong to the notes editor")
}

func TestSwitchTabIndex(t *testing.T) {
	i, ok := SwitchTabIndex(ActionSwitchTab1)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = SwitchTabIndex(ActionSwitchTab9)
	require.True(t, ok)
	assert.Equal(t, 8, i)

	_, ok = SwitchTabIndex(ActionNewTab)
	assert.False(t, ok)
}

func TestHelp_RendersWithBubblesHelp(t *testing.T) {
	km := DefaultKeyMap()
	h := help.New()

	short := h.View(km.Help(ModeAddress))
	assert.Contains(t, short, "enter")
	assert.Contains(t, short, "go")

	full := h.FullHelpView(km.Help(ModeBrowse).FullHelp())
	assert.Contains(t, full, "new tab")
	assert.NotContains(t, full, "tab 3")
}
