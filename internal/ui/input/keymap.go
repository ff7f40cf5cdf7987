// Package input maps terminal key presses to host window actions.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects which local bindings apply on top of the global ones.
type Mode int

const (
	// ModeBrowse is the default: no text field has focus.
	ModeBrowse Mode = iota
	// ModeAddress means the address bar is being edited.
	ModeAddress
	// ModeSidebar means the sidebar lists take arrow keys.
	ModeSidebar
	// ModeNotes means the notes pad is being edited.
	ModeNotes
	// ModeSettings means the settings panel is open.
	ModeSettings
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeAddress:
		return "address"
	case ModeSidebar:
		return "sidebar"
	case ModeNotes:
		return "notes"
	case ModeSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Action represents what happens when a shortcut is triggered.
type Action string

const (
	ActionGoBack          Action = "go_back"
	ActionGoForward       Action = "go_forward"
	ActionReload          Action = "reload"
	ActionHome            Action = "home"
	ActionFocusAddress    Action = "focus_address"
	ActionToggleInspector Action = "toggle_inspector"
	ActionNewTab          Action = "new_tab"
	ActionCloseTab        Action = "close_tab"
	ActionNextTab         Action = "next_tab"
	ActionPreviousTab     Action = "previous_tab"
	ActionToggleSplit     Action = "toggle_split"
	ActionToggleSidebar   Action = "toggle_sidebar"
	ActionOpenSettings    Action = "open_settings"
	ActionScreenshot      Action = "screenshot"
	ActionToggleHelp      Action = "toggle_help"
	ActionQuit            Action = "quit"

	// Address bar
	ActionSubmit Action = "submit"
	ActionAbort  Action = "abort"

	// Lists (sidebar, settings)
	ActionUp          Action = "up"
	ActionDown        Action = "down"
	ActionActivate    Action = "activate"
	ActionDelete      Action = "delete"
	ActionCapture     Action = "capture"
	ActionSaveSession Action = "save_session"
	ActionEditNotes   Action = "edit_notes"
	ActionNextSection Action = "next_section"
	ActionClose       Action = "close"

	// Alt+1..9 jump to a tab by position.
	ActionSwitchTab1 Action = "switch_tab_1"
	ActionSwitchTab9 Action = "switch_tab_9"
)

// SwitchTabIndex returns the zero-based position for a switch_tab_N action.
func SwitchTabIndex(a Action) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(string(a), "switch_tab_%d", &n); err != nil || n < 1 || n > 9 {
		return 0, false
	}
	return n - 1, true
}

type entry struct {
	binding key.Binding
	action  Action
}

// KeyMap holds the bindings per mode. Global bindings apply in every mode
// and win over mode bindings.
type KeyMap struct {
	global []entry
	modes  map[Mode][]entry
}

func bind(action Action, help string, keys ...string) entry {
	return entry{
		binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		action:  action,
	}
}

// DefaultKeyMap returns the standard bindings. Terminals cannot report
// Ctrl+Tab or Ctrl+, so Ctrl+PgDn/PgUp and Alt+, are bound alongside.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		global: []entry{
			bind(ActionGoBack, "back", "alt+left"),
			bind(ActionGoForward, "forward", "alt+right"),
			bind(ActionReload, "reload", "ctrl+r", "f5"),
			bind(ActionHome, "home", "alt+home"),
			bind(ActionFocusAddress, "address", "ctrl+l"),
			bind(ActionToggleInspector, "inspector", "f12"),
			bind(ActionNewTab, "new tab", "ctrl+t"),
			bind(ActionCloseTab, "close tab", "ctrl+w"),
			bind(ActionNextTab, "next tab", "ctrl+tab", "ctrl+pgdown"),
			bind(ActionPreviousTab, "prev tab", "ctrl+shift+tab", "ctrl+pgup"),
			bind(ActionToggleSplit, "split", `ctrl+\`),
			bind(ActionToggleSidebar, "sidebar", "ctrl+b"),
			bind(ActionOpenSettings, "settings", "ctrl+,", "alt+,"),
			bind(ActionScreenshot, "screenshot", "ctrl+s"),
			bind(ActionToggleHelp, "help", "f1"),
			bind(ActionQuit, "quit", "ctrl+q", "ctrl+c"),
		},
		modes: map[Mode][]entry{
			ModeAddress: {
				bind(ActionSubmit, "go", "enter"),
				bind(ActionAbort, "cancel", "esc"),
			},
			ModeSidebar: {
				bind(ActionUp, "up", "up", "k"),
				bind(ActionDown, "down", "down", "j"),
				bind(ActionActivate, "copy/restore", "enter"),
				bind(ActionDelete, "delete", "d", "delete"),
				bind(ActionCapture, "capture", "c"),
				bind(ActionSaveSession, "save session", "s"),
				bind(ActionEditNotes, "edit notes", "e"),
				bind(ActionNextSection, "section", "tab"),
				bind(ActionClose, "leave", "esc"),
			},
			ModeNotes: {
				bind(ActionClose, "save & leave", "esc"),
			},
			ModeSettings: {
				bind(ActionUp, "up", "up", "k"),
				bind(ActionDown, "down", "down", "j"),
				bind(ActionActivate, "toggle", "enter", " "),
				bind(ActionClose, "close", "esc"),
			},
		},
	}
	for i := 1; i <= 9; i++ {
		km.global = append(km.global, bind(Action(fmt.Sprintf("switch_tab_%d", i)), fmt.Sprintf("tab %d", i), fmt.Sprintf("alt+%d", i)))
	}
	return km
}

// Lookup resolves a key press in mode.
func (km KeyMap) Lookup(msg tea.KeyMsg, mode Mode) (Action, bool) {
	for _, e := range km.global {
		if key.Matches(msg, e.binding) {
			return e.action, true
		}
	}
	for _, e := range km.modes[mode] {
		if key.Matches(msg, e.binding) {
			return e.action, true
		}
	}
	return "", false
}

// Help returns the bindings to show for mode, adapted to bubbles/help.
func (km KeyMap) Help(mode Mode) Help {
	h := Help{}
	for _, e := range km.modes[mode] {
		h.short = append(h.short, e.binding)
	}
	for _, e := range km.global {
		if _, isSwitch := SwitchTabIndex(e.action); isSwitch {
			continue
		}
		h.global = append(h.global, e.binding)
	}
	return h
}

// Help implements help.KeyMap.
type Help struct {
	short  []key.Binding
	global []key.Binding
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	if len(h.short) > 0 {
		return h.short
	}
	if len(h.global) > 6 {
		return h.global[:6]
	}
	return h.global
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	cols := [][]key.Binding{}
	if len(h.short) > 0 {
		cols = append(cols, h.short)
	}
	const perColumn = 6
	for i := 0; i < len(h.global); i += perColumn {
		cols = append(cols, h.global[i:min(i+perColumn, len(h.global))])
	}
	return cols
}
