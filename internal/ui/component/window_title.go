package component

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tabshell/internal/application/port"
)

// WindowTitle sets the terminal window title.
type WindowTitle struct {
	title   string
	pending bool
}

// NewWindowTitle creates a title holder.
func NewWindowTitle() *WindowTitle {
	return &WindowTitle{}
}

// SetTitle implements port.WindowTitle.
func (w *WindowTitle) SetTitle(title string) {
	if title == w.title && !w.pending {
		return
	}
	w.title = title
	w.pending = true
}

// Title returns the last title set.
func (w *WindowTitle) Title() string { return w.title }

// Cmd returns the command that applies a pending title, or nil.
func (w *WindowTitle) Cmd() tea.Cmd {
	if !w.pending {
		return nil
	}
	w.pending = false
	return tea.SetWindowTitle(w.title)
}

var _ port.WindowTitle = (*WindowTitle)(nil)
