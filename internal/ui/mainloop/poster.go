package mainloop

import tea "github.com/charmbracelet/bubbletea"

// Task is a closure the UI loop runs when it receives it as a message.
type Task func()

// Poster delivers tasks to a Bubble Tea program. Post blocks until the
// program accepts the message (or has exited), which keeps the order of
// tasks posted from one goroutine.
type Poster struct {
	send func(tea.Msg)
}

// NewPoster creates a poster around a send function, usually (*tea.Program).Send.
func NewPoster(send func(tea.Msg)) *Poster {
	return &Poster{send: send}
}

// Post hands fn to the UI loop.
func (p *Poster) Post(fn func()) {
	if fn == nil {
		return
	}
	p.send(Task(fn))
}

// Run executes msg if it is a Task and reports whether it was one.
// Call it first thing in Update.
func Run(msg tea.Msg) bool {
	task, ok := msg.(Task)
	if ok && task != nil {
		task()
	}
	return ok
}
