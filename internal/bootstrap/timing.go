// Package bootstrap brings up the pieces the browser shell needs before the
// first frame: logging, the local store and the Chromium process.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/logging"
)

// StartupTimer records how long each startup phase took.
// Safe for concurrent use by parallel phases.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer starts timing from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark closes the phase that began at the previous mark.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// MarkDuration records a phase timed elsewhere, e.g. in a goroutine.
// It does not move the sequential mark.
func (t *StartupTimer) MarkDuration(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, dur: d})
}

// Phase returns the recorded duration of name.
func (t *StartupTimer) Phase(name string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.phases {
		if p.name == name {
			return p.dur, true
		}
	}
	return 0, false
}

// Total returns the time since the timer was created.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// Log writes every phase as one record at the given level.
func (t *StartupTimer) Log(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
