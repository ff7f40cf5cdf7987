// Package mainloop hands work from background goroutines to the single UI
// loop, which is the only place UI state may be touched.
package mainloop

import "sync"

// Coalescer merges bursts of same-key UI tasks: while a task for a key is
// queued but not yet run, later posts replace its body instead of queueing
// again. Only the latest body runs, at the position of the first post.
type Coalescer struct {
	mu        sync.Mutex
	latest    map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer wraps post, which must deliver closures to the UI loop in order.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		latest: make(map[string]func()),
		post:   post,
	}
}

// Post schedules fn under key.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()
	if queued {
		return
	}

	c.post(func() { c.flush(key) })
}

func (c *Coalescer) flush(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed {
		fn()
	}
}

// Pending returns the number of keys waiting to run.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.latest)
}

// Destroy drops queued work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.latest = make(map[string]func())
	c.mu.Unlock()
}
