package chromium

import "sync"

// workQueue runs submitted functions one at a time, in submission order, on
// its own goroutine. push never blocks, so it is safe from chromedp listeners.
type workQueue struct {
	mu     sync.Mutex
	items  []func()
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.loop()
	return q
}

// push enqueues fn. It reports false once the queue is closed.
func (q *workQueue) push(fn func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

func (q *workQueue) loop() {
	defer close(q.done)
	for {
		q.mu.Lock()
		if q.closed {
			q.items = nil
			q.mu.Unlock()
			return
		}
		if len(q.items) == 0 {
			q.mu.Unlock()
			<-q.wake
			continue
		}
		fn := q.items[0]
		q.items[0] = nil
		q.items = q.items[1:]
		q.mu.Unlock()

		fn()
	}
}

// close drops pending work and stops the worker after the running item returns.
func (q *workQueue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}
