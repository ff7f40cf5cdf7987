package snapshot

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bnema/tabshell/internal/logging"
)

// DefaultInterval is the quiet period before a pending tab set is written.
const DefaultInterval = 5 * time.Second

// Saver persists the open tab addresses.
type Saver interface {
	SaveLast(ctx context.Context, urls []string) error
}

// Service autosaves the open tab set so the next run can restore it.
// Saves are debounced: a burst of changes produces one write.
type Service struct {
	saver    Saver
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending []string
	dirty   bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewService creates a snapshot service. A non-positive interval selects
// DefaultInterval.
func NewService(saver Saver, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		saver:    saver,
		interval: interval,
	}
}

// Start enables debounced saves. Changes marked before Start are kept and
// written on the next save.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop cancels any pending timer and writes the latest tab set.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.ctx = nil
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty records the current tab set and schedules a save.
// It is safe to call from the UI loop; the write happens elsewhere.
func (s *Service) MarkDirty(urls []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = slices.Clone(urls)
	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil {
			return
		}
		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save last session")
		}
	})
}

// SaveNow writes a pending tab set immediately.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	urls := s.pending
	s.dirty = false
	s.mu.Unlock()

	if err := s.saver.SaveLast(ctx, urls); err != nil {
		// Keep the set so a later save retries it, unless it was superseded.
		s.mu.Lock()
		if !s.dirty {
			s.dirty = true
			s.pending = urls
		}
		s.mu.Unlock()
		return err
	}
	return nil
}
