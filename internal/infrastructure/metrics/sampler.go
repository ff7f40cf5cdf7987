// Package metrics samples resource usage of the tabshell process.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/bnema/tabshell/internal/application/port"
)

// Sampler implements port.MetricsSampler.
type Sampler struct {
	start time.Time
	tabs  func() int
}

// NewSampler creates a sampler. tabs reports the number of open tabs and may be nil.
func NewSampler(start time.Time, tabs func() int) *Sampler {
	return &Sampler{start: start, tabs: tabs}
}

// Sample returns current process metrics.
func (s *Sampler) Sample(ctx context.Context) (port.Metrics, error) {
	if err := ctx.Err(); err != nil {
		return port.Metrics{}, err
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	m := port.Metrics{
		HeapAllocBytes: mem.HeapAlloc,
		Goroutines:     runtime.NumGoroutine(),
		Uptime:         time.Since(s.start).Truncate(time.Second),
	}
	if s.tabs != nil {
		m.OpenTabs = s.tabs()
	}
	if err := fillRusage(&m); err != nil {
		return m, err
	}
	return m, nil
}

var _ port.MetricsSampler = (*Sampler)(nil)
