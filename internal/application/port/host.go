package port

import (
	"context"
	"time"
)

// WindowController manipulates the host window.
type WindowController interface {
	Minimize(ctx context.Context) error
	Maximize(ctx context.Context) error
	Close(ctx context.Context) error
}

// BrowsingDataClearer wipes engine-side browsing data.
type BrowsingDataClearer interface {
	ClearCache(ctx context.Context) error
	ClearCookies(ctx context.Context) error
}

// EnginePreferences applies settings that live inside the browser engine.
type EnginePreferences interface {
	SetDoNotTrack(ctx context.Context, enabled bool) error
	SetBlockThirdPartyCookies(ctx context.Context, enabled bool) error
	SetDownloadDirectory(ctx context.Context, dir string, ask bool) error
}

// DirectoryPicker asks the user for a directory.
// It returns "" with a nil error when the user cancels.
type DirectoryPicker interface {
	PickDirectory(ctx context.Context, title, start string) (string, error)
}

// Metrics is a point-in-time resource sample of the browser process.
type Metrics struct {
	MemoryRSSBytes   int64         `json:"memoryRssBytes"`
	HeapAllocBytes   uint64        `json:"heapAllocBytes"`
	CPUUserSeconds   float64       `json:"cpuUserSeconds"`
	CPUSystemSeconds float64       `json:"cpuSystemSeconds"`
	Goroutines       int           `json:"goroutines"`
	OpenTabs         int           `json:"openTabs"`
	Uptime           time.Duration `json:"uptime"`
}

// MetricsSampler samples resource usage.
type MetricsSampler interface {
	Sample(ctx context.Context) (Metrics, error)
}
