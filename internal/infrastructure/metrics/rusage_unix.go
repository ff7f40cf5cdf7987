//go:build linux || darwin

package metrics

import (
	"fmt"
	"runtime"

	"github.com/bnema/tabshell/internal/application/port"
	"golang.org/x/sys/unix"
)

func fillRusage(m *port.Metrics) error {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return fmt.Errorf("getrusage: %w", err)
	}
	m.CPUUserSeconds = timevalSeconds(ru.Utime)
	m.CPUSystemSeconds = timevalSeconds(ru.Stime)
	m.MemoryRSSBytes = maxRSSBytes(int64(ru.Maxrss))
	return nil
}

func timevalSeconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}

// maxRSSBytes normalizes ru_maxrss, which Linux reports in kilobytes and
// macOS in bytes.
func maxRSSBytes(maxrss int64) int64 {
	if runtime.GOOS == "darwin" {
		return maxrss
	}
	return maxrss * 1024
}
