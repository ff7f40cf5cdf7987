// Package download names files the browser writes into the download directory.
package download

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ScreenshotFilename names a screenshot taken at t: screenshot-YYYYMMDD-HHMMSS.png.
func ScreenshotFilename(t time.Time) string {
	return "screenshot-" + t.Format("20060102-150405") + ".png"
}

// ResolveDir picks the configured download location, falling back to the
// platform default. A leading "~/" expands to home.
func ResolveDir(configured, fallback, home string) string {
	dir := strings.TrimSpace(configured)
	if dir == "" {
		return fallback
	}
	if home != "" && (dir == "~" || strings.HasPrefix(dir, "~/")) {
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Clean(dir)
}

// MakeUniqueFilename generates a unique filename by appending _(N) if needed.
// The exists function should return true if the given path already exists.
func MakeUniqueFilename(dir, filename string, exists func(path string) bool) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}
