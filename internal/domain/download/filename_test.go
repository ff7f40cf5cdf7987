package download

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScreenshotFilename(t *testing.T) {
	at := time.Date(2026, 3, 7, 9, 5, 2, 0, time.Local)
	assert.Equal(t, "screenshot-20260307-090502.png", ScreenshotFilename(at))
}

func TestResolveDir(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{name: "empty uses fallback", configured: "", want: "/home/u/Downloads"},
		{name: "blank uses fallback", configured: "  ", want: "/home/u/Downloads"},
		{name: "absolute kept", configured: "/data/shots/", want: "/data/shots"},
		{name: "tilde expanded", configured: "~/Pictures", want: "/home/u/Pictures"},
		{name: "bare tilde", configured: "~", want: "/home/u"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDir(tt.configured, "/home/u/Downloads", "/home/u"))
		})
	}
}

func TestMakeUniqueFilename(t *testing.T) {
	existing := map[string]bool{
		filepath.Join("/d", "a.png"):     true,
		filepath.Join("/d", "a_(1).png"): true,
	}
	exists := func(p string) bool { return existing[p] }

	assert.Equal(t, "b.png", MakeUniqueFilename("/d", "b.png", exists))
	assert.Equal(t, "a_(2).png", MakeUniqueFilename("/d", "a.png", exists))
}
