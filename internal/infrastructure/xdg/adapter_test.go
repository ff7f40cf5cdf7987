package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_DownloadDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		env  string
		want string
	}{
		{name: "explicit", env: "/srv/inbox", want: "/srv/inbox"},
		{name: "home fallback", env: "", want: filepath.Join(home, "Downloads")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_DOWNLOAD_DIR", tt.env)
			got, err := New().DownloadDir()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
