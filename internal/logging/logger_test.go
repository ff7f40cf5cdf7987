package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "coordinator")
	ctx = WithTabID(ctx, "t1")
	FromContext(ctx).Info().Msg("hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "coordinator", rec["component"])
	assert.Equal(t, "t1", rec["tab_id"])
	assert.Equal(t, "hello", rec["message"])
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped")
}

func TestRotatingFile_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := OpenRotatingFile(dir, 1, 1)
	require.NoError(t, err)
	r.maxSize = 16

	for i := 0; i < 4; i++ {
		_, err := r.Write([]byte(strings.Repeat("x", 12) + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	backups := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), FileName+".") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}
