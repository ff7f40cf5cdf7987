package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_SizeAndRemove(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "profile")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Default"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Default", "Cookies"), make([]byte, 100), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Local State"), make([]byte, 28), 0o600))

	a := New()
	exists, err := a.Exists(ctx, dir)
	require.NoError(t, err)
	assert.True(t, exists)

	isDir, err := a.IsDirectory(ctx, dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	size, err := a.GetSize(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, int64(128), size)

	require.NoError(t, a.RemoveAll(ctx, dir))
	exists, err = a.Exists(ctx, dir)
	require.NoError(t, err)
	assert.False(t, exists)

	size, err = a.GetSize(ctx, dir)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestAdapter_MkdirAndWrite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "a", "b")
	a := New()

	require.NoError(t, a.MkdirAll(ctx, dir))
	require.NoError(t, a.MkdirAll(ctx, dir), "existing directory is fine")

	path := filepath.Join(dir, "shot.png")
	require.NoError(t, a.WriteFile(ctx, path, []byte("one")))
	require.NoError(t, a.WriteFile(ctx, path, []byte("2")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), data)
}
