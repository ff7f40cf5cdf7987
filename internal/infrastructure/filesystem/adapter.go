// Package filesystem implements port.FileSystem on the local disk.
package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/tabshell/internal/application/port"
)

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, err
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// GetSize sums regular file sizes below path. A missing path has size zero.
// Walking stops early when ctx is cancelled.
func (a *Adapter) GetSize(ctx context.Context, path string) (int64, error) {
	var size int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	return size, err
}

func (a *Adapter) RemoveAll(_ context.Context, path string) error {
	return os.RemoveAll(path)
}

func (a *Adapter) MkdirAll(_ context.Context, path string) error {
	return os.MkdirAll(path, 0o755)
}

func (a *Adapter) WriteFile(_ context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

var _ port.FileSystem = (*Adapter)(nil)
