package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// ErrNotDirectory is returned when a purge target is a plain file.
var ErrNotDirectory = errors.New("not a directory")

// PurgeDataUseCase removes on-disk browser data while no browser runs.
type PurgeDataUseCase struct {
	fs port.FileSystem
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(fs port.FileSystem) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs}
}

// Inspect reports whether the target exists and how much space it uses.
func (uc *PurgeDataUseCase) Inspect(ctx context.Context, kind entity.PurgeTargetType, path string) (entity.PurgeTarget, error) {
	target := entity.PurgeTarget{Type: kind, Path: path}
	if path == "" {
		return target, nil
	}

	exists, err := uc.fs.Exists(ctx, path)
	if err != nil {
		return target, fmt.Errorf("stat %s: %w", path, err)
	}
	if !exists {
		return target, nil
	}
	isDir, err := uc.fs.IsDirectory(ctx, path)
	if err != nil {
		return target, fmt.Errorf("stat %s: %w", path, err)
	}
	if !isDir {
		return target, fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	target.Exists = true
	size, err := uc.fs.GetSize(ctx, path)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("failed to measure purge target")
	}
	target.Size = size
	return target, nil
}

// Purge removes the target directory. Missing targets are a no-op.
func (uc *PurgeDataUseCase) Purge(ctx context.Context, target entity.PurgeTarget) error {
	if !target.Exists {
		return nil
	}
	if err := uc.fs.RemoveAll(ctx, target.Path); err != nil {
		return fmt.Errorf("remove %s: %w", target.Type, err)
	}
	logging.FromContext(ctx).Info().
		Str("target", target.Type.String()).
		Str("path", target.Path).
		Int64("bytes", target.Size).
		Msg("purged")
	return nil
}
