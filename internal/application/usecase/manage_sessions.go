package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

// ManageSessionsUseCase backs the sessions widget: explicit snapshots of the
// open tab addresses that can later be reopened.
type ManageSessionsUseCase struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewManageSessionsUseCase creates a new sessions use case.
func NewManageSessionsUseCase(repo repository.SessionRepository) *ManageSessionsUseCase {
	return &ManageSessionsUseCase{repo: repo, now: time.Now}
}

// Save stores a snapshot of urls.
func (uc *ManageSessionsUseCase) Save(ctx context.Context, urls []string) (entity.SessionSnapshot, error) {
	snapshot := entity.NewSessionSnapshot(urls, uc.now())
	if err := snapshot.Validate(); err != nil {
		return entity.SessionSnapshot{}, err
	}
	if err := uc.repo.Append(ctx, snapshot); err != nil {
		return entity.SessionSnapshot{}, fmt.Errorf("save session: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int("tab_count", snapshot.TabCount).
		Msg("session saved")
	return snapshot, nil
}

// List returns saved sessions, newest first.
func (uc *ManageSessionsUseCase) List(ctx context.Context) ([]entity.SessionSnapshot, error) {
	stored, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]entity.SessionSnapshot, len(stored))
	for i, s := range stored {
		out[len(stored)-1-i] = s
	}
	return out, nil
}

// Get returns the session at a List index.
func (uc *ManageSessionsUseCase) Get(ctx context.Context, index int) (entity.SessionSnapshot, error) {
	sessions, err := uc.List(ctx)
	if err != nil {
		return entity.SessionSnapshot{}, err
	}
	if index < 0 || index >= len(sessions) {
		return entity.SessionSnapshot{}, fmt.Errorf("session %d: %w", index, ErrSessionNotFound)
	}
	return sessions[index], nil
}

// Delete removes the session at a List index.
func (uc *ManageSessionsUseCase) Delete(ctx context.Context, index int) error {
	stored, err := uc.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if index < 0 || index >= len(stored) {
		return fmt.Errorf("session %d: %w", index, ErrSessionNotFound)
	}
	// List is reversed relative to storage.
	if err := uc.repo.Delete(ctx, len(stored)-1-index); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	logging.FromContext(ctx).Info().Int("index", index).Msg("session deleted")
	return nil
}

// SaveLast replaces the autosaved tab set used by --restore.
// An empty set is not written so a crash right after startup keeps the
// previous run's tabs.
func (uc *ManageSessionsUseCase) SaveLast(ctx context.Context, urls []string) error {
	snapshot := entity.NewSessionSnapshot(urls, uc.now())
	if snapshot.Validate() != nil {
		return nil
	}
	if err := uc.repo.SaveLast(ctx, snapshot); err != nil {
		return fmt.Errorf("save last session: %w", err)
	}
	logging.FromContext(ctx).Debug().Int("tab_count", snapshot.TabCount).Msg("last session saved")
	return nil
}

// Last returns the autosaved tab set of the previous run.
func (uc *ManageSessionsUseCase) Last(ctx context.Context) (entity.SessionSnapshot, bool, error) {
	snapshot, found, err := uc.repo.LoadLast(ctx)
	if err != nil {
		return entity.SessionSnapshot{}, false, fmt.Errorf("load last session: %w", err)
	}
	return snapshot, found, nil
}

// Clear removes every saved session. The autosaved last session is kept.
func (uc *ManageSessionsUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("saved sessions cleared")
	return nil
}
