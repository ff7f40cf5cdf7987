package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

type sessionRepo struct {
	kv kvStore
}

// NewSessionRepository creates a new SQLite-backed saved-sessions repository.
// The list is stored as one JSON array.
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepo{kv: kvStore{db: db}}
}

func (r *sessionRepo) List(ctx context.Context) ([]entity.SessionSnapshot, error) {
	sessions := []entity.SessionSnapshot{}
	if _, err := r.kv.getJSON(ctx, keySessions, &sessions); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("saved sessions unreadable, starting empty")
		return []entity.SessionSnapshot{}, nil
	}
	return sessions, nil
}

func (r *sessionRepo) Append(ctx context.Context, snapshot entity.SessionSnapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	sessions, err := r.List(ctx)
	if err != nil {
		return err
	}
	sessions = append(sessions, snapshot)
	return r.kv.putJSON(ctx, keySessions, sessions)
}

func (r *sessionRepo) Delete(ctx context.Context, index int) error {
	sessions, err := r.List(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(sessions) {
		return fmt.Errorf("session index %d out of range (have %d)", index, len(sessions))
	}
	sessions = append(sessions[:index], sessions[index+1:]...)
	return r.kv.putJSON(ctx, keySessions, sessions)
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	return r.kv.putJSON(ctx, keySessions, []entity.SessionSnapshot{})
}

func (r *sessionRepo) LoadLast(ctx context.Context) (entity.SessionSnapshot, bool, error) {
	var snapshot entity.SessionSnapshot
	found, err := r.kv.getJSON(ctx, keyLastTabs, &snapshot)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("last session unreadable, ignoring")
		return entity.SessionSnapshot{}, false, nil
	}
	return snapshot, found && snapshot.Validate() == nil, nil
}

func (r *sessionRepo) SaveLast(ctx context.Context, snapshot entity.SessionSnapshot) error {
	return r.kv.putJSON(ctx, keyLastTabs, snapshot)
}
