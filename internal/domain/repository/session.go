package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// SessionRepository persists the saved-sessions list, newest last.
type SessionRepository interface {
	List(ctx context.Context) ([]entity.SessionSnapshot, error)
	Append(ctx context.Context, snapshot entity.SessionSnapshot) error

	// Delete removes the snapshot at index. Out of range indexes are an error.
	Delete(ctx context.Context, index int) error
	Clear(ctx context.Context) error

	// LoadLast returns the autosaved tab set of the previous run.
	// found is false when nothing was saved.
	LoadLast(ctx context.Context) (snapshot entity.SessionSnapshot, found bool, err error)
	SaveLast(ctx context.Context, snapshot entity.SessionSnapshot) error
}
