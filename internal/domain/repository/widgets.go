package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// NotesRepository persists the notes widget text.
type NotesRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
}

// ClipboardRepository persists the clipboard widget history.
type ClipboardRepository interface {
	List(ctx context.Context) ([]entity.ClipboardEntry, error)
	Save(ctx context.Context, entries []entity.ClipboardEntry) error
}
