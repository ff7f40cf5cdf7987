package sqlite

import (
	"context"
	"database/sql"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

type notesRepo struct {
	kv kvStore
}

// NewNotesRepository creates a new SQLite-backed notes repository.
func NewNotesRepository(db *sql.DB) repository.NotesRepository {
	return &notesRepo{kv: kvStore{db: db}}
}

func (r *notesRepo) Load(ctx context.Context) (string, error) {
	text, _, err := r.kv.get(ctx, keyNotes)
	return text, err
}

func (r *notesRepo) Save(ctx context.Context, text string) error {
	return r.kv.put(ctx, keyNotes, text)
}

type clipboardRepo struct {
	kv kvStore
}

// NewClipboardRepository creates a new SQLite-backed clipboard history repository.
func NewClipboardRepository(db *sql.DB) repository.ClipboardRepository {
	return &clipboardRepo{kv: kvStore{db: db}}
}

func (r *clipboardRepo) List(ctx context.Context) ([]entity.ClipboardEntry, error) {
	entries := []entity.ClipboardEntry{}
	if _, err := r.kv.getJSON(ctx, keyClipboard, &entries); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("clipboard history unreadable, starting empty")
		return []entity.ClipboardEntry{}, nil
	}
	return entries, nil
}

func (r *clipboardRepo) Save(ctx context.Context, entries []entity.ClipboardEntry) error {
	if len(entries) > entity.MaxClipboardEntries {
		entries = entries[:entity.MaxClipboardEntries]
	}
	if entries == nil {
		entries = []entity.ClipboardEntry{}
	}
	return r.kv.putJSON(ctx, keyClipboard, entries)
}
