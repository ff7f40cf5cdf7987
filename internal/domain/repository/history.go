package repository

import (
	"context"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// HistoryRepository defines operations for browsing history persistence.
type HistoryRepository interface {
	// Record upserts an entry, bumping the visit count for known URLs.
	Record(ctx context.Context, entry *entity.HistoryEntry) error

	// Recent retrieves the most recently visited entries.
	Recent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error)

	// Search returns entries whose address, ignoring scheme and "www.",
	// starts with prefix. Most visited first.
	Search(ctx context.Context, prefix string, limit int) ([]*entity.HistoryEntry, error)

	// DeleteAll removes all history entries.
	DeleteAll(ctx context.Context) error
}
