package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/logging"
)

const logURLMaxLen = 60

type historyRepo struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite-backed history repository.
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Record(ctx context.Context, entry *entity.HistoryEntry) error {
	logging.FromContext(ctx).Debug().Str("url", truncate(entry.URL, logURLMaxLen)).Msg("saving history entry")

	visited := entry.LastVisited
	if visited.IsZero() {
		visited = time.Now()
	}
	// Keep the previous title when the new visit has none.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO history (url, title, visit_count, last_visited) VALUES (?, ?, 1, ?)
		 ON CONFLICT(url) DO UPDATE SET
		   visit_count = visit_count + 1,
		   last_visited = excluded.last_visited,
		   title = CASE WHEN excluded.title = '' THEN history.title ELSE excluded.title END`,
		entry.URL, entry.Title, visited.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}
	return nil
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, title, visit_count, last_visited FROM history
		 ORDER BY last_visited DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return scanHistory(rows)
}

// Search matches prefix against the address with and without its scheme
// and a leading "www.". LIKE is case-insensitive for ASCII in SQLite.
func (r *historyRepo) Search(ctx context.Context, prefix string, limit int) ([]*entity.HistoryEntry, error) {
	p := escapeLike(prefix) + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, title, visit_count, last_visited FROM history
		 WHERE url LIKE ?1 ESCAPE '\'
		    OR url LIKE 'https://' || ?1 ESCAPE '\'
		    OR url LIKE 'http://' || ?1 ESCAPE '\'
		    OR url LIKE 'https://www.' || ?1 ESCAPE '\'
		    OR url LIKE 'http://www.' || ?1 ESCAPE '\'
		 ORDER BY visit_count DESC, last_visited DESC, id DESC LIMIT ?2`, p, limit)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	return scanHistory(rows)
}

func scanHistory(rows *sql.Rows) ([]*entity.HistoryEntry, error) {
	defer func() { _ = rows.Close() }()

	entries := make([]*entity.HistoryEntry, 0)
	for rows.Next() {
		var (
			e       entity.HistoryEntry
			visited int64
		)
		if err := rows.Scan(&e.ID, &e.URL, &e.Title, &e.VisitCount, &visited); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.LastVisited = time.UnixMilli(visited)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *historyRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
