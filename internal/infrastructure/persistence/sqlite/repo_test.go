package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) (context.Context, *sql.DB) {
	t.Helper()
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "tabshell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return ctx, db
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	assert.Error(t, err)
}

func TestNewConnection_AppliesPragmas(t *testing.T) {
	ctx, db := openTestDB(t)

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestNewConnection_MigrationsIdempotent(t *testing.T) {
	ctx, db := openTestDB(t)

	v1, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	require.NoError(t, sqlite.RunMigrations(ctx, db))
	v2, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Positive(t, v1)
}

func TestSettingsRepository(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewSettingsRepository(db)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)

	custom := entity.DefaultSettings()
	custom.Theme = entity.ThemeDark
	custom.DoNotTrack = true
	custom.DownloadLocation = "/tmp/dl"
	require.NoError(t, repo.Save(ctx, custom))

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestSettingsRepository_CorruptRecordYieldsDefaults(t *testing.T) {
	ctx, db := openTestDB(t)
	_, err := db.ExecContext(ctx, `INSERT INTO kv_store (key, value, updated_at) VALUES ('settings', '{not json', 0)`)
	require.NoError(t, err)

	got, err := sqlite.NewSettingsRepository(db).Load(ctx)
	require.Error(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)
}

func TestSettingsRepository_PartialRecordKeepsDefaults(t *testing.T) {
	ctx, db := openTestDB(t)
	_, err := db.ExecContext(ctx, `INSERT INTO kv_store (key, value, updated_at) VALUES ('settings', '{"theme":"light","unknown":1}', 0)`)
	require.NoError(t, err)

	got, err := sqlite.NewSettingsRepository(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, got.Theme)
	assert.True(t, got.ShowHomeButton)
	assert.True(t, got.HardwareAcceleration)
}

func TestSessionRepository(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewSessionRepository(db)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, entity.NewSessionSnapshot([]string{"https://a.example"}, at)))
	require.NoError(t, repo.Append(ctx, entity.NewSessionSnapshot([]string{"https://b.example", "https://c.example"}, at.Add(time.Hour))))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[1].TabCount)
	assert.True(t, list[0].Date.Equal(at))

	assert.ErrorIs(t, repo.Append(ctx, entity.SessionSnapshot{}), entity.ErrInvalidSnapshot)
	assert.Error(t, repo.Delete(ctx, 7))

	require.NoError(t, repo.Delete(ctx, 0))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, list[0].URLs)

	require.NoError(t, repo.Clear(ctx))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionRepository_StoredLayout(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewSessionRepository(db)
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, entity.NewSessionSnapshot([]string{"https://a.example"}, at)))

	var raw string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = 'sessions'`).Scan(&raw))
	assert.JSONEq(t, `[{"date":"2026-05-01T12:00:00Z","tabCount":1,"urls":["https://a.example"]}]`, raw)
}

func TestSessionRepository_LastSession(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewSessionRepository(db)

	_, found, err := repo.LoadLast(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	snap := entity.NewSessionSnapshot([]string{"https://a.example", "https://b.example"}, time.Now())
	require.NoError(t, repo.SaveLast(ctx, snap))

	got, found, err := repo.LoadLast(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap.URLs, got.URLs)

	// The autosave never shows up among saved sessions.
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotesRepository(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewNotesRepository(db)

	text, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, repo.Save(ctx, "line one\nline two"))
	require.NoError(t, repo.Save(ctx, "line three"))
	text, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "line three", text)
}

func TestClipboardRepository_CapsEntries(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewClipboardRepository(db)

	var entries []entity.ClipboardEntry
	for i := 0; i < entity.MaxClipboardEntries+5; i++ {
		entries = append(entries, entity.ClipboardEntry{Text: string(rune('a' + i%26)), CopiedAt: time.Now()})
	}
	require.NoError(t, repo.Save(ctx, entries))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, entity.MaxClipboardEntries)
}

func TestHistoryRepository(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewHistoryRepository(db)

	base := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Record(ctx, &entity.HistoryEntry{URL: "https://a.example", Title: "A", LastVisited: base}))
	require.NoError(t, repo.Record(ctx, &entity.HistoryEntry{URL: "https://b.example", Title: "B", LastVisited: base.Add(time.Minute)}))
	require.NoError(t, repo.Record(ctx, &entity.HistoryEntry{URL: "https://a.example", LastVisited: base.Add(2 * time.Minute)}))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "https://a.example", recent[0].URL)
	assert.Equal(t, "A", recent[0].Title)
	assert.Equal(t, int64(2), recent[0].VisitCount)

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, repo.DeleteAll(ctx))
	recent, err = repo.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestHistoryRepository_Search(t *testing.T) {
	ctx, db := openTestDB(t)
	repo := sqlite.NewHistoryRepository(db)

	for _, u := range []string{
		"https://www.example.com/",
		"http://example.org/a_b",
		"https://exam%ple.net/",
		"https://other.example/",
	} {
		require.NoError(t, repo.Record(ctx, entity.NewHistoryEntry(u, "")))
	}
	require.NoError(t, repo.Record(ctx, entity.NewHistoryEntry("http://example.org/a_b", "")))

	found, err := repo.Search(ctx, "EXAMPLE", 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "http://example.org/a_b", found[0].URL, "most visited first")
	assert.Equal(t, "https://www.example.com/", found[1].URL)

	// LIKE wildcards in the prefix are literal.
	found, err = repo.Search(ctx, "exam%", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "https://exam%ple.net/", found[0].URL)

	found, err = repo.Search(ctx, "example.org/a_", 10)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.Search(ctx, "https://other", 10)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
