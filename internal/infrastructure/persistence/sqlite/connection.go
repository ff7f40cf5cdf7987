// Package sqlite stores tabshell's history, sessions, settings and widget
// data in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // registers "sqlite3"
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled SQLite build

	"github.com/bnema/tabshell/internal/logging"
)

const dbDirPerm = 0o750

// Applied by the driver to every new connection.
var pragmas = []string{
	"journal_mode(wal)",
	"synchronous(normal)",
	"temp_store(memory)",
	"busy_timeout(5000)",
	"foreign_keys(on)",
}

// dsn builds a file: URI carrying the pragmas.
func dsn(path string) string {
	q := url.Values{}
	for _, p := range pragmas {
		q.Add("_pragma", p)
	}
	u := url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: q.Encode()}
	return u.String()
}

// NewConnection opens (creating if needed) the database at dbPath and
// migrates it. The pool holds one connection: SQLite has a single writer
// and the UI never needs more.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Info().Str("path", dbPath).Msg("database ready")
	return db, nil
}

// Close closes db; nil is allowed.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
