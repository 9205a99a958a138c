// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"library-backend/internal/platform/db"
)

// Open returns an in-memory database with the full schema applied. The pool
// is pinned to one connection so every query sees the same memory database.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	conn.SetMaxOpenConns(1)
	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}
