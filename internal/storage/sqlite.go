// Package storage provides the local persistence layer: the override audit
// trail and the saved session blob. The durable claim store lives on the
// backend; nothing here is authoritative for claim state.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"database/sql"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the AuditLog and SessionStore interfaces using
// SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Migrate brings the schema to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	return runMigrations(ctx, s.db)
}

// Close releases the database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}
