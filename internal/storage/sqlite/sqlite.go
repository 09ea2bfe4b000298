// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/checkout"
	"github.com/mmynk/restauflow/internal/storage"
)

// Ensure SQLiteStore implements storage.Store, catalog.Provider and checkout.Sink
var (
	_ storage.Store    = (*SQLiteStore)(nil)
	_ catalog.Provider = (*SQLiteStore)(nil)
	_ checkout.Sink    = (*SQLiteStore)(nil)
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are a per-connection setting, so they go in the DSN
	// to apply to every connection in the pool.
	dsn := "file:" + dbPath + "?" + url.Values{
		"_pragma": []string{"foreign_keys(1)", "busy_timeout(5000)"},
	}.Encode()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SeedMenu copies every item of src into the menu when the menu is empty.
// It reports whether anything was written.
func (s *SQLiteStore) SeedMenu(ctx context.Context, src catalog.Provider) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	items, err := src.ListItems(ctx, catalog.Filter{})
	if err != nil {
		return false, fmt.Errorf("failed to read seed menu: %w", err)
	}
	for _, item := range items {
		if err := s.SaveMenuItem(ctx, item); err != nil {
			return false, err
		}
	}
	slog.Info("Seeded menu", "items", len(items))
	return true, nil
}
