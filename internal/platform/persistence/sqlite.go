package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wishfund-ledger/internal/config"

	_ "modernc.org/sqlite" // database/sql driver
)

// SQLiteDB wraps the snapshot database connection
type SQLiteDB struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteDB opens (creating if necessary) the snapshot database and brings
// its schema up to date
func NewSQLiteDB(ctx context.Context, logger *slog.Logger, cfg *config.StorageConfig) (*SQLiteDB, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// The ledger service serializes writes; a single connection avoids
	// SQLITE_BUSY under the driver
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if err := RunMigrations(cfg.SQLitePath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to SQLite", "path", cfg.SQLitePath)

	return &SQLiteDB{
		db:     db,
		logger: logger,
	}, nil
}

// DB exposes the underlying connection
func (s *SQLiteDB) DB() *sql.DB {
	return s.db
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}
	s.logger.Info("Closed SQLite connection")
	return nil
}
