// Package sqlite persists ledger snapshots to SQLite. The in-memory store
// remains authoritative; this repository only restores state at startup and
// rewrites it after each committed mutation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wishfund-ledger/internal/domain/money"
	"github.com/wishfund-ledger/internal/domain/wishlist"
	"github.com/wishfund-ledger/internal/ledger"
	"github.com/wishfund-ledger/internal/platform/persistence"
)

// SnapshotRepository implements ledger.Persister on top of SQLite
type SnapshotRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSnapshotRepository creates a SQLite-backed snapshot persister
func NewSnapshotRepository(logger *slog.Logger, db *persistence.SQLiteDB) ledger.Persister {
	return &SnapshotRepository{
		db:     db.DB(),
		logger: logger,
	}
}

// Load restores the full ledger state ordered by insertion position
func (r *SnapshotRepository) Load(ctx context.Context) (*ledger.Snapshot, error) {
	snap := &ledger.Snapshot{}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, image, description, created_at
		FROM wishlist_items ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item wishlist.Item
		var id, createdAt string
		if err := rows.Scan(&id, &item.Name, &item.Price, &item.Image, &item.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		if item.ID, item.CreatedAt, err = parseIDTime(id, createdAt); err != nil {
			return nil, err
		}
		snap.Items = append(snap.Items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load wishlist items: %w", err)
	}

	savingRows, err := r.db.QueryContext(ctx, `
		SELECT id, wishlist_id, entry_id, amount, note, created_at
		FROM savings ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings: %w", err)
	}
	defer savingRows.Close()
	for savingRows.Next() {
		var saving wishlist.Saving
		var id, wishlistID, entryID, createdAt string
		if err := savingRows.Scan(&id, &wishlistID, &entryID, &saving.Amount, &saving.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan saving: %w", err)
		}
		if saving.ID, saving.CreatedAt, err = parseIDTime(id, createdAt); err != nil {
			return nil, err
		}
		if saving.WishlistID, err = uuid.Parse(wishlistID); err != nil {
			return nil, fmt.Errorf("invalid wishlist id %q: %w", wishlistID, err)
		}
		if saving.EntryID, err = uuid.Parse(entryID); err != nil {
			return nil, fmt.Errorf("invalid entry id %q: %w", entryID, err)
		}
		snap.Savings = append(snap.Savings, &saving)
	}
	if err := savingRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load savings: %w", err)
	}

	entryRows, err := r.db.QueryContext(ctx, `
		SELECT id, type, amount, category, note, date
		FROM money_entries ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load money entries: %w", err)
	}
	defer entryRows.Close()
	for entryRows.Next() {
		var entry money.Entry
		var id, entryType, date string
		if err := entryRows.Scan(&id, &entryType, &entry.Amount, &entry.Category, &entry.Note, &date); err != nil {
			return nil, fmt.Errorf("failed to scan money entry: %w", err)
		}
		if entry.ID, entry.Date, err = parseIDTime(id, date); err != nil {
			return nil, err
		}
		if entry.Type, err = money.ParseType(entryType); err != nil {
			return nil, fmt.Errorf("invalid entry type %q: %w", entryType, err)
		}
		snap.Entries = append(snap.Entries, &entry)
	}
	if err := entryRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load money entries: %w", err)
	}

	r.logger.Info("ledger snapshot loaded",
		"wishlist_items", len(snap.Items),
		"savings", len(snap.Savings),
		"money_entries", len(snap.Entries),
	)

	return snap, nil
}

// Save rewrites the snapshot tables in a single transaction. Datasets are
// small, so a full rewrite is cheaper to reason about than row diffing.
func (r *SnapshotRepository) Save(ctx context.Context, snap *ledger.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"wishlist_items", "savings", "money_entries"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, item := range snap.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO wishlist_items (id, name, price, image, description, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, item.ID.String(), item.Name, item.Price, item.Image, item.Description, formatTime(item.CreatedAt), pos)
		if err != nil {
			return fmt.Errorf("failed to insert wishlist item: %w", err)
		}
	}

	for pos, saving := range snap.Savings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO savings (id, wishlist_id, entry_id, amount, note, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, saving.ID.String(), saving.WishlistID.String(), saving.EntryID.String(), saving.Amount, saving.Note, formatTime(saving.CreatedAt), pos)
		if err != nil {
			return fmt.Errorf("failed to insert saving: %w", err)
		}
	}

	for pos, entry := range snap.Entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO money_entries (id, type, amount, category, note, date, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, entry.ID.String(), string(entry.Type), entry.Amount, entry.Category, entry.Note, formatTime(entry.Date), pos)
		if err != nil {
			return fmt.Errorf("failed to insert money entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseIDTime(id, ts string) (uuid.UUID, time.Time, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("invalid id %q: %w", id, err)
	}
	parsedTime, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("invalid timestamp %q: %w", ts, err)
	}
	return parsedID, parsedTime, nil
}
