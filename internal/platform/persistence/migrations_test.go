package persistence

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	t.Run("EmptyDatabasePath", func(t *testing.T) {
		err := RunMigrations("")
		assert.Error(t, err)
		assert.EqualError(t, err, "database path cannot be empty")
	})

	t.Run("CreatesSnapshotSchema", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "snapshot.db")
		require.NoError(t, RunMigrations(dbPath))

		db, err := sql.Open("sqlite", dbPath)
		require.NoError(t, err)
		defer db.Close()

		for _, table := range []string{"wishlist_items", "savings", "money_entries"} {
			var name string
			err := db.QueryRow(
				"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
			).Scan(&name)
			assert.NoError(t, err, "expected table %s to exist", table)
		}
	})

	t.Run("IdempotentOnSecondRun", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "snapshot.db")
		require.NoError(t, RunMigrations(dbPath))
		assert.NoError(t, RunMigrations(dbPath))
	})
}
