package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "ecopontos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, database.Close()) })

	for _, table := range []string{"items", "points", "point_items"} {
		var name string
		err := database.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		assert.NoError(t, err, "table %s should exist", table)
	}

	// The item seed migration loads the six standard categories.
	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM items`))
	assert.Equal(t, 6, count)
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "ecopontos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	var enabled int
	require.NoError(t, database.Get(&enabled, `PRAGMA foreign_keys`))
	assert.Equal(t, 1, enabled)

	_, err = database.Exec(`INSERT INTO point_items (point_id, item_id) VALUES (9999, 1)`)
	assert.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecopontos.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	var count int
	require.NoError(t, second.Get(&count, `SELECT COUNT(*) FROM items`))
	assert.Equal(t, 6, count, "seed must not be reapplied")
}
