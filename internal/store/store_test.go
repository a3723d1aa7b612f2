package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openTestDB opens a per-test in-memory database with foreign keys enforced
// and creates the schema manually.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	d, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	_, err = d.Exec(`
		CREATE TABLE items (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			image TEXT NOT NULL
		);

		CREATE TABLE points (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			image     TEXT NOT NULL,
			name      TEXT NOT NULL,
			email     TEXT NOT NULL,
			whatsapp  TEXT NOT NULL,
			latitude  REAL NOT NULL,
			longitude REAL NOT NULL,
			city      TEXT NOT NULL,
			uf        TEXT NOT NULL
		);

		CREATE TABLE point_items (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			point_id INTEGER NOT NULL REFERENCES points(id) ON DELETE CASCADE,
			item_id  INTEGER NOT NULL REFERENCES items(id)
		);
	`)
	require.NoError(t, err)

	return d
}

// seedItems inserts items and returns their generated ids in order.
func seedItems(t *testing.T, d *sqlx.DB, titles ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		res, err := d.Exec(`INSERT INTO items (title, image) VALUES (?, ?)`, title, strings.ToLower(title)+".svg")
		require.NoError(t, err)
		id, err := res.LastInsertId()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}
