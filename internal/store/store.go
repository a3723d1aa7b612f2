// Package store implements persistence over SQLite. SQL is composed with
// goqu's typed expressions and executed through sqlx.
package store

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

var dialect = goqu.Dialect("sqlite3")
