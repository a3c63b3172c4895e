package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewDB wraps an opened *sql.DB in a bun handle for the named dialect.
// Supported dialects: "postgres" and "sqlite".
func NewDB(sqldb *sql.DB, dialect string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "pg":
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "", "sqlite", "sqlite3":
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	default:
		return nil, fmt.Errorf("storage: unsupported dialect %q", dialect)
	}
}
