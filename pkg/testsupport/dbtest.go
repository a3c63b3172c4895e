// Package testsupport carries shared helpers for integration tests that need
// a real SQL backend.
package testsupport

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var dbSeq atomic.Int64

// NewSQLiteMemoryDB opens an in-memory sqlite database private to the caller.
// Each call gets its own database so tests do not see each other's tables.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps the shared-cache memory database alive for
	// the test's lifetime.
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewBunSQLite wires an in-memory sqlite database into bun and registers
// cleanup with the test.
func NewBunSQLite(t *testing.T) *bun.DB {
	t.Helper()
	sqlDB, err := NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
