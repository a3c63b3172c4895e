package translatable

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/storage"
)

// NewBunStore constructs a bun-backed store. Pass a bun.Tx to make one save
// cycle atomic across both phases.
func NewBunStore(db bun.IDB) *storage.BunStore {
	return storage.NewBunStore(db)
}

// NewDB wraps an opened *sql.DB in a bun handle for the named dialect
// ("postgres" or "sqlite").
func NewDB(sqldb *sql.DB, dialect string) (*bun.DB, error) {
	return storage.NewDB(sqldb, dialect)
}

// EnsureTranslationSchema creates the model's translation table and unique
// (foreign key, locale) index when missing.
func EnsureTranslationSchema(ctx context.Context, db bun.IDB, m *Model) error {
	return storage.EnsureTranslationSchema(ctx, db, m)
}

// WhereTranslated narrows q to base records having a translation where
// field equals value, in any locale. Composes with existing predicates by
// AND and loads nothing.
func WhereTranslated(q *bun.SelectQuery, m *Model, field string, value any) *bun.SelectQuery {
	return storage.WhereTranslated(q, m, field, value)
}

// WhereTranslatedLocale behaves like WhereTranslated but additionally
// constrains the matching translation's locale.
func WhereTranslatedLocale(q *bun.SelectQuery, m *Model, field string, value any, locale string) *bun.SelectQuery {
	return storage.WhereTranslatedLocale(q, m, field, value, locale)
}
