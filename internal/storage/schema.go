package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/model"
)

// EnsureTranslationSchema creates the translation table and the unique
// (foreign key, locale) index for the model when missing. The base table is
// owned by the host application and is not touched.
func EnsureTranslationSchema(ctx context.Context, db bun.IDB, m *model.Model) error {
	var cols strings.Builder
	args := []any{bun.Ident(m.TranslationTable), bun.Ident(m.ForeignKey)}
	cols.WriteString("CREATE TABLE IF NOT EXISTS ? (id VARCHAR(36) PRIMARY KEY, ? VARCHAR(36) NOT NULL, locale VARCHAR(16) NOT NULL")
	for _, attr := range m.TranslatedAttributes {
		cols.WriteString(", ? TEXT")
		args = append(args, bun.Ident(attr))
	}
	cols.WriteString(")")

	if _, err := db.ExecContext(ctx, cols.String(), args...); err != nil {
		return fmt.Errorf("storage: create %s: %w", m.TranslationTable, err)
	}

	indexName := fmt.Sprintf("idx_%s_owner_locale", m.TranslationTable)
	if _, err := db.ExecContext(ctx,
		"CREATE UNIQUE INDEX IF NOT EXISTS ? ON ? (?, locale)",
		bun.Ident(indexName), bun.Ident(m.TranslationTable), bun.Ident(m.ForeignKey),
	); err != nil {
		return fmt.Errorf("storage: create index %s: %w", indexName, err)
	}
	return nil
}
