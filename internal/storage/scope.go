package storage

import (
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/model"
)

// WhereTranslated narrows q to base records having a translation where field
// equals value, in any locale. The predicate is appended with AND, composing
// with whatever conditions q already carries, and loads nothing.
func WhereTranslated(q *bun.SelectQuery, m *model.Model, field string, value any) *bun.SelectQuery {
	return q.Where(
		"EXISTS (SELECT 1 FROM ? WHERE ?.? = ?.? AND ?.? = ?)",
		bun.Ident(m.TranslationTable),
		bun.Ident(m.TranslationTable), bun.Ident(m.ForeignKey),
		bun.Ident(m.Table), bun.Ident("id"),
		bun.Ident(m.TranslationTable), bun.Ident(field),
		value,
	)
}

// WhereTranslatedLocale behaves like WhereTranslated but additionally
// constrains the matching translation's locale.
func WhereTranslatedLocale(q *bun.SelectQuery, m *model.Model, field string, value any, locale string) *bun.SelectQuery {
	return q.Where(
		"EXISTS (SELECT 1 FROM ? WHERE ?.? = ?.? AND ?.? = ? AND ?.? = ?)",
		bun.Ident(m.TranslationTable),
		bun.Ident(m.TranslationTable), bun.Ident(m.ForeignKey),
		bun.Ident(m.Table), bun.Ident("id"),
		bun.Ident(m.TranslationTable), bun.Ident(field),
		value,
		bun.Ident(m.TranslationTable), bun.Ident("locale"),
		locale,
	)
}
