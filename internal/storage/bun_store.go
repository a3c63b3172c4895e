package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/identity"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/model"
	"github.com/goliatone/go-translatable/internal/translation"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// BunStore persists base and translation rows through a bun database or
// transaction. Callers wanting an atomic save cycle pass a bun.Tx.
type BunStore struct {
	db     bun.IDB
	logger interfaces.Logger
}

// BunStoreOption configures the store at construction time.
type BunStoreOption func(*BunStore)

// WithLoggerProvider scopes store logging to the storage namespace.
func WithLoggerProvider(provider interfaces.LoggerProvider) BunStoreOption {
	return func(s *BunStore) {
		s.logger = logging.StorageLogger(provider)
	}
}

// NewBunStore constructs a bun-backed store.
func NewBunStore(db bun.IDB, opts ...BunStoreOption) *BunStore {
	s := &BunStore{
		db:     db,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadTranslations reads every translation row owned by the record and
// returns them as clean in-memory records.
func (s *BunStore) LoadTranslations(ctx context.Context, m *model.Model, ownerID uuid.UUID) ([]*translation.Translation, error) {
	var rows []map[string]any
	err := s.db.NewSelect().
		TableExpr("?", bun.Ident(m.TranslationTable)).
		Where("? = ?", bun.Ident(m.ForeignKey), ownerID).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("storage: load %s translations: %w", m.Name, err)
	}

	out := make([]*translation.Translation, 0, len(rows))
	for _, row := range rows {
		id := parseUUID(row["id"])
		locale := asString(row["locale"])
		if locale == "" {
			continue
		}
		values := make(map[string]any, len(m.TranslatedAttributes))
		for _, attr := range m.TranslatedAttributes {
			if value, ok := row[attr]; ok {
				values[attr] = value
			}
		}
		out = append(out, translation.Loaded(id, ownerID, locale, values))
	}
	return out, nil
}

// SaveBase inserts or updates the base row. Updates write only the dirty
// columns.
func (s *BunStore) SaveBase(ctx context.Context, m *model.Model, row *BaseRow) error {
	if !row.Persisted {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		values := make(map[string]any, len(row.Values)+1)
		for field, value := range row.Values {
			values[field] = value
		}
		values["id"] = row.ID
		if _, err := s.db.NewInsert().
			Model(&values).
			TableExpr("?", bun.Ident(m.Table)).
			Exec(ctx); err != nil {
			return &PersistenceError{Model: m.Name, Fields: row.DirtyFields, Err: err}
		}
		row.Persisted = true
		s.logger.Debug("storage.base.insert", "model", m.Name, "id", row.ID.String())
		return nil
	}

	if len(row.DirtyFields) == 0 {
		return nil
	}
	values := make(map[string]any, len(row.DirtyFields))
	for _, field := range row.DirtyFields {
		values[field] = row.Values[field]
	}
	if _, err := s.db.NewUpdate().
		Model(&values).
		TableExpr("?", bun.Ident(m.Table)).
		Where("? = ?", bun.Ident("id"), row.ID).
		Exec(ctx); err != nil {
		return &PersistenceError{Model: m.Name, Fields: row.DirtyFields, Err: err}
	}
	s.logger.Debug("storage.base.update", "model", m.Name, "id", row.ID.String())
	return nil
}

// SaveTranslation inserts the full row for transient translations and
// updates only the dirty content fields for persisted ones.
func (s *BunStore) SaveTranslation(ctx context.Context, m *model.Model, tr *translation.Translation) error {
	if tr.ID == uuid.Nil {
		tr.ID = identity.TranslationUUID(m.Name, tr.OwnerID, tr.Locale)
	}

	if tr.Persisted() {
		dirty := tr.DirtyFields()
		if len(dirty) == 0 {
			return nil
		}
		values := make(map[string]any, len(dirty))
		for _, field := range dirty {
			if value, ok := tr.Get(field); ok {
				values[field] = value
			}
		}
		if _, err := s.db.NewUpdate().
			Model(&values).
			TableExpr("?", bun.Ident(m.TranslationTable)).
			Where("? = ?", bun.Ident("id"), tr.ID).
			Exec(ctx); err != nil {
			return &PersistenceError{Model: m.Name, Locale: tr.Locale, Fields: dirty, Err: err}
		}
		s.logger.Debug("storage.translation.update", "model", m.Name, "locale", tr.Locale)
		return nil
	}

	values := tr.Values()
	values["id"] = tr.ID
	values[m.ForeignKey] = tr.OwnerID
	values["locale"] = tr.Locale
	if _, err := s.db.NewInsert().
		Model(&values).
		TableExpr("?", bun.Ident(m.TranslationTable)).
		Exec(ctx); err != nil {
		return &PersistenceError{Model: m.Name, Locale: tr.Locale, Fields: tr.DirtyFields(), Err: err}
	}
	s.logger.Debug("storage.translation.insert", "model", m.Name, "locale", tr.Locale)
	return nil
}

func parseUUID(value any) uuid.UUID {
	switch v := value.(type) {
	case uuid.UUID:
		return v
	case string:
		if id, err := uuid.Parse(v); err == nil {
			return id
		}
	case []byte:
		if id, err := uuid.ParseBytes(v); err == nil {
			return id
		}
	}
	return uuid.Nil
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
