package storage

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/identity"
	"github.com/goliatone/go-translatable/internal/model"
	"github.com/goliatone/go-translatable/internal/translation"
)

type memoryTranslationRow struct {
	id      uuid.UUID
	ownerID uuid.UUID
	locale  string
	values  map[string]any
}

// MemoryStore is an in-memory Store implementation for scaffolding and
// tests.
type MemoryStore struct {
	mu           sync.RWMutex
	bases        map[string]map[uuid.UUID]map[string]any
	translations map[string][]*memoryTranslationRow
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bases:        make(map[string]map[uuid.UUID]map[string]any),
		translations: make(map[string][]*memoryTranslationRow),
	}
}

// LoadTranslations returns clean copies of the translations owned by the
// record.
func (s *MemoryStore) LoadTranslations(_ context.Context, m *model.Model, ownerID uuid.UUID) ([]*translation.Translation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*translation.Translation
	for _, row := range s.translations[m.Name] {
		if row.ownerID != ownerID {
			continue
		}
		values := make(map[string]any, len(row.values))
		maps.Copy(values, row.values)
		out = append(out, translation.Loaded(row.id, row.ownerID, row.locale, values))
	}
	return out, nil
}

// SaveBase inserts or updates the base row, assigning a key on insert.
func (s *MemoryStore) SaveBase(_ context.Context, m *model.Model, row *BaseRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.bases[m.Name]
	if records == nil {
		records = make(map[uuid.UUID]map[string]any)
		s.bases[m.Name] = records
	}

	if !row.Persisted {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		values := make(map[string]any, len(row.Values))
		maps.Copy(values, row.Values)
		records[row.ID] = values
		row.Persisted = true
		return nil
	}

	stored, ok := records[row.ID]
	if !ok {
		return &NotFoundError{Resource: m.Name, Key: row.ID.String()}
	}
	for _, field := range row.DirtyFields {
		stored[field] = row.Values[field]
	}
	return nil
}

// SaveTranslation inserts or updates one translation row.
func (s *MemoryStore) SaveTranslation(_ context.Context, m *model.Model, tr *translation.Translation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr.ID == uuid.Nil {
		tr.ID = identity.TranslationUUID(m.Name, tr.OwnerID, tr.Locale)
	}

	rows := s.translations[m.Name]
	for _, row := range rows {
		if row.id == tr.ID || (row.ownerID == tr.OwnerID && translation.LocaleEquals(row.locale, tr.Locale)) {
			for _, field := range tr.DirtyFields() {
				if value, ok := tr.Get(field); ok {
					row.values[field] = value
				}
			}
			return nil
		}
	}

	s.translations[m.Name] = append(rows, &memoryTranslationRow{
		id:      tr.ID,
		ownerID: tr.OwnerID,
		locale:  tr.Locale,
		values:  tr.Values(),
	})
	return nil
}

// BaseValues returns a copy of the stored base row, primarily for test
// assertions.
func (s *MemoryStore) BaseValues(m *model.Model, id uuid.UUID) (map[string]any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.bases[m.Name][id]
	if !ok {
		return nil, false
	}
	values := make(map[string]any, len(stored))
	maps.Copy(values, stored)
	return values, true
}

// TranslationCount reports how many translation rows exist for the model.
func (s *MemoryStore) TranslationCount(m *model.Model) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.translations[m.Name])
}
