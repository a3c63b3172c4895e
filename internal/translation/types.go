package translation

import (
	"maps"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Translation is one locale's values for the translated fields of a single
// owning record. Records are transient until the owning save cycle persists
// them; content writes mark fields dirty, the locale stamp itself never does.
type Translation struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Locale  string

	values map[string]any
	dirty  map[string]struct{}

	persisted bool
}

// NewTranslation constructs a transient translation stamped with the given
// locale.
func NewTranslation(locale string) *Translation {
	return &Translation{
		Locale: strings.TrimSpace(locale),
		values: map[string]any{},
		dirty:  map[string]struct{}{},
	}
}

// Loaded reconstructs a translation from persisted storage values. The
// returned record is clean.
func Loaded(id, ownerID uuid.UUID, locale string, values map[string]any) *Translation {
	tr := NewTranslation(locale)
	tr.ID = id
	tr.OwnerID = ownerID
	tr.persisted = true
	maps.Copy(tr.values, values)
	return tr
}

// Get returns the stored value for field and whether it is set.
func (t *Translation) Get(field string) (any, bool) {
	if t == nil {
		return nil, false
	}
	value, ok := t.values[field]
	return value, ok
}

// Set stores value under field and marks the field dirty.
func (t *Translation) Set(field string, value any) {
	if t == nil {
		return
	}
	t.values[field] = value
	t.dirty[field] = struct{}{}
}

// Values returns a copy of the stored field values.
func (t *Translation) Values() map[string]any {
	if t == nil {
		return nil
	}
	out := make(map[string]any, len(t.values))
	maps.Copy(out, t.values)
	return out
}

// IsDirty reports whether any content field changed since load or the last
// save.
func (t *Translation) IsDirty() bool {
	return t != nil && len(t.dirty) > 0
}

// DirtyFields lists the changed content fields in stable order.
func (t *Translation) DirtyFields() []string {
	if t == nil || len(t.dirty) == 0 {
		return nil
	}
	fields := make([]string, 0, len(t.dirty))
	for field := range t.dirty {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Persisted reports whether the record has a storage row backing it.
func (t *Translation) Persisted() bool {
	return t != nil && t.persisted
}

// MarkSaved clears dirty state after a successful persist.
func (t *Translation) MarkSaved() {
	if t == nil {
		return
	}
	t.persisted = true
	t.dirty = map[string]struct{}{}
}

// StampOwner records the owning record's key prior to persistence.
func (t *Translation) StampOwner(ownerID uuid.UUID) {
	if t == nil {
		return
	}
	t.OwnerID = ownerID
}

// LocaleEquals compares locale codes case-insensitively.
func LocaleEquals(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
