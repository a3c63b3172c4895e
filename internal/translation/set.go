package translation

import (
	"context"
	"strings"
)

// Loader supplies the persisted translations for one owning record.
type Loader func(ctx context.Context) ([]*Translation, error)

// Set is the ordered collection of translations loaded for one owning
// record. At most one translation exists per locale. Sets are mutated in
// place and are not safe for unsynchronized concurrent use.
type Set struct {
	records []*Translation
	loaded  bool
}

// NewSet builds a set from already-materialized translations, typically for
// a new record with nothing persisted yet.
func NewSet(records ...*Translation) *Set {
	s := &Set{loaded: true}
	for _, tr := range records {
		// Seeding skips duplicate-locale entries rather than guessing which
		// row wins; persisted data enforces uniqueness at the storage layer.
		if tr == nil || s.Find(tr.Locale) != nil {
			continue
		}
		s.records = append(s.records, tr)
	}
	return s
}

// NewLazySet builds an empty set that loads from storage on the first
// EnsureLoaded call.
func NewLazySet() *Set {
	return &Set{}
}

// EnsureLoaded populates the set from the loader exactly once. Translations
// appended before the first load are kept ahead of loaded rows for locales
// they already cover.
func (s *Set) EnsureLoaded(ctx context.Context, load Loader) error {
	if s.loaded || load == nil {
		s.loaded = true
		return nil
	}
	loaded, err := load(ctx)
	if err != nil {
		return err
	}
	for _, tr := range loaded {
		if tr == nil || s.Find(tr.Locale) != nil {
			continue
		}
		s.records = append(s.records, tr)
	}
	s.loaded = true
	return nil
}

// Loaded reports whether the set has been populated from storage.
func (s *Set) Loaded() bool {
	return s != nil && s.loaded
}

// Find returns the first translation matching locale, or nil.
func (s *Set) Find(locale string) *Translation {
	if s == nil {
		return nil
	}
	for _, tr := range s.records {
		if tr != nil && LocaleEquals(tr.Locale, locale) {
			return tr
		}
	}
	return nil
}

// GetOrCreate returns the existing translation for locale or appends a new
// transient one stamped with it. The new record is not persisted until the
// owning save cycle runs.
func (s *Set) GetOrCreate(locale string) (*Translation, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, ErrLocaleRequired
	}
	if existing := s.Find(locale); existing != nil {
		return existing, nil
	}
	tr := NewTranslation(locale)
	s.records = append(s.records, tr)
	return tr, nil
}

// Insert appends an externally constructed translation, failing on a locale
// already present.
func (s *Set) Insert(tr *Translation) error {
	if tr == nil || strings.TrimSpace(tr.Locale) == "" {
		return ErrLocaleRequired
	}
	if s.Find(tr.Locale) != nil {
		return ErrDuplicateLocale
	}
	s.records = append(s.records, tr)
	return nil
}

// All returns the translations in set order.
func (s *Set) All() []*Translation {
	if s == nil {
		return nil
	}
	out := make([]*Translation, len(s.records))
	copy(out, s.records)
	return out
}

// Dirty returns the translations with modified content fields, in set order.
func (s *Set) Dirty() []*Translation {
	if s == nil {
		return nil
	}
	var out []*Translation
	for _, tr := range s.records {
		if tr.IsDirty() {
			out = append(out, tr)
		}
	}
	return out
}

// Len reports how many translations the set holds.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Locales lists the locale codes present, in set order.
func (s *Set) Locales() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.records))
	for _, tr := range s.records {
		if tr != nil {
			out = append(out, tr.Locale)
		}
	}
	return out
}

// MissingLocales reports which of the required locales have no translation in
// the set, preserving the order of required.
func (s *Set) MissingLocales(required []string) []string {
	var missing []string
	for _, locale := range required {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}
		if s.Find(locale) == nil {
			missing = append(missing, locale)
		}
	}
	return missing
}
