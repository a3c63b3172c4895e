package locales

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-translatable/internal/storage"
)

// MemoryRepository is an in-memory locale registry for scaffolding and
// tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	locales map[string]*Locale
}

// NewMemoryRepository creates an empty in-memory locale registry.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		locales: make(map[string]*Locale),
	}
}

// Put stores or replaces a locale keyed by code.
func (m *MemoryRepository) Put(locale *Locale) {
	if locale == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locales[strings.ToLower(locale.Code)] = cloneLocale(locale)
}

func (m *MemoryRepository) GetByCode(_ context.Context, code string) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locale, ok := m.locales[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, &storage.NotFoundError{Resource: "locale", Key: code}
	}
	return cloneLocale(locale), nil
}

func (m *MemoryRepository) GetDefault(_ context.Context) (*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, locale := range m.locales {
		if locale.IsDefault {
			return cloneLocale(locale), nil
		}
	}
	return nil, &storage.NotFoundError{Resource: "locale", Key: "default"}
}

func (m *MemoryRepository) List(_ context.Context) ([]*Locale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Locale, 0, len(m.locales))
	for _, locale := range m.locales {
		out = append(out, cloneLocale(locale))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *MemoryRepository) Create(_ context.Context, locale *Locale) (*Locale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locales[strings.ToLower(locale.Code)] = cloneLocale(locale)
	return cloneLocale(locale), nil
}

func cloneLocale(src *Locale) *Locale {
	if src == nil {
		return nil
	}
	copied := *src
	if src.NativeName != nil {
		name := *src.NativeName
		copied.NativeName = &name
	}
	return &copied
}
