// Package translatable makes multi-locale records behave like single-locale
// records: reads on translatable fields resolve through a deterministic
// requested → default → base fallback chain, writes land on the per-locale
// translation row for the write-time active locale, and saves run a
// two-phase base-then-translations persist against a pluggable store.
package translatable

import (
	"context"

	"github.com/goliatone/go-translatable/internal/hooks"
	"github.com/goliatone/go-translatable/internal/localectx"
	"github.com/goliatone/go-translatable/internal/locales"
	"github.com/goliatone/go-translatable/internal/model"
	"github.com/goliatone/go-translatable/internal/record"
	"github.com/goliatone/go-translatable/internal/storage"
	"github.com/goliatone/go-translatable/internal/translation"
)

type (
	// Descriptor declares one model's translatable surface.
	Descriptor = model.Descriptor
	// Model is a validated descriptor with its field routing table compiled.
	Model = model.Model
	// Translation is one locale's values for a record's translated fields.
	Translation = translation.Translation
	// TranslationSet is the ordered per-record collection of translations.
	TranslationSet = translation.Set
	// Resolution is the outcome of a locale lookup.
	Resolution = translation.Resolution
	// Record is the facade over one base record and its translation set.
	Record = record.Record
	// Factory builds record facades for one model.
	Factory = record.Factory
	// FactoryOption configures a facade factory.
	FactoryOption = record.Option
	// Store is the persistence collaborator contract.
	Store = storage.Store
	// BaseRow is the storage-facing view of a base record.
	BaseRow = storage.BaseRow
	// PersistenceError reports a failed persist with locale and field
	// context.
	PersistenceError = storage.PersistenceError
	// NotFoundError represents missing records from storage lookups.
	NotFoundError = storage.NotFoundError
	// Locale is one locale registry entry.
	Locale = locales.Locale
	// LocaleService exposes the locale registry.
	LocaleService = locales.Service
	// RecordEvent is the go-command message carrying lifecycle
	// notifications.
	RecordEvent = hooks.RecordEvent
)

var (
	// ErrDuplicateLocale reports a second translation inserted for an
	// existing locale.
	ErrDuplicateLocale = translation.ErrDuplicateLocale
	// ErrLocaleRequired reports an empty locale where one is mandatory.
	ErrLocaleRequired = translation.ErrLocaleRequired
	// ErrUnknownLocale reports a registry lookup for an unregistered code.
	ErrUnknownLocale = locales.ErrUnknownLocale
)

// Factory option re-exports.
var (
	WithLocaleResolver        = record.WithLocaleResolver
	WithDefaultLocaleProvider = record.WithDefaultLocaleProvider
	WithDefaultLocale         = record.WithDefaultLocale
	WithHooks                 = record.WithHooks
	WithIDGenerator           = record.WithIDGenerator
)

// NewModel normalizes and validates a descriptor.
func NewModel(d Descriptor) (*Model, error) {
	return model.New(d)
}

// MustModel panics on an invalid descriptor. Intended for package-level
// declarations.
func MustModel(d Descriptor) *Model {
	return model.MustNew(d)
}

// NewFactory constructs a facade factory over the store.
func NewFactory(m *Model, store Store, opts ...FactoryOption) (*Factory, error) {
	return record.NewFactory(m, store, opts...)
}

// NewMemoryStore returns an in-memory store for scaffolding and tests.
func NewMemoryStore() *storage.MemoryStore {
	return storage.NewMemoryStore()
}

// Resolve runs the two-tier fallback against a set directly.
func Resolve(set *TranslationSet, requested, fallback string) Resolution {
	return translation.Resolve(set, requested, fallback)
}

// WithLocale returns a context carrying the active locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return localectx.WithLocale(ctx, locale)
}

// LocaleFromContext extracts the active locale, or "".
func LocaleFromContext(ctx context.Context) string {
	return localectx.Locale(ctx)
}

// WithFallbackLocale returns a context carrying the request-scoped default
// locale.
func WithFallbackLocale(ctx context.Context, locale string) context.Context {
	return localectx.WithDefaultLocale(ctx, locale)
}

// FallbackLocaleFromContext extracts the request-scoped default locale,
// or "".
func FallbackLocaleFromContext(ctx context.Context) string {
	return localectx.DefaultLocale(ctx)
}

// NewDispatcherHooks returns the go-command backed lifecycle emitter.
func NewDispatcherHooks() *hooks.DispatcherEmitter {
	return hooks.NewDispatcherEmitter()
}
