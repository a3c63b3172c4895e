package translatable

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-translatable/internal/locales"
	"github.com/goliatone/go-translatable/internal/logging/gologger"
	"github.com/goliatone/go-translatable/internal/record"
	"github.com/goliatone/go-translatable/internal/storage"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// ErrStoreRequired indicates the module was built without a storage
// collaborator.
var ErrStoreRequired = errors.New("translatable: a store is required")

// Module wires the shared collaborators (store, locale registry, hooks,
// logging) and hands out per-model facade factories.
type Module struct {
	cfg      Config
	store    Store
	locales  LocaleService
	resolver interfaces.LocaleResolver
	hooks    interfaces.HookEmitter
	provider interfaces.LoggerProvider
}

// ModuleOption configures the module at construction time.
type ModuleOption func(*Module)

// WithStore supplies the storage collaborator directly.
func WithStore(store Store) ModuleOption {
	return func(m *Module) {
		m.store = store
	}
}

// WithBunDB wires a bun database: store and locale registry included.
func WithBunDB(db *bun.DB) ModuleOption {
	return func(m *Module) {
		m.store = storage.NewBunStore(db)
		if svc, err := locales.NewService(locales.NewBunRepository(db)); err == nil {
			m.locales = svc
		}
	}
}

// WithLocaleService overrides the locale registry service.
func WithLocaleService(svc LocaleService) ModuleOption {
	return func(m *Module) {
		m.locales = svc
	}
}

// WithResolver supplies the active-locale collaborator.
func WithResolver(resolver interfaces.LocaleResolver) ModuleOption {
	return func(m *Module) {
		m.resolver = resolver
	}
}

// WithHookEmitter supplies the lifecycle emitter shared by every factory.
func WithHookEmitter(emitter interfaces.HookEmitter) ModuleOption {
	return func(m *Module) {
		m.hooks = emitter
	}
}

// WithLoggerProvider supplies the logging provider shared by every factory.
func WithLoggerProvider(provider interfaces.LoggerProvider) ModuleOption {
	return func(m *Module) {
		m.provider = provider
	}
}

// New validates the configuration and assembles the module.
func New(cfg Config, opts ...ModuleOption) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		return nil, ErrStoreRequired
	}
	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	return m, nil
}

// Register compiles the descriptor and returns a facade factory wired with
// the module's collaborators. The locale registry, when attached, supplies
// the default-locale tier.
func (m *Module) Register(d Descriptor) (*Factory, error) {
	compiled, err := NewModel(d)
	if err != nil {
		return nil, err
	}
	opts := []FactoryOption{
		record.WithDefaultLocale(m.cfg.DefaultLocale),
	}
	if m.resolver != nil {
		opts = append(opts, record.WithLocaleResolver(m.resolver))
	}
	if m.locales != nil {
		opts = append(opts, record.WithDefaultLocaleProvider(m.locales))
	}
	if m.hooks != nil {
		opts = append(opts, record.WithHooks(m.hooks))
	}
	if m.provider != nil {
		opts = append(opts, record.WithLoggerProvider(m.provider))
	}
	return record.NewFactory(compiled, m.store, opts...)
}

// Locales exposes the attached registry service, or nil.
func (m *Module) Locales() LocaleService {
	return m.locales
}

// SeedLocales inserts any missing registry rows for the configured locale
// codes. A module without a registry is a no-op.
func (m *Module) SeedLocales(ctx context.Context) error {
	if m.locales == nil {
		return nil
	}
	return m.locales.Seed(ctx, m.cfg.DefaultLocale, m.cfg.Locales)
}
