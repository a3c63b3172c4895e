package record

import (
	"context"
	"errors"
	"maps"
	"sort"

	"github.com/google/uuid"

	"github.com/goliatone/go-translatable/internal/localectx"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/model"
	"github.com/goliatone/go-translatable/internal/storage"
	"github.com/goliatone/go-translatable/internal/translation"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

var (
	ErrModelRequired = errors.New("record: model is required")
	ErrStoreRequired = errors.New("record: store is required")
)

// Factory builds record facades for one model, sharing the storage
// collaborator, locale chain, and hook emitter across instances.
type Factory struct {
	model  *model.Model
	store  storage.Store
	chain  localectx.Chain
	hooks  interfaces.HookEmitter
	logger interfaces.Logger
	id     func() uuid.UUID
}

// Option configures the factory at construction time.
type Option func(*Factory)

// WithLocaleResolver supplies the collaborator consulted for the active
// locale when none is carried by the context.
func WithLocaleResolver(resolver interfaces.LocaleResolver) Option {
	return func(f *Factory) {
		f.chain.Resolver = resolver
	}
}

// WithDefaultLocaleProvider supplies the request-scoped default-locale
// collaborator, consulted before the locale resolver for the fallback tier.
func WithDefaultLocaleProvider(provider interfaces.DefaultLocaleProvider) Option {
	return func(f *Factory) {
		f.chain.Defaults = provider
	}
}

// WithDefaultLocale sets the statically configured fallback locale.
func WithDefaultLocale(locale string) Option {
	return func(f *Factory) {
		f.chain.Fallback = locale
	}
}

// WithHooks supplies the lifecycle event emitter.
func WithHooks(hooks interfaces.HookEmitter) Option {
	return func(f *Factory) {
		if hooks != nil {
			f.hooks = hooks
		}
	}
}

// WithLoggerProvider scopes facade logging to the record namespace.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(f *Factory) {
		f.logger = logging.RecordLogger(provider)
	}
}

// WithIDGenerator overrides how keys for new base records are generated.
func WithIDGenerator(generator func() uuid.UUID) Option {
	return func(f *Factory) {
		if generator != nil {
			f.id = generator
		}
	}
}

// NewFactory constructs a facade factory for the model.
func NewFactory(m *model.Model, store storage.Store, opts ...Option) (*Factory, error) {
	if m == nil {
		return nil, ErrModelRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	f := &Factory{
		model:  m,
		store:  store,
		logger: logging.NoOp(),
		id:     uuid.New,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Model exposes the compiled model descriptor.
func (f *Factory) Model() *model.Model {
	return f.model
}

// New returns a facade over a base record that has not been persisted yet.
func (f *Factory) New() *Record {
	return &Record{
		factory:   f,
		base:      map[string]any{},
		baseDirty: map[string]struct{}{},
		set:       translation.NewSet(),
	}
}

// Existing returns a facade over a base record already present in storage.
// Translations load lazily on first translatable access.
func (f *Factory) Existing(id uuid.UUID, base map[string]any) *Record {
	values := make(map[string]any, len(base))
	maps.Copy(values, base)
	return &Record{
		factory:   f,
		id:        id,
		base:      values,
		baseDirty: map[string]struct{}{},
		persisted: true,
		set:       translation.NewLazySet(),
	}
}

// Record makes one multi-locale base record behave like a single-locale
// record: translatable field reads resolve through the locale fallback
// chain, writes land on the per-locale translation for the write-time active
// locale, and Save runs the two-phase persist. Instances are request-scoped
// and not safe for unsynchronized concurrent use.
type Record struct {
	factory *Factory

	id        uuid.UUID
	base      map[string]any
	baseDirty map[string]struct{}
	persisted bool
	set       *translation.Set
}

// ID returns the base record's key, or uuid.Nil before the first save.
func (r *Record) ID() uuid.UUID {
	return r.id
}

// Persisted reports whether the base record exists in storage.
func (r *Record) Persisted() bool {
	return r.persisted
}

// EnsureLoaded populates the translation set from storage exactly once.
// Called implicitly by every translatable access; exposed so hosts can
// prefetch.
func (r *Record) EnsureLoaded(ctx context.Context) error {
	if !r.persisted {
		return r.set.EnsureLoaded(ctx, nil)
	}
	return r.set.EnsureLoaded(ctx, func(ctx context.Context) ([]*translation.Translation, error) {
		return r.factory.store.LoadTranslations(ctx, r.factory.model, r.id)
	})
}

// Get reads a field. Translatable fields resolve through the requested →
// default → base fallback chain; everything else reads the base record.
// Missing everywhere yields nil, not an error.
func (r *Record) Get(ctx context.Context, field string) (any, error) {
	if !r.factory.model.Translatable(field) {
		return r.base[field], nil
	}
	resolution, err := r.ResolveLocale(ctx, "")
	if err != nil {
		return nil, err
	}
	if resolution.Translation != nil {
		if value, ok := resolution.Translation.Get(field); ok {
			return value, nil
		}
		return nil, nil
	}
	return r.base[field], nil
}

// GetIn reads a translatable field under an explicit locale, bypassing the
// context's active locale.
func (r *Record) GetIn(ctx context.Context, locale, field string) (any, error) {
	if !r.factory.model.Translatable(field) {
		return r.base[field], nil
	}
	resolution, err := r.ResolveLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	if resolution.Translation != nil {
		if value, ok := resolution.Translation.Get(field); ok {
			return value, nil
		}
		return nil, nil
	}
	return r.base[field], nil
}

// ResolveLocale runs the two-tier fallback for the requested locale (or the
// context's active locale when empty) and reports how the lookup was
// satisfied.
func (r *Record) ResolveLocale(ctx context.Context, requested string) (translation.Resolution, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return translation.Resolution{}, err
	}
	active := r.factory.chain.Active(ctx, requested)
	fallback := r.factory.chain.Default(ctx)
	return translation.Resolve(r.set, active, fallback), nil
}

// Set writes a field. Translatable fields land on the translation for the
// write-time active locale, creating it when absent; when no locale resolves
// at all the base record acts as the fallback translation and takes the
// value directly.
func (r *Record) Set(ctx context.Context, field string, value any) error {
	if !r.factory.model.Translatable(field) {
		r.base[field] = value
		r.baseDirty[field] = struct{}{}
		return nil
	}
	return r.SetIn(ctx, r.factory.chain.Active(ctx, ""), field, value)
}

// SetIn writes a translatable field under an explicit locale. An empty
// locale falls back to the default tier, then to the base record.
func (r *Record) SetIn(ctx context.Context, locale, field string, value any) error {
	if !r.factory.model.Translatable(field) {
		r.base[field] = value
		r.baseDirty[field] = struct{}{}
		return nil
	}
	if err := r.EnsureLoaded(ctx); err != nil {
		return err
	}
	if locale == "" {
		locale = r.factory.chain.Default(ctx)
	}
	if locale == "" {
		r.base[field] = value
		r.baseDirty[field] = struct{}{}
		return nil
	}
	tr, err := r.set.GetOrCreate(locale)
	if err != nil {
		return err
	}
	tr.Set(field, value)
	return nil
}

// Translate returns the translation for the locale, creating a transient one
// when missing, so callers can stage several fields before saving.
func (r *Record) Translate(ctx context.Context, locale string) (*translation.Translation, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return r.set.GetOrCreate(locale)
}

// Translations exposes the loaded set.
func (r *Record) Translations(ctx context.Context) (*translation.Set, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return r.set, nil
}

// AvailableLocales lists the locales with a translation loaded for this
// record.
func (r *Record) AvailableLocales(ctx context.Context) ([]string, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return r.set.Locales(), nil
}

// MissingLocales reports which required locales have no translation.
func (r *Record) MissingLocales(ctx context.Context, required []string) ([]string, error) {
	if err := r.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return r.set.MissingLocales(required), nil
}

// Snapshot serializes the base attributes with every declared translatable
// key overwritten by its resolved value. The output always contains every
// translatable key, falling back to the base value or nil when no
// translation resolves.
func (r *Record) Snapshot(ctx context.Context) (map[string]any, error) {
	resolution, err := r.ResolveLocale(ctx, "")
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(r.base)+len(r.factory.model.TranslatedAttributes))
	maps.Copy(out, r.base)
	for _, attr := range r.factory.model.TranslatedAttributes {
		if resolution.Translation != nil {
			if value, ok := resolution.Translation.Get(attr); ok {
				out[attr] = value
				continue
			}
			out[attr] = nil
			continue
		}
		if value, ok := r.base[attr]; ok {
			out[attr] = value
			continue
		}
		out[attr] = nil
	}
	return out, nil
}

// Save persists pending changes in two phases: the base record first, then
// every dirty translation stamped with the base key. A base-phase failure
// aborts before any translation persists; the first failing translation
// short-circuits the rest. When the base record exists and is clean the base
// phase is a no-op, but translations still persist and the saved/updated
// notifications still fire so observers are not silently skipped.
func (r *Record) Save(ctx context.Context) error {
	if err := r.EnsureLoaded(ctx); err != nil {
		return err
	}

	r.emit(ctx, interfaces.HookSaving)

	wasNew := !r.persisted
	if wasNew || len(r.baseDirty) > 0 {
		row := &storage.BaseRow{
			ID:          r.id,
			Values:      r.base,
			DirtyFields: r.dirtyBaseFields(),
			Persisted:   r.persisted,
		}
		if wasNew && row.ID == uuid.Nil {
			row.ID = r.factory.id()
		}
		if err := r.factory.store.SaveBase(ctx, r.factory.model, row); err != nil {
			return err
		}
		r.id = row.ID
		r.persisted = true
		r.baseDirty = map[string]struct{}{}
	}

	for _, tr := range r.set.Dirty() {
		tr.StampOwner(r.id)
		if err := r.factory.store.SaveTranslation(ctx, r.factory.model, tr); err != nil {
			return err
		}
		tr.MarkSaved()
	}

	r.emit(ctx, interfaces.HookSaved)
	r.emit(ctx, interfaces.HookUpdated)
	if wasNew {
		r.emit(ctx, interfaces.HookCreated)
	}
	return nil
}

func (r *Record) dirtyBaseFields() []string {
	if !r.persisted {
		fields := make([]string, 0, len(r.base))
		for field := range r.base {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		return fields
	}
	fields := make([]string, 0, len(r.baseDirty))
	for field := range r.baseDirty {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (r *Record) emit(ctx context.Context, event string) {
	if r.factory.hooks == nil {
		return
	}
	payload := interfaces.HookPayload{
		Model:   r.factory.model.Name,
		Locales: r.set.Locales(),
	}
	if r.id != uuid.Nil {
		payload.RecordID = r.id.String()
	}
	if err := r.factory.hooks.Emit(ctx, event, payload); err != nil {
		r.factory.logger.Warn("record.hook.emit_failed", "event", event, "error", err)
	}
}
