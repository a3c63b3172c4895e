package locales

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-translatable/internal/identity"
	"github.com/goliatone/go-translatable/internal/logging"
	"github.com/goliatone/go-translatable/internal/storage"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

var (
	ErrRepositoryRequired = errors.New("locales: repository is required")
	ErrCodeRequired       = errors.New("locales: locale code is required")
	ErrUnknownLocale      = errors.New("locales: unknown locale")
)

// Service exposes the locale registry and satisfies the
// DefaultLocaleProvider contract from the registry's default row.
type Service interface {
	interfaces.DefaultLocaleProvider

	ResolveByCode(ctx context.Context, code string) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
	Seed(ctx context.Context, defaultLocale string, codes []string) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp seeded records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithLoggerProvider scopes service logging to the locales namespace.
func WithLoggerProvider(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		s.logger = logging.LocalesLogger(provider)
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger interfaces.Logger
}

// NewService constructs a locale registry service.
func NewService(repo Repository, opts ...ServiceOption) (Service, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	s := &service{
		repo:   repo,
		now:    time.Now,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ResolveByCode looks up a locale, unwrapping storage misses to
// ErrUnknownLocale.
func (s *service) ResolveByCode(ctx context.Context, code string) (*Locale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}
	locale, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		var notFound *storage.NotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrUnknownLocale
		}
		return nil, err
	}
	return locale, nil
}

func (s *service) List(ctx context.Context) ([]*Locale, error) {
	return s.repo.List(ctx)
}

// DefaultLocale satisfies interfaces.DefaultLocaleProvider. A registry
// without a default row yields "", which resolution treats as no
// constraint.
func (s *service) DefaultLocale(ctx context.Context) string {
	locale, err := s.repo.GetDefault(ctx)
	if err != nil {
		var notFound *storage.NotFoundError
		if !errors.As(err, &notFound) {
			s.logger.Warn("locales.default.lookup_failed", "error", err)
		}
		return ""
	}
	return locale.Code
}

// Seed inserts any missing registry rows for the given codes with
// deterministic identifiers, flagging defaultLocale as the default. Existing
// rows are left untouched.
func (s *service) Seed(ctx context.Context, defaultLocale string, codes []string) error {
	defaultLocale = strings.ToLower(strings.TrimSpace(defaultLocale))
	seen := map[string]struct{}{}
	for _, code := range append([]string{defaultLocale}, codes...) {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		if _, err := s.repo.GetByCode(ctx, code); err == nil {
			continue
		} else {
			var notFound *storage.NotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
		}

		locale := &Locale{
			ID:        identity.LocaleUUID(code),
			Code:      code,
			Display:   strings.ToUpper(code),
			IsActive:  true,
			IsDefault: code == defaultLocale,
			CreatedAt: s.now(),
		}
		if _, err := s.repo.Create(ctx, locale); err != nil {
			return err
		}
		s.logger.Debug("locales.seeded", "code", code, "default", locale.IsDefault)
	}
	return nil
}
