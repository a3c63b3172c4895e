package locales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-translatable/internal/identity"
	"github.com/goliatone/go-translatable/internal/locales"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := locales.NewService(nil); !errors.Is(err, locales.ErrRepositoryRequired) {
		t.Fatalf("expected ErrRepositoryRequired got %v", err)
	}
}

func TestSeedCreatesMissingLocales(t *testing.T) {
	repo := locales.NewMemoryRepository()
	svc, err := locales.NewService(repo, locales.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if err := svc.Seed(ctx, "en", []string{"de", "fr", "EN"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 locales got %d", len(all))
	}

	en, err := svc.ResolveByCode(ctx, "en")
	if err != nil {
		t.Fatalf("resolve en: %v", err)
	}
	if !en.IsDefault {
		t.Fatal("the seeded default locale must carry the default flag")
	}
	if en.ID != identity.LocaleUUID("en") {
		t.Fatalf("expected deterministic key got %s", en.ID)
	}
	if !en.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("expected clock stamp got %v", en.CreatedAt)
	}

	de, err := svc.ResolveByCode(ctx, "de")
	if err != nil {
		t.Fatalf("resolve de: %v", err)
	}
	if de.IsDefault {
		t.Fatal("non-default locales must not carry the default flag")
	}
}

func TestSeedLeavesExistingRowsUntouched(t *testing.T) {
	repo := locales.NewMemoryRepository()
	repo.Put(&locales.Locale{
		ID:      identity.LocaleUUID("en"),
		Code:    "en",
		Display: "English",
	})

	svc, err := locales.NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if err := svc.Seed(context.Background(), "en", nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	en, err := svc.ResolveByCode(context.Background(), "en")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if en.Display != "English" {
		t.Fatalf("existing rows must be kept, got display %q", en.Display)
	}
}

func TestResolveByCodeErrors(t *testing.T) {
	svc, err := locales.NewService(locales.NewMemoryRepository())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.ResolveByCode(ctx, "  "); !errors.Is(err, locales.ErrCodeRequired) {
		t.Fatalf("expected ErrCodeRequired got %v", err)
	}
	if _, err := svc.ResolveByCode(ctx, "xx"); !errors.Is(err, locales.ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale got %v", err)
	}
}

func TestDefaultLocaleReadsTheRegistry(t *testing.T) {
	repo := locales.NewMemoryRepository()
	svc, err := locales.NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if got := svc.DefaultLocale(ctx); got != "" {
		t.Fatalf("an empty registry must yield no default, got %q", got)
	}

	if err := svc.Seed(ctx, "es", []string{"en"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := svc.DefaultLocale(ctx); got != "es" {
		t.Fatalf("expected es got %q", got)
	}
}
