package localectx_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-translatable/internal/localectx"
	"github.com/goliatone/go-translatable/pkg/interfaces"
)

func TestContextRoundTrip(t *testing.T) {
	ctx := localectx.WithLocale(context.Background(), " de ")
	if got := localectx.Locale(ctx); got != "de" {
		t.Fatalf("expected de got %q", got)
	}

	ctx = localectx.WithDefaultLocale(ctx, "en")
	if got := localectx.DefaultLocale(ctx); got != "en" {
		t.Fatalf("expected en got %q", got)
	}
}

func TestWithLocaleIgnoresBlank(t *testing.T) {
	ctx := localectx.WithLocale(context.Background(), "  ")
	if got := localectx.Locale(ctx); got != "" {
		t.Fatalf("expected empty locale got %q", got)
	}
}

func TestActivePrecedence(t *testing.T) {
	chain := localectx.Chain{
		Resolver: interfaces.LocaleResolverFunc(func(context.Context) string { return "es" }),
	}

	ctx := localectx.WithLocale(context.Background(), "de")

	if got := chain.Active(ctx, "fr"); got != "fr" {
		t.Fatalf("explicit argument must win, got %q", got)
	}
	if got := chain.Active(ctx, ""); got != "de" {
		t.Fatalf("context locale must beat the resolver, got %q", got)
	}
	if got := chain.Active(context.Background(), ""); got != "es" {
		t.Fatalf("resolver must supply the final tier, got %q", got)
	}

	chain.Resolver = nil
	if got := chain.Active(context.Background(), ""); got != "" {
		t.Fatalf("an unconstrained chain must resolve empty, got %q", got)
	}
}

func TestDefaultPrecedence(t *testing.T) {
	chain := localectx.Chain{
		Defaults: interfaces.DefaultLocaleProviderFunc(func(context.Context) string { return "en" }),
		Fallback: "es",
	}

	ctx := localectx.WithDefaultLocale(context.Background(), "de")
	if got := chain.Default(ctx); got != "de" {
		t.Fatalf("context default must win, got %q", got)
	}
	if got := chain.Default(context.Background()); got != "en" {
		t.Fatalf("provider must beat the static fallback, got %q", got)
	}

	chain.Defaults = nil
	chain.Resolver = interfaces.LocaleResolverFunc(func(context.Context) string { return "pt" })
	if got := chain.Default(context.Background()); got != "pt" {
		t.Fatalf("without a provider the resolver supplies the default, got %q", got)
	}

	chain.Resolver = nil
	if got := chain.Default(context.Background()); got != "es" {
		t.Fatalf("static fallback must close the chain, got %q", got)
	}
}
