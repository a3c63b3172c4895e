package localectx

import (
	"context"
	"strings"

	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// Chain resolves the active and default locale for an operation from, in
// order: explicit argument, context value, collaborator, static fallback.
// Empty results at every tier mean "no locale constraint"; that is not an
// error, resolution then reads straight off the base record.
type Chain struct {
	Resolver interfaces.LocaleResolver
	Defaults interfaces.DefaultLocaleProvider
	// Fallback is the statically configured default locale, consulted last
	// when resolving the default tier.
	Fallback string
}

// Active determines the locale in effect for a read or write.
func (c Chain) Active(ctx context.Context, explicit string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	if locale := Locale(ctx); locale != "" {
		return locale
	}
	if c.Resolver != nil {
		if locale := strings.TrimSpace(c.Resolver.CurrentLocale(ctx)); locale != "" {
			return locale
		}
	}
	return ""
}

// Default determines the fallback locale. The request-scoped provider is
// consulted preferentially; without one the active-locale resolver supplies
// the default, then the static fallback closes the chain.
func (c Chain) Default(ctx context.Context) string {
	if locale := DefaultLocale(ctx); locale != "" {
		return locale
	}
	if c.Defaults != nil {
		if locale := strings.TrimSpace(c.Defaults.DefaultLocale(ctx)); locale != "" {
			return locale
		}
	}
	if c.Resolver != nil {
		if locale := strings.TrimSpace(c.Resolver.CurrentLocale(ctx)); locale != "" {
			return locale
		}
	}
	return strings.TrimSpace(c.Fallback)
}
