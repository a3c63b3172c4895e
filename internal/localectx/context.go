// Package localectx carries the active and default locale explicitly through
// context.Context instead of process-global state, so every resolve and save
// call names its locale dependency.
package localectx

import (
	"context"
	"strings"
)

type contextKey string

const (
	activeLocaleKey  contextKey = "translatable.locale.active"
	defaultLocaleKey contextKey = "translatable.locale.default"
)

// WithLocale returns a context carrying the active locale for subsequent
// reads and writes.
func WithLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, activeLocaleKey, locale)
}

// Locale extracts the active locale from the context, or "".
func Locale(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if locale, ok := ctx.Value(activeLocaleKey).(string); ok {
		return locale
	}
	return ""
}

// WithDefaultLocale returns a context carrying the request-scoped default
// locale used as the fallback resolution tier.
func WithDefaultLocale(ctx context.Context, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return ctx
	}
	return context.WithValue(ctx, defaultLocaleKey, locale)
}

// DefaultLocale extracts the request-scoped default locale, or "".
func DefaultLocale(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if locale, ok := ctx.Value(defaultLocaleKey).(string); ok {
		return locale
	}
	return ""
}
