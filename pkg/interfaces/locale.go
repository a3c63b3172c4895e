package interfaces

import "context"

// LocaleResolver determines the active locale for an operation when the
// caller does not supply one explicitly. Implementations typically read the
// negotiated request locale. An empty string means no locale could be
// resolved.
type LocaleResolver interface {
	CurrentLocale(ctx context.Context) string
}

// DefaultLocaleProvider exposes the default locale used as the fallback tier
// during resolution. When present it is consulted preferentially over the
// LocaleResolver. An empty string means no default is configured.
type DefaultLocaleProvider interface {
	DefaultLocale(ctx context.Context) string
}

// LocaleResolverFunc adapts a plain function to the LocaleResolver contract.
type LocaleResolverFunc func(ctx context.Context) string

func (f LocaleResolverFunc) CurrentLocale(ctx context.Context) string {
	return f(ctx)
}

// DefaultLocaleProviderFunc adapts a plain function to the
// DefaultLocaleProvider contract.
type DefaultLocaleProviderFunc func(ctx context.Context) string

func (f DefaultLocaleProviderFunc) DefaultLocale(ctx context.Context) string {
	return f(ctx)
}
