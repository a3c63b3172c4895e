package translatable

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config captures the runtime settings shared by every factory a module
// registers.
type Config struct {
	// DefaultLocale is the statically configured fallback locale, the last
	// tier consulted when resolving the default locale for a read.
	DefaultLocale string
	// Locales lists the locale codes seeded into the registry when one is
	// attached.
	Locales []string
	// Logging configures the go-logger provider built by the module when no
	// external provider is supplied.
	Logging LoggingConfig
}

// LoggingConfig mirrors the go-logger adapter options.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks configured locale codes and logging options.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Locales, validation.By(func(value any) error {
			codes, _ := value.([]string)
			for _, code := range codes {
				if strings.TrimSpace(code) == "" {
					return validation.NewError("translatable.config.locale_empty", "locale codes cannot be blank")
				}
			}
			return nil
		})),
		validation.Field(&c.Logging, validation.By(func(any) error {
			switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
			case "", "json", "console", "pretty":
				return nil
			}
			return validation.NewError("translatable.config.logging_format", "unsupported logging format")
		})),
	)
}
