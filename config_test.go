package translatable_test

import (
	"testing"

	translatable "github.com/goliatone/go-translatable"
)

func TestDefaultConfig(t *testing.T) {
	cfg := translatable.DefaultConfig()
	if cfg.DefaultLocale != "en" {
		t.Fatalf("expected en got %q", cfg.DefaultLocale)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("the default configuration must validate: %v", err)
	}
}

func TestConfigValidateRejectsBlankLocaleCodes(t *testing.T) {
	cfg := translatable.DefaultConfig()
	cfg.Locales = []string{"en", "  "}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected blank locale code rejection")
	}
}

func TestConfigValidateRejectsUnknownLoggingFormat(t *testing.T) {
	cfg := translatable.DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected logging format rejection")
	}

	for _, format := range []string{"", "json", "console", "pretty"} {
		cfg.Logging.Format = format
		if err := cfg.Validate(); err != nil {
			t.Fatalf("format %q must validate: %v", format, err)
		}
	}
}
