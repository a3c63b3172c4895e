package translation_test

import (
	"testing"

	"github.com/goliatone/go-translatable/internal/translation"
)

func seedSet(t *testing.T, values map[string]string) *translation.Set {
	t.Helper()
	set := translation.NewSet()
	for locale, title := range values {
		tr, err := set.GetOrCreate(locale)
		if err != nil {
			t.Fatalf("get or create %s: %v", locale, err)
		}
		tr.Set("title", title)
	}
	return set
}

func TestResolvePrefersRequestedLocale(t *testing.T) {
	set := seedSet(t, map[string]string{"en": "Hello", "de": "Hallo"})

	res := translation.Resolve(set, "de", "en")
	if res.Translation == nil {
		t.Fatal("expected a translation")
	}
	if got, _ := res.Translation.Get("title"); got != "Hallo" {
		t.Fatalf("expected Hallo got %v", got)
	}
	if res.Meta.FallbackUsed {
		t.Fatal("fallback must not trigger when the requested locale exists")
	}
	if res.Meta.ResolvedLocale != "de" {
		t.Fatalf("expected resolved locale de got %q", res.Meta.ResolvedLocale)
	}
}

func TestResolveFallsBackToDefaultLocale(t *testing.T) {
	set := seedSet(t, map[string]string{"en": "Hello", "de": "Hallo"})

	res := translation.Resolve(set, "fr", "en")
	if res.Translation == nil {
		t.Fatal("expected the default locale translation")
	}
	if got, _ := res.Translation.Get("title"); got != "Hello" {
		t.Fatalf("expected Hello got %v", got)
	}
	if !res.Meta.FallbackUsed {
		t.Fatal("expected fallback flag")
	}
	if !res.Meta.MissingRequestedLocale {
		t.Fatal("expected missing requested locale flag")
	}
}

func TestResolveFallsThroughToBase(t *testing.T) {
	set := seedSet(t, map[string]string{"de": "Hallo"})

	res := translation.Resolve(set, "fr", "es")
	if res.Translation != nil {
		t.Fatalf("expected base fallback, got locale %q", res.Translation.Locale)
	}
	if !res.Meta.BaseFallback {
		t.Fatal("expected base fallback flag")
	}
	if !res.BaseFallback() {
		t.Fatal("expected BaseFallback()")
	}
}

func TestResolveEmptyLocalesMeanNoConstraint(t *testing.T) {
	set := seedSet(t, map[string]string{"en": "Hello"})

	res := translation.Resolve(set, "", "")
	if res.Translation != nil {
		t.Fatal("expected base fallback when no locale resolves")
	}
}

func TestResolveLocaleComparisonIsCaseInsensitive(t *testing.T) {
	set := seedSet(t, map[string]string{"en": "Hello"})

	res := translation.Resolve(set, "EN", "")
	if res.Translation == nil {
		t.Fatal("expected a translation for EN")
	}
	if got, _ := res.Translation.Get("title"); got != "Hello" {
		t.Fatalf("expected Hello got %v", got)
	}
}

func TestResolveIsStableAcrossLocaleChanges(t *testing.T) {
	set := seedSet(t, map[string]string{"en": "Hello", "de": "Hallo"})

	first := translation.Resolve(set, "de", "en")
	second := translation.Resolve(set, "en", "de")
	third := translation.Resolve(set, "de", "en")

	if firstTitle, _ := first.Translation.Get("title"); firstTitle != "Hallo" {
		t.Fatalf("expected Hallo got %v", firstTitle)
	}
	if secondTitle, _ := second.Translation.Get("title"); secondTitle != "Hello" {
		t.Fatalf("expected Hello got %v", secondTitle)
	}
	if first.Translation != third.Translation {
		t.Fatal("expected identical resolution for identical inputs")
	}
}
