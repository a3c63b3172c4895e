package translation

import (
	"strings"

	"github.com/goliatone/go-translatable/pkg/interfaces"
)

// Resolution is the outcome of a locale lookup. A nil Translation means
// neither the requested nor the default locale had a record and reads fall
// through to the base record's raw values.
type Resolution struct {
	Translation *Translation
	Meta        interfaces.ResolutionMeta
}

// BaseFallback reports that the lookup fell through to the base record.
func (r Resolution) BaseFallback() bool {
	return r.Translation == nil
}

// Resolve picks the translation to read from: the requested locale when a
// record for it exists, the default locale otherwise, the base record when
// both are missing. The tiers are evaluated in that exact order on every
// call; nothing is cached between calls.
func Resolve(set *Set, requested, fallback string) Resolution {
	requested = strings.TrimSpace(requested)
	fallback = strings.TrimSpace(fallback)

	meta := interfaces.ResolutionMeta{
		RequestedLocale:  requested,
		AvailableLocales: set.Locales(),
	}

	if requested != "" {
		if tr := set.Find(requested); tr != nil {
			meta.ResolvedLocale = tr.Locale
			return Resolution{Translation: tr, Meta: meta}
		}
		meta.MissingRequestedLocale = true
	}

	if fallback != "" {
		if tr := set.Find(fallback); tr != nil {
			meta.ResolvedLocale = tr.Locale
			meta.FallbackUsed = true
			return Resolution{Translation: tr, Meta: meta}
		}
	}

	meta.BaseFallback = true
	return Resolution{Meta: meta}
}
