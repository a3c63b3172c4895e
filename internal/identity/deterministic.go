package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LocaleUUID derives the identifier for a locale registry row.
func LocaleUUID(localeCode string) uuid.UUID {
	return UUID("go-translatable:locale:" + strings.ToLower(strings.TrimSpace(localeCode)))
}

// TranslationUUID derives the identifier for one (record, locale) translation
// row. Stable across process restarts so re-saves address the same row.
func TranslationUUID(model string, ownerID uuid.UUID, localeCode string) uuid.UUID {
	return UUID("go-translatable:translation:" + strings.ToLower(strings.TrimSpace(model)) +
		":" + ownerID.String() + ":" + strings.ToLower(strings.TrimSpace(localeCode)))
}
