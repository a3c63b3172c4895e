package interfaces

// ResolutionMeta describes how a locale lookup was satisfied.
type ResolutionMeta struct {
	RequestedLocale string `json:"requested_locale"`
	ResolvedLocale  string `json:"resolved_locale"`
	// AvailableLocales is scoped to the translations loaded for the owning
	// record, not a union across records.
	AvailableLocales       []string `json:"available_locales"`
	MissingRequestedLocale bool     `json:"missing_requested_locale"`
	FallbackUsed           bool     `json:"fallback_used"`
	// BaseFallback reports that neither the requested nor the default locale
	// had a translation and reads were served from the base record.
	BaseFallback bool `json:"base_fallback"`
}
